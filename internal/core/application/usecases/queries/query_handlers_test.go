package queries_test

import (
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/dbtest"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// QueryHandlersTestSuite holds the read-side behaviour shared by every
// supported database. Concrete suites provide db.
type QueryHandlersTestSuite struct {
	suite.Suite
	db      *gorm.DB
	factory ports.UnitOfWorkFactory
}

func (suite *QueryHandlersTestSuite) resetFactory() {
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db, nil, nil)
}

func (suite *QueryHandlersTestSuite) TestAuthenticate_ExactMatch() {
	ctx := suite.T().Context()
	registered := suite.addCustomer("Ana", "ana@example.com", "555-0101")
	handler := queries.NewAuthenticateCustomerQueryHandler(suite.db)

	query, err := queries.NewAuthenticateCustomerQuery("ana@example.com", "555-0101")
	suite.Require().NoError(err)
	resp, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(registered.ID(), resp.ID)
	suite.Equal("Ana", resp.Name)
	suite.Equal("ana@example.com", resp.Email)
	suite.Equal("555-0101", resp.Phone)
}

func (suite *QueryHandlersTestSuite) TestAuthenticate_Mismatch_InvalidCredentials() {
	ctx := suite.T().Context()
	suite.addCustomer("Ana", "ana@example.com", "555-0101")
	handler := queries.NewAuthenticateCustomerQueryHandler(suite.db)

	tests := []struct{ name, email, phone string }{
		{"wrong phone", "ana@example.com", "555-9999"},
		{"unknown email", "bob@example.com", "555-0101"},
		{"different case", "ANA@example.com", "555-0101"},
		{"surrounding space", " ana@example.com", "555-0101"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			query, err := queries.NewAuthenticateCustomerQuery(tt.email, tt.phone)
			suite.Require().NoError(err)

			_, err = handler.Handle(ctx, query)
			suite.ErrorIs(err, queries.ErrInvalidCredentials)
		})
	}
}

func (suite *QueryHandlersTestSuite) TestGetCustomer() {
	ctx := suite.T().Context()
	registered := suite.addCustomer("Ana", "ana@example.com", "555-0101")
	handler := queries.NewGetCustomerQueryHandler(suite.db)

	query, _ := queries.NewGetCustomerQuery(registered.ID())
	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(registered.ID(), resp.ID)

	query, _ = queries.NewGetCustomerQuery(kernel.NewUUID())
	_, err = handler.Handle(ctx, query)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("customer", notFound.ParamName)
}

func (suite *QueryHandlersTestSuite) TestListCustomerOrders_NewestFirst() {
	ctx := suite.T().Context()
	ana := suite.addCustomer("Ana", "ana@example.com", "555-0101")
	bob := suite.addCustomer("Bob", "bob@example.com", "555-0202")
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	notes := "no onions"
	first := suite.addOrder(ana.ID(), "Taco", &notes, base)
	second := suite.addOrder(ana.ID(), "Burrito", nil, base.Add(1500*time.Millisecond))
	third := suite.addOrder(ana.ID(), "Pozole", nil, base.Add(time.Hour))
	suite.addOrder(bob.ID(), "Tamal", nil, base.Add(2*time.Hour))

	handler := queries.NewListCustomerOrdersQueryHandler(suite.db)
	query, _ := queries.NewListCustomerOrdersQuery(ana.ID())
	orders, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal(third.ID(), orders[0].ID)
	suite.Equal(second.ID(), orders[1].ID)
	suite.Equal(first.ID(), orders[2].ID)

	oldest := orders[2]
	suite.Equal(ana.ID(), oldest.CustomerID)
	suite.Equal("Ana", oldest.CustomerName)
	suite.Equal("Taco", oldest.DishName)
	suite.Require().NotNil(oldest.Notes)
	suite.Equal("no onions", *oldest.Notes)
	suite.Equal(order.Pending, oldest.Status)
	suite.True(base.Equal(oldest.CreatedAt), "created at %v", oldest.CreatedAt)
	suite.Nil(orders[1].Notes)
}

func (suite *QueryHandlersTestSuite) TestListCustomerOrders_SameTimestampOrderedByID() {
	ctx := suite.T().Context()
	ana := suite.addCustomer("Ana", "ana@example.com", "555-0101")
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := suite.addOrder(ana.ID(), "Taco", nil, at)
	b := suite.addOrder(ana.ID(), "Burrito", nil, at)

	handler := queries.NewListCustomerOrdersQueryHandler(suite.db)
	query, _ := queries.NewListCustomerOrdersQuery(ana.ID())
	orders, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	high, low := a.ID(), b.ID()
	if high.String() < low.String() {
		high, low = low, high
	}
	suite.Equal(high, orders[0].ID)
	suite.Equal(low, orders[1].ID)
}

func (suite *QueryHandlersTestSuite) TestListCustomerOrders_Empty() {
	ctx := suite.T().Context()
	ana := suite.addCustomer("Ana", "ana@example.com", "555-0101")
	handler := queries.NewListCustomerOrdersQueryHandler(suite.db)

	for _, id := range []kernel.UUID{ana.ID(), kernel.NewUUID()} {
		query, _ := queries.NewListCustomerOrdersQuery(id)
		orders, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)
		suite.NotNil(orders)
		suite.Empty(orders)
	}
}

func (suite *QueryHandlersTestSuite) TestGetOrder() {
	ctx := suite.T().Context()
	ana := suite.addCustomer("Ana", "ana@example.com", "555-0101")
	placed := suite.addOrder(ana.ID(), "Taco", nil, time.Now())
	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, _ := queries.NewGetOrderQuery(placed.ID())
	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(placed.ID(), resp.ID)
	suite.Equal("Ana", resp.CustomerName)
	suite.Equal(order.Pending, resp.Status)

	query, _ = queries.NewGetOrderQuery(kernel.NewUUID())
	_, err = handler.Handle(ctx, query)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("order", notFound.ParamName)
}

func (suite *QueryHandlersTestSuite) TestCountOrdersByStatus() {
	ctx := suite.T().Context()
	handler := queries.NewCountOrdersByStatusQueryHandler(suite.db)

	counts, err := handler.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	suite.Require().NoError(err)
	suite.Equal(map[order.Status]int64{order.Pending: 0, order.Preparing: 0, order.Delivered: 0}, counts)

	ana := suite.addCustomer("Ana", "ana@example.com", "555-0101")
	suite.addOrder(ana.ID(), "Taco", nil, time.Now())
	suite.addOrder(ana.ID(), "Burrito", nil, time.Now())
	moved := suite.addOrder(ana.ID(), "Pozole", nil, time.Now())
	suite.Require().NoError(moved.ChangeStatus(order.Delivered, order.Permissive, time.Now()))
	suite.Require().NoError(suite.factory.Create().OrderRepository().Update(ctx, moved))

	counts, err = handler.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(2), counts[order.Pending])
	suite.Equal(int64(0), counts[order.Preparing])
	suite.Equal(int64(1), counts[order.Delivered])
}

func (suite *QueryHandlersTestSuite) addCustomer(name, email, phone string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), name, email, phone)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().CustomerRepository().Add(suite.T().Context(), c))
	return c
}

func (suite *QueryHandlersTestSuite) addOrder(customerID kernel.UUID, dish string, notes *string, at time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customerID, dish, notes, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(suite.T().Context(), o))
	return o
}

// SQLiteQueryHandlersTestSuite runs the shared cases on a fresh in-memory
// database per test.
type SQLiteQueryHandlersTestSuite struct {
	QueryHandlersTestSuite
}

func (suite *SQLiteQueryHandlersTestSuite) SetupTest() {
	suite.db = dbtest.OpenSQLite(suite.T())
	suite.resetFactory()
}

func TestSQLiteQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteQueryHandlersTestSuite))
}
