package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockHandler stands in for any command or query handler.
type MockHandler[Q any, R any] struct {
	mock.Mock
}

func (m *MockHandler[Q, R]) Handle(ctx context.Context, q Q) (R, error) {
	args := m.Called(ctx, q)
	var r R
	if v := args.Get(0); v != nil {
		r = v.(R)
	}
	return r, args.Error(1)
}

type ServerTestSuite struct {
	suite.Suite

	registerCustomer     *MockHandler[commands.RegisterCustomerCommand, *customer.Customer]
	placeOrder           *MockHandler[commands.PlaceOrderCommand, *order.Order]
	advanceOrderStatus   *MockHandler[commands.AdvanceOrderStatusCommand, *order.Order]
	authenticateCustomer *MockHandler[queries.AuthenticateCustomerQuery, queries.CustomerResponse]
	getCustomer          *MockHandler[queries.GetCustomerQuery, queries.CustomerResponse]
	listCustomerOrders   *MockHandler[queries.ListCustomerOrdersQuery, []queries.OrderResponse]
	getOrder             *MockHandler[queries.GetOrderQuery, queries.OrderResponse]

	registry *prometheus.Registry
	e        *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) SetupTest() {
	suite.registerCustomer = new(MockHandler[commands.RegisterCustomerCommand, *customer.Customer])
	suite.placeOrder = new(MockHandler[commands.PlaceOrderCommand, *order.Order])
	suite.advanceOrderStatus = new(MockHandler[commands.AdvanceOrderStatusCommand, *order.Order])
	suite.authenticateCustomer = new(MockHandler[queries.AuthenticateCustomerQuery, queries.CustomerResponse])
	suite.getCustomer = new(MockHandler[queries.GetCustomerQuery, queries.CustomerResponse])
	suite.listCustomerOrders = new(MockHandler[queries.ListCustomerOrdersQuery, []queries.OrderResponse])
	suite.getOrder = new(MockHandler[queries.GetOrderQuery, queries.OrderResponse])

	server := httpadapter.NewServer(
		suite.registerCustomer,
		suite.placeOrder,
		suite.advanceOrderStatus,
		suite.authenticateCustomer,
		suite.getCustomer,
		suite.listCustomerOrders,
		suite.getOrder,
	)

	suite.registry = prometheus.NewRegistry()
	e, err := httpadapter.NewRouter(server, httpadapter.RouterConfig{
		StaticDir: suite.T().TempDir(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry:  suite.registry,
	})
	suite.Require().NoError(err)
	suite.e = e
}

func (suite *ServerTestSuite) TearDownTest() {
	suite.registerCustomer.AssertExpectations(suite.T())
	suite.placeOrder.AssertExpectations(suite.T())
	suite.advanceOrderStatus.AssertExpectations(suite.T())
	suite.authenticateCustomer.AssertExpectations(suite.T())
	suite.getCustomer.AssertExpectations(suite.T())
	suite.listCustomerOrders.AssertExpectations(suite.T())
	suite.getOrder.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (suite *ServerTestSuite) assertError(rec *httptest.ResponseRecorder, code int) map[string]any {
	suite.Require().Equal(code, rec.Code, rec.Body.String())
	var body map[string]any
	suite.decode(rec, &body)
	suite.InDelta(float64(code), body["code"], 0)
	suite.NotEmpty(body["message"])
	return body
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"ok":true}`, rec.Body.String())
}

func (suite *ServerTestSuite) TestRegisterCustomer_Created() {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "ana@example.com", "555-0100")
	suite.Require().NoError(err)

	suite.registerCustomer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterCustomerCommand) bool {
		return cmd.Name() == "Ana" && cmd.Email() == "ana@example.com" && cmd.Phone() == "555-0100"
	})).Return(c, nil).Once()

	rec := suite.do(http.MethodPost, "/clientes", `{"nombre":"Ana","email":"ana@example.com","telefono":"555-0100"}`)

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.JSONEq(fmt.Sprintf(
		`{"id":%q,"nombre":"Ana","email":"ana@example.com","telefono":"555-0100"}`, c.ID().String(),
	), rec.Body.String())
}

func (suite *ServerTestSuite) TestRegisterCustomer_DuplicateEmail() {
	suite.registerCustomer.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectAlreadyExistsError("email", "ana@example.com")).Once()

	rec := suite.do(http.MethodPost, "/clientes", `{"nombre":"Ana","email":"ana@example.com","telefono":"555-0100"}`)

	body := suite.assertError(rec, http.StatusConflict)
	suite.Contains(body["message"], "email")
}

func (suite *ServerTestSuite) TestRegisterCustomer_EmptyFieldIsRejectedBeforeStore() {
	rec := suite.do(http.MethodPost, "/clientes", `{"nombre":"","email":"ana@example.com","telefono":"555-0100"}`)

	body := suite.assertError(rec, http.StatusBadRequest)
	suite.Contains(body["message"], "name")
	suite.registerCustomer.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestRegisterCustomer_MissingFieldFailsValidation() {
	rec := suite.do(http.MethodPost, "/clientes", `{"nombre":"Ana","email":"ana@example.com"}`)

	body := suite.assertError(rec, http.StatusBadRequest)
	suite.Contains(body["message"], "telefono")
}

func (suite *ServerTestSuite) TestRegisterCustomer_MalformedJSON() {
	rec := suite.do(http.MethodPost, "/clientes", `{"nombre":`)

	suite.assertError(rec, http.StatusBadRequest)
}

func (suite *ServerTestSuite) TestLoginCustomer_Success() {
	id := kernel.NewUUID()
	suite.authenticateCustomer.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.AuthenticateCustomerQuery) bool {
		return q.Email() == "ana@example.com" && q.Phone() == "555-0100"
	})).Return(queries.CustomerResponse{
		ID: id, Name: "Ana", Email: "ana@example.com", Phone: "555-0100",
	}, nil).Once()

	rec := suite.do(http.MethodPost, "/clientes/login", `{"email":"ana@example.com","telefono":"555-0100"}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]any
	suite.decode(rec, &body)
	suite.Equal(id.String(), body["id"])
}

func (suite *ServerTestSuite) TestLoginCustomer_InvalidCredentials() {
	suite.authenticateCustomer.On("Handle", mock.Anything, mock.Anything).
		Return(nil, queries.ErrInvalidCredentials).Once()

	rec := suite.do(http.MethodPost, "/clientes/login", `{"email":"ana@example.com","telefono":"000"}`)

	suite.assertError(rec, http.StatusUnauthorized)
}

func (suite *ServerTestSuite) TestLoginCustomer_EmptyPhone() {
	rec := suite.do(http.MethodPost, "/clientes/login", `{"email":"ana@example.com","telefono":""}`)

	suite.assertError(rec, http.StatusBadRequest)
}

func (suite *ServerTestSuite) TestGetCustomer() {
	id := kernel.NewUUID()
	suite.getCustomer.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCustomerQuery) bool {
		return q.CustomerID().IsEqual(id)
	})).Return(queries.CustomerResponse{ID: id, Name: "Ana", Email: "a@x", Phone: "1"}, nil).Once()

	rec := suite.do(http.MethodGet, "/clientes/"+id.String(), "")

	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (suite *ServerTestSuite) TestGetCustomer_NotFound() {
	suite.getCustomer.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("customer", "x")).Once()

	rec := suite.do(http.MethodGet, "/clientes/"+kernel.NewUUID().String(), "")

	suite.assertError(rec, http.StatusNotFound)
}

func (suite *ServerTestSuite) TestGetCustomer_MalformedID() {
	rec := suite.do(http.MethodGet, "/clientes/not-a-uuid", "")

	suite.assertError(rec, http.StatusBadRequest)
}

func (suite *ServerTestSuite) TestNilIDIsReportedAsMissingID() {
	const nilID = "00000000-0000-0000-0000-000000000000"

	for _, target := range []string{"/clientes/" + nilID, "/clientes/" + nilID + "/ordenes", "/ordenes/" + nilID} {
		rec := suite.do(http.MethodGet, target, "")

		body := suite.assertError(rec, http.StatusBadRequest)
		suite.Equal("value is required: id", body["message"], target)
	}

	rec := suite.do(http.MethodPatch, "/ordenes/"+nilID+"/estado", `{"estado":"preparing"}`)
	body := suite.assertError(rec, http.StatusBadRequest)
	suite.Equal("value is required: id", body["message"])

	rec = suite.do(http.MethodPost, "/ordenes", fmt.Sprintf(`{"cliente_id":%q,"platillo_nombre":"Taco"}`, nilID))
	body = suite.assertError(rec, http.StatusBadRequest)
	suite.Equal("value is required: customerId", body["message"])
}

func (suite *ServerTestSuite) TestListCustomerOrders_PreservesOrder() {
	customerID := kernel.NewUUID()
	notes := "extra salsa"
	newer := queries.OrderResponse{
		ID: kernel.NewUUID(), CustomerID: customerID, CustomerName: "Ana",
		DishName: "Taco", Notes: &notes, Status: order.Preparing,
		CreatedAt: time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
	}
	older := queries.OrderResponse{
		ID: kernel.NewUUID(), CustomerID: customerID,
		DishName: "Soup", Status: order.Pending,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	suite.listCustomerOrders.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.OrderResponse{newer, older}, nil).Once()

	rec := suite.do(http.MethodGet, "/clientes/"+customerID.String()+"/ordenes", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body []map[string]any
	suite.decode(rec, &body)
	suite.Require().Len(body, 2)
	suite.Equal(newer.ID.String(), body[0]["id"])
	suite.Equal("Ana", body[0]["cliente_nombre"])
	suite.Equal("extra salsa", body[0]["notes"])
	suite.Equal("preparing", body[0]["estado"])
	suite.Equal("2024-05-02T12:00:00Z", body[0]["creado"])
	suite.Equal(older.ID.String(), body[1]["id"])
	suite.NotContains(body[1], "cliente_nombre")
	suite.Contains(body[1], "notes")
	suite.Nil(body[1]["notes"])
}

func (suite *ServerTestSuite) TestListCustomerOrders_Empty() {
	suite.listCustomerOrders.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.OrderResponse{}, nil).Once()

	rec := suite.do(http.MethodGet, "/clientes/"+kernel.NewUUID().String()+"/ordenes", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestPlaceOrder_Created() {
	customerID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, "Taco", nil, time.Now())
	suite.Require().NoError(err)

	suite.placeOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PlaceOrderCommand) bool {
		return cmd.CustomerID().IsEqual(customerID) && cmd.DishName() == "Taco" && cmd.Notes() == nil
	})).Return(o, nil).Once()

	rec := suite.do(http.MethodPost, "/ordenes", fmt.Sprintf(`{"cliente_id":%q,"platillo_nombre":"Taco"}`, customerID))

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]any
	suite.decode(rec, &body)
	suite.Equal(o.ID().String(), body["id"])
	suite.Equal("pending", body["estado"])
	suite.Contains(body, "notes")
	suite.Nil(body["notes"])
}

func (suite *ServerTestSuite) TestPlaceOrder_EmptyNotesArePassedThrough() {
	suite.placeOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PlaceOrderCommand) bool {
		return cmd.Notes() != nil && *cmd.Notes() == ""
	})).Return(nil, errs.NewObjectNotFoundError("customer", "x")).Once()

	rec := suite.do(http.MethodPost, "/ordenes",
		fmt.Sprintf(`{"cliente_id":%q,"platillo_nombre":"Taco","notes":""}`, kernel.NewUUID()))

	suite.assertError(rec, http.StatusNotFound)
}

func (suite *ServerTestSuite) TestPlaceOrder_MalformedCustomerID() {
	rec := suite.do(http.MethodPost, "/ordenes", `{"cliente_id":"abc","platillo_nombre":"Taco"}`)

	body := suite.assertError(rec, http.StatusBadRequest)
	suite.Contains(body["message"], "customerId")
}

func (suite *ServerTestSuite) TestPlaceOrder_EmptyDishName() {
	rec := suite.do(http.MethodPost, "/ordenes", fmt.Sprintf(`{"cliente_id":%q,"platillo_nombre":""}`, kernel.NewUUID()))

	body := suite.assertError(rec, http.StatusBadRequest)
	suite.Contains(body["message"], "dishName")
}

func (suite *ServerTestSuite) TestGetOrder_NotFound() {
	suite.getOrder.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("order", "x")).Once()

	rec := suite.do(http.MethodGet, "/ordenes/"+kernel.NewUUID().String(), "")

	suite.assertError(rec, http.StatusNotFound)
}

func (suite *ServerTestSuite) TestUpdateOrderStatus() {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Taco", nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(o.ChangeStatus(order.Preparing, order.Permissive, time.Now()))

	suite.advanceOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdvanceOrderStatusCommand) bool {
		return cmd.OrderID().IsEqual(o.ID()) && cmd.Status() == order.Preparing
	})).Return(o, nil).Once()

	rec := suite.do(http.MethodPatch, "/ordenes/"+o.ID().String()+"/estado", `{"estado":"preparing"}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]any
	suite.decode(rec, &body)
	suite.Equal("preparing", body["estado"])
}

func (suite *ServerTestSuite) TestUpdateOrderStatus_InvalidStatus() {
	rec := suite.do(http.MethodPatch, "/ordenes/"+kernel.NewUUID().String()+"/estado", `{"estado":"cooking"}`)

	body := suite.assertError(rec, http.StatusBadRequest)
	suite.Contains(body["message"], "pending, preparing, delivered")
}

func (suite *ServerTestSuite) TestUpdateOrderStatus_TransitionNotAllowed() {
	suite.advanceOrderStatus.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewTransitionIsNotAllowedError("status", order.Delivered, order.Pending)).Once()

	rec := suite.do(http.MethodPatch, "/ordenes/"+kernel.NewUUID().String()+"/estado", `{"estado":"pending"}`)

	suite.assertError(rec, http.StatusConflict)
}

func (suite *ServerTestSuite) TestUpdateOrderStatus_StoreUnavailable() {
	suite.advanceOrderStatus.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewStoreUnavailableError(errors.New("dial tcp: connection refused"))).Once()

	rec := suite.do(http.MethodPatch, "/ordenes/"+kernel.NewUUID().String()+"/estado", `{"estado":"delivered"}`)

	body := suite.assertError(rec, http.StatusServiceUnavailable)
	suite.NotContains(body["message"], "dial tcp")
}

func (suite *ServerTestSuite) TestUnexpectedErrorHidesDetails() {
	suite.getOrder.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: relation does not exist")).Once()

	rec := suite.do(http.MethodGet, "/ordenes/"+kernel.NewUUID().String(), "")

	body := suite.assertError(rec, http.StatusInternalServerError)
	suite.Equal("Internal server error", body["message"])
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	rec := suite.do(http.MethodGet, "/missing.html", "")

	suite.assertError(rec, http.StatusNotFound)
}

func (suite *ServerTestSuite) TestMetricsEndpoint() {
	suite.do(http.MethodGet, "/health", "")

	rec := suite.do(http.MethodGet, "/metrics", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `restaurant_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func (suite *ServerTestSuite) TestPanicIsCountedAsServerError() {
	suite.e.GET("/panic", func(echo.Context) error { panic("boom") })

	rec := suite.do(http.MethodGet, "/panic", "")
	suite.Equal(http.StatusInternalServerError, rec.Code)

	rec = suite.do(http.MethodGet, "/metrics", "")
	suite.Contains(rec.Body.String(), `restaurant_http_requests_total{method="GET",route="/panic",status="500"} 1`)
}

func (suite *ServerTestSuite) TestSwaggerDocument() {
	rec := suite.do(http.MethodGet, "/swagger/doc.json", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "/ordenes/{id}/estado")
}

func (suite *ServerTestSuite) TestCORS() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()

	suite.e.ServeHTTP(rec, req)

	suite.Equal("*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"joined required", errors.Join(errs.NewValueIsRequiredError("email"), errs.NewValueIsRequiredError("phone")), http.StatusBadRequest},
		{"credentials", queries.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", errs.NewObjectNotFoundError("order", "1"), http.StatusNotFound},
		{"already exists", errs.NewObjectAlreadyExistsError("email", "a"), http.StatusConflict},
		{"transition", errs.NewTransitionIsNotAllowedError("status", "delivered", "pending"), http.StatusConflict},
		{"unavailable", errs.NewStoreUnavailableError(nil), http.StatusServiceUnavailable},
		{"wrapped", fmt.Errorf("place order: %w", errs.NewObjectNotFoundError("customer", "1")), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpadapter.StatusCode(tt.err))
		})
	}
}

func TestNewRouter_DefaultsToPrivateRegistry(t *testing.T) {
	server := httpadapter.NewServer(nil, nil, nil, nil, nil, nil, nil)

	first, err := httpadapter.NewRouter(server, httpadapter.RouterConfig{})
	require.NoError(t, err)
	second, err := httpadapter.NewRouter(server, httpadapter.RouterConfig{})
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}
