// Package http exposes the customer directory and the order ledger over
// HTTP. Routing and request models come from the api package; this package
// translates requests into commands and queries and maps their errors to
// status codes.
package http

import (
	"context"
	"net/http"

	"restaurant/internal/adapters/in/http/api"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type RegisterCustomerHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterCustomerCommand) (*customer.Customer, error)
}

type AuthenticateCustomerHandler interface {
	Handle(ctx context.Context, query queries.AuthenticateCustomerQuery) (queries.CustomerResponse, error)
}

type GetCustomerHandler interface {
	Handle(ctx context.Context, query queries.GetCustomerQuery) (queries.CustomerResponse, error)
}

type ListCustomerOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.OrderResponse, error)
}

type PlaceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

type AdvanceOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (*order.Order, error)
}

var _ api.ServerInterface = (*Server)(nil)

// Server implements api.ServerInterface. Handlers return errors unchanged;
// ErrorHandler turns them into responses.
type Server struct {
	// Command handlers
	registerCustomerHandler   RegisterCustomerHandler
	placeOrderHandler         PlaceOrderHandler
	advanceOrderStatusHandler AdvanceOrderStatusHandler

	// Query handlers
	authenticateCustomerHandler AuthenticateCustomerHandler
	getCustomerHandler          GetCustomerHandler
	listCustomerOrdersHandler   ListCustomerOrdersHandler
	getOrderHandler             GetOrderHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerCustomerHandler RegisterCustomerHandler,
	placeOrderHandler PlaceOrderHandler,
	advanceOrderStatusHandler AdvanceOrderStatusHandler,
	authenticateCustomerHandler AuthenticateCustomerHandler,
	getCustomerHandler GetCustomerHandler,
	listCustomerOrdersHandler ListCustomerOrdersHandler,
	getOrderHandler GetOrderHandler,
) *Server {
	return &Server{
		registerCustomerHandler:     registerCustomerHandler,
		placeOrderHandler:           placeOrderHandler,
		advanceOrderStatusHandler:   advanceOrderStatusHandler,
		authenticateCustomerHandler: authenticateCustomerHandler,
		getCustomerHandler:          getCustomerHandler,
		listCustomerOrdersHandler:   listCustomerOrdersHandler,
		getOrderHandler:             getOrderHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.Health{Ok: true})
}

// RegisterCustomer handles POST /clientes.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body api.RegisterCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), body.Nombre, body.Email, body.Telefono)
	if err != nil {
		return err
	}

	c, err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, api.Customer{
		Id:       c.ID().Bytes(),
		Nombre:   c.Name(),
		Email:    c.Email(),
		Telefono: c.Phone(),
	})
}

// LoginCustomer handles POST /clientes/login.
func (s *Server) LoginCustomer(ctx echo.Context) error {
	var body api.LoginCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	query, err := queries.NewAuthenticateCustomerQuery(body.Email, body.Telefono)
	if err != nil {
		return err
	}

	c, err := s.authenticateCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, customerResponse(c))
}

// GetCustomer handles GET /clientes/{id}.
func (s *Server) GetCustomer(ctx echo.Context, id openapi_types.UUID) error {
	customerID, err := pathID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return err
	}

	c, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, customerResponse(c))
}

// ListCustomerOrders handles GET /clientes/{id}/ordenes.
func (s *Server) ListCustomerOrders(ctx echo.Context, id openapi_types.UUID) error {
	customerID, err := pathID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID)
	if err != nil {
		return err
	}

	orders, err := s.listCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]api.Order, len(orders))
	for i, o := range orders {
		response[i] = orderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /ordenes.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body api.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	// An empty id is left zero so the command reports it as required.
	var customerID kernel.UUID
	if body.ClienteId != "" {
		parsed, err := kernel.UUIDFromString(body.ClienteId)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
		if parsed.Validate() != nil {
			return errs.NewValueIsRequiredError("customerId")
		}
		customerID = parsed
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID, body.PlatilloNombre, body.Notes)
	if err != nil {
		return err
	}

	o, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, orderModel(o))
}

// GetOrder handles GET /ordenes/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := pathID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderResponse(o))
}

// UpdateOrderStatus handles PATCH /ordenes/{id}/estado.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := pathID(id)
	if err != nil {
		return err
	}

	var body api.UpdateOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, body.Estado)
	if err != nil {
		return err
	}

	o, err := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderModel(o))
}

// pathID converts the bound {id} parameter. The nil UUID counts as missing.
func pathID(id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError("id")
	}
	return parsed, nil
}

func customerResponse(c queries.CustomerResponse) api.Customer {
	return api.Customer{
		Id:       c.ID.Bytes(),
		Nombre:   c.Name,
		Email:    c.Email,
		Telefono: c.Phone,
	}
}

func orderResponse(o queries.OrderResponse) api.Order {
	response := api.Order{
		Id:             o.ID.Bytes(),
		ClienteId:      o.CustomerID.Bytes(),
		PlatilloNombre: o.DishName,
		Notes:          o.Notes,
		Estado:         api.OrderStatus(o.Status),
		Creado:         o.CreatedAt,
	}
	if o.CustomerName != "" {
		name := o.CustomerName
		response.ClienteNombre = &name
	}
	return response
}

func orderModel(o *order.Order) api.Order {
	return api.Order{
		Id:             o.ID().Bytes(),
		ClienteId:      o.CustomerID().Bytes(),
		PlatilloNombre: o.DishName(),
		Notes:          o.Notes(),
		Estado:         api.OrderStatus(o.Status()),
		Creado:         o.CreatedAt(),
	}
}
