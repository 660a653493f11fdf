package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Liveness probe
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// Register a customer
	// (POST /clientes)
	RegisterCustomer(ctx echo.Context) error
	// Authenticate a customer by email and phone
	// (POST /clientes/login)
	LoginCustomer(ctx echo.Context) error
	// Get a customer
	// (GET /clientes/{id})
	GetCustomer(ctx echo.Context, id openapi_types.UUID) error
	// List the orders of a customer, newest first
	// (GET /clientes/{id}/ordenes)
	ListCustomerOrders(ctx echo.Context, id openapi_types.UUID) error
	// Place an order
	// (POST /ordenes)
	PlaceOrder(ctx echo.Context) error
	// Get an order
	// (GET /ordenes/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// Change the status of an order
	// (PATCH /ordenes/{id}/estado)
	UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) RegisterCustomer(ctx echo.Context) error {
	return w.Handler.RegisterCustomer(ctx)
}

func (w *ServerInterfaceWrapper) LoginCustomer(ctx echo.Context) error {
	return w.Handler.LoginCustomer(ctx)
}

func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCustomer(ctx, id)
}

func (w *ServerInterfaceWrapper) ListCustomerOrders(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListCustomerOrders(ctx, id)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

// bindID reads the "id" path parameter.
func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers with a path prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.POST(baseURL+"/clientes", wrapper.RegisterCustomer)
	router.POST(baseURL+"/clientes/login", wrapper.LoginCustomer)
	router.GET(baseURL+"/clientes/:id", wrapper.GetCustomer)
	router.GET(baseURL+"/clientes/:id/ordenes", wrapper.ListCustomerOrders)
	router.POST(baseURL+"/ordenes", wrapper.PlaceOrder)
	router.GET(baseURL+"/ordenes/:id", wrapper.GetOrder)
	router.PATCH(baseURL+"/ordenes/:id/estado", wrapper.UpdateOrderStatus)
}
