package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Defines values for OrderStatus.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Health defines model for Health.
type Health struct {
	Ok bool `json:"ok"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// Credentials defines model for Credentials.
type Credentials struct {
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// Customer defines model for Customer.
type Customer struct {
	Id       openapi_types.UUID `json:"id"`
	Nombre   string             `json:"nombre"`
	Email    string             `json:"email"`
	Telefono string             `json:"telefono"`
}

// NewOrder defines model for NewOrder. ClienteId stays a string so a
// malformed identifier is reported like any other invalid field.
type NewOrder struct {
	ClienteId      string  `json:"cliente_id"`
	PlatilloNombre string  `json:"platillo_nombre"`
	Notes          *string `json:"notes,omitempty"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Estado string `json:"estado"`
}

// Order defines model for Order. Notes is serialized as null when absent.
type Order struct {
	Id             openapi_types.UUID `json:"id"`
	ClienteId      openapi_types.UUID `json:"cliente_id"`
	ClienteNombre  *string            `json:"cliente_nombre,omitempty"`
	PlatilloNombre string             `json:"platillo_nombre"`
	Notes          *string            `json:"notes"`
	Estado         OrderStatus        `json:"estado"`
	Creado         time.Time          `json:"creado"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterCustomerJSONRequestBody defines body for RegisterCustomer for application/json ContentType.
type RegisterCustomerJSONRequestBody = NewCustomer

// LoginCustomerJSONRequestBody defines body for LoginCustomer for application/json ContentType.
type LoginCustomerJSONRequestBody = Credentials

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = StatusUpdate
