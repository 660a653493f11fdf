// Package queries contains the read-only operations of the restaurant:
// customer lookup and authentication, order listings and counts.
// Handlers read the store directly with SQL and return flat response
// structs instead of aggregates.
package queries

import (
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/dberr"

	"github.com/google/uuid"
)

// CustomerResponse is a customer as returned by the directory queries.
type CustomerResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}

// OrderResponse is an order enriched with the name of its customer.
// CustomerName is empty when the customer row could not be joined.
type OrderResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	DishName     string
	Notes        *string
	Status       order.Status
	CreatedAt    time.Time
}

const customerColumns = `c.id, c.nombre, c.email, c.telefono`

const orderColumns = `
	o.id,
	o.cliente_id,
	c.nombre,
	o.platillo_nombre,
	o.notes,
	o.estado,
	o.creado`

type rowScanner interface {
	Scan(dest ...any) error
}

// rowIterator is the part of *sql.Rows the list handlers walk.
type rowIterator interface {
	rowScanner
	Next() bool
	Err() error
}

// collectOrders scans every row. Store errors raised mid-iteration are
// classified like the ones raised by the query itself.
func collectOrders(rows rowIterator) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrder(rows)
		if err != nil {
			return nil, dberr.Wrap(err)
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err)
	}
	return orders, nil
}

// collectCounts adds the (status, count) rows to counts.
func collectCounts(rows rowIterator, counts map[order.Status]int64) error {
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return dberr.Wrap(err)
		}
		counts[order.Status(status)] = count
	}

	return dberr.Wrap(rows.Err())
}

func scanCustomer(row rowScanner) (CustomerResponse, error) {
	var resp CustomerResponse
	var id uuid.UUID

	if err := row.Scan(&id, &resp.Name, &resp.Email, &resp.Phone); err != nil {
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}
	resp.ID = customerID

	return resp, nil
}

func scanOrder(row rowScanner) (OrderResponse, error) {
	var resp OrderResponse
	var id, customerID uuid.UUID
	var name, notes sql.NullString
	var status string

	if err := row.Scan(&id, &customerID, &name, &resp.DishName, &notes, &status, &resp.CreatedAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = ownerID

	resp.Status, err = order.ParseStatus(status)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.CustomerName = name.String
	if notes.Valid {
		n := notes.String
		resp.Notes = &n
	}
	resp.CreatedAt = resp.CreatedAt.UTC()

	return resp, nil
}
