package queries

import (
	"context"

	"restaurant/internal/pkg/dberr"

	"gorm.io/gorm"
)

// ListCustomerOrdersQueryHandler reads a customer's order history.
type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

// Handle returns the orders sorted by creation time, newest first, ties
// broken by id. An unknown customer and a customer without orders both yield
// an empty, non-nil slice.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM ordenes o
		LEFT JOIN clientes c ON c.id = o.cliente_id
		WHERE o.cliente_id = ?
		ORDER BY o.creado DESC, o.id DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	return collectOrders(rows)
}
