package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/pkg/dberr"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its customer name, or
// errs.ObjectNotFoundError (param "order").
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM ordenes o
		LEFT JOIN clientes c ON c.id = o.cliente_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, dberr.Wrap(err)
	}

	return resp, nil
}
