package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/pkg/dberr"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle returns the customer or errs.ObjectNotFoundError (param "customer").
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+customerColumns+`
		FROM clientes c
		WHERE c.id = ?
	`, query.CustomerID().Bytes()).Row()

	resp, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CustomerResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID().String())
	}
	if err != nil {
		return CustomerResponse{}, dberr.Wrap(err)
	}

	return resp, nil
}
