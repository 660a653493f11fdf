package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/pkg/dberr"

	"gorm.io/gorm"
)

// AuthenticateCustomerQueryHandler matches credentials against the directory.
type AuthenticateCustomerQueryHandler struct {
	db *gorm.DB
}

func NewAuthenticateCustomerQueryHandler(db *gorm.DB) AuthenticateCustomerQueryHandler {
	return AuthenticateCustomerQueryHandler{db: db}
}

// Handle returns the customer whose email and phone both match, or
// ErrInvalidCredentials. Email is unique, so at most one row can match.
func (h AuthenticateCustomerQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+customerColumns+`
		FROM clientes c
		WHERE c.email = ? AND c.telefono = ?
		LIMIT 1
	`, query.Email(), query.Phone()).Row()

	resp, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CustomerResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return CustomerResponse{}, dberr.Wrap(err)
	}

	return resp, nil
}
