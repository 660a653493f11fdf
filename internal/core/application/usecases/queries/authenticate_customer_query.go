package queries

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrAuthenticateCustomerQueryIsNotConstructed = errors.New(
		"AuthenticateCustomerQuery must be created via NewAuthenticateCustomerQuery constructor",
	)

	// ErrInvalidCredentials means no customer has this email and phone pair.
	// It does not say which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthenticateCustomerQuery looks a customer up by email and phone.
// Both must match exactly: no case folding, no trimming.
//
// Example:
//
//	query, err := NewAuthenticateCustomerQuery("ana@example.com", "555-0101")
//	if err != nil {
//	    return err
//	}
//
//	c, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrInvalidCredentials) {
//	    // reject the login
//	}
type AuthenticateCustomerQuery struct {
	email string
	phone string

	guard guard.ConstructorGuard
}

func NewAuthenticateCustomerQuery(email, phone string) (AuthenticateCustomerQuery, error) {
	var missing []error
	if email == "" {
		missing = append(missing, errs.NewValueIsRequiredError("email"))
	}
	if phone == "" {
		missing = append(missing, errs.NewValueIsRequiredError("phone"))
	}
	if err := errors.Join(missing...); err != nil {
		return AuthenticateCustomerQuery{}, err
	}

	return AuthenticateCustomerQuery{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateCustomerQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateCustomerQueryIsNotConstructed)
}

func (q AuthenticateCustomerQuery) Email() string {
	return q.email
}

func (q AuthenticateCustomerQuery) Phone() string {
	return q.phone
}
