package customer

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")
)

// Customer is the aggregate root of the customer directory.
//
// Email is stored exactly as provided: no case folding, no trimming.
// Phone doubles as the login secret together with the email.
type Customer struct {
	id    kernel.UUID
	name  string
	email string
	phone string

	isConstructed bool
}

// NewCustomer registers a new customer identity. Every missing field is
// reported, joined into a single error.
//
// Example:
//
//	c, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "ana@example.com", "555-0101")
//	if err != nil {
//	    var required *errs.ValueIsRequiredError
//	    if errors.As(err, &required) {
//	        // required.ParamName is the first missing field
//	    }
//	}
func NewCustomer(id kernel.UUID, name, email, phone string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer read from storage.
func RestoreCustomer(id kernel.UUID, name, email, phone string) (*Customer, error) {
	return NewCustomer(id, name, email, phone)
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
