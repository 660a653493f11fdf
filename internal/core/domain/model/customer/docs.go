// Package customer models the diners registered with the restaurant.
//
// A Customer is identified by a system-assigned UUID and carries a name, an
// email and a phone number, all required. Email uniqueness is a store-level
// rule enforced by the persistence adapter, not by this package. Customers
// are never modified once registered.
package customer
