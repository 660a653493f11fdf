// Package order models the order ledger: dishes ordered by a customer and
// their kitchen lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding identity, owner, dish, notes, status and creation time
//   - Status: the closed set of lifecycle values (pending, preparing, delivered)
//   - TransitionPolicy: the rule deciding which status changes are accepted
//   - Event: facts recorded by the aggregate for publication after commit
//
// Every order starts as pending. Whether the status graph is enforced is a
// deployment choice: the permissive policy accepts any allowed value at any
// time, the forward-only policy accepts pending -> preparing -> delivered only.
package order
