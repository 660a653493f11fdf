// Package errs provides the error taxonomy shared by the restaurant service.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type carrying the details (ParamName, Cause, ...)
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify errors with errors.Is against the sentinels; the HTTP
// adapter maps each sentinel to a status code:
//   - ValueIsRequiredError, ValueIsInvalidError: 400
//   - ObjectNotFoundError: 404
//   - ObjectAlreadyExistsError, TransitionIsNotAllowedError: 409
//   - StoreUnavailableError: 503
package errs
