// Package errs holds the error categories shared by the domain, the use cases
// and the adapters.
//
// Every category has a sentinel (ErrObjectNotFound, ErrObjectAlreadyExists,
// ErrValueIsInvalid, ErrValueIsOutOfRange, ErrValueIsRequired,
// ErrPermissionDenied) and a struct carrying the details, built with New...Error
// or New...ErrorWithCause. Unwrap yields the sentinel and Is also matches the
// cause, so a domain sentinel passed as cause stays visible:
//
//	err := errs.NewValueIsInvalidErrorWithCause("status", order.ErrInvalidStatus)
//	errors.Is(err, errs.ErrValueIsInvalid) // true
//	errors.Is(err, order.ErrInvalidStatus) // true
//
// The HTTP adapter turns categories into status codes; see its error handler.
package errs
