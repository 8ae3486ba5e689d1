// Package errs holds the error taxonomy shared by the domain, the use cases
// and the adapters.
//
// Every error type unwraps to one sentinel, which is what callers branch on:
//
//	ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange  validation (HTTP 400)
//	ErrObjectNotFound                                            not found (HTTP 404)
//	ErrConflict                                                  state conflict (HTTP 409)
//
// Constructors come in pairs, with and without a cause. Parameter names and
// values are stripped of line breaks before they reach a message.
package errs
