// Package errs holds the generic, domain-agnostic error kinds shared by the order
// engine, the tool surface and the HTTP layer.
//
// Every kind is a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) plus a struct carrying the parameter
// name and an optional cause. The structs unwrap to their sentinel, so callers
// classify with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return failure(CodeNotFound, err.Error())
//	}
//
// Order and catalog specific kinds live in their own packages.
package errs
