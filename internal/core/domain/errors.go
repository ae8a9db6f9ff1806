package domain

import "errors"

// ErrInvalidInput marks validation failures. Callers wrap it with detail:
//
//	fmt.Errorf("%w: qty must be a positive integer", domain.ErrInvalidInput)
//
// so the HTTP layer can match with errors.Is and still surface the message.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnavailable marks storage or infrastructure failures that should not
// leak driver detail to the caller.
var ErrUnavailable = errors.New("service unavailable")
