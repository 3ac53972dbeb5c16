package calculator

import "errors"

// ErrDivisionByZero is matched by every DomainError via errors.Is.
var ErrDivisionByZero = errors.New("division by zero")

// DomainError reports an operation that is undefined for its inputs.
type DomainError struct {
	// Op is the operation that failed ("divide" or "floordiv").
	Op string
}

func (e *DomainError) Error() string {
	return e.Op + ": " + ErrDivisionByZero.Error()
}

func (e *DomainError) Unwrap() error {
	return ErrDivisionByZero
}
