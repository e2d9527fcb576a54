package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoSession                = errors.New("no user is logged in")
	ErrEmptyLogin               = errors.New("username is required")
	ErrEmptyPassword            = errors.New("password is required")
	ErrEmptyName                = errors.New("name is required")
	ErrEmptySKU                 = errors.New("SKU is required")
	ErrEmptySupplier            = errors.New("supplier is required")
	ErrNothingSelected          = errors.New("no product is selected")
	ErrSupplierChangeNotAllowed = errors.New("supplier cannot be changed")
)

// ValidationError reports a rejected input before anything reached storage.
// Field names the offending input (see the Field* constants).
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
