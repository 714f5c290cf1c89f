package billing

import (
	"errors"
	"fmt"
)

// Sentinel validation errors. Callers match these with errors.Is.
var (
	ErrNoCustomer = errors.New("no customer selected")

	ErrNoItems = errors.New("invoice has no line items")

	// ErrInvalidItem covers a line item with an empty name or a
	// non-positive rate or quantity.
	ErrInvalidItem = errors.New("invalid line item")

	// ErrInvalidGSTRate is returned for rates outside the fixed slab set.
	ErrInvalidGSTRate = errors.New("gst rate is not a recognised slab")

	ErrNegativeDiscount = errors.New("discount cannot be negative")

	ErrInvalidStatus = errors.New("invoice can only be saved as draft or sent")
)

// ValidationError wraps a sentinel error with detail about the failing field.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
