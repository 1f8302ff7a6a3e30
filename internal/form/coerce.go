package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError reports a draft field that failed to coerce to its
// canonical type. It blocks submission; nothing is sent to the server.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s (got %q)", e.Field, e.Reason, e.Value)
}

// Money parses a price field into a float64 via exact decimal arithmetic,
// so "12.50" comes back as 12.5 and junk like "12,50" or "" is rejected
// instead of being silently coerced to zero.
func Money(field, value string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, &ValidationError{Field: field, Value: value, Reason: "must be a decimal amount"}
	}
	if d.IsNegative() {
		return 0, &ValidationError{Field: field, Value: value, Reason: "must not be negative"}
	}
	f, _ := d.Float64()
	return f, nil
}

// Count parses a non-negative integer field (stock, reorder level, quantity).
func Count(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ValidationError{Field: field, Value: value, Reason: "must be a whole number"}
	}
	if n < 0 {
		return 0, &ValidationError{Field: field, Value: value, Reason: "must not be negative"}
	}
	return n, nil
}

// ID parses an identifier field, e.g. the product picker in the add
// inventory dialog. Zero is rejected: it is the "Select a Product" blank.
func ID(field, value string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil || n == 0 {
		return 0, &ValidationError{Field: field, Value: value, Reason: "must reference an existing record"}
	}
	return uint(n), nil
}
