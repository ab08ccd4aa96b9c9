package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCategory is returned when a category tag names none of the
	// known product categories.
	ErrInvalidCategory = errors.New("catalog: invalid category")

	// ErrInvalidVariant is returned when a variant tag does not belong to
	// the requested category.
	ErrInvalidVariant = errors.New("catalog: invalid variant")

	// ErrNegativeQuantity is returned when a negative quantity is requested,
	// either as a stock mutation or as an order-line quantity.
	ErrNegativeQuantity = errors.New("catalog: quantity cannot be negative")

	// ErrInsufficientStock is returned when a stock reduction exceeds the
	// units currently available.
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
)

// CreationError reports a product that could not be built because required
// fields were missing or malformed. No partial product exists when it is
// returned.
type CreationError struct {
	Variant Variant
	Fields  []string
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("catalog: cannot create %s: missing or invalid fields: %s",
		e.Variant, strings.Join(e.Fields, ", "))
}
