package service

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors
var (
	ErrInvalidTable         = errors.New("invalid table number")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrObservationTooLong   = errors.New("observation exceeds 200 characters")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidPrice         = errors.New("price must be greater than zero")
	ErrNoIngredients        = errors.New("at least one ingredient is required")
	ErrDuplicateIngredient  = errors.New("ingredient listed more than once")
	ErrUnknownIngredient    = errors.New("ingredient references an unknown product")
	ErrMissingUnitVolume    = errors.New("fractional products need unit volume and stock units")
	ErrInvalidItemRequest   = errors.New("exactly one of product_id, composite_id or portion_id is required")
	ErrWrongCartKind        = errors.New("operation not allowed for this cart")
	ErrInactiveItem         = errors.New("item is not available for sale")
)

// Not-found errors
var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCompositeNotFound = errors.New("composite product not found")
	ErrPortionNotFound   = errors.New("portion not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartLineNotFound  = errors.New("cart line not found")
	ErrStockNotFound     = errors.New("stock item not found")
)

// InsufficientStockError names every ingredient short for the requested operation.
// Nothing is mutated when it is returned.
type InsufficientStockError struct {
	Missing []string
}

func (e *InsufficientStockError) Error() string {
	return "insufficient stock: " + strings.Join(e.Missing, ", ")
}

type NoOrdersError struct {
	Table int
}

func (e *NoOrdersError) Error() string {
	return fmt.Sprintf("no orders for table #%d", e.Table)
}

// ValidationError wraps a failed struct validation from pkg/validator
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field '%s' failed on tag '%s'", e.Field, e.Tag)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	for _, target := range []error{
		ErrInvalidTable, ErrEmptyCart, ErrInvalidQuantity, ErrObservationTooLong,
		ErrInvalidPaymentMethod, ErrInvalidPrice, ErrNoIngredients, ErrDuplicateIngredient,
		ErrUnknownIngredient, ErrMissingUnitVolume, ErrInvalidItemRequest, ErrWrongCartKind,
		ErrInactiveItem,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func IsNotFound(err error) bool {
	var noOrders *NoOrdersError
	if errors.As(err, &noOrders) {
		return true
	}
	for _, target := range []error{
		ErrCategoryNotFound, ErrProductNotFound, ErrCompositeNotFound, ErrPortionNotFound,
		ErrOrderNotFound, ErrCartNotFound, ErrCartLineNotFound, ErrStockNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
