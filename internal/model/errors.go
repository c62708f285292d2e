package model

import "errors"

// Domain error values. Handlers map these onto HTTP status codes; anything
// not listed here is reported as an internal error without detail.
var (
	ErrValidation           = errors.New("validation failed")
	ErrNameRequired         = errors.New("product name is required")
	ErrInvalidQuantity      = errors.New("quantity must be between 1 and 9999")
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrInvalidOperation     = errors.New("invalid operation")
	ErrBatchArgs            = errors.New("operation and product_ids are required")
	ErrInvalidEAN           = errors.New("invalid EAN format")
	ErrProductNotFound      = errors.New("product not found")
	ErrShoppingItemNotFound = errors.New("shopping list item not found")

	ErrUpstreamNotFound    = errors.New("product not in external database")
	ErrUpstreamTimeout     = errors.New("external product lookup timed out")
	ErrUpstreamUnavailable = errors.New("external product database unreachable")
)
