package domain

import "errors"

var (
	ErrEmptySKU             = errors.New("sku must not be empty")
	ErrNegativeQuantity     = errors.New("quantity must be non-negative")
	ErrNonPositiveAmount    = errors.New("take amount must be positive")
	ErrItemExists           = errors.New("already exists")
	ErrItemNotFound         = errors.New("not found")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)
