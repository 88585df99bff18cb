package domain

import "errors"

var (
	// ErrInvalidInput is returned when construction arguments fail validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOrder is returned when an order line cannot be fulfilled
	ErrInvalidOrder = errors.New("invalid order")

	// ErrNotFound is returned when a referenced product is not in the store
	ErrNotFound = errors.New("product not found")
)
