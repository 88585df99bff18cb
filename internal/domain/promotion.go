package domain

import (
	"fmt"

	"github.com/Pesokrava/store_inventory/internal/pkg/validator"
)

// Promotion is a discount strategy attached to at most one product at a time.
// Apply returns the monetary amount to subtract from price * quantity; it is
// a pure function of the product's current price and the requested quantity.
// Implementations read the price only through the Product accessor.
type Promotion interface {
	Name() string
	Apply(p Product, quantity int) float64
}

// SecondHalfPrice halves the price of one unit when buying two or more.
type SecondHalfPrice struct {
	name string
}

// NewSecondHalfPrice creates a second-item-at-half-price promotion.
func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

// Name returns the promotion display name
func (s *SecondHalfPrice) Name() string {
	return s.name
}

// Apply discounts half of one unit price when quantity > 1. The discount does
// not grow with larger quantities.
func (s *SecondHalfPrice) Apply(p Product, quantity int) float64 {
	if quantity > 1 {
		return p.Price() / 2
	}
	return 0
}

// ThirdOneFree gives one unit away when buying three or more.
type ThirdOneFree struct {
	name string
}

// NewThirdOneFree creates a buy-2-get-1-free promotion.
func NewThirdOneFree(name string) *ThirdOneFree {
	return &ThirdOneFree{name: name}
}

// Name returns the promotion display name
func (t *ThirdOneFree) Name() string {
	return t.name
}

// Apply discounts exactly one unit price when quantity > 2, independent of
// how many multiples of three are in the order.
func (t *ThirdOneFree) Apply(p Product, quantity int) float64 {
	if quantity > 2 {
		return p.Price()
	}
	return 0
}

// PercentDiscount takes a fixed percentage off the whole line.
type PercentDiscount struct {
	name    string
	percent float64
}

// NewPercentDiscount creates a percentage discount promotion.
// The percent must be within [0, 100].
func NewPercentDiscount(name string, percent float64) (*PercentDiscount, error) {
	if err := validator.Get().Var(percent, "gte=0,lte=100"); err != nil {
		return nil, fmt.Errorf("%w: percent must be between 0 and 100, got %g", ErrInvalidInput, percent)
	}

	return &PercentDiscount{name: name, percent: percent}, nil
}

// Name returns the promotion display name
func (d *PercentDiscount) Name() string {
	return d.name
}

// Apply discounts price * quantity * percent / 100; scales with quantity.
func (d *PercentDiscount) Apply(p Product, quantity int) float64 {
	return p.Price() * float64(quantity) * d.percent / 100
}
