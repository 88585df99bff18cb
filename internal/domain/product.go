package domain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Pesokrava/store_inventory/internal/pkg/validator"
)

// Product is the shared capability of every catalog entry: identity, price,
// stock accounting, active state, an optional promotion, and the purchase
// operation with variant-specific rules. The unexported snapshot methods keep
// the variant set closed to this package.
type Product interface {
	ID() uuid.UUID
	Name() string
	Price() float64
	Quantity() int
	IsActive() bool
	Activate()
	Deactivate()
	AdjustQuantity(delta int)
	Promotion() Promotion
	SetPromotion(p Promotion)
	Purchase(quantity int) (float64, error)
	Describe() string

	snapshot() productState
	restore(state productState)
}

// productState is the mutable part of a product, captured for order rollback.
type productState struct {
	quantity int
	active   bool
}

// productParams carries construction arguments through validation
type productParams struct {
	Name     string  `validate:"required"`
	Price    float64 `validate:"gte=0"`
	Quantity int     `validate:"gte=0"`
}

// StandardProduct is a catalog entry with real, finite stock. Purchasing
// decrements the on-hand quantity and deactivates the product when it
// reaches exactly zero.
type StandardProduct struct {
	id        uuid.UUID
	name      string
	price     float64
	quantity  int
	active    bool
	promotion Promotion
}

// NewProduct creates a standard stock-tracked product. It fails with
// ErrInvalidInput on an empty name, negative price, or negative quantity;
// a product never exists in an invalid state. New products start active.
func NewProduct(name string, price float64, quantity int) (*StandardProduct, error) {
	if err := validator.Get().Struct(productParams{Name: name, Price: price, Quantity: quantity}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &StandardProduct{
		id:       uuid.New(),
		name:     name,
		price:    price,
		quantity: quantity,
		active:   true,
	}, nil
}

// ID returns the catalog identifier assigned at construction
func (p *StandardProduct) ID() uuid.UUID {
	return p.id
}

// Name returns the product name
func (p *StandardProduct) Name() string {
	return p.name
}

// Price returns the unit price
func (p *StandardProduct) Price() float64 {
	return p.price
}

// Quantity returns the current quantity on hand
func (p *StandardProduct) Quantity() int {
	return p.quantity
}

// IsActive reports whether the product is eligible for listing and ordering
func (p *StandardProduct) IsActive() bool {
	return p.active
}

// Activate marks the product active
func (p *StandardProduct) Activate() {
	p.active = true
}

// Deactivate marks the product inactive
func (p *StandardProduct) Deactivate() {
	p.active = false
}

// AdjustQuantity adds delta to the quantity on hand. Reaching exactly zero
// deactivates the product.
func (p *StandardProduct) AdjustQuantity(delta int) {
	p.quantity += delta

	if p.quantity == 0 {
		p.active = false
	}
}

// Promotion returns the attached promotion, or nil
func (p *StandardProduct) Promotion() Promotion {
	return p.promotion
}

// SetPromotion attaches a promotion, replacing any existing one
func (p *StandardProduct) SetPromotion(promo Promotion) {
	p.promotion = promo
}

// Purchase buys the given quantity. It fails with ErrInvalidOrder when the
// quantity is not positive or exceeds the stock on hand, without mutating
// anything. On success it decrements stock, deactivates the product if stock
// hits zero, and returns the charge after any attached promotion.
func (p *StandardProduct) Purchase(quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidOrder, quantity)
	}
	if quantity > p.quantity {
		return 0, fmt.Errorf("%w: requested %d of %q but only %d in stock", ErrInvalidOrder, quantity, p.name, p.quantity)
	}

	p.quantity -= quantity
	if p.quantity == 0 {
		p.active = false
	}

	return p.charge(quantity), nil
}

// charge computes the price for a quantity, less the attached promotion's
// discount. The result is not clamped at zero.
func (p *StandardProduct) charge(quantity int) float64 {
	total := p.price * float64(quantity)
	if p.promotion != nil {
		total -= p.promotion.Apply(p, quantity)
	}
	return total
}

// Describe returns the display line for the product
func (p *StandardProduct) Describe() string {
	return fmt.Sprintf("%s, Price: $%g, Quantity: %d, Promotion: %s", p.name, p.price, p.quantity, promotionName(p.promotion))
}

func (p *StandardProduct) snapshot() productState {
	return productState{quantity: p.quantity, active: p.active}
}

func (p *StandardProduct) restore(state productState) {
	p.quantity = state.quantity
	p.active = state.active
}

// NonStockedProduct is a catalog entry with no meaningful stock count, such
// as a software license. Purchasing never checks or decrements stock and
// never deactivates the product.
type NonStockedProduct struct {
	StandardProduct
}

// NewNonStockedProduct creates a product with unlimited availability.
// Its quantity on hand is fixed at zero and it stays active regardless.
func NewNonStockedProduct(name string, price float64) (*NonStockedProduct, error) {
	base, err := NewProduct(name, price, 0)
	if err != nil {
		return nil, err
	}
	return &NonStockedProduct{StandardProduct: *base}, nil
}

// Purchase buys the given quantity without any stock bookkeeping.
func (p *NonStockedProduct) Purchase(quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidOrder, quantity)
	}

	return p.charge(quantity), nil
}

// Describe returns the display line for the product
func (p *NonStockedProduct) Describe() string {
	return fmt.Sprintf("%s, Price: $%g, Quantity: Unlimited, Promotion: %s", p.name, p.price, promotionName(p.promotion))
}

// LimitedProduct is a catalog entry that can only be bought up to a fixed
// amount per order, such as a shipping fee.
type LimitedProduct struct {
	StandardProduct
	maxPerOrder int
}

// NewLimitedProduct creates a product capped at maxPerOrder units per order.
// The cap must be at least one.
func NewLimitedProduct(name string, price float64, quantity, maxPerOrder int) (*LimitedProduct, error) {
	if err := validator.Get().Var(maxPerOrder, "gte=1"); err != nil {
		return nil, fmt.Errorf("%w: max per order must be at least 1, got %d", ErrInvalidInput, maxPerOrder)
	}

	base, err := NewProduct(name, price, quantity)
	if err != nil {
		return nil, err
	}
	return &LimitedProduct{StandardProduct: *base, maxPerOrder: maxPerOrder}, nil
}

// MaxPerOrder returns the per-order purchase cap
func (p *LimitedProduct) MaxPerOrder() int {
	return p.maxPerOrder
}

// Purchase buys the given quantity, rejecting any amount over the per-order
// cap. The cap replaces the stock guard rather than composing with it: stock
// is decremented unconditionally and may go negative. Known sharp edge,
// pinned by a test.
func (p *LimitedProduct) Purchase(quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidOrder, quantity)
	}
	if quantity > p.maxPerOrder {
		return 0, fmt.Errorf("%w: %q is limited to %d per order", ErrInvalidOrder, p.name, p.maxPerOrder)
	}

	p.quantity -= quantity
	if p.quantity == 0 {
		p.active = false
	}

	return p.charge(quantity), nil
}

// Describe returns the display line for the product. The "Limited to 1 per
// order" label is fixed text regardless of the configured cap.
func (p *LimitedProduct) Describe() string {
	return fmt.Sprintf("%s, Price: $%g, Limited to 1 per order, Promotion: %s", p.name, p.price, promotionName(p.promotion))
}

func promotionName(promo Promotion) string {
	if promo == nil {
		return "none"
	}
	return promo.Name()
}
