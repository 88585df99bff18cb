package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OrderLine is one entry of a shopping list: a product reference and the
// requested quantity.
type OrderLine struct {
	Product  Product
	Quantity int
}

// ShoppingList is an ordered sequence of order lines submitted together as
// one order attempt. It is built per attempt and not retained.
type ShoppingList []OrderLine

// Store is the aggregate root holding the product catalog. The collection is
// ordered; insertion order drives display numbering. The store exclusively
// owns its collection and each product exclusively owns its quantity/active
// pair; all mutation goes through the defined operations.
type Store struct {
	products []Product
}

// NewStore creates a store over an initial product list.
func NewStore(products []Product) *Store {
	return &Store{products: append([]Product(nil), products...)}
}

// AddProduct appends a product to the catalog
func (s *Store) AddProduct(p Product) {
	s.products = append(s.products, p)
}

// RemoveProduct removes a product by identity. It fails with ErrNotFound
// when the product is not held.
func (s *Store) RemoveProduct(p Product) error {
	for i, held := range s.products {
		if held == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, p.Name())
}

// FindByID returns the held product with the given ID, active or not.
func (s *Store) FindByID(id uuid.UUID) (Product, error) {
	for _, p := range s.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// TotalQuantity sums quantity on hand across every held product, active and
// inactive alike.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// ActiveProducts returns the currently active products in insertion order.
// The view is computed freshly on every call; an order placed between two
// calls can change membership.
func (s *Store) ActiveProducts() []Product {
	active := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// Order applies a shopping list line by line, in list order, and returns the
// sum of the charges. Lines are not pre-validated as a batch: the first
// failing line aborts the order and its error is returned, but lines already
// applied stay applied. That partial-effect behavior is deliberate; use
// OrderAtomic for all-or-nothing semantics.
func (s *Store) Order(list ShoppingList) (float64, error) {
	var total float64
	for _, line := range list {
		charge, err := line.Product.Purchase(line.Quantity)
		if err != nil {
			return 0, err
		}
		total += charge
	}
	return total, nil
}

// OrderAtomic applies a shopping list all-or-nothing: if any line fails, the
// stock and active state of every previously applied line is rolled back and
// the failing line's error is returned.
func (s *Store) OrderAtomic(list ShoppingList) (float64, error) {
	states := make([]productState, len(list))

	var total float64
	for i, line := range list {
		states[i] = line.Product.snapshot()

		charge, err := line.Product.Purchase(line.Quantity)
		if err != nil {
			// Reverse order, so duplicate lines of one product end up
			// at their earliest snapshot.
			for j := i - 1; j >= 0; j-- {
				list[j].Product.restore(states[j])
			}
			return 0, err
		}
		total += charge
	}
	return total, nil
}

// Listing returns the formatted active-product display, numbered 1-based
// against the active products ordering.
func (s *Store) Listing() string {
	var b strings.Builder
	b.WriteString("------")
	for i, p := range s.ActiveProducts() {
		fmt.Fprintf(&b, "\n%d. %s", i+1, p.Describe())
	}
	b.WriteString("\n------")
	return b.String()
}
