package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Pesokrava/store_inventory/internal/domain"
	"github.com/Pesokrava/store_inventory/internal/pkg/logger"
)

// OrderEventsSubject is the NATS subject order events are published to
const OrderEventsSubject = "orders.events"

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// OrderPlacedEvent is emitted after an order was applied to the catalog
type OrderPlacedEvent struct {
	EventType string           `json:"event_type"`
	Timestamp time.Time        `json:"timestamp"`
	OrderID   uuid.UUID        `json:"order_id"`
	Total     float64          `json:"total"`
	Lines     []OrderEventLine `json:"lines"`
}

// OrderEventLine is one applied line of an OrderPlacedEvent
type OrderEventLine struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
}

// Product variant names accepted by CreateProductParams.Type
const (
	TypeStandard   = "standard"
	TypeNonStocked = "non_stocked"
	TypeLimited    = "limited"
)

// Promotion kinds accepted by PromotionParams.Kind
const (
	PromotionSecondHalfPrice = "second_half_price"
	PromotionThirdOneFree    = "third_one_free"
	PromotionPercent         = "percent"
)

// CreateProductParams describes a product to add to the catalog
type CreateProductParams struct {
	Name        string           `json:"name" validate:"required,min=1,max=255"`
	Price       float64          `json:"price" validate:"gte=0"`
	Quantity    int              `json:"quantity" validate:"gte=0"`
	Type        string           `json:"type" validate:"omitempty,oneof=standard non_stocked limited"`
	MaxPerOrder int              `json:"max_per_order,omitempty" validate:"gte=0"`
	Promotion   *PromotionParams `json:"promotion,omitempty"`
}

// PromotionParams describes a promotion to attach to a product
type PromotionParams struct {
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Kind    string  `json:"kind" validate:"required,oneof=second_half_price third_one_free percent"`
	Percent float64 `json:"percent,omitempty" validate:"gte=0,lte=100"`
}

// OrderLineParams is one requested line of an order
type OrderLineParams struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// Service handles catalog and ordering business logic. It owns the store
// aggregate; the mutex serializes the read-then-write purchase sequences so
// the stock invariant holds under concurrent HTTP callers.
type Service struct {
	store     *domain.Store
	atomic    bool
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger
	mu        sync.RWMutex
}

// NewService creates a new catalog service. With atomicOrders set, order
// placement rolls back applied lines when a later line fails instead of
// keeping the partial effects.
func NewService(store *domain.Store, atomicOrders bool, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		atomic:    atomicOrders,
		publisher: publisher,
		validate:  validator.New(),
		logger:    log,
	}
}

// ActiveProducts returns the currently active products in catalog order
func (s *Service) ActiveProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.ActiveProducts()
}

// Product returns the held product with the given ID, active or not
func (s *Service) Product(id uuid.UUID) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.FindByID(id)
}

// TotalQuantity returns the summed quantity on hand across the whole catalog
func (s *Service) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.TotalQuantity()
}

// Listing returns the formatted active-product display
func (s *Service) Listing() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.Listing()
}

// AddProduct builds the requested product variant, attaches its promotion if
// given, and adds it to the catalog.
func (s *Service) AddProduct(ctx context.Context, params CreateProductParams) (domain.Product, error) {
	if err := s.validate.Struct(params); err != nil {
		s.logger.Error("Product validation failed", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	product, err := buildProduct(params)
	if err != nil {
		s.logger.Error("Failed to build product", err)
		return nil, err
	}

	if params.Promotion != nil {
		promotion, err := buildPromotion(*params.Promotion)
		if err != nil {
			s.logger.Error("Failed to build promotion", err)
			return nil, err
		}
		product.SetPromotion(promotion)
	}

	s.mu.Lock()
	s.store.AddProduct(product)
	s.mu.Unlock()

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID(),
		"name":       product.Name(),
	}).Info("Product added to catalog")

	return product, nil
}

// RemoveProduct removes the product with the given ID from the catalog
func (s *Service) RemoveProduct(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.store.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.store.RemoveProduct(product); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": id,
		"name":       product.Name(),
	}).Info("Product removed from catalog")

	return nil
}

// PlaceOrder resolves the requested lines against the catalog, applies the
// order, and publishes an order.placed event on success. Failed orders
// publish nothing. The order either runs line-by-line with partial effects
// or all-or-nothing, per service configuration.
func (s *Service) PlaceOrder(ctx context.Context, lines []OrderLineParams) (float64, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w: shopping list is empty", domain.ErrInvalidInput)
	}

	for _, line := range lines {
		if err := s.validate.Struct(line); err != nil {
			s.logger.Error("Order line validation failed", err)
			return 0, fmt.Errorf("%w: %v", domain.ErrInvalidOrder, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shoppingList := make(domain.ShoppingList, 0, len(lines))
	for _, line := range lines {
		product, err := s.store.FindByID(line.ProductID)
		if err != nil {
			return 0, err
		}
		shoppingList = append(shoppingList, domain.OrderLine{Product: product, Quantity: line.Quantity})
	}

	order := s.store.Order
	if s.atomic {
		order = s.store.OrderAtomic
	}

	total, err := order(shoppingList)
	if err != nil {
		s.logger.Error("Order failed", err)
		return 0, err
	}

	event := OrderPlacedEvent{
		EventType: "order.placed",
		Timestamp: time.Now().UTC(),
		OrderID:   uuid.New(),
		Total:     total,
	}
	for _, line := range shoppingList {
		event.Lines = append(event.Lines, OrderEventLine{
			ProductID:   line.Product.ID(),
			ProductName: line.Product.Name(),
			Quantity:    line.Quantity,
		})
	}
	s.publishEvent(ctx, event)

	s.logger.WithFields(map[string]interface{}{
		"order_id": event.OrderID,
		"lines":    len(lines),
		"total":    total,
	}).Info("Order placed successfully")

	return total, nil
}

// publishEvent publishes an order event. Publishing failures are logged and
// swallowed; the order itself already succeeded.
func (s *Service) publishEvent(ctx context.Context, event OrderPlacedEvent) {
	if s.publisher == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal order event", err)
		return
	}

	if err := s.publisher.Publish(ctx, OrderEventsSubject, data); err != nil {
		s.logger.Warnf("Failed to publish order event %s: %v", event.OrderID, err)
	}
}

func buildProduct(params CreateProductParams) (domain.Product, error) {
	switch params.Type {
	case "", TypeStandard:
		return domain.NewProduct(params.Name, params.Price, params.Quantity)
	case TypeNonStocked:
		return domain.NewNonStockedProduct(params.Name, params.Price)
	case TypeLimited:
		return domain.NewLimitedProduct(params.Name, params.Price, params.Quantity, params.MaxPerOrder)
	default:
		return nil, fmt.Errorf("%w: unknown product type %q", domain.ErrInvalidInput, params.Type)
	}
}

func buildPromotion(params PromotionParams) (domain.Promotion, error) {
	switch params.Kind {
	case PromotionSecondHalfPrice:
		return domain.NewSecondHalfPrice(params.Name), nil
	case PromotionThirdOneFree:
		return domain.NewThirdOneFree(params.Name), nil
	case PromotionPercent:
		return domain.NewPercentDiscount(params.Name, params.Percent)
	default:
		return nil, fmt.Errorf("%w: unknown promotion kind %q", domain.ErrInvalidInput, params.Kind)
	}
}
