package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/store_inventory/internal/domain"
	"github.com/Pesokrava/store_inventory/internal/pkg/logger"
)

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

func testStore(t *testing.T) (*domain.Store, *domain.StandardProduct, *domain.StandardProduct) {
	t.Helper()

	macbook, err := domain.NewProduct("MacBook Air M2", 1450, 100)
	require.NoError(t, err)
	earbuds, err := domain.NewProduct("Bose QuietComfort Earbuds", 250, 5)
	require.NoError(t, err)

	return domain.NewStore([]domain.Product{macbook, earbuds}), macbook, earbuds
}

func TestService_PlaceOrder_Success(t *testing.T) {
	store, macbook, earbuds := testStore(t)
	mockPub := new(MockEventPublisher)
	log := logger.New("test")
	service := NewService(store, false, mockPub, log)

	mockPub.On("Publish", mock.Anything, OrderEventsSubject, mock.Anything).Return(nil)

	total, err := service.PlaceOrder(context.Background(), []OrderLineParams{
		{ProductID: macbook.ID(), Quantity: 2},
		{ProductID: earbuds.ID(), Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, 3150.0, total)
	assert.Equal(t, 98, macbook.Quantity())
	assert.Equal(t, 4, earbuds.Quantity())
	mockPub.AssertExpectations(t)

	// The published event carries the charged total and the applied lines.
	data := mockPub.Calls[0].Arguments.Get(2).([]byte)
	var event OrderPlacedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "order.placed", event.EventType)
	assert.Equal(t, 3150.0, event.Total)
	require.Len(t, event.Lines, 2)
	assert.Equal(t, macbook.ID(), event.Lines[0].ProductID)
	assert.Equal(t, 2, event.Lines[0].Quantity)
}

func TestService_PlaceOrder_UnknownProduct(t *testing.T) {
	store, _, _ := testStore(t)
	mockPub := new(MockEventPublisher)
	service := NewService(store, false, mockPub, logger.New("test"))

	_, err := service.PlaceOrder(context.Background(), []OrderLineParams{
		{ProductID: uuid.New(), Quantity: 1},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockPub.AssertNotCalled(t, "Publish")
}

func TestService_PlaceOrder_LineFailure_NoEvent(t *testing.T) {
	store, _, earbuds := testStore(t)
	mockPub := new(MockEventPublisher)
	service := NewService(store, false, mockPub, logger.New("test"))

	_, err := service.PlaceOrder(context.Background(), []OrderLineParams{
		{ProductID: earbuds.ID(), Quantity: 50},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
	mockPub.AssertNotCalled(t, "Publish")
}

func TestService_PlaceOrder_PartialEffects(t *testing.T) {
	store, macbook, earbuds := testStore(t)
	service := NewService(store, false, nil, logger.New("test"))

	_, err := service.PlaceOrder(context.Background(), []OrderLineParams{
		{ProductID: macbook.ID(), Quantity: 10},
		{ProductID: earbuds.ID(), Quantity: 50},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
	assert.Equal(t, 90, macbook.Quantity())
}

func TestService_PlaceOrder_AtomicRollsBack(t *testing.T) {
	store, macbook, earbuds := testStore(t)
	service := NewService(store, true, nil, logger.New("test"))

	_, err := service.PlaceOrder(context.Background(), []OrderLineParams{
		{ProductID: macbook.ID(), Quantity: 10},
		{ProductID: earbuds.ID(), Quantity: 50},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
	assert.Equal(t, 100, macbook.Quantity())
	assert.Equal(t, 5, earbuds.Quantity())
}

func TestService_PlaceOrder_EmptyList(t *testing.T) {
	store, _, _ := testStore(t)
	service := NewService(store, false, nil, logger.New("test"))

	_, err := service.PlaceOrder(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_PlaceOrder_NonPositiveQuantity(t *testing.T) {
	store, macbook, _ := testStore(t)
	service := NewService(store, false, nil, logger.New("test"))

	_, err := service.PlaceOrder(context.Background(), []OrderLineParams{
		{ProductID: macbook.ID(), Quantity: 0},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
	assert.Equal(t, 100, macbook.Quantity())
}

func TestService_PlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	store, macbook, _ := testStore(t)
	mockPub := new(MockEventPublisher)
	service := NewService(store, false, mockPub, logger.New("test"))

	mockPub.On("Publish", mock.Anything, OrderEventsSubject, mock.Anything).Return(assert.AnError)

	total, err := service.PlaceOrder(context.Background(), []OrderLineParams{
		{ProductID: macbook.ID(), Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, 1450.0, total)
}

func TestService_AddProduct_Standard(t *testing.T) {
	service := NewService(domain.NewStore(nil), false, nil, logger.New("test"))

	product, err := service.AddProduct(context.Background(), CreateProductParams{
		Name:     "Google Pixel 7",
		Price:    500,
		Quantity: 250,
	})

	require.NoError(t, err)
	assert.True(t, product.IsActive())
	assert.Equal(t, 250, service.TotalQuantity())
}

func TestService_AddProduct_Variants(t *testing.T) {
	service := NewService(domain.NewStore(nil), false, nil, logger.New("test"))

	nonStocked, err := service.AddProduct(context.Background(), CreateProductParams{
		Name:  "Windows License",
		Price: 125,
		Type:  TypeNonStocked,
	})
	require.NoError(t, err)
	assert.IsType(t, &domain.NonStockedProduct{}, nonStocked)

	limited, err := service.AddProduct(context.Background(), CreateProductParams{
		Name:        "Shipping",
		Price:       10,
		Quantity:    250,
		Type:        TypeLimited,
		MaxPerOrder: 1,
	})
	require.NoError(t, err)
	assert.IsType(t, &domain.LimitedProduct{}, limited)
}

func TestService_AddProduct_WithPromotion(t *testing.T) {
	service := NewService(domain.NewStore(nil), false, nil, logger.New("test"))

	product, err := service.AddProduct(context.Background(), CreateProductParams{
		Name:     "MacBook Air M2",
		Price:    1450,
		Quantity: 100,
		Promotion: &PromotionParams{
			Name: "Second Half price!",
			Kind: PromotionSecondHalfPrice,
		},
	})

	require.NoError(t, err)
	require.NotNil(t, product.Promotion())
	assert.Equal(t, "Second Half price!", product.Promotion().Name())
}

func TestService_AddProduct_InvalidInput(t *testing.T) {
	service := NewService(domain.NewStore(nil), false, nil, logger.New("test"))

	tests := []struct {
		name   string
		params CreateProductParams
	}{
		{"empty name", CreateProductParams{Price: 10, Quantity: 1}},
		{"negative price", CreateProductParams{Name: "x", Price: -1}},
		{"unknown type", CreateProductParams{Name: "x", Price: 10, Type: "mystery"}},
		{"limited without cap", CreateProductParams{Name: "x", Price: 10, Type: TypeLimited}},
		{"bad promotion kind", CreateProductParams{
			Name: "x", Price: 10,
			Promotion: &PromotionParams{Name: "p", Kind: "mystery"},
		}},
		{"percent over 100", CreateProductParams{
			Name: "x", Price: 10,
			Promotion: &PromotionParams{Name: "p", Kind: PromotionPercent, Percent: 150},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.AddProduct(context.Background(), tt.params)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestService_RemoveProduct(t *testing.T) {
	store, macbook, _ := testStore(t)
	service := NewService(store, false, nil, logger.New("test"))

	require.NoError(t, service.RemoveProduct(context.Background(), macbook.ID()))

	err := service.RemoveProduct(context.Background(), macbook.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Queries(t *testing.T) {
	store, macbook, earbuds := testStore(t)
	service := NewService(store, false, nil, logger.New("test"))

	earbuds.Deactivate()

	active := service.ActiveProducts()
	require.Len(t, active, 1)
	assert.Equal(t, macbook.ID(), active[0].ID())

	assert.Equal(t, 105, service.TotalQuantity())
	assert.Contains(t, service.Listing(), "1. "+macbook.Describe())

	found, err := service.Product(earbuds.ID())
	require.NoError(t, err)
	assert.False(t, found.IsActive())
}
