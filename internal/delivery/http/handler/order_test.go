package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/store_inventory/internal/domain"
	"github.com/Pesokrava/store_inventory/internal/pkg/logger"
)

func setupOrderRouter(t *testing.T) (*chi.Mux, *domain.StandardProduct) {
	t.Helper()

	service, macbook := setupCatalog(t)
	h := NewOrderHandler(service, logger.New("test"))

	r := chi.NewRouter()
	r.Post("/orders", h.Create)
	return r, macbook
}

func placeOrder(t *testing.T, r *chi.Mux, lines []map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{"lines": lines})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_Create(t *testing.T) {
	r, macbook := setupOrderRouter(t)

	w := placeOrder(t, r, []map[string]interface{}{
		{"product_id": macbook.ID().String(), "quantity": 2},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2900`)
	assert.Equal(t, 98, macbook.Quantity())
}

func TestOrderHandler_Create_InsufficientStock(t *testing.T) {
	r, macbook := setupOrderRouter(t)

	w := placeOrder(t, r, []map[string]interface{}{
		{"product_id": macbook.ID().String(), "quantity": 500},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 100, macbook.Quantity())
}

func TestOrderHandler_Create_UnknownProduct(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := placeOrder(t, r, []map[string]interface{}{
		{"product_id": uuid.NewString(), "quantity": 1},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_Create_EmptyList(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := placeOrder(t, r, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_Create_InvalidBody(t *testing.T) {
	r, _ := setupOrderRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
