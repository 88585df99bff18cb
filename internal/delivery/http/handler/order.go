package handler

import (
	"errors"
	"net/http"

	"github.com/Pesokrava/store_inventory/internal/delivery/http/request"
	"github.com/Pesokrava/store_inventory/internal/delivery/http/response"
	"github.com/Pesokrava/store_inventory/internal/domain"
	"github.com/Pesokrava/store_inventory/internal/pkg/logger"
	"github.com/Pesokrava/store_inventory/internal/usecase/catalog"
)

// OrderHandler handles HTTP requests for order placement
type OrderHandler struct {
	service *catalog.Service
	logger  *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *catalog.Service, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  log,
	}
}

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	Lines []catalog.OrderLineParams `json:"lines"`
}

// Create handles POST /api/v1/orders
// @Summary Place an order
// @Description Apply a shopping list against the catalog and return the total charged
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body PlaceOrderRequest true "Shopping list"
// @Success 201 {object} map[string]interface{} "Order placed"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Unknown product reference"
// @Failure 409 {object} map[string]string "Order line cannot be fulfilled"
// @Router /orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	total, err := h.service.PlaceOrder(r.Context(), req.Lines)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, map[string]float64{
		"total": total,
	})
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *OrderHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrInvalidOrder):
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in order handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
