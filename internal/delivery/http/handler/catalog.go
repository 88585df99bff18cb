package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Pesokrava/store_inventory/internal/delivery/http/request"
	"github.com/Pesokrava/store_inventory/internal/delivery/http/response"
	"github.com/Pesokrava/store_inventory/internal/domain"
	"github.com/Pesokrava/store_inventory/internal/pkg/logger"
	"github.com/Pesokrava/store_inventory/internal/usecase/catalog"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	service *catalog.Service
	logger  *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *catalog.Service, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  log,
	}
}

// ProductResponse is the JSON view of a catalog product
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Active      bool      `json:"active"`
	Promotion   string    `json:"promotion,omitempty"`
	Description string    `json:"description"`
}

func newProductResponse(p domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Quantity:    p.Quantity(),
		Active:      p.IsActive(),
		Description: p.Describe(),
	}
	if promo := p.Promotion(); promo != nil {
		resp.Promotion = promo.Name()
	}
	return resp
}

// List handles GET /api/v1/products
// @Summary List active products
// @Description Get the currently active products in catalog order
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Active products"
// @Router /products [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.service.ActiveProducts()

	views := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		views = append(views, newProductResponse(p))
	}

	response.Success(w, views)
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product by ID
// @Description Get a single catalog product, active or not
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} map[string]interface{} "Product details"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [get]
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.Product(id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, newProductResponse(product))
}

// Create handles POST /api/v1/products
// @Summary Add a product to the catalog
// @Description Add a standard, non-stocked, or limited product, optionally with a promotion
// @Tags Catalog
// @Accept json
// @Produce json
// @Param product body catalog.CreateProductParams true "Product details"
// @Success 201 {object} map[string]interface{} "Product added"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /products [post]
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params catalog.CreateProductParams
	if err := request.DecodeJSON(r, &params); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.service.AddProduct(r.Context(), params)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, newProductResponse(product))
}

// Delete handles DELETE /api/v1/products/:id
// @Summary Remove a product from the catalog
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Product removed"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [delete]
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.RemoveProduct(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// Listing handles GET /api/v1/store/listing
// @Summary Show the formatted store listing
// @Description Plain-text display of active products, numbered 1-based
// @Tags Store
// @Produce plain
// @Success 200 {string} string "Store listing"
// @Router /store/listing [get]
func (h *CatalogHandler) Listing(w http.ResponseWriter, r *http.Request) {
	response.Text(w, http.StatusOK, h.service.Listing())
}

// TotalQuantity handles GET /api/v1/store/total-quantity
// @Summary Total items in store
// @Description Sum of quantity on hand across all products, inactive included
// @Tags Store
// @Produce json
// @Success 200 {object} map[string]interface{} "Total quantity"
// @Router /store/total-quantity [get]
func (h *CatalogHandler) TotalQuantity(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]int{
		"total_quantity": h.service.TotalQuantity(),
	})
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *CatalogHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in catalog handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
