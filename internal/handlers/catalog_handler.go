package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mealflow/production-api/internal/repository"
)

// CatalogHandler exposes read access to the product catalog and customer
// profiles backing the pipeline.
type CatalogHandler struct {
	products  repository.ProductRepository
	customers repository.CustomerRepository
	logger    *slog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(products repository.ProductRepository, customers repository.CustomerRepository, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		products:  products,
		customers: customers,
		logger:    logger,
	}
}

// ListProducts handles GET /api/product.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/product/{productId}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.products.GetByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		h.logger.Error("failed to get product", "product_id", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, product, h.logger)
}

// ListCustomers handles GET /api/customer.
func (h *CatalogHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list customers", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, customers, h.logger)
}

// GetCustomer handles GET /api/customer/{customerId}.
func (h *CatalogHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	customer, err := h.customers.GetByID(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			WriteError(w, http.StatusNotFound, "Customer not found", h.logger)
			return
		}
		h.logger.Error("failed to get customer", "customer_id", customerID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, customer, h.logger)
}
