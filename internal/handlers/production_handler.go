package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mealflow/production-api/internal/models"
	"github.com/mealflow/production-api/internal/pipeline"
	"github.com/mealflow/production-api/internal/repository"
	"github.com/mealflow/production-api/internal/service"
)

// sheetService is the slice of ProductionService the handler needs.
type sheetService interface {
	GenerateSheet(ctx context.Context) (*pipeline.Result, error)
	ListSheets(ctx context.Context) []models.ProductionSheet
	GetSheet(ctx context.Context, id string) (*pipeline.Result, error)
}

// ProductionHandler handles production sheet HTTP requests.
type ProductionHandler struct {
	sheets sheetService
	orders repository.OrderRepository
	logger *slog.Logger
}

// NewProductionHandler creates a new production handler.
func NewProductionHandler(sheets sheetService, orders repository.OrderRepository, logger *slog.Logger) *ProductionHandler {
	return &ProductionHandler{
		sheets: sheets,
		orders: orders,
		logger: logger,
	}
}

// GenerateSheet handles POST /api/production-sheet. It drains the pending
// orders into one batch and returns the full result: sheet, summary,
// processed orders, warnings and rejections.
func (h *ProductionHandler) GenerateSheet(w http.ResponseWriter, r *http.Request) {
	result, err := h.sheets.GenerateSheet(r.Context())
	if err != nil {
		h.logger.Error("failed to generate production sheet", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.logger)
	h.logger.Info("production sheet served",
		"sheet_id", result.Sheet.ID,
		"orders", result.Sheet.TotalOrders,
		"warnings", len(result.Warnings),
	)
}

// ListSheets handles GET /api/production-sheet.
func (h *ProductionHandler) ListSheets(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.sheets.ListSheets(r.Context()), h.logger)
}

// GetSheet handles GET /api/production-sheet/{sheetId}.
func (h *ProductionHandler) GetSheet(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "sheetId")
	if sheetID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	result, err := h.sheets.GetSheet(r.Context(), sheetID)
	if err != nil {
		if errors.Is(err, service.ErrSheetNotFound) {
			WriteError(w, http.StatusNotFound, "Production sheet not found", h.logger)
			return
		}
		h.logger.Error("failed to get production sheet", "sheet_id", sheetID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, result, h.logger)
}

// ListPendingOrders handles GET /api/order. It shows the orders queued for
// the next production run, in arrival order.
func (h *ProductionHandler) ListPendingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.Pending(r.Context())
	if err != nil {
		h.logger.Error("failed to list pending orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, orders, h.logger)
}
