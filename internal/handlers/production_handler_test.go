package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mealflow/production-api/internal/models"
	"github.com/mealflow/production-api/internal/pipeline"
	"github.com/mealflow/production-api/internal/repository"
	"github.com/mealflow/production-api/internal/service"
)

// stubSheetService implements sheetService for handler tests.
type stubSheetService struct {
	result *pipeline.Result
	err    error
}

func (s *stubSheetService) GenerateSheet(ctx context.Context) (*pipeline.Result, error) {
	return s.result, s.err
}

func (s *stubSheetService) ListSheets(ctx context.Context) []models.ProductionSheet {
	if s.result == nil {
		return []models.ProductionSheet{}
	}
	return []models.ProductionSheet{s.result.Sheet}
}

func (s *stubSheetService) GetSheet(ctx context.Context, id string) (*pipeline.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.result == nil || s.result.Sheet.ID != id {
		return nil, service.ErrSheetNotFound
	}
	return s.result, nil
}

func testResult() *pipeline.Result {
	return &pipeline.Result{
		Sheet: models.ProductionSheet{
			ID:          "sheet-1",
			TotalOrders: 2,
			Items: []models.AggregateItem{
				{ProductID: "p1", Name: "Keto Chicken Bowl", Quantity: 3, Customers: []string{"Sarah Johnson", "Emma Wilson"}, NDISCount: 1},
			},
			NDISSummary: models.NDISSummary{NDISOrders: 1, RegularOrders: 1},
		},
		Summary:  models.Summary{TotalOrders: 2, TotalItems: 3, DietaryCounts: map[string]int{"keto": 1}},
		Warnings: []pipeline.Warning{},
		Rejected: []pipeline.RejectedOrder{},
	}
}

func newProductionRouter(svc sheetService) *chi.Mux {
	h := NewProductionHandler(svc, repository.NewInMemoryOrderRepository(), slog.Default())
	r := chi.NewRouter()
	r.Post("/api/production-sheet", h.GenerateSheet)
	r.Get("/api/production-sheet", h.ListSheets)
	r.Get("/api/production-sheet/{sheetId}", h.GetSheet)
	r.Get("/api/order", h.ListPendingOrders)
	return r
}

func TestProductionHandler_GenerateSheet(t *testing.T) {
	router := newProductionRouter(&stubSheetService{result: testResult()})

	req := httptest.NewRequest(http.MethodPost, "/api/production-sheet", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GenerateSheet() status = %d, want %d", rec.Code, http.StatusOK)
	}

	var result pipeline.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.Sheet.ID != "sheet-1" {
		t.Errorf("sheet ID = %q, want %q", result.Sheet.ID, "sheet-1")
	}
	if result.Sheet.NDISSummary.NDISOrders != 1 {
		t.Errorf("NDIS orders = %d, want 1", result.Sheet.NDISSummary.NDISOrders)
	}
	if len(result.Sheet.Items) != 1 {
		t.Errorf("items = %d, want 1", len(result.Sheet.Items))
	}
}

func TestProductionHandler_GetSheet(t *testing.T) {
	tests := []struct {
		name       string
		sheetID    string
		wantStatus int
	}{
		{
			name:       "existing sheet",
			sheetID:    "sheet-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown sheet",
			sheetID:    "sheet-404",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProductionRouter(&stubSheetService{result: testResult()})

			req := httptest.NewRequest(http.MethodGet, "/api/production-sheet/"+tt.sheetID, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("GetSheet() status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestProductionHandler_ListSheets(t *testing.T) {
	router := newProductionRouter(&stubSheetService{result: testResult()})

	req := httptest.NewRequest(http.MethodGet, "/api/production-sheet", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ListSheets() status = %d, want %d", rec.Code, http.StatusOK)
	}

	var sheets []models.ProductionSheet
	if err := json.NewDecoder(rec.Body).Decode(&sheets); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(sheets) != 1 {
		t.Errorf("sheets = %d, want 1", len(sheets))
	}
}

func TestProductionHandler_ListPendingOrders(t *testing.T) {
	router := newProductionRouter(&stubSheetService{})

	req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ListPendingOrders() status = %d, want %d", rec.Code, http.StatusOK)
	}

	var orders []models.Order
	if err := json.NewDecoder(rec.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("orders = %d, want 0", len(orders))
	}
}
