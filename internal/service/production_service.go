package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mealflow/production-api/internal/models"
	"github.com/mealflow/production-api/internal/pipeline"
	"github.com/mealflow/production-api/internal/repository"
)

var ErrSheetNotFound = errors.New("production sheet not found")

// ProductionService drives batch runs: it drains the pending orders,
// snapshots the customer and product stores, runs the pipeline and retains
// the resulting sheets for the export boundary to fetch.
type ProductionService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	pipeline  *pipeline.Pipeline
	log       *slog.Logger

	mu      sync.RWMutex
	results map[string]*pipeline.Result
	recent  []string // sheet IDs, newest last
}

// NewProductionService creates a production service.
func NewProductionService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	pl *pipeline.Pipeline,
	log *slog.Logger,
) *ProductionService {
	return &ProductionService{
		orders:    orders,
		customers: customers,
		products:  products,
		pipeline:  pl,
		log:       log,
		results:   make(map[string]*pipeline.Result),
	}
}

// snapshot builds the read-only lookup tables for one batch run.
func (s *ProductionService) snapshot(ctx context.Context) (pipeline.Snapshot, error) {
	customers, err := s.customers.Snapshot(ctx)
	if err != nil {
		return pipeline.Snapshot{}, fmt.Errorf("snapshot customers: %w", err)
	}
	products, err := s.products.Snapshot(ctx)
	if err != nil {
		return pipeline.Snapshot{}, fmt.Errorf("snapshot products: %w", err)
	}
	return pipeline.Snapshot{Customers: customers, Products: products}, nil
}

// GenerateSheet drains the pending orders into a single batch, processes
// it and retains the result. An empty pending set is valid and produces a
// sheet with zero orders and zero items.
func (s *ProductionService) GenerateSheet(ctx context.Context) (*pipeline.Result, error) {
	orders, err := s.orders.Drain(ctx)
	if err != nil {
		return nil, fmt.Errorf("drain pending orders: %w", err)
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := s.pipeline.Run(orders, snap)
	result.Sheet.ID = uuid.NewString()
	s.retain(&result)

	s.log.Info("production sheet generated",
		"sheet_id", result.Sheet.ID,
		"orders", result.Sheet.TotalOrders,
		"items", len(result.Sheet.Items),
	)
	return &result, nil
}

// ProcessBatches runs independently supplied batches concurrently, one
// snapshot and one aggregation arena per batch. Results come back in batch
// order. Used for replaying historical order sets without touching the
// pending store.
func (s *ProductionService) ProcessBatches(ctx context.Context, batches [][]models.Order) ([]*pipeline.Result, error) {
	results := make([]*pipeline.Result, len(batches))

	g, ctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return err
			}
			result := s.pipeline.Run(batch, snap)
			result.Sheet.ID = uuid.NewString()
			results[i] = &result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, result := range results {
		s.retain(result)
	}
	return results, nil
}

// ListSheets returns the retained sheets, newest first.
func (s *ProductionService) ListSheets(ctx context.Context) []models.ProductionSheet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sheets := make([]models.ProductionSheet, 0, len(s.recent))
	for i := len(s.recent) - 1; i >= 0; i-- {
		sheets = append(sheets, s.results[s.recent[i]].Sheet)
	}
	return sheets
}

// GetSheet returns the full result for a retained sheet.
func (s *ProductionService) GetSheet(ctx context.Context, id string) (*pipeline.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, exists := s.results[id]
	if !exists {
		return nil, ErrSheetNotFound
	}
	return result, nil
}

func (s *ProductionService) retain(result *pipeline.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[result.Sheet.ID] = result
	s.recent = append(s.recent, result.Sheet.ID)
}
