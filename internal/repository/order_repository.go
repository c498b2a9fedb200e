package repository

import (
	"context"
	"sync"

	"github.com/mealflow/production-api/internal/models"
)

// OrderRepository holds orders awaiting the next production run.
type OrderRepository interface {
	Upsert(ctx context.Context, order models.Order) error
	Pending(ctx context.Context) ([]models.Order, error)
	Drain(ctx context.Context) ([]models.Order, error)
}

// InMemoryOrderRepository implements OrderRepository with in-memory
// storage. Orders keep their arrival order; an update from an
// order-updated webhook replaces the record in place without moving it,
// which keeps production-sheet item ordering stable across re-deliveries.
type InMemoryOrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
	index  map[string]int
}

// NewInMemoryOrderRepository creates an empty pending-order store.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: []models.Order{},
		index:  make(map[string]int),
	}
}

// Upsert appends a new order or replaces an existing one in place.
func (r *InMemoryOrderRepository) Upsert(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pos, exists := r.index[order.ID]; exists {
		r.orders[pos] = order
		return nil
	}
	r.index[order.ID] = len(r.orders)
	r.orders = append(r.orders, order)
	return nil
}

// Pending returns the orders waiting for the next batch, in arrival order.
func (r *InMemoryOrderRepository) Pending(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// Drain returns all pending orders and clears the store, so each order
// lands on exactly one production sheet.
func (r *InMemoryOrderRepository) Drain(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.orders
	r.orders = []models.Order{}
	r.index = make(map[string]int)
	return out, nil
}
