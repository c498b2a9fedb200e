package repository

import (
	"context"
	"sync"

	"github.com/mealflow/production-api/internal/models"
)

// CustomerRepository defines the interface for customer profile access.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Upsert(ctx context.Context, customer models.Customer) error
	Snapshot(ctx context.Context) (map[string]models.Customer, error)
}

// InMemoryCustomerRepository implements CustomerRepository with in-memory
// storage.
type InMemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]models.Customer
}

// NewInMemoryCustomerRepository creates a customer repository seeded with
// sample dietary profiles.
func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	customers := map[string]models.Customer{
		"cust-1": {ID: "cust-1", Name: "Sarah Johnson", DietaryRequirements: []string{"keto", "dairy-free"}, NDISParticipantID: "NDIS-430001"},
		"cust-2": {ID: "cust-2", Name: "Michael Chen", DietaryRequirements: []string{"gluten-free", "vegetarian"}},
		"cust-3": {ID: "cust-3", Name: "Emma Wilson", DietaryRequirements: []string{"vegan", "gluten-free"}, NDISParticipantID: "NDIS-430117"},
		"cust-4": {ID: "cust-4", Name: "David Brown", DietaryRequirements: []string{}},
	}

	return &InMemoryCustomerRepository{
		customers: customers,
	}
}

// GetAll returns all customers.
func (r *InMemoryCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]models.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

// GetByID returns a customer by its ID.
func (r *InMemoryCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.customers[id]
	if !exists {
		return nil, ErrCustomerNotFound
	}
	return &customer, nil
}

// Upsert inserts or replaces a customer profile.
func (r *InMemoryCustomerRepository) Upsert(ctx context.Context, customer models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers[customer.ID] = customer
	return nil
}

// Snapshot returns a copy of the customer table for one batch run.
func (r *InMemoryCustomerRepository) Snapshot(ctx context.Context) (map[string]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(map[string]models.Customer, len(r.customers))
	for id, customer := range r.customers {
		snap[id] = customer
	}
	return snap, nil
}
