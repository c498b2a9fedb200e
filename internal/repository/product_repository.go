package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/mealflow/production-api/internal/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Upsert(ctx context.Context, product models.Product) error
	Snapshot(ctx context.Context) (map[string]models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory
// storage. Webhook deliveries mutate it; batch runs only read snapshots.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

// NewInMemoryProductRepository creates a product repository seeded with the
// meal catalog.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := map[string]models.Product{
		"prod-1": {ID: "prod-1", Name: "Keto Chicken Bowl", DietaryTags: []string{"keto", "dairy-free"}, NDISApproved: true},
		"prod-2": {ID: "prod-2", Name: "Low-Carb Salmon Plate", DietaryTags: []string{"keto", "low-carb"}, NDISApproved: false},
		"prod-3": {ID: "prod-3", Name: "Gluten-Free Pasta Salad", DietaryTags: []string{"gluten-free", "vegetarian"}, NDISApproved: true},
		"prod-4": {ID: "prod-4", Name: "Vegan Buddha Bowl", DietaryTags: []string{"vegan", "gluten-free"}, NDISApproved: true},
		"prod-5": {ID: "prod-5", Name: "Classic Beef Lasagne", DietaryTags: []string{}, NDISApproved: false},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns all products.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

// GetByID returns a product by its ID.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Upsert inserts or replaces a product record.
func (r *InMemoryProductRepository) Upsert(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = product
	return nil
}

// Snapshot returns a copy of the product table for one batch run. The
// caller owns the map; later webhook deliveries cannot affect it.
func (r *InMemoryProductRepository) Snapshot(ctx context.Context) (map[string]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(map[string]models.Product, len(r.products))
	for id, product := range r.products {
		snap[id] = product
	}
	return snap, nil
}
