// Package pipeline turns a batch of e-commerce orders into a kitchen-ready
// production sheet. Orders are filtered for dietary compatibility, then for
// NDIS billing eligibility, then merged into per-product aggregates with
// summary statistics.
//
// Every stage is a pure transform over already-materialized input: the
// customer and product snapshots are passed in as read-only maps and all
// output is a returned value. Batches share no state, so independent
// batches may run concurrently as long as each gets its own snapshot.
package pipeline

import (
	"errors"
	"log/slog"

	"github.com/mealflow/production-api/internal/models"
)

// ErrNoCustomerRef marks an order that carries no customer reference at
// all. Such orders are structurally invalid and rejected outright.
var ErrNoCustomerRef = errors.New("order has no customer reference")

// Snapshot holds the read-only lookup tables one batch runs against.
type Snapshot struct {
	Customers map[string]models.Customer
	Products  map[string]models.Product
}

// Result is the full outcome of one batch run: the production sheet, its
// summary, the processed orders that produced them, and everything that
// went wrong along the way.
type Result struct {
	Sheet    models.ProductionSheet `json:"sheet"`
	Summary  models.Summary         `json:"summary"`
	Orders   []ProcessedOrder       `json:"orders"`
	Warnings []Warning              `json:"warnings"`
	Rejected []RejectedOrder        `json:"rejected"`
}

// Pipeline composes the four processing stages with a configurable tag
// match policy. The default is exact set-membership matching.
type Pipeline struct {
	match MatchPolicy
	log   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMatchPolicy overrides the dietary tag comparison strategy.
func WithMatchPolicy(match MatchPolicy) Option {
	return func(p *Pipeline) {
		if match != nil {
			p.match = match
		}
	}
}

// WithLogger sets the logger used for per-batch progress logging.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a pipeline with exact tag matching unless overridden.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		match: ExactMatch,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes one batch of orders against the snapshot and returns the
// complete result. An empty batch is valid and yields a zero-valued sheet.
// Data-quality issues surface as warnings; only structurally invalid
// orders are rejected.
func (p *Pipeline) Run(orders []models.Order, snap Snapshot) Result {
	result := Result{
		Orders:   make([]ProcessedOrder, 0, len(orders)),
		Warnings: []Warning{},
		Rejected: []RejectedOrder{},
	}

	for _, order := range orders {
		if order.CustomerID == "" {
			result.Rejected = append(result.Rejected, RejectedOrder{
				OrderID: order.ID,
				Reason:  ErrNoCustomerRef.Error(),
			})
			continue
		}

		var customer *models.Customer
		if c, ok := snap.Customers[order.CustomerID]; ok {
			customer = &c
		}

		po, warnings := FilterDietary(order, customer, snap.Products, p.match)
		result.Warnings = append(result.Warnings, warnings...)

		po = ClassifyNDIS(po, customer, snap.Products)
		result.Orders = append(result.Orders, po)
	}

	result.Sheet = Aggregate(result.Orders, snap.Products)
	result.Summary = Summarize(result.Orders, result.Sheet)

	p.log.Info("batch processed",
		"orders", len(orders),
		"rejected", len(result.Rejected),
		"warnings", len(result.Warnings),
		"sheet_items", len(result.Sheet.Items),
		"ndis_orders", result.Sheet.NDISSummary.NDISOrders,
	)

	return result
}
