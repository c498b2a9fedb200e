// Package webhook receives order and customer events from the commerce
// platform, validates their structure and applies them at most once to the
// in-memory stores the pipeline snapshots from.
package webhook

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mealflow/production-api/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LineItemPayload is a single line item inside an order webhook. Quantity
// is deliberately not validated here: a malformed quantity is a
// data-quality warning for the pipeline, not a structural error.
type LineItemPayload struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// OrderPayload mirrors the order-created and order-updated webhook topics.
// A missing customer reference makes the payload structurally invalid; a
// customer reference that does not resolve is handled later by the
// pipeline as a warning.
type OrderPayload struct {
	ID         string            `json:"id" validate:"required"`
	Number     string            `json:"number"`
	CustomerID string            `json:"customerId" validate:"required"`
	LineItems  []LineItemPayload `json:"lineItems" validate:"dive"`
	Note       string            `json:"note"`
	CreatedAt  time.Time         `json:"createdAt"`
	TotalPrice decimal.Decimal   `json:"totalPrice"`
}

// Validate checks the payload's structure.
func (p OrderPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid order payload: %w", err)
	}
	return nil
}

// ToOrder converts the payload into the model record stored for the next
// batch.
func (p OrderPayload) ToOrder() models.Order {
	items := make([]models.LineItem, 0, len(p.LineItems))
	for _, item := range p.LineItems {
		items = append(items, models.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
		})
	}
	return models.Order{
		ID:         p.ID,
		Number:     p.Number,
		CustomerID: p.CustomerID,
		LineItems:  items,
		Note:       p.Note,
		CreatedAt:  p.CreatedAt,
		TotalPrice: p.TotalPrice,
	}
}

// CustomerPayload mirrors the customer-created webhook topic.
type CustomerPayload struct {
	ID                  string   `json:"id" validate:"required"`
	Name                string   `json:"name" validate:"required"`
	DietaryRequirements []string `json:"dietaryRequirements"`
	NDISParticipantID   string   `json:"ndisParticipantId"`
}

// Validate checks the payload's structure.
func (p CustomerPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid customer payload: %w", err)
	}
	return nil
}

// ToCustomer converts the payload into a profile record.
func (p CustomerPayload) ToCustomer() models.Customer {
	return models.Customer{
		ID:                  p.ID,
		Name:                p.Name,
		DietaryRequirements: p.DietaryRequirements,
		NDISParticipantID:   p.NDISParticipantID,
	}
}
