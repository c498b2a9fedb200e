package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a single product entry on an order. Name is a denormalized
// copy of the product name taken at order time.
type LineItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// Order is an order record as resolved from the commerce platform's webhook
// payloads. The pipeline never mutates an Order in place; each stage emits
// a new value with the line-item sequence replaced.
type Order struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	CustomerID string          `json:"customerId"`
	LineItems  []LineItem      `json:"lineItems"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
