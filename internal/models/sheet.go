package models

import "time"

// AggregateItem is one production-sheet row: all surviving orders for a
// single product merged together. Customers may repeat when the same
// customer ordered the product more than once.
type AggregateItem struct {
	ProductID           string   `json:"productId"`
	Name                string   `json:"name"`
	Quantity            int      `json:"quantity"`
	DietaryTags         []string `json:"dietaryTags"`
	Customers           []string `json:"customers"`
	SpecialInstructions []string `json:"specialInstructions,omitempty"`
	NDISCount           int      `json:"ndisCount"`
}

// NDISSummary is the order-level billing split for a batch. These counts
// are per order, not per item, so they are accumulated independently of
// the AggregateItem NDIS counts.
type NDISSummary struct {
	NDISOrders    int `json:"totalNdisOrders"`
	RegularOrders int `json:"totalRegularOrders"`
}

// ProductionSheet is the kitchen-facing output of one batch run. Items are
// ordered by first appearance of each product in batch-processing order.
type ProductionSheet struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generatedAt"`
	TotalOrders int             `json:"totalOrders"`
	Items       []AggregateItem `json:"items"`
	NDISSummary NDISSummary     `json:"ndisSummary"`
}

// Summary carries the count statistics derived from a processed batch.
// DietaryCounts maps each dietary requirement tag to the number of orders
// whose customer carries it.
type Summary struct {
	TotalOrders   int            `json:"totalOrders"`
	TotalItems    int            `json:"totalItems"`
	DietaryCounts map[string]int `json:"dietaryCounts"`
}
