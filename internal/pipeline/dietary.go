package pipeline

import (
	"fmt"

	"github.com/mealflow/production-api/internal/models"
)

// Billing classifications attached by the NDIS stage.
const (
	BillingNDIS     = "ndis"
	BillingStandard = "standard"
)

// ProcessedOrder is an order as it moves through the pipeline. Each stage
// returns a new value; the input is never mutated, so the output of every
// stage stays independently inspectable.
type ProcessedOrder struct {
	Order             models.Order `json:"order"`
	CustomerName      string       `json:"customerName"`
	DietaryFiltered   bool         `json:"dietaryFiltered"`
	CustomerDietary   []string     `json:"customerDietary"`
	NDISOrder         bool         `json:"ndisOrder"`
	NDISParticipantID string       `json:"ndisParticipantId,omitempty"`
	BillingMethod     string       `json:"billingMethod"`
}

// FilterDietary reduces an order's line items to those compatible with the
// customer's dietary requirements. A line item survives when every
// normalized requirement is satisfied by the product's tags under the
// given policy; a product with no recorded tags fails closed for any
// non-empty requirement set.
//
// customer may be nil when the order's reference did not resolve; the
// order then passes through with no requirements and a missing_customer
// warning is recorded. Line items with a non-positive quantity are dropped
// with a bad_quantity warning. A line item referencing an unknown product
// always records a missing_product warning; the item is kept when there
// are no requirements to check it against, and fails closed otherwise.
func FilterDietary(order models.Order, customer *models.Customer, products map[string]models.Product, match MatchPolicy) (ProcessedOrder, []Warning) {
	if match == nil {
		match = ExactMatch
	}

	var warnings []Warning
	required := []string{}
	name := order.CustomerID
	if customer == nil {
		warnings = append(warnings, Warning{
			Code:    WarnMissingCustomer,
			OrderID: order.ID,
			Detail:  fmt.Sprintf("customer %q not found; order passed unfiltered", order.CustomerID),
		})
	} else {
		required = NormalizeTags(customer.DietaryRequirements)
		name = customer.Name
	}

	kept := make([]models.LineItem, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		if item.Quantity <= 0 {
			warnings = append(warnings, Warning{
				Code:    WarnBadQuantity,
				OrderID: order.ID,
				Detail:  fmt.Sprintf("line item %q has quantity %d", item.Name, item.Quantity),
			})
			continue
		}
		product, ok := products[item.ProductID]
		if !ok {
			detail := fmt.Sprintf("product %q not found; line item %q fails dietary check", item.ProductID, item.Name)
			if len(required) == 0 {
				detail = fmt.Sprintf("product %q not found; line item %q kept with no dietary check", item.ProductID, item.Name)
			}
			warnings = append(warnings, Warning{
				Code:    WarnMissingProduct,
				OrderID: order.ID,
				Detail:  detail,
			})
		}
		if len(required) == 0 {
			kept = append(kept, item)
			continue
		}
		if ok && satisfiesAll(NormalizeTags(product.DietaryTags), required, match) {
			kept = append(kept, item)
		}
	}

	filtered := order
	filtered.LineItems = kept
	return ProcessedOrder{
		Order:           filtered,
		CustomerName:    name,
		DietaryFiltered: true,
		CustomerDietary: required,
	}, warnings
}
