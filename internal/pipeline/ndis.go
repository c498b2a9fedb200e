package pipeline

import (
	"github.com/mealflow/production-api/internal/models"
)

// ClassifyNDIS applies the subsidy billing rules on top of the dietary
// filter's output. For a customer with a non-empty participant identifier
// only NDIS-approved products are retained, intersected with the items
// that already passed the dietary check. Every other order passes through
// unchanged with NDISOrder explicitly false so downstream counting is
// unambiguous.
//
// A line item referencing an unknown product cannot be NDIS-approved and
// is dropped; the dietary stage has already recorded the missing_product
// warning for it. An order emptied by either filter is still emitted; it
// keeps counting toward the batch's NDIS/regular split.
func ClassifyNDIS(po ProcessedOrder, customer *models.Customer, products map[string]models.Product) ProcessedOrder {
	out := po
	if customer == nil || !customer.IsNDISParticipant() {
		out.NDISOrder = false
		out.BillingMethod = BillingStandard
		return out
	}

	kept := make([]models.LineItem, 0, len(po.Order.LineItems))
	for _, item := range po.Order.LineItems {
		if products[item.ProductID].NDISApproved {
			kept = append(kept, item)
		}
	}

	out.Order.LineItems = kept
	out.NDISOrder = true
	out.NDISParticipantID = customer.NDISParticipantID
	out.BillingMethod = BillingNDIS
	return out
}
