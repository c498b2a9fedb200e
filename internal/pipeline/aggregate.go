package pipeline

import (
	"time"

	"github.com/mealflow/production-api/internal/models"
)

// Aggregate merges the surviving line items of a processed batch into
// per-product records. The item sequence preserves first-insertion order:
// the first occurrence of a product in batch-processing order fixes its
// position and later occurrences only update the existing record, so
// re-running the same batch yields an identical sheet.
//
// The NDIS summary is accumulated here at the order level, once per order
// regardless of how many line items it contributed. Orders with no
// surviving items still count toward the split.
func Aggregate(orders []ProcessedOrder, products map[string]models.Product) models.ProductionSheet {
	sheet := models.ProductionSheet{
		GeneratedAt: time.Now().UTC(),
		TotalOrders: len(orders),
		Items:       []models.AggregateItem{},
	}

	// index maps product ID to the item's fixed position in sheet.Items.
	index := make(map[string]int)

	for _, po := range orders {
		if po.NDISOrder {
			sheet.NDISSummary.NDISOrders++
		} else {
			sheet.NDISSummary.RegularOrders++
		}

		for _, line := range po.Order.LineItems {
			pos, ok := index[line.ProductID]
			if !ok {
				// An unresolved product yields the zero value here and the
				// row gets no tags; the upstream stages have already warned
				// about the dangling reference.
				item := models.AggregateItem{
					ProductID:   line.ProductID,
					Name:        line.Name,
					Quantity:    line.Quantity,
					DietaryTags: NormalizeTags(products[line.ProductID].DietaryTags),
					Customers:   []string{po.CustomerName},
				}
				if po.Order.Note != "" {
					item.SpecialInstructions = []string{po.Order.Note}
				}
				if po.NDISOrder {
					item.NDISCount = 1
				}
				index[line.ProductID] = len(sheet.Items)
				sheet.Items = append(sheet.Items, item)
				continue
			}

			item := &sheet.Items[pos]
			item.Quantity += line.Quantity
			item.Customers = append(item.Customers, po.CustomerName)
			if po.Order.Note != "" {
				item.SpecialInstructions = append(item.SpecialInstructions, po.Order.Note)
			}
			if po.NDISOrder {
				item.NDISCount++
			}
		}
	}

	return sheet
}
