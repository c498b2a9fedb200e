package pipeline

import "github.com/mealflow/production-api/internal/models"

// Summarize derives count statistics from a processed batch and its sheet.
// For each distinct dietary requirement tag it counts the orders whose
// customer carries it; total items is the sum of aggregated quantities.
// Inputs are read but never mutated.
func Summarize(orders []ProcessedOrder, sheet models.ProductionSheet) models.Summary {
	summary := models.Summary{
		TotalOrders:   sheet.TotalOrders,
		DietaryCounts: make(map[string]int),
	}

	for _, po := range orders {
		// CustomerDietary is already normalized and de-duplicated, so each
		// order counts at most once per tag.
		for _, tag := range po.CustomerDietary {
			summary.DietaryCounts[tag]++
		}
	}

	for _, item := range sheet.Items {
		summary.TotalItems += item.Quantity
	}

	return summary
}
