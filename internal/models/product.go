package models

// Product represents a meal available for order. DietaryTags lists the
// requirements the meal satisfies; NDISApproved marks products billable
// under the NDIS program.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DietaryTags  []string `json:"dietaryTags"`
	NDISApproved bool     `json:"ndisApproved"`
}
