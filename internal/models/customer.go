package models

// Customer is a profile-store record resolved from the commerce platform's
// customer webhooks. Read-only to the processing pipeline.
type Customer struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	DietaryRequirements []string `json:"dietaryRequirements"`
	NDISParticipantID   string   `json:"ndisParticipantId,omitempty"`
}

// IsNDISParticipant reports whether the customer is enrolled in the NDIS
// billing program.
func (c Customer) IsNDISParticipant() bool {
	return c.NDISParticipantID != ""
}
