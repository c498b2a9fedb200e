package webhook

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload OrderPayload
		wantErr bool
	}{
		{
			name: "valid payload",
			payload: OrderPayload{
				ID:         "o1",
				CustomerID: "c1",
				LineItems:  []LineItemPayload{{ProductID: "p1", Name: "Keto Chicken Bowl", Quantity: 2}},
			},
			wantErr: false,
		},
		{
			name:    "missing order id",
			payload: OrderPayload{CustomerID: "c1"},
			wantErr: true,
		},
		{
			name:    "missing customer reference",
			payload: OrderPayload{ID: "o1"},
			wantErr: true,
		},
		{
			name: "missing product reference on line item",
			payload: OrderPayload{
				ID:         "o1",
				CustomerID: "c1",
				LineItems:  []LineItemPayload{{Name: "Mystery Meal", Quantity: 1}},
			},
			wantErr: true,
		},
		{
			name: "zero quantity is structurally fine",
			payload: OrderPayload{
				ID:         "o1",
				CustomerID: "c1",
				LineItems:  []LineItemPayload{{ProductID: "p1", Quantity: 0}},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderPayload_ToOrder(t *testing.T) {
	created := time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)
	payload := OrderPayload{
		ID:         "o1",
		Number:     "#1001",
		CustomerID: "c1",
		Note:       "no onions",
		CreatedAt:  created,
		TotalPrice: decimal.RequireFromString("61.00"),
		LineItems: []LineItemPayload{
			{ProductID: "p1", Name: "Keto Chicken Bowl", Quantity: 2},
		},
	}

	order := payload.ToOrder()

	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, "#1001", order.Number)
	assert.Equal(t, "c1", order.CustomerID)
	assert.Equal(t, "no onions", order.Note)
	assert.Equal(t, created, order.CreatedAt)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("61.00")))
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, "p1", order.LineItems[0].ProductID)
	assert.Equal(t, 2, order.LineItems[0].Quantity)
}

func TestOrderPayload_DecodesPlatformJSON(t *testing.T) {
	raw := `{
		"id": "o1",
		"number": "#1001",
		"customerId": "c1",
		"lineItems": [{"productId": "p1", "name": "Keto Chicken Bowl", "quantity": 2}],
		"note": "extra sauce",
		"createdAt": "2024-01-16T09:30:00Z",
		"totalPrice": 61.0
	}`

	var payload OrderPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	require.NoError(t, payload.Validate())
	assert.True(t, payload.TotalPrice.Equal(decimal.NewFromFloat(61.0)))
}

func TestCustomerPayload_Validate(t *testing.T) {
	valid := CustomerPayload{ID: "c1", Name: "Sarah Johnson", DietaryRequirements: []string{"keto"}}
	assert.NoError(t, valid.Validate())

	missingName := CustomerPayload{ID: "c1"}
	assert.Error(t, missingName.Validate())
}

func TestCustomerPayload_ToCustomer(t *testing.T) {
	payload := CustomerPayload{
		ID:                  "c1",
		Name:                "Sarah Johnson",
		DietaryRequirements: []string{"keto", "dairy-free"},
		NDISParticipantID:   "NDIS-430001",
	}

	customer := payload.ToCustomer()

	assert.Equal(t, "c1", customer.ID)
	assert.True(t, customer.IsNDISParticipant())
	assert.Equal(t, []string{"keto", "dairy-free"}, customer.DietaryRequirements)
}
