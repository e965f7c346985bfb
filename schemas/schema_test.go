package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerSchemaLoad(t *testing.T) {
	schema := NewCustomerSchema()

	tests := []struct {
		name           string
		body           string
		expectPayload  bool
		expectedErrors map[string]string
	}{
		{
			name:          "Valid customer",
			body:          `{"name": "Ada Lovelace", "email": "ada@example.com", "phone": "555-0100"}`,
			expectPayload: true,
		},
		{
			name: "Missing email",
			body: `{"name": "Ada Lovelace", "phone": "555-0100"}`,
			expectedErrors: map[string]string{
				"email": "Missing data for required field.",
			},
		},
		{
			name: "Empty body collects every required field",
			body: `{}`,
			expectedErrors: map[string]string{
				"name":  "Missing data for required field.",
				"email": "Missing data for required field.",
				"phone": "Missing data for required field.",
			},
		},
		{
			name: "Wrong type for name",
			body: `{"name": 42, "email": "ada@example.com", "phone": "555-0100"}`,
			expectedErrors: map[string]string{
				"name": "Not a valid string.",
			},
		},
		{
			name: "Non-object body",
			body: `"just a string"`,
			expectedErrors: map[string]string{
				"_schema": "Invalid input type.",
			},
		},
		{
			name:          "Client-supplied customer_id is ignored",
			body:          `{"customer_id": 99, "name": "Ada", "email": "ada@example.com", "phone": "555-0100"}`,
			expectPayload: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, fieldErrors := schema.Load([]byte(tt.body))

			if tt.expectPayload {
				assert.Nil(t, fieldErrors)
				assert.NotNil(t, payload)
			} else {
				assert.Nil(t, payload)
				assert.Equal(t, FieldErrors(tt.expectedErrors), fieldErrors)
			}
		})
	}
}

func TestCustomerSchemaLoadValues(t *testing.T) {
	schema := NewCustomerSchema()

	payload, fieldErrors := schema.Load([]byte(`{"name": "A", "email": "a@x.com", "phone": "555"}`))
	assert.Nil(t, fieldErrors)
	assert.Equal(t, "A", payload.Name)
	assert.Equal(t, "a@x.com", payload.Email)
	assert.Equal(t, "555", payload.Phone)
}

func TestOrderSchemaLoad(t *testing.T) {
	schema := NewOrderSchema()

	tests := []struct {
		name           string
		body           string
		expectPayload  bool
		expectedErrors map[string]string
	}{
		{
			name:          "Valid order",
			body:          `{"customer_id": 1, "date": "2024-01-15"}`,
			expectPayload: true,
		},
		{
			name: "Date not parseable as a date",
			body: `{"customer_id": 1, "date": "not-a-date"}`,
			expectedErrors: map[string]string{
				"date": "Not a valid date.",
			},
		},
		{
			name: "Date with wrong layout",
			body: `{"customer_id": 1, "date": "15/01/2024"}`,
			expectedErrors: map[string]string{
				"date": "Not a valid date.",
			},
		},
		{
			name:          "Zero customer_id is present, not missing",
			body:          `{"customer_id": 0, "date": "2024-01-15"}`,
			expectPayload: true,
		},
		{
			name:          "Negative customer_id decodes",
			body:          `{"customer_id": -1, "date": "2024-01-15"}`,
			expectPayload: true,
		},
		{
			name: "Missing customer_id",
			body: `{"date": "2024-01-15"}`,
			expectedErrors: map[string]string{
				"customer_id": "Missing data for required field.",
			},
		},
		{
			name: "Wrong type for customer_id",
			body: `{"customer_id": "abc", "date": "2024-01-15"}`,
			expectedErrors: map[string]string{
				"customer_id": "Not a valid integer.",
			},
		},
		{
			name: "Wrong type for date",
			body: `{"customer_id": 1, "date": 5}`,
			expectedErrors: map[string]string{
				"date": "Not a valid date.",
			},
		},
		{
			name:          "Client-supplied order_id is ignored",
			body:          `{"order_id": 7, "customer_id": 1, "date": "2024-01-15"}`,
			expectPayload: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, fieldErrors := schema.Load([]byte(tt.body))

			if tt.expectPayload {
				assert.Nil(t, fieldErrors)
				assert.NotNil(t, payload)
			} else {
				assert.Nil(t, payload)
				assert.Equal(t, FieldErrors(tt.expectedErrors), fieldErrors)
			}
		})
	}
}

func TestOrderSchemaLoadValues(t *testing.T) {
	schema := NewOrderSchema()

	payload, fieldErrors := schema.Load([]byte(`{"customer_id": 3, "date": "2024-06-30"}`))
	assert.Nil(t, fieldErrors)
	assert.Equal(t, 3, *payload.CustomerID)
	assert.Equal(t, "2024-06-30", payload.Date)
}
