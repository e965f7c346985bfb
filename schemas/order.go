package schemas

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// OrderPayload is the validated shape of an order create/update body.
// order_id is dump-only and not declared here. CustomerID is a pointer so
// required means "key present", not "non-zero": 0 and negative ids are legal
// input. Date stays a string: it is bound directly as a SQL parameter, and
// the datetime tag guarantees it parses as a calendar date.
type OrderPayload struct {
	CustomerID *int   `json:"customer_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
}

// OrderSchema validates order request bodies
type OrderSchema struct {
	validate *validator.Validate
}

// NewOrderSchema creates an order schema instance
func NewOrderSchema() *OrderSchema {
	return &OrderSchema{validate: newValidator()}
}

// orderTypeMessages names the coercion failure for fields whose declared
// type is narrower than their JSON primitive.
var orderTypeMessages = map[string]string{
	"date": "Not a valid date.",
}

// Load deserializes and validates an order body
func (s *OrderSchema) Load(data []byte) (*OrderPayload, FieldErrors) {
	var payload OrderPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, loadErrors(err, orderTypeMessages)
	}
	if err := s.validate.Struct(&payload); err != nil {
		return nil, loadErrors(err, orderTypeMessages)
	}
	return &payload, nil
}
