package schemas

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// CustomerPayload is the validated shape of a customer create/update body.
// customer_id is dump-only: it is not declared here, so a client-supplied id
// is ignored on load.
type CustomerPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// CustomerSchema validates customer request bodies
type CustomerSchema struct {
	validate *validator.Validate
}

// NewCustomerSchema creates a customer schema instance
func NewCustomerSchema() *CustomerSchema {
	return &CustomerSchema{validate: newValidator()}
}

// Load deserializes and validates a customer body. It returns either a
// well-typed payload or the field errors, never both.
func (s *CustomerSchema) Load(data []byte) (*CustomerPayload, FieldErrors) {
	var payload CustomerPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, loadErrors(err, nil)
	}
	if err := s.validate.Struct(&payload); err != nil {
		return nil, loadErrors(err, nil)
	}
	return &payload, nil
}
