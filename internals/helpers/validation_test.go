package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	ClientID string `json:"clientId" validate:"required,uuid"`
	Type     string `json:"type" validate:"required,oneof='Visitor Visa' 'Student Visa'"`
	Amount   int64  `json:"amount" validate:"omitempty,min=0"`
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	errs := ValidateStruct(samplePayload{})
	assert.Contains(t, errs, "clientId")
	assert.Contains(t, errs, "type")
	assert.NotContains(t, errs, "ClientID")
}

func TestValidateStructOneofAndUUID(t *testing.T) {
	errs := ValidateStruct(samplePayload{ClientID: "not-a-uuid", Type: "Work Visa"})
	assert.Contains(t, errs["clientId"], "must be a valid UUID")
	assert.NotEmpty(t, errs["type"])
}

func TestValidateStructValid(t *testing.T) {
	errs := ValidateStruct(samplePayload{
		ClientID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		Type:     "Visitor Visa",
		Amount:   1000,
	})
	assert.Nil(t, errs)
}
