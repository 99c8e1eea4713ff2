package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() CreateClientRequest {
	return CreateClientRequest{
		Name:          "Ram Sharma",
		Category:      "Document Translation",
		Email:         "ram@example.com",
		Phone:         "080-1234-5678",
		Nationality:   "Nepalese",
		ModeOfContact: `["Viber","WhatsApp"]`,
	}
}

func TestValidateOptionalAddressCategoryPassesWithoutAddress(t *testing.T) {
	req := validRequest()
	errs := req.Validate(false)
	assert.Empty(t, errs)
}

func TestValidateRequiredAddressReportsEveryMissingField(t *testing.T) {
	req := validRequest()
	req.Category = "Visit Visa Applicant"
	errs := req.Validate(true)

	for _, field := range []string{"postalCode", "prefecture", "city", "street"} {
		assert.Contains(t, errs, field)
	}
	// building stays optional even when the address block is mandatory
	assert.NotContains(t, errs, "building")
}

func TestValidateCollectsAllViolationsAtOnce(t *testing.T) {
	errs := CreateClientRequest{}.Validate(false)
	for _, field := range []string{"name", "category", "email", "phone", "nationality"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	req := validRequest()
	req.Category = "Space Tourism"
	req.Email = "not-an-email"
	req.Status = "archived"
	req.ModeOfContact = `["Carrier Pigeon"]`

	errs := req.Validate(false)
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "modeOfContact")
}

func TestModesParsing(t *testing.T) {
	assert.Equal(t, []string{"Viber", "WhatsApp"},
		CreateClientRequest{ModeOfContact: `["Viber","WhatsApp"]`}.Modes())
	assert.Equal(t, []string{"Direct Call"},
		CreateClientRequest{ModeOfContact: "Direct Call"}.Modes())
	assert.Nil(t, CreateClientRequest{}.Modes())
	assert.Nil(t, CreateClientRequest{ModeOfContact: "[broken"}.Modes())
}

func TestEncodeModesRoundTrip(t *testing.T) {
	assert.Equal(t, []string{"Viber", "WhatsApp"},
		CreateClientRequest{ModeOfContact: EncodeModes([]string{"Viber", "WhatsApp"})}.Modes())
	assert.Equal(t, "", EncodeModes(nil))

	req := validRequest()
	req.ModeOfContact = EncodeModes([]string{"Carrier Pigeon"})
	assert.Contains(t, req.Validate(false), "modeOfContact")
}

func TestToModelNormalizes(t *testing.T) {
	req := validRequest()
	req.Email = "  Ram@Example.COM "
	req.Status = ""

	mdl := req.ToModel()
	assert.Equal(t, "ram@example.com", mdl.Email)
	assert.Equal(t, "active", mdl.Status)
	assert.Equal(t, []string{"Viber", "WhatsApp"}, []string(mdl.ModeOfContact))
}

func TestApplyToLeavesUnsetFieldsAlone(t *testing.T) {
	mdl := validRequest().ToModel()
	orig := *mdl

	newPhone := "090-0000-0000"
	UpdateClientRequest{Phone: &newPhone}.ApplyTo(mdl)

	assert.Equal(t, newPhone, mdl.Phone)
	assert.Equal(t, orig.Name, mdl.Name)
	assert.Equal(t, orig.Email, mdl.Email)
	assert.Equal(t, orig.Category, mdl.Category)
}
