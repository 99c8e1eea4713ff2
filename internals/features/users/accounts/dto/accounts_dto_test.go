package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterValidateCollectsEveryMissingField(t *testing.T) {
	errs := RegisterRequest{}.Validate()
	for _, field := range []string{"fullName", "phone", "nationality", "email", "password", "confirmPassword"} {
		assert.Contains(t, errs, field)
	}
}

func TestRegisterValidatePasswordMismatch(t *testing.T) {
	req := RegisterRequest{
		FullName:        "Hari Adhikari",
		Phone:           "080-1111-2222",
		Nationality:     "Nepalese",
		Email:           "hari@zoomcreatives.jp",
		Password:        "one",
		ConfirmPassword: "two",
	}
	errs := req.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs["confirmPassword"], "Passwords do not match")
}

func TestRegisterValidateHappyPath(t *testing.T) {
	req := RegisterRequest{
		FullName:        "Hari Adhikari",
		Phone:           "080-1111-2222",
		Nationality:     "Nepalese",
		Email:           "hari@zoomcreatives.jp",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
	}
	assert.Empty(t, req.Validate())
}

func TestRegisterToModelNormalizesEmail(t *testing.T) {
	mdl := RegisterRequest{Email: " Hari@ZoomCreatives.JP "}.ToModel()
	assert.Equal(t, "hari@zoomcreatives.jp", mdl.Email)
}
