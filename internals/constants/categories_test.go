package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressRequired(t *testing.T) {
	required := []string{
		"Visit Visa Applicant",
		"Japan Visit Visa Applicant",
		"Student Visa Applicant",
	}
	for _, cat := range required {
		assert.True(t, AddressRequired(cat), "category %q should require an address", cat)
	}
	for _, cat := range OptionalAddressCategories {
		assert.False(t, AddressRequired(cat), "category %q should not require an address", cat)
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, cat := range ClientCategories {
		assert.True(t, IsValidCategory(cat))
	}
	assert.False(t, IsValidCategory("Space Tourism"))
	assert.False(t, IsValidCategory(""))
}

func TestEveryOptionalCategoryIsAKnownCategory(t *testing.T) {
	for _, cat := range OptionalAddressCategories {
		assert.True(t, IsValidCategory(cat), "optional-address category %q missing from the category set", cat)
	}
}
