package constants

// Client service-line categories. The set is closed; the intake form rejects
// anything outside it.
var ClientCategories = []string{
	"Visit Visa Applicant",
	"Japan Visit Visa Applicant",
	"Document Translation",
	"Student Visa Applicant",
	"Epassport Applicant",
	"Japan Visa",
	"Graphic Design & Printing",
	"Web Design & Seo",
	"Birth Registration",
	"Documentation Support",
	"Other",
}

// Categories for which a Japanese address is optional. Every other category
// requires postal code, prefecture, city and street.
var OptionalAddressCategories = []string{
	"Document Translation",
	"Epassport Applicant",
	"Japan Visa",
	"Graphic Design & Printing",
	"Web Design & Seo",
	"Birth Registration",
	"Documentation Support",
	"Other",
}

func IsValidCategory(category string) bool {
	for _, c := range ClientCategories {
		if c == category {
			return true
		}
	}
	return false
}

// AddressRequired reports whether the category mandates a complete address.
func AddressRequired(category string) bool {
	for _, c := range OptionalAddressCategories {
		if c == category {
			return false
		}
	}
	return true
}
