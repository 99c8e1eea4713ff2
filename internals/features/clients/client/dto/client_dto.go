package dto

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"zoomcreatives_backend/internals/constants"
	m "zoomcreatives_backend/internals/features/clients/client/model"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

/* =============== REQUESTS =============== */

// EncodeModes renders a mode list back into the JSON form the intake field
// carries, so a merged record can be re-validated through CreateClientRequest.
func EncodeModes(modes []string) string {
	if len(modes) == 0 {
		return ""
	}
	b, err := json.Marshal(modes)
	if err != nil {
		return ""
	}
	return string(b)
}

// CreateClientRequest carries the multipart intake form. modeOfContact arrives
// as a JSON-encoded array (the SPA stringifies it into FormData).
type CreateClientRequest struct {
	Name          string `form:"name" json:"name"`
	Category      string `form:"category" json:"category"`
	Status        string `form:"status" json:"status"`
	Email         string `form:"email" json:"email"`
	Password      string `form:"password" json:"password"`
	Phone         string `form:"phone" json:"phone"`
	Nationality   string `form:"nationality" json:"nationality"`
	PostalCode    string `form:"postalCode" json:"postalCode"`
	Prefecture    string `form:"prefecture" json:"prefecture"`
	City          string `form:"city" json:"city"`
	Street        string `form:"street" json:"street"`
	Building      string `form:"building" json:"building"`
	FacebookURL   string `form:"facebookUrl" json:"facebookUrl"`
	ModeOfContact string `form:"modeOfContact" json:"modeOfContact"`
}

// Modes decodes the contact-mode list. Accepts a JSON array or a plain
// comma-separated fallback.
func (r CreateClientRequest) Modes() []string {
	raw := strings.TrimSpace(r.ModeOfContact)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out
		}
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate collects every violation at once. addressRequired comes from the
// category classification; when set, the whole address block minus building
// must be present.
func (r CreateClientRequest) Validate(addressRequired bool) map[string][]string {
	errs := map[string][]string{}

	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs[field] = append(errs[field], "required")
		}
	}

	require("name", r.Name)
	require("category", r.Category)
	require("email", r.Email)
	require("phone", r.Phone)
	require("nationality", r.Nationality)

	if strings.TrimSpace(r.Category) != "" && !constants.IsValidCategory(r.Category) {
		errs["category"] = append(errs["category"], "invalid category")
	}
	if strings.TrimSpace(r.Email) != "" && !emailRe.MatchString(strings.TrimSpace(r.Email)) {
		errs["email"] = append(errs["email"], "invalid email address")
	}
	if s := strings.TrimSpace(r.Status); s != "" && s != "active" && s != "inactive" {
		errs["status"] = append(errs["status"], "must be active or inactive")
	}
	for _, mode := range r.Modes() {
		if !constants.IsValidContactMode(mode) {
			errs["modeOfContact"] = append(errs["modeOfContact"], "invalid contact mode: "+mode)
		}
	}

	if addressRequired {
		require("postalCode", r.PostalCode)
		require("prefecture", r.Prefecture)
		require("city", r.City)
		require("street", r.Street)
	}

	return errs
}

func (r CreateClientRequest) ToModel() *m.ClientModel {
	status := strings.TrimSpace(r.Status)
	if status == "" {
		status = "active"
	}
	return &m.ClientModel{
		Name:          strings.TrimSpace(r.Name),
		Category:      strings.TrimSpace(r.Category),
		Status:        status,
		Email:         strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:         strings.TrimSpace(r.Phone),
		Nationality:   strings.TrimSpace(r.Nationality),
		PostalCode:    strings.TrimSpace(r.PostalCode),
		Prefecture:    strings.TrimSpace(r.Prefecture),
		City:          strings.TrimSpace(r.City),
		Street:        strings.TrimSpace(r.Street),
		Building:      strings.TrimSpace(r.Building),
		FacebookURL:   strings.TrimSpace(r.FacebookURL),
		ModeOfContact: r.Modes(),
	}
}

// UpdateClientRequest is a partial update; nil means "leave unchanged".
type UpdateClientRequest struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	Status        *string `json:"status"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	Phone         *string `json:"phone"`
	Nationality   *string `json:"nationality"`
	PostalCode    *string `json:"postalCode"`
	Prefecture    *string `json:"prefecture"`
	City          *string `json:"city"`
	Street        *string `json:"street"`
	Building      *string `json:"building"`
	FacebookURL   *string `json:"facebookUrl"`
	ModeOfContact *[]string `json:"modeOfContact"`
}

// ApplyTo copies set fields onto the existing model (password handled by the
// controller since it must be re-hashed).
func (r UpdateClientRequest) ApplyTo(mo *m.ClientModel) {
	if r.Name != nil {
		mo.Name = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		mo.Category = strings.TrimSpace(*r.Category)
	}
	if r.Status != nil {
		mo.Status = strings.TrimSpace(*r.Status)
	}
	if r.Email != nil {
		mo.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Phone != nil {
		mo.Phone = strings.TrimSpace(*r.Phone)
	}
	if r.Nationality != nil {
		mo.Nationality = strings.TrimSpace(*r.Nationality)
	}
	if r.PostalCode != nil {
		mo.PostalCode = strings.TrimSpace(*r.PostalCode)
	}
	if r.Prefecture != nil {
		mo.Prefecture = strings.TrimSpace(*r.Prefecture)
	}
	if r.City != nil {
		mo.City = strings.TrimSpace(*r.City)
	}
	if r.Street != nil {
		mo.Street = strings.TrimSpace(*r.Street)
	}
	if r.Building != nil {
		mo.Building = strings.TrimSpace(*r.Building)
	}
	if r.FacebookURL != nil {
		mo.FacebookURL = strings.TrimSpace(*r.FacebookURL)
	}
	if r.ModeOfContact != nil {
		mo.ModeOfContact = *r.ModeOfContact
	}
}

/* =============== RESPONSES =============== */

type ClientResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Nationality   string    `json:"nationality"`
	PostalCode    string    `json:"postalCode"`
	Prefecture    string    `json:"prefecture"`
	City          string    `json:"city"`
	Street        string    `json:"street"`
	Building      string    `json:"building"`
	ModeOfContact []string  `json:"modeOfContact"`
	FacebookURL   string    `json:"facebookUrl,omitempty"`
	ProfilePhoto  string    `json:"profilePhoto,omitempty"`
	DateJoined    time.Time `json:"dateJoined"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromModel(x m.ClientModel) ClientResponse {
	return ClientResponse{
		ID:            x.ID,
		Name:          x.Name,
		Category:      x.Category,
		Status:        x.Status,
		Email:         x.Email,
		Phone:         x.Phone,
		Nationality:   x.Nationality,
		PostalCode:    x.PostalCode,
		Prefecture:    x.Prefecture,
		City:          x.City,
		Street:        x.Street,
		Building:      x.Building,
		ModeOfContact: x.ModeOfContact,
		FacebookURL:   x.FacebookURL,
		ProfilePhoto:  x.ProfilePhoto,
		DateJoined:    x.DateJoined,
		CreatedAt:     x.CreatedAt,
		UpdatedAt:     x.UpdatedAt,
	}
}

func FromModels(list []m.ClientModel) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
