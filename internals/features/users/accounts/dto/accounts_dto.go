package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "zoomcreatives_backend/internals/features/users/accounts/model"
)

/* =============== REQUESTS =============== */

type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	Nationality     string `json:"nationality"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate collects every violation so the SPA can render them all at once.
func (r RegisterRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	requireField(errs, "fullName", r.FullName)
	requireField(errs, "phone", r.Phone)
	requireField(errs, "nationality", r.Nationality)
	requireField(errs, "email", r.Email)
	requireField(errs, "password", r.Password)
	requireField(errs, "confirmPassword", r.ConfirmPassword)
	if r.Password != "" && r.ConfirmPassword != "" && r.Password != r.ConfirmPassword {
		errs["confirmPassword"] = append(errs["confirmPassword"], "Passwords do not match")
	}
	return errs
}

func (r RegisterRequest) ToModel() *m.StaffAccountModel {
	return &m.StaffAccountModel{
		FullName:    strings.TrimSpace(r.FullName),
		Phone:       strings.TrimSpace(r.Phone),
		Nationality: strings.TrimSpace(r.Nationality),
		Email:       strings.ToLower(strings.TrimSpace(r.Email)),
	}
}

type CreateSuperAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r CreateSuperAdminRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	requireField(errs, "name", r.Name)
	requireField(errs, "email", r.Email)
	requireField(errs, "password", r.Password)
	return errs
}

func (r CreateSuperAdminRequest) ToModel() *m.SuperAdminModel {
	return &m.SuperAdminModel{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.ToLower(strings.TrimSpace(r.Email)),
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

func requireField(errs map[string][]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		errs[name] = append(errs[name], "required")
	}
}

/* =============== RESPONSES =============== */

type StaffAccountResponse struct {
	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"fullName"`
	Phone       string     `json:"phone"`
	Nationality string     `json:"nationality"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromStaffModel(x m.StaffAccountModel) StaffAccountResponse {
	return StaffAccountResponse{
		ID:          x.ID,
		FullName:    x.FullName,
		Phone:       x.Phone,
		Nationality: x.Nationality,
		Email:       x.Email,
		Role:        x.Role,
		Status:      x.Status,
		LastLogin:   x.LastLogin,
		CreatedAt:   x.CreatedAt,
	}
}

func FromStaffModels(list []m.StaffAccountModel) []StaffAccountResponse {
	out := make([]StaffAccountResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromStaffModel(it))
	}
	return out
}

type SuperAdminResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromSuperAdminModel(x m.SuperAdminModel) SuperAdminResponse {
	return SuperAdminResponse{
		ID:        x.ID,
		Name:      x.Name,
		Email:     x.Email,
		Role:      x.Role,
		CreatedAt: x.CreatedAt,
	}
}

// LoginUserResponse normalizes the display-name field across the three stores.
type LoginUserResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Phone    string    `json:"phone,omitempty"`
}
