package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	authRepo "zoomcreatives_backend/internals/features/users/accounts/repository"
)

// ErrInvalidCredentials is returned for unknown email AND wrong password alike
// so a caller cannot tell which one failed.
var ErrInvalidCredentials = errors.New("Invalid email or password")

type AccountKind string

const (
	KindStaff      AccountKind = "staff"
	KindClient     AccountKind = "client"
	KindSuperAdmin AccountKind = "superadmin"
)

// AuthedAccount is the identity resolved by Authenticate, with the display
// name normalized across the three store variants.
type AuthedAccount struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
	Role        string
	Phone       string
	Kind        AccountKind
}

// Authenticate resolves the email across the stores in fixed order
// staff → client → super-admin and verifies the password of the first match.
// Email uniqueness holds within each store, not across them, so the order is
// the tie-breaker.
func Authenticate(db *gorm.DB, email, password string) (*AuthedAccount, error) {
	if staff, err := authRepo.FindStaffByEmail(db, email); err == nil {
		if !CheckPassword(staff.Password, password) {
			return nil, ErrInvalidCredentials
		}
		role := staff.Role
		if role == "" {
			role = constants.RoleAdmin
		}
		return &AuthedAccount{
			ID:          staff.ID,
			DisplayName: staff.FullName,
			Email:       staff.Email,
			Role:        role,
			Phone:       staff.Phone,
			Kind:        KindStaff,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if client, err := authRepo.FindClientByEmail(db, email); err == nil {
		if !CheckPassword(client.Password, password) {
			return nil, ErrInvalidCredentials
		}
		return &AuthedAccount{
			ID:          client.ID,
			DisplayName: client.Name,
			Email:       client.Email,
			Role:        constants.RoleClient,
			Phone:       client.Phone,
			Kind:        KindClient,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if admin, err := authRepo.FindSuperAdminByEmail(db, email); err == nil {
		if !CheckPassword(admin.Password, password) {
			return nil, ErrInvalidCredentials
		}
		display := admin.Name
		if display == "" {
			display = admin.Email
		}
		return &AuthedAccount{
			ID:          admin.ID,
			DisplayName: display,
			Email:       admin.Email,
			Role:        constants.RoleSuperAdmin,
			Kind:        KindSuperAdmin,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrInvalidCredentials
}
