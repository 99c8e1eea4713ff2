package constants

import "fmt"

// Account roles across the three stores.
const (
	RoleAdmin      = "admin"
	RoleClient     = "client"
	RoleSuperAdmin = "superadmin"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess      = "❌ Only admin or superadmin may access %s."
	ErrOnlySuperAdminsCanAccess = "❌ Only superadmin may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
