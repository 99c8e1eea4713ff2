package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	helper "zoomcreatives_backend/internals/helpers"
)

// IsAdmin allows role admin or superadmin through. Superadmin identities carry
// their role in the token; everyone else is re-resolved against the staff then
// client stores so an account deleted after token issuance loses access
// immediately.
func IsAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(LocUserID).(string)
		if !ok || userID == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Invalid User Data")
		}

		if role, _ := c.Locals(LocUserRole).(string); role == constants.RoleSuperAdmin {
			return c.Next()
		}

		var role string
		err := db.Table("staff_accounts").
			Select("role").
			Where("id = ?", userID).
			Scan(&role).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] IsAdmin staff lookup:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if role == "" {
			err = db.Table("clients").
				Select("'client'").
				Where("id = ?", userID).
				Scan(&role).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] IsAdmin client lookup:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
		}

		if role != constants.RoleAdmin && role != constants.RoleSuperAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "Access Denied: Insufficient Permissions")
		}
		return c.Next()
	}
}
