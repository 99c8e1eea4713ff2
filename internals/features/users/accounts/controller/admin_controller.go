package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "zoomcreatives_backend/internals/features/users/accounts/dto"
	repo "zoomcreatives_backend/internals/features/users/accounts/repository"
	helper "zoomcreatives_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

/* ======================== LIST ======================== */
// GET /api/v1/admin/getAllAdmin
// Feeds the handler dropdowns in the application forms.
func (h *AdminController) GetAllAdmins(c *fiber.Ctx) error {
	accounts, err := repo.ListStaff(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching admins")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Data fetched",
		"admins":  dto.FromStaffModels(accounts),
	})
}
