package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "zoomcreatives_backend/internals/features/users/accounts/dto"
	repo "zoomcreatives_backend/internals/features/users/accounts/repository"
	service "zoomcreatives_backend/internals/features/users/accounts/service"
	helper "zoomcreatives_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ======================= REGISTER ======================= */
// POST /api/v1/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := req.Validate(); len(errs) > 0 {
		return helper.JsonValidationError(c, "All fields are required", errs)
	}

	if _, err := repo.FindStaffByEmail(h.DB, req.Email); err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "user already exist")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] register email lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	account := req.ToModel()
	account.Password = hash
	account.SetDefaultValues()

	if err := repo.CreateStaff(h.DB, account); err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "user already exist")
		}
		log.Println("[ERROR] register create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Account created successfully! Please log in.",
		"user":    dto.FromStaffModel(*account),
	})
}

/* ======================= CREATE SUPER ADMIN ======================= */
// POST /api/v1/auth/createSuperAdmin
func (h *AuthController) CreateSuperAdmin(c *fiber.Ctx) error {
	var req dto.CreateSuperAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := req.Validate(); len(errs) > 0 {
		return helper.JsonValidationError(c, "All fields are required", errs)
	}

	if _, err := repo.FindSuperAdminByEmail(h.DB, req.Email); err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "superAdmin already exist")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] superadmin email lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	account := req.ToModel()
	account.Password = hash
	account.SetDefaultValues()

	if err := repo.CreateSuperAdmin(h.DB, account); err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "superAdmin already exist")
		}
		log.Println("[ERROR] superadmin create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Super Admin account created successfully! Please log in.",
		"user":    dto.FromSuperAdminModel(*account),
	})
}

/* ======================= LOGIN ======================= */
// POST /api/v1/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	account, err := service.Authenticate(h.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		}
		log.Println("[ERROR] login:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred during login. Please try again later.")
	}

	token, err := service.GenerateToken(account.ID, account.Email, account.Role)
	if err != nil {
		log.Println("[ERROR] token sign:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred during login. Please try again later.")
	}

	// last-login tracking exists on the staff store only
	if account.Kind == service.KindStaff {
		if err := repo.TouchStaffLastLogin(h.DB, account.ID); err != nil {
			log.Println("[WARN] last_login update:", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user": dto.LoginUserResponse{
			ID:       account.ID,
			FullName: account.DisplayName,
			Email:    account.Email,
			Role:     account.Role,
			Phone:    account.Phone,
		},
		"token": token,
	})
}

/* ======================= VERIFY TOKEN ======================= */
// GET /api/v1/auth/verify-token  (behind RequireLogin)
func (h *AuthController) VerifyToken(c *fiber.Ctx) error {
	claims, err := service.ParseToken(helper.GetRawAccessToken(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Invalid Token")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    claims["id"],
			"email": claims["email"],
			"role":  claims["role"],
		},
	})
}

/* ======================= RESET PASSWORD ======================= */
// POST /api/v1/auth/reset-password
func (h *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(req.Email) == "" || len(req.NewPassword) < 4 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and a new password are required")
	}

	account, err := repo.FindStaffByEmail(h.DB, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hash, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := repo.UpdateStaffPassword(h.DB, account.ID, hash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password reset successfully", nil)
}
