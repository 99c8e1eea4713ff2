package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	controller "zoomcreatives_backend/internals/features/users/accounts/controller"
	rateLimiter "zoomcreatives_backend/internals/middlewares"
	authMw "zoomcreatives_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)
	adminController := controller.NewAdminController(db)

	// ==========================
	// Base: /api/v1/auth
	// ==========================
	baseAuth := app.Group("/api/v1/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/createSuperAdmin", rateLimiter.RegisterRateLimiter(), authController.CreateSuperAdmin)
	baseAuth.Post("/reset-password", authController.ResetPassword)

	// 🔒 Protected
	baseAuth.Get("/verify-token", authMw.RequireLogin(), authController.VerifyToken)

	// ==========================
	// Base: /api/v1/admin
	// ==========================
	adminGroup := app.Group("/api/v1/admin",
		authMw.RequireLogin(),
		authMw.IsAdmin(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("the admin directory"), constants.AdminAndAbove...),
	)
	adminGroup.Get("/getAllAdmin", adminController.GetAllAdmins)
}
