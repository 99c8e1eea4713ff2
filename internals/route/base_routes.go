package route

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "zoomcreatives_backend/internals/helpers"
	"zoomcreatives_backend/internals/helpers/postal"
	authMw "zoomcreatives_backend/internals/middlewares/auth"
)

var startedAt = time.Now()

// BaseRoutes wires the service-level endpoints: health probe and the postal
// address lookup the intake form calls while the operator types.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).String(),
		})
	})

	resolver := postal.NewResolver()
	addr := app.Group("/api/v1/address", authMw.RequireLogin())
	addr.Get("/lookup/:postalCode", func(c *fiber.Ctx) error {
		code := postal.Normalize(c.Params("postalCode"))
		if !postal.IsComplete(code) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Postal code must be 7 digits")
		}
		result, err := resolver.Lookup(c.Context(), code)
		if err != nil {
			if errors.Is(err, postal.ErrNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Address not found for postal code")
			}
			return helper.JsonError(c, fiber.StatusBadGateway, "Postal lookup service unavailable")
		}
		return helper.JsonOK(c, "Data fetched", result)
	})
}
