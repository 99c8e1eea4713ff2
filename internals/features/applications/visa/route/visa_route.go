package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	"zoomcreatives_backend/internals/features/applications/visa/controller"
	authMw "zoomcreatives_backend/internals/middlewares/auth"
)

func VisaApplicationRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewVisaController(db)

	visa := app.Group("/api/v1/visaApplication",
		authMw.RequireLogin(),
		authMw.IsAdmin(db),
	)

	visa.Post("/createVisaApplication", ctrl.CreateVisaApplication)
	visa.Get("/getAllVisaApplication", ctrl.GetVisaApplications)
	visa.Get("/getVisaApplication/:id", ctrl.GetVisaApplicationByID)
	visa.Put("/updateVisaApplication/:id", ctrl.UpdateVisaApplication)
	visa.Delete("/deleteVisaApplication/:id",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("visa application deletion"), constants.RoleSuperAdmin),
		ctrl.DeleteVisaApplication,
	)
}
