package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	"zoomcreatives_backend/internals/features/applications/japanvisit/controller"
	authMw "zoomcreatives_backend/internals/middlewares/auth"
)

func JapanVisitRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewJapanVisitController(db)

	jv := app.Group("/api/v1/japanVisit",
		authMw.RequireLogin(),
		authMw.IsAdmin(db),
	)

	jv.Post("/createJapanVisitApplication", ctrl.CreateJapanVisit)
	jv.Get("/getAllJapanVisitApplications", ctrl.GetJapanVisits)
	jv.Get("/getJapanVisitApplication/:id", ctrl.GetJapanVisitByID)
	jv.Put("/updateJapanVisitApplication/:id", ctrl.UpdateJapanVisit)
	jv.Delete("/deleteJapanVisitApplication/:id",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("Japan visit deletion"), constants.RoleSuperAdmin),
		ctrl.DeleteJapanVisit,
	)
}
