package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	"zoomcreatives_backend/internals/features/applications/epassport/controller"
	authMw "zoomcreatives_backend/internals/middlewares/auth"
)

func EpassportRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewEpassportController(db)

	ep := app.Group("/api/v1/ePassport",
		authMw.RequireLogin(),
		authMw.IsAdmin(db),
	)

	ep.Post("/createEpassport", ctrl.CreateEpassport)
	ep.Get("/getAllEpassports", ctrl.GetEpassports)
	ep.Get("/getEpassport/:id", ctrl.GetEpassportByID)
	ep.Put("/updateEpassport/:id", ctrl.UpdateEpassport)
	ep.Delete("/deleteEpassport/:id",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("ePassport deletion"), constants.RoleSuperAdmin),
		ctrl.DeleteEpassport,
	)
}
