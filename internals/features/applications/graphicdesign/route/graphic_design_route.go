package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	"zoomcreatives_backend/internals/features/applications/graphicdesign/controller"
	authMw "zoomcreatives_backend/internals/middlewares/auth"
)

func GraphicDesignRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewGraphicDesignController(db)

	gd := app.Group("/api/v1/graphicDesign",
		authMw.RequireLogin(),
		authMw.IsAdmin(db),
	)

	gd.Post("/createGraphicDesign", ctrl.CreateGraphicDesign)
	gd.Get("/getAllGraphicDesigns", ctrl.GetGraphicDesigns)
	gd.Get("/getGraphicDesign/:id", ctrl.GetGraphicDesignByID)
	gd.Put("/updateGraphicDesign/:id", ctrl.UpdateGraphicDesign)
	gd.Delete("/deleteGraphicDesign/:id",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("graphic design deletion"), constants.RoleSuperAdmin),
		ctrl.DeleteGraphicDesign,
	)
}
