package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	"zoomcreatives_backend/internals/features/clients/client/controller"
	authMw "zoomcreatives_backend/internals/middlewares/auth"
)

// ClientRoutes mounts the client intake endpoints. Everything requires a
// logged-in operator; deletion is reserved for superadmin.
func ClientRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewClientController(db)

	client := app.Group("/api/v1/client",
		authMw.RequireLogin(),
		authMw.IsAdmin(db),
	)

	client.Post("/createClient", ctrl.CreateClient)
	client.Get("/getClient", ctrl.GetClients)
	client.Get("/getClient/:id", ctrl.GetClientByID)
	client.Put("/updateClient/:id", ctrl.UpdateClient)
	client.Delete("/deleteClient/:id",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("client deletion"), constants.RoleSuperAdmin),
		ctrl.DeleteClient,
	)
}
