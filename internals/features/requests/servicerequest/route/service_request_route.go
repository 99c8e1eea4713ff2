package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	"zoomcreatives_backend/internals/features/requests/servicerequest/controller"
	"zoomcreatives_backend/internals/middlewares"
	authMw "zoomcreatives_backend/internals/middlewares/auth"
)

// ServiceRequestRoutes mounts the public intake plus the admin-side review
// endpoints under the same prefix.
func ServiceRequestRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewServiceRequestController(db)

	public := app.Group("/api/v1/serviceRequest")
	public.Post("/createServiceRequest", middlewares.GlobalRateLimiter(), ctrl.CreateServiceRequest)

	admin := app.Group("/api/v1/serviceRequest",
		authMw.RequireLogin(),
		authMw.IsAdmin(db),
	)
	admin.Get("/getAllServiceRequests", ctrl.GetServiceRequests)
	admin.Put("/updateServiceRequest/:id", ctrl.UpdateServiceRequestStatus)
	admin.Delete("/deleteServiceRequest/:id",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("service request deletion"), constants.RoleSuperAdmin),
		ctrl.DeleteServiceRequest,
	)
}
