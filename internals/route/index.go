package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	epassportRoute "zoomcreatives_backend/internals/features/applications/epassport/route"
	graphicDesignRoute "zoomcreatives_backend/internals/features/applications/graphicdesign/route"
	japanVisitRoute "zoomcreatives_backend/internals/features/applications/japanvisit/route"
	visaRoute "zoomcreatives_backend/internals/features/applications/visa/route"
	clientRoute "zoomcreatives_backend/internals/features/clients/client/route"
	serviceRequestRoute "zoomcreatives_backend/internals/features/requests/servicerequest/route"
	authRoute "zoomcreatives_backend/internals/features/users/accounts/route"
)

// SetupRoutes mounts every feature group on the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up base routes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up auth & admin routes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up client routes...")
	clientRoute.ClientRoutes(app, db)

	log.Println("[INFO] Setting up application routes...")
	visaRoute.VisaApplicationRoutes(app, db)
	epassportRoute.EpassportRoutes(app, db)
	graphicDesignRoute.GraphicDesignRoutes(app, db)
	japanVisitRoute.JapanVisitRoutes(app, db)

	log.Println("[INFO] Setting up service request routes...")
	serviceRequestRoute.ServiceRequestRoutes(app, db)
}
