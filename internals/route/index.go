// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rbofficial_backend/internals/configs"
	eventRoutes "rbofficial_backend/internals/features/events/routes"
	memberRoutes "rbofficial_backend/internals/features/members/routes"
	orderRoutes "rbofficial_backend/internals/features/orders/routes"
	authMiddleware "rbofficial_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → tanpa auth (storefront)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ADMIN → JWT dari layanan auth eksternal
	log.Println("[INFO] Setting up ADMIN group (AuthJWT)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(configs.JWTSecret),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Member routes...")
	memberRoutes.PublicMemberRoutes(public, db)

	log.Println("[INFO] Mounting Event routes...")
	eventRoutes.PublicEventRoutes(public, db)
	eventRoutes.AdminEventRoutes(admin, db)

	log.Println("[INFO] Mounting Order routes...")
	orderRoutes.PublicOrderRoutes(public, db)
	orderRoutes.AdminOrderRoutes(admin, db)
}
