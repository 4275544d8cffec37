package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "rbofficial_backend/internals/features/orders/controller"
	middlewares "rbofficial_backend/internals/middlewares"
)

// PublicOrderRoutes: storefront hanya boleh membuat pre-order
func PublicOrderRoutes(api fiber.Router, db *gorm.DB) {
	orderCtrl := orderController.NewOrderController(db)

	api.Post("/orders", middlewares.OrderCreationRateLimiter(), orderCtrl.CreatePreOrder)
}
