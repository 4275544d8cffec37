package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "rbofficial_backend/internals/features/events/controller"
)

func AdminEventRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := eventController.NewEventController(db)

	api.Post("/events", eventCtrl.CreateEvent)
	api.Put("/events/:id", eventCtrl.UpdateEvent)
	api.Delete("/events/:id", eventCtrl.DeleteEvent)
}
