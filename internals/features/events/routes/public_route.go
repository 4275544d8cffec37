package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "rbofficial_backend/internals/features/events/controller"
)

func PublicEventRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := eventController.NewEventController(db)

	api.Get("/events", eventCtrl.ListEvents)
	api.Get("/events/:id", eventCtrl.GetEventByID)
}
