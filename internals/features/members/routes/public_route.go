package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "rbofficial_backend/internals/features/members/controller"
)

func PublicMemberRoutes(api fiber.Router, db *gorm.DB) {
	memberCtrl := memberController.NewMemberController(db)

	api.Get("/members", memberCtrl.ListMembers)
}
