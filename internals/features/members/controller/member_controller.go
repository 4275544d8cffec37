package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rbofficial_backend/internals/features/members/model"
	helper "rbofficial_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// GET /api/public/members — katalog member untuk storefront
func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	var members []model.MemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("member_name ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", members)
}
