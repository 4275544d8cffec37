package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rbofficial_backend/internals/configs"
	eventModel "rbofficial_backend/internals/features/events/model"
	"rbofficial_backend/internals/features/orders/dto"
	"rbofficial_backend/internals/features/orders/model"
	"rbofficial_backend/internals/features/orders/service"
	helper "rbofficial_backend/internals/helpers"
)

type OrderController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctrl *OrderController) mailDomain() string {
	if configs.OrderMailDomain != "" {
		return configs.OrderMailDomain
	}
	return "rbofficial.store"
}

// loadEvent mengambil event beserta lineup-nya untuk gating
func (ctrl *OrderController) loadEvent(c *fiber.Ctx, rawID string) (*eventModel.EventModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "event_id bukan UUID yang valid")
	}
	var event eventModel.EventModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Lineup").
		First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Event tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &event, nil
}

// persistOrder menulis header + item dalam satu transaksi.
// Dua insert tetap berurutan (header dulu, lalu item), tapi gagal di
// tengah tidak meninggalkan header yatim.
func (ctrl *OrderController) persistOrder(c *fiber.Ctx, order *model.OrderModel) error {
	items := order.Items
	order.Items = nil

	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderItemOrderID = order.OrderID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})

	order.Items = items
	return err
}

// POST /api/public/orders — pre-order dari storefront
func (ctrl *OrderController) CreatePreOrder(c *fiber.Ctx) error {
	var body dto.CreatePreOrderRequest
	if err := c.BodyParser(&body); err != nil {
		log.Println("[ERROR] BodyParser failed:", err)
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(ctrl.Validator); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	event, err := ctrl.loadEvent(c, body.EventID)
	if err != nil {
		return err
	}

	order := service.AssemblePreOrder(&body, event.EventID, time.Now(), ctrl.mailDomain())

	// Gating lineup di server; cek di client cuma UX
	if v := service.CheckLineup(event, order.Items); v != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, v.Error(), v)
	}

	if err := ctrl.persistOrder(c, &order); err != nil {
		log.Println("[ERROR] Failed to create order:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Order berhasil dibuat", order)
}

// POST /api/a/orders/ots — order on-the-spot dari admin console
func (ctrl *OrderController) CreateOTSOrder(c *fiber.Ctx) error {
	var body dto.CreateOTSOrderRequest
	if err := c.BodyParser(&body); err != nil {
		log.Println("[ERROR] BodyParser failed:", err)
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(ctrl.Validator); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	event, err := ctrl.loadEvent(c, body.EventID)
	if err != nil {
		return err
	}

	order := service.AssembleOTSOrder(&body, event.EventID, time.Now(), ctrl.mailDomain())

	if v := service.CheckLineup(event, order.Items); v != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, v.Error(), v)
	}

	if err := ctrl.persistOrder(c, &order); err != nil {
		log.Println("[ERROR] Failed to create OTS order:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Order OTS berhasil dibuat", order)
}
