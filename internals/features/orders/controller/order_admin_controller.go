package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rbofficial_backend/internals/features/orders/dto"
	"rbofficial_backend/internals/features/orders/model"
	"rbofficial_backend/internals/features/orders/service"
	helper "rbofficial_backend/internals/helpers"
)

// PATCH /api/a/orders/:id/status
// Tiga status sah, transisi bebas arah; di luar itu 400 tanpa menyentuh data.
func (ctrl *OrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id bukan UUID yang valid")
	}

	var body dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(ctrl.Validator); err != nil || !model.IsValidOrderStatus(body.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Status tidak valid (pending/checked/completed)")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.OrderModel{}).
		Where("order_id = ?", id).
		Update("order_status", body.Status)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Order tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Status order diperbarui", fiber.Map{
		"order_id": id,
		"status":   body.Status,
	})
}

// DELETE /api/a/orders/:id — hapus satu order, item ikut terhapus
func (ctrl *OrderController) DeleteOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id bukan UUID yang valid")
	}

	deleted := int64(0)
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_item_order_id = ?", id).
			Delete(&model.OrderItemModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("order_id = ?", id).Delete(&model.OrderModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Failed to delete order:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if deleted == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Order tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Order dihapus", fiber.Map{"order_id": id})
}

// POST /api/a/orders/bulk-delete
// Dua fase: resolve scope → kumpulkan id, lalu hapus item + order dalam
// satu transaksi. Scope kosong bukan error (count 0).
func (ctrl *OrderController) BulkDeleteOrders(c *fiber.Ctx) error {
	var body dto.BulkDeleteRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(ctrl.Validator); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	scope, err := service.ResolveBulkDeleteScope(&body, time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Fase 1: kumpulkan id order yang kena scope
	q := ctrl.DB.WithContext(c.Context()).Model(&model.OrderModel{})
	switch {
	case scope.EventID != nil:
		q = q.Where("order_event_id = ?", *scope.EventID)
	case scope.Cutoff != nil:
		q = q.Where("created_at >= ?", *scope.Cutoff)
	}

	var ids []uuid.UUID
	if err := q.Pluck("order_id", &ids).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(ids) == 0 {
		return helper.JsonDeleted(c, "Tidak ada order pada scope ini", fiber.Map{"deleted_count": 0})
	}

	// Fase 2: item dulu, lalu order
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_item_order_id IN ?", ids).
			Delete(&model.OrderItemModel{}).Error; err != nil {
			return err
		}
		return tx.Where("order_id IN ?", ids).
			Delete(&model.OrderModel{}).Error
	})
	if err != nil {
		log.Println("[ERROR] Bulk delete failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Bulk delete selesai", fiber.Map{
		"delete_type":   scope.DeleteType,
		"deleted_count": len(ids),
	})
}
