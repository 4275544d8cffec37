package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rbofficial_backend/internals/features/orders/model"
	"rbofficial_backend/internals/features/orders/service"
	helper "rbofficial_backend/internals/helpers"
)

/* =========================================================
   Admin — List orders + export
   GET /api/a/orders
   Query:
     - status=pending|checked|completed
     - is_ots=true|false
     - event_id=<uuid>
     - search=<substring nama/email/nomor order>
     - date_from=YYYY-MM-DD & date_to=YYYY-MM-DD (inklusif)
========================================================= */

// applyOrderFilters membangun query yang sama untuk listing dan export
func (ctrl *OrderController) applyOrderFilters(c *fiber.Ctx) (*gorm.DB, error) {
	db := ctrl.DB.WithContext(c.Context()).Model(&model.OrderModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.IsValidOrderStatus(status) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Status tidak valid (pending/checked/completed)")
		}
		db = db.Where("order_status = ?", status)
	}

	if raw := strings.TrimSpace(c.Query("is_ots")); raw != "" {
		switch strings.ToLower(raw) {
		case "true", "1":
			db = db.Where("order_is_ots = ?", true)
		case "false", "0":
			db = db.Where("order_is_ots = ?", false)
		default:
			return nil, fiber.NewError(fiber.StatusBadRequest, "is_ots harus true/false")
		}
	}

	if raw := strings.TrimSpace(c.Query("event_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "event_id bukan UUID yang valid")
		}
		db = db.Where("order_event_id = ?", id)
	}

	if q := strings.TrimSpace(c.Query("search")); q != "" {
		// LOWER LIKE supaya jalan di Postgres maupun sqlite (test)
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where(`
			LOWER(order_customer_name) LIKE ? OR
			LOWER(order_email) LIKE ? OR
			LOWER(order_number) LIKE ?
		`, like, like, like)
	}

	const dFmt = "2006-01-02"
	if fs := strings.TrimSpace(c.Query("date_from")); fs != "" {
		t, err := time.Parse(dFmt, fs)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "date_from harus format YYYY-MM-DD")
		}
		db = db.Where("created_at >= ?", t)
	}
	if ts := strings.TrimSpace(c.Query("date_to")); ts != "" {
		t, err := time.Parse(dFmt, ts)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "date_to harus format YYYY-MM-DD")
		}
		db = db.Where("created_at < ?", t.Add(24*time.Hour)) // inklusif
	}

	return db, nil
}

// GET /api/a/orders
func (ctrl *OrderController) ListOrders(c *fiber.Ctx) error {
	db, err := ctrl.applyOrderFilters(c)
	if err != nil {
		return err
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	var orders []model.OrderModel
	if err := db.
		Preload("Items").
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", orders,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/orders/:id
// Order yang tidak ada dijawab 404 eksplisit (bukan 500 generik).
func (ctrl *OrderController) GetOrderByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id bukan UUID yang valid")
	}

	var order model.OrderModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Items").
		First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", order)
}

// GET /api/a/orders/export/excel — filter sama persis dengan listing
func (ctrl *OrderController) ExportOrdersExcel(c *fiber.Ctx) error {
	db, err := ctrl.applyOrderFilters(c)
	if err != nil {
		return err
	}

	var orders []model.OrderModel
	if err := db.
		Preload("Items").
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	rep := service.BuildSalesReport(orders)
	payload, err := service.RenderSalesReportExcel(rep, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+service.ExportFilename(now)+`"`)
	return c.Send(payload)
}
