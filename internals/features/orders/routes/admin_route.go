package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "rbofficial_backend/internals/features/orders/controller"
)

// AdminOrderRoutes: seluruh operasi order untuk admin console
func AdminOrderRoutes(api fiber.Router, db *gorm.DB) {
	orderCtrl := orderController.NewOrderController(db)

	api.Get("/orders", orderCtrl.ListOrders)
	api.Get("/orders/export/excel", orderCtrl.ExportOrdersExcel) // sebelum :id supaya tidak ketangkap param
	api.Get("/orders/:id", orderCtrl.GetOrderByID)

	api.Post("/orders/ots", orderCtrl.CreateOTSOrder)
	api.Patch("/orders/:id/status", orderCtrl.UpdateOrderStatus)

	api.Delete("/orders/:id", orderCtrl.DeleteOrder)
	api.Post("/orders/bulk-delete", orderCtrl.BulkDeleteOrders)
}
