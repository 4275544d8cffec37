package database

import (
	"log"
	"os"

	eventModel "rbofficial_backend/internals/features/events/model"
	memberModel "rbofficial_backend/internals/features/members/model"
	orderModel "rbofficial_backend/internals/features/orders/model"
)

// AutoMigrate opsional (DB_AUTO_MIGRATE=true); produksi pakai migration SQL.
func AutoMigrate() {
	if os.Getenv("DB_AUTO_MIGRATE") != "true" {
		return
	}
	if err := DB.AutoMigrate(
		&memberModel.MemberModel{},
		&eventModel.EventModel{},
		&eventModel.EventLineupModel{},
		&orderModel.OrderModel{},
		&orderModel.OrderItemModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
