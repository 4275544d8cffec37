package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	OrderStatusPending   = "pending"
	OrderStatusChecked   = "checked"
	OrderStatusCompleted = "completed"
)

const (
	OrderCreatedByCustomer = "customer"
	OrderCreatedByAdmin    = "admin"
)

// IsValidOrderStatus: hanya tiga nilai ini yang boleh dipersist
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusChecked, OrderStatusCompleted:
		return true
	}
	return false
}

/* ===================== Model ===================== */

type OrderModel struct {
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;primaryKey" json:"order_id"`

	// Nomor order yang tampil ke customer (RB<ms> / RB-OTS<ms>)
	OrderNumber string `gorm:"column:order_number;type:varchar(50);not null;index" json:"order_number"`

	OrderEventID *uuid.UUID `gorm:"column:order_event_id;type:uuid;index" json:"order_event_id,omitempty"`

	OrderCustomerName string `gorm:"column:order_customer_name;type:varchar(100);not null" json:"order_customer_name"`
	OrderWhatsapp     string `gorm:"column:order_whatsapp;type:varchar(50);not null;default:'-'" json:"order_whatsapp"`
	OrderEmail        string `gorm:"column:order_email;type:varchar(100);not null" json:"order_email"`
	OrderInstagram    string `gorm:"column:order_instagram;type:varchar(100);not null;default:'-'" json:"order_instagram"`

	OrderTotalHarga int `gorm:"column:order_total_harga;not null;check:order_total_harga >= 0" json:"order_total_harga"`

	// PO: URL bukti transfer. OTS: label metode bayar ("Cash"/"QR").
	OrderPaymentProofURL string `gorm:"column:order_payment_proof_url;type:text;not null" json:"order_payment_proof_url"`

	OrderStatus    string `gorm:"column:order_status;type:varchar(20);not null;default:'pending'" json:"order_status"`
	OrderIsOTS     bool   `gorm:"column:order_is_ots;not null;default:false" json:"order_is_ots"`
	OrderCreatedBy string `gorm:"column:order_created_by;type:varchar(20);not null" json:"order_created_by"`

	Items []OrderItemModel `gorm:"foreignKey:OrderItemOrderID;references:OrderID" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderModel) TableName() string { return "orders" }

func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID == uuid.Nil {
		o.OrderID = uuid.New()
	}
	return nil
}

type OrderItemModel struct {
	OrderItemID      uuid.UUID `gorm:"column:order_item_id;type:uuid;primaryKey" json:"order_item_id"`
	OrderItemOrderID uuid.UUID `gorm:"column:order_item_order_id;type:uuid;not null;index" json:"order_item_order_id"`

	// NULL berarti group / referensi tak dikenal (lihat normalizer)
	OrderItemMemberID *uuid.UUID `gorm:"column:order_item_member_id;type:uuid" json:"order_item_member_id,omitempty"`

	OrderItemName     string `gorm:"column:order_item_name;type:varchar(150);not null" json:"order_item_name"`
	OrderItemPrice    int    `gorm:"column:order_item_price;not null;check:order_item_price >= 0" json:"order_item_price"`
	OrderItemQuantity int    `gorm:"column:order_item_quantity;not null;check:order_item_quantity > 0" json:"order_item_quantity"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OrderItemModel) TableName() string { return "order_items" }

func (i *OrderItemModel) BeforeCreate(tx *gorm.DB) error {
	if i.OrderItemID == uuid.Nil {
		i.OrderItemID = uuid.New()
	}
	return nil
}
