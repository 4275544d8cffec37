package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

/* ===================== DTO: item keranjang ===================== */

type OrderItemRequest struct {
	// UUID member, literal "group", atau referensi legacy apa pun (dinormalisasi sebelum simpan)
	MemberID string `json:"member_id"`

	ItemName string `json:"item_name" validate:"required"`
	Price    int    `json:"price" validate:"gte=0"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

/* ===================== DTO: create PO (storefront) ===================== */

type CreatePreOrderRequest struct {
	EventID     string `json:"event_id" validate:"required,uuid"`
	NamaLengkap string `json:"nama_lengkap" validate:"required"`

	// Satu field bebas; diklasifikasikan jadi whatsapp ATAU instagram
	Kontak string `json:"kontak" validate:"required"`

	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentProofURL string             `json:"payment_proof_url" validate:"required"`
}

func (r *CreatePreOrderRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

/* ===================== DTO: create OTS (admin) ===================== */

type CreateOTSOrderRequest struct {
	EventID     string `json:"event_id" validate:"required,uuid"`
	NamaLengkap string `json:"nama_lengkap" validate:"required"`

	// Kontak eksplisit; kosong → "-" / email disintesis
	Whatsapp  string `json:"whatsapp"`
	Email     string `json:"email" validate:"omitempty,email"`
	Instagram string `json:"instagram"`

	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`

	// Disimpan di kolom payment_proof_url menggantikan URL bukti transfer
	PaymentMethod string `json:"payment_method" validate:"required,oneof=Cash QR"`
}

func (r *CreateOTSOrderRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

/* ===================== DTO: update status ===================== */

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending checked completed"`
}

func (r *UpdateOrderStatusRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

/* ===================== DTO: bulk delete ===================== */

const (
	BulkDeleteAll    = "all"
	BulkDeleteEvent  = "event"
	BulkDeleteWeeks  = "weeks"
	BulkDeleteMonths = "months"
)

type BulkDeleteRequest struct {
	DeleteType string  `json:"delete_type" validate:"required,oneof=all event weeks months"`
	EventID    *string `json:"event_id" validate:"omitempty,uuid"`
	Weeks      *int    `json:"weeks" validate:"omitempty,gt=0"`
	Months     *int    `json:"months" validate:"omitempty,gt=0"`
}

// Validate memastikan parameter scope hadir sesuai delete_type
func (r *BulkDeleteRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(r); err != nil {
		return err
	}
	switch r.DeleteType {
	case BulkDeleteEvent:
		if r.EventID == nil || *r.EventID == "" {
			return errors.New("event_id wajib diisi untuk delete_type = event")
		}
	case BulkDeleteWeeks:
		if r.Weeks == nil {
			return errors.New("weeks wajib diisi untuk delete_type = weeks")
		}
	case BulkDeleteMonths:
		if r.Months == nil {
			return errors.New("months wajib diisi untuk delete_type = months")
		}
	}
	return nil
}
