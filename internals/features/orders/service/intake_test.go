package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbofficial_backend/internals/features/orders/dto"
	"rbofficial_backend/internals/features/orders/model"
	"rbofficial_backend/internals/features/orders/service"
)

const mailDomain = "rbofficial.store"

func sampleCart() []dto.OrderItemRequest {
	return []dto.OrderItemRequest{
		{MemberID: "aaaaaaaa-1111-2222-3333-444444444444", ItemName: "Cheki Sinta", Price: 25000, Quantity: 2},
		{MemberID: "group", ItemName: "Cheki Group", Price: 30000, Quantity: 1},
	}
}

func TestClassifyKontak(t *testing.T) {
	cases := []struct {
		kontak    string
		whatsapp  string
		instagram string
	}{
		{"081234567890", "081234567890", "-"},
		{"+62 812-3456-7890", "+62 812-3456-7890", "-"},
		{"(021) 555 0199", "(021) 555 0199", "-"},
		{"@sinta.fans", "-", "@sinta.fans"},
		{"sinta_fans", "-", "sinta_fans"},
		{"", "-", "-"},
	}
	for _, tc := range cases {
		wa, ig := service.ClassifyKontak(tc.kontak)
		assert.Equal(t, tc.whatsapp, wa, "kontak=%q", tc.kontak)
		assert.Equal(t, tc.instagram, ig, "kontak=%q", tc.kontak)
	}
}

func TestAssemblePreOrder(t *testing.T) {
	eventID := uuid.New()
	now := time.Now()
	req := &dto.CreatePreOrderRequest{
		EventID:         eventID.String(),
		NamaLengkap:     "Budi",
		Kontak:          "081234567890",
		Items:           sampleCart(),
		PaymentProofURL: "https://cdn.example.com/bukti.jpg",
	}

	order := service.AssemblePreOrder(req, eventID, now, mailDomain)

	assert.Equal(t, fmt.Sprintf("RB%d", now.UnixMilli()), order.OrderNumber)
	assert.Equal(t, model.OrderStatusPending, order.OrderStatus)
	assert.False(t, order.OrderIsOTS)
	assert.Equal(t, model.OrderCreatedByCustomer, order.OrderCreatedBy)

	// total = 25000*2 + 30000*1
	assert.Equal(t, 80000, order.OrderTotalHarga)

	require.Len(t, order.Items, 2)
	require.NotNil(t, order.Items[0].OrderItemMemberID)
	assert.Equal(t, "aaaaaaaa-1111-2222-3333-444444444444", order.Items[0].OrderItemMemberID.String())
	assert.Nil(t, order.Items[1].OrderItemMemberID)

	assert.Equal(t, "081234567890", order.OrderWhatsapp)
	assert.Equal(t, "-", order.OrderInstagram)
	assert.Equal(t, fmt.Sprintf("order-%d@%s", now.UnixMilli(), mailDomain), order.OrderEmail)
	assert.Equal(t, "https://cdn.example.com/bukti.jpg", order.OrderPaymentProofURL)
}

func TestAssemblePreOrder_KontakInstagram(t *testing.T) {
	eventID := uuid.New()
	req := &dto.CreatePreOrderRequest{
		EventID:         eventID.String(),
		NamaLengkap:     "Sari",
		Kontak:          "@sari.igofficial",
		Items:           sampleCart(),
		PaymentProofURL: "https://cdn.example.com/bukti.jpg",
	}

	order := service.AssemblePreOrder(req, eventID, time.Now(), mailDomain)

	assert.Equal(t, "-", order.OrderWhatsapp)
	assert.Equal(t, "@sari.igofficial", order.OrderInstagram)
}

func TestAssembleOTSOrder(t *testing.T) {
	eventID := uuid.New()
	now := time.Now()
	req := &dto.CreateOTSOrderRequest{
		EventID:       eventID.String(),
		NamaLengkap:   "Budi",
		Items:         sampleCart(),
		PaymentMethod: "Cash",
	}

	order := service.AssembleOTSOrder(req, eventID, now, mailDomain)

	assert.Equal(t, fmt.Sprintf("RB-OTS%d", now.UnixMilli()), order.OrderNumber)
	assert.Equal(t, model.OrderStatusCompleted, order.OrderStatus)
	assert.True(t, order.OrderIsOTS)
	assert.Equal(t, model.OrderCreatedByAdmin, order.OrderCreatedBy)
	assert.Equal(t, "Cash", order.OrderPaymentProofURL)

	// kontak kosong → default
	assert.Equal(t, "-", order.OrderWhatsapp)
	assert.Equal(t, "-", order.OrderInstagram)
	assert.Equal(t, fmt.Sprintf("order-%d@%s", now.UnixMilli(), mailDomain), order.OrderEmail)

	assert.Equal(t, 80000, order.OrderTotalHarga)
}

func TestAssembleOTSOrder_ExplicitContacts(t *testing.T) {
	eventID := uuid.New()
	req := &dto.CreateOTSOrderRequest{
		EventID:       eventID.String(),
		NamaLengkap:   "Budi",
		Whatsapp:      "0812000111",
		Email:         "budi@example.com",
		Instagram:     "@budi",
		Items:         sampleCart(),
		PaymentMethod: "QR",
	}

	order := service.AssembleOTSOrder(req, eventID, time.Now(), mailDomain)

	assert.Equal(t, "0812000111", order.OrderWhatsapp)
	assert.Equal(t, "budi@example.com", order.OrderEmail)
	assert.Equal(t, "@budi", order.OrderInstagram)
	assert.Equal(t, "QR", order.OrderPaymentProofURL)
}

func TestComputeTotal(t *testing.T) {
	items := []model.OrderItemModel{
		{OrderItemPrice: 25000, OrderItemQuantity: 2},
		{OrderItemPrice: 30000, OrderItemQuantity: 1},
	}
	assert.Equal(t, 80000, service.ComputeTotal(items))
	assert.Equal(t, 0, service.ComputeTotal(nil))
}
