package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"rbofficial_backend/internals/features/orders/dto"
	"rbofficial_backend/internals/features/orders/model"
)

// Karakter yang dianggap nomor telepon: digit, +, -, spasi, kurung
var phoneShape = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// ClassifyKontak memutuskan satu field kontak bebas masuk ke whatsapp atau instagram.
func ClassifyKontak(kontak string) (whatsapp, instagram string) {
	k := strings.TrimSpace(kontak)
	if k == "" {
		return "-", "-"
	}
	if phoneShape.MatchString(k) {
		return k, "-"
	}
	return "-", k
}

// ComputeTotal menjumlahkan price × quantity seluruh item.
// Harga dipercaya dari client; tidak ada tabel harga server untuk cross-check.
func ComputeTotal(items []model.OrderItemModel) int {
	total := 0
	for _, it := range items {
		total += it.OrderItemPrice * it.OrderItemQuantity
	}
	return total
}

func buildItems(items []dto.OrderItemRequest) []model.OrderItemModel {
	out := make([]model.OrderItemModel, 0, len(items))
	for _, it := range items {
		out = append(out, model.OrderItemModel{
			OrderItemMemberID: NormalizeMemberRef(it.MemberID),
			OrderItemName:     it.ItemName,
			OrderItemPrice:    it.Price,
			OrderItemQuantity: it.Quantity,
		})
	}
	return out
}

// AssemblePreOrder merakit order PO dari storefront.
// Nomor order dan email sintetis diturunkan dari wall-clock milidetik —
// tidak ada kunci idempotensi, submit ganda menghasilkan dua order.
func AssemblePreOrder(req *dto.CreatePreOrderRequest, eventID uuid.UUID, now time.Time, mailDomain string) model.OrderModel {
	ms := now.UnixMilli()
	whatsapp, instagram := ClassifyKontak(req.Kontak)

	items := buildItems(req.Items)

	return model.OrderModel{
		OrderNumber:          fmt.Sprintf("RB%d", ms),
		OrderEventID:         &eventID,
		OrderCustomerName:    req.NamaLengkap,
		OrderWhatsapp:        whatsapp,
		OrderEmail:           fmt.Sprintf("order-%d@%s", ms, mailDomain),
		OrderInstagram:       instagram,
		OrderTotalHarga:      ComputeTotal(items),
		OrderPaymentProofURL: req.PaymentProofURL,
		OrderStatus:          model.OrderStatusPending,
		OrderIsOTS:           false,
		OrderCreatedBy:       model.OrderCreatedByCustomer,
		Items:                items,
	}
}

// AssembleOTSOrder merakit order on-the-spot dari admin console.
// Label metode bayar ("Cash"/"QR") menempati kolom payment_proof_url.
func AssembleOTSOrder(req *dto.CreateOTSOrderRequest, eventID uuid.UUID, now time.Time, mailDomain string) model.OrderModel {
	ms := now.UnixMilli()

	whatsapp := strings.TrimSpace(req.Whatsapp)
	if whatsapp == "" {
		whatsapp = "-"
	}
	instagram := strings.TrimSpace(req.Instagram)
	if instagram == "" {
		instagram = "-"
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = fmt.Sprintf("order-%d@%s", ms, mailDomain)
	}

	items := buildItems(req.Items)

	return model.OrderModel{
		OrderNumber:          fmt.Sprintf("RB-OTS%d", ms),
		OrderEventID:         &eventID,
		OrderCustomerName:    req.NamaLengkap,
		OrderWhatsapp:        whatsapp,
		OrderEmail:           email,
		OrderInstagram:       instagram,
		OrderTotalHarga:      ComputeTotal(items),
		OrderPaymentProofURL: req.PaymentMethod,
		OrderStatus:          model.OrderStatusCompleted,
		OrderIsOTS:           true,
		OrderCreatedBy:       model.OrderCreatedByAdmin,
		Items:                items,
	}
}
