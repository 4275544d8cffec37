package service

import (
	"fmt"
	"sort"
	"strings"

	"rbofficial_backend/internals/features/orders/model"
)

// Semua varian "all member"/"group" digabung ke satu bucket laporan.
const GroupAggregateLabel = "All Member (Group)"

// NormalizeItemLabel menyamakan nama item untuk agregasi:
// prefix "Cheki " dan suffix " (Pre-Order)" dibuang, lalu varian
// group/all-member dilebur ke GroupAggregateLabel.
func NormalizeItemLabel(name string) string {
	label := strings.TrimSpace(name)
	label = strings.TrimPrefix(label, "Cheki ")
	label = strings.TrimSuffix(label, " (Pre-Order)")
	label = strings.TrimSpace(label)

	lower := strings.ToLower(label)
	if strings.Contains(lower, "all member") || strings.Contains(lower, "group") {
		return GroupAggregateLabel
	}
	return label
}

type SalesSummaryRow struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
}

type SalesReport struct {
	// Detail: semua order lolos filter, PO dulu baru OTS
	PreOrders []model.OrderModel `json:"pre_orders"`
	OnTheSpot []model.OrderModel `json:"on_the_spot"`

	// Agregat: hanya dari order checked/completed
	Summary       []SalesSummaryRow `json:"summary"`
	TotalQuantity int               `json:"total_quantity"`
	TotalRevenue  int               `json:"total_revenue"`
}

// BuildSalesReport mempartisi order jadi PO/OTS dan menghitung agregat
// qty+pendapatan per label. Order pending tetap tampil di detail tapi
// tidak pernah menyumbang angka agregat.
func BuildSalesReport(orders []model.OrderModel) SalesReport {
	rep := SalesReport{
		PreOrders: []model.OrderModel{},
		OnTheSpot: []model.OrderModel{},
	}

	type bucket struct {
		qty     int
		revenue int
	}
	buckets := make(map[string]*bucket)

	for _, o := range orders {
		if o.OrderIsOTS {
			rep.OnTheSpot = append(rep.OnTheSpot, o)
		} else {
			rep.PreOrders = append(rep.PreOrders, o)
		}

		if o.OrderStatus != model.OrderStatusChecked && o.OrderStatus != model.OrderStatusCompleted {
			continue
		}
		for _, it := range o.Items {
			label := NormalizeItemLabel(it.OrderItemName)
			b := buckets[label]
			if b == nil {
				b = &bucket{}
				buckets[label] = b
			}
			b.qty += it.OrderItemQuantity
			b.revenue += it.OrderItemPrice * it.OrderItemQuantity
		}
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		b := buckets[label]
		rep.Summary = append(rep.Summary, SalesSummaryRow{
			Label:    label,
			Quantity: b.qty,
			Revenue:  b.revenue,
		})
		rep.TotalQuantity += b.qty
		rep.TotalRevenue += b.revenue
	}

	return rep
}

// JoinItems merender item order jadi satu kolom "Nama (2x), Nama2 (1x)"
func JoinItems(items []model.OrderItemModel) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%dx)", it.OrderItemName, it.OrderItemQuantity))
	}
	return strings.Join(parts, ", ")
}
