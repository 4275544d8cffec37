package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbofficial_backend/internals/features/orders/model"
	"rbofficial_backend/internals/features/orders/service"
)

func TestNormalizeItemLabel(t *testing.T) {
	cases := map[string]string{
		"Cheki Sinta":                   "Sinta",
		"Cheki Sinta (Pre-Order)":       "Sinta",
		"Cheki All Member (Pre-Order)":  service.GroupAggregateLabel,
		"Cheki Group":                   service.GroupAggregateLabel,
		"cheki all member":              service.GroupAggregateLabel, // prefix beda kapital tidak dibuang, tapi tetap coalesce
		"Photobook":                     "Photobook",
	}
	for in, want := range cases {
		assert.Equal(t, want, service.NormalizeItemLabel(in), "input=%q", in)
	}
}

func TestBuildSalesReport(t *testing.T) {
	orders := []model.OrderModel{
		{
			OrderNumber: "RB1", OrderIsOTS: false, OrderStatus: model.OrderStatusCompleted,
			Items: []model.OrderItemModel{
				{OrderItemName: "Cheki Sinta", OrderItemPrice: 25000, OrderItemQuantity: 2},
				{OrderItemName: "Cheki Group", OrderItemPrice: 30000, OrderItemQuantity: 1},
			},
		},
		{
			OrderNumber: "RB2", OrderIsOTS: false, OrderStatus: model.OrderStatusPending,
			Items: []model.OrderItemModel{
				// pending: tampil di detail tapi tidak masuk agregat
				{OrderItemName: "Cheki Sinta", OrderItemPrice: 25000, OrderItemQuantity: 5},
			},
		},
		{
			OrderNumber: "RB-OTS3", OrderIsOTS: true, OrderStatus: model.OrderStatusChecked,
			Items: []model.OrderItemModel{
				{OrderItemName: "Cheki All Member (Pre-Order)", OrderItemPrice: 30000, OrderItemQuantity: 2},
			},
		},
	}

	rep := service.BuildSalesReport(orders)

	// partisi detail: PO dulu, OTS terpisah
	require.Len(t, rep.PreOrders, 2)
	require.Len(t, rep.OnTheSpot, 1)
	assert.Equal(t, "RB2", rep.PreOrders[1].OrderNumber)

	// agregat: pending tidak menyumbang; group+all member melebur satu bucket
	require.Len(t, rep.Summary, 2)
	assert.Equal(t, service.GroupAggregateLabel, rep.Summary[0].Label) // "All Member (Group)" < "Sinta"
	assert.Equal(t, 3, rep.Summary[0].Quantity)
	assert.Equal(t, 90000, rep.Summary[0].Revenue)

	assert.Equal(t, "Sinta", rep.Summary[1].Label)
	assert.Equal(t, 2, rep.Summary[1].Quantity)
	assert.Equal(t, 50000, rep.Summary[1].Revenue)

	assert.Equal(t, 5, rep.TotalQuantity)
	assert.Equal(t, 140000, rep.TotalRevenue)
}

func TestBuildSalesReport_Kosong(t *testing.T) {
	rep := service.BuildSalesReport(nil)
	assert.Empty(t, rep.PreOrders)
	assert.Empty(t, rep.OnTheSpot)
	assert.Empty(t, rep.Summary)
	assert.Zero(t, rep.TotalRevenue)
}

func TestJoinItems(t *testing.T) {
	items := []model.OrderItemModel{
		{OrderItemName: "Cheki Sinta", OrderItemQuantity: 2},
		{OrderItemName: "Cheki Group", OrderItemQuantity: 1},
	}
	assert.Equal(t, "Cheki Sinta (2x), Cheki Group (1x)", service.JoinItems(items))
}
