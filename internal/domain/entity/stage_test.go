package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStage
		to   OrderStage
		want bool
	}{
		{name: "idle starts availability check", from: StageIdle, to: StageCheckingAvailability, want: true},
		{name: "availability rejection resets", from: StageCheckingAvailability, to: StageIdle, want: true},
		{name: "summary after availability", from: StageCheckingAvailability, to: StageOrderSummary, want: true},
		{name: "summary can be refreshed", from: StageOrderSummary, to: StageCheckingAvailability, want: true},
		{name: "place order", from: StageOrderSummary, to: StageContactingVendor, want: true},
		{name: "vendor rejection resets", from: StageContactingVendor, to: StageIdle, want: true},
		{name: "vendor accepted", from: StageContactingVendor, to: StageAssigningPartner, want: true},
		{name: "dispatched", from: StageAssigningPartner, to: StageOutForDelivery, want: true},
		{name: "delivered", from: StageOutForDelivery, to: StageDelivered, want: true},
		{name: "cannot skip to delivery from idle", from: StageIdle, to: StageDelivered, want: false},
		{name: "cannot go back to summary", from: StageAssigningPartner, to: StageOrderSummary, want: false},
		{name: "unknown stage", from: OrderStage("partner_assigned"), to: StageIdle, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestOrderStage_InFlight(t *testing.T) {
	assert.False(t, StageIdle.InFlight())
	assert.False(t, StageOrderSummary.InFlight())
	assert.True(t, StageContactingVendor.InFlight())
	assert.True(t, StageAssigningPartner.InFlight())
	assert.True(t, StageOutForDelivery.InFlight())
	assert.False(t, StageDelivered.InFlight())
}

func TestCartItem_SameLine(t *testing.T) {
	base := CartItem{ID: "chicken", Vendor: "Fresh Farm", Weight: "1kg"}

	assert.True(t, base.SameLine(CartItem{ID: "chicken", Vendor: "Fresh Farm", Weight: "1kg", Qty: 3}))
	assert.False(t, base.SameLine(CartItem{ID: "chicken", Vendor: "Fresh Farm", Weight: "500g"}))
	assert.False(t, base.SameLine(CartItem{ID: "mutton", Vendor: "Fresh Farm", Weight: "1kg"}))
}

func TestOrderItem_CartItem(t *testing.T) {
	item := OrderItem{
		ProductID:    "prawns",
		ProductName:  "Prawns",
		Weight:       "500g",
		VendorID:     "v2",
		VendorName:   "Sea Catch",
		ProductPrice: 420,
	}

	got := item.CartItem()
	assert.Equal(t, 1, got.Qty)
	assert.Equal(t, "prawns", got.ID)
	assert.Equal(t, "Sea Catch", got.Vendor)
	assert.Equal(t, "v2", got.VendorID)
	assert.InDelta(t, 420.0, got.LineTotal(), 0.001)

	item.Qty = 3
	assert.Equal(t, 3, item.CartItem().Qty)
}

func TestUPIAppName(t *testing.T) {
	assert.Equal(t, "Google Pay", UPIAppName("gpay"))
	assert.Equal(t, "UPI App", UPIAppName("unknown"))
}

func TestMarketData_Lookup(t *testing.T) {
	data := &MarketData{
		Vendors:  []Vendor{{ID: "v1", Name: "Fresh Farm"}},
		Products: []Product{{ID: "chicken", Prices: map[string]float64{"v1": 240}}},
	}

	v, ok := data.VendorByID("v1")
	assert.True(t, ok)
	assert.Equal(t, "Fresh Farm", v.Name)

	p, ok := data.ProductByID("chicken")
	assert.True(t, ok)
	price, ok := p.PriceAt("v1")
	assert.True(t, ok)
	assert.InDelta(t, 240.0, price, 0.001)

	var empty *MarketData
	_, ok = empty.VendorByID("v1")
	assert.False(t, ok)
}
