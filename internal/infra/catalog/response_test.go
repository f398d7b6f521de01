package catalog

import (
	"testing"

	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChatReply_Text(t *testing.T) {
	for _, kind := range []string{"text", "smart_reply", "confirmation"} {
		t.Run(kind, func(t *testing.T) {
			reply, err := DecodeChatReply([]byte(`{"type":"` + kind + `","content":"Hi there","animation_id":"wave"}`))
			require.NoError(t, err)
			assert.Equal(t, service.TextReply{Type: service.ReplyKind(kind), Content: "Hi there"}, reply)
		})
	}
}

func TestDecodeChatReply_VendorDiscovery(t *testing.T) {
	reply, err := DecodeChatReply([]byte(`{"type":"vendor_discovery","categoryName":"Fish","vendors":[{"id":"v2","name":"Sea Catch","rating":4.4}]}`))
	require.NoError(t, err)

	discovery, ok := reply.(service.VendorDiscoveryReply)
	require.True(t, ok)
	assert.Equal(t, "Fish", discovery.CategoryName)
	require.Len(t, discovery.Vendors, 1)
	assert.Equal(t, "Sea Catch", discovery.Vendors[0].Name)
}

func TestDecodeChatReply_PendingInventoryNormalizesShapes(t *testing.T) {
	body := `{
		"type":"pending_inventory",
		"orderItems":[
			{"productId":"p1","productName":"Tomato","vendorId":"v1","vendorName":"Fresh Farm","productPrice":40},
			{"product":{"id":"p4","name":"Carrot","image":"/c.png"},"vendor":{"id":"v1","name":"Fresh Farm","image":"/ff.png"},"price":60,"weight":"500g"}
		],
		"unmatchedItems":["dragon fruit",{"name":"kiwi"},{"productName":"lychee"}]
	}`

	reply, err := DecodeChatReply([]byte(body))
	require.NoError(t, err)

	pending, ok := reply.(service.PendingInventoryReply)
	require.True(t, ok)
	assert.Equal(t, []entity.OrderItem{
		{ProductID: "p1", ProductName: "Tomato", Weight: "1kg", VendorID: "v1", VendorName: "Fresh Farm", ProductPrice: 40, Qty: 1},
		{ProductID: "p4", ProductName: "Carrot", Weight: "500g", VendorID: "v1", VendorName: "Fresh Farm", VendorImage: "/ff.png", ProductPrice: 60, ProductImage: "/c.png", Qty: 1},
	}, pending.Items)
	assert.Equal(t, []string{"dragon fruit", "kiwi", "lychee"}, pending.Unmatched)
}

func TestDecodeChatReply_OrderSummaryItems(t *testing.T) {
	reply, err := DecodeChatReply([]byte(`{"type":"order_summary","orderItems":[{"productId":"p8","productName":"Sardine","vendorId":"v2","vendorName":"Sea Catch","productPrice":160}]}`))
	require.NoError(t, err)

	summary, ok := reply.(service.OrderSummaryReply)
	require.True(t, ok)
	assert.False(t, summary.CartSummary)
	assert.Nil(t, summary.Total)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 160.0, summary.Items[0].ProductPrice)
}

func TestDecodeChatReply_CartSummary(t *testing.T) {
	body := `{
		"type":"order_summary","cartSummary":true,"total":130,"content":"Ready to check out",
		"items":[{"id":"p1","name":"Tomato","price":40,"qty":2,"weight":"1kg","vendor":"Fresh Farm","vendorId":"v1"},
		         {"productId":"p2","productName":"Onion","productPrice":50,"vendorName":"Fresh Farm","vendorId":"v1"}],
		"unmatchedItems":["garlic"]
	}`

	reply, err := DecodeChatReply([]byte(body))
	require.NoError(t, err)

	summary, ok := reply.(service.OrderSummaryReply)
	require.True(t, ok)
	assert.True(t, summary.CartSummary)
	require.NotNil(t, summary.Total)
	assert.Equal(t, 130.0, *summary.Total)
	assert.Equal(t, "Ready to check out", summary.Content)
	assert.Equal(t, []string{"garlic"}, summary.Unmatched)
	require.Len(t, summary.Items, 2)
	assert.Equal(t, 2, summary.Items[0].Qty)
	assert.Equal(t, "Onion", summary.Items[1].ProductName)
	assert.Equal(t, "Fresh Farm", summary.Items[1].VendorName)
	assert.Equal(t, 1, summary.Items[1].Qty)
	assert.Equal(t, "1kg", summary.Items[1].Weight)
}

func TestDecodeChatReply_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>`},
		{"unknown type", `{"type":"carousel"}`},
		{"text without content", `{"type":"text"}`},
		{"discovery without vendors", `{"type":"vendor_discovery","categoryName":"Fish"}`},
		{"pending without items", `{"type":"pending_inventory","orderItems":[]}`},
		{"item without vendor", `{"type":"pending_inventory","orderItems":[{"productId":"p1","productName":"Tomato"}]}`},
		{"summary without items", `{"type":"order_summary"}`},
		{"unmatched number", `{"type":"order_summary","orderItems":[{"productId":"p1","vendorId":"v1"}],"unmatchedItems":[42]}`},
		{"unmatched nameless object", `{"type":"order_summary","orderItems":[{"productId":"p1","vendorId":"v1"}],"unmatchedItems":[{"qty":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeChatReply([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedReply)
		})
	}
}
