package store

import (
	"io"
	"log/slog"

	"bezgo/internal/domain/entity"
)

var (
	vendorFreshFarm = entity.ActiveVendor{ID: "v1", Name: "Fresh Farm", Image: "/img/fresh-farm.png"}
	vendorSeaCatch  = entity.ActiveVendor{ID: "v2", Name: "Sea Catch", Image: "/img/sea-catch.png"}
	vendorGreenLeaf = entity.ActiveVendor{ID: "v3", Name: "Green Leaf", Image: "/img/green-leaf.png"}

	testVendors  = []entity.ActiveVendor{vendorFreshFarm, vendorSeaCatch, vendorGreenLeaf}
	testProducts = []string{"chicken", "mutton", "prawns"}
	testWeights  = []string{"500g", "1kg"}
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func item(productID string, vendor entity.ActiveVendor, weight string, qty int, price float64) entity.CartItem {
	return entity.CartItem{
		ID:          productID,
		Name:        productID,
		Price:       price,
		Qty:         qty,
		Weight:      weight,
		Vendor:      vendor.Name,
		VendorID:    vendor.ID,
		VendorImage: vendor.Image,
	}
}

func message(id string, msgType entity.MessageType) entity.ChatMessage {
	return entity.ChatMessage{ID: id, Text: id, Sender: entity.SenderBot, Type: msgType}
}

func reduceAll(state State, actions ...Action) State {
	for _, a := range actions {
		state = Reduce(state, a)
	}

	return state
}
