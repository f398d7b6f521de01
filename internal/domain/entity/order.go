package entity

import "time"

// OrderStatus is the status of a placed order in the order history.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderHistoryItem is created once per confirmed order.
type OrderHistoryItem struct {
	ID        string      `json:"id"`        // Generated order id, e.g. "BZG123456".
	Cart      []CartItem  `json:"cart"`      // Snapshot of the cart at placement time.
	Total     float64     `json:"total"`     // Order total.
	Vendors   []string    `json:"vendors"`   // Distinct vendor names in the snapshot.
	Timestamp time.Time   `json:"timestamp"` // Placement time.
	Status    OrderStatus `json:"status"`
}

// OrderItem is a priced line proposed by the chat backend.
type OrderItem struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Weight       string  `json:"weight"`
	VendorID     string  `json:"vendorId"`
	VendorName   string  `json:"vendorName"`
	VendorImage  string  `json:"vendorImage,omitempty"`
	ProductPrice float64 `json:"productPrice"`
	ProductImage string  `json:"productImage,omitempty"`
	Qty          int     `json:"qty,omitempty"`
}

// CartItem converts the proposed line into a cart line of at least one unit.
func (o OrderItem) CartItem() CartItem {
	qty := o.Qty
	if qty <= 0 {
		qty = 1
	}

	return CartItem{
		ID:          o.ProductID,
		Name:        o.ProductName,
		Price:       o.ProductPrice,
		Qty:         qty,
		Weight:      o.Weight,
		Vendor:      o.VendorName,
		VendorID:    o.VendorID,
		VendorImage: o.VendorImage,
		Image:       o.ProductImage,
	}
}

// PaymentMethod is the payment option picked on the order summary card.
type PaymentMethod string

const (
	PaymentMethodNone PaymentMethod = ""
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCOD  PaymentMethod = "cod"
)

// Valid reports whether the method is one of the supported options.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodUPI || m == PaymentMethodCOD
}
