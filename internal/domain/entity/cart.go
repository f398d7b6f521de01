package entity

// CartItem is one line of the cart. Price is the unit price; the line total is
// Price multiplied by Qty.
type CartItem struct {
	ID          string  `json:"id"`          // Product id.
	Name        string  `json:"name"`        // Product display name.
	Price       float64 `json:"price"`       // Unit price at the vendor.
	Qty         int     `json:"qty"`         // Number of units.
	Weight      string  `json:"weight"`      // Weight label, e.g. "500g" or "1kg".
	Vendor      string  `json:"vendor"`      // Vendor display name.
	VendorID    string  `json:"vendorId"`    // Vendor id.
	VendorImage string  `json:"vendorImage"` // Vendor image path.
	Image       string  `json:"image"`       // Product image path.
}

// SameLine reports whether two items share the cart uniqueness key
// (product id, vendor name, weight).
func (c CartItem) SameLine(other CartItem) bool {
	return c.ID == other.ID && c.Vendor == other.Vendor && c.Weight == other.Weight
}

// LineTotal returns Price multiplied by Qty.
func (c CartItem) LineTotal() float64 {
	return c.Price * float64(c.Qty)
}

// ActiveVendor identifies the single vendor whose items occupy the cart.
type ActiveVendor struct {
	ID    string `json:"vendorId"`
	Name  string `json:"vendorName"`
	Image string `json:"vendorImage,omitempty"`
}
