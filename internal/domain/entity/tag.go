package entity

// TagKind distinguishes vendor tags from product tags.
type TagKind string

const (
	TagVendor  TagKind = "vendor"
	TagProduct TagKind = "product"
)

// Tag is an item the user dragged into the staging list but has not sent yet.
type Tag struct {
	Kind        TagKind `json:"kind"`
	VendorID    string  `json:"vendorId"`
	VendorName  string  `json:"vendorName"`
	VendorImage string  `json:"vendorImage,omitempty"`
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Weight      string  `json:"weight,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// CartItem converts a product tag into a single-unit cart line.
func (t Tag) CartItem() CartItem {
	return CartItem{
		ID:          t.ProductID,
		Name:        t.ProductName,
		Price:       t.Price,
		Qty:         1,
		Weight:      t.Weight,
		Vendor:      t.VendorName,
		VendorID:    t.VendorID,
		VendorImage: t.VendorImage,
		Image:       t.Image,
	}
}
