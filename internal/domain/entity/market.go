package entity

// Vendor is a local shop listed in the catalog.
type Vendor struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
	Distance  string  `json:"distance"` // Human readable distance label, e.g. "1.2 km".
	Image     string  `json:"image"`
}

// Product is a catalog product with its price at every vendor that stocks it.
type Product struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Prices   map[string]float64 `json:"prices"` // Vendor id to unit price.
	Image    string             `json:"image"`
}

// PriceAt returns the product price at the given vendor.
func (p Product) PriceAt(vendorID string) (float64, bool) {
	price, ok := p.Prices[vendorID]

	return price, ok
}

// MarketData is the catalog snapshot cached read-only in the store.
type MarketData struct {
	Vendors  []Vendor  `json:"vendors"`
	Products []Product `json:"products"`
}

// VendorByID looks up a vendor by id.
func (m *MarketData) VendorByID(id string) (Vendor, bool) {
	if m == nil {
		return Vendor{}, false
	}
	for _, v := range m.Vendors {
		if v.ID == id {
			return v, true
		}
	}

	return Vendor{}, false
}

// ProductByID looks up a product by id.
func (m *MarketData) ProductByID(id string) (Product, bool) {
	if m == nil {
		return Product{}, false
	}
	for _, p := range m.Products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}
