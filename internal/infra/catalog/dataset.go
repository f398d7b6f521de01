package catalog

import (
	"maps"
	"slices"

	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/service"

	"github.com/paulmach/orb"
)

// Product categories of the bundled catalog.
const (
	CategoryVegetables = "Vegetables"
	CategoryFruits     = "Fruits"
	CategoryFish       = "Fish"
	CategoryMeat       = "Meat"
	CategoryDairy      = "Dairy"
)

var defaultVendors = []entity.Vendor{
	{ID: "v1", Name: "Fresh Farm", Specialty: "Farm vegetables", Rating: 4.6, Distance: "1.2 km", Image: "/images/vendors/fresh-farm.png"},
	{ID: "v2", Name: "Sea Catch", Specialty: "Fresh fish", Rating: 4.4, Distance: "2.1 km", Image: "/images/vendors/sea-catch.png"},
	{ID: "v3", Name: "Green Leaf", Specialty: "Fruits and greens", Rating: 4.7, Distance: "0.8 km", Image: "/images/vendors/green-leaf.png"},
	{ID: "v4", Name: "Prime Cuts", Specialty: "Chicken and mutton", Rating: 4.3, Distance: "3.4 km", Image: "/images/vendors/prime-cuts.png"},
	{ID: "v5", Name: "Milky Way Dairy", Specialty: "Milk and curd", Rating: 4.5, Distance: "1.7 km", Image: "/images/vendors/milky-way.png"},
}

var defaultProducts = []entity.Product{
	{ID: "p1", Name: "Tomato", Category: CategoryVegetables, Image: "/images/products/tomato.png", Prices: map[string]float64{"v1": 40, "v3": 44}},
	{ID: "p2", Name: "Onion", Category: CategoryVegetables, Image: "/images/products/onion.png", Prices: map[string]float64{"v1": 35, "v3": 38}},
	{ID: "p3", Name: "Potato", Category: CategoryVegetables, Image: "/images/products/potato.png", Prices: map[string]float64{"v1": 30}},
	{ID: "p4", Name: "Carrot", Category: CategoryVegetables, Image: "/images/products/carrot.png", Prices: map[string]float64{"v1": 60, "v3": 58}},
	{ID: "p5", Name: "Banana", Category: CategoryFruits, Image: "/images/products/banana.png", Prices: map[string]float64{"v3": 50}},
	{ID: "p6", Name: "Apple", Category: CategoryFruits, Image: "/images/products/apple.png", Prices: map[string]float64{"v3": 180}},
	{ID: "p7", Name: "Mango", Category: CategoryFruits, Image: "/images/products/mango.png", Prices: map[string]float64{"v3": 120, "v1": 130}},
	{ID: "p8", Name: "Sardine", Category: CategoryFish, Image: "/images/products/sardine.png", Prices: map[string]float64{"v2": 160}},
	{ID: "p9", Name: "Mackerel", Category: CategoryFish, Image: "/images/products/mackerel.png", Prices: map[string]float64{"v2": 240}},
	{ID: "p10", Name: "Prawns", Category: CategoryFish, Image: "/images/products/prawns.png", Prices: map[string]float64{"v2": 420}},
	{ID: "p11", Name: "Chicken", Category: CategoryMeat, Image: "/images/products/chicken.png", Prices: map[string]float64{"v4": 220}},
	{ID: "p12", Name: "Mutton", Category: CategoryMeat, Image: "/images/products/mutton.png", Prices: map[string]float64{"v4": 780}},
	{ID: "p13", Name: "Milk", Category: CategoryDairy, Image: "/images/products/milk.png", Prices: map[string]float64{"v5": 56}},
	{ID: "p14", Name: "Curd", Category: CategoryDairy, Image: "/images/products/curd.png", Prices: map[string]float64{"v5": 70}},
	{ID: "p15", Name: "Paneer", Category: CategoryDairy, Image: "/images/products/paneer.png", Prices: map[string]float64{"v5": 90}},
}

// Shop locations as (lng, lat).
var vendorLocations = map[string]orb.Point{
	"v1": {76.6581, 10.7951},
	"v2": {76.6402, 10.7735},
	"v3": {76.6601, 10.7899},
	"v4": {76.6271, 10.7974},
	"v5": {76.6693, 10.7810},
}

// DefaultMarketData returns a copy of the bundled catalog.
func DefaultMarketData() *entity.MarketData {
	vendors := slices.Clone(defaultVendors)
	products := make([]entity.Product, 0, len(defaultProducts))
	for _, p := range defaultProducts {
		p.Prices = maps.Clone(p.Prices)
		products = append(products, p)
	}

	return &entity.MarketData{Vendors: vendors, Products: products}
}

// VendorLocation returns the shop location of a bundled vendor.
func VendorLocation(vendorID string) (orb.Point, bool) {
	p, ok := vendorLocations[vendorID]

	return p, ok
}

type bundledDataset struct{}

// NewBundledDataset serves the bundled catalog through service.Dataset.
func NewBundledDataset() service.Dataset {
	return bundledDataset{}
}

func (bundledDataset) MarketData() *entity.MarketData { return DefaultMarketData() }

func (bundledDataset) VendorLocation(vendorID string) (orb.Point, bool) { return VendorLocation(vendorID) }
