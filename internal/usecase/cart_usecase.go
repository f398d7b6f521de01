package usecase

import "bezgo/internal/domain/entity"

// CartSummary is the computed view of the cart.
type CartSummary struct {
	Items     []entity.CartItem
	Total     float64
	ItemCount int
	Vendors   []string
	Vendor    *entity.ActiveVendor
}

// CartUsecase defines the cart mutations available to the presentation layer.
type CartUsecase interface {
	// Add adds an item, returning *errors.VendorConflictError when the cart
	// holds items from another vendor. Add, SwitchVendor and Remove return
	// errors.ErrOrderInProgress once a vendor is handling the order.
	Add(item entity.CartItem) error
	// SwitchVendor clears the cart and adds the item in one commit.
	SwitchVendor(item entity.CartItem) error
	Remove(id, vendor, weight string) error
	Clear()
	Summary() CartSummary
}
