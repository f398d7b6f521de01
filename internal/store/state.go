// Package store holds the single process-wide application state. Every
// mutation is an Action applied by the pure Reduce function; the Store
// serializes commits and notifies subscribers in commit order.
package store

import "bezgo/internal/domain/entity"

const (
	defaultBrandColor    = "teal"
	defaultLocation      = "Pkd, bezgo HQ near Shadhi Mahal"
	defaultLocationLabel = "Pkd"
)

// State is an immutable snapshot of the application. Slices are shared
// between snapshots and must not be modified in place.
type State struct {
	User            *entity.UserData
	IsAuthenticated bool
	Cart            []entity.CartItem
	Messages        []entity.ChatMessage
	MarketData      *entity.MarketData
	OrderHistory    []entity.OrderHistoryItem
	IsLoading       bool
	IsDarkMode      bool
	BrandColor      string

	CurrentLocation      string
	CurrentLocationLabel string

	// Single active vendor of the cart. Empty strings mean no active vendor.
	ActiveVendorID    string
	ActiveVendorName  string
	ActiveVendorImage string

	ActiveOrderStage entity.OrderStage

	// LifecycleID identifies the order lifecycle that owns ActiveOrderStage.
	// It is empty while the stage is idle.
	LifecycleID string
}

// InitialState returns the state of a fresh install.
func InitialState() State {
	return State{
		BrandColor:           defaultBrandColor,
		CurrentLocation:      defaultLocation,
		CurrentLocationLabel: defaultLocationLabel,
		ActiveOrderStage:     entity.StageIdle,
	}
}

// ActiveVendor returns the active vendor, or nil when there is none.
func (s State) ActiveVendor() *entity.ActiveVendor {
	if s.ActiveVendorID == "" {
		return nil
	}

	return &entity.ActiveVendor{
		ID:    s.ActiveVendorID,
		Name:  s.ActiveVendorName,
		Image: s.ActiveVendorImage,
	}
}

// CartVendorID returns the vendor id the cart is bound to. The active vendor
// wins; a cart restored without active vendor fields falls back to its first line.
func (s State) CartVendorID() string {
	if s.ActiveVendorID != "" {
		return s.ActiveVendorID
	}
	if len(s.Cart) > 0 {
		return s.Cart[0].VendorID
	}

	return ""
}

// StatePatch is a partial snapshot for RestoreState. Nil fields are left untouched.
type StatePatch struct {
	User                 *entity.UserData
	IsAuthenticated      *bool
	Cart                 *[]entity.CartItem
	OrderHistory         *[]entity.OrderHistoryItem
	IsDarkMode           *bool
	BrandColor           *string
	CurrentLocation      *string
	CurrentLocationLabel *string
	ActiveVendor         *entity.ActiveVendor
	ActiveOrderStage     *entity.OrderStage
}
