package store

import (
	"slices"

	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
)

// Reduce applies one action to a snapshot and returns the next snapshot.
// It never mutates its input; rejected actions return the input unchanged.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetUser:
		user := a.User
		state.User = &user
		state.IsAuthenticated = true
	case Logout:
		return InitialState()
	case SetMarketData:
		state.MarketData = a.Data
	case AddToCart:
		return addToCart(state, a.Item)
	case RemoveFromCart:
		return removeFromCart(state, a)
	case ClearCart:
		state.Cart = nil
		state = clearActiveVendor(state)
		state.ActiveOrderStage = entity.StageIdle
		state.LifecycleID = ""
	case SetCart:
		return setCart(state, a.Items)
	case AddMessage:
		state.Messages = appendCopy(state.Messages, a.Message)
	case AddMessages:
		if len(a.Messages) > 0 {
			state.Messages = appendCopy(state.Messages, a.Messages...)
		}
	case ClearMessages:
		state.Messages = nil
	case ClearOrderMessages:
		state.Messages = purgeOrderMessages(state.Messages)
	case SetLoading:
		state.IsLoading = a.Loading
	case AddOrder:
		history := make([]entity.OrderHistoryItem, 0, len(state.OrderHistory)+1)
		history = append(history, a.Order)
		state.OrderHistory = append(history, state.OrderHistory...)
	case CancelOrder:
		state.OrderHistory = setOrderStatus(state.OrderHistory, a.OrderID, entity.OrderStatusCancelled)
	case CompleteOrder:
		state.OrderHistory = setOrderStatus(state.OrderHistory, a.OrderID, entity.OrderStatusDelivered)
	case SetLocation:
		state.CurrentLocation = a.Location
		state.CurrentLocationLabel = a.Label
	case SetTheme:
		if a.IsDark != nil {
			state.IsDarkMode = *a.IsDark
		}
		if a.BrandColor != nil {
			state.BrandColor = *a.BrandColor
		}
	case RestoreState:
		return restoreState(state, a.Patch)
	case SetOrderStage:
		state.ActiveOrderStage = a.Stage
		if a.LifecycleID != "" {
			state.LifecycleID = a.LifecycleID
		}
		if a.Stage == entity.StageIdle {
			state.LifecycleID = ""
		}
	case SetActiveVendor:
		return setActiveVendor(state, a.Vendor)
	}

	return state
}

// CheckAddToCart reports whether item can be added without breaking the
// single active vendor rule.
func CheckAddToCart(state State, item entity.CartItem) error {
	if item.VendorID == "" || item.Qty <= 0 {
		return domainerrors.ErrInvalidCart.WithDetails("item must name a vendor and a positive quantity")
	}

	active := state.CartVendorID()
	if active == "" || active == item.VendorID {
		return nil
	}

	name := state.ActiveVendorName
	if name == "" && len(state.Cart) > 0 {
		name = state.Cart[0].Vendor
	}

	return &domainerrors.VendorConflictError{
		ActiveVendorID:    active,
		ActiveVendorName:  name,
		RequestedVendorID: item.VendorID,
		RequestedVendor:   item.Vendor,
	}
}

func addToCart(state State, item entity.CartItem) State {
	if CheckAddToCart(state, item) != nil {
		return state
	}

	idx := slices.IndexFunc(state.Cart, item.SameLine)
	if idx >= 0 {
		cart := slices.Clone(state.Cart)
		cart[idx].Qty += item.Qty
		state.Cart = cart
	} else {
		state.Cart = appendCopy(state.Cart, item)
	}

	state.ActiveVendorID = item.VendorID
	state.ActiveVendorName = item.Vendor
	if item.VendorImage != "" {
		state.ActiveVendorImage = item.VendorImage
	}

	return state
}

func removeFromCart(state State, a RemoveFromCart) State {
	var cart []entity.CartItem
	for _, item := range state.Cart {
		if item.ID == a.ID && item.Vendor == a.Vendor && (a.Weight == "" || item.Weight == a.Weight) {
			continue
		}
		cart = append(cart, item)
	}

	state.Cart = cart
	if len(cart) == 0 {
		state = clearActiveVendor(state)
	}

	return state
}

func setCart(state State, items []entity.CartItem) State {
	if len(items) == 0 {
		state.Cart = nil

		return clearActiveVendor(state)
	}

	vendorID := items[0].VendorID
	for _, item := range items {
		if item.VendorID == "" || item.VendorID != vendorID {
			return state
		}
	}

	state.Cart = slices.Clone(items)

	return stampVendorFromCart(state)
}

func setActiveVendor(state State, vendor *entity.ActiveVendor) State {
	if vendor == nil {
		if len(state.Cart) > 0 {
			return state
		}

		return clearActiveVendor(state)
	}
	if len(state.Cart) > 0 && state.Cart[0].VendorID != vendor.ID {
		return state
	}

	state.ActiveVendorID = vendor.ID
	state.ActiveVendorName = vendor.Name
	state.ActiveVendorImage = vendor.Image

	return state
}

func restoreState(state State, patch StatePatch) State {
	next := state
	if patch.User != nil {
		user := *patch.User
		next.User = &user
	}
	if patch.IsAuthenticated != nil {
		next.IsAuthenticated = *patch.IsAuthenticated
	}
	if patch.OrderHistory != nil {
		next.OrderHistory = nilIfEmpty(slices.Clone(*patch.OrderHistory))
	}
	if patch.IsDarkMode != nil {
		next.IsDarkMode = *patch.IsDarkMode
	}
	if patch.BrandColor != nil {
		next.BrandColor = *patch.BrandColor
	}
	if patch.CurrentLocation != nil {
		next.CurrentLocation = *patch.CurrentLocation
	}
	if patch.CurrentLocationLabel != nil {
		next.CurrentLocationLabel = *patch.CurrentLocationLabel
	}
	if patch.ActiveOrderStage != nil {
		next.ActiveOrderStage = *patch.ActiveOrderStage
		if next.ActiveOrderStage == entity.StageIdle {
			next.LifecycleID = ""
		}
	}

	// Cart and active vendor go last so the pair stays consistent. A cart
	// spanning several vendors is dropped; the other fields still apply.
	if patch.Cart != nil {
		next = setCart(next, *patch.Cart)
	}
	if patch.ActiveVendor != nil {
		next = setActiveVendor(next, patch.ActiveVendor)
	}

	return next
}

func stampVendorFromCart(state State) State {
	first := state.Cart[0]
	state.ActiveVendorID = first.VendorID
	state.ActiveVendorName = first.Vendor
	state.ActiveVendorImage = ""
	for _, item := range state.Cart {
		if item.VendorImage != "" {
			state.ActiveVendorImage = item.VendorImage

			break
		}
	}

	return state
}

func clearActiveVendor(state State) State {
	state.ActiveVendorID = ""
	state.ActiveVendorName = ""
	state.ActiveVendorImage = ""

	return state
}

func purgeOrderMessages(messages []entity.ChatMessage) []entity.ChatMessage {
	var kept []entity.ChatMessage
	for _, m := range messages {
		if !m.IsInFlightOrderCard() {
			kept = append(kept, m)
		}
	}

	return kept
}

func setOrderStatus(history []entity.OrderHistoryItem, id string, status entity.OrderStatus) []entity.OrderHistoryItem {
	idx := slices.IndexFunc(history, func(o entity.OrderHistoryItem) bool { return o.ID == id })
	if idx < 0 {
		return history
	}

	updated := slices.Clone(history)
	updated[idx].Status = status

	return updated
}

// appendCopy appends to a fresh backing array so earlier snapshots keep theirs.
func appendCopy[T any](s []T, items ...T) []T {
	out := make([]T, 0, len(s)+len(items))
	out = append(out, s...)

	return append(out, items...)
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}

	return s
}
