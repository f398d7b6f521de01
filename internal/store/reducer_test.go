package store

import (
	"testing"

	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_AddSameItemTwiceMerges(t *testing.T) {
	state := reduceAll(InitialState(),
		AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)},
		AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)},
	)

	require.Len(t, state.Cart, 1)
	assert.Equal(t, 2, state.Cart[0].Qty)
	assert.Equal(t, vendorFreshFarm.ID, state.ActiveVendorID)
	assert.Equal(t, vendorFreshFarm.Name, state.ActiveVendorName)
	assert.Equal(t, vendorFreshFarm.Image, state.ActiveVendorImage)
}

func TestReduce_AddFromOtherVendorIsNoop(t *testing.T) {
	before := Reduce(InitialState(), AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})
	after := Reduce(before, AddToCart{Item: item("prawns", vendorSeaCatch, "500g", 1, 420)})

	assert.Equal(t, before, after)
	require.Len(t, after.Cart, 1)
	assert.Equal(t, "chicken", after.Cart[0].ID)
}

func TestReduce_RemoveLastItemClearsVendorButNotStage(t *testing.T) {
	state := reduceAll(InitialState(),
		AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)},
		SetOrderStage{Stage: entity.StageOrderSummary},
		RemoveFromCart{ID: "chicken", Vendor: vendorFreshFarm.Name},
	)

	assert.Empty(t, state.Cart)
	assert.Nil(t, state.ActiveVendor())
	assert.Equal(t, entity.StageOrderSummary, state.ActiveOrderStage)
}

func TestReduce_RemoveMatchesWeightWhenGiven(t *testing.T) {
	state := reduceAll(InitialState(),
		AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)},
		AddToCart{Item: item("chicken", vendorFreshFarm, "500g", 1, 130)},
		RemoveFromCart{ID: "chicken", Vendor: vendorFreshFarm.Name, Weight: "500g"},
	)

	require.Len(t, state.Cart, 1)
	assert.Equal(t, "1kg", state.Cart[0].Weight)
	assert.Equal(t, vendorFreshFarm.ID, state.ActiveVendorID)
}

func TestReduce_ClearCartResetsStage(t *testing.T) {
	state := reduceAll(InitialState(),
		AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)},
		SetOrderStage{Stage: entity.StageContactingVendor},
		ClearCart{},
	)

	assert.Equal(t, entity.StageIdle, state.ActiveOrderStage)
	assert.Empty(t, state.Cart)
	assert.Nil(t, state.ActiveVendor())
}

func TestReduce_ClearOrderMessagesKeepsChat(t *testing.T) {
	state := reduceAll(InitialState(), AddMessages{Messages: []entity.ChatMessage{
		message("hello", entity.MessageText),
		message("check", entity.MessageCheckingAvailability),
		message("grid", entity.MessageVendorGrid),
		message("summary", entity.MessageOrderSummary),
		message("contact", entity.MessageContactingVendor),
		message("bye", entity.MessageText),
	}})

	state = Reduce(state, ClearOrderMessages{})

	ids := make([]string, 0, len(state.Messages))
	for _, m := range state.Messages {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"hello", "grid", "bye"}, ids)
}

func TestReduce_ClearMessages(t *testing.T) {
	state := reduceAll(InitialState(),
		AddMessage{Message: message("hello", entity.MessageText)},
		ClearMessages{},
	)

	assert.Empty(t, state.Messages)
}

func TestReduce_LogoutIsFullReset(t *testing.T) {
	dark := true
	state := reduceAll(InitialState(),
		SetUser{User: entity.UserData{Phone: "9876543210", FirstName: "Anu"}},
		AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)},
		AddMessage{Message: message("hello", entity.MessageText)},
		AddOrder{Order: entity.OrderHistoryItem{ID: "BZG100000"}},
		SetLocation{Location: "Home", Label: "Home"},
		SetTheme{IsDark: &dark},
		SetOrderStage{Stage: entity.StageOutForDelivery},
		Logout{},
	)

	assert.Equal(t, InitialState(), state)
}

func TestReduce_AddOrderPrepends(t *testing.T) {
	state := reduceAll(InitialState(),
		AddOrder{Order: entity.OrderHistoryItem{ID: "BZG100001"}},
		AddOrder{Order: entity.OrderHistoryItem{ID: "BZG100002"}},
	)

	require.Len(t, state.OrderHistory, 2)
	assert.Equal(t, "BZG100002", state.OrderHistory[0].ID)
	assert.Equal(t, "BZG100001", state.OrderHistory[1].ID)
}

func TestReduce_CancelAndCompleteOrder(t *testing.T) {
	state := reduceAll(InitialState(),
		AddOrder{Order: entity.OrderHistoryItem{ID: "BZG100001", Status: entity.OrderStatusActive}},
		AddOrder{Order: entity.OrderHistoryItem{ID: "BZG100002", Status: entity.OrderStatusActive}},
		CancelOrder{OrderID: "BZG100001"},
		CompleteOrder{OrderID: "BZG100002"},
		CancelOrder{OrderID: "missing"},
	)

	assert.Equal(t, entity.OrderStatusDelivered, state.OrderHistory[0].Status)
	assert.Equal(t, entity.OrderStatusCancelled, state.OrderHistory[1].Status)
}

func TestReduce_SetCart(t *testing.T) {
	t.Run("stamps active vendor", func(t *testing.T) {
		state := Reduce(InitialState(), SetCart{Items: []entity.CartItem{
			item("chicken", vendorFreshFarm, "1kg", 1, 240),
			item("mutton", vendorFreshFarm, "1kg", 2, 700),
		}})

		require.Len(t, state.Cart, 2)
		assert.Equal(t, vendorFreshFarm.ID, state.ActiveVendorID)
	})

	t.Run("rejects carts spanning vendors", func(t *testing.T) {
		before := Reduce(InitialState(), AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})
		after := Reduce(before, SetCart{Items: []entity.CartItem{
			item("chicken", vendorFreshFarm, "1kg", 1, 240),
			item("prawns", vendorSeaCatch, "500g", 1, 420),
		}})

		assert.Equal(t, before, after)
	})

	t.Run("empty cart clears active vendor", func(t *testing.T) {
		before := Reduce(InitialState(), AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})
		after := Reduce(before, SetCart{})

		assert.Empty(t, after.Cart)
		assert.Nil(t, after.ActiveVendor())
	})
}

func TestReduce_SetActiveVendor(t *testing.T) {
	withCart := Reduce(InitialState(), AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})

	t.Run("cannot contradict the cart", func(t *testing.T) {
		other := vendorSeaCatch
		assert.Equal(t, withCart, Reduce(withCart, SetActiveVendor{Vendor: &other}))
		assert.Equal(t, withCart, Reduce(withCart, SetActiveVendor{Vendor: nil}))
	})

	t.Run("empty cart accepts any vendor", func(t *testing.T) {
		v := vendorSeaCatch
		state := Reduce(InitialState(), SetActiveVendor{Vendor: &v})

		assert.Equal(t, vendorSeaCatch.ID, state.ActiveVendorID)
		assert.Equal(t, &v, state.ActiveVendor())

		state = Reduce(state, SetActiveVendor{})
		assert.Nil(t, state.ActiveVendor())
	})

	t.Run("preselected vendor guards adds", func(t *testing.T) {
		v := vendorSeaCatch
		state := Reduce(InitialState(), SetActiveVendor{Vendor: &v})
		after := Reduce(state, AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})

		assert.Equal(t, state, after)
	})
}

func TestReduce_RestoreState(t *testing.T) {
	user := entity.UserData{Phone: "9876543210", FirstName: "Anu"}
	authenticated := true
	cart := []entity.CartItem{item("chicken", vendorFreshFarm, "1kg", 2, 240)}
	orders := []entity.OrderHistoryItem{{ID: "BZG100001", Status: entity.OrderStatusDelivered}}

	state := Reduce(InitialState(), RestoreState{Patch: StatePatch{
		User:            &user,
		IsAuthenticated: &authenticated,
		Cart:            &cart,
		OrderHistory:    &orders,
	}})

	assert.Equal(t, &user, state.User)
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, cart, state.Cart)
	assert.Equal(t, orders, state.OrderHistory)
	assert.Equal(t, vendorFreshFarm.ID, state.ActiveVendorID)
	assert.Equal(t, InitialState().CurrentLocation, state.CurrentLocation)

	t.Run("drops a cart spanning vendors", func(t *testing.T) {
		mixed := []entity.CartItem{
			item("chicken", vendorFreshFarm, "1kg", 1, 240),
			item("prawns", vendorSeaCatch, "500g", 1, 420),
		}
		restored := Reduce(InitialState(), RestoreState{Patch: StatePatch{User: &user, Cart: &mixed}})

		assert.Empty(t, restored.Cart)
		assert.Nil(t, restored.ActiveVendor())
		assert.Equal(t, &user, restored.User)
	})
}

func TestReduce_SetThemeKeepsUnsetFields(t *testing.T) {
	dark := true
	color := "orange"

	state := Reduce(InitialState(), SetTheme{IsDark: &dark})
	assert.True(t, state.IsDarkMode)
	assert.Equal(t, "teal", state.BrandColor)

	state = Reduce(state, SetTheme{BrandColor: &color})
	assert.True(t, state.IsDarkMode)
	assert.Equal(t, "orange", state.BrandColor)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := reduceAll(InitialState(),
		AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)},
		AddMessage{Message: message("hello", entity.MessageText)},
	)
	cartBefore := before.Cart[0]

	_ = Reduce(before, AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 3, 240)})
	_ = Reduce(before, AddMessage{Message: message("again", entity.MessageText)})

	assert.Equal(t, cartBefore, before.Cart[0])
	assert.Len(t, before.Messages, 1)
}

func TestCheckAddToCart(t *testing.T) {
	state := Reduce(InitialState(), AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})

	assert.NoError(t, CheckAddToCart(state, item("mutton", vendorFreshFarm, "1kg", 1, 700)))
	assert.NoError(t, CheckAddToCart(InitialState(), item("prawns", vendorSeaCatch, "500g", 1, 420)))

	err := CheckAddToCart(state, item("prawns", vendorSeaCatch, "500g", 1, 420))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorConflict))

	var conflict *domainerrors.VendorConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, vendorFreshFarm.ID, conflict.ActiveVendorID)
	assert.Equal(t, vendorSeaCatch.ID, conflict.RequestedVendorID)
	assert.Equal(t, "You already have items from Fresh Farm. Clear your cart to order from Sea Catch.", conflict.Message())

	invalid := CheckAddToCart(InitialState(), item("chicken", vendorFreshFarm, "1kg", 0, 240))
	assert.True(t, errors.Is(invalid, domainerrors.ErrInvalidCart))
}

func TestReduce_LifecycleIDFollowsStage(t *testing.T) {
	state := reduceAll(InitialState(),
		SetOrderStage{Stage: entity.StageCheckingAvailability, LifecycleID: "lc-1"},
		SetOrderStage{Stage: entity.StageOrderSummary},
	)
	assert.Equal(t, "lc-1", state.LifecycleID)

	rejected := Reduce(state, SetOrderStage{Stage: entity.StageIdle})
	assert.Empty(t, rejected.LifecycleID)

	cleared := Reduce(state, ClearCart{})
	assert.Empty(t, cleared.LifecycleID)
	assert.Equal(t, entity.StageIdle, cleared.ActiveOrderStage)
}
