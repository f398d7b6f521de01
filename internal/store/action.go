package store

import "bezgo/internal/domain/entity"

// ActionType names an action in logs and events.
type ActionType string

const (
	TypeSetUser            ActionType = "SET_USER"
	TypeLogout             ActionType = "LOGOUT"
	TypeSetMarketData      ActionType = "SET_MARKET_DATA"
	TypeAddToCart          ActionType = "ADD_TO_CART"
	TypeRemoveFromCart     ActionType = "REMOVE_FROM_CART"
	TypeClearCart          ActionType = "CLEAR_CART"
	TypeSetCart            ActionType = "SET_CART"
	TypeAddMessage         ActionType = "ADD_MESSAGE"
	TypeAddMessages        ActionType = "ADD_MESSAGES"
	TypeClearMessages      ActionType = "CLEAR_MESSAGES"
	TypeClearOrderMessages ActionType = "CLEAR_ORDER_MESSAGES"
	TypeSetLoading         ActionType = "SET_LOADING"
	TypeAddOrder           ActionType = "ADD_ORDER"
	TypeCancelOrder        ActionType = "CANCEL_ORDER"
	TypeCompleteOrder      ActionType = "COMPLETE_ORDER"
	TypeSetLocation        ActionType = "SET_LOCATION"
	TypeSetTheme           ActionType = "SET_THEME"
	TypeRestoreState       ActionType = "RESTORE_STATE"
	TypeSetOrderStage      ActionType = "SET_ORDER_STAGE"
	TypeSetActiveVendor    ActionType = "SET_ACTIVE_VENDOR"
)

// Action is the closed set of state mutations.
type Action interface {
	Type() ActionType
	isAction()
}

type (
	SetUser       struct{ User entity.UserData }
	Logout        struct{}
	SetMarketData struct{ Data *entity.MarketData }
	AddToCart     struct{ Item entity.CartItem }

	// RemoveFromCart drops the lines matching ID and Vendor, and Weight when set.
	RemoveFromCart struct {
		ID     string
		Vendor string
		Weight string
	}

	ClearCart          struct{}
	SetCart            struct{ Items []entity.CartItem }
	AddMessage         struct{ Message entity.ChatMessage }
	AddMessages        struct{ Messages []entity.ChatMessage }
	ClearMessages      struct{}
	ClearOrderMessages struct{}
	SetLoading         struct{ Loading bool }
	AddOrder           struct{ Order entity.OrderHistoryItem }
	CancelOrder        struct{ OrderID string }
	CompleteOrder      struct{ OrderID string }

	SetLocation struct {
		Location string
		Label    string
	}

	// SetTheme updates the fields that are set.
	SetTheme struct {
		IsDark     *bool
		BrandColor *string
	}

	RestoreState struct{ Patch StatePatch }

	// SetOrderStage moves the lifecycle. A non-empty LifecycleID claims the
	// stage for that lifecycle; moving to idle releases it.
	SetOrderStage struct {
		Stage       entity.OrderStage
		LifecycleID string
	}

	// SetActiveVendor sets the active vendor, or clears it when Vendor is nil.
	SetActiveVendor struct{ Vendor *entity.ActiveVendor }
)

func (SetUser) Type() ActionType { return TypeSetUser }
func (Logout) Type() ActionType { return TypeLogout }
func (SetMarketData) Type() ActionType { return TypeSetMarketData }
func (AddToCart) Type() ActionType { return TypeAddToCart }
func (RemoveFromCart) Type() ActionType { return TypeRemoveFromCart }
func (ClearCart) Type() ActionType { return TypeClearCart }
func (SetCart) Type() ActionType { return TypeSetCart }
func (AddMessage) Type() ActionType { return TypeAddMessage }
func (AddMessages) Type() ActionType { return TypeAddMessages }
func (ClearMessages) Type() ActionType { return TypeClearMessages }
func (ClearOrderMessages) Type() ActionType { return TypeClearOrderMessages }
func (SetLoading) Type() ActionType { return TypeSetLoading }
func (AddOrder) Type() ActionType { return TypeAddOrder }
func (CancelOrder) Type() ActionType { return TypeCancelOrder }
func (CompleteOrder) Type() ActionType { return TypeCompleteOrder }
func (SetLocation) Type() ActionType { return TypeSetLocation }
func (SetTheme) Type() ActionType { return TypeSetTheme }
func (RestoreState) Type() ActionType { return TypeRestoreState }
func (SetOrderStage) Type() ActionType { return TypeSetOrderStage }
func (SetActiveVendor) Type() ActionType { return TypeSetActiveVendor }

func (SetUser) isAction() {}
func (Logout) isAction() {}
func (SetMarketData) isAction() {}
func (AddToCart) isAction() {}
func (RemoveFromCart) isAction() {}
func (ClearCart) isAction() {}
func (SetCart) isAction() {}
func (AddMessage) isAction() {}
func (AddMessages) isAction() {}
func (ClearMessages) isAction() {}
func (ClearOrderMessages) isAction() {}
func (SetLoading) isAction() {}
func (AddOrder) isAction() {}
func (CancelOrder) isAction() {}
func (CompleteOrder) isAction() {}
func (SetLocation) isAction() {}
func (SetTheme) isAction() {}
func (RestoreState) isAction() {}
func (SetOrderStage) isAction() {}
func (SetActiveVendor) isAction() {}
