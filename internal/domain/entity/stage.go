package entity

// OrderStage is the current position in the order lifecycle.
type OrderStage string

const (
	StageIdle                 OrderStage = "idle"
	StageCheckingAvailability OrderStage = "checking_availability"
	StageOrderSummary         OrderStage = "order_summary"
	StageContactingVendor     OrderStage = "contacting_vendor"
	StageAssigningPartner     OrderStage = "assigning_partner"
	StageOutForDelivery       OrderStage = "out_for_delivery"
	StageDelivered            OrderStage = "delivered"
)

// AllowedTransitions is the lifecycle graph. Resetting to idle through
// CLEAR_CART is allowed from every stage and is not listed here.
var AllowedTransitions = map[OrderStage][]OrderStage{
	StageIdle:                 {StageCheckingAvailability},
	StageCheckingAvailability: {StageOrderSummary, StageIdle},
	StageOrderSummary:         {StageCheckingAvailability, StageContactingVendor},
	StageContactingVendor:     {StageAssigningPartner, StageIdle},
	StageAssigningPartner:     {StageOutForDelivery, StageDelivered},
	StageOutForDelivery:       {StageDelivered},
	StageDelivered:            {StageIdle},
}

// CanTransition reports whether the lifecycle may move from one stage to another.
func CanTransition(from, to OrderStage) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}

	return false
}

// InFlight reports whether an order has been handed to a vendor and is not yet
// finished. A new checkout cannot start while a stage is in flight.
func (s OrderStage) InFlight() bool {
	switch s {
	case StageContactingVendor, StageAssigningPartner, StageOutForDelivery:
		return true
	default:
		return false
	}
}

// Confirmed reports whether the vendor has accepted the order.
func (s OrderStage) Confirmed() bool {
	switch s {
	case StageAssigningPartner, StageOutForDelivery, StageDelivered:
		return true
	default:
		return false
	}
}
