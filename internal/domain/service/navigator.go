package service

// Route is a screen the orchestrator can send the user to.
type Route interface {
	isRoute()
}

// UPIPaymentRoute opens the UPI payment screen for the given total.
type UPIPaymentRoute struct {
	Total float64
}

// OrderPlacedRoute opens the order placed confirmation screen.
type OrderPlacedRoute struct {
	OrderID     string
	VendorCount int
}

func (UPIPaymentRoute) isRoute()  {}
func (OrderPlacedRoute) isRoute() {}

// Navigator is implemented by the presentation layer.
type Navigator interface {
	Navigate(route Route)
}

// NoopNavigator ignores navigation requests.
type NoopNavigator struct{}

func (NoopNavigator) Navigate(Route) {}
