package entity

// UPIApp is a payment app offered on the UPI payment screen.
type UPIApp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UPIApps lists the supported UPI apps in display order.
var UPIApps = []UPIApp{
	{ID: "upi", Name: "Pay via any UPI app's"},
	{ID: "gpay", Name: "Google Pay"},
	{ID: "paytm", Name: "Paytm"},
	{ID: "phonepe", Name: "PhonePe"},
	{ID: "slice", Name: "Slice"},
	{ID: "cred", Name: "Cred"},
}

// UPIAppName resolves an app id to its display name.
func UPIAppName(id string) string {
	for _, app := range UPIApps {
		if app.ID == id {
			return app.Name
		}
	}

	return "UPI App"
}

// PostDeliveryAction is a quick reply offered on the post delivery card.
type PostDeliveryAction string

const (
	ActionReorder     PostDeliveryAction = "reorder"
	ActionSupport     PostDeliveryAction = "support"
	ActionViewDetails PostDeliveryAction = "view_details"
)

// PostDeliveryPrompts maps each quick reply to the user message it sends.
var PostDeliveryPrompts = map[PostDeliveryAction]string{
	ActionReorder:     "I'd like to reorder my last order",
	ActionSupport:     "I need help with my recent order",
	ActionViewDetails: "Show me my order details",
}
