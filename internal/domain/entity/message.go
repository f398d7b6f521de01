package entity

import "time"

// MessageSender identifies who authored a chat message.
type MessageSender string

const (
	SenderUser   MessageSender = "user"
	SenderBot    MessageSender = "bot"
	SenderSystem MessageSender = "system"
)

// MessageType tags structured chat cards. The presentation layer interprets
// Data according to the type.
type MessageType string

const (
	MessageText                  MessageType = "text"
	MessageCategoryGrid          MessageType = "category_grid"
	MessageVendorGrid            MessageType = "vendor_grid"
	MessageOrderSummary          MessageType = "order_summary"
	MessageCheckingAvailability  MessageType = "checking_availability"
	MessageContactingVendor      MessageType = "contacting_vendor"
	MessageOrderConfirmedDetail  MessageType = "order_confirmed_detail"
	MessagePartnerAssignmentFlow MessageType = "partner_assignment_flow"
	MessageOrderTracking         MessageType = "order_tracking"
	MessagePostDelivery          MessageType = "post_delivery"
	MessageVendorConflict        MessageType = "vendor_conflict"
)

// InFlightOrderCards are the staged card types purged right before the order
// confirmed card is inserted.
var InFlightOrderCards = []MessageType{
	MessageCheckingAvailability,
	MessageOrderSummary,
	MessageContactingVendor,
}

// ChatMessage is one entry of the chat transcript.
type ChatMessage struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Sender    MessageSender `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
	Type      MessageType   `json:"type,omitempty"`
	Data      any           `json:"data,omitempty"`
}

// IsInFlightOrderCard reports whether the message is one of the staged order cards.
func (m ChatMessage) IsInFlightOrderCard() bool {
	for _, t := range InFlightOrderCards {
		if m.Type == t {
			return true
		}
	}

	return false
}

// VendorGridData is the payload of a vendor_grid card.
type VendorGridData struct {
	CategoryName string   `json:"categoryName"`
	Vendors      []Vendor `json:"vendors"`
}

// AvailabilityData is the payload of a checking_availability card.
type AvailabilityData struct {
	Items []AvailabilityItem `json:"items"`
}

// AvailabilityItem names one product being checked.
type AvailabilityItem struct {
	Name       string `json:"name"`
	VendorName string `json:"vendorName"`
}

// OrderSummaryData is the payload of an order_summary card.
type OrderSummaryData struct {
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	VendorName  string      `json:"vendorName"`
	VendorImage string      `json:"vendorImage,omitempty"`
}

// VendorCardData is the payload of contacting_vendor and partner_assignment_flow cards.
type VendorCardData struct {
	VendorName  string `json:"vendorName"`
	VendorImage string `json:"vendorImage,omitempty"`
}

// OrderConfirmedData is the payload of an order_confirmed_detail card.
type OrderConfirmedData struct {
	OrderID    string     `json:"orderId"`
	Items      []CartItem `json:"items"`
	Total      float64    `json:"total"`
	VendorName string     `json:"vendorName"`
}

// TrackingData is the payload of an order_tracking card.
type TrackingData struct {
	EstimatedTime string `json:"estimatedTime"`
}

// PostDeliveryData is the payload of the post_delivery card.
type PostDeliveryData struct {
	OrderID    string  `json:"orderId"`
	Total      float64 `json:"total"`
	ItemCount  int     `json:"itemCount"`
	VendorName string  `json:"vendorName"`
}

// VendorConflictData is the payload of a vendor_conflict card.
type VendorConflictData struct {
	ActiveVendor    ActiveVendor `json:"activeVendor"`
	RequestedVendor ActiveVendor `json:"requestedVendor"`
	Items           []OrderItem  `json:"items"`
}
