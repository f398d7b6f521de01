package service

import (
	"context"

	"bezgo/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ReplyKind is the wire discriminator of a chat reply.
type ReplyKind string

const (
	ReplyText             ReplyKind = "text"
	ReplySmartReply       ReplyKind = "smart_reply"
	ReplyConfirmation     ReplyKind = "confirmation"
	ReplyVendorDiscovery  ReplyKind = "vendor_discovery"
	ReplyPendingInventory ReplyKind = "pending_inventory"
	ReplyOrderSummary     ReplyKind = "order_summary"
)

// AttachedVendor is a vendor tag sent along with a chat message.
type AttachedVendor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AttachedSKU is a product tag sent along with a chat message.
type AttachedSKU struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	VendorID  string  `json:"vendorId"`
	Price     float64 `json:"price,omitempty"`
	Weight    string  `json:"weight,omitempty"`
}

// ChatContext is the client state sent with every chat message.
type ChatContext struct {
	Cart            []entity.CartItem         `json:"cart"`
	OrderHistory    []entity.OrderHistoryItem `json:"orderHistory"`
	AttachedVendors []AttachedVendor          `json:"attachedVendors,omitempty"`
	AttachedSKUs    []AttachedSKU             `json:"attached_skus,omitempty"`
}

// ChatReply is the closed set of replies the chat service can return.
type ChatReply interface {
	Kind() ReplyKind
	isChatReply()
}

// TextReply is a plain bot answer (text, smart_reply or confirmation).
type TextReply struct {
	Type    ReplyKind
	Content string
}

// VendorDiscoveryReply lists the vendors of a category.
type VendorDiscoveryReply struct {
	CategoryName string
	Vendors      []entity.Vendor
}

// PendingInventoryReply proposes items that still need an availability check.
type PendingInventoryReply struct {
	Items     []entity.OrderItem
	Unmatched []string
	Content   string
}

// OrderSummaryReply is either a direct summary of tagged items or, when
// CartSummary is set, a checkout summary of the current cart.
type OrderSummaryReply struct {
	Items       []entity.OrderItem
	CartSummary bool
	Total       *float64
	Unmatched   []string
	Content     string
}

func (r TextReply) Kind() ReplyKind { return r.Type }
func (VendorDiscoveryReply) Kind() ReplyKind { return ReplyVendorDiscovery }
func (PendingInventoryReply) Kind() ReplyKind { return ReplyPendingInventory }
func (OrderSummaryReply) Kind() ReplyKind { return ReplyOrderSummary }
func (TextReply) isChatReply() {}
func (VendorDiscoveryReply) isChatReply() {}
func (PendingInventoryReply) isChatReply() {}
func (OrderSummaryReply) isChatReply() {}

// CatalogService defines the catalog and chat backend boundary.
type CatalogService interface {
	// FetchMarketData returns the catalog. Implementations fall back to a
	// bundled dataset instead of failing.
	FetchMarketData(ctx context.Context) (*entity.MarketData, error)

	// SendChatMessage sends a user message with its context and returns the
	// decoded reply. Transport and decoding failures are returned as errors.
	SendChatMessage(ctx context.Context, message string, chatCtx ChatContext) (ChatReply, error)
}

// Dataset is the static catalog served by the mock backend.
type Dataset interface {
	// MarketData returns a copy the caller may modify.
	MarketData() *entity.MarketData

	// VendorLocation returns the shop location as (lng, lat).
	VendorLocation(vendorID string) (orb.Point, bool)
}
