package catalog

import (
	"encoding/json"
	"strings"

	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultWeight = "1kg"

// ErrMalformedReply is returned when the chat service answers with a shape the
// assistant does not understand.
var ErrMalformedReply = errors.New("malformed chat reply")

type ref struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// wireOrderItem accepts both the flat item shape and the nested
// {product:{...}, vendor:{...}} shape.
type wireOrderItem struct {
	ProductID    string   `json:"productId"`
	ProductName  string   `json:"productName"`
	Weight       string   `json:"weight"`
	VendorID     string   `json:"vendorId"`
	VendorName   string   `json:"vendorName"`
	VendorImage  string   `json:"vendorImage"`
	ProductPrice *float64 `json:"productPrice"`
	Price        *float64 `json:"price"`
	ProductImage string   `json:"productImage"`
	Qty          int      `json:"qty"`
	Product      *ref     `json:"product"`
	Vendor       *ref     `json:"vendor"`
}

// wireCartItem is a cart line echoed back in a cart summary. Both cart field
// names and order item field names are accepted.
type wireCartItem struct {
	ID           string   `json:"id"`
	ProductID    string   `json:"productId"`
	Name         string   `json:"name"`
	ProductName  string   `json:"productName"`
	Weight       string   `json:"weight"`
	Vendor       string   `json:"vendor"`
	VendorName   string   `json:"vendorName"`
	VendorID     string   `json:"vendorId"`
	VendorImage  string   `json:"vendorImage"`
	Price        *float64 `json:"price"`
	ProductPrice *float64 `json:"productPrice"`
	Image        string   `json:"image"`
	ProductImage string   `json:"productImage"`
	Qty          int      `json:"qty"`
}

type wireReply struct {
	Type           string            `json:"type"`
	Content        *string           `json:"content"`
	CategoryName   string            `json:"categoryName"`
	Vendors        []entity.Vendor   `json:"vendors"`
	OrderItems     []wireOrderItem   `json:"orderItems"`
	Items          []wireCartItem    `json:"items"`
	CartSummary    bool              `json:"cartSummary"`
	Total          *float64          `json:"total"`
	UnmatchedItems []json.RawMessage `json:"unmatchedItems"`
}

// DecodeChatReply turns a chat service body into a ChatReply.
func DecodeChatReply(body []byte) (service.ChatReply, error) {
	var w wireReply
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, errors.Wrapf(ErrMalformedReply, "decode: %v", err)
	}

	switch service.ReplyKind(w.Type) {
	case service.ReplyText, service.ReplySmartReply, service.ReplyConfirmation:
		if w.Content == nil {
			return nil, errors.Wrapf(ErrMalformedReply, "%s reply without content", w.Type)
		}

		return service.TextReply{Type: service.ReplyKind(w.Type), Content: *w.Content}, nil

	case service.ReplyVendorDiscovery:
		if w.Vendors == nil {
			return nil, errors.Wrap(ErrMalformedReply, "vendor_discovery reply without vendors")
		}

		return service.VendorDiscoveryReply{CategoryName: w.CategoryName, Vendors: w.Vendors}, nil

	case service.ReplyPendingInventory:
		items, err := orderItems(w.OrderItems)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errors.Wrap(ErrMalformedReply, "pending_inventory reply without orderItems")
		}
		unmatched, err := unmatchedNames(w.UnmatchedItems)
		if err != nil {
			return nil, err
		}

		return service.PendingInventoryReply{Items: items, Unmatched: unmatched, Content: deref(w.Content)}, nil

	case service.ReplyOrderSummary:
		return decodeOrderSummary(w)

	default:
		return nil, errors.Wrapf(ErrMalformedReply, "unknown reply type %q", w.Type)
	}
}

func decodeOrderSummary(w wireReply) (service.ChatReply, error) {
	unmatched, err := unmatchedNames(w.UnmatchedItems)
	if err != nil {
		return nil, err
	}

	if len(w.OrderItems) > 0 {
		items, err := orderItems(w.OrderItems)
		if err != nil {
			return nil, err
		}

		return service.OrderSummaryReply{
			Items:     items,
			Total:     w.Total,
			Unmatched: unmatched,
			Content:   deref(w.Content),
		}, nil
	}

	if !w.CartSummary {
		return nil, errors.Wrap(ErrMalformedReply, "order_summary reply without orderItems or cartSummary")
	}

	items := make([]entity.OrderItem, 0, len(w.Items))
	for _, c := range w.Items {
		item := entity.OrderItem{
			ProductID:    firstNonEmpty(c.ID, c.ProductID),
			ProductName:  firstNonEmpty(c.Name, c.ProductName),
			Weight:       firstNonEmpty(c.Weight, defaultWeight),
			VendorID:     c.VendorID,
			VendorName:   firstNonEmpty(c.Vendor, c.VendorName),
			VendorImage:  c.VendorImage,
			ProductPrice: firstPrice(c.Price, c.ProductPrice),
			ProductImage: firstNonEmpty(c.Image, c.ProductImage),
			Qty:          max(c.Qty, 1),
		}
		if item.ProductID == "" || item.VendorID == "" {
			return nil, errors.Wrap(ErrMalformedReply, "cart summary item without product or vendor id")
		}
		items = append(items, item)
	}

	return service.OrderSummaryReply{
		Items:       items,
		CartSummary: true,
		Total:       w.Total,
		Unmatched:   unmatched,
		Content:     deref(w.Content),
	}, nil
}

func orderItems(in []wireOrderItem) ([]entity.OrderItem, error) {
	out := make([]entity.OrderItem, 0, len(in))
	for _, w := range in {
		item := entity.OrderItem{
			ProductID:    w.ProductID,
			ProductName:  w.ProductName,
			Weight:       firstNonEmpty(w.Weight, defaultWeight),
			VendorID:     w.VendorID,
			VendorName:   w.VendorName,
			VendorImage:  w.VendorImage,
			ProductPrice: firstPrice(w.ProductPrice, w.Price),
			ProductImage: w.ProductImage,
			Qty:          max(w.Qty, 1),
		}
		if p := w.Product; p != nil {
			item.ProductID = firstNonEmpty(item.ProductID, p.ID)
			item.ProductName = firstNonEmpty(item.ProductName, p.Name)
			item.ProductImage = firstNonEmpty(item.ProductImage, p.Image)
		}
		if v := w.Vendor; v != nil {
			item.VendorID = firstNonEmpty(item.VendorID, v.ID)
			item.VendorName = firstNonEmpty(item.VendorName, v.Name)
			item.VendorImage = firstNonEmpty(item.VendorImage, v.Image)
		}
		if item.ProductID == "" || item.VendorID == "" {
			return nil, errors.Wrap(ErrMalformedReply, "order item without product or vendor id")
		}
		out = append(out, item)
	}

	return out, nil
}

// unmatchedNames accepts plain strings or objects carrying a name.
func unmatchedNames(raw []json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				names = append(names, s)
			}

			continue
		}

		var obj struct {
			Name        string `json:"name"`
			ProductName string `json:"productName"`
			Item        string `json:"item"`
			Query       string `json:"query"`
		}
		if err := json.Unmarshal(r, &obj); err != nil {
			return nil, errors.Wrapf(ErrMalformedReply, "unmatched item %s", string(r))
		}
		name := firstNonEmpty(obj.Name, obj.ProductName, obj.Item, obj.Query)
		if name == "" {
			return nil, errors.Wrapf(ErrMalformedReply, "unmatched item without name %s", string(r))
		}
		names = append(names, name)
	}

	return names, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// firstPrice returns the first non-zero price, or 0.
func firstPrice(prices ...*float64) float64 {
	for _, p := range prices {
		if p != nil && *p != 0 {
			return *p
		}
	}

	return 0
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
