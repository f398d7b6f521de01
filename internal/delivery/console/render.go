package console

import (
	"fmt"
	"strings"

	"bezgo/internal/domain/entity"
	"bezgo/internal/util"
)

var senderLabels = map[entity.MessageSender]string{
	entity.SenderUser:   "you",
	entity.SenderBot:    "ezer",
	entity.SenderSystem: "system",
}

// renderMessage formats a transcript entry, expanding the card payloads.
func renderMessage(m entity.ChatMessage) string {
	var b strings.Builder
	label := senderLabels[m.Sender]
	if label == "" {
		label = string(m.Sender)
	}
	fmt.Fprintf(&b, "[%s] %s", label, m.Text)

	switch data := m.Data.(type) {
	case entity.VendorGridData:
		fmt.Fprintf(&b, "\n  %s shops:", data.CategoryName)
		for _, v := range data.Vendors {
			fmt.Fprintf(&b, "\n   - %s (%s) %s, %.1f★, %s", v.Name, v.ID, v.Specialty, v.Rating, v.Distance)
		}
	case entity.AvailabilityData:
		for _, item := range data.Items {
			fmt.Fprintf(&b, "\n   ? %s at %s", item.Name, item.VendorName)
		}
	case entity.OrderSummaryData:
		fmt.Fprintf(&b, "\n  %s", data.VendorName)
		for _, item := range data.Items {
			fmt.Fprintf(&b, "\n   - %s %s x%d  %s", item.ProductName, item.Weight, max(item.Qty, 1), util.FormatCurrency(item.ProductPrice))
		}
		fmt.Fprintf(&b, "\n  Total %s. Pick /pay upi or /pay cod, then /place.", util.FormatCurrency(data.Total))
	case entity.VendorCardData:
		if data.VendorName != "" {
			fmt.Fprintf(&b, " (%s)", data.VendorName)
		}
	case entity.OrderConfirmedData:
		fmt.Fprintf(&b, "\n  Order #%s from %s", data.OrderID, data.VendorName)
		for _, item := range data.Items {
			fmt.Fprintf(&b, "\n   - %s %s x%d  %s", item.Name, item.Weight, item.Qty, util.FormatCurrency(item.LineTotal()))
		}
		fmt.Fprintf(&b, "\n  Total %s", util.FormatCurrency(data.Total))
	case entity.TrackingData:
		fmt.Fprintf(&b, " (ETA %s)", data.EstimatedTime)
	case entity.PostDeliveryData:
		fmt.Fprintf(&b, "\n  #%s, %d item(s) from %s, %s paid.", data.OrderID, data.ItemCount, data.VendorName, util.FormatCurrency(data.Total))
		b.WriteString("\n  Quick replies: /reorder /support /details")
	case entity.VendorConflictData:
		b.WriteString("\n  Use /switch to clear the cart and order from the new shop.")
	}

	return b.String()
}

func renderCart(items []entity.CartItem, vendor *entity.ActiveVendor, total float64) string {
	if len(items) == 0 {
		return "Your cart is empty."
	}

	var b strings.Builder
	if vendor != nil {
		fmt.Fprintf(&b, "Cart from %s:", vendor.Name)
	} else {
		b.WriteString("Cart:")
	}
	for _, item := range items {
		fmt.Fprintf(&b, "\n - %s (%s) %s x%d  %s", item.Name, item.ID, item.Weight, item.Qty, util.FormatCurrency(item.LineTotal()))
	}
	fmt.Fprintf(&b, "\nTotal %s", util.FormatCurrency(total))

	return b.String()
}

func renderOrders(orders []entity.OrderHistoryItem) string {
	if len(orders) == 0 {
		return "No orders yet."
	}

	var b strings.Builder
	b.WriteString("Orders:")
	for _, o := range orders {
		fmt.Fprintf(&b, "\n - %s  %s  %s  %s  %s",
			o.ID, o.Timestamp.Format("02 Jan 15:04"), strings.Join(o.Vendors, ", "), util.FormatCurrency(o.Total), o.Status)
	}

	return b.String()
}

func renderCatalog(data *entity.MarketData, category string) string {
	if data == nil {
		return "The catalog is not loaded yet."
	}

	var b strings.Builder
	b.WriteString("Shops:")
	for _, v := range data.Vendors {
		fmt.Fprintf(&b, "\n - %s %s, %s, %s", v.ID, v.Name, v.Specialty, v.Distance)
	}
	b.WriteString("\nProducts:")
	for _, p := range data.Products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		prices := make([]string, 0, len(p.Prices))
		for _, v := range data.Vendors {
			if price, ok := p.PriceAt(v.ID); ok {
				prices = append(prices, v.ID+" "+util.FormatCurrency(price))
			}
		}
		fmt.Fprintf(&b, "\n - %s %s [%s] %s", p.ID, p.Name, p.Category, strings.Join(prices, ", "))
	}

	return b.String()
}
