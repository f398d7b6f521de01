package impl

import (
	"fmt"
	"strings"
	"time"

	"bezgo/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	greetingFormat = "Hello %s!\n\nI'm Ezer, your personal fresh shopping assistant. " +
		"I can help you find the freshest meat, seafood, and more from local vendors.\n\n" +
		"Try browsing by category below, or just tell me what you need!"

	textCheckingAvailability = "Let me check the availabilities of the product"
	textSummaryReady         = "Order summary ready"
	textCartSummary          = "Here’s your order summary."
	textOutOfStock           = "I'm sorry, I just checked and those items are currently out of stock at this vendor. " +
		"Would you like to check nearby vendors instead?"
	textVendorRejectedFormat = "Sorry, %s just informed us that they can't fulfill your order right now. You can try another vendor!"
	textConnectionTrouble    = "Sorry, I'm having trouble connecting. Please try again."
	textOrderInProgress      = "Your current order is still being processed. Let's wait for it to finish before starting a new one."
	textVendorConflictFormat = "Your cart has items from %s. Clear it to order from %s."
	textContactingVendor     = "Contacting vendor..."
	textOrderConfirmed       = "Order confirmed details"
	textAssigningPartner     = "Assigning Partner..."
	textOnTheWay             = "Order is on the way"
	textDelivered            = "Delivered!"
	textUPISuccessFormat     = "✅ UPI payment of %s successful via %s."
	textOrderCancelledFormat = "Your order %s has been cancelled."
	textVendorOnlyFormat     = "I need items from %s"

	fallbackVendorName = "Vendor"
	multipleShopsName  = "Multiple Shops"
	thisShopName       = "this shop"
)

func newMessage(sender entity.MessageSender, text string, msgType entity.MessageType, data any) entity.ChatMessage {
	return entity.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
		Type:      msgType,
		Data:      data,
	}
}

func userText(text string) entity.ChatMessage {
	return newMessage(entity.SenderUser, text, entity.MessageText, nil)
}

func botText(text string) entity.ChatMessage {
	return newMessage(entity.SenderBot, text, entity.MessageText, nil)
}

func botCard(text string, msgType entity.MessageType, data any) entity.ChatMessage {
	return newMessage(entity.SenderBot, text, msgType, data)
}

func greeting(firstName string) string {
	return fmt.Sprintf(greetingFormat, firstName)
}

// unmatchedCatalogNotice is shown when no vendor context narrows the search.
func unmatchedCatalogNotice(names []string) string {
	return fmt.Sprintf("I couldn't find %s in the catalog.", strings.Join(names, ", "))
}

func unmatchedVendorNotice(names []string, vendorName string) string {
	if vendorName == "" {
		vendorName = thisShopName
	}

	return fmt.Sprintf("I couldn't find %s at %s.", strings.Join(names, ", "), vendorName)
}

func availabilityData(items []entity.OrderItem) entity.AvailabilityData {
	data := entity.AvailabilityData{Items: make([]entity.AvailabilityItem, 0, len(items))}
	for _, item := range items {
		data.Items = append(data.Items, entity.AvailabilityItem{Name: item.ProductName, VendorName: item.VendorName})
	}

	return data
}

// cartOrderItems turns cart lines back into priced order lines for the summary card.
func cartOrderItems(cart []entity.CartItem) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(cart))
	for _, line := range cart {
		items = append(items, entity.OrderItem{
			ProductID:    line.ID,
			ProductName:  line.Name,
			Weight:       line.Weight,
			VendorID:     line.VendorID,
			VendorName:   line.Vendor,
			VendorImage:  line.VendorImage,
			ProductPrice: line.Price,
			ProductImage: line.Image,
			Qty:          line.Qty,
		})
	}

	return items
}

// itemsVendor names the vendor of proposed lines, falling back when the lines disagree or are empty.
func itemsVendor(items []entity.OrderItem, fallback string) (name, image string) {
	if len(items) == 0 {
		return fallback, ""
	}

	first := items[0]
	for _, item := range items[1:] {
		if item.VendorID != first.VendorID {
			return fallback, ""
		}
	}
	if first.VendorName == "" {
		return fallbackVendorName, first.VendorImage
	}

	return first.VendorName, first.VendorImage
}
