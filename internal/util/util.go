package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bezgo/internal/domain/entity"
)

const (
	orderIDPrefix   = "BZG"
	shortOrderIDLen = 10
)

// FormatCurrency formats an amount in rupees, e.g. "₹250" or "₹250.50".
func FormatCurrency(amount float64) string {
	if amount == float64(int64(amount)) {
		return "₹" + strconv.FormatInt(int64(amount), 10)
	}

	return "₹" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// MaskPhone hides all but the last four digits of a 10 digit phone number.
func MaskPhone(phone string) string {
	if len(phone) != 10 {
		return phone
	}

	return "+91 XXXXXX" + phone[len(phone)-4:]
}

// FormatOrderID builds an order id from a six digit number.
func FormatOrderID(number int) string {
	return orderIDPrefix + strconv.Itoa(number)
}

// ShortOrderID returns the display form of an order id.
func ShortOrderID(id string) string {
	if len(id) > shortOrderIDLen {
		id = id[:shortOrderIDLen]
	}

	return strings.ToUpper(id)
}

// FormatDistance formats a distance in kilometres, e.g. "1.2 km" or "800 m".
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(km*1000))
	}

	return fmt.Sprintf("%.1f km", km)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// CartTotal sums unit price times quantity over the cart.
func CartTotal(cart []entity.CartItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.LineTotal()
	}

	return total
}

// ItemCount sums quantities over the cart.
func ItemCount(cart []entity.CartItem) int {
	count := 0
	for _, item := range cart {
		count += item.Qty
	}

	return count
}

// UniqueVendors returns the distinct vendor names of the cart in first-seen order.
func UniqueVendors(cart []entity.CartItem) []string {
	seen := make(map[string]struct{}, len(cart))
	var vendors []string
	for _, item := range cart {
		if _, ok := seen[item.Vendor]; ok {
			continue
		}
		seen[item.Vendor] = struct{}{}
		vendors = append(vendors, item.Vendor)
	}

	return vendors
}

// GroupByVendor groups cart lines by vendor name.
func GroupByVendor(cart []entity.CartItem) map[string][]entity.CartItem {
	groups := make(map[string][]entity.CartItem)
	for _, item := range cart {
		groups[item.Vendor] = append(groups[item.Vendor], item)
	}

	return groups
}

// OrderItemsTotal sums unit price times quantity over proposed order lines.
// Lines without a quantity count once.
func OrderItemsTotal(items []entity.OrderItem) float64 {
	var total float64
	for _, item := range items {
		qty := item.Qty
		if qty <= 0 {
			qty = 1
		}
		total += item.ProductPrice * float64(qty)
	}

	return total
}
