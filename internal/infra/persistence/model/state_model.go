// Package model holds the persisted record shapes of the device state and the
// mappers between them and the domain entities.
package model

import (
	"time"

	"bezgo/internal/domain/entity"
)

// UserModel is the record stored under the user key.
type UserModel struct {
	Phone         string `json:"phone"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Avatar        string `json:"avatar,omitempty"`
	Location      string `json:"location,omitempty"`
	LocationLabel string `json:"locationLabel,omitempty"`
}

// CartItemModel is one persisted cart line. Records written before quantities
// existed carry no qty and are read back as a single unit.
type CartItemModel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty,omitempty"`
	Weight      string  `json:"weight"`
	Vendor      string  `json:"vendor"`
	VendorID    string  `json:"vendorId"`
	VendorImage string  `json:"vendorImage,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// OrderModel is one persisted order history entry.
type OrderModel struct {
	ID        string          `json:"id"`
	Cart      []CartItemModel `json:"cart"`
	Total     float64         `json:"total"`
	Vendors   []string        `json:"vendors"`
	Timestamp time.Time       `json:"timestamp"`
	Status    string          `json:"status"`
}

// ThemeModel is the record stored under the theme key.
type ThemeModel struct {
	IsDark     bool   `json:"isDark"`
	BrandColor string `json:"brandColor"`
}

// FromUser maps a domain user to its record.
func FromUser(u *entity.UserData) *UserModel {
	if u == nil {
		return nil
	}

	return &UserModel{
		Phone:         u.Phone,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Avatar:        u.Avatar,
		Location:      u.Location,
		LocationLabel: u.LocationLabel,
	}
}

// ToDomain maps the record back to a domain user.
func (m *UserModel) ToDomain() *entity.UserData {
	if m == nil {
		return nil
	}

	return &entity.UserData{
		Phone:         m.Phone,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Avatar:        m.Avatar,
		Location:      m.Location,
		LocationLabel: m.LocationLabel,
	}
}

// FromCart maps cart lines to records.
func FromCart(items []entity.CartItem) []CartItemModel {
	out := make([]CartItemModel, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemModel{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Qty:         item.Qty,
			Weight:      item.Weight,
			Vendor:      item.Vendor,
			VendorID:    item.VendorID,
			VendorImage: item.VendorImage,
			Image:       item.Image,
		})
	}

	return out
}

// ToCart maps records back to cart lines.
func ToCart(models []CartItemModel) []entity.CartItem {
	out := make([]entity.CartItem, 0, len(models))
	for _, m := range models {
		qty := m.Qty
		if qty <= 0 {
			qty = 1
		}
		out = append(out, entity.CartItem{
			ID:          m.ID,
			Name:        m.Name,
			Price:       m.Price,
			Qty:         qty,
			Weight:      m.Weight,
			Vendor:      m.Vendor,
			VendorID:    m.VendorID,
			VendorImage: m.VendorImage,
			Image:       m.Image,
		})
	}

	return out
}

// FromOrders maps order history entries to records.
func FromOrders(orders []entity.OrderHistoryItem) []OrderModel {
	out := make([]OrderModel, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderModel{
			ID:        o.ID,
			Cart:      FromCart(o.Cart),
			Total:     o.Total,
			Vendors:   append([]string(nil), o.Vendors...),
			Timestamp: o.Timestamp,
			Status:    string(o.Status),
		})
	}

	return out
}

// ToOrders maps records back to order history entries. A missing status is
// read as delivered.
func ToOrders(models []OrderModel) []entity.OrderHistoryItem {
	out := make([]entity.OrderHistoryItem, 0, len(models))
	for _, m := range models {
		status := entity.OrderStatus(m.Status)
		if status == "" {
			status = entity.OrderStatusDelivered
		}
		out = append(out, entity.OrderHistoryItem{
			ID:        m.ID,
			Cart:      ToCart(m.Cart),
			Total:     m.Total,
			Vendors:   append([]string(nil), m.Vendors...),
			Timestamp: m.Timestamp,
			Status:    status,
		})
	}

	return out
}

// FromTheme maps appearance preferences to a record.
func FromTheme(t entity.Theme) ThemeModel {
	return ThemeModel(t)
}

// ToDomain maps the record back to appearance preferences.
func (m ThemeModel) ToDomain() *entity.Theme {
	t := entity.Theme(m)

	return &t
}
