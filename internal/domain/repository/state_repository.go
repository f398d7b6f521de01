// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bezgo/internal/domain/entity"

	"github.com/pkg/errors"
)

// Keys under which the device state is persisted.
const (
	KeyUser      = "@bezgofresh_user"
	KeyCart      = "@bezgofresh_cart"
	KeyOrders    = "@bezgofresh_orders"
	KeyTheme     = "@bezgofresh_theme"
	KeyOnboarded = "@bezgofresh_onboarded"
)

// AllKeys lists every persisted key, in the order ClearAll removes them.
var AllKeys = []string{KeyUser, KeyCart, KeyOrders, KeyTheme, KeyOnboarded}

// ErrCorruptState is returned when a persisted value cannot be decoded.
var ErrCorruptState = errors.New("persisted state is corrupt")

// StateRepository defines the device persistence boundary. Missing values are
// not errors: GetUser returns nil, GetCart and GetOrders return empty slices.
type StateRepository interface {
	// SaveUser persists the signed-in user.
	SaveUser(ctx context.Context, user *entity.UserData) error

	// GetUser loads the persisted user, or nil when none is stored.
	GetUser(ctx context.Context) (*entity.UserData, error)

	// SaveCart persists the cart lines.
	SaveCart(ctx context.Context, cart []entity.CartItem) error

	// GetCart loads the persisted cart lines.
	GetCart(ctx context.Context) ([]entity.CartItem, error)

	// SaveOrders persists the order history, newest first.
	SaveOrders(ctx context.Context, orders []entity.OrderHistoryItem) error

	// GetOrders loads the persisted order history.
	GetOrders(ctx context.Context) ([]entity.OrderHistoryItem, error)

	// SaveTheme persists the appearance preferences.
	SaveTheme(ctx context.Context, theme entity.Theme) error

	// GetTheme loads the appearance preferences, or nil when none are stored.
	GetTheme(ctx context.Context) (*entity.Theme, error)

	// SetOnboarded records that onboarding has completed.
	SetOnboarded(ctx context.Context) error

	// IsOnboarded reports whether onboarding has completed.
	IsOnboarded(ctx context.Context) (bool, error)

	// ClearAll removes every persisted key.
	ClearAll(ctx context.Context) error
}
