// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bezgo/internal/domain/entity"
)

// SessionUsecase defines the sign-in, restore and preference operations.
type SessionUsecase interface {
	ValidatePhone(phone string) error
	VerifyOTP(code []string) error
	CompleteSignup(ctx context.Context, user *entity.UserData) error
	// Restore loads persisted state into the store and reports whether a
	// signed-in user was found.
	Restore(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
	IsOnboarded(ctx context.Context) (bool, error)
	SetLocation(location, label string) error
	SetTheme(ctx context.Context, isDark *bool, brandColor *string) error
}
