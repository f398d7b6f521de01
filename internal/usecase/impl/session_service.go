// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/domain/repository"
	"bezgo/internal/errors"
	"bezgo/internal/store"
	"bezgo/internal/usecase"
	"bezgo/internal/util"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store     *store.Store
	repo      repository.StateRepository
	persister *store.Persister
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store     *store.Store
	Repo      repository.StateRepository
	Persister *store.Persister `optional:"true"`
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:     params.Store,
		repo:      params.Repo,
		persister: params.Persister,
		logger:    params.Logger,
	}
}

func (srv *sessionService) ValidatePhone(phone string) error {
	if !util.IsValidPhone(phone) {
		return domainerrors.ErrInvalidPhone
	}

	return nil
}

func (srv *sessionService) VerifyOTP(code []string) error {
	if !util.IsValidOTP(code) {
		return domainerrors.ErrInvalidOTP
	}

	return nil
}

// CompleteSignup validates the profile, signs the user in and records that
// onboarding finished. The user itself is persisted by the store observer.
func (srv *sessionService) CompleteSignup(ctx context.Context, user *entity.UserData) error {
	if user == nil {
		return domainerrors.ErrValidationFailed.WithDetails("user is required")
	}

	profile := *user
	profile.FirstName = strings.TrimSpace(profile.FirstName)
	profile.LastName = strings.TrimSpace(profile.LastName)

	if err := srv.ValidatePhone(profile.Phone); err != nil {
		return err
	}
	if !util.IsValidName(profile.FirstName) || (profile.LastName != "" && !util.IsValidName(profile.LastName)) {
		return domainerrors.ErrInvalidName
	}
	if err := util.Validator().Struct(profile); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	srv.store.Dispatch(store.SetUser{User: profile})
	srv.logger.Info("User signed up", "phone", util.MaskPhone(profile.Phone))

	if err := srv.repo.SetOnboarded(ctx); err != nil {
		srv.logger.Warn("Failed to persist onboarding flag", "error", err)
	}

	return nil
}

// Restore loads the persisted device state. Nothing is applied unless a user
// was saved; a missing or corrupt cart or history still restores the user.
func (srv *sessionService) Restore(ctx context.Context) (bool, error) {
	user, err := srv.repo.GetUser(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load user")
	}
	if user == nil {
		srv.logger.Debug("No persisted user")

		return false, nil
	}

	authenticated := true
	patch := store.StatePatch{
		User:            user,
		IsAuthenticated: &authenticated,
	}

	if cart, err := srv.repo.GetCart(ctx); err != nil {
		srv.logger.Warn("Failed to load cart", "error", err)
	} else {
		patch.Cart = &cart
	}

	if orders, err := srv.repo.GetOrders(ctx); err != nil {
		srv.logger.Warn("Failed to load order history", "error", err)
	} else {
		patch.OrderHistory = &orders
	}

	if theme, err := srv.repo.GetTheme(ctx); err != nil {
		srv.logger.Warn("Failed to load theme", "error", err)
	} else if theme != nil {
		patch.IsDarkMode = &theme.IsDark
		if theme.BrandColor != "" {
			patch.BrandColor = &theme.BrandColor
		}
	}

	if user.Location != "" {
		patch.CurrentLocation = &user.Location
		patch.CurrentLocationLabel = &user.LocationLabel
	}

	srv.store.Dispatch(store.RestoreState{Patch: patch})
	srv.logger.Info("Session restored", "phone", util.MaskPhone(user.Phone), "cartLines", len(srv.store.State().Cart))

	return true, nil
}

// Logout resets the state and then clears the device. Saves queued before
// the reset are discarded first so none of them lands after the clear. A
// storage failure does not keep the user signed in.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.store.Dispatch(store.Logout{})
	if srv.persister != nil {
		srv.persister.Discard()
	}

	var clearErr error
	if err := srv.repo.ClearAll(ctx); err != nil {
		clearErr = errors.Wrap(err, "failed to clear persisted state")
		srv.logger.Warn("Logout could not clear storage", "error", err)
	}
	srv.logger.Info("User logged out")

	return clearErr
}

func (srv *sessionService) IsOnboarded(ctx context.Context) (bool, error) {
	onboarded, err := srv.repo.IsOnboarded(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to read onboarding flag")
	}

	return onboarded, nil
}

// SetLocation updates the delivery address and saves it on the user profile.
func (srv *sessionService) SetLocation(location, label string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return domainerrors.ErrValidationFailed.WithDetails("location is required")
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label, _, _ = strings.Cut(location, ",")
	}

	srv.store.Apply(func(st store.State) []store.Action {
		actions := []store.Action{store.SetLocation{Location: location, Label: label}}
		if st.User != nil {
			user := *st.User
			user.Location = location
			user.LocationLabel = label
			actions = append(actions, store.SetUser{User: user})
		}

		return actions
	})

	return nil
}

// SetTheme applies the set fields and persists the resulting preferences.
func (srv *sessionService) SetTheme(ctx context.Context, isDark *bool, brandColor *string) error {
	if brandColor != nil && strings.TrimSpace(*brandColor) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("brand color must not be empty")
	}

	srv.store.Dispatch(store.SetTheme{IsDark: isDark, BrandColor: brandColor})

	st := srv.store.State()
	if err := srv.repo.SaveTheme(ctx, entity.Theme{IsDark: st.IsDarkMode, BrandColor: st.BrandColor}); err != nil {
		return errors.Wrap(err, "failed to save theme")
	}

	return nil
}
