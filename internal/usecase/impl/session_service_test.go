package impl

import (
	"context"
	"testing"

	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/domain/repository"
	"bezgo/internal/errors"
	mockRepo "bezgo/internal/mocks/repository"
	"bezgo/internal/store"
	"bezgo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	svc   usecase.SessionUsecase
	store *store.Store
	repo  *mockRepo.MockStateRepository
}

func createTestSessionService(t *testing.T) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		store: store.New(newTestLogger()),
		repo:  mockRepo.NewMockStateRepository(t),
	}
	f.svc = NewSessionService(SessionServiceParams{Store: f.store, Repo: f.repo, Logger: newTestLogger()})

	return f
}

func TestSessionService_ValidatePhone(t *testing.T) {
	f := createTestSessionService(t)

	tests := []struct {
		name  string
		phone string
		want  error
	}{
		{name: "ten digits", phone: "9876543210"},
		{name: "too short", phone: "98765", want: domainerrors.ErrInvalidPhone},
		{name: "letters", phone: "98765abcde", want: domainerrors.ErrInvalidPhone},
		{name: "empty", phone: "", want: domainerrors.ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.ValidatePhone(tt.phone)
			if tt.want == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSessionService_VerifyOTP(t *testing.T) {
	f := createTestSessionService(t)

	assert.NoError(t, f.svc.VerifyOTP([]string{"1", "2", "3", "4", "5", "6"}))
	assert.ErrorIs(t, f.svc.VerifyOTP([]string{"1", "2", "3"}), domainerrors.ErrInvalidOTP)
	assert.ErrorIs(t, f.svc.VerifyOTP([]string{"1", "2", "3", "4", "5", "x"}), domainerrors.ErrInvalidOTP)
}

func TestSessionService_CompleteSignup(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.repo.EXPECT().SetOnboarded(ctx).Return(nil).Once()
	require.NoError(t, f.svc.CompleteSignup(ctx, &entity.UserData{Phone: "9876543210", FirstName: " Asha ", LastName: "Nair-Menon"}))

	st := f.store.State()
	require.NotNil(t, st.User)
	assert.True(t, st.IsAuthenticated)
	assert.Equal(t, "Asha", st.User.FirstName)
}

func TestSessionService_CompleteSignup_Invalid(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.CompleteSignup(ctx, nil), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, f.svc.CompleteSignup(ctx, &entity.UserData{Phone: "123", FirstName: "Asha"}), domainerrors.ErrInvalidPhone)
	assert.ErrorIs(t, f.svc.CompleteSignup(ctx, &entity.UserData{Phone: "9876543210", FirstName: "A5ha"}), domainerrors.ErrInvalidName)
	assert.ErrorIs(t, f.svc.CompleteSignup(ctx, &entity.UserData{Phone: "9876543210", FirstName: "   "}), domainerrors.ErrInvalidName)
	assert.Nil(t, f.store.State().User)
}

func TestSessionService_CompleteSignup_OnboardingFailureIsLogged(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.repo.EXPECT().SetOnboarded(ctx).Return(errors.New("disk full")).Once()
	require.NoError(t, f.svc.CompleteSignup(ctx, &entity.UserData{Phone: "9876543210", FirstName: "Asha"}))
	assert.True(t, f.store.State().IsAuthenticated)
}

func TestSessionService_Restore(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.UserData{Phone: "9876543210", FirstName: "Asha", Location: "12 Temple Road, Palakkad", LocationLabel: "Home"}
	cart := []entity.CartItem{orderItem("p1", "Tomato", freshFarm, 40).CartItem()}
	orders := []entity.OrderHistoryItem{{ID: "BZG111111", Status: entity.OrderStatusDelivered}}

	f.repo.EXPECT().GetUser(ctx).Return(user, nil).Once()
	f.repo.EXPECT().GetCart(ctx).Return(cart, nil).Once()
	f.repo.EXPECT().GetOrders(ctx).Return(orders, nil).Once()
	f.repo.EXPECT().GetTheme(ctx).Return(&entity.Theme{IsDark: true, BrandColor: "orange"}, nil).Once()

	restored, err := f.svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	st := f.store.State()
	assert.True(t, st.IsAuthenticated)
	assert.Equal(t, "Asha", st.User.FirstName)
	assert.Len(t, st.Cart, 1)
	assert.Equal(t, "v1", st.ActiveVendorID)
	assert.Len(t, st.OrderHistory, 1)
	assert.True(t, st.IsDarkMode)
	assert.Equal(t, "orange", st.BrandColor)
	assert.Equal(t, "Home", st.CurrentLocationLabel)
}

func TestSessionService_Restore_NoUser(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUser(ctx).Return(nil, nil).Once()

	restored, err := f.svc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Equal(t, store.InitialState(), f.store.State())
}

func TestSessionService_Restore_CorruptCart(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUser(ctx).Return(&entity.UserData{Phone: "9876543210", FirstName: "Asha"}, nil).Once()
	f.repo.EXPECT().GetCart(ctx).Return(nil, errors.Wrap(repository.ErrCorruptState, "cart")).Once()
	f.repo.EXPECT().GetOrders(ctx).Return([]entity.OrderHistoryItem{}, nil).Once()
	f.repo.EXPECT().GetTheme(ctx).Return(nil, nil).Once()

	restored, err := f.svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Empty(t, f.store.State().Cart)
	assert.True(t, f.store.State().IsAuthenticated)
}

func TestSessionService_Restore_UserError(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUser(ctx).Return(nil, errors.New("io")).Once()

	restored, err := f.svc.Restore(ctx)
	assert.Error(t, err)
	assert.False(t, restored)
}

func TestSessionService_Logout(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	f.store.Dispatch(
		store.SetUser{User: entity.UserData{Phone: "9876543210", FirstName: "Asha"}},
		store.AddToCart{Item: orderItem("p1", "Tomato", freshFarm, 40).CartItem()},
	)

	f.repo.EXPECT().ClearAll(ctx).Return(errors.New("locked")).Once()
	assert.Error(t, f.svc.Logout(ctx))
	assert.Equal(t, store.InitialState(), f.store.State(), "logout resets even when storage fails")
}

func TestSessionService_IsOnboarded(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.repo.EXPECT().IsOnboarded(ctx).Return(true, nil).Once()
	onboarded, err := f.svc.IsOnboarded(ctx)
	require.NoError(t, err)
	assert.True(t, onboarded)
}

func TestSessionService_SetLocation(t *testing.T) {
	f := createTestSessionService(t)
	f.store.Dispatch(store.SetUser{User: entity.UserData{Phone: "9876543210", FirstName: "Asha"}})

	assert.ErrorIs(t, f.svc.SetLocation("  ", ""), domainerrors.ErrValidationFailed)

	require.NoError(t, f.svc.SetLocation("Robinson Road, Palakkad", ""))
	st := f.store.State()
	assert.Equal(t, "Robinson Road, Palakkad", st.CurrentLocation)
	assert.Equal(t, "Robinson Road", st.CurrentLocationLabel)
	assert.Equal(t, "Robinson Road", st.User.LocationLabel)
}

func TestSessionService_SetTheme(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	dark := true

	f.repo.EXPECT().SaveTheme(ctx, entity.Theme{IsDark: true, BrandColor: "teal"}).Return(nil).Once()
	require.NoError(t, f.svc.SetTheme(ctx, &dark, nil))
	assert.True(t, f.store.State().IsDarkMode)

	blank := " "
	assert.ErrorIs(t, f.svc.SetTheme(ctx, nil, &blank), domainerrors.ErrValidationFailed)

	purple := "purple"
	f.repo.EXPECT().SaveTheme(ctx, mock.AnythingOfType("entity.Theme")).Return(errors.New("io")).Once()
	assert.Error(t, f.svc.SetTheme(ctx, nil, &purple))
	assert.Equal(t, "purple", f.store.State().BrandColor)
}
