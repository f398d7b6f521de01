package impl

import (
	"context"
	"testing"

	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/errors"
	"bezgo/internal/infra/persistence/kv"
	"bezgo/internal/infra/persistence/memory"
	"bezgo/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Restore_HistoryAndThemeErrors(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	user := &entity.UserData{Phone: "9876543210", FirstName: "Asha", Location: "Robinson Road, Palakkad", LocationLabel: "Home"}
	cart := []entity.CartItem{orderItem("p1", "Tomato", freshFarm, 40).CartItem()}

	f.repo.EXPECT().GetUser(ctx).Return(user, nil).Once()
	f.repo.EXPECT().GetCart(ctx).Return(cart, nil).Once()
	f.repo.EXPECT().GetOrders(ctx).Return(nil, errors.New("disk full")).Once()
	f.repo.EXPECT().GetTheme(ctx).Return(nil, errors.New("disk full")).Once()

	restored, err := f.svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	st := f.store.State()
	assert.Equal(t, cart, st.Cart)
	assert.Empty(t, st.OrderHistory)
	assert.False(t, st.IsDarkMode)
	assert.Equal(t, "teal", st.BrandColor)
	assert.Equal(t, "Robinson Road, Palakkad", st.CurrentLocation)
	assert.Equal(t, "Home", st.CurrentLocationLabel)
}

func TestSessionService_IsOnboarded_Error(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.repo.EXPECT().IsOnboarded(ctx).Return(false, errors.New("timeout")).Once()

	onboarded, err := f.svc.IsOnboarded(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read onboarding flag")
	assert.False(t, onboarded)
}

func TestSessionService_CompleteSignup_NilUser(t *testing.T) {
	f := createTestSessionService(t)

	err := f.svc.CompleteSignup(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, f.store.State().User)
}

func TestSessionService_CompleteSignup_RejectsBadLastName(t *testing.T) {
	f := createTestSessionService(t)

	err := f.svc.CompleteSignup(context.Background(), &entity.UserData{Phone: "9876543210", FirstName: "Asha", LastName: "M3non"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidName)
	assert.False(t, f.store.State().IsAuthenticated)
}

func TestSessionService_LogoutLeavesNothingToRestore(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewStateRepository(memory.New())
	st := store.New(newTestLogger())
	persister := store.NewPersister(st, repo, newTestLogger())
	svc := NewSessionService(SessionServiceParams{Store: st, Repo: repo, Persister: persister, Logger: newTestLogger()})

	st.Dispatch(
		store.SetUser{User: entity.UserData{Phone: "9876543210", FirstName: "Asha"}},
		store.AddToCart{Item: orderItem("p1", "Tomato", freshFarm, 40).CartItem()},
	)
	require.NoError(t, svc.Logout(ctx))
	persister.Close()

	user, err := repo.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	cart, err := repo.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Equal(t, store.InitialState(), st.State())
}
