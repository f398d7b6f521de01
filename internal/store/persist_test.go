package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"bezgo/internal/domain/entity"
	mockRepo "bezgo/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPersister_SavesNonEmptyChanges(t *testing.T) {
	repo := mockRepo.NewMockStateRepository(t)
	s := New(newTestLogger())
	p := NewPersister(s, repo, newTestLogger())

	user := entity.UserData{Phone: "9876543210", FirstName: "Anu"}
	chicken := item("chicken", vendorFreshFarm, "1kg", 1, 240)
	order := entity.OrderHistoryItem{ID: "BZG100001", Status: entity.OrderStatusActive}

	repo.EXPECT().SaveUser(mock.Anything, &user).Return(nil).Once()
	repo.EXPECT().SaveCart(mock.Anything, []entity.CartItem{chicken}).Return(nil).Once()
	repo.EXPECT().SaveOrders(mock.Anything, []entity.OrderHistoryItem{order}).Return(nil).Once()

	s.Dispatch(SetUser{User: user})
	s.Dispatch(AddToCart{Item: chicken})
	s.Dispatch(AddOrder{Order: order})

	p.Close()
}

func TestPersister_SkipsEmptyValues(t *testing.T) {
	repo := mockRepo.NewMockStateRepository(t)
	s := New(newTestLogger())
	p := NewPersister(s, repo, newTestLogger())

	s.Dispatch(ClearCart{})
	s.Dispatch(SetLoading{Loading: true})
	s.Dispatch(AddMessage{Message: message("hello", entity.MessageText)})

	p.Close()
	repo.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SaveOrders", mock.Anything, mock.Anything)
}

func TestPersister_FailureDoesNotBlockDispatch(t *testing.T) {
	repo := mockRepo.NewMockStateRepository(t)
	s := New(newTestLogger())
	p := NewPersister(s, repo, newTestLogger())

	release := make(chan struct{})
	var once sync.Once
	repo.EXPECT().SaveCart(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cart []entity.CartItem) error {
			once.Do(func() { <-release })

			return errors.New("disk full")
		}).Maybe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			s.Dispatch(AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch blocked on a slow save")
	}

	assert.Equal(t, 50, s.State().Cart[0].Qty)
	close(release)
	p.Close()
}

func TestPersister_CloseFlushesLatestValue(t *testing.T) {
	repo := mockRepo.NewMockStateRepository(t)
	s := New(newTestLogger())

	var mu sync.Mutex
	var last []entity.CartItem
	repo.EXPECT().SaveCart(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cart []entity.CartItem) error {
			mu.Lock()
			defer mu.Unlock()
			last = cart

			return nil
		})

	p := NewPersister(s, repo, newTestLogger())
	for i := 0; i < 10; i++ {
		s.Dispatch(AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})
	}
	p.Close()

	mu.Lock()
	defer mu.Unlock()
	if assert.Len(t, last, 1) {
		assert.Equal(t, 10, last[0].Qty)
	}

	// Commits after Close are ignored.
	s.Dispatch(AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})
}

func TestPersister_DiscardWaitsForRunningSave(t *testing.T) {
	repo := mockRepo.NewMockStateRepository(t)
	s := New(newTestLogger())
	p := NewPersister(s, repo, newTestLogger())
	defer p.Close()

	user := entity.UserData{Phone: "9876543210", FirstName: "Anu"}
	started := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().SaveUser(mock.Anything, &user).
		RunAndReturn(func(context.Context, *entity.UserData) error {
			close(started)
			<-release

			return nil
		}).Once()

	s.Dispatch(SetUser{User: user})
	<-started
	s.Dispatch(AddToCart{Item: item("chicken", vendorFreshFarm, "1kg", 1, 240)})
	s.Dispatch(Logout{})

	discarded := make(chan struct{})
	go func() {
		p.Discard()
		close(discarded)
	}()

	select {
	case <-discarded:
		t.Fatal("discard returned while a save was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-discarded:
	case <-time.After(2 * time.Second):
		t.Fatal("discard never returned")
	}

	p.Close()
	repo.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything)
}
