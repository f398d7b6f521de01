package store

import (
	"context"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/repository"
)

const defaultSaveTimeout = 5 * time.Second

type saveKind int

const (
	saveUser saveKind = iota
	saveCart
	saveOrders
)

func (k saveKind) String() string {
	switch k {
	case saveUser:
		return repository.KeyUser
	case saveCart:
		return repository.KeyCart
	default:
		return repository.KeyOrders
	}
}

// Persister saves the user, cart and order history whenever a commit changes
// them to a non-empty value. Saves run on a single background goroutine and
// are coalesced per key, so only the latest value of each is written. Save
// failures are logged and never reach the dispatcher.
type Persister struct {
	repo        repository.StateRepository
	logger      *slog.Logger
	saveTimeout time.Duration

	mu      sync.Mutex
	pending map[saveKind]func(ctx context.Context) error
	closed  bool

	// saving is held while a batch is taken from pending and written.
	saving sync.Mutex

	wake        chan struct{}
	quit        chan struct{}
	done        chan struct{}
	unsubscribe func()
	closeOnce   sync.Once
}

// NewPersister subscribes to the store and starts the save loop.
func NewPersister(s *Store, repo repository.StateRepository, logger *slog.Logger) *Persister {
	p := &Persister{
		repo:        repo,
		logger:      logger,
		saveTimeout: defaultSaveTimeout,
		pending:     make(map[saveKind]func(ctx context.Context) error),
		wake:        make(chan struct{}, 1),
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	p.unsubscribe = s.Subscribe(p.observe)
	go p.loop()

	return p
}

func (p *Persister) observe(prev, next State) {
	if prev.User != nil && next.User == nil {
		p.dropPending()

		return
	}
	if next.User != nil && !reflect.DeepEqual(prev.User, next.User) {
		user := *next.User
		p.enqueue(saveUser, func(ctx context.Context) error {
			return p.repo.SaveUser(ctx, &user)
		})
	}
	if len(next.Cart) > 0 && !slices.Equal(prev.Cart, next.Cart) {
		cart := slices.Clone(next.Cart)
		p.enqueue(saveCart, func(ctx context.Context) error {
			return p.repo.SaveCart(ctx, cart)
		})
	}
	if len(next.OrderHistory) > 0 && !ordersEqual(prev.OrderHistory, next.OrderHistory) {
		orders := slices.Clone(next.OrderHistory)
		p.enqueue(saveOrders, func(ctx context.Context) error {
			return p.repo.SaveOrders(ctx, orders)
		})
	}
}

func (p *Persister) enqueue(kind saveKind, save func(ctx context.Context) error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return
	}
	p.pending[kind] = save
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Persister) loop() {
	defer close(p.done)

	for {
		select {
		case <-p.wake:
			p.flush()
		case <-p.quit:
			p.flush()

			return
		}
	}
}

func (p *Persister) dropPending() {
	p.mu.Lock()
	clear(p.pending)
	p.mu.Unlock()
}

func (p *Persister) flush() {
	p.saving.Lock()
	defer p.saving.Unlock()

	p.mu.Lock()
	batch := p.pending
	p.pending = make(map[saveKind]func(ctx context.Context) error)
	p.mu.Unlock()

	for _, kind := range []saveKind{saveUser, saveCart, saveOrders} {
		save, ok := batch[kind]
		if !ok {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), p.saveTimeout)
		if err := save(ctx); err != nil {
			p.logger.Warn("Failed to persist state",
				slog.String("key", kind.String()),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}

// Discard drops every queued save and waits for the save in progress, if
// any, to finish. Once it returns nothing queued so far reaches storage.
func (p *Persister) Discard() {
	p.saving.Lock()
	defer p.saving.Unlock()

	p.dropPending()
}

// Close stops observing the store, writes whatever is still pending and
// waits for the save loop to exit.
func (p *Persister) Close() {
	p.closeOnce.Do(func() {
		p.unsubscribe()
		close(p.quit)
		<-p.done

		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
	})
}

func ordersEqual(a, b []entity.OrderHistoryItem) bool {
	return reflect.DeepEqual(a, b)
}
