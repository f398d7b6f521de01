// Package kv implements the state repository on top of a minimal key/value
// store. Every backend only has to move opaque bytes.
package kv

import (
	"context"
	"encoding/json"

	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/repository"
	"bezgo/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// Store is the byte-level contract a persistence backend implements.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

const onboardedValue = "true"

// stateRepository implements repository.StateRepository over a Store.
type stateRepository struct {
	store Store
}

// NewStateRepository returns a StateRepository that encodes records as JSON.
func NewStateRepository(store Store) repository.StateRepository {
	return &stateRepository{store: store}
}

func (r *stateRepository) SaveUser(ctx context.Context, user *entity.UserData) error {
	return r.put(ctx, repository.KeyUser, model.FromUser(user))
}

func (r *stateRepository) GetUser(ctx context.Context) (*entity.UserData, error) {
	var m *model.UserModel
	if _, err := r.get(ctx, repository.KeyUser, &m); err != nil {
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *stateRepository) SaveCart(ctx context.Context, cart []entity.CartItem) error {
	return r.put(ctx, repository.KeyCart, model.FromCart(cart))
}

func (r *stateRepository) GetCart(ctx context.Context) ([]entity.CartItem, error) {
	var records []model.CartItemModel
	if _, err := r.get(ctx, repository.KeyCart, &records); err != nil {
		return nil, err
	}

	return model.ToCart(records), nil
}

func (r *stateRepository) SaveOrders(ctx context.Context, orders []entity.OrderHistoryItem) error {
	return r.put(ctx, repository.KeyOrders, model.FromOrders(orders))
}

func (r *stateRepository) GetOrders(ctx context.Context) ([]entity.OrderHistoryItem, error) {
	var records []model.OrderModel
	if _, err := r.get(ctx, repository.KeyOrders, &records); err != nil {
		return nil, err
	}

	return model.ToOrders(records), nil
}

func (r *stateRepository) SaveTheme(ctx context.Context, theme entity.Theme) error {
	return r.put(ctx, repository.KeyTheme, model.FromTheme(theme))
}

func (r *stateRepository) GetTheme(ctx context.Context) (*entity.Theme, error) {
	var m model.ThemeModel
	found, err := r.get(ctx, repository.KeyTheme, &m)
	if err != nil || !found {
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *stateRepository) SetOnboarded(ctx context.Context) error {
	if err := r.store.Set(ctx, repository.KeyOnboarded, []byte(onboardedValue)); err != nil {
		return errors.Wrap(err, "failed to save onboarding flag")
	}

	return nil
}

func (r *stateRepository) IsOnboarded(ctx context.Context) (bool, error) {
	raw, ok, err := r.store.Get(ctx, repository.KeyOnboarded)
	if err != nil {
		return false, errors.Wrap(err, "failed to load onboarding flag")
	}

	return ok && string(raw) == onboardedValue, nil
}

func (r *stateRepository) ClearAll(ctx context.Context) error {
	if err := r.store.Delete(ctx, repository.AllKeys...); err != nil {
		return errors.Wrap(err, "failed to clear persisted state")
	}

	return nil
}

func (r *stateRepository) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "failed to save %s", key)
	}

	return nil
}

// get decodes the value under key into v and reports whether it was present.
func (r *stateRepository) get(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to load %s", key)
	}
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, errors.Wrapf(repository.ErrCorruptState, "%s: %v", key, err)
	}

	return true, nil
}
