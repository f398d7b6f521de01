package impl

import (
	"log/slog"

	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/store"
	"bezgo/internal/usecase"
	"bezgo/internal/util"

	"go.uber.org/fx"
)

type cartService struct {
	store  *store.Store
	logger *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store  *store.Store
	Logger *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// orderLocked reports whether the cart belongs to an order a vendor is
// already handling.
func orderLocked(st store.State) bool {
	return st.ActiveOrderStage.InFlight() || st.ActiveOrderStage.Confirmed()
}

// Add adds the item when it fits the cart's vendor. The check and the commit
// happen under the same store lock.
func (s *cartService) Add(item entity.CartItem) error {
	if item.Qty <= 0 {
		item.Qty = 1
	}

	var addErr error
	s.store.Apply(func(st store.State) []store.Action {
		if orderLocked(st) {
			addErr = domainerrors.ErrOrderInProgress

			return nil
		}
		if err := store.CheckAddToCart(st, item); err != nil {
			addErr = err

			return nil
		}

		return []store.Action{store.AddToCart{Item: item}}
	})
	if addErr != nil {
		s.logger.Debug("Cart add refused", "productID", item.ID, "vendorID", item.VendorID, "error", addErr)
	}

	return addErr
}

// SwitchVendor empties the cart and starts it over with the item.
func (s *cartService) SwitchVendor(item entity.CartItem) error {
	if item.Qty <= 0 {
		item.Qty = 1
	}
	if err := store.CheckAddToCart(store.InitialState(), item); err != nil {
		return err
	}

	if !s.store.Apply(func(st store.State) []store.Action {
		if orderLocked(st) {
			return nil
		}

		return []store.Action{
			store.ClearCart{},
			store.SetActiveVendor{Vendor: &entity.ActiveVendor{ID: item.VendorID, Name: item.Vendor, Image: item.VendorImage}},
			store.AddToCart{Item: item},
		}
	}) {
		return domainerrors.ErrOrderInProgress
	}
	s.logger.Info("Cart switched vendor", "vendorID", item.VendorID)

	return nil
}

func (s *cartService) Remove(id, vendor, weight string) error {
	if !s.store.Apply(func(st store.State) []store.Action {
		if orderLocked(st) {
			return nil
		}

		return []store.Action{store.RemoveFromCart{ID: id, Vendor: vendor, Weight: weight}}
	}) {
		s.logger.Debug("Cart remove refused", "productID", id)

		return domainerrors.ErrOrderInProgress
	}

	return nil
}

func (s *cartService) Clear() {
	s.store.Dispatch(store.ClearCart{})
}

// Summary computes totals over the current cart.
func (s *cartService) Summary() usecase.CartSummary {
	st := s.store.State()

	return usecase.CartSummary{
		Items:     st.Cart,
		Total:     util.CartTotal(st.Cart),
		ItemCount: util.ItemCount(st.Cart),
		Vendors:   util.UniqueVendors(st.Cart),
		Vendor:    st.ActiveVendor(),
	}
}
