package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"bezgo/config"
	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/domain/service"
	"bezgo/internal/errors"
	"bezgo/internal/store"
	"bezgo/internal/usecase"
	"bezgo/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	eventBufferSize = 64
	publishTimeout  = 5 * time.Second

	reasonOutOfStock     = "out_of_stock"
	reasonVendorRejected = "vendor_rejected"
	reasonDelivered      = "delivered"
	reasonCancelled      = "cancelled"
	reasonReset          = "cart_cleared"
)

// orderRun is the bookkeeping of one lifecycle that is not part of the store.
type orderRun struct {
	orderID    string
	total      float64
	vendorName string
	reason     string
}

type pendingPayment struct {
	lifecycleID string
	total       float64
}

type lifecycleService struct {
	store     *store.Store
	catalog   service.CatalogService
	scheduler service.Scheduler
	decider   service.Decider
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	navigator service.Navigator
	lifecycle *config.LifecycleConfig
	payment   *config.PaymentConfig
	logger    *slog.Logger

	// mu guards the fields below. The store is never called while mu is held.
	mu      sync.Mutex
	tags    []entity.Tag
	method  entity.PaymentMethod
	pending *pendingPayment
	runs    map[string]*orderRun
	closed  bool

	events      chan *service.LifecycleEvent
	done        chan struct{}
	unsubscribe func()
	closeOnce   sync.Once
}

// LifecycleServiceParams holds dependencies for LifecycleService, injected by Fx.
type LifecycleServiceParams struct {
	fx.In

	Store     *store.Store
	Catalog   service.CatalogService
	Scheduler service.Scheduler
	Decider   service.Decider
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Navigator service.Navigator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLifecycleService creates the chat and order lifecycle orchestrator.
func NewLifecycleService(params LifecycleServiceParams) usecase.LifecycleUsecase {
	lifecycle := config.DefaultLifecycle()
	payment := &config.PaymentConfig{}
	if params.Config != nil {
		if params.Config.Lifecycle != nil {
			lifecycle = params.Config.Lifecycle
		}
		if params.Config.Payment != nil {
			payment = params.Config.Payment
		}
	}

	navigator := params.Navigator
	if navigator == nil {
		navigator = service.NoopNavigator{}
	}

	s := &lifecycleService{
		store:     params.Store,
		catalog:   params.Catalog,
		scheduler: params.Scheduler,
		decider:   params.Decider,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		navigator: navigator,
		lifecycle: lifecycle,
		payment:   payment,
		logger:    params.Logger,
		runs:      make(map[string]*orderRun),
		events:    make(chan *service.LifecycleEvent, eventBufferSize),
		done:      make(chan struct{}),
	}
	s.unsubscribe = s.store.Subscribe(s.observe)
	go s.publishLoop()

	return s
}

// LoadMarketData fetches the catalog into the store.
func (s *lifecycleService) LoadMarketData(ctx context.Context) error {
	data, err := s.catalog.FetchMarketData(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch market data")
	}

	s.store.Dispatch(store.SetMarketData{Data: data})

	return nil
}

func (s *lifecycleService) Greet() bool {
	return s.store.Apply(func(st store.State) []store.Action {
		if len(st.Messages) > 0 || st.User == nil {
			return nil
		}

		return []store.Action{store.AddMessage{Message: botText(greeting(st.User.FirstName))}}
	})
}

func (s *lifecycleService) Tag(tag entity.Tag) {
	if tag.Kind == entity.TagProduct && tag.Weight == "" {
		tag.Weight = "1kg"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = append(s.tags, tag)
}

func (s *lifecycleService) RemoveTag(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.tags) {
		return
	}
	s.tags = slices.Delete(s.tags, index, index+1)
}

func (s *lifecycleService) Tags() []entity.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.tags)
}

// Send posts the staged tags and text as one user message, asks the chat
// backend and turns the reply into messages and lifecycle stages. Backend
// failures become a bot message; only local validation errors are returned.
func (s *lifecycleService) Send(ctx context.Context, text string, opts usecase.SendOptions) error {
	text = strings.TrimSpace(text)
	tags := s.Tags()
	if text == "" && len(tags) == 0 {
		return domainerrors.ErrEmptyMessage
	}

	display := text
	if display == "" {
		display = fmt.Sprintf(textVendorOnlyFormat, tags[0].VendorName)
	}

	products := taggedProducts(tags)
	var sendErr error
	s.store.Apply(func(st store.State) []store.Action {
		actions, err := tagActions(st, products, opts.ClearCart)
		if err != nil {
			sendErr = err

			return nil
		}

		return append(actions, store.AddMessage{Message: userText(display)}, store.SetLoading{Loading: true})
	})
	if sendErr != nil {
		return sendErr
	}

	s.mu.Lock()
	s.tags = nil
	s.mu.Unlock()

	defer s.store.Dispatch(store.SetLoading{Loading: false})

	reply, err := s.catalog.SendChatMessage(ctx, display, chatContext(s.store.State(), tags))
	if err != nil {
		s.logger.Warn("[Lifecycle] Chat request failed", "error", err)
		s.store.Dispatch(store.AddMessage{Message: botText(textConnectionTrouble)})

		return nil
	}

	s.handleReply(reply, products)

	return nil
}

// handleReply renders a chat reply. inCart holds the tagged lines the send
// already committed to the cart.
func (s *lifecycleService) handleReply(reply service.ChatReply, inCart []entity.CartItem) {
	switch r := reply.(type) {
	case service.TextReply:
		s.store.Dispatch(store.AddMessage{Message: botText(r.Content)})
	case service.VendorDiscoveryReply:
		s.store.Dispatch(store.AddMessage{Message: botCard("", entity.MessageVendorGrid, entity.VendorGridData{
			CategoryName: r.CategoryName,
			Vendors:      r.Vendors,
		})})
	case service.PendingInventoryReply:
		s.startAvailabilityCheck(r)
	case service.OrderSummaryReply:
		if r.CartSummary {
			s.startCartSummary(r)
		} else {
			s.startDirectSummary(r, inCart)
		}
	default:
		s.logger.Warn("[Lifecycle] Unhandled chat reply", "type", fmt.Sprintf("%T", reply))
	}
}

// startAvailabilityCheck shows the checking card and resolves it after the
// availability delay: out of stock resets the lifecycle, otherwise the summary
// card is shown and the items join the cart.
func (s *lifecycleService) startAvailabilityCheck(r service.PendingInventoryReply) {
	id := uuid.NewString()
	if !s.begin(id, r.Items, nil) {
		return
	}

	s.scheduler.Schedule(id, s.lifecycle.AvailabilityDelay, func() {
		unavailable := s.decider.Chance(s.lifecycle.UnavailableChance)
		summarized := false
		s.store.Apply(func(st store.State) []store.Action {
			if !owns(st, id, entity.StageCheckingAvailability) {
				return nil
			}
			if unavailable {
				s.setReason(id, reasonOutOfStock)

				return []store.Action{
					store.AddMessage{Message: botText(textOutOfStock)},
					store.SetOrderStage{Stage: entity.StageIdle},
				}
			}
			if conflict := itemsConflict(st, r.Items); conflict != nil {
				s.setReason(id, reasonReset)

				return []store.Action{
					store.AddMessage{Message: conflictCard(*conflict)},
					store.SetOrderStage{Stage: entity.StageIdle},
				}
			}

			summarized = true
			actions := []store.Action{
				store.AddMessage{Message: summaryCard(textSummaryReady, r.Items, util.OrderItemsTotal(r.Items), fallbackVendorName)},
				store.SetOrderStage{Stage: entity.StageOrderSummary},
			}
			for _, item := range r.Items {
				actions = append(actions, store.AddToCart{Item: item.CartItem()})
			}

			return actions
		})
		if summarized && len(r.Unmatched) > 0 {
			s.notice(id, unmatchedCatalogNotice(r.Unmatched))
		}
	})
}

// startDirectSummary handles a summary of tagged items: the items join the
// cart right away and the summary card follows the summary delay. Lines the
// send already added from tags are not added twice.
func (s *lifecycleService) startDirectSummary(r service.OrderSummaryReply, inCart []entity.CartItem) {
	id := uuid.NewString()
	pending := slices.Clone(inCart)
	cartActions := make([]store.Action, 0, len(r.Items))
	for _, item := range r.Items {
		line := item.CartItem()
		if i := slices.IndexFunc(pending, line.SameLine); i >= 0 {
			pending = slices.Delete(pending, i, i+1)

			continue
		}
		cartActions = append(cartActions, store.AddToCart{Item: line})
	}
	if !s.begin(id, r.Items, cartActions) {
		return
	}

	s.scheduler.Schedule(id, s.lifecycle.SummaryDelay, func() {
		committed := s.store.Apply(func(st store.State) []store.Action {
			if !owns(st, id, entity.StageCheckingAvailability) {
				return nil
			}

			return []store.Action{
				store.AddMessage{Message: summaryCard(textSummaryReady, r.Items, util.OrderItemsTotal(r.Items), fallbackVendorName)},
				store.SetOrderStage{Stage: entity.StageOrderSummary},
			}
		})
		if committed && len(r.Unmatched) > 0 {
			s.notice(id, unmatchedCatalogNotice(r.Unmatched))
		}
	})
}

// startCartSummary handles the checkout summary of the current cart.
func (s *lifecycleService) startCartSummary(r service.OrderSummaryReply) {
	id := uuid.NewString()
	started := false
	s.store.Apply(func(st store.State) []store.Action {
		if st.ActiveOrderStage.InFlight() || st.ActiveOrderStage.Confirmed() {
			return []store.Action{store.AddMessage{Message: botText(textOrderInProgress)}}
		}

		started = true

		return []store.Action{
			store.AddMessage{Message: botCard(textCheckingAvailability, entity.MessageCheckingAvailability, availabilityData(r.Items))},
			store.SetOrderStage{Stage: entity.StageCheckingAvailability, LifecycleID: id},
		}
	})
	if !started {
		return
	}

	text := r.Content
	if text == "" {
		text = textCartSummary
	}
	total := util.OrderItemsTotal(r.Items)
	if r.Total != nil {
		total = *r.Total
	}

	s.scheduler.Schedule(id, s.lifecycle.SummaryDelay, func() {
		s.store.Apply(func(st store.State) []store.Action {
			if !owns(st, id, entity.StageCheckingAvailability) {
				return nil
			}

			return []store.Action{
				store.AddMessage{Message: summaryCard(text, r.Items, total, multipleShopsName)},
				store.SetOrderStage{Stage: entity.StageOrderSummary},
			}
		})
	})

	if len(r.Unmatched) > 0 {
		vendorName := ""
		if len(r.Items) > 0 {
			vendorName = r.Items[0].VendorName
		}
		s.notice(id, unmatchedVendorNotice(r.Unmatched, vendorName))
	}
}

// begin claims a new lifecycle and shows the checking card in one commit.
// It refuses while another order is with a vendor and turns items from a
// vendor other than the cart's into a conflict card.
func (s *lifecycleService) begin(id string, items []entity.OrderItem, extra []store.Action) bool {
	started := false
	s.store.Apply(func(st store.State) []store.Action {
		if st.ActiveOrderStage.InFlight() || st.ActiveOrderStage.Confirmed() {
			return []store.Action{store.AddMessage{Message: botText(textOrderInProgress)}}
		}
		if conflict := itemsConflict(st, items); conflict != nil {
			return []store.Action{store.AddMessage{Message: conflictCard(*conflict)}}
		}

		started = true
		actions := slices.Clone(extra)

		return append(actions,
			store.AddMessage{Message: botCard(textCheckingAvailability, entity.MessageCheckingAvailability, availabilityData(items))},
			store.SetOrderStage{Stage: entity.StageCheckingAvailability, LifecycleID: id},
		)
	})

	return started
}

func (s *lifecycleService) SelectPaymentMethod(method entity.PaymentMethod) error {
	if !method.Valid() {
		return domainerrors.ErrPaymentMethodRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.method = method

	return nil
}

func (s *lifecycleService) PaymentMethod() entity.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.method
}

// PlaceOrder contacts the vendor of the summarized cart. The vendor answers
// after the contact delay: a rejection resets the lifecycle and keeps the
// cart, an acceptance either opens the UPI screen or confirms a COD order.
func (s *lifecycleService) PlaceOrder(ctx context.Context) error {
	method := s.PaymentMethod()
	if !method.Valid() {
		return domainerrors.ErrPaymentMethodRequired
	}

	var (
		placeErr error
		id       string
	)
	s.store.Apply(func(st store.State) []store.Action {
		switch {
		case st.ActiveOrderStage.InFlight() || st.ActiveOrderStage.Confirmed():
			placeErr = domainerrors.ErrOrderInProgress

			return nil
		case st.ActiveOrderStage != entity.StageOrderSummary:
			placeErr = domainerrors.ErrInvalidStage.WithDetails(string(st.ActiveOrderStage))

			return nil
		case len(st.Cart) == 0:
			placeErr = domainerrors.ErrCartEmpty

			return nil
		}

		id = st.LifecycleID
		if id == "" {
			id = uuid.NewString()
		}

		return []store.Action{
			store.AddMessage{Message: botCard(textContactingVendor, entity.MessageContactingVendor, entity.VendorCardData{
				VendorName:  vendorLabel(st),
				VendorImage: st.ActiveVendorImage,
			})},
			store.SetOrderStage{Stage: entity.StageContactingVendor, LifecycleID: id},
		}
	})
	if placeErr != nil {
		return placeErr
	}

	s.logger.Info("[Lifecycle] Contacting vendor", "lifecycleID", id, "method", string(method))
	s.scheduler.Schedule(id, s.lifecycle.VendorContactDelay, func() {
		s.resolveVendorContact(id, method)
	})

	return nil
}

func (s *lifecycleService) resolveVendorContact(id string, method entity.PaymentMethod) {
	rejected := s.decider.Chance(s.lifecycle.VendorRejectChance)

	var (
		accepted bool
		total    float64
		confirm  *confirmation
	)
	s.store.Apply(func(st store.State) []store.Action {
		if !owns(st, id, entity.StageContactingVendor) {
			return nil
		}
		if rejected {
			s.setReason(id, reasonVendorRejected)

			return []store.Action{
				store.AddMessage{Message: botText(fmt.Sprintf(textVendorRejectedFormat, vendorLabel(st)))},
				store.SetOrderStage{Stage: entity.StageIdle},
			}
		}

		accepted = true
		total = util.CartTotal(st.Cart)
		if method == entity.PaymentMethodUPI {
			return nil
		}

		var actions []store.Action
		confirm, actions = s.confirmActions(st, id)

		return actions
	})

	switch {
	case !accepted:
		return
	case confirm != nil:
		s.afterConfirm(id, confirm)
	default:
		s.mu.Lock()
		s.pending = &pendingPayment{lifecycleID: id, total: total}
		s.mu.Unlock()
		s.navigator.Navigate(service.UPIPaymentRoute{Total: total})
	}
}

// ConfirmUPIPayment completes the payment the UPI screen was opened for.
func (s *lifecycleService) ConfirmUPIPayment(ctx context.Context, appID string) error {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	if pending == nil {
		return domainerrors.ErrNoPendingPayment
	}

	var confirm *confirmation
	s.store.Apply(func(st store.State) []store.Action {
		if !owns(st, pending.lifecycleID, entity.StageContactingVendor) {
			return nil
		}

		paid := botText(fmt.Sprintf(textUPISuccessFormat, util.FormatCurrency(pending.total), entity.UPIAppName(appID)))
		var actions []store.Action
		confirm, actions = s.confirmActions(st, pending.lifecycleID)

		return append([]store.Action{store.AddMessage{Message: paid}}, actions...)
	})
	if confirm == nil {
		return domainerrors.ErrNoPendingPayment.WithDetails("the order moved on before the payment completed")
	}

	s.afterConfirm(pending.lifecycleID, confirm)

	return nil
}

func (s *lifecycleService) PaymentQR(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()
	if pending == nil {
		return nil, domainerrors.ErrNoPendingPayment
	}

	png, err := s.qrcode.GenerateUPIPaymentQR(service.UPIPaymentRequest{
		PayeeVPA:  s.payment.PayeeVPA,
		PayeeName: s.payment.PayeeName,
		Amount:    pending.total,
		Note:      "Order " + util.ShortOrderID(pending.lifecycleID),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

// confirmation carries what the confirm commit decided to the timers it starts.
type confirmation struct {
	orderID    string
	shortID    string
	total      float64
	vendorName string
	itemCount  int
	vendors    int
}

// confirmActions builds the order confirmation commit. It runs inside Apply.
func (s *lifecycleService) confirmActions(st store.State, id string) (*confirmation, []store.Action) {
	cart := slices.Clone(st.Cart)
	vendors := util.UniqueVendors(cart)
	c := &confirmation{
		orderID:    util.FormatOrderID(s.decider.OrderNumber()),
		total:      util.CartTotal(cart),
		vendorName: vendorLabel(st),
		itemCount:  len(cart),
		vendors:    max(len(vendors), 1),
	}
	c.shortID = util.ShortOrderID(c.orderID)

	s.mu.Lock()
	s.runs[id] = &orderRun{orderID: c.orderID, total: c.total, vendorName: c.vendorName}
	s.mu.Unlock()

	return c, []store.Action{
		store.AddOrder{Order: entity.OrderHistoryItem{
			ID:        c.orderID,
			Cart:      cart,
			Total:     c.total,
			Vendors:   vendors,
			Timestamp: time.Now(),
			Status:    entity.OrderStatusActive,
		}},
		store.SetOrderStage{Stage: entity.StageAssigningPartner},
		store.ClearOrderMessages{},
		store.AddMessage{Message: botCard(textOrderConfirmed, entity.MessageOrderConfirmedDetail, entity.OrderConfirmedData{
			OrderID:    c.shortID,
			Items:      cart,
			Total:      c.total,
			VendorName: c.vendorName,
		})},
		store.AddMessage{Message: botCard(textAssigningPartner, entity.MessagePartnerAssignmentFlow, entity.VendorCardData{
			VendorName: c.vendorName,
		})},
	}
}

// afterConfirm navigates to the placed screen and starts the dispatch and
// delivery timers. Both delays are measured from the confirmation.
func (s *lifecycleService) afterConfirm(id string, c *confirmation) {
	s.logger.Info("[Lifecycle] Order confirmed", "lifecycleID", id, "orderID", c.orderID)
	s.navigator.Navigate(service.OrderPlacedRoute{OrderID: c.shortID, VendorCount: c.vendors})

	s.scheduler.Schedule(id, s.lifecycle.DispatchDelay, func() {
		s.store.Apply(func(st store.State) []store.Action {
			if !owns(st, id, entity.StageAssigningPartner) {
				return nil
			}

			return []store.Action{
				store.AddMessage{Message: botCard(textOnTheWay, entity.MessageOrderTracking, entity.TrackingData{
					EstimatedTime: s.lifecycle.EstimatedDeliveryTime,
				})},
				store.SetOrderStage{Stage: entity.StageOutForDelivery},
			}
		})
	})

	s.scheduler.Schedule(id, s.lifecycle.DeliveryDelay, func() {
		delivered := s.store.Apply(func(st store.State) []store.Action {
			if st.LifecycleID != id ||
				(st.ActiveOrderStage != entity.StageAssigningPartner && st.ActiveOrderStage != entity.StageOutForDelivery) {
				return nil
			}
			s.setReason(id, reasonDelivered)

			return []store.Action{
				store.ClearMessages{},
				store.SetOrderStage{Stage: entity.StageDelivered},
				store.AddMessage{Message: botCard(textDelivered, entity.MessagePostDelivery, entity.PostDeliveryData{
					OrderID:    c.shortID,
					Total:      c.total,
					ItemCount:  c.itemCount,
					VendorName: c.vendorName,
				})},
				store.CompleteOrder{OrderID: c.orderID},
				store.SetActiveVendor{Vendor: nil},
				store.ClearCart{},
			}
		})
		if delivered {
			s.mu.Lock()
			s.method = entity.PaymentMethodNone
			s.mu.Unlock()
			s.logger.Info("[Lifecycle] Order delivered", "lifecycleID", id, "orderID", c.orderID)
		}
	})
}

// CancelOrder cancels an active order. Cancelling the order of the running
// lifecycle also stops its timers and clears the cart.
func (s *lifecycleService) CancelOrder(ctx context.Context, orderID string) error {
	owner := s.orderOwner(orderID)

	var cancelErr error
	s.store.Apply(func(st store.State) []store.Action {
		idx := slices.IndexFunc(st.OrderHistory, func(o entity.OrderHistoryItem) bool { return o.ID == orderID })
		if idx < 0 {
			cancelErr = domainerrors.ErrOrderNotFound.WithDetails(orderID)

			return nil
		}
		if st.OrderHistory[idx].Status != entity.OrderStatusActive {
			cancelErr = domainerrors.ErrInvalidStage.WithDetails("order is " + string(st.OrderHistory[idx].Status))

			return nil
		}

		actions := []store.Action{store.CancelOrder{OrderID: orderID}}
		if owner != "" && st.LifecycleID == owner {
			s.setReason(owner, reasonCancelled)
			actions = append(actions, store.ClearCart{})
		}

		return append(actions, store.AddMessage{Message: botText(fmt.Sprintf(textOrderCancelledFormat, util.ShortOrderID(orderID)))})
	})

	return cancelErr
}

// PostDeliveryAction posts the quick reply as a user message. Reorder also
// refills an empty cart with the last delivered order.
func (s *lifecycleService) PostDeliveryAction(action entity.PostDeliveryAction) error {
	prompt, ok := entity.PostDeliveryPrompts[action]
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("unknown quick reply " + string(action))
	}

	s.store.Apply(func(st store.State) []store.Action {
		actions := []store.Action{store.AddMessage{Message: userText(prompt)}}
		if action != entity.ActionReorder || len(st.Cart) > 0 || st.ActiveOrderStage != entity.StageIdle {
			return actions
		}

		idx := slices.IndexFunc(st.OrderHistory, func(o entity.OrderHistoryItem) bool {
			return o.Status == entity.OrderStatusDelivered
		})
		if idx >= 0 {
			actions = append(actions, store.SetCart{Items: st.OrderHistory[idx].Cart})
		}

		return actions
	})

	return nil
}

// Close cancels the timers of the running lifecycle and flushes queued events.
func (s *lifecycleService) Close() {
	s.closeOnce.Do(func() {
		s.unsubscribe()
		if id := s.store.State().LifecycleID; id != "" {
			s.scheduler.Cancel(id)
		}

		s.mu.Lock()
		s.closed = true
		close(s.events)
		s.mu.Unlock()
		<-s.done
	})
}

// observe runs after every commit. A lifecycle that lost the stage has its
// timers and pending payment dropped; every stage change is published.
func (s *lifecycleService) observe(prev, next store.State) {
	released := prev.LifecycleID != "" && prev.LifecycleID != next.LifecycleID
	if released {
		s.scheduler.Cancel(prev.LifecycleID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var ended *orderRun
	if released {
		ended = s.runs[prev.LifecycleID]
		delete(s.runs, prev.LifecycleID)
		if s.pending != nil && s.pending.lifecycleID == prev.LifecycleID {
			s.pending = nil
		}
	}
	if prev.ActiveOrderStage == next.ActiveOrderStage || s.closed {
		return
	}

	event := &service.LifecycleEvent{
		LifecycleID:   next.LifecycleID,
		Stage:         string(next.ActiveOrderStage),
		PreviousStage: string(prev.ActiveOrderStage),
		VendorID:      prev.CartVendorID(),
		VendorName:    prev.ActiveVendorName,
		OccurredAt:    time.Now(),
	}
	if next.ActiveVendorID != "" {
		event.VendorID = next.ActiveVendorID
		event.VendorName = next.ActiveVendorName
	}

	run := s.runs[next.LifecycleID]
	if next.LifecycleID == "" {
		event.LifecycleID = prev.LifecycleID
		event.Reason = reasonReset
		run = ended
	}
	if event.LifecycleID == "" {
		return
	}
	if run != nil {
		event.OrderID = run.orderID
		event.Total = run.total
		if run.reason != "" {
			event.Reason = run.reason
		}
	}

	select {
	case s.events <- event:
	default:
		s.logger.Warn("[Lifecycle] Event buffer full, dropping event", "lifecycleID", event.LifecycleID, "stage", event.Stage)
	}
}

func (s *lifecycleService) publishLoop() {
	defer close(s.done)

	for event := range s.events {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := s.publisher.PublishLifecycleEvent(ctx, event); err != nil {
			s.logger.Warn("[Lifecycle] Failed to publish lifecycle event", "lifecycleID", event.LifecycleID, "stage", event.Stage, "error", err)
		}
		cancel()
	}
}

// notice shows an informational bot message after the notice delay unless
// the lifecycle has ended by then.
func (s *lifecycleService) notice(id, text string) {
	s.scheduler.Schedule(id, s.lifecycle.NoticeDelay, func() {
		s.store.Apply(func(st store.State) []store.Action {
			if st.LifecycleID != id {
				return nil
			}

			return []store.Action{store.AddMessage{Message: botText(text)}}
		})
	})
}

// setReason records why a lifecycle ended. It may run inside Apply.
func (s *lifecycleService) setReason(id, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		run = &orderRun{}
		s.runs[id] = run
	}
	run.reason = reason
}

func (s *lifecycleService) orderOwner(orderID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, run := range s.runs {
		if run.orderID == orderID {
			return id
		}
	}

	return ""
}

// owns reports whether the lifecycle still holds the expected stage.
func owns(st store.State, id string, stage entity.OrderStage) bool {
	return st.LifecycleID == id && st.ActiveOrderStage == stage
}

func vendorLabel(st store.State) string {
	if st.ActiveVendorName != "" {
		return st.ActiveVendorName
	}

	return fallbackVendorName
}

func taggedProducts(tags []entity.Tag) []entity.CartItem {
	var products []entity.CartItem
	for _, tag := range tags {
		if tag.Kind == entity.TagProduct {
			products = append(products, tag.CartItem())
		}
	}

	return products
}

// tagActions adds tagged products to the cart, clearing it first when asked
// and when the products belong to another vendor.
func tagActions(st store.State, products []entity.CartItem, clearCart bool) ([]store.Action, error) {
	if len(products) == 0 {
		return nil, nil
	}
	if st.ActiveOrderStage.InFlight() || st.ActiveOrderStage.Confirmed() {
		return nil, domainerrors.ErrOrderInProgress
	}

	var actions []store.Action
	next := st
	conflicts := slices.ContainsFunc(products, func(item entity.CartItem) bool {
		return store.CheckAddToCart(st, item) != nil
	})
	if clearCart && conflicts {
		actions = append(actions, store.ClearCart{})
		next = store.Reduce(next, store.ClearCart{})
	}

	for _, item := range products {
		if err := store.CheckAddToCart(next, item); err != nil {
			return nil, err
		}
		add := store.AddToCart{Item: item}
		actions = append(actions, add)
		next = store.Reduce(next, add)
	}

	return actions, nil
}

func chatContext(st store.State, tags []entity.Tag) service.ChatContext {
	chatCtx := service.ChatContext{
		Cart:         st.Cart,
		OrderHistory: st.OrderHistory,
	}

	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag.VendorID]; !ok && tag.VendorID != "" {
			seen[tag.VendorID] = struct{}{}
			chatCtx.AttachedVendors = append(chatCtx.AttachedVendors, service.AttachedVendor{ID: tag.VendorID, Name: tag.VendorName})
		}
		if tag.Kind == entity.TagProduct {
			chatCtx.AttachedSKUs = append(chatCtx.AttachedSKUs, service.AttachedSKU{
				ProductID: tag.ProductID,
				Name:      tag.ProductName,
				VendorID:  tag.VendorID,
				Price:     tag.Price,
				Weight:    tag.Weight,
			})
		}
	}

	return chatCtx
}

// itemsConflict reports proposed lines that cannot share the cart with its current contents.
func itemsConflict(st store.State, items []entity.OrderItem) *entity.VendorConflictData {
	if len(items) == 0 {
		return nil
	}

	active := st.ActiveVendor()
	if active == nil && len(st.Cart) > 0 {
		active = &entity.ActiveVendor{ID: st.Cart[0].VendorID, Name: st.Cart[0].Vendor, Image: st.Cart[0].VendorImage}
	}
	if active == nil {
		first := items[0]
		active = &entity.ActiveVendor{ID: first.VendorID, Name: first.VendorName, Image: first.VendorImage}
	}

	for _, item := range items {
		if item.VendorID == active.ID {
			continue
		}

		return &entity.VendorConflictData{
			ActiveVendor:    *active,
			RequestedVendor: entity.ActiveVendor{ID: item.VendorID, Name: item.VendorName, Image: item.VendorImage},
			Items:           items,
		}
	}

	return nil
}

func conflictCard(conflict entity.VendorConflictData) entity.ChatMessage {
	text := fmt.Sprintf(textVendorConflictFormat, conflict.ActiveVendor.Name, conflict.RequestedVendor.Name)

	return newMessage(entity.SenderSystem, text, entity.MessageVendorConflict, conflict)
}

func summaryCard(text string, items []entity.OrderItem, total float64, fallback string) entity.ChatMessage {
	vendorName, vendorImage := itemsVendor(items, fallback)

	return botCard(text, entity.MessageOrderSummary, entity.OrderSummaryData{
		Items:       items,
		Total:       total,
		VendorName:  vendorName,
		VendorImage: vendorImage,
	})
}
