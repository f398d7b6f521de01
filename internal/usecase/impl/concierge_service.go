package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"bezgo/config"
	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/domain/service"
	"bezgo/internal/usecase"
	"bezgo/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

var (
	phraseSeparator = regexp.MustCompile(`\s*(?:,|;|\band\b|&|\n)\s*`)
	weightPattern   = regexp.MustCompile(`^\d+(?:\.\d+)?\s*(?:kg|g|l|ml)$`)
	qtyPattern      = regexp.MustCompile(`^\d+$`)
)

// fillerWords are dropped before deciding whether a phrase names an item.
var fillerWords = map[string]struct{}{
	"i": {}, "need": {}, "want": {}, "some": {}, "please": {}, "get": {}, "me": {},
	"order": {}, "buy": {}, "add": {}, "also": {}, "a": {}, "an": {}, "the": {},
	"of": {}, "from": {}, "to": {}, "my": {}, "cart": {}, "items": {}, "can": {},
	"you": {}, "fresh": {}, "x": {},
}

var checkoutWords = []string{"checkout", "check out", "place order", "place my order", "confirm order", "my cart"}

var greetingWords = []string{"hi", "hello", "hey", "namaste"}

// conciergeService is the mock catalog and chat backend. It answers with the
// same reply shapes the real service uses, matching items by name.
type conciergeService struct {
	dataset service.Dataset
	origin  orb.Point
	logger  *slog.Logger
}

// ConciergeServiceParams holds dependencies for ConciergeService, injected by Fx.
type ConciergeServiceParams struct {
	fx.In

	Dataset service.Dataset
	Config  *config.Config
	Logger  *slog.Logger
}

// NewConciergeService creates the mock backend use case.
func NewConciergeService(params ConciergeServiceParams) usecase.ConciergeUsecase {
	var origin orb.Point
	if params.Config != nil && params.Config.Market != nil {
		origin = orb.Point{params.Config.Market.OriginLng, params.Config.Market.OriginLat}
	}

	return &conciergeService{
		dataset: params.Dataset,
		origin:  origin,
		logger:  params.Logger,
	}
}

// MarketData returns the catalog with distance labels measured from the
// configured origin. Vendors without a known location keep their label.
func (s *conciergeService) MarketData(ctx context.Context) (*entity.MarketData, error) {
	data := s.dataset.MarketData()
	if s.origin == (orb.Point{}) {
		return data, nil
	}

	for i, v := range data.Vendors {
		location, ok := s.dataset.VendorLocation(v.ID)
		if !ok {
			continue
		}
		data.Vendors[i].Distance = util.FormatDistance(geo.DistanceHaversine(s.origin, location) / 1000)
	}

	return data, nil
}

// Chat answers a message. Tagged products give a direct order summary, a
// checkout request gives a cart summary, a category gives vendor discovery and
// named products give pending inventory; anything else is plain text.
func (s *conciergeService) Chat(ctx context.Context, req *usecase.ChatRequest) (*usecase.ChatResponse, error) {
	if req == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing request body")
	}

	data, err := s.MarketData(ctx)
	if err != nil {
		return nil, err
	}

	message := strings.ToLower(strings.TrimSpace(req.Message))
	chatCtx := req.Context

	if len(chatCtx.AttachedSKUs) > 0 {
		return s.taggedSummary(data, chatCtx.AttachedSKUs), nil
	}

	if containsAny(message, checkoutWords...) {
		if len(chatCtx.Cart) == 0 {
			return textResponse("Your cart is empty. Tell me what you need and I'll find it."), nil
		}

		return cartSummaryResponse(chatCtx.Cart), nil
	}

	vendorID := preferredVendor(chatCtx)
	items, unmatched := matchItems(data, message, vendorID)
	if len(items) > 0 {
		return &usecase.ChatResponse{
			Type:           service.ReplyPendingInventory,
			Content:        fmt.Sprintf("Let me check if %s has everything.", items[0].VendorName),
			OrderItems:     items,
			UnmatchedItems: unmatched,
		}, nil
	}

	if category, ok := matchCategory(data, message); ok {
		return &usecase.ChatResponse{
			Type:         service.ReplyVendorDiscovery,
			CategoryName: category,
			Vendors:      vendorsFor(data, category),
		}, nil
	}

	if len(chatCtx.AttachedVendors) > 0 {
		return vendorMenu(data, chatCtx.AttachedVendors[0]), nil
	}

	if len(unmatched) > 0 && !isGreeting(message) {
		return textResponse(fmt.Sprintf("Sorry, I couldn't find %s in any shop nearby.", strings.Join(unmatched, ", "))), nil
	}

	return &usecase.ChatResponse{
		Type:    service.ReplySmartReply,
		Content: "I can help you order groceries from local shops. Try \"2kg tomato and onion\" or ask for fish.",
	}, nil
}

// taggedSummary prices every tagged product at its vendor.
func (s *conciergeService) taggedSummary(data *entity.MarketData, skus []service.AttachedSKU) *usecase.ChatResponse {
	resp := &usecase.ChatResponse{Type: service.ReplyOrderSummary}
	for _, sku := range skus {
		product, ok := data.ProductByID(sku.ProductID)
		vendor, vendorOK := data.VendorByID(sku.VendorID)
		if !ok || !vendorOK {
			resp.UnmatchedItems = append(resp.UnmatchedItems, firstNonBlank(sku.Name, sku.ProductID))

			continue
		}

		price, ok := product.PriceAt(vendor.ID)
		if !ok {
			resp.UnmatchedItems = append(resp.UnmatchedItems, product.Name)

			continue
		}
		weight := sku.Weight
		if weight == "" {
			weight = "1kg"
		}
		resp.OrderItems = append(resp.OrderItems, catalogItem(product, vendor, price, weight, 1))
	}

	if len(resp.OrderItems) == 0 {
		return textResponse("Sorry, none of the tagged items are available right now.")
	}
	total := util.OrderItemsTotal(resp.OrderItems)
	resp.Total = &total

	return resp
}

func cartSummaryResponse(cart []entity.CartItem) *usecase.ChatResponse {
	total := util.CartTotal(cart)

	return &usecase.ChatResponse{
		Type:        service.ReplyOrderSummary,
		Content:     "Here's your cart. Pick a payment method to place the order.",
		CartSummary: true,
		Items:       cart,
		Total:       &total,
	}
}

func vendorMenu(data *entity.MarketData, attached service.AttachedVendor) *usecase.ChatResponse {
	var names []string
	for _, p := range data.Products {
		if _, ok := p.PriceAt(attached.ID); ok {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return textResponse(fmt.Sprintf("%s has nothing listed right now.", firstNonBlank(attached.Name, attached.ID)))
	}

	return textResponse(fmt.Sprintf("%s has %s. What would you like?", firstNonBlank(attached.Name, attached.ID), strings.Join(names, ", ")))
}

// preferredVendor is the vendor the user already committed to: an attached
// vendor first, then the vendor of the cart.
func preferredVendor(chatCtx service.ChatContext) string {
	if len(chatCtx.AttachedVendors) > 0 {
		return chatCtx.AttachedVendors[0].ID
	}
	if len(chatCtx.Cart) > 0 {
		return chatCtx.Cart[0].VendorID
	}

	return ""
}

type itemRequest struct {
	product entity.Product
	weight  string
	qty     int
}

// matchItems splits the message into phrases and matches each to a product.
// All items come from one vendor: the preferred one, or else the cheapest
// vendor of the first matched product. Phrases that name nothing, or products
// that vendor does not stock, are reported as unmatched.
func matchItems(data *entity.MarketData, message, vendorID string) ([]entity.OrderItem, []string) {
	var (
		requests  []itemRequest
		unmatched []string
	)
	for _, phrase := range phraseSeparator.Split(message, -1) {
		req, rest, ok := parsePhrase(data, phrase)
		if ok {
			requests = append(requests, req)

			continue
		}
		if rest != "" {
			unmatched = append(unmatched, rest)
		}
	}
	if len(requests) == 0 {
		return nil, unmatched
	}

	if vendorID == "" {
		vendorID = cheapestVendor(requests[0].product)
	}
	vendor, ok := data.VendorByID(vendorID)
	if !ok {
		for _, r := range requests {
			unmatched = append(unmatched, r.product.Name)
		}

		return nil, unmatched
	}

	var items []entity.OrderItem
	for _, r := range requests {
		price, ok := r.product.PriceAt(vendor.ID)
		if !ok {
			unmatched = append(unmatched, r.product.Name)

			continue
		}
		items = append(items, catalogItem(r.product, vendor, price, r.weight, r.qty))
	}

	return items, unmatched
}

// parsePhrase finds the product named in a phrase along with its weight and
// quantity. When nothing matches it returns the meaningful words left over.
func parsePhrase(data *entity.MarketData, phrase string) (itemRequest, string, bool) {
	req := itemRequest{weight: "1kg", qty: 1}
	var words []string
	fields := strings.Fields(strings.Trim(phrase, ".!?"))
	for i := 0; i < len(fields); i++ {
		word := fields[i]
		// "2 kg" is one weight
		if i+1 < len(fields) && qtyPattern.MatchString(word) && weightPattern.MatchString(word+fields[i+1]) {
			req.weight = word + fields[i+1]
			i++

			continue
		}
		switch {
		case weightPattern.MatchString(word):
			req.weight = word
		case qtyPattern.MatchString(word):
			if n, err := strconv.Atoi(word); err == nil && n > 0 {
				req.qty = n
			}
		default:
			if _, filler := fillerWords[word]; !filler {
				words = append(words, word)
			}
		}
	}

	rest := strings.Join(words, " ")
	for _, p := range data.Products {
		name := strings.ToLower(p.Name)
		if slices.ContainsFunc(words, func(w string) bool { return w == name || w == name+"s" || w == name+"es" }) {
			req.product = p

			return req, rest, true
		}
	}

	return req, rest, false
}

func cheapestVendor(p entity.Product) string {
	best := ""
	for vendorID, price := range p.Prices {
		if best == "" || price < p.Prices[best] || (price == p.Prices[best] && vendorID < best) {
			best = vendorID
		}
	}

	return best
}

func matchCategory(data *entity.MarketData, message string) (string, bool) {
	words := strings.FieldsFunc(message, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, p := range data.Products {
		category := strings.ToLower(p.Category)
		if slices.ContainsFunc(words, func(w string) bool { return w == category || w+"s" == category }) {
			return p.Category, true
		}
	}

	return "", false
}

// vendorsFor returns the vendors stocking the category, best rated first.
func vendorsFor(data *entity.MarketData, category string) []entity.Vendor {
	stocked := make(map[string]struct{})
	for _, p := range data.Products {
		if p.Category != category {
			continue
		}
		for vendorID := range p.Prices {
			stocked[vendorID] = struct{}{}
		}
	}

	vendors := make([]entity.Vendor, 0, len(stocked))
	for _, v := range data.Vendors {
		if _, ok := stocked[v.ID]; ok {
			vendors = append(vendors, v)
		}
	}
	slices.SortStableFunc(vendors, func(a, b entity.Vendor) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		default:
			return 0
		}
	})

	return vendors
}

func catalogItem(p entity.Product, v entity.Vendor, price float64, weight string, qty int) entity.OrderItem {
	return entity.OrderItem{
		ProductID:    p.ID,
		ProductName:  p.Name,
		Weight:       weight,
		VendorID:     v.ID,
		VendorName:   v.Name,
		VendorImage:  v.Image,
		ProductPrice: price,
		ProductImage: p.Image,
		Qty:          qty,
	}
}

func textResponse(content string) *usecase.ChatResponse {
	return &usecase.ChatResponse{Type: service.ReplyText, Content: content}
}

func isGreeting(message string) bool {
	for _, word := range strings.Fields(message) {
		if slices.Contains(greetingWords, strings.Trim(word, "!.,")) {
			return true
		}
	}

	return false
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}

	return false
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
