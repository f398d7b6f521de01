package console

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"bezgo/internal/delivery"
	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/errors"
	"bezgo/internal/store"
	"bezgo/internal/usecase"

	"go.uber.org/fx"
)

const helpText = `Commands:
  <text>                          chat with the assistant (tags are sent along)
  /login <phone> <otp> <first> [last]
  /logout
  /catalog [category]             list shops and products
  /tag <productId> <vendorId> [weight]
  /tagv <vendorId>                tag a shop
  /untag <n>   /tags
  /add <productId> <vendorId> [qty]
  /remove <productId> <vendorId> [weight]
  /cart   /clear
  /switch                         clear the cart and retry the refused add or send
  /pay upi|cod   /place   /upi <app>   /qr <file>
  /orders   /cancel <orderId>
  /reorder /support /details
  /theme dark|light [color]   /location <label> <address>
  /help   /quit`

// Console reads commands from its input until EOF or /quit.
type Console struct {
	in         io.Reader
	out        *Output
	store      *store.Store
	lifecycle  usecase.LifecycleUsecase
	cart       usecase.CartUsecase
	session    usecase.SessionUsecase
	shutdowner fx.Shutdowner
	logger     *slog.Logger

	mu      sync.Mutex
	printed map[string]struct{}
	retry   func(ctx context.Context) error
}

// ConsoleParams holds dependencies for the Console, injected by Fx.
type ConsoleParams struct {
	fx.In

	Lc         fx.Lifecycle
	Output     *Output
	Store      *store.Store
	Lifecycle  usecase.LifecycleUsecase
	Cart       usecase.CartUsecase
	Session    usecase.SessionUsecase
	Shutdowner fx.Shutdowner `optional:"true"`
	Logger     *slog.Logger
}

// NewConsole creates the console delivery reading from stdin.
func NewConsole(params ConsoleParams) delivery.Delivery {
	c := New(os.Stdin, params)
	unsubscribe := params.Store.Subscribe(c.render)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			unsubscribe()
			params.Lifecycle.Close()

			return nil
		},
	})

	return c
}

// New creates a console over in. The caller subscribes Render to the store.
func New(in io.Reader, params ConsoleParams) *Console {
	return &Console{
		in:         in,
		out:        params.Output,
		store:      params.Store,
		lifecycle:  params.Lifecycle,
		cart:       params.Cart,
		session:    params.Session,
		shutdowner: params.Shutdowner,
		logger:     params.Logger,
		printed:    make(map[string]struct{}),
	}
}

// Render is the store listener printing new transcript entries and stage changes.
func (c *Console) Render(prev, next store.State) {
	c.render(prev, next)
}

func (c *Console) render(prev, next store.State) {
	if prev.ActiveOrderStage != next.ActiveOrderStage {
		c.out.Printf("-- stage: %s", next.ActiveOrderStage)
	}

	c.mu.Lock()
	var fresh []entity.ChatMessage
	for _, m := range next.Messages {
		if _, ok := c.printed[m.ID]; ok {
			continue
		}
		c.printed[m.ID] = struct{}{}
		fresh = append(fresh, m)
	}
	c.mu.Unlock()

	for _, m := range fresh {
		c.out.Printf("%s", renderMessage(m))
	}
}

// Serve restores the session, loads the catalog and runs the command loop.
func (c *Console) Serve(ctx context.Context) error {
	signedIn, err := c.session.Restore(ctx)
	if err != nil {
		c.logger.Warn("Failed to restore session", slog.Any("error", err))
	}
	if err := c.lifecycle.LoadMarketData(ctx); err != nil {
		c.logger.Warn("Failed to load market data", slog.Any("error", err))
	}
	if signedIn {
		c.lifecycle.Greet()
	} else {
		c.out.Printf("Welcome to bezgo fresh. Sign in with /login <phone> <otp> <first name> [last name].")
	}

	err = c.Run(ctx)
	if c.shutdowner != nil {
		if shutdownErr := c.shutdowner.Shutdown(); shutdownErr != nil {
			c.logger.Warn("Failed to shut down", slog.Any("error", shutdownErr))
		}
	}

	return err
}

// Run executes commands until EOF, /quit or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			return nil
		}
		if err := c.Execute(ctx, line); err != nil {
			c.report(err)
		}
	}

	return errors.WithStack(scanner.Err())
}

// Execute runs one command line.
func (c *Console) Execute(ctx context.Context, line string) error {
	if !strings.HasPrefix(line, "/") {
		return c.send(ctx, line)
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/help":
		c.out.Printf("%s", helpText)
	case "/login":
		return c.login(ctx, args)
	case "/logout":
		return c.session.Logout(ctx)
	case "/catalog":
		c.out.Printf("%s", renderCatalog(c.store.State().MarketData, strings.Join(args, " ")))
	case "/tag":
		return c.tagProduct(args)
	case "/tagv":
		return c.tagVendor(args)
	case "/untag":
		n, err := indexArg(args)
		if err != nil {
			return err
		}
		c.lifecycle.RemoveTag(n - 1)
	case "/tags":
		for i, tag := range c.lifecycle.Tags() {
			c.out.Printf("%d. %s %s %s", i+1, tag.Kind, tag.VendorName, tag.ProductName)
		}
	case "/add":
		return c.add(args)
	case "/remove":
		if len(args) < 2 {
			return usage("/remove <productId> <vendorId> [weight]")
		}
		vendor := c.vendorName(args[1])
		weight := ""
		if len(args) > 2 {
			weight = args[2]
		}
		return c.cart.Remove(args[0], vendor, weight)
	case "/cart":
		summary := c.cart.Summary()
		c.out.Printf("%s", renderCart(summary.Items, summary.Vendor, summary.Total))
	case "/clear":
		c.cart.Clear()
	case "/switch":
		return c.switchVendor(ctx)
	case "/pay":
		if len(args) != 1 {
			return usage("/pay upi|cod")
		}
		return c.lifecycle.SelectPaymentMethod(entity.PaymentMethod(strings.ToLower(args[0])))
	case "/place":
		return c.lifecycle.PlaceOrder(ctx)
	case "/upi":
		app := "upi"
		if len(args) > 0 {
			app = args[0]
		}
		return c.lifecycle.ConfirmUPIPayment(ctx, app)
	case "/qr":
		return c.saveQR(ctx, args)
	case "/orders":
		c.out.Printf("%s", renderOrders(c.store.State().OrderHistory))
	case "/cancel":
		if len(args) != 1 {
			return usage("/cancel <orderId>")
		}
		return c.lifecycle.CancelOrder(ctx, args[0])
	case "/reorder":
		return c.lifecycle.PostDeliveryAction(entity.ActionReorder)
	case "/support":
		return c.lifecycle.PostDeliveryAction(entity.ActionSupport)
	case "/details":
		return c.lifecycle.PostDeliveryAction(entity.ActionViewDetails)
	case "/theme":
		return c.theme(ctx, args)
	case "/location":
		if len(args) < 2 {
			return usage("/location <label> <address>")
		}
		return c.session.SetLocation(strings.Join(args[1:], " "), args[0])
	default:
		return usage("/help")
	}

	return nil
}

func (c *Console) send(ctx context.Context, text string) error {
	err := c.lifecycle.Send(ctx, text, usecase.SendOptions{})
	if errors.Is(err, domainerrors.ErrVendorConflict) {
		c.setRetry(func(ctx context.Context) error {
			return c.lifecycle.Send(ctx, text, usecase.SendOptions{ClearCart: true})
		})
	}

	return err
}

func (c *Console) add(args []string) error {
	if len(args) < 2 {
		return usage("/add <productId> <vendorId> [qty]")
	}
	item, err := c.cartItem(args[0], args[1])
	if err != nil {
		return err
	}
	if len(args) > 2 {
		qty, convErr := strconv.Atoi(args[2])
		if convErr != nil || qty <= 0 {
			return usage("/add <productId> <vendorId> [qty]")
		}
		item.Qty = qty
	}

	err = c.cart.Add(item)
	if errors.Is(err, domainerrors.ErrVendorConflict) {
		c.setRetry(func(context.Context) error { return c.cart.SwitchVendor(item) })
	}

	return err
}

func (c *Console) switchVendor(ctx context.Context) error {
	c.mu.Lock()
	retry := c.retry
	c.retry = nil
	c.mu.Unlock()
	if retry == nil {
		return domainerrors.ErrInvalidStage.WithDetails("nothing to switch")
	}

	return retry(ctx)
}

func (c *Console) setRetry(fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retry = fn
}

func (c *Console) login(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return usage("/login <phone> <otp> <first> [last]")
	}
	if err := c.session.ValidatePhone(args[0]); err != nil {
		return err
	}
	if err := c.session.VerifyOTP(strings.Split(args[1], "")); err != nil {
		return err
	}

	user := &entity.UserData{Phone: args[0], FirstName: args[2]}
	if len(args) > 3 {
		user.LastName = strings.Join(args[3:], " ")
	}
	if err := c.session.CompleteSignup(ctx, user); err != nil {
		return err
	}
	c.lifecycle.Greet()

	return nil
}

func (c *Console) tagProduct(args []string) error {
	if len(args) < 2 {
		return usage("/tag <productId> <vendorId> [weight]")
	}
	item, err := c.cartItem(args[0], args[1])
	if err != nil {
		return err
	}

	tag := entity.Tag{
		Kind:        entity.TagProduct,
		VendorID:    item.VendorID,
		VendorName:  item.Vendor,
		VendorImage: item.VendorImage,
		ProductID:   item.ID,
		ProductName: item.Name,
		Price:       item.Price,
		Image:       item.Image,
	}
	if len(args) > 2 {
		tag.Weight = args[2]
	}
	c.lifecycle.Tag(tag)

	return nil
}

func (c *Console) tagVendor(args []string) error {
	if len(args) != 1 {
		return usage("/tagv <vendorId>")
	}
	vendor, ok := c.store.State().MarketData.VendorByID(args[0])
	if !ok {
		return domainerrors.ErrNotFound.WithDetails("shop " + args[0])
	}
	c.lifecycle.Tag(entity.Tag{Kind: entity.TagVendor, VendorID: vendor.ID, VendorName: vendor.Name, VendorImage: vendor.Image})

	return nil
}

// cartItem prices a catalog product at a vendor.
func (c *Console) cartItem(productID, vendorID string) (entity.CartItem, error) {
	data := c.store.State().MarketData
	product, ok := data.ProductByID(productID)
	if !ok {
		return entity.CartItem{}, domainerrors.ErrNotFound.WithDetails("product " + productID)
	}
	vendor, ok := data.VendorByID(vendorID)
	if !ok {
		return entity.CartItem{}, domainerrors.ErrNotFound.WithDetails("shop " + vendorID)
	}
	price, ok := product.PriceAt(vendor.ID)
	if !ok {
		return entity.CartItem{}, domainerrors.ErrNotFound.WithDetails(product.Name + " at " + vendor.Name)
	}

	return entity.CartItem{
		ID:          product.ID,
		Name:        product.Name,
		Price:       price,
		Qty:         1,
		Weight:      "1kg",
		Vendor:      vendor.Name,
		VendorID:    vendor.ID,
		VendorImage: vendor.Image,
		Image:       product.Image,
	}, nil
}

func (c *Console) vendorName(vendorID string) string {
	if vendor, ok := c.store.State().MarketData.VendorByID(vendorID); ok {
		return vendor.Name
	}

	return vendorID
}

func (c *Console) saveQR(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("/qr <file>")
	}
	png, err := c.lifecycle.PaymentQR(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], png, 0o600); err != nil {
		return errors.Wrap(err, "failed to write payment QR")
	}
	c.out.Printf("Saved payment QR to %s", args[0])

	return nil
}

func (c *Console) theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("/theme dark|light [color]")
	}

	var isDark *bool
	switch args[0] {
	case "dark", "light":
		dark := args[0] == "dark"
		isDark = &dark
	default:
		return usage("/theme dark|light [color]")
	}

	var color *string
	if len(args) > 1 {
		color = &args[1]
	}

	return c.session.SetTheme(ctx, isDark, color)
}

func (c *Console) report(err error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.out.Printf("! %s", appErr.Message())

		return
	}
	c.logger.Warn("Command failed", slog.Any("error", err))
	c.out.Printf("! %v", err)
}

func indexArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, usage("/untag <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, usage("/untag <n>")
	}

	return n, nil
}

func usage(text string) error {
	return domainerrors.ErrValidationFailed.WithDetails("usage: " + text)
}
