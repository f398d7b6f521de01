// Package console is a line oriented stand-in for the mobile screens. It
// renders the chat transcript from store commits and turns typed commands
// into use case calls.
package console

import (
	"fmt"
	"io"
	"sync"

	"bezgo/internal/domain/service"
	"bezgo/internal/util"
)

// Output serializes writes from the input loop, store listeners and timers.
type Output struct {
	mu sync.Mutex
	w  io.Writer
}

// NewOutput wraps w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Printf writes one formatted line.
func (o *Output) Printf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	fmt.Fprintf(o.w, format+"\n", args...)
}

type navigator struct {
	out *Output
}

// NewNavigator prints the screens the orchestrator navigates to.
func NewNavigator(out *Output) service.Navigator {
	return &navigator{out: out}
}

func (n *navigator) Navigate(route service.Route) {
	switch r := route.(type) {
	case service.UPIPaymentRoute:
		n.out.Printf("== UPI payment: %s. Use /upi <app> to pay or /qr <file> to save the payment QR.", util.FormatCurrency(r.Total))
	case service.OrderPlacedRoute:
		n.out.Printf("== Order placed: #%s from %d shop(s).", r.OrderID, r.VendorCount)
	default:
		n.out.Printf("== %T", route)
	}
}
