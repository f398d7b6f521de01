package usecase

import (
	"context"

	"bezgo/internal/domain/entity"
)

// SendOptions tunes Send.
type SendOptions struct {
	// ClearCart empties the cart before adding tagged products from another vendor.
	ClearCart bool
}

// LifecycleUsecase drives the chat and the order lifecycle.
type LifecycleUsecase interface {
	LoadMarketData(ctx context.Context) error
	// Greet adds the welcome message when the transcript is empty and a user is signed in.
	Greet() bool

	Tag(tag entity.Tag)
	RemoveTag(index int)
	Tags() []entity.Tag

	// Send posts the staged tags and text as one user message and handles the reply.
	Send(ctx context.Context, text string, opts SendOptions) error

	SelectPaymentMethod(method entity.PaymentMethod) error
	PaymentMethod() entity.PaymentMethod
	PlaceOrder(ctx context.Context) error
	ConfirmUPIPayment(ctx context.Context, appID string) error
	// PaymentQR renders the QR of the payment waiting for confirmation.
	PaymentQR(ctx context.Context) ([]byte, error)
	CancelOrder(ctx context.Context, orderID string) error
	PostDeliveryAction(action entity.PostDeliveryAction) error

	// Close cancels every pending lifecycle timer.
	Close()
}
