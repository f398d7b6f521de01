package service

import (
	"context"
	"time"
)

// LifecycleEvent describes one order stage transition
type LifecycleEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	LifecycleID   string    `json:"lifecycle_id"`
	OrderID       string    `json:"order_id,omitempty"` // Set once the order is confirmed
	Stage         string    `json:"stage"`
	PreviousStage string    `json:"previous_stage"`
	VendorID      string    `json:"vendor_id,omitempty"`
	VendorName    string    `json:"vendor_name,omitempty"`
	Total         float64   `json:"total,omitempty"`
	Reason        string    `json:"reason,omitempty"` // Why the lifecycle was reset, e.g. "vendor_rejected"
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLifecycleEvent publishes an order lifecycle event
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
