package service

import "time"

// Scheduler runs delayed callbacks that can be cancelled by group key.
type Scheduler interface {
	// Schedule runs fn after delay unless the group is cancelled first.
	Schedule(group string, delay time.Duration, fn func())

	// Cancel drops every pending callback of the group.
	Cancel(group string)

	// Stop cancels every pending callback. Later calls to Schedule are ignored.
	Stop()
}

// Decider draws the simulated outcomes of the order lifecycle.
type Decider interface {
	// Chance reports true with probability p.
	Chance(p float64) bool

	// OrderNumber returns a six digit number for a new order id.
	OrderNumber() int
}
