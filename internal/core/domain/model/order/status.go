package order

import (
	"errors"
	"fmt"

	"workify/internal/pkg/errs"
)

var (
	// ErrInvalidStatus is the cause when a requested status is not one of the four known values.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrIllegalTransition is the cause when the requested status is not reachable
	// from the current one.
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Open ──────> InProgress ──────> Completed
//	  │              │
//	  └──> Cancelled <┘
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status; workers may apply while the order is open.
	Open

	// InProgress indicates an application was accepted and work is underway.
	InProgress

	// Completed indicates the employer marked the work as done. Terminal.
	Completed

	// Cancelled indicates the employer withdrew the order. Terminal.
	Cancelled
)

// getStatusStrings returns the wire and storage names of every valid status.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "open",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the adjacency list of the status state machine.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no outgoing transitions
	return map[Status][]Status{
		Open:       {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// ParseStatus converts the storage or wire name of a status into a Status.
//
// Returns:
//   - the Status for "open", "in_progress", "completed" or "cancelled"
//   - an errs.ValueIsInvalidError caused by ErrInvalidStatus for anything else
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%w: %q is not one of open, in_progress, completed, cancelled", ErrInvalidStatus, s),
	)
}

// Validate checks if the Status value is one of the four known statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%w: %d is not a valid status", ErrInvalidStatus, s),
		)
	}
	return nil
}

// String returns the storage name of the status, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether next is adjacent to s in the state machine.
// A status is never adjacent to itself.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s in one step.
func (s Status) AllowedTransitions() []Status {
	allowed := getTransitions()[s]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

// TransitionTo validates the move from s to next.
//
// Returns:
//   - (next, nil) when next is adjacent to s
//   - (Unknown, error caused by ErrInvalidStatus) when next is not a known status
//   - (Unknown, error caused by ErrIllegalTransition) otherwise
//
// Example:
//
//	newStatus, err := order.Open.TransitionTo(order.Completed)
//	// errors.Is(err, order.ErrIllegalTransition) == true
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%w: cannot transition from %q to %q, valid transitions: %v",
				ErrIllegalTransition, s.String(), next.String(), s.AllowedTransitions()),
		)
	}

	return next, nil
}
