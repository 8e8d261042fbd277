package order

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"

	// StatusFailed marks an order whose stock reservation lost its race and
	// was compensated. Only the checkout orchestrator sets it; it is never a
	// legal operator transition.
	StatusFailed Status = "failed"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// transitions lists the allowed operator moves. delivered, cancelled and
// failed are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
	StatusFailed:     {},
}

// ParseStatus validates an operator-supplied status string. "failed" is
// rejected here: it is internal to checkout compensation.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return s, nil
	default:
		return "", fmt.Errorf("unknown status %q", raw)
	}
}

// CanTransitionTo reports whether the operator move s -> target is allowed.
// A same-state move is not listed; callers treat it as an idempotent no-op.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
