package contract

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusFunded         Status = "FUNDED"
	StatusCompleted      Status = "COMPLETED"
)

var (
	ErrNoContract      = errors.New("no contract exists for this application")
	ErrAlreadyReleased = errors.New("contract has already been released")
)

type Contract struct {
	ID            string    `json:"id"`
	GigID         string    `json:"gigId,omitempty"`
	ApplicationID string    `json:"applicationId,omitempty"`
	AgreedAmount  float64   `json:"agreedAmount,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// State is the escrow lifecycle seen from the client. The backend reports a
// status string; the state collapses it into the three positions the UI has
// to distinguish so actions are gated on a variant, not on ad hoc nil checks.
type State int

const (
	StateNone State = iota
	StateFunded
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateFunded:
		return "funded"
	case StateReleased:
		return "released"
	default:
		return "none"
	}
}

// StateOf maps a fetched contract (nil when the backend reported none) to its
// escrow state. Unknown status strings are treated as funded: the contract
// exists and has not been released, so release stays available and the
// backend remains the authority on whether it goes through.
func StateOf(c *Contract) State {
	if c == nil {
		return StateNone
	}
	if c.Status == StatusCompleted {
		return StateReleased
	}
	return StateFunded
}

// Releasable reports whether a release may be attempted against the fetched
// contract. A stale or already-completed contract fails locally instead of
// round-tripping a request the backend would reject.
func Releasable(c *Contract) error {
	switch StateOf(c) {
	case StateNone:
		return ErrNoContract
	case StateReleased:
		return ErrAlreadyReleased
	default:
		return nil
	}
}
