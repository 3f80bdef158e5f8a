package order

import (
	"fmt"
	"strings"

	"grabgo/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> In Progress ──> Delivered
//	   │             │
//	   └─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Reset moves any status back to
// Pending; it is an administrator override, not an edge of the graph.
type Status int

const (
	// UnknownStatus is the zero value and never valid.
	UnknownStatus Status = iota

	// Pending is the initial status of every new order.
	Pending

	// InProgress means a rider has picked the errand up.
	InProgress

	// Delivered is terminal: the errand is complete.
	Delivered

	// Cancelled is terminal: the errand will not be run.
	Cancelled
)

// getStatusStrings returns the persisted label of every valid status.
// "In Progress" keeps the spelling used by existing stored orders.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "In Progress",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus maps a label back to a Status. Matching ignores case, spaces,
// underscores and dashes, so "In Progress", "InProgress" and "in_progress"
// are all accepted.
func ParseStatus(s string) (Status, error) {
	key := normalizeLabel(s)
	for status, label := range getStatusStrings() {
		if normalizeLabel(label) == key {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the value is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted label, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the forward workflow has ended.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Start moves Pending to In Progress.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}
	return InProgress, nil
}

// Deliver moves In Progress to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InProgress {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel moves Pending or In Progress to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != InProgress {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}

// Reset returns any valid status to Pending.
func (s Status) Reset() (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, err
	}
	return Pending, nil
}

// TransitionTo dispatches to the method that reaches target.
//
// A target of Pending is always treated as a reset.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Pending:
		return s.Reset()
	case InProgress:
		return s.Start()
	case Delivered:
		return s.Deliver()
	case Cancelled:
		return s.Cancel()
	case UnknownStatus:
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%d is not a valid target status", target))
}

func normalizeLabel(s string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}
