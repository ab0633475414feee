package widget

import "github.com/goliatone/go-dialog/pkg/field"

// Status is the explicit tri-state replacement for dismissal flags: callers
// branch on a value instead of catching a sentinel payload.
type Status int

const (
	// StatusClosed means the dialog went away without user action: the
	// close control, an escape, or the hosting context ending.
	StatusClosed Status = iota
	// StatusCancelled means the user picked the cancel affordance.
	StatusCancelled
	// StatusConfirmed means the user confirmed and the pre-confirm hook,
	// when present, accepted the submission.
	StatusConfirmed
)

func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "confirmed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "closed"
	}
}

// Outcome is how a dialog ended. Values is populated only on confirmation.
type Outcome struct {
	Status Status
	Values field.Values
}

// Confirmed reports whether the dialog resolved with a confirmation. A
// confirmed outcome counts even when the collected values are empty; the
// decision rides on the status, not on value truthiness.
func (o Outcome) Confirmed() bool {
	return o.Status == StatusConfirmed
}

// Dismissed reports whether the dialog was cancelled or closed.
func (o Outcome) Dismissed() bool {
	return !o.Confirmed()
}

// Confirmed builds a confirmed outcome carrying the aggregated values.
func Confirmed(values field.Values) Outcome {
	return Outcome{Status: StatusConfirmed, Values: values}
}

// Cancelled builds a cancelled outcome.
func Cancelled() Outcome {
	return Outcome{Status: StatusCancelled}
}

// Closed builds a closed-without-action outcome.
func Closed() Outcome {
	return Outcome{Status: StatusClosed}
}
