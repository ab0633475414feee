package widget

import "strings"

// ValidationError carries the messages a pre-confirm hook collected. A
// widget receiving one from its hook must keep the dialog open, surface the
// joined messages, and wait for a corrected resubmission.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Messages) == 0 {
		return "widget: validation failed"
	}
	return "widget: validation failed: " + strings.Join(e.Messages, "; ")
}

// Joined renders the messages the way widgets surface them in a dialog,
// one per line.
func (e *ValidationError) Joined() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Messages, "\n")
}
