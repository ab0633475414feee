package prompt

import (
	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/widget"
)

const (
	defaultConfirmLabel = "OK"
	defaultSubmitLabel  = "Submit"
	defaultCancelLabel  = "Cancel"
	defaultLoadingTitle = "Loading..."
	defaultCloseLabel   = "Close"
)

// LoadingOptions configures the dismissable loading notice.
type LoadingOptions struct {
	Title      string
	CloseLabel string
}

// ConfirmOptions configures a yes/cancel dialog.
type ConfirmOptions struct {
	Title        string
	Body         string
	Severity     widget.Severity
	ConfirmLabel string
	CancelLabel  string
	ShowCancel   bool
	ShowClose    bool

	// OnOpen runs once the dialog is visible. Callers that trigger the
	// prompt from a UI event suppress the event's default action before
	// invoking Confirm; that suppression stays on their side of the seam.
	OnOpen func()
}

// InputOptions configures a form-input dialog.
type InputOptions struct {
	Title    string
	Severity widget.Severity

	// Lead is optional intro content rendered before the fields.
	Lead string

	Fields []field.Descriptor
	Rules  []field.Rule

	SubmitLabel string
	CancelLabel string
	ShowClose   bool

	OnOpen func()
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
