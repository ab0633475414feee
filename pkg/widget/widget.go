package widget

import (
	"context"

	"github.com/goliatone/go-dialog/pkg/field"
)

// Severity tags a dialog so widgets can pick matching chrome (an icon, an
// accent class). Widgets are free to ignore it.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityQuestion Severity = "question"
)

// PreConfirm runs when the user confirms a dialog, before the widget
// resolves. Returning a *ValidationError keeps the dialog open so the user
// can correct input and resubmit; any other error aborts the dialog. On
// success the returned values become the outcome's Values.
type PreConfirm func(ctx context.Context, state *field.State) (field.Values, error)

// Config describes one modal dialog. Fields is empty for plain
// confirmation dialogs.
type Config struct {
	Title    string
	Severity Severity

	// Lead is optional intro content shown before any fields. HTML widgets
	// sanitize it before rendering.
	Lead string

	Fields []field.Descriptor

	ConfirmLabel string
	CancelLabel  string
	ShowCancel   bool
	ShowClose    bool

	// AutoFocus names the field ID to focus when the dialog opens. The
	// prompt service sets it to the first rendered descriptor.
	AutoFocus string

	// OnOpen runs once the dialog is visible.
	OnOpen func(ctx context.Context)

	PreConfirm PreConfirm
}

// NoticeConfig describes a dismissable loading overlay.
type NoticeConfig struct {
	Title      string
	CloseLabel string
	Severity   Severity
}

// Widget is the dialog collaborator every prompt operation runs against.
// Implementations own the process-wide one-dialog-at-a-time discipline;
// injecting the handle keeps operations testable with doubles.
type Widget interface {
	// Open shows a modal dialog and blocks until the user confirms,
	// cancels, or closes it, or ctx is done. Dismissal is an Outcome, not
	// an error.
	Open(ctx context.Context, cfg Config) (Outcome, error)

	// Notice shows a loading overlay and returns once it is visible.
	Notice(ctx context.Context, cfg NoticeConfig) error

	// Dismiss removes the current overlay or dialog. It is a no-op when
	// nothing is open.
	Dismiss(ctx context.Context) error
}
