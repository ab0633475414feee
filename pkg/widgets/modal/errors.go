package modal

import "errors"

var (
	// ErrDialogOpen is returned when Open is called while another dialog is
	// already active. The modal surface is a singleton; callers must wait
	// for the current dialog to resolve.
	ErrDialogOpen = errors.New("modal: a dialog is already open")
	// ErrNoDialog is returned when Submit, Cancel, or Close arrives with no
	// dialog awaiting an action.
	ErrNoDialog = errors.New("modal: no dialog is open")
	// ErrNoPresenter is returned when the widget has no way to show markup.
	ErrNoPresenter = errors.New("modal: presenter is required")
)
