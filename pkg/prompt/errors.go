package prompt

import "errors"

var (
	// ErrNoValidInputs signals that every supplied descriptor was missing
	// its ID or Name, so there is nothing to prompt for. The dialog is
	// never opened.
	ErrNoValidInputs = errors.New("prompt: no valid input descriptors")

	// ErrNoWidget signals a service constructed without a dialog widget.
	ErrNoWidget = errors.New("prompt: dialog widget is required")
)
