package terminal

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C). The widget
	// folds it into a cancelled outcome rather than returning it.
	ErrAborted = errors.New("terminal: aborted")
	// ErrNilDriver is returned when the widget is constructed without a
	// usable prompt driver.
	ErrNilDriver = errors.New("terminal: prompt driver is nil")
)
