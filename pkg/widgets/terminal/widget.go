package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/widget"
)

// Widget drives dialogs through sequential terminal prompts. Dialogs are
// serialized: a second Open waits for the current one to finish, which
// keeps the one-dialog-at-a-time rule without a process-wide singleton.
type Widget struct {
	driver PromptDriver

	mu           sync.Mutex
	noticeActive bool
}

// Option configures the terminal widget.
type Option func(*Widget)

// WithDriver overrides the prompt driver used by the widget. Tests inject
// scripted drivers through this option.
func WithDriver(driver PromptDriver) Option {
	return func(w *Widget) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// New constructs a terminal widget backed by survey prompts.
func New(options ...Option) *Widget {
	w := &Widget{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Open runs the dialog as a prompt session: header, one prompt per field,
// an optional final confirmation, then the pre-confirm hook. Validation
// failures print their messages and restart the field prompts with the
// previous answers as defaults. An interrupt reads as a closed dialog and
// a declined confirmation as a cancelled one.
func (w *Widget) Open(ctx context.Context, cfg widget.Config) (widget.Outcome, error) {
	if w.driver == nil {
		return widget.Outcome{}, ErrNilDriver
	}
	if err := ctx.Err(); err != nil {
		return widget.Outcome{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.printHeader(ctx, cfg); err != nil {
		return widget.Outcome{}, err
	}
	if cfg.OnOpen != nil {
		cfg.OnOpen(ctx)
	}

	if len(cfg.Fields) == 0 {
		return w.confirmOnly(ctx, cfg)
	}
	return w.promptFields(ctx, cfg)
}

func (w *Widget) confirmOnly(ctx context.Context, cfg widget.Config) (widget.Outcome, error) {
	message := cfg.ConfirmLabel
	if message == "" {
		message = "Confirm"
	}
	answer, err := w.driver.Confirm(ctx, ConfirmConfig{Message: message + "?", Default: true})
	if err != nil {
		return closedOnAbort(err)
	}
	if !answer {
		return widget.Cancelled(), nil
	}

	values := field.Values(nil)
	if cfg.PreConfirm != nil {
		values, err = cfg.PreConfirm(ctx, field.NewState(cfg.Fields))
		if err != nil {
			return widget.Outcome{}, err
		}
	}
	return widget.Confirmed(values), nil
}

func (w *Widget) promptFields(ctx context.Context, cfg widget.Config) (widget.Outcome, error) {
	state := field.NewState(cfg.Fields)

	for {
		for _, d := range cfg.Fields {
			if err := w.promptField(ctx, d, state); err != nil {
				return closedOnAbort(err)
			}
		}

		if cfg.ShowCancel {
			submit := cfg.ConfirmLabel
			if submit == "" {
				submit = "Submit"
			}
			answer, err := w.driver.Confirm(ctx, ConfirmConfig{Message: submit + "?", Default: true})
			if err != nil {
				return closedOnAbort(err)
			}
			if !answer {
				return widget.Cancelled(), nil
			}
		}

		if cfg.PreConfirm == nil {
			values, err := defaultValues(cfg.Fields, state)
			if err != nil {
				return widget.Outcome{}, err
			}
			return widget.Confirmed(values), nil
		}

		values, err := cfg.PreConfirm(ctx, state)
		if err == nil {
			return widget.Confirmed(values), nil
		}

		var validationErr *widget.ValidationError
		if !errors.As(err, &validationErr) {
			return widget.Outcome{}, err
		}
		if infoErr := w.driver.Info(ctx, validationErr.Joined()); infoErr != nil {
			return widget.Outcome{}, infoErr
		}
		// loop: re-prompt with the state holding the previous answers
	}
}

func (w *Widget) promptField(ctx context.Context, d field.Descriptor, state *field.State) error {
	current, _ := state.Get(d.ID)
	message := promptMessage(d)

	if d.Disabled {
		return w.driver.Info(ctx, fmt.Sprintf("%s: %s", message, current))
	}

	switch d.Type {
	case field.KindSelect:
		return w.promptSelect(ctx, d, state, current, message)
	case field.KindTextarea:
		value, err := w.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current})
		if err != nil {
			return err
		}
		state.Set(d.ID, value)
		return nil
	case field.KindPassword:
		value, err := w.driver.Input(ctx, InputConfig{Message: message, Password: true})
		if err != nil {
			return err
		}
		state.Set(d.ID, value)
		return nil
	default:
		value, err := w.driver.Input(ctx, InputConfig{
			Message:     message,
			Default:     current,
			Placeholder: d.Placeholder,
		})
		if err != nil {
			return err
		}
		state.Set(d.ID, value)
		return nil
	}
}

func (w *Widget) promptSelect(ctx context.Context, d field.Descriptor, state *field.State, current, message string) error {
	options := make([]string, 0, len(d.Options))
	values := make([]string, 0, len(d.Options))
	defaultIndex := -1
	for _, option := range d.Options {
		if option.Disabled {
			continue
		}
		if option.Value == current {
			defaultIndex = len(options)
		}
		options = append(options, option.Text())
		values = append(values, option.Value)
	}
	if len(options) == 0 {
		return w.driver.Info(ctx, fmt.Sprintf("%s: no options available", message))
	}

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(values) {
		state.Set(d.ID, values[idx])
	}
	return nil
}

// Notice prints the loading text; there is no overlay to animate in a
// terminal session.
func (w *Widget) Notice(ctx context.Context, cfg widget.NoticeConfig) error {
	if w.driver == nil {
		return ErrNilDriver
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.noticeActive = true
	return w.driver.Info(ctx, cfg.Title)
}

// Dismiss ends the current notice. It is a no-op when none is active.
func (w *Widget) Dismiss(ctx context.Context) error {
	if w.driver == nil {
		return ErrNilDriver
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.noticeActive {
		return nil
	}
	w.noticeActive = false
	return w.driver.Info(ctx, "done")
}

func (w *Widget) printHeader(ctx context.Context, cfg widget.Config) error {
	if title := strings.TrimSpace(cfg.Title); title != "" {
		if err := w.driver.Info(ctx, title); err != nil {
			return err
		}
	}
	if lead := strings.TrimSpace(cfg.Lead); lead != "" {
		if err := w.driver.Info(ctx, lead); err != nil {
			return err
		}
	}
	return nil
}

func promptMessage(d field.Descriptor) string {
	if strings.TrimSpace(d.Label) != "" {
		return d.Label
	}
	return d.Name
}

func defaultValues(descriptors []field.Descriptor, state *field.State) (field.Values, error) {
	values := make(field.Values, len(descriptors))
	for _, d := range descriptors {
		raw, _ := state.Get(d.ID)
		if d.Format == nil {
			values[d.ResultKey()] = raw
			continue
		}
		formatted, err := d.Format(raw)
		if err != nil {
			return nil, fmt.Errorf("terminal: format field %q: %w", d.ID, err)
		}
		values[d.ResultKey()] = formatted
	}
	return values, nil
}

func closedOnAbort(err error) (widget.Outcome, error) {
	if errors.Is(err, ErrAborted) {
		return widget.Closed(), nil
	}
	return widget.Outcome{}, err
}

var _ widget.Widget = (*Widget)(nil)
