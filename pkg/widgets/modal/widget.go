package modal

import (
	"context"
	"errors"
	"sync"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/markup"
	"github.com/goliatone/go-dialog/pkg/widget"
)

// Presenter shows (or clears, when handed an empty string) the widget's
// markup inside the host page. An HTTP layer typically writes the fragment
// into its response or pushes it over a live connection.
type Presenter func(ctx context.Context, markup string) error

type actionKind int

const (
	actionConfirm actionKind = iota
	actionCancel
	actionClose
)

type action struct {
	kind   actionKind
	values map[string]string
}

// Widget renders dialogs as HTML fragments and resolves them from actions
// the host application relays back through Submit, Cancel, and Close. Only
// one dialog may be open at a time.
type Widget struct {
	presenter      Presenter
	sanitizer      *bluemonday.Policy
	theme          *theme.RendererConfig
	templates      markup.TemplateRenderer
	chromeTemplate string

	mu         sync.Mutex
	actions    chan action
	noticeOpen bool
}

// Option configures the modal widget.
type Option func(*Widget)

// WithPresenter sets the function that delivers rendered markup to the
// host page.
func WithPresenter(presenter Presenter) Option {
	return func(w *Widget) {
		w.presenter = presenter
	}
}

// WithSanitizer overrides the bluemonday policy applied to lead content.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(w *Widget) {
		if policy != nil {
			w.sanitizer = policy
		}
	}
}

// WithTheme supplies a resolved go-theme configuration; its CSS variables
// are emitted ahead of the dialog chrome.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(w *Widget) {
		w.theme = cfg
	}
}

// WithChromeTemplate renders the dialog shell through the given template
// instead of the built-in markup builder. Field blocks are still produced
// by the widget and handed to the template pre-rendered.
func WithChromeTemplate(templates markup.TemplateRenderer, name string) Option {
	return func(w *Widget) {
		w.templates = templates
		w.chromeTemplate = name
	}
}

// New constructs a modal widget.
func New(options ...Option) *Widget {
	w := &Widget{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Open renders the dialog and blocks until a relayed action resolves it or
// ctx is done. A confirm action runs the pre-confirm hook; validation
// failures re-render the dialog with the messages and keep waiting.
func (w *Widget) Open(ctx context.Context, cfg widget.Config) (widget.Outcome, error) {
	if w.presenter == nil {
		return widget.Outcome{}, ErrNoPresenter
	}
	if err := ctx.Err(); err != nil {
		return widget.Outcome{}, err
	}

	actions, err := w.acquire()
	if err != nil {
		return widget.Outcome{}, err
	}
	defer w.release()

	state := field.NewState(cfg.Fields)
	locked := lockedFieldIDs(cfg.Fields)

	if err := w.present(ctx, view{cfg: cfg}); err != nil {
		return widget.Outcome{}, err
	}
	if cfg.OnOpen != nil {
		cfg.OnOpen(ctx)
	}

	for {
		var act action
		select {
		case <-ctx.Done():
			w.clear(ctx)
			return widget.Outcome{}, ctx.Err()
		case act = <-actions:
		}

		switch act.kind {
		case actionCancel:
			w.clear(ctx)
			return widget.Cancelled(), nil
		case actionClose:
			w.clear(ctx)
			return widget.Closed(), nil
		}

		for id, value := range act.values {
			if _, ok := state.Get(id); !ok {
				continue
			}
			if _, isLocked := locked[id]; isLocked {
				continue
			}
			state.Set(id, value)
		}

		if cfg.PreConfirm == nil {
			w.clear(ctx)
			return widget.Confirmed(nil), nil
		}

		values, hookErr := cfg.PreConfirm(ctx, state)
		if hookErr == nil {
			w.clear(ctx)
			return widget.Confirmed(values), nil
		}

		var validationErr *widget.ValidationError
		if !errors.As(hookErr, &validationErr) {
			w.clear(ctx)
			return widget.Outcome{}, hookErr
		}

		refreshed := refreshConfig(cfg, state)
		if err := w.present(ctx, view{cfg: refreshed, messages: validationErr.Messages}); err != nil {
			return widget.Outcome{}, err
		}
	}
}

// Submit relays a confirm action carrying the control values keyed by
// field ID. Unknown and disabled fields are ignored.
func (w *Widget) Submit(values map[string]string) error {
	return w.send(action{kind: actionConfirm, values: values})
}

// Cancel relays the cancel affordance.
func (w *Widget) Cancel() error {
	return w.send(action{kind: actionCancel})
}

// Close relays the close-without-action affordance.
func (w *Widget) Close() error {
	return w.send(action{kind: actionClose})
}

// Notice renders the loading overlay fragment.
func (w *Widget) Notice(ctx context.Context, cfg widget.NoticeConfig) error {
	if w.presenter == nil {
		return ErrNoPresenter
	}
	w.mu.Lock()
	w.noticeOpen = true
	w.mu.Unlock()
	return w.presenter(ctx, buildNoticeMarkup(cfg))
}

// Dismiss clears the current overlay: an open notice is removed, an open
// dialog resolves as closed, and with neither it is a no-op.
func (w *Widget) Dismiss(ctx context.Context) error {
	w.mu.Lock()
	if w.noticeOpen {
		w.noticeOpen = false
		w.mu.Unlock()
		if w.presenter == nil {
			return ErrNoPresenter
		}
		return w.presenter(ctx, "")
	}
	dialogOpen := w.actions != nil
	w.mu.Unlock()

	if dialogOpen {
		return w.Close()
	}
	return nil
}

func (w *Widget) acquire() (chan action, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.actions != nil {
		return nil, ErrDialogOpen
	}
	w.actions = make(chan action, 1)
	return w.actions, nil
}

func (w *Widget) release() {
	w.mu.Lock()
	w.actions = nil
	w.mu.Unlock()
}

func (w *Widget) send(act action) error {
	w.mu.Lock()
	actions := w.actions
	w.mu.Unlock()
	if actions == nil {
		return ErrNoDialog
	}
	select {
	case actions <- act:
		return nil
	default:
		return ErrNoDialog
	}
}

func (w *Widget) present(ctx context.Context, v view) error {
	rendered, err := w.renderDialog(v)
	if err != nil {
		return err
	}
	return w.presenter(ctx, rendered)
}

// clear removes the dialog fragment; best effort, the outcome stands
// regardless.
func (w *Widget) clear(ctx context.Context) {
	_ = w.presenter(ctx, "")
}

// refreshConfig carries the user's submitted values into the re-rendered
// fields so a validation failure does not wipe their input.
func refreshConfig(cfg widget.Config, state *field.State) widget.Config {
	refreshed := cfg
	refreshed.Fields = make([]field.Descriptor, len(cfg.Fields))
	for i, d := range cfg.Fields {
		if value, ok := state.Get(d.ID); ok {
			d.Value = value
		}
		refreshed.Fields[i] = d
	}
	return refreshed
}

func lockedFieldIDs(descriptors []field.Descriptor) map[string]struct{} {
	locked := make(map[string]struct{})
	for _, d := range descriptors {
		if d.Disabled {
			locked[d.ID] = struct{}{}
		}
	}
	return locked
}

var _ widget.Widget = (*Widget)(nil)
