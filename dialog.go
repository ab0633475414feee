// Package dialog exposes the high-level dialog helpers. Most callers build a
// widget backend, wrap it in a prompt service, and use the service for
// loading notices, confirmations, and input prompts.
package dialog

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/prompt"
	"github.com/goliatone/go-dialog/pkg/widget"
	"github.com/goliatone/go-dialog/pkg/widgets/modal"
	"github.com/goliatone/go-dialog/pkg/widgets/terminal"
)

// Descriptor describes a single prompt field.
type Descriptor = field.Descriptor

// FieldOption is a selectable option within a select descriptor.
type FieldOption = field.Option

// Rule is a per-field validation predicate.
type Rule = field.Rule

// Values is the aggregated key/value result of an input prompt.
type Values = field.Values

// Outcome reports how a dialog ended and any collected values.
type Outcome = widget.Outcome

// Widget is the dialog backend contract consumed by the prompt service.
type Widget = widget.Widget

// Service drives dialogs through an injected widget backend.
type Service = prompt.Service

// Prompt option aliases so simple callers only import this package.
type (
	LoadingOptions = prompt.LoadingOptions
	ConfirmOptions = prompt.ConfirmOptions
	InputOptions   = prompt.InputOptions
)

// New wraps a widget backend in a prompt service.
func New(w Widget) (*Service, error) {
	return prompt.New(w)
}

// Terminal builds a prompt service backed by interactive terminal prompts.
func Terminal(options ...terminal.Option) (*Service, error) {
	return prompt.New(terminal.New(options...))
}

// Modal builds a prompt service backed by a modal markup widget. The
// presenter receives rendered dialog markup; an empty string clears it.
func Modal(presenter modal.Presenter, options ...modal.Option) (*Service, error) {
	opts := append([]modal.Option{modal.WithPresenter(presenter)}, options...)
	return prompt.New(modal.New(opts...))
}

// WithTheme forwards a go-theme renderer config to the modal widget so
// dialog markup carries the resolved CSS variables.
func WithTheme(cfg *theme.RendererConfig) modal.Option {
	return modal.WithTheme(cfg)
}

// Confirm asks a yes/no question through the given widget and reports the
// boolean decision. Dismissing the dialog counts as "no".
func Confirm(ctx context.Context, w Widget, opts ConfirmOptions) (bool, error) {
	svc, err := prompt.New(w)
	if err != nil {
		return false, err
	}
	return svc.ConfirmBool(ctx, opts)
}

// Input collects values for the given fields through the widget and returns
// the outcome. Cancellation is reported through the outcome, not an error.
func Input(ctx context.Context, w Widget, opts InputOptions) (Outcome, error) {
	svc, err := prompt.New(w)
	if err != nil {
		return Outcome{}, err
	}
	return svc.Input(ctx, opts)
}
