package prompt

import (
	"context"

	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/widget"
)

// Service standardizes the dialog flows an application needs: a loading
// notice, confirmation prompts, and form-input prompts. Every operation
// runs against the injected widget; the service itself keeps no state, so
// one instance can serve concurrent callers as long as the widget copes
// with them.
type Service struct {
	widget widget.Widget
}

// New constructs a Service around the given dialog widget.
func New(w widget.Widget) (*Service, error) {
	if w == nil {
		return nil, ErrNoWidget
	}
	return &Service{widget: w}, nil
}

// ShowLoading opens the dismissable loading overlay and returns once it is
// visible.
func (s *Service) ShowLoading(ctx context.Context, opts LoadingOptions) error {
	return s.widget.Notice(ctx, widget.NoticeConfig{
		Title:      fallback(opts.Title, defaultLoadingTitle),
		CloseLabel: fallback(opts.CloseLabel, defaultCloseLabel),
		Severity:   widget.SeverityInfo,
	})
}

// HideLoading closes the loading overlay if one is open and hands back the
// given value unchanged, so it can sit at the end of an async chain.
func (s *Service) HideLoading(ctx context.Context, passthrough any) (any, error) {
	if err := s.widget.Dismiss(ctx); err != nil {
		return passthrough, err
	}
	return passthrough, nil
}

// Confirm opens a yes/cancel dialog and returns the raw outcome. Dismissal
// is an outcome, never an error.
func (s *Service) Confirm(ctx context.Context, opts ConfirmOptions) (widget.Outcome, error) {
	cfg := widget.Config{
		Title:        opts.Title,
		Severity:     opts.Severity,
		Lead:         opts.Body,
		ConfirmLabel: fallback(opts.ConfirmLabel, defaultConfirmLabel),
		CancelLabel:  fallback(opts.CancelLabel, defaultCancelLabel),
		ShowCancel:   opts.ShowCancel,
		ShowClose:    opts.ShowClose,
	}
	if opts.OnOpen != nil {
		onOpen := opts.OnOpen
		cfg.OnOpen = func(context.Context) { onOpen() }
	}
	return s.widget.Open(ctx, cfg)
}

// ConfirmBool folds the outcome into a plain yes/no: true exactly when the
// dialog was confirmed. Close-button and cancel dismissals both read as
// false.
func (s *Service) ConfirmBool(ctx context.Context, opts ConfirmOptions) (bool, error) {
	outcome, err := s.Confirm(ctx, opts)
	if err != nil {
		return false, err
	}
	return outcome.Confirmed(), nil
}

// Input opens a dialog containing the declared fields, validates on each
// confirmation attempt, and resolves with the aggregated values once a
// submission passes. Descriptors missing ID or Name are dropped up front;
// when none survive, Input fails with ErrNoValidInputs before any dialog
// is shown.
func (s *Service) Input(ctx context.Context, opts InputOptions) (widget.Outcome, error) {
	descriptors := field.Filter(opts.Fields)
	if len(descriptors) == 0 {
		return widget.Outcome{}, ErrNoValidInputs
	}

	cfg := widget.Config{
		Title:        opts.Title,
		Severity:     opts.Severity,
		Lead:         opts.Lead,
		Fields:       descriptors,
		ConfirmLabel: fallback(opts.SubmitLabel, defaultSubmitLabel),
		CancelLabel:  fallback(opts.CancelLabel, defaultCancelLabel),
		ShowCancel:   true,
		ShowClose:    opts.ShowClose,
		AutoFocus:    descriptors[0].ID,
		PreConfirm:   Validator(opts.Rules, descriptors),
	}
	if opts.OnOpen != nil {
		onOpen := opts.OnOpen
		cfg.OnOpen = func(context.Context) { onOpen() }
	}
	return s.widget.Open(ctx, cfg)
}
