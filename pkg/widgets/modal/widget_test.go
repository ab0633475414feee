package modal

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/prompt"
	"github.com/goliatone/go-dialog/pkg/widget"
)

// capturePresenter records every fragment the widget presents and signals
// each render so tests can synchronize with the Open goroutine.
type capturePresenter struct {
	mu       sync.Mutex
	markups  []string
	rendered chan struct{}
}

func newCapturePresenter() *capturePresenter {
	return &capturePresenter{rendered: make(chan struct{}, 16)}
}

func (p *capturePresenter) present(_ context.Context, markup string) error {
	p.mu.Lock()
	p.markups = append(p.markups, markup)
	p.mu.Unlock()
	p.rendered <- struct{}{}
	return nil
}

func (p *capturePresenter) awaitRender(t *testing.T) string {
	t.Helper()
	select {
	case <-p.rendered:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a render")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.markups[len(p.markups)-1]
}

type openResult struct {
	outcome widget.Outcome
	err     error
}

func openAsync(ctx context.Context, w *Widget, cfg widget.Config) chan openResult {
	done := make(chan openResult, 1)
	go func() {
		outcome, err := w.Open(ctx, cfg)
		done <- openResult{outcome: outcome, err: err}
	}()
	return done
}

func TestOpen_RequiresPresenter(t *testing.T) {
	w := New()
	if _, err := w.Open(context.Background(), widget.Config{}); !errors.Is(err, ErrNoPresenter) {
		t.Fatalf("want ErrNoPresenter, got %v", err)
	}
}

func TestOpen_ConfirmWithoutFields(t *testing.T) {
	presenter := newCapturePresenter()
	w := New(WithPresenter(presenter.present))

	done := openAsync(context.Background(), w, widget.Config{
		Title:        "Delete article",
		Severity:     widget.SeverityWarning,
		ConfirmLabel: "Delete",
		CancelLabel:  "Keep",
		ShowCancel:   true,
		ShowClose:    true,
	})

	markup := presenter.awaitRender(t)
	for _, want := range []string{
		`class="dialog dialog-warning"`,
		`<h2 class="dialog-title">Delete article</h2>`,
		`data-action="confirm">Delete</button>`,
		`data-action="cancel">Keep</button>`,
		`data-action="close"`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("markup missing %q:\n%s", want, markup)
		}
	}

	if err := w.Submit(nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
	result := <-done
	if result.err != nil {
		t.Fatalf("open: %v", result.err)
	}
	if !result.outcome.Confirmed() {
		t.Fatalf("want confirmed, got %s", result.outcome.Status)
	}
}

func TestOpen_SecondDialogRejected(t *testing.T) {
	presenter := newCapturePresenter()
	w := New(WithPresenter(presenter.present))

	done := openAsync(context.Background(), w, widget.Config{Title: "first"})
	presenter.awaitRender(t)

	if _, err := w.Open(context.Background(), widget.Config{Title: "second"}); !errors.Is(err, ErrDialogOpen) {
		t.Fatalf("want ErrDialogOpen, got %v", err)
	}

	if err := w.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	result := <-done
	if result.err != nil || result.outcome.Status != widget.StatusCancelled {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestOpen_ValidationRetryRerendersWithMessages(t *testing.T) {
	presenter := newCapturePresenter()
	w := New(WithPresenter(presenter.present))

	descriptors := []field.Descriptor{{ID: "a", Name: "a"}}
	rules := []field.Rule{{
		FieldID:  "a",
		Validate: func(value string) bool { return len(value) > 0 },
		Message:  "required",
	}}

	done := openAsync(context.Background(), w, widget.Config{
		Fields:       descriptors,
		ConfirmLabel: "Submit",
		ShowCancel:   true,
		AutoFocus:    "a",
		PreConfirm:   prompt.Validator(rules, descriptors),
	})
	presenter.awaitRender(t)

	if err := w.Submit(map[string]string{"a": ""}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	retry := presenter.awaitRender(t)
	if !strings.Contains(retry, `class="dialog-errors"`) || !strings.Contains(retry, "<p>required</p>") {
		t.Fatalf("want error block with message, got:\n%s", retry)
	}

	if err := w.Submit(map[string]string{"a": "x"}); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	result := <-done
	if result.err != nil {
		t.Fatalf("open: %v", result.err)
	}
	if diff := cmp.Diff(field.Values{"a": "x"}, result.outcome.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen_RetryKeepsSubmittedValues(t *testing.T) {
	presenter := newCapturePresenter()
	w := New(WithPresenter(presenter.present))

	descriptors := []field.Descriptor{
		{ID: "title", Name: "title"},
		{ID: "body", Name: "body"},
	}
	rules := []field.Rule{{
		FieldID:  "body",
		Validate: func(value string) bool { return len(value) > 0 },
		Message:  "body required",
	}}

	done := openAsync(context.Background(), w, widget.Config{
		Fields:     descriptors,
		PreConfirm: prompt.Validator(rules, descriptors),
	})
	presenter.awaitRender(t)

	if err := w.Submit(map[string]string{"title": "My title", "body": ""}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	retry := presenter.awaitRender(t)
	if !strings.Contains(retry, `value="My title"`) {
		t.Fatalf("retry render should keep submitted values:\n%s", retry)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	result := <-done
	if result.outcome.Status != widget.StatusClosed {
		t.Fatalf("want closed, got %+v", result)
	}
}

func TestOpen_IgnoresUnknownAndDisabledFields(t *testing.T) {
	presenter := newCapturePresenter()
	w := New(WithPresenter(presenter.present))

	descriptors := []field.Descriptor{
		{ID: "slug", Name: "slug", Value: "fixed", Disabled: true},
		{ID: "title", Name: "title"},
	}

	done := openAsync(context.Background(), w, widget.Config{
		Fields:     descriptors,
		PreConfirm: prompt.Validator(nil, descriptors),
	})
	presenter.awaitRender(t)

	if err := w.Submit(map[string]string{
		"slug":    "tampered",
		"title":   "ok",
		"unknown": "dropped",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	result := <-done
	if result.err != nil {
		t.Fatalf("open: %v", result.err)
	}
	want := field.Values{"slug": "fixed", "title": "ok"}
	if diff := cmp.Diff(want, result.outcome.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen_ContextCancellation(t *testing.T) {
	presenter := newCapturePresenter()
	w := New(WithPresenter(presenter.present))

	ctx, cancel := context.WithCancel(context.Background())
	done := openAsync(ctx, w, widget.Config{Title: "waiting"})
	presenter.awaitRender(t)

	cancel()
	result := <-done
	if !errors.Is(result.err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", result.err)
	}
}

func TestSubmit_WithoutDialog(t *testing.T) {
	w := New(WithPresenter(func(context.Context, string) error { return nil }))
	if err := w.Submit(nil); !errors.Is(err, ErrNoDialog) {
		t.Fatalf("want ErrNoDialog, got %v", err)
	}
}

func TestNoticeAndDismiss_Lifecycle(t *testing.T) {
	presenter := newCapturePresenter()
	w := New(WithPresenter(presenter.present))

	if err := w.Dismiss(context.Background()); err != nil {
		t.Fatalf("dismiss without overlay: %v", err)
	}

	if err := w.Notice(context.Background(), widget.NoticeConfig{
		Title:      "Loading...",
		CloseLabel: "Close",
	}); err != nil {
		t.Fatalf("notice: %v", err)
	}
	markup := presenter.awaitRender(t)
	if !strings.Contains(markup, `class="dialog-notice"`) || !strings.Contains(markup, "Loading...") {
		t.Fatalf("unexpected notice markup:\n%s", markup)
	}

	if err := w.Dismiss(context.Background()); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if cleared := presenter.awaitRender(t); cleared != "" {
		t.Fatalf("dismiss should clear markup, got %q", cleared)
	}
}

func TestOpen_LeadIsSanitized(t *testing.T) {
	presenter := newCapturePresenter()
	w := New(WithPresenter(presenter.present))

	done := openAsync(context.Background(), w, widget.Config{
		Lead: `<p>Keep <strong>this</strong></p><script>alert("x")</script>`,
	})

	markup := presenter.awaitRender(t)
	if !strings.Contains(markup, "<strong>this</strong>") {
		t.Fatalf("benign markup should survive:\n%s", markup)
	}
	if strings.Contains(markup, "<script>") {
		t.Fatalf("script must be stripped:\n%s", markup)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	<-done
}

func TestOpen_ThemeCSSVars(t *testing.T) {
	presenter := newCapturePresenter()
	w := New(
		WithPresenter(presenter.present),
		WithTheme(&theme.RendererConfig{
			CSSVars: map[string]string{"--brand": "#123456"},
		}),
	)

	done := openAsync(context.Background(), w, widget.Config{Title: "themed"})
	markup := presenter.awaitRender(t)
	if !strings.Contains(markup, "--brand: #123456;") {
		t.Fatalf("want theme css vars, got:\n%s", markup)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	<-done
}
