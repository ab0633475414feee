package widgets_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dialog/pkg/widget"
	"github.com/goliatone/go-dialog/pkg/widgets"
)

type noopWidget struct{}

func (noopWidget) Open(context.Context, widget.Config) (widget.Outcome, error) {
	return widget.Closed(), nil
}

func (noopWidget) Notice(context.Context, widget.NoticeConfig) error { return nil }

func (noopWidget) Dismiss(context.Context) error { return nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := widgets.NewRegistry()

	if err := reg.Register("terminal", noopWidget{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	backend, err := reg.Get("terminal")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if backend == nil {
		t.Fatal("expected a backend")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	reg := widgets.NewRegistry()
	reg.MustRegister("modal", noopWidget{})

	if err := reg.Register("modal", noopWidget{}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistry_RejectsNilBackend(t *testing.T) {
	reg := widgets.NewRegistry()
	if err := reg.Register("broken", nil); err == nil {
		t.Fatal("expected error for nil backend")
	}
}

func TestRegistry_ListSortsNames(t *testing.T) {
	reg := widgets.NewRegistry()
	reg.MustRegister("terminal", noopWidget{})
	reg.MustRegister("modal", noopWidget{})

	want := []string{"modal", "terminal"}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	if !reg.Has("modal") || reg.Has("missing") {
		t.Fatal("membership checks failed")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := widgets.NewRegistry()
	if _, err := reg.Get("missing"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
