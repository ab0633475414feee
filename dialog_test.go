package dialog_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	dialog "github.com/goliatone/go-dialog"
	"github.com/goliatone/go-dialog/pkg/widgets/terminal"
)

// scriptDriver feeds canned answers to the terminal widget.
type scriptDriver struct {
	inputs   []string
	confirms []bool
}

func (d *scriptDriver) Input(context.Context, terminal.InputConfig) (string, error) {
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *scriptDriver) Confirm(context.Context, terminal.ConfirmConfig) (bool, error) {
	next := d.confirms[0]
	d.confirms = d.confirms[1:]
	return next, nil
}

func (d *scriptDriver) Select(context.Context, terminal.SelectConfig) (int, error) {
	return 0, nil
}

func (d *scriptDriver) TextArea(context.Context, terminal.TextAreaConfig) (string, error) {
	return "", nil
}

func (d *scriptDriver) Info(context.Context, string) error { return nil }

func TestConfirm_TerminalBackend(t *testing.T) {
	backend := terminal.New(terminal.WithDriver(&scriptDriver{confirms: []bool{true}}))

	ok, err := dialog.Confirm(context.Background(), backend, dialog.ConfirmOptions{
		Title: "Delete article?",
	})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !ok {
		t.Fatal("expected confirmation")
	}
}

func TestInput_TerminalBackend(t *testing.T) {
	driver := &scriptDriver{inputs: []string{"My title"}, confirms: []bool{true}}
	backend := terminal.New(terminal.WithDriver(driver))

	outcome, err := dialog.Input(context.Background(), backend, dialog.InputOptions{
		Title: "New article",
		Fields: []dialog.Descriptor{
			{ID: "title", Name: "title"},
		},
	})
	if err != nil {
		t.Fatalf("input: %v", err)
	}
	if !outcome.Confirmed() {
		t.Fatalf("expected confirmed outcome, got %v", outcome.Status)
	}

	want := dialog.Values{"title": "My title"}
	if diff := cmp.Diff(want, outcome.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_RequiresWidget(t *testing.T) {
	if _, err := dialog.New(nil); err == nil {
		t.Fatal("expected error for nil widget")
	}
}
