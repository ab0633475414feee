package field_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dialog/pkg/field"
)

func TestState_SeedsInitialValuesInOrder(t *testing.T) {
	state := field.NewState([]field.Descriptor{
		{ID: "title", Name: "title", Value: "draft"},
		{ID: "skipped"},
		{ID: "body", Name: "body"},
	})

	if diff := cmp.Diff([]string{"title", "body"}, state.IDs()); diff != "" {
		t.Fatalf("state ids mismatch (-want +got):\n%s", diff)
	}

	value, ok := state.Get("title")
	if !ok || value != "draft" {
		t.Fatalf("want seeded value %q, got %q (ok=%v)", "draft", value, ok)
	}
}

func TestState_SetOverwritesWithoutDuplicatingOrder(t *testing.T) {
	state := field.NewState(nil)
	state.Set("a", "one")
	state.Set("a", "two")

	if got := state.Len(); got != 1 {
		t.Fatalf("want one field, got %d", got)
	}
	if value, _ := state.Get("a"); value != "two" {
		t.Fatalf("want overwritten value, got %q", value)
	}
}

func TestState_DeleteRemovesField(t *testing.T) {
	state := field.NewState([]field.Descriptor{{ID: "a", Name: "a"}, {ID: "b", Name: "b"}})
	state.Delete("a")

	if _, ok := state.Get("a"); ok {
		t.Fatal("field should be gone")
	}
	if diff := cmp.Diff([]string{"b"}, state.IDs()); diff != "" {
		t.Fatalf("remaining ids mismatch (-want +got):\n%s", diff)
	}
}

func TestState_NilReceiverIsInert(t *testing.T) {
	var state *field.State
	if _, ok := state.Get("x"); ok {
		t.Fatal("nil state should report missing fields")
	}
	state.Set("x", "y")
	if state.Len() != 0 {
		t.Fatal("nil state should not grow")
	}
}
