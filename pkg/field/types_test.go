package field_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dialog/pkg/field"
)

func TestFilter_DropsDescriptorsMissingIdentity(t *testing.T) {
	descriptors := []field.Descriptor{
		{ID: "title", Name: "title"},
		{ID: "orphan"},
		{Name: "nameless"},
		{},
		{ID: "body", Name: "body", Type: field.KindTextarea},
	}

	got := field.Filter(descriptors)

	want := []field.Descriptor{
		{ID: "title", Name: "title"},
		{ID: "body", Name: "body", Type: field.KindTextarea},
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(sameDescriptor)); diff != "" {
		t.Fatalf("filtered descriptors mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_AllInvalidYieldsEmptySlice(t *testing.T) {
	got := field.Filter([]field.Descriptor{{ID: "only-id"}, {Name: "only-name"}})
	if len(got) != 0 {
		t.Fatalf("expected no descriptors, got %d", len(got))
	}
}

func TestDescriptor_ResultKeyFallsBackToName(t *testing.T) {
	withFieldName := field.Descriptor{ID: "a", Name: "alpha", FieldName: "alphaKey"}
	if got := withFieldName.ResultKey(); got != "alphaKey" {
		t.Fatalf("want fieldName key, got %q", got)
	}

	withoutFieldName := field.Descriptor{ID: "a", Name: "alpha"}
	if got := withoutFieldName.ResultKey(); got != "alpha" {
		t.Fatalf("want name fallback, got %q", got)
	}
}

func TestOption_TextDefaultsToValue(t *testing.T) {
	if got := (field.Option{Value: "us", Label: "United States"}).Text(); got != "United States" {
		t.Fatalf("want label, got %q", got)
	}
	if got := (field.Option{Value: "us"}).Text(); got != "us" {
		t.Fatalf("want value fallback, got %q", got)
	}
}

func sameDescriptor(a, b field.Descriptor) bool {
	return a.ID == b.ID && a.Name == b.Name && a.Type == b.Type
}
