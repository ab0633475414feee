package loader_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/loader"
)

const yamlDefinition = `
title: New article
lead: Fill in the details below.
fields:
  - id: title
    name: title
    label: Title
    placeholder: Article title
    maxLength: 80
  - id: body
    name: body
    type: textarea
    rows: 10
    cols: 40
  - id: lang
    name: lang
    type: select
    value: en
    options:
      - value: en
        label: English
      - value: es
        label: Spanish
rules:
  - field: title
    kind: required
    message: title is required
  - field: body
    kind: minLength
    value: "10"
`

func TestParse_YAMLDefinition(t *testing.T) {
	def, err := loader.Parse([]byte(yamlDefinition))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if def.Title != "New article" {
		t.Fatalf("title mismatch: %q", def.Title)
	}
	if len(def.Fields) != 3 {
		t.Fatalf("want 3 fields, got %d", len(def.Fields))
	}

	body := def.Fields[1]
	if body.Type != field.KindTextarea || body.Rows != 10 || body.Cols != 40 {
		t.Fatalf("textarea field mismatch: %+v", body)
	}

	lang := def.Fields[2]
	wantOptions := []field.Option{
		{Value: "en", Label: "English"},
		{Value: "es", Label: "Spanish"},
	}
	if diff := cmp.Diff(wantOptions, lang.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	if len(def.Rules) != 2 {
		t.Fatalf("want 2 rules, got %d", len(def.Rules))
	}
}

func TestParse_JSONDefinition(t *testing.T) {
	raw := []byte(`{
		"title": "Quick prompt",
		"fields": [{"id": "name", "name": "name", "label": "Name"}]
	}`)

	def, err := loader.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Title != "Quick prompt" || len(def.Fields) != 1 {
		t.Fatalf("unexpected definition: %+v", def)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	if _, err := loader.Parse(nil); err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestLoadFS(t *testing.T) {
	files := fstest.MapFS{
		"prompts/article.yaml": &fstest.MapFile{Data: []byte(yamlDefinition)},
	}

	def, err := loader.LoadFS(files, "prompts/article.yaml")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if def.Title != "New article" {
		t.Fatalf("title mismatch: %q", def.Title)
	}
}

func TestCompile_BuiltinKinds(t *testing.T) {
	rules, err := loader.Compile([]loader.RuleSpec{
		{Field: "a", Kind: loader.RuleRequired},
		{Field: "a", Kind: loader.RuleMinLength, Value: "3"},
		{Field: "a", Kind: loader.RuleMaxLength, Value: "5"},
		{Field: "a", Kind: loader.RulePattern, Value: `^[a-z]+$`},
		{Field: "n", Kind: loader.RuleMin, Value: "2"},
		{Field: "n", Kind: loader.RuleMax, Value: "10"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		rule  int
		value string
		want  bool
	}{
		{0, "  ", false},
		{0, "x", true},
		{1, "ab", false},
		{1, "abc", true},
		{2, "abcdef", false},
		{2, "abcde", true},
		{3, "abc", true},
		{3, "Abc", false},
		{4, "1", false},
		{4, "2", true},
		{4, "not a number", false},
		{5, "11", false},
		{5, "10", true},
	}
	for _, tc := range cases {
		if got := rules[tc.rule].Validate(tc.value); got != tc.want {
			t.Fatalf("rule %d value %q: want %v, got %v", tc.rule, tc.value, tc.want, got)
		}
	}
}

func TestCompile_DefaultMessages(t *testing.T) {
	rules, err := loader.Compile([]loader.RuleSpec{
		{Field: "title", Kind: loader.RuleRequired},
		{Field: "title", Name: "Title", Kind: loader.RuleMinLength, Value: "3"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if rules[0].Message != "title must not be empty" {
		t.Fatalf("unexpected message: %q", rules[0].Message)
	}
	if rules[1].Message != "Title must be at least 3 characters" {
		t.Fatalf("unexpected message: %q", rules[1].Message)
	}
}

func TestCompile_RejectsUnknownKind(t *testing.T) {
	if _, err := loader.Compile([]loader.RuleSpec{{Field: "a", Kind: "telepathy"}}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestCompile_RejectsBadPattern(t *testing.T) {
	if _, err := loader.Compile([]loader.RuleSpec{{Field: "a", Kind: loader.RulePattern, Value: "("}}); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestCompile_RejectsMissingField(t *testing.T) {
	if _, err := loader.Compile([]loader.RuleSpec{{Kind: loader.RuleRequired}}); err == nil {
		t.Fatal("expected error for missing field reference")
	}
}
