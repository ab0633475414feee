package field

import "strings"

// Kind is the simplified enum for prompt-friendly control kinds. Anything
// that is not a textarea or a select renders as a text-like input, matching
// the control's HTML type attribute (text, email, password, number, ...).
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindNumber   Kind = "number"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
)

// Formatter transforms the raw string collected from a control into the
// value stored in the aggregated result. It runs at aggregation time only,
// never while the dialog is open.
type Formatter func(raw string) (any, error)

// Option is a single choice inside a select control.
type Option struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Text returns the display text for the option, defaulting to the value
// when no label was declared.
func (o Option) Text() string {
	if strings.TrimSpace(o.Label) != "" {
		return o.Label
	}
	return o.Value
}

// Descriptor declares one control inside a prompt dialog. Identity is ID,
// which must be unique per dialog instance; descriptors are built by the
// caller per invocation and never persisted.
type Descriptor struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	FieldName   string   `json:"fieldName,omitempty" yaml:"fieldName,omitempty"`
	Type        Kind     `json:"type,omitempty" yaml:"type,omitempty"`
	Value       string   `json:"value,omitempty" yaml:"value,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Disabled    bool     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Rows        int      `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols        int      `json:"cols,omitempty" yaml:"cols,omitempty"`
	MaxLength   int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Options     []Option `json:"options,omitempty" yaml:"options,omitempty"`
	Format      Formatter
}

// Valid reports whether the descriptor carries both identifiers the prompt
// flow depends on: ID for state lookups and Name for the result key.
func (d Descriptor) Valid() bool {
	return strings.TrimSpace(d.ID) != "" && strings.TrimSpace(d.Name) != ""
}

// ResultKey returns the key the descriptor's value is stored under in the
// aggregated result: FieldName when set, Name otherwise.
func (d Descriptor) ResultKey() string {
	if strings.TrimSpace(d.FieldName) != "" {
		return d.FieldName
	}
	return d.Name
}

// Filter drops descriptors missing ID or Name, preserving input order.
func Filter(descriptors []Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Valid() {
			out = append(out, d)
		}
	}
	return out
}

// Rule is a field-level validation constraint. It references a Descriptor
// by FieldID and is evaluated only at confirmation time.
type Rule struct {
	FieldID  string
	Name     string
	Validate func(value string) bool
	Message  string
}

// Values is the aggregated prompt result, keyed by each descriptor's
// ResultKey. Produced fresh per successful confirmation and owned by the
// caller afterwards.
type Values map[string]any
