package openapi

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/loader"
)

// ErrNoRequestBody is returned when an operation has no object request body
// to derive fields from.
var ErrNoRequestBody = errors.New("openapi: operation has no request body schema")

// hintExtension carries per-property widget hints, e.g.
//
//	x-dialog: {widget: textarea, rows: 8}
const hintExtension = "x-dialog"

// PromptDefinition derives an input prompt definition from the request body
// of the operation with the given operationId. Required properties come
// first, in the order the schema declares them, followed by the remaining
// properties sorted by name.
func (d *Document) PromptDefinition(operationID string) (loader.Definition, error) {
	op := d.findOperation(operationID)
	if op == nil {
		return loader.Definition{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	schema := d.requestSchema(op)
	if schema == nil || len(schema.Properties) == 0 {
		return loader.Definition{}, fmt.Errorf("%w: %s", ErrNoRequestBody, operationID)
	}

	def := loader.Definition{
		Title: op.Summary,
		Lead:  op.Description,
	}
	if def.Title == "" {
		def.Title = operationID
	}

	for _, name := range propertyOrder(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		descriptor := descriptorFor(name, ref.Value)
		def.Fields = append(def.Fields, descriptor)
		def.Rules = append(def.Rules, ruleSpecsFor(descriptor, ref.Value, contains(schema.Required, name))...)
	}

	return def, nil
}

// Descriptors derives the operation's field descriptors together with
// compiled validation rules, ready for prompt.Service.Input.
func (d *Document) Descriptors(operationID string) ([]field.Descriptor, []field.Rule, error) {
	def, err := d.PromptDefinition(operationID)
	if err != nil {
		return nil, nil, err
	}
	rules, err := loader.Compile(def.Rules)
	if err != nil {
		return nil, nil, err
	}
	return def.Fields, rules, nil
}

func (d *Document) requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	for _, mediaType := range d.options.MediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func propertyOrder(schema *openapi3.Schema) []string {
	ordered := make([]string, 0, len(schema.Properties))
	seen := make(map[string]bool, len(schema.Properties))
	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; ok && !seen[name] {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

func descriptorFor(name string, src *openapi3.Schema) field.Descriptor {
	descriptor := field.Descriptor{
		ID:          name,
		Name:        name,
		Label:       src.Title,
		Placeholder: src.Description,
		Disabled:    src.ReadOnly,
	}
	if src.Default != nil {
		descriptor.Value = fmt.Sprintf("%v", src.Default)
	}
	if src.MaxLength != nil {
		descriptor.MaxLength = int(*src.MaxLength)
	}

	switch {
	case len(src.Enum) > 0:
		descriptor.Type = field.KindSelect
		descriptor.Options = enumOptions(src.Enum)
	case schemaType(src) == "boolean":
		descriptor.Type = field.KindSelect
		descriptor.Options = []field.Option{
			{Value: "true", Label: "Yes"},
			{Value: "false", Label: "No"},
		}
		descriptor.Format = parseBool
	case schemaType(src) == "integer":
		descriptor.Type = field.KindNumber
		descriptor.Format = parseInteger
	case schemaType(src) == "number":
		descriptor.Type = field.KindNumber
		descriptor.Format = parseNumber
	case src.Format == "email":
		descriptor.Type = field.KindEmail
	case src.Format == "password":
		descriptor.Type = field.KindPassword
	default:
		descriptor.Type = field.KindText
	}

	applyHints(&descriptor, src.Extensions)
	return descriptor
}

func ruleSpecsFor(descriptor field.Descriptor, src *openapi3.Schema, required bool) []loader.RuleSpec {
	var specs []loader.RuleSpec
	add := func(kind, value string) {
		specs = append(specs, loader.RuleSpec{
			Field: descriptor.ID,
			Name:  descriptor.Label,
			Kind:  kind,
			Value: value,
		})
	}

	if required {
		add(loader.RuleRequired, "")
	}
	if src.MinLength != 0 {
		add(loader.RuleMinLength, strconv.FormatUint(src.MinLength, 10))
	}
	if src.MaxLength != nil {
		add(loader.RuleMaxLength, strconv.FormatUint(*src.MaxLength, 10))
	}
	if src.Pattern != "" {
		add(loader.RulePattern, src.Pattern)
	}
	if src.Min != nil {
		add(loader.RuleMin, strconv.FormatFloat(*src.Min, 'f', -1, 64))
	}
	if src.Max != nil {
		add(loader.RuleMax, strconv.FormatFloat(*src.Max, 'f', -1, 64))
	}
	return specs
}

// applyHints folds x-dialog extension values into the descriptor. Hints win
// over inferred attributes so documents can pin widget behaviour.
func applyHints(descriptor *field.Descriptor, extensions map[string]any) {
	raw, ok := extensions[hintExtension]
	if !ok {
		return
	}
	hints, ok := raw.(map[string]any)
	if !ok {
		return
	}

	if widget, ok := hints["widget"].(string); ok {
		switch widget {
		case "textarea":
			descriptor.Type = field.KindTextarea
		case "password":
			descriptor.Type = field.KindPassword
		case "email":
			descriptor.Type = field.KindEmail
		}
	}
	if label, ok := hints["label"].(string); ok {
		descriptor.Label = label
	}
	if placeholder, ok := hints["placeholder"].(string); ok {
		descriptor.Placeholder = placeholder
	}
	if rows, ok := hintInt(hints["rows"]); ok {
		descriptor.Rows = rows
	}
	if cols, ok := hintInt(hints["cols"]); ok {
		descriptor.Cols = cols
	}
	if disabled, ok := hints["disabled"].(bool); ok {
		descriptor.Disabled = disabled
	}
}

// hintInt accepts the numeric shapes JSON and YAML decoders produce.
func hintInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func enumOptions(values []any) []field.Option {
	options := make([]field.Option, 0, len(values))
	for _, value := range values {
		if value == nil {
			continue
		}
		options = append(options, field.Option{Value: fmt.Sprintf("%v", value)})
	}
	return options
}

func schemaType(src *openapi3.Schema) string {
	if src.Type == nil {
		return ""
	}
	values := src.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

func parseBool(raw string) (any, error) {
	return strconv.ParseBool(strings.TrimSpace(raw))
}

func parseInteger(raw string) (any, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

func parseNumber(raw string) (any, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}
