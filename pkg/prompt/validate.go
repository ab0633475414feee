package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/widget"
)

// Validator builds the pre-confirm hook for a set of rules and the
// descriptors that survived filtering. On each confirmation attempt it runs
// every rule in order against the form state and either reports the
// collected messages (keeping the dialog open) or aggregates the final
// values.
func Validator(rules []field.Rule, descriptors []field.Descriptor) widget.PreConfirm {
	return func(ctx context.Context, state *field.State) (field.Values, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if messages := runRules(rules, state); len(messages) > 0 {
			return nil, &widget.ValidationError{Messages: messages}
		}
		return Aggregate(descriptors, state)
	}
}

func runRules(rules []field.Rule, state *field.State) []string {
	var messages []string
	for _, rule := range rules {
		value, ok := state.Get(rule.FieldID)
		if !ok {
			messages = append(messages, missingFieldMessage(rule))
			continue
		}
		if rule.Validate != nil && !rule.Validate(value) {
			messages = append(messages, rule.Message)
		}
	}
	return messages
}

// missingFieldMessage covers a rule whose target control never rendered;
// it reads like an ordinary required-field failure.
func missingFieldMessage(rule field.Rule) string {
	name := strings.TrimSpace(rule.Name)
	if name == "" {
		name = rule.FieldID
	}
	return fmt.Sprintf("%s must not be empty", name)
}

// Aggregate reads every descriptor's value from the state and stores it
// under the descriptor's result key, applying the optional Format
// transform. Formatting happens here and nowhere earlier.
func Aggregate(descriptors []field.Descriptor, state *field.State) (field.Values, error) {
	values := make(field.Values, len(descriptors))
	for _, d := range descriptors {
		raw, _ := state.Get(d.ID)
		if d.Format == nil {
			values[d.ResultKey()] = raw
			continue
		}
		formatted, err := d.Format(raw)
		if err != nil {
			return nil, fmt.Errorf("prompt: format field %q: %w", d.ID, err)
		}
		values[d.ResultKey()] = formatted
	}
	return values, nil
}
