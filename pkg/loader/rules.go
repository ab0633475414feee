package loader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-dialog/pkg/field"
)

// Canonical rule kinds a RuleSpec may declare.
const (
	RuleRequired  = "required"
	RulePattern   = "pattern"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleMin       = "min"
	RuleMax       = "max"
)

// Compile turns declarative rule specs into executable rules. Unknown
// kinds and malformed parameters are errors; a silent no-op validator
// would hide broken definitions.
func Compile(specs []RuleSpec) ([]field.Rule, error) {
	rules := make([]field.Rule, 0, len(specs))
	for i, spec := range specs {
		rule, err := compileRule(spec)
		if err != nil {
			return nil, fmt.Errorf("loader: rule %d (%s): %w", i, spec.Field, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func compileRule(spec RuleSpec) (field.Rule, error) {
	if strings.TrimSpace(spec.Field) == "" {
		return field.Rule{}, fmt.Errorf("field reference is required")
	}

	validate, defaultMessage, err := compileValidator(spec)
	if err != nil {
		return field.Rule{}, err
	}

	message := spec.Message
	if message == "" {
		message = fmt.Sprintf("%s %s", ruleSubject(spec), defaultMessage)
	}

	return field.Rule{
		FieldID:  spec.Field,
		Name:     spec.Name,
		Validate: validate,
		Message:  message,
	}, nil
}

func compileValidator(spec RuleSpec) (func(string) bool, string, error) {
	switch spec.Kind {
	case RuleRequired:
		return func(value string) bool {
			return strings.TrimSpace(value) != ""
		}, "must not be empty", nil

	case RulePattern:
		if spec.Value == "" {
			return nil, "", fmt.Errorf("pattern rule needs an expression")
		}
		re, err := regexp.Compile(spec.Value)
		if err != nil {
			return nil, "", fmt.Errorf("compile pattern: %w", err)
		}
		return re.MatchString, fmt.Sprintf("must match %s", spec.Value), nil

	case RuleMinLength:
		limit, err := intParam(spec)
		if err != nil {
			return nil, "", err
		}
		return func(value string) bool {
			return len(value) >= limit
		}, fmt.Sprintf("must be at least %d characters", limit), nil

	case RuleMaxLength:
		limit, err := intParam(spec)
		if err != nil {
			return nil, "", err
		}
		return func(value string) bool {
			return len(value) <= limit
		}, fmt.Sprintf("must be at most %d characters", limit), nil

	case RuleMin:
		bound, err := floatParam(spec)
		if err != nil {
			return nil, "", err
		}
		return func(value string) bool {
			number, convErr := strconv.ParseFloat(strings.TrimSpace(value), 64)
			return convErr == nil && number >= bound
		}, fmt.Sprintf("must be at least %v", bound), nil

	case RuleMax:
		bound, err := floatParam(spec)
		if err != nil {
			return nil, "", err
		}
		return func(value string) bool {
			number, convErr := strconv.ParseFloat(strings.TrimSpace(value), 64)
			return convErr == nil && number <= bound
		}, fmt.Sprintf("must be at most %v", bound), nil

	default:
		return nil, "", fmt.Errorf("unknown rule kind %q", spec.Kind)
	}
}

func intParam(spec RuleSpec) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(spec.Value))
	if err != nil {
		return 0, fmt.Errorf("%s rule needs an integer parameter: %w", spec.Kind, err)
	}
	return value, nil
}

func floatParam(spec RuleSpec) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(spec.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s rule needs a numeric parameter: %w", spec.Kind, err)
	}
	return value, nil
}

func ruleSubject(spec RuleSpec) string {
	if strings.TrimSpace(spec.Name) != "" {
		return spec.Name
	}
	return spec.Field
}
