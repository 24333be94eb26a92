package settings

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Result is the outcome of validating one input document. It is
// returned as data: invalid input is an expected case, not an error.
type Result struct {
	Valid         bool           `json:"valid"`
	Errors        []string       `json:"errors"`
	ValidatedData map[string]any `json:"validated_data"`
}

// ValidateInput checks input against the schema and assembles the
// cleaned nested document. Fields that fail a check are reported in
// Errors and never written to ValidatedData. Optional absent fields
// take their default when one is declared and are omitted otherwise.
func ValidateInput(schema Schema, input map[string]any) Result {
	flattened := schema.Flatten()
	validated := make(map[string]any)
	errors := []string{}

	for _, path := range sortedPaths(flattened) {
		field := flattened[path]
		value, ok := lookupPath(input, path)
		if !ok || value == nil {
			if field.Required {
				errors = append(errors, fmt.Sprintf("Field '%s' is required", path))
				continue
			}
			if field.Default != nil {
				setPath(validated, path, field.Default)
			}
			continue
		}

		if fieldErrors := ValidateField(path, value, field); len(fieldErrors) > 0 {
			errors = append(errors, fieldErrors...)
			continue
		}
		setPath(validated, path, value)
	}

	return Result{
		Valid:         len(errors) == 0,
		Errors:        errors,
		ValidatedData: validated,
	}
}

// ValidateField runs the constraint checks for one present value. A
// type mismatch is reported alone; dependent checks are skipped.
func ValidateField(path string, value any, field *Field) []string {
	var errors []string

	switch field.Kind {
	case KindRange:
		number, ok := toFloat64(value)
		if !ok {
			errors = append(errors, fmt.Sprintf("Field '%s' must be a number", path))
			break
		}
		if field.Range == nil {
			break
		}
		if field.Range.Min != nil && number < *field.Range.Min {
			errors = append(errors, fmt.Sprintf("Field '%s' must be at least %v", path, *field.Range.Min))
		}
		if field.Range.Max != nil && number > *field.Range.Max {
			errors = append(errors, fmt.Sprintf("Field '%s' must be at most %v", path, *field.Range.Max))
		}

	case KindSelect:
		if !optionAllowed(value, field.Options) {
			errors = append(errors, fmt.Sprintf("Field '%s' must be one of: %s", path, joinOptionValues(field.Options)))
		}

	case KindText, KindTextarea:
		text, ok := value.(string)
		if !ok {
			errors = append(errors, fmt.Sprintf("Field '%s' must be a string", path))
			break
		}
		if field.Length == nil {
			break
		}
		length := utf8.RuneCountInString(text)
		if field.Length.MinLength != nil && length < *field.Length.MinLength {
			errors = append(errors, fmt.Sprintf("Field '%s' must be at least %d characters", path, *field.Length.MinLength))
		}
		if field.Length.MaxLength != nil && length > *field.Length.MaxLength {
			errors = append(errors, fmt.Sprintf("Field '%s' must be at most %d characters", path, *field.Length.MaxLength))
		}

	case KindCheckbox:
		if _, ok := value.(bool); !ok {
			errors = append(errors, fmt.Sprintf("Field '%s' must be true or false", path))
		}

	case KindFile:
		// Uploads are checked by the upload pipeline.
	}

	return errors
}

// optionAllowed reports whether value matches one of the declared
// option values. Numbers compare by value regardless of width.
func optionAllowed(value any, options []Option) bool {
	number, isNumber := toFloat64(value)
	for _, option := range options {
		if value == option.Value {
			return true
		}
		if isNumber {
			if allowed, ok := toFloat64(option.Value); ok && number == allowed {
				return true
			}
		}
	}
	return false
}

func joinOptionValues(options []Option) string {
	values := make([]string, 0, len(options))
	for _, option := range options {
		values = append(values, fmt.Sprintf("%v", option.Value))
	}
	return strings.Join(values, ", ")
}
