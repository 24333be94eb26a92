package settings

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrMalformedSchema reports a settings_schema document this engine
// cannot interpret. Unknown field types are rejected rather than
// silently accepted.
var ErrMalformedSchema = errors.New("malformed settings schema")

// maxDepth caps schema nesting so a broken document fails fast instead
// of recursing without bound.
const maxDepth = 32

// ParseSchema builds the typed schema tree from a raw settings_schema
// document. The document may come from a JSON or BSON decode.
func ParseSchema(raw map[string]any) (Schema, error) {
	schema, err := parseLevel(raw, "", 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchema, err)
	}
	return schema, nil
}

func parseLevel(raw map[string]any, prefix string, depth int) (Schema, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("nesting at %q exceeds maximum depth %d", prefix, maxDepth)
	}

	schema := make(Schema, len(raw))
	for key, value := range raw {
		path := key
		if prefix != "" {
			path = fmt.Sprintf("%s.%s", prefix, key)
		}

		node, ok := asMap(value)
		if !ok {
			return nil, fmt.Errorf("schema node %q must be an object", path)
		}

		if _, isLeaf := node["type"]; isLeaf {
			field, err := parseField(path, node)
			if err != nil {
				return nil, err
			}
			schema[key] = &Node{Field: field}
			continue
		}

		children, err := parseLevel(node, path, depth+1)
		if err != nil {
			return nil, err
		}
		schema[key] = &Node{Children: children}
	}

	return schema, nil
}

func parseField(path string, def map[string]any) (*Field, error) {
	name, ok := def["type"].(string)
	if !ok {
		return nil, fmt.Errorf("field %q type must be a string", path)
	}
	kind, ok := ParseKind(name)
	if !ok {
		return nil, fmt.Errorf("field %q has unknown type %q", path, name)
	}
	if err := checkConstraintPlacement(path, kind, def); err != nil {
		return nil, err
	}

	field := &Field{Kind: kind}

	if raw, ok := def["required"]; ok {
		required, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("field %q required flag must be a boolean", path)
		}
		field.Required = required
	}
	field.Default = def["default"]

	var err error
	if field.Label, err = stringKey(path, def, "label"); err != nil {
		return nil, err
	}
	if field.Description, err = stringKey(path, def, "description"); err != nil {
		return nil, err
	}
	if field.Placeholder, err = stringKey(path, def, "placeholder"); err != nil {
		return nil, err
	}

	switch kind {
	case KindRange:
		if field.Range, err = parseRangeRule(path, def); err != nil {
			return nil, err
		}
	case KindSelect:
		if field.Options, err = parseOptions(path, def); err != nil {
			return nil, err
		}
	case KindText, KindTextarea:
		if field.Length, err = parseLengthRule(path, def); err != nil {
			return nil, err
		}
	case KindFile:
		if field.File, err = parseFileRule(path, def); err != nil {
			return nil, err
		}
	}

	return field, nil
}

// constraintOwners lists the kinds allowed to declare each
// kind-specific key. Presentation keys such as label and placeholder
// are shared and not listed here.
var constraintOwners = []struct {
	key    string
	owners []Kind
}{
	{"min", []Kind{KindRange}},
	{"max", []Kind{KindRange}},
	{"step", []Kind{KindRange}},
	{"options", []Kind{KindSelect}},
	{"validation", []Kind{KindText, KindTextarea}},
	{"accept", []Kind{KindFile}},
	{"max_size", []Kind{KindFile}},
}

// checkConstraintPlacement rejects a constraint declared on a kind
// that never reads it.
func checkConstraintPlacement(path string, kind Kind, def map[string]any) error {
	for _, constraint := range constraintOwners {
		if _, present := def[constraint.key]; !present {
			continue
		}
		owned := false
		for _, owner := range constraint.owners {
			if owner == kind {
				owned = true
				break
			}
		}
		if !owned {
			return fmt.Errorf("field %q type %s does not take %s", path, kind, constraint.key)
		}
	}
	return nil
}

func parseRangeRule(path string, def map[string]any) (*RangeRule, error) {
	rule := &RangeRule{}

	var err error
	if rule.Min, err = numberKey(path, def, "min"); err != nil {
		return nil, err
	}
	if rule.Max, err = numberKey(path, def, "max"); err != nil {
		return nil, err
	}
	if rule.Step, err = numberKey(path, def, "step"); err != nil {
		return nil, err
	}

	if rule.Min != nil && rule.Max != nil && *rule.Min > *rule.Max {
		return nil, fmt.Errorf("field %q min exceeds max", path)
	}
	return rule, nil
}

func parseOptions(path string, def map[string]any) ([]Option, error) {
	raw, ok := def["options"]
	if !ok {
		return nil, fmt.Errorf("field %q must declare options", path)
	}
	items, ok := asSlice(raw)
	if !ok {
		return nil, fmt.Errorf("field %q options must be a list", path)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("field %q options must not be empty", path)
	}

	options := make([]Option, 0, len(items))
	for i, item := range items {
		entry, ok := asMap(item)
		if !ok {
			return nil, fmt.Errorf("field %q option %d must be an object", path, i)
		}

		value, ok := entry["value"]
		if !ok {
			return nil, fmt.Errorf("field %q option %d has no value", path, i)
		}
		// Numeric values are normalized so membership checks do not
		// depend on the decoder's integer width.
		if number, isNumber := toFloat64(value); isNumber {
			value = number
		} else {
			switch value.(type) {
			case string, bool:
			default:
				return nil, fmt.Errorf("field %q option %d value must be a scalar", path, i)
			}
		}

		label, _ := entry["label"].(string)
		options = append(options, Option{Value: value, Label: label})
	}

	return options, nil
}

func parseLengthRule(path string, def map[string]any) (*LengthRule, error) {
	raw, ok := def["validation"]
	if !ok {
		return nil, nil
	}
	validation, ok := asMap(raw)
	if !ok {
		return nil, fmt.Errorf("field %q validation must be an object", path)
	}

	rule := &LengthRule{}
	var err error
	if rule.MinLength, err = lengthKey(path, validation, "min_length"); err != nil {
		return nil, err
	}
	if rule.MaxLength, err = lengthKey(path, validation, "max_length"); err != nil {
		return nil, err
	}

	if rule.MinLength != nil && rule.MaxLength != nil && *rule.MinLength > *rule.MaxLength {
		return nil, fmt.Errorf("field %q min_length exceeds max_length", path)
	}
	return rule, nil
}

func parseFileRule(path string, def map[string]any) (*FileRule, error) {
	rule := &FileRule{}

	if raw, ok := def["accept"]; ok {
		items, ok := asSlice(raw)
		if !ok {
			return nil, fmt.Errorf("field %q accept must be a list", path)
		}
		for i, item := range items {
			mime, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("field %q accept entry %d must be a string", path, i)
			}
			rule.Accept = append(rule.Accept, mime)
		}
	}

	if raw, ok := def["max_size"]; ok {
		size, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field %q max_size must be a string", path)
		}
		rule.MaxSize = size
	}

	return rule, nil
}

func stringKey(path string, def map[string]any, key string) (string, error) {
	raw, ok := def[key]
	if !ok {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q %s must be a string", path, key)
	}
	return value, nil
}

func numberKey(path string, def map[string]any, key string) (*float64, error) {
	raw, ok := def[key]
	if !ok {
		return nil, nil
	}
	number, ok := toFloat64(raw)
	if !ok {
		return nil, fmt.Errorf("field %q %s must be a number", path, key)
	}
	return &number, nil
}

// lengthKey reads a length bound. Zero is treated as unset so a
// document carrying min_length: 0 does not constrain anything.
func lengthKey(path string, validation map[string]any, key string) (*int, error) {
	raw, ok := validation[key]
	if !ok {
		return nil, nil
	}
	length, ok := toInt(raw)
	if !ok {
		return nil, fmt.Errorf("field %q %s must be an integer", path, key)
	}
	if length < 0 {
		return nil, fmt.Errorf("field %q %s must not be negative", path, key)
	}
	if length == 0 {
		return nil, nil
	}
	return &length, nil
}

// asMap accepts both JSON and BSON decoded documents.
func asMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case primitive.M:
		return m, true
	default:
		return nil, false
	}
}

// asSlice accepts both JSON and BSON decoded arrays.
func asSlice(value any) ([]any, bool) {
	switch s := value.(type) {
	case []any:
		return s, true
	case primitive.A:
		return s, true
	default:
		return nil, false
	}
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func toInt(value any) (int, bool) {
	number, ok := toFloat64(value)
	if !ok {
		return 0, false
	}
	return int(number), true
}
