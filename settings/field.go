package settings

// Kind enumerates the supported field definition types.
type Kind int

const (
	KindRange Kind = iota
	KindSelect
	KindText
	KindTextarea
	KindCheckbox
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindSelect:
		return "select"
	case KindText:
		return "text"
	case KindTextarea:
		return "textarea"
	case KindCheckbox:
		return "checkbox"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// ParseKind maps a declared type name to its Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "range":
		return KindRange, true
	case "select":
		return KindSelect, true
	case "text":
		return KindText, true
	case "textarea":
		return KindTextarea, true
	case "checkbox":
		return KindCheckbox, true
	case "file":
		return KindFile, true
	default:
		return 0, false
	}
}

type (
	// Option is one admissible value of a select field.
	Option struct {
		Value any
		Label string
	}

	// RangeRule bounds a numeric field. Nil bounds are unconstrained.
	RangeRule struct {
		Min  *float64
		Max  *float64
		Step *float64
	}

	// LengthRule bounds the character length of a text field.
	LengthRule struct {
		MinLength *int
		MaxLength *int
	}

	// FileRule describes an upload field. Uploads are checked by the
	// upload pipeline, not by this engine.
	FileRule struct {
		Accept  []string
		MaxSize string
	}

	// Field is one leaf definition of a settings schema. Only the
	// constraint block matching Kind is ever set.
	Field struct {
		Kind        Kind
		Label       string
		Description string
		Placeholder string
		Required    bool
		Default     any
		Range       *RangeRule
		Options     []Option
		Length      *LengthRule
		File        *FileRule
	}
)
