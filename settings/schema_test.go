package settings

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var bookSchema = map[string]any{
	"basic_info": map[string]any{
		"concept": map[string]any{
			"type":     "textarea",
			"label":    "Book Concept",
			"required": true,
			"validation": map[string]any{
				"min_length": 10,
				"max_length": 500,
			},
		},
		"author_name": map[string]any{
			"type":    "text",
			"default": "AI Generated",
		},
	},
	"structure": map[string]any{
		"chapters_count": map[string]any{
			"type":    "range",
			"min":     3,
			"max":     50,
			"default": 10,
		},
	},
	"language": map[string]any{
		"type": "select",
		"options": []any{
			map[string]any{"value": "english", "label": "English"},
			map[string]any{"value": "hindi", "label": "Hindi"},
		},
	},
}

func TestParseSchemaBuildsTypedTree(t *testing.T) {
	schema, err := ParseSchema(bookSchema)
	if err != nil {
		t.Fatal(err)
	}

	flattened := schema.Flatten()
	concept := flattened["basic_info.concept"]
	if concept == nil {
		t.Fatal("basic_info.concept not found")
	}
	if concept.Kind != KindTextarea {
		t.Errorf("expected textarea, got %s", concept.Kind)
	}
	if !concept.Required {
		t.Error("concept should be required")
	}
	if concept.Length == nil || *concept.Length.MinLength != 10 || *concept.Length.MaxLength != 500 {
		t.Errorf("unexpected length rule: %+v", concept.Length)
	}

	chapters := flattened["structure.chapters_count"]
	if chapters == nil {
		t.Fatal("structure.chapters_count not found")
	}
	if chapters.Range == nil || *chapters.Range.Min != 3 || *chapters.Range.Max != 50 {
		t.Errorf("unexpected range rule: %+v", chapters.Range)
	}
	if chapters.Options != nil || chapters.Length != nil || chapters.File != nil {
		t.Error("range field carries constraints of other kinds")
	}

	language := flattened["language"]
	if language == nil {
		t.Fatal("language not found")
	}
	if len(language.Options) != 2 || language.Options[0].Value != "english" {
		t.Errorf("unexpected options: %+v", language.Options)
	}
}

func TestParseSchemaRejectsUnknownType(t *testing.T) {
	_, err := ParseSchema(map[string]any{
		"mood": map[string]any{"type": "slider"},
	})
	if !errors.Is(err, ErrMalformedSchema) {
		t.Errorf("expected ErrMalformedSchema, got %v", err)
	}
}

func TestParseSchemaRejectsScalarNode(t *testing.T) {
	_, err := ParseSchema(map[string]any{"group": "not an object"})
	if !errors.Is(err, ErrMalformedSchema) {
		t.Errorf("expected ErrMalformedSchema, got %v", err)
	}
}

func TestParseSchemaRejectsSelectWithoutOptions(t *testing.T) {
	_, err := ParseSchema(map[string]any{
		"voice": map[string]any{"type": "select"},
	})
	if !errors.Is(err, ErrMalformedSchema) {
		t.Errorf("expected ErrMalformedSchema, got %v", err)
	}
}

func TestParseSchemaRejectsNonNumericBound(t *testing.T) {
	_, err := ParseSchema(map[string]any{
		"speed": map[string]any{"type": "range", "min": "fast"},
	})
	if !errors.Is(err, ErrMalformedSchema) {
		t.Errorf("expected ErrMalformedSchema, got %v", err)
	}
}

func TestParseSchemaRejectsMisplacedConstraints(t *testing.T) {
	cases := map[string]map[string]any{
		"checkbox with options": {
			"agree": map[string]any{
				"type":    "checkbox",
				"options": []any{map[string]any{"value": "yes"}},
			},
		},
		"range with validation": {
			"speed": map[string]any{
				"type":       "range",
				"validation": map[string]any{"min_length": 10},
			},
		},
		"text with numeric bounds": {
			"title": map[string]any{"type": "text", "min": 1, "max": 5},
		},
		"select with accept": {
			"voice": map[string]any{
				"type":    "select",
				"options": []any{map[string]any{"value": "calm"}},
				"accept":  []any{"audio/mp3"},
			},
		},
	}

	for name, raw := range cases {
		if _, err := ParseSchema(raw); !errors.Is(err, ErrMalformedSchema) {
			t.Errorf("%s: expected ErrMalformedSchema, got %v", name, err)
		}
	}
}

func TestParseSchemaDepthCap(t *testing.T) {
	leaf := map[string]any{"type": "text"}
	deep := map[string]any{"field": leaf}
	for i := 0; i < 40; i++ {
		deep = map[string]any{"level": deep}
	}

	_, err := ParseSchema(deep)
	if !errors.Is(err, ErrMalformedSchema) {
		t.Errorf("expected ErrMalformedSchema, got %v", err)
	}
}

func TestParseSchemaAcceptsBSONDocuments(t *testing.T) {
	schema, err := ParseSchema(map[string]any{
		"output": primitive.M{
			"format": primitive.M{
				"type": "select",
				"options": primitive.A{
					primitive.M{"value": "mp3", "label": "MP3"},
				},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := schema.Flatten()["output.format"]; !ok {
		t.Error("output.format not found")
	}
}

func TestFlattenAlreadyFlat(t *testing.T) {
	schema, err := ParseSchema(map[string]any{
		"title":  map[string]any{"type": "text"},
		"public": map[string]any{"type": "checkbox"},
	})
	if err != nil {
		t.Fatal(err)
	}

	paths := schema.Paths()
	if diff := cmp.Diff([]string{"public", "title"}, paths); diff != "" {
		t.Errorf("unexpected paths (-want +got):\n%s", diff)
	}
}

func TestFlattenCompleteness(t *testing.T) {
	schema, err := ParseSchema(bookSchema)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"basic_info.author_name",
		"basic_info.concept",
		"language",
		"structure.chapters_count",
	}
	sort.Strings(want)
	if diff := cmp.Diff(want, schema.Paths()); diff != "" {
		t.Errorf("unexpected paths (-want +got):\n%s", diff)
	}

	flattened := schema.Flatten()
	if len(flattened) != len(want) {
		t.Errorf("expected %d leaves, got %d", len(want), len(flattened))
	}
}

func TestFlattenEmptyGroup(t *testing.T) {
	schema, err := ParseSchema(map[string]any{"empty": map[string]any{}})
	if err != nil {
		t.Fatal(err)
	}
	if len(schema.Flatten()) != 0 {
		t.Error("empty group should flatten to nothing")
	}
}
