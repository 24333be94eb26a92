package settings

import (
	"fmt"
	"sort"
)

type (
	// Schema is the parsed form of a settings_schema document. Keys are
	// field or group names, values are the nodes below them.
	Schema map[string]*Node

	// Node is one entry in a schema tree: a field leaf or a named group.
	// Exactly one of Field and Children is set.
	Node struct {
		Field    *Field
		Children Schema
	}
)

// Flatten converts the schema tree into a mapping from dotted path to
// field definition. Group nodes contribute only path segments.
func (s Schema) Flatten() map[string]*Field {
	flattened := make(map[string]*Field)
	s.flattenInto(flattened, "")
	return flattened
}

func (s Schema) flattenInto(dst map[string]*Field, prefix string) {
	for key, node := range s {
		path := key
		if prefix != "" {
			path = fmt.Sprintf("%s.%s", prefix, key)
		}

		if node.Field != nil {
			dst[path] = node.Field
		} else {
			node.Children.flattenInto(dst, path)
		}
	}
}

// Paths returns every leaf path of the schema in sorted order.
func (s Schema) Paths() []string {
	return sortedPaths(s.Flatten())
}

// sortedPaths fixes the iteration order so repeated runs report errors
// in a stable sequence.
func sortedPaths(flattened map[string]*Field) []string {
	paths := make([]string, 0, len(flattened))
	for path := range flattened {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
