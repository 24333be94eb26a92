package settings

import "strings"

// lookupPath walks data along the dotted path and reports whether a
// value was found. Missing keys and non-object intermediates both read
// as absent.
func lookupPath(data map[string]any, path string) (any, bool) {
	var value any = data
	for _, key := range strings.Split(path, ".") {
		node, ok := asMap(value)
		if !ok {
			return nil, false
		}
		value, ok = node[key]
		if !ok {
			return nil, false
		}
	}
	return value, true
}

// setPath writes value into data at the dotted path, creating
// intermediate objects as needed.
func setPath(data map[string]any, path string, value any) {
	keys := strings.Split(path, ".")
	current := data
	for _, key := range keys[:len(keys)-1] {
		next, ok := asMap(current[key])
		if !ok {
			next = make(map[string]any)
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}
