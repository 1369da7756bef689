package feature

import (
	"strings"

	"github.com/pkg/errors"
)

// AttrMap maps a GTF-style attribute key to its values in file order.
// Repeated keys (e.g. multiple `tag "..."` pairs) accumulate.
type AttrMap map[string][]Value

// ParseAttrs parses a GTF attribute string of `key "value";` pairs
// joined by "; "; the final pair may omit its trailing semicolon.  An
// empty string yields an empty non-nil map.  A pair that does not split
// into exactly a key and a value fails with ErrParse.
func ParseAttrs(attributes string) (AttrMap, error) {
	attrs := AttrMap{}
	if attributes == "" {
		return attrs, nil
	}
	for _, pair := range strings.Split(attributes, "; ") {
		fields := strings.Fields(strings.Trim(pair, ";"))
		if len(fields) != 2 {
			return nil, errors.WithMessagef(ErrParse, "attribute pair %q", pair)
		}
		key := strings.Trim(fields[0], `"`)
		val := strings.Trim(fields[1], `"`)
		attrs[key] = append(attrs[key], NewValue(val))
	}
	return attrs, nil
}
