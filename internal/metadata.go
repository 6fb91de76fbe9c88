package internal

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Metadata holds at most one value per dynamic type. It is never mutated in
// place: With returns a copy.
type Metadata struct {
	entries map[reflect.Type]any
}

// With returns a copy of m holding value under its dynamic type.
func (m Metadata) With(value any) Metadata {
	if value == nil {
		return m
	}
	return m.WithType(reflect.TypeOf(value), value)
}

// WithType returns a copy of m holding value under typ.
func (m Metadata) WithType(typ reflect.Type, value any) Metadata {
	entries := make(map[reflect.Type]any, len(m.entries)+1)
	maps.Copy(entries, m.entries)
	entries[typ] = value

	return Metadata{entries}
}

func (m Metadata) Lookup(typ reflect.Type) (any, bool) {
	v, ok := m.entries[typ]
	return v, ok
}

func (m Metadata) Len() int {
	return len(m.entries)
}

func (m Metadata) String() string {
	parts := make([]string, 0, len(m.entries))
	for typ, v := range m.entries {
		parts = append(parts, fmt.Sprintf("%s: %v", typ, v))
	}
	slices.Sort(parts)

	return "{" + strings.Join(parts, ", ") + "}"
}

func (m Metadata) IsEmpty() bool {
	return len(m.entries) == 0
}
