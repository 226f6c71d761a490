// Package groupby partitions flat record lists into ordered groups,
// keyed by the string form of whatever a selector returns.
package groupby

import (
	"fmt"
	"sort"
)

// Group holds every record whose selector value stringified to Key,
// in the order the records arrived.
type Group[T any] struct {
	Key     string
	Records []T
}

// Key returns the string form of a selector value. Groups are keyed,
// compared and sorted by this form regardless of the value's type.
func Key(value any) string {
	return fmt.Sprint(value)
}

// By partitions records by the string form of key(record). Groups are
// returned sorted ascending by Key as strings, so numeric keys order
// lexicographically ("10" before "2"). Records keep their input order
// within each group, and the input slice is not modified.
func By[T any](records []T, key func(record T) any) []Group[T] {
	grouped := make(map[string][]T, len(records))
	for _, record := range records {
		k := Key(key(record))
		grouped[k] = append(grouped[k], record)
	}

	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group[T], 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group[T]{
			Key:     k,
			Records: grouped[k],
		})
	}
	return groups
}

// Field returns a selector reading a single field from a map record.
// Records without the field yield nil and group under Key(nil).
func Field(name string) func(record map[string]any) any {
	return func(record map[string]any) any {
		return record[name]
	}
}
