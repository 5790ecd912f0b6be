package common

import (
	"github.com/simplecontainer/inventory/pkg/contracts/idescribe"
	"sort"
	"strings"
	"time"
)

// Normalize converts every raw object and orders the records by name. The
// order the runtime enumerated them in is not preserved.
func Normalize[R any, T any](objects []R, from func(R) T, name func(T) string) []T {
	records := make([]T, 0, len(objects))

	for _, object := range objects {
		records = append(records, from(object))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return name(records[i]) < name(records[j])
	})

	return records
}

func Describables[T idescribe.Describe](records []T) []idescribe.Describe {
	objects := make([]idescribe.Describe, 0, len(records))

	for _, record := range records {
		objects = append(objects, record)
	}

	return objects
}

// Clone copies the pointed value so records never share memory with raw objects.
func Clone[T any](value *T) *T {
	if value == nil {
		return nil
	}

	copied := *value
	return &copied
}

// Known treats negative counters as not computed by the engine.
func Known(value *int64) *int64 {
	if value == nil || *value < 0 {
		return nil
	}

	return Clone(value)
}

// Unix formats engine unix seconds as RFC3339 in UTC; absent stays empty.
func Unix(seconds *int64) string {
	if seconds == nil {
		return ""
	}

	return time.Unix(*seconds, 0).UTC().Format(time.RFC3339)
}

func ShortID(id string) string {
	id = strings.TrimPrefix(id, "sha256:")

	if len(id) > 12 {
		return id[:12]
	}

	return id
}

func SortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))

	for k := range values {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

func Dash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
