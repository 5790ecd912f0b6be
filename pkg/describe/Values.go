package describe

import (
	"github.com/docker/go-units"
	"sort"
	"strconv"
)

const NOT_AVAILABLE = "N/A"

func Bool(value *bool) string {
	if value == nil {
		return NOT_AVAILABLE
	}

	return strconv.FormatBool(*value)
}

func Int(value *int64) string {
	if value == nil {
		return NOT_AVAILABLE
	}

	return strconv.FormatInt(*value, 10)
}

func Size(value *int64) string {
	if value == nil {
		return NOT_AVAILABLE
	}

	return units.HumanSize(float64(*value))
}

// Count renders the number of entries; a collection the runtime did not
// report counts as zero.
func Count(length int) string {
	return strconv.Itoa(length)
}

// Map adds one item per key to the section in key order.
func Map(section *Section, values map[string]string) *Section {
	keys := make([]string, 0, len(values))

	for k := range values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		section.Item(k, values[k])
	}

	return section
}
