// Package jsonutil provides small helpers for decoding loosely typed JSON
// values such as positional action arguments.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ToString converts an interface{} value to a string representation.
// Whole float64 values are formatted without a fraction.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == math.Trunc(val) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// minIntFloat is math.MinInt as a float64; it is exact, unlike math.MaxInt.
const minIntFloat = float64(math.MinInt)

// ToInt converts a decoded JSON value or a command-line token to an int.
// Accepts int, whole float64, json.Number and decimal strings. Values that
// do not fit in an int are rejected.
func ToInt(v interface{}) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case float64:
		if val != math.Trunc(val) || val < minIntFloat || val >= -minIntFloat {
			return 0, false
		}
		return int(val), true
	case json.Number:
		n, err := strconv.Atoi(val.String())
		return n, err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		return n, err == nil
	}
	return 0, false
}
