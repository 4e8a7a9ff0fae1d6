// Package jsonutil provides shared utilities for JSON parsing patterns:
// error handling, type conversion, and envelope-tolerant array decoding.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
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
// Handles string, float64 (formatted as integer), bool, and other types.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Format as integer for whole numbers, otherwise as float
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// UnmarshalArrayAllowEmpty unmarshals JSON data into a slice.
// Empty arrays are allowed.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		// "null" decodes to a nil slice without error.
		return nil, fmt.Errorf("%s: expected array, got null", context)
	}
	return entries, nil
}

// UnmarshalArrayOrField unmarshals either a bare JSON array or an object
// whose field holds the array. Any other shape is an error.
func UnmarshalArrayOrField[T any](data []byte, field, context string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%s: empty body", context)
	}
	switch trimmed[0] {
	case '[':
		return UnmarshalArrayAllowEmpty[T](trimmed, context)
	case '{':
		var envelope map[string]json.RawMessage
		if err := UnmarshalWithContext(trimmed, &envelope, context); err != nil {
			return nil, err
		}
		raw, ok := envelope[field]
		if !ok {
			return nil, fmt.Errorf("%s: object has no %q field", context, field)
		}
		return UnmarshalArrayAllowEmpty[T](raw, context)
	default:
		return nil, fmt.Errorf("%s: expected array or object, got %q", context, string(trimmed[:1]))
	}
}
