package models

import (
	"strconv"
	"strings"
)

// Helpers for walking decoded JSON objects. The API mixes value types
// freely (numeric IDs as strings, string prices as numbers), so every
// access goes through a coercing getter with a documented default.

func stringOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func intOf(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func floatOf(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// getString returns the first non-empty string value among keys.
func getString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s := stringOf(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// getInt returns the value of the first present key, or def when none
// of the keys exist or the value cannot be read as an integer.
func getInt(m map[string]any, def int, keys ...string) int {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			if n, ok := intOf(v); ok {
				return n
			}
		}
	}
	return def
}

func getFloat(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			if f, ok := floatOf(v); ok {
				return f
			}
		}
	}
	return 0
}

func getBool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func getMap(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

func getList(m map[string]any, key string) []any {
	v, _ := m[key].([]any)
	return v
}

// getMapList collects the object entries of a list field, skipping
// anything that is not an object.
func getMapList(m map[string]any, key string) []map[string]any {
	var out []map[string]any
	for _, item := range getList(m, key) {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
