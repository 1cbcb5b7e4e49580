package external

import (
	"bytes"
	"encoding/json"
)

// JSONObject is a loosely-typed JSON object. Lookups report whether the key
// was present with a value of the requested type.
type JSONObject map[string]json.RawMessage

var null = []byte("null")

// Raw returns the undecoded value of key. A JSON null counts as present.
func (o JSONObject) Raw(key string) (json.RawMessage, bool) {
	value, ok := o[key]
	return value, ok
}

// Float returns key as a number.
func (o JSONObject) Float(key string) (float64, bool) {
	value, ok := o[key]
	if !ok || bytes.Equal(bytes.TrimSpace(value), null) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(value, &f); err != nil {
		return 0, false
	}
	return f, true
}

// String returns key as a string.
func (o JSONObject) String(key string) (string, bool) {
	value, ok := o[key]
	if !ok || bytes.Equal(bytes.TrimSpace(value), null) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}

// StringOrDefault returns key as a string, or defaultValue when absent or not a string.
func (o JSONObject) StringOrDefault(key, defaultValue string) string {
	if s, ok := o.String(key); ok {
		return s
	}
	return defaultValue
}
