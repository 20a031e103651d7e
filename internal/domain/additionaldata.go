package domain

import "encoding/json"

// AdditionalData is the extensible key-value payload attached to
// requests and responses. It crosses process boundaries between
// independently-versioned apps, so the typed accessors degrade
// gracefully: on a missing key or a type mismatch they return the
// zero value instead of erroring.
type AdditionalData struct {
	values map[string]interface{}
}

func NewAdditionalData() *AdditionalData {
	return &AdditionalData{values: map[string]interface{}{}}
}

func (d *AdditionalData) Put(key string, value interface{}) {
	if d.values == nil {
		d.values = map[string]interface{}{}
	}
	d.values[key] = value
}

func (d *AdditionalData) Remove(key string) {
	delete(d.values, key)
}

func (d *AdditionalData) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

func (d *AdditionalData) IsEmpty() bool {
	return d == nil || len(d.values) == 0
}

func (d *AdditionalData) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	return keys
}

// Value returns the raw value for a key.
func (d *AdditionalData) Value(key string) (interface{}, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

func (d *AdditionalData) GetString(key string) string {
	if v, ok := d.Value(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (d *AdditionalData) GetStringOr(key, fallback string) string {
	if s := d.GetString(key); s != "" {
		return s
	}
	return fallback
}

// GetInt64 reads an integer value. JSON decoding produces float64 for
// numbers, so both representations are accepted.
func (d *AdditionalData) GetInt64(key string) int64 {
	v, ok := d.Value(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
	}
	return 0
}

func (d *AdditionalData) GetBool(key string) bool {
	if v, ok := d.Value(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func (d *AdditionalData) GetStringSlice(key string) []string {
	v, ok := d.Value(key)
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []string:
		return s
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil
			}
			out = append(out, str)
		}
		return out
	}
	return nil
}

// Merge copies all entries from other, overwriting existing keys.
func (d *AdditionalData) Merge(other *AdditionalData) {
	if other == nil {
		return
	}
	for k, v := range other.values {
		d.Put(k, v)
	}
}

func (d *AdditionalData) Clone() *AdditionalData {
	clone := NewAdditionalData()
	clone.Merge(d)
	return clone
}

func (d *AdditionalData) MarshalJSON() ([]byte, error) {
	if d == nil || d.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.values)
}

func (d *AdditionalData) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &d.values)
}
