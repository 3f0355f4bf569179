package types

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Fields holds the opaque, schema-less part of a document. It is flattened
// into the top level of the document both in JSON and in BSON.
type Fields map[string]any

// reservedKeys are owned by the storage layer (or are driver artefacts)
// and are stripped from client-supplied Fields.
var reservedKeys = []string{"_id", "id", "createdAt", "updatedAt", "__v"}

// withoutReserved returns a copy of f without reserved keys, or nil when
// nothing is left. Keys are compared case-insensitively.
func (f Fields) withoutReserved() Fields {
	if len(f) == 0 {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		if !matchesAny(k, reservedKeys) {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// matchesAny reports whether key equals one of names, ignoring case the
// way encoding/json does when matching object keys to struct fields.
func matchesAny(key string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(key, n) {
			return true
		}
	}
	return false
}

// declaredKeys collects the JSON names of the fields of struct type t,
// descending into embedded structs.
func declaredKeys(t reflect.Type, keys *[]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			declaredKeys(f.Type, keys)
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		*keys = append(*keys, name)
	}
}

// decodeWithFields decodes data into v (a pointer to a struct) and returns
// the top-level keys v does not declare. A key that encoding/json matched
// to a declared field in another case is not returned.
func decodeWithFields(data []byte, v any) (Fields, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	var keys []string
	declaredKeys(reflect.TypeOf(v).Elem(), &keys)
	for k := range all {
		if matchesAny(k, keys) {
			delete(all, k)
		}
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// encodeWithFields encodes v and merges extra into the resulting object.
// Declared fields win over extra keys of the same name.
func encodeWithFields(v any, extra Fields) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := merged[k]; ok {
			continue
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		merged[k] = raw
	}
	return json.Marshal(merged)
}

// Date accepts either an RFC 3339 timestamp or a plain YYYY-MM-DD date.
type Date struct {
	time.Time
}

// UnmarshalJSON parses "2024-06-01T09:00:00Z" or "2024-06-01".
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse date %q", s)
}

// ptr converts an optional Date into the UTC pointer stored on entities.
func (d *Date) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.UTC()
	return &t
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
