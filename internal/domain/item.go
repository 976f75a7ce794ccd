// Package domain holds the searchable item model shared by the combo box.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Record is a structured source value: named fields mapped to values.
type Record = map[string]any

// BaseItem is the normalized, searchable wrapper around one source value.
//
// Invariants:
//   - content is computed once in NewBaseItem and never changes.
//   - origin aliases the caller's value; it is not copied.
//   - for record sources, every key/value pair is merged onto the item so
//     fields can be read directly (sorting relies on this).
type BaseItem struct {
	content string
	origin  any
	record  Record
}

// NewBaseItem builds a BaseItem from an arbitrary value.
//
// Scalars use their string form and nil becomes "null". Records use the
// ", " joined values of fields that exist on the record, or their JSON
// serialization when fields is empty.
func NewBaseItem(v any, fields []string) *BaseItem {
	item := &BaseItem{origin: v}

	rec, ok := asRecord(v)
	if !ok {
		if inner, isItem := v.(*BaseItem); isItem && inner != nil {
			item.content = inner.content
			return item
		}
		item.content = stringify(v)
		return item
	}

	item.record = merge(make(Record, len(rec)), rec)
	if len(fields) == 0 {
		item.content = serialize(rec)
		return item
	}

	contents := make([]string, 0, len(fields))
	for _, name := range fields {
		if value, present := rec[name]; present {
			contents = append(contents, stringify(value))
		}
	}
	item.content = strings.Join(contents, ", ")
	return item
}

// AsBaseItem reports whether v is a normalized item.
func AsBaseItem(v any) (*BaseItem, bool) {
	item, ok := v.(*BaseItem)
	if !ok || item == nil {
		return nil, false
	}
	return item, true
}

// Content returns the searchable and displayed text.
func (b *BaseItem) Content() string { return b.content }

// Origin returns the source value the item was built from.
func (b *BaseItem) Origin() any { return b.origin }

// IsRecord reports whether the source value was a structured record.
func (b *BaseItem) IsRecord() bool { return b.record != nil }

// Field returns the merged value stored under name.
func (b *BaseItem) Field(name string) (any, bool) {
	if b.record == nil {
		return nil, false
	}
	v, ok := b.record[name]
	return v, ok
}

// FieldString returns the string form of a field, as used for search content.
func (b *BaseItem) FieldString(name string) (string, bool) {
	v, ok := b.Field(name)
	if !ok {
		return "", false
	}
	return stringify(v), true
}

// Record returns a copy of the merged fields, or nil for non-record items.
func (b *BaseItem) Record() Record {
	if b.record == nil {
		return nil
	}
	return maps.Clone(b.record)
}

// String implements fmt.Stringer.
func (b *BaseItem) String() string { return b.content }

// merge copies every present key/value pair of src onto dst.
func merge(dst, src Record) Record {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// asRecord converts string-keyed maps (and items built from them) to a Record.
func asRecord(v any) (Record, bool) {
	switch typed := v.(type) {
	case nil:
		return nil, false
	case Record:
		if typed == nil {
			return nil, false
		}
		return typed, true
	case *BaseItem:
		if typed == nil || typed.record == nil {
			return nil, false
		}
		return typed.record, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	rec := make(Record, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		rec[iter.Key().String()] = iter.Value().Interface()
	}
	return rec, true
}

// identity returns a key that is equal for two references to the same record.
func identity(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}

func stringify(v any) string {
	switch typed := v.(type) {
	case nil:
		return "null"
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case json.Number:
		return typed.String()
	case *BaseItem:
		if typed == nil {
			return "null"
		}
		return typed.content
	case fmt.Stringer:
		return typed.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatNumber(rv.Float())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = stringify(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	case reflect.Map:
		if rec, ok := asRecord(v); ok {
			return serialize(rec)
		}
	}
	return fmt.Sprint(v)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// serialize renders a record as compact JSON with sorted keys. Records holding
// values JSON cannot encode fall back to fmt formatting.
func serialize(rec Record) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Sprint(rec)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
