package domain

import (
	"reflect"

	"github.com/samber/lo"
)

// Normalize converts source values into BaseItems.
//
// With no fields every item maps 1:1 in order. With fields, only records
// holding at least one named field survive; the same record appearing twice
// collapses to its first position.
func Normalize(items []any, fields []string) []*BaseItem {
	if len(fields) > 0 {
		return normalizeByFields(items, fields)
	}
	return lo.Map(items, func(item any, _ int) *BaseItem {
		return NewBaseItem(item, nil)
	})
}

// NormalizeValue is the lenient entry point for decoded configuration or
// file contents: anything that is not a list yields no items.
func NormalizeValue(v any, fields []string) []*BaseItem {
	items, ok := AsItems(v)
	if !ok {
		return []*BaseItem{}
	}
	return Normalize(items, fields)
}

// AsItems converts any slice or array value into []any.
func AsItems(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func normalizeByFields(items []any, fields []string) []*BaseItem {
	seen := make(map[uintptr]struct{})
	kept := lo.Filter(items, func(item any, _ int) bool {
		rec, ok := asRecord(item)
		if !ok || !hasAnyField(rec, fields) {
			return false
		}
		if id, ok := identity(item); ok {
			if _, dup := seen[id]; dup {
				return false
			}
			seen[id] = struct{}{}
		}
		return true
	})
	return lo.Map(kept, func(item any, _ int) *BaseItem {
		return NewBaseItem(item, fields)
	})
}

func hasAnyField(rec Record, fields []string) bool {
	return lo.SomeBy(fields, func(name string) bool {
		_, ok := rec[name]
		return ok
	})
}
