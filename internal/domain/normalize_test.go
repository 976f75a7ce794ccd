package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contents(items []*BaseItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Content()
	}
	return out
}

func TestNormalizeScalarsPreservesOrder(t *testing.T) {
	items := Normalize([]any{"x", 5, nil}, nil)
	assert.Equal(t, []string{"x", "5", "null"}, contents(items))
}

func TestNormalizeByFieldsDropsRecordsWithoutFields(t *testing.T) {
	items := Normalize([]any{
		map[string]any{"a": 1, "b": 2},
		map[string]any{"b": 3},
	}, []string{"a"})

	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].Content())
}

func TestNormalizeByFieldsDropsNonRecords(t *testing.T) {
	items := Normalize([]any{"loose", 4, nil, map[string]any{"name": "kept"}}, []string{"name"})
	assert.Equal(t, []string{"kept"}, contents(items))
}

func TestNormalizeByFieldsCollapsesSameRecord(t *testing.T) {
	shared := map[string]any{"name": "Ada"}
	other := map[string]any{"name": "Ada"}

	items := Normalize([]any{shared, other, shared}, []string{"name"})

	require.Len(t, items, 2, "equal but distinct records both survive")
	assert.Equal(t, shared, items[0].Origin())
	assert.Equal(t, other, items[1].Origin())
}

func TestNormalizeByFieldsAnyFieldQualifies(t *testing.T) {
	items := Normalize([]any{
		map[string]any{"email": "b@example.com"},
		map[string]any{"name": "Ada", "email": "a@example.com"},
	}, []string{"name", "email"})

	assert.Equal(t, []string{"b@example.com", "Ada, a@example.com"}, contents(items))
}

func TestNormalizeIsIdempotentOnContent(t *testing.T) {
	first := Normalize([]any{"apple", 3.25, true, nil}, nil)

	again := make([]any, len(first))
	for i, item := range first {
		again[i] = item.Content()
	}
	second := Normalize(again, nil)

	assert.Equal(t, contents(first), contents(second))
}

func TestNormalizeValueIsLenient(t *testing.T) {
	assert.Empty(t, NormalizeValue("not a list", nil))
	assert.Empty(t, NormalizeValue(nil, []string{"a"}))
	assert.Empty(t, NormalizeValue(map[string]any{"a": 1}, []string{"a"}))

	typed := NormalizeValue([]string{"a", "b"}, nil)
	assert.Equal(t, []string{"a", "b"}, contents(typed))
}

func TestNormalizeEmptyInputIsNonNil(t *testing.T) {
	assert.NotNil(t, Normalize(nil, nil))
	assert.NotNil(t, Normalize(nil, []string{"a"}))
}
