package source

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "quickpick/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSONList(t *testing.T) {
	path := writeFile(t, "people.json", `[{"name":"Ada","age":36},"plain",7]`)

	items, err := Load(path, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)

	rec, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", rec["name"])
	assert.Equal(t, json.Number("36"), rec["age"])
	assert.Equal(t, "plain", items[1])
}

func TestLoadJSONItemsTable(t *testing.T) {
	path := writeFile(t, "wrapped.json", `{"items":["a","b"]}`)

	items, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, items)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "people.yml", "items:\n  - name: Ada\n    role: engineer\n  - name: Grace\n")

	items, err := Load(path, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	rec, ok := items[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Grace", rec["name"])
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "people.toml", "[[items]]\nname = \"Ada\"\nage = 36\n\n[[items]]\nname = \"Grace\"\n")

	items, err := Load(path, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	rec, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", rec["name"])
	assert.EqualValues(t, 36, rec["age"])
}

func TestLoadTextSkipsBlankLines(t *testing.T) {
	path := writeFile(t, "colors.txt", "red\r\n\n  \ngreen\nblue")

	items, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"red", "green", "blue"}, items)
}

func TestLoadStdinSniffsFormat(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		items, err := Load(Stdin, strings.NewReader(`  [1, 2]`))
		require.NoError(t, err)
		assert.Equal(t, []any{json.Number("1"), json.Number("2")}, items)
	})
	t.Run("Text", func(t *testing.T) {
		items, err := Load(Stdin, strings.NewReader("one\ntwo\n"))
		require.NoError(t, err)
		assert.Equal(t, []any{"one", "two"}, items)
	})
}

func TestLoadErrorsAreStructured(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
		require.Error(t, err)
		assert.True(t, appErrors.IsCode(err, appErrors.CodeSourceNotFound))
	})
	t.Run("Unsupported", func(t *testing.T) {
		_, err := Load("items.csv", nil)
		require.Error(t, err)
		assert.True(t, appErrors.IsCode(err, appErrors.CodeUnsupportedFormat))
	})
	t.Run("Malformed", func(t *testing.T) {
		path := writeFile(t, "bad.json", `[{"name":`)
		_, err := Load(path, nil)
		require.Error(t, err)
		assert.True(t, appErrors.IsCode(err, appErrors.CodeParseFailed))
		assert.Contains(t, err.Error(), path)
	})
	t.Run("NotAList", func(t *testing.T) {
		path := writeFile(t, "scalar.yaml", "name: Ada\n")
		_, err := Load(path, nil)
		require.Error(t, err)
		assert.True(t, appErrors.IsCode(err, appErrors.CodeParseFailed))
	})
}

func TestDecodeEmptyDocument(t *testing.T) {
	items, err := Decode([]byte(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]Format{
		"a.json":   FormatJSON,
		"a.YAML":   FormatYAML,
		"a.yml":    FormatYAML,
		"a.toml":   FormatTOML,
		"a.txt":    FormatText,
		"Makefile": FormatText,
	}
	for path, want := range cases {
		got, err := FormatForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}
