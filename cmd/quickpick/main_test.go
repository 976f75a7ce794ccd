package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickpick/internal/config"
	"quickpick/internal/domain"
	"quickpick/internal/ui"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestComputeRuntimeOptionsUsesConfigDefaults(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))
	require.NoError(t, config.ApplyOverrides(map[string]any{
		config.KeyFields:    "name,email",
		config.KeyStrikes:   2,
		config.KeyMatchMode: "fuzzy",
	}))

	opts := computeRuntimeOptions(runtimeFlags{
		fields:  strPtr("ignored"),
		strikes: intPtr(9),
		match:   strPtr("substring"),
	}, map[string]struct{}{})

	assert.Equal(t, []string{"name", "email"}, opts.fields)
	assert.Equal(t, 2, opts.strikes)
	assert.Equal(t, ui.MatchFuzzy, opts.match)
	assert.Equal(t, -1, opts.sortField)
	assert.True(t, opts.showIcon)
	assert.False(t, opts.debug)
}

func TestComputeRuntimeOptionsExplicitFlagsWin(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))

	visited := map[string]struct{}{
		"items": {}, "fields": {}, "strikes": {}, "sort-field": {},
		"show-icon": {}, "match": {}, "copy": {},
	}
	opts := computeRuntimeOptions(runtimeFlags{
		itemsFile: strPtr(" people.json "),
		fields:    strPtr("name, ,email"),
		strikes:   intPtr(0),
		sortField: intPtr(1),
		showIcon:  boolPtr(false),
		match:     strPtr("FUZZY"),
		copy:      boolPtr(true),
		debug:     boolPtr(true),
	}, visited)

	assert.Equal(t, "people.json", opts.itemsFile)
	assert.Equal(t, []string{"name", "email"}, opts.fields)
	assert.Equal(t, ui.DefaultStrikes, opts.strikes, "strikes below 1 fall back")
	assert.Equal(t, 1, opts.sortField)
	assert.False(t, opts.showIcon)
	assert.Equal(t, ui.MatchFuzzy, opts.match)
	assert.True(t, opts.copy)
	assert.True(t, opts.debug)
}

func TestLoadItemsPrefersFile(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))
	require.NoError(t, config.ApplyOverrides(map[string]any{
		config.KeyItems: []any{"from-config"},
	}))

	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o644))

	items, err := loadItems(runtimeOptions{itemsFile: path}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"from-file"}, items)

	items, err = loadItems(runtimeOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"from-config"}, items)
}

func TestLoadItemsWithoutSourceIsEmpty(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))

	items, err := loadItems(runtimeOptions{}, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBuildAppConfig(t *testing.T) {
	cfg := buildAppConfig(runtimeOptions{
		fields:    []string{"name"},
		strikes:   2,
		sortField: 0,
		match:     ui.MatchSubstring,
		showCount: true,
		locale:    "de",
		preview:   true,
	}, []any{"a"})

	assert.Equal(t, []string{"name"}, cfg.ComboBox.Fields)
	assert.Equal(t, 2, cfg.ComboBox.Strikes)
	assert.Equal(t, 0, cfg.ComboBox.SortFieldIndex)
	assert.True(t, cfg.ComboBox.ShowCount)
	assert.Equal(t, "de", cfg.ComboBox.Locale)
	assert.Equal(t, []any{"a"}, cfg.ComboBox.Items)
	assert.True(t, cfg.Preview)
	assert.NotNil(t, cfg.SaveTheme)
}

type fakeProgram struct {
	run func() error
}

func (p fakeProgram) Run() (tea.Model, error) {
	return nil, p.run()
}

func TestRunProgramReturnsAcceptedItem(t *testing.T) {
	cfg := ui.Config{ComboBox: ui.DefaultComboBoxConfig()}
	cfg.ComboBox.Items = []any{"apple", "banana"}

	var app *ui.App
	picked, err := runProgram(cfg, ui.NewApp, func(a *ui.App) programRunner {
		app = a
		return fakeProgram{run: func() error {
			combo := a.ComboBox()
			combo.Select(combo.BaseItems()[1])
			a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
			return nil
		}}
	})
	require.NoError(t, err)
	require.NotNil(t, picked)
	assert.Equal(t, "banana", picked.Content())
	assert.False(t, app.ComboBox().Mounted(), "app is closed after the run")
}

func TestRunProgramWithoutAcceptReturnsNil(t *testing.T) {
	cfg := ui.Config{ComboBox: ui.DefaultComboBoxConfig()}

	picked, err := runProgram(cfg, ui.NewApp, func(a *ui.App) programRunner {
		return fakeProgram{run: func() error { return nil }}
	})
	require.NoError(t, err)
	assert.Nil(t, picked)
}

func TestRunProgramWrapsRunError(t *testing.T) {
	cfg := ui.Config{ComboBox: ui.DefaultComboBoxConfig()}
	boom := errors.New("boom")

	_, err := runProgram(cfg, ui.NewApp, func(a *ui.App) programRunner {
		return fakeProgram{run: func() error { return boom }}
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "run UI")
}

func TestRunProgramRejectsNilFactory(t *testing.T) {
	_, err := runProgram(ui.Config{}, ui.NewApp, nil)
	require.Error(t, err)
}

func TestWriteResult(t *testing.T) {
	t.Run("StringPrintsRaw", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResult(&buf, domain.NewBaseItem("apple", nil), false, nil))
		assert.Equal(t, "apple\n", buf.String())
	})

	t.Run("RecordPrintsJSONAndCopies", func(t *testing.T) {
		var buf bytes.Buffer
		var copied string
		item := domain.NewBaseItem(map[string]any{"name": "Ada", "age": 36}, []string{"name"})
		require.NoError(t, writeResult(&buf, item, true, func(s string) error {
			copied = s
			return nil
		}))
		assert.Equal(t, `{"age":36,"name":"Ada"}`+"\n", buf.String())
		assert.Equal(t, `{"age":36,"name":"Ada"}`, copied)
	})

	t.Run("ClipboardFailure", func(t *testing.T) {
		var buf bytes.Buffer
		err := writeResult(&buf, domain.NewBaseItem("x", nil), true, func(string) error {
			return errors.New("no clipboard")
		})
		require.Error(t, err)
		assert.Equal(t, "x\n", buf.String())
	})
}
