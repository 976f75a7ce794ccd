package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "quickpick/internal/errors"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	require.NoError(t, Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))))

	assert.Equal(t, DefaultStrikes, GetInt(KeyStrikes))
	assert.Equal(t, -1, GetInt(KeySortFieldIndex))
	assert.True(t, GetBool(KeyShowIcon))
	assert.False(t, GetBool(KeyShowCount))
	assert.Equal(t, "substring", GetString(KeyMatchMode))
	assert.Equal(t, "en", GetString(KeyLocale))
	assert.Empty(t, GetString(KeyPlaceholder))
	assert.Empty(t, GetStringSlice(KeyFields))
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "a", "b")
	mustMkdir(t, nested)
	writeFile(t, filepath.Join(projectDir, ".quickpick", "config.yaml"), `
placeholder: project
fields: [name, email]
sort-field-index: 1
`)
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
placeholder: user
strikes: 2
`)

	require.NoError(t, Initialize(WithWorkingDir(nested), WithUserConfig(userCfg)))

	assert.Equal(t, "project", GetString(KeyPlaceholder))
	assert.Equal(t, []string{"name", "email"}, GetStringSlice(KeyFields))
	assert.Equal(t, 1, GetInt(KeySortFieldIndex))
	assert.Equal(t, 2, Strikes(), "user value survives when project config is silent")
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, ".quickpick", "config.yaml")
	writeFile(t, projectCfg, `
show-count: false
locale: en
`)

	t.Setenv("QP_SHOW_COUNT", "true")
	t.Setenv("QP_FIELDS", "title, author ,")

	require.NoError(t, Initialize(WithWorkingDir(tmp), WithProjectConfig(projectCfg), WithUserConfig(filepath.Join(tmp, "none.yaml"))))

	assert.True(t, GetBool(KeyShowCount))
	assert.Equal(t, []string{"title", "author"}, GetStringSlice(KeyFields))

	require.NoError(t, ApplyOverrides(map[string]any{KeyShowCount: false, KeyLocale: "de"}))
	assert.False(t, GetBool(KeyShowCount))
	assert.Equal(t, "de", GetString(KeyLocale))
}

func TestStrikesFallsBackForBadValues(t *testing.T) {
	cases := map[string]string{
		"zero":        "strikes: 0\n",
		"negative":    "strikes: -4\n",
		"non-numeric": "strikes: lots\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			reset()
			t.Cleanup(reset)

			tmp := t.TempDir()
			userCfg := filepath.Join(tmp, "user.yaml")
			writeFile(t, userCfg, body)
			require.NoError(t, Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)))

			assert.Equal(t, DefaultStrikes, Strikes())
		})
	}
}

func TestInlineItemsAreReturnedRaw(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
items:
  - apple
  - name: banana
    color: yellow
`)
	require.NoError(t, Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)))

	items, ok := Get(KeyItems).([]any)
	require.True(t, ok, "expected a list, got %T", Get(KeyItems))
	require.Len(t, items, 2)
	assert.Equal(t, "apple", items[0])
}

func TestMalformedConfigIsStructuredError(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "fields: [unterminated\n")

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg))
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeConfigurationError))
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	t.Chdir(tmp)
	userCfg := filepath.Join(tmp, "home", ".quickpick", "config.yaml")
	userConfigPathOverride = userCfg

	require.NoError(t, SaveTheme("nord"))

	data, err := os.ReadFile(userCfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: nord")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b "))
	assert.Nil(t, SplitList(""))
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
