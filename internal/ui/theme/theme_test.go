package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinThemesRegistered(t *testing.T) {
	assert.Equal(t, []string{"catppuccin", "gruvbox", "nord", "tokyonight"}, Available())
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("tokyonight") })

	require.True(t, SetTheme("nord"))
	assert.Equal(t, "nord", Current().Name)

	assert.False(t, SetTheme("does-not-exist"))
	assert.Equal(t, "nord", Current().Name, "unknown names leave the theme unchanged")
}

func TestCycleThemeWraps(t *testing.T) {
	t.Cleanup(func() { SetTheme("tokyonight") })

	require.True(t, SetTheme("tokyonight"))
	assert.Equal(t, "catppuccin", CycleTheme())
	assert.Equal(t, "gruvbox", CycleTheme())
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range Available() {
		require.True(t, SetTheme(name))
		th := Current()
		for label, c := range map[string]string{
			"Primary":   th.Primary.Dark,
			"Secondary": th.Secondary.Dark,
			"Accent":    th.Accent.Dark,
			"Text":      th.Text.Dark,
			"TextMuted": th.TextMuted.Dark,
			"BorderDim": th.BorderDim.Light,
		} {
			assert.NotEmpty(t, c, "%s: %s is empty", name, label)
		}
	}
	SetTheme("tokyonight")
}
