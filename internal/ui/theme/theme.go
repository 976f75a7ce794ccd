// Package theme provides the semantic color palettes used by the picker.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a named set of semantic colors. Every color is adaptive so the
// same palette works on light and dark terminals.
type Theme struct {
	Name string

	Primary   lipgloss.AdaptiveColor // Title, focused input border
	Secondary lipgloss.AdaptiveColor // Focused row text
	Accent    lipgloss.AdaptiveColor // Count number, icon
	Success   lipgloss.AdaptiveColor // Committed selection

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor // Hints, placeholder, scroll markers

	BackgroundSecondary lipgloss.AdaptiveColor // Focused row background

	BorderNormal lipgloss.AdaptiveColor // Preview pane, "no matches"
	BorderDim    lipgloss.AdaptiveColor // Unfocused input border
}

func init() {
	RegisterTheme(tokyoNight)
	RegisterTheme(gruvbox)
	RegisterTheme(catppuccin)
	RegisterTheme(nord)
}

var tokyoNight = Theme{
	Name:                "tokyonight",
	Primary:             lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
	Secondary:           lipgloss.AdaptiveColor{Dark: "#c099ff", Light: "#9854f1"},
	Accent:              lipgloss.AdaptiveColor{Dark: "#ff966c", Light: "#b15c00"},
	Success:             lipgloss.AdaptiveColor{Dark: "#c3e88d", Light: "#587539"},
	Text:                lipgloss.AdaptiveColor{Dark: "#c8d3f5", Light: "#3760bf"},
	TextMuted:           lipgloss.AdaptiveColor{Dark: "#636da6", Light: "#848cb5"},
	BackgroundSecondary: lipgloss.AdaptiveColor{Dark: "#2f334d", Light: "#c8c9ce"},
	BorderNormal:        lipgloss.AdaptiveColor{Dark: "#3b4261", Light: "#a8aecb"},
	BorderDim:           lipgloss.AdaptiveColor{Dark: "#292e42", Light: "#c8c9ce"},
}

var gruvbox = Theme{
	Name:                "gruvbox",
	Primary:             lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"},
	Secondary:           lipgloss.AdaptiveColor{Dark: "#d3869b", Light: "#8f3f71"},
	Accent:              lipgloss.AdaptiveColor{Dark: "#fabd2f", Light: "#b57614"},
	Success:             lipgloss.AdaptiveColor{Dark: "#b8bb26", Light: "#79740e"},
	Text:                lipgloss.AdaptiveColor{Dark: "#ebdbb2", Light: "#3c3836"},
	TextMuted:           lipgloss.AdaptiveColor{Dark: "#a89984", Light: "#7c6f64"},
	BackgroundSecondary: lipgloss.AdaptiveColor{Dark: "#504945", Light: "#ebdbb2"},
	BorderNormal:        lipgloss.AdaptiveColor{Dark: "#504945", Light: "#bdae93"},
	BorderDim:           lipgloss.AdaptiveColor{Dark: "#3c3836", Light: "#d5c4a1"},
}

var catppuccin = Theme{
	Name:                "catppuccin",
	Primary:             lipgloss.AdaptiveColor{Dark: "#89b4fa", Light: "#1e66f5"},
	Secondary:           lipgloss.AdaptiveColor{Dark: "#cba6f7", Light: "#8839ef"},
	Accent:              lipgloss.AdaptiveColor{Dark: "#fab387", Light: "#fe640b"},
	Success:             lipgloss.AdaptiveColor{Dark: "#a6e3a1", Light: "#40a02b"},
	Text:                lipgloss.AdaptiveColor{Dark: "#cdd6f4", Light: "#4c4f69"},
	TextMuted:           lipgloss.AdaptiveColor{Dark: "#6c7086", Light: "#9ca0b0"},
	BackgroundSecondary: lipgloss.AdaptiveColor{Dark: "#313244", Light: "#e6e9ef"},
	BorderNormal:        lipgloss.AdaptiveColor{Dark: "#6c7086", Light: "#9ca0b0"},
	BorderDim:           lipgloss.AdaptiveColor{Dark: "#45475a", Light: "#ccd0da"},
}

// nord uses the Polar Night / Snow Storm / Frost swatches directly.
var nord = Theme{
	Name:                "nord",
	Primary:             lipgloss.AdaptiveColor{Dark: "#88C0D0", Light: "#5E81AC"},
	Secondary:           lipgloss.AdaptiveColor{Dark: "#81A1C1", Light: "#81A1C1"},
	Accent:              lipgloss.AdaptiveColor{Dark: "#8FBCBB", Light: "#8FBCBB"},
	Success:             lipgloss.AdaptiveColor{Dark: "#A3BE8C", Light: "#A3BE8C"},
	Text:                lipgloss.AdaptiveColor{Dark: "#ECEFF4", Light: "#2E3440"},
	TextMuted:           lipgloss.AdaptiveColor{Dark: "#8B95A7", Light: "#3B4252"},
	BackgroundSecondary: lipgloss.AdaptiveColor{Dark: "#3B4252", Light: "#E5E9F0"},
	BorderNormal:        lipgloss.AdaptiveColor{Dark: "#434C5E", Light: "#4C566A"},
	BorderDim:           lipgloss.AdaptiveColor{Dark: "#434C5E", Light: "#4C566A"},
}
