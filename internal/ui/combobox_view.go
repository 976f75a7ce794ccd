package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultIconLabel = "⌕"
	inputBoxHeight   = 3 // rounded border around one line
)

type comboBoxRegion int

const (
	regionNone comboBoxRegion = iota
	regionCount
	regionInput
	regionIcon
	regionListMarker
	regionRow
)

// comboBoxLayout describes where View puts each part, relative to the
// component's top-left corner.
type comboBoxLayout struct {
	countHeight int
	inputTop    int
	iconLeft    int
	iconRight   int // exclusive; equal to iconLeft when no icon
	listTop     int
	listHeight  int
	width       int
	height      int
}

func (c *ComboBox) layout() comboBoxLayout {
	l := comboBoxLayout{width: c.Width}
	if c.ShowCount {
		l.countHeight = 1
	}
	l.inputTop = l.countHeight
	l.iconLeft = c.Width + 1
	l.iconRight = l.iconLeft
	if c.ShowIcon {
		l.iconRight = l.iconLeft + lipgloss.Width(c.iconLabel())
		l.width = l.iconRight
	}
	l.listTop = l.inputTop + inputBoxHeight
	if c.IsListVisible() {
		l.listHeight = c.list.Height()
	}
	l.height = l.listTop + l.listHeight
	return l
}

// hitTest maps a point relative to the component to the region under it.
// For regionRow the second result is the visible row index.
func (c *ComboBox) hitTest(x, y int) (comboBoxRegion, int) {
	l := c.layout()
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return regionNone, 0
	}
	switch {
	case y < l.inputTop:
		return regionCount, 0
	case y < l.listTop:
		if x >= l.iconLeft && x < l.iconRight {
			return regionIcon, 0
		}
		if x < c.Width {
			return regionInput, 0
		}
		return regionNone, 0
	}
	if x >= c.Width {
		return regionNone, 0
	}
	row := y - l.listTop
	if c.list.hasMoreAbove() {
		row--
	}
	if row < 0 || row >= c.list.visibleCount() {
		return regionListMarker, 0
	}
	return regionRow, row
}

// SetOrigin tells the component where the host draws it on screen.
func (c *ComboBox) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
}

// Bounds returns the on-screen rectangle of the last layout.
func (c *ComboBox) Bounds() (x, y, width, height int) {
	l := c.layout()
	return c.originX, c.originY, l.width, l.height
}

// Contains reports whether the screen point lies inside the component.
func (c *ComboBox) Contains(x, y int) bool {
	bx, by, w, h := c.Bounds()
	return x >= bx && y >= by && x < bx+w && y < by+h
}

func (c *ComboBox) iconLabel() string {
	if strings.TrimSpace(c.IconStyle) == "" {
		return defaultIconLabel
	}
	return c.IconStyle
}

// inputContentWidth is the text area inside border, padding and prompt.
func (c *ComboBox) inputContentWidth() int {
	return max(c.Width-4-lipgloss.Width(c.textInput.Prompt)-1, 1)
}

// View implements tea.Model.
func (c *ComboBox) View() string {
	var b strings.Builder

	if c.ShowCount {
		b.WriteString(styleComboBoxCount().Render(countLabel(c.Locale, len(c.filteredItems))))
		b.WriteString("\n")
	}

	// Width is the visual width including the border, which lipgloss adds outside.
	inputStyle := styleComboBoxInput()
	if c.inputFocused {
		inputStyle = styleComboBoxInputFocused()
	}
	input := inputStyle.Width(c.Width - 2).Render(c.textInput.View())
	if c.ShowIcon {
		input = lipgloss.JoinHorizontal(lipgloss.Center, input, " ", styleComboBoxIcon().Render(c.iconLabel()))
	}
	b.WriteString(input)

	if c.IsListVisible() {
		b.WriteString("\n")
		b.WriteString(c.list.View(c.Width))
	}
	return b.String()
}

func styleComboBoxInput() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(currentTheme().BorderDim).
		Padding(0, 1)
}

func styleComboBoxInputFocused() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(currentTheme().Primary).
		Padding(0, 1)
}

func styleComboBoxIcon() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme().Accent).
		Bold(true)
}

func styleComboBoxCount() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme().Accent)
}
