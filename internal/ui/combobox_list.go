package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"quickpick/internal/domain"
)

const defaultMaxVisible = 5

// ComboBoxList renders the open dropdown and reports navigation back to its
// owner through two callbacks only: onFocus for the item under the cursor
// and onSelect for an activated item.
type ComboBoxList struct {
	MaxVisible int

	items        []*domain.BaseItem
	cursor       int // -1 when nothing is focused
	scrollOffset int

	onFocus  func(*domain.BaseItem)
	onSelect func(*domain.BaseItem)
}

// NewComboBoxList creates an empty list wired to the given callbacks.
func NewComboBoxList(onSelect, onFocus func(*domain.BaseItem)) ComboBoxList {
	return ComboBoxList{
		MaxVisible: defaultMaxVisible,
		cursor:     -1,
		onFocus:    onFocus,
		onSelect:   onSelect,
	}
}

// SetItems replaces the rendered items and resets cursor and scroll.
func (l *ComboBoxList) SetItems(items []*domain.BaseItem) {
	l.items = items
	l.cursor = -1
	l.scrollOffset = 0
}

// Items returns the rendered items in display order.
func (l ComboBoxList) Items() []*domain.BaseItem { return l.items }

// Cursor returns the focused row index, or -1.
func (l ComboBoxList) Cursor() int { return l.cursor }

// ScrollOffset returns the first visible row index.
func (l ComboBoxList) ScrollOffset() int { return l.scrollOffset }

// MoveDown focuses the next row.
func (l *ComboBoxList) MoveDown() { l.moveTo(l.cursor + 1) }

// MoveUp focuses the previous row; from no focus it starts at the last row.
func (l *ComboBoxList) MoveUp() {
	if l.cursor < 0 {
		l.moveTo(len(l.items) - 1)
		return
	}
	l.moveTo(l.cursor - 1)
}

// PageDown jumps one window down.
func (l *ComboBoxList) PageDown() { l.moveTo(max(l.cursor, 0) + l.maxVisible()) }

// PageUp jumps one window up.
func (l *ComboBoxList) PageUp() { l.moveTo(l.cursor - l.maxVisible()) }

// Hover focuses the item on a visible row.
func (l *ComboBoxList) Hover(row int) {
	if idx, ok := l.indexForRow(row); ok && idx != l.cursor {
		l.moveTo(idx)
	}
}

// Click activates the item on a visible row.
func (l *ComboBoxList) Click(row int) {
	idx, ok := l.indexForRow(row)
	if !ok {
		return
	}
	l.cursor = idx
	if l.onSelect != nil {
		l.onSelect(l.items[idx])
	}
}

func (l *ComboBoxList) moveTo(idx int) {
	if len(l.items) == 0 {
		return
	}
	idx = min(max(idx, 0), len(l.items)-1)
	l.cursor = idx
	l.adjustScrollOffset()
	if l.onFocus != nil {
		l.onFocus(l.items[idx])
	}
}

// indexForRow maps a visible item row (0 = first item line) to an item index.
func (l ComboBoxList) indexForRow(row int) (int, bool) {
	if row < 0 || row >= l.visibleCount() {
		return 0, false
	}
	return l.scrollOffset + row, true
}

// adjustScrollOffset keeps the cursor inside the visible window.
func (l *ComboBoxList) adjustScrollOffset() {
	visible := l.maxVisible()
	if l.cursor < l.scrollOffset {
		l.scrollOffset = l.cursor
	}
	if l.cursor >= l.scrollOffset+visible {
		l.scrollOffset = l.cursor - visible + 1
	}
	maxOffset := max(len(l.items)-visible, 0)
	l.scrollOffset = min(max(l.scrollOffset, 0), maxOffset)
}

func (l ComboBoxList) maxVisible() int {
	if l.MaxVisible < 1 {
		return defaultMaxVisible
	}
	return l.MaxVisible
}

func (l ComboBoxList) visibleCount() int {
	return min(len(l.items)-l.scrollOffset, l.maxVisible())
}

// hasMoreAbove reports whether the "more above" marker line is drawn.
func (l ComboBoxList) hasMoreAbove() bool { return l.scrollOffset > 0 }

func (l ComboBoxList) hasMoreBelow() bool {
	return l.scrollOffset+l.visibleCount() < len(l.items)
}

// Height returns the number of lines View draws.
func (l ComboBoxList) Height() int {
	if len(l.items) == 0 {
		return 0
	}
	h := l.visibleCount()
	if l.hasMoreAbove() {
		h++
	}
	if l.hasMoreBelow() {
		h++
	}
	return h
}

// View draws the visible window of rows, each truncated to width.
func (l ComboBoxList) View(width int) string {
	if len(l.items) == 0 {
		return ""
	}
	contentWidth := max(width, 10)
	lines := make([]string, 0, l.Height())

	if l.hasMoreAbove() {
		lines = append(lines, styleComboBoxHint().Render("  ▲ more above"))
	}
	end := l.scrollOffset + l.visibleCount()
	for i := l.scrollOffset; i < end; i++ {
		// 2 columns for the "▸ " prefix
		text := truncate.StringWithTail(l.items[i].Content(), uint(max(contentWidth-4, 1)), "…")
		lines = append(lines, l.renderRow(text, i == l.cursor, contentWidth))
	}
	if l.hasMoreBelow() {
		lines = append(lines, styleComboBoxHint().Render("  ▼ more below"))
	}
	return strings.Join(lines, "\n")
}

func (l ComboBoxList) renderRow(text string, focused bool, width int) string {
	if focused {
		return styleComboBoxHighlight().Width(width).Render("▸ " + text)
	}
	return styleComboBoxOption().Width(width).Render("  " + text)
}

func styleComboBoxOption() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme().Text).
		PaddingLeft(1)
}

func styleComboBoxHighlight() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme().Secondary).
		Background(currentTheme().BackgroundSecondary).
		Bold(true).
		PaddingLeft(1)
}

func styleComboBoxHint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme().TextMuted)
}
