package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"quickpick/internal/debug"
	"quickpick/internal/domain"
)

const minPreviewWidth = 20

// previewRenderer renders an item's source value as a highlighted JSON block.
// The glamour renderer is rebuilt only when the wrap width changes.
type previewRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

func (p *previewRenderer) render(item *domain.BaseItem, width int) string {
	width = max(width, minPreviewWidth)
	if item == nil {
		return styleMuted().Render("Nothing focused")
	}

	source := previewSource(item)
	if p.renderer == nil || p.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			debug.Logf("preview: renderer: %v", err)
			return wordwrap.String(source, width)
		}
		p.renderer, p.width = r, width
	}

	out, err := p.renderer.Render("```json\n" + source + "\n```")
	if err != nil {
		debug.Logf("preview: render: %v", err)
		return wordwrap.String(source, width)
	}
	return strings.Trim(out, "\n")
}

// previewSource formats the item's origin as indented JSON.
func previewSource(item *domain.BaseItem) string {
	data, err := json.MarshalIndent(item.Origin(), "", "  ")
	if err != nil {
		return fmt.Sprint(item.Origin())
	}
	return string(data)
}

// FormatOrigin renders a picked item for stdout: strings print raw, anything
// else as compact JSON.
func FormatOrigin(item *domain.BaseItem) string {
	if item == nil {
		return ""
	}
	if s, ok := item.Origin().(string); ok {
		return s
	}
	data, err := json.Marshal(item.Origin())
	if err != nil {
		return item.Content()
	}
	return string(data)
}
