package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quickpick/internal/debug"
	"quickpick/internal/domain"
	"quickpick/internal/ui/theme"
)

const defaultTitle = "quickpick"

// Config configures the picker application.
type Config struct {
	ComboBox ComboBoxConfig
	Title    string
	Preview  bool
	Version  string
	// SaveTheme persists a theme picked with the theme key; nil disables saving.
	SaveTheme func(name string) error
}

// App is the Bubble Tea model hosting a single mounted ComboBox.
type App struct {
	doc     *Document
	combo   *ComboBox
	unmount func()

	keys        AppKeyMap
	help        help.Model
	preview     previewRenderer
	showPreview bool
	saveTheme   func(string) error

	title    string
	version  string
	selected *domain.BaseItem
	accepted bool
	status   string

	width  int
	height int
}

// NewApp builds the application and mounts its combo box. Callers must Close
// the app when the program exits.
func NewApp(cfg Config) *App {
	a := &App{
		doc:         NewDocument(),
		keys:        DefaultAppKeyMap(),
		help:        help.New(),
		showPreview: cfg.Preview,
		saveTheme:   cfg.SaveTheme,
		title:       cfg.Title,
		version:     cfg.Version,
	}
	if strings.TrimSpace(a.title) == "" {
		a.title = defaultTitle
	}

	cc := cfg.ComboBox
	hostSelect, hostIcon := cc.OnSelect, cc.OnIconClick
	cc.OnSelect = func(item *domain.BaseItem, c *ComboBox) {
		a.selected = item
		a.status = ""
		if hostSelect != nil {
			hostSelect(item, c)
		}
	}
	cc.OnIconClick = func(c *ComboBox) {
		c.ShowAll()
		if hostIcon != nil {
			hostIcon(c)
		}
	}

	a.combo = NewComboBox(cc)
	a.unmount = a.combo.Mount(a.doc)
	a.combo.SetOrigin(0, lipgloss.Height(a.renderTitle()))
	a.combo.Focus()
	return a
}

// Close unmounts the combo box, releasing its document listeners.
func (a *App) Close() {
	if a.unmount != nil {
		a.unmount()
		a.unmount = nil
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		if model, cmd, handled := a.handleKey(msg); handled {
			return model, cmd
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			a.combo.IsInputFocused() && !a.combo.Contains(msg.X, msg.Y) {
			a.combo.Blur()
		}
	}

	a.doc.Dispatch(msg)
	return a, a.combo.Update(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	listOpen := a.combo.IsListVisible()

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.accepted = false
		return a, tea.Quit, true

	case key.Matches(msg, comboBoxKeys.Close) && !listOpen:
		a.accepted = false
		return a, tea.Quit, true

	case key.Matches(msg, a.keys.Accept),
		key.Matches(msg, a.keys.Select) && !listOpen && a.hasCommittedSelection():
		if a.selected == nil {
			a.status = "Nothing selected yet"
			return a, nil, true
		}
		a.accepted = true
		return a, tea.Quit, true

	case key.Matches(msg, a.keys.ShowAll):
		a.combo.ShowAll()
		return a, nil, true

	case key.Matches(msg, a.keys.Clear):
		a.combo.Clear()
		a.selected = nil
		return a, nil, true

	case key.Matches(msg, a.keys.Focus):
		if a.combo.IsInputFocused() {
			a.combo.Blur()
			return a, nil, true
		}
		return a, a.combo.Focus(), true

	case key.Matches(msg, a.keys.Theme):
		name := theme.CycleTheme()
		a.status = "Theme: " + name
		if a.saveTheme != nil {
			if err := a.saveTheme(name); err != nil {
				debug.Logf("save theme %s: %v", name, err)
				a.status = fmt.Sprintf("Theme: %s (not saved: %v)", name, err)
			}
		}
		return a, nil, true
	}
	return a, nil, false
}

// hasCommittedSelection reports whether the input still shows the last pick.
func (a *App) hasCommittedSelection() bool {
	return a.selected != nil && a.combo.Text() == a.selected.Content()
}

// Result returns the picked item when the user accepted one.
func (a *App) Result() (*domain.BaseItem, bool) {
	if !a.accepted || a.selected == nil {
		return nil, false
	}
	return a.selected, true
}

// ComboBox returns the mounted combo box.
func (a *App) ComboBox() *ComboBox { return a.combo }

// Document returns the document the combo box is mounted on.
func (a *App) Document() *Document { return a.doc }

func (a *App) renderTitle() string {
	title := a.title
	if a.version != "" {
		title += " " + styleMuted().Render(a.version)
	}
	return styleAppTitle().Render(title)
}

// View implements tea.Model.
func (a *App) View() string {
	body := a.combo.View()
	if a.showPreview {
		item := a.combo.FocusedItem()
		if item == nil {
			item = a.selected
		}
		previewWidth := a.width - lipgloss.Width(body) - 6
		pane := stylePreviewPane().Render(a.preview.render(item, previewWidth))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", pane)
	}

	var b strings.Builder
	b.WriteString(a.renderTitle())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n\n")

	if a.selected != nil {
		b.WriteString("Selected: " + styleSelected().Render(a.selected.Content()))
	} else {
		b.WriteString(styleMuted().Render("Nothing selected"))
	}
	if a.status != "" {
		b.WriteString("  " + styleMuted().Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}
