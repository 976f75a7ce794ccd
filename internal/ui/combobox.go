package ui

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/text/collate"

	"quickpick/internal/debug"
	"quickpick/internal/domain"
)

// ComboBoxState represents the visibility state of the dropdown.
type ComboBoxState int

const (
	// ComboBoxIdle - dropdown hidden.
	ComboBoxIdle ComboBoxState = iota
	// ComboBoxOpen - dropdown visible with the filtered items.
	ComboBoxOpen
)

func (s ComboBoxState) String() string {
	if s == ComboBoxOpen {
		return "open"
	}
	return "idle"
}

// DefaultStrikes is the minimum query length before filtering starts.
const DefaultStrikes = 3

const defaultComboBoxWidth = 40

// ComboBoxConfig seeds a ComboBox. Start from DefaultComboBoxConfig; the zero
// value of SortFieldIndex would sort by the first field.
type ComboBoxConfig struct {
	ID      string // Registry id; generated when empty
	InputID string
	Name    string

	Items          []any
	Fields         []string
	Text           string // Initial input text; no filtering until the user types
	Placeholder    string
	Strikes        int // Minimum characters before filtering; < 1 means DefaultStrikes
	SortFieldIndex int // Index into Fields to sort the open list by; -1 disables
	MatchMode      MatchMode

	OnSelect    func(item *domain.BaseItem, c *ComboBox)
	OnIconClick func(c *ComboBox)
	OnChange    func(c *ComboBox)
	OnFocus     func(c *ComboBox)
	OnBlur      func(c *ComboBox)

	ShowCount bool
	ShowIcon  bool
	IconStyle string

	Width      int
	MaxVisible int
	Locale     string
}

// DefaultComboBoxConfig returns the documented defaults.
func DefaultComboBoxConfig() ComboBoxConfig {
	return ComboBoxConfig{
		Strikes:        DefaultStrikes,
		SortFieldIndex: -1,
		MatchMode:      MatchSubstring,
		ShowIcon:       true,
		Width:          defaultComboBoxWidth,
		MaxVisible:     defaultMaxVisible,
		Locale:         "en",
	}
}

// ComboBox is a text field that filters a list of items as the user types.
//
// State is owned by the component and only changes through its handlers,
// all of which run synchronously inside the bubbletea Update loop.
type ComboBox struct {
	// Configuration (set at creation)
	InputID   string
	Name      string
	ShowCount bool
	ShowIcon  bool
	IconStyle string
	Width     int
	Locale    string

	id             string
	rawItems       []any
	fields         []string
	sortFieldIndex int
	strikes        int
	matchMode      MatchMode

	baseItems     []*domain.BaseItem
	filteredItems []*domain.BaseItem
	focusedItem   *domain.BaseItem
	state         ComboBoxState
	inputFocused  bool

	textInput textinput.Model
	dataText  string // committed text, mirrors the input's data attribute
	list      ComboBoxList
	collator  *collate.Collator

	onSelect    func(*domain.BaseItem, *ComboBox)
	onIconClick func(*ComboBox)
	onChange    func(*ComboBox)
	onFocus     func(*ComboBox)
	onBlur      func(*ComboBox)

	doc      *Document
	releases []func()
	originX  int
	originY  int
}

// NewComboBox creates a ComboBox from cfg, normalizing bad values to defaults.
func NewComboBox(cfg ComboBoxConfig) *ComboBox {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = cfg.Placeholder
	ti.SetValue(cfg.Text)

	width := cfg.Width
	if width <= 0 {
		width = defaultComboBoxWidth
	}
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "en"
	}

	c := &ComboBox{
		InputID:   cfg.InputID,
		Name:      cfg.Name,
		ShowCount: cfg.ShowCount,
		ShowIcon:  cfg.ShowIcon,
		IconStyle: cfg.IconStyle,
		Width:     width,
		Locale:    locale,

		id:             id,
		rawItems:       cfg.Items,
		fields:         append([]string(nil), cfg.Fields...),
		sortFieldIndex: cfg.SortFieldIndex,
		strikes:        SanitizeStrikes(cfg.Strikes),
		matchMode:      ParseMatchMode(string(cfg.MatchMode)),
		state:          ComboBoxIdle,
		textInput:      ti,
		dataText:       cfg.Text,
		collator:       newCollator(locale),

		onSelect:    cfg.OnSelect,
		onIconClick: cfg.OnIconClick,
		onChange:    cfg.OnChange,
		onFocus:     cfg.OnFocus,
		onBlur:      cfg.OnBlur,
	}
	c.textInput.Width = c.inputContentWidth()
	c.list = NewComboBoxList(c.Select, func(item *domain.BaseItem) { c.FocusItem(item) })
	c.list.MaxVisible = cfg.MaxVisible
	c.baseItems = domain.Normalize(c.rawItems, c.fields)
	c.filteredItems = []*domain.BaseItem{}
	return c
}

// SanitizeStrikes returns n, or DefaultStrikes when n is below 1.
func SanitizeStrikes(n int) int {
	if n < 1 {
		return DefaultStrikes
	}
	return n
}

// Init implements tea.Model.
func (c *ComboBox) Init() tea.Cmd {
	return nil
}

// HandleTextChange reacts to new input text: filtering starts once the text
// is at least Strikes characters long. OnChange fires after every call.
func (c *ComboBox) HandleTextChange(text string) {
	c.focusedItem = nil
	if c.textInput.Value() != text {
		c.textInput.SetValue(text)
	}

	if utf8.RuneCountInString(text) < c.strikes {
		c.closeList()
	} else {
		filtered := filterBaseItems(c.baseItems, text, c.matchMode)
		if len(filtered) > 0 {
			c.openList(filtered)
		} else {
			c.closeList()
		}
	}
	debug.Logf("combobox %s: text %q -> %d matches (%s)", c.id, text, len(c.filteredItems), c.state)

	c.callOnChange()
}

// Focus focuses the input and reopens the last filtered list, if any.
func (c *ComboBox) Focus() tea.Cmd {
	c.inputFocused = true
	cmd := c.textInput.Focus()
	if len(c.filteredItems) > 0 {
		c.state = ComboBoxOpen
	}
	if c.onFocus != nil {
		c.onFocus(c)
	}
	return cmd
}

// Blur removes focus from the input. The list is left as it is.
func (c *ComboBox) Blur() {
	c.inputFocused = false
	c.textInput.Blur()
	if c.onBlur != nil {
		c.onBlur(c)
	}
}

// Select commits item: the input shows its content, the filtered set narrows
// to items matching that content and the list closes.
func (c *ComboBox) Select(item *domain.BaseItem) {
	if item == nil {
		return
	}
	content := item.Content()
	c.textInput.SetValue(content)
	c.textInput.CursorEnd()
	c.dataText = content
	c.filteredItems = filterBaseItems(c.baseItems, content, c.matchMode)
	c.state = ComboBoxIdle
	c.syncList()
	debug.Logf("combobox %s: selected %q", c.id, content)

	if c.onSelect != nil {
		c.onSelect(item, c)
	}
}

// FocusItem highlights item from list navigation and previews its content in
// the input without committing it. Values that are not BaseItems are ignored.
func (c *ComboBox) FocusItem(v any) {
	item, ok := domain.AsBaseItem(v)
	if !ok {
		return
	}
	c.focusedItem = item
	c.textInput.SetValue(item.Content())
	c.textInput.CursorEnd()
}

// ActivateIcon notifies the host that the icon was clicked.
func (c *ComboBox) ActivateIcon() {
	if c.onIconClick != nil {
		c.onIconClick(c)
	}
}

// ShowAll opens the list with every item.
func (c *ComboBox) ShowAll() {
	c.filteredItems = c.baseItems
	c.state = ComboBoxOpen
	c.syncList()
}

// Clear empties the input and closes the list.
func (c *ComboBox) Clear() {
	c.textInput.SetValue("")
	c.dataText = ""
	c.focusedItem = nil
	c.closeList()
}

// UpdateItems replaces the source items and re-filters against the current
// input text. A nil fields slice keeps the current fields. The open/closed
// state is left alone.
func (c *ComboBox) UpdateItems(items []any, fields []string) {
	if fields != nil {
		c.fields = append([]string(nil), fields...)
	}
	c.rawItems = items
	c.baseItems = domain.Normalize(items, c.fields)
	c.filteredItems = filterBaseItems(c.baseItems, c.textInput.Value(), c.matchMode)
	c.focusedItem = nil
	c.syncList()
	debug.Logf("combobox %s: %d items, %d filtered", c.id, len(c.baseItems), len(c.filteredItems))
}

// CloseList hides the dropdown, keeping the filtered items.
func (c *ComboBox) CloseList() {
	c.state = ComboBoxIdle
}

func (c *ComboBox) openList(items []*domain.BaseItem) {
	if len(items) == 0 {
		return
	}
	c.filteredItems = items
	c.state = ComboBoxOpen
	c.syncList()
}

func (c *ComboBox) closeList() {
	c.filteredItems = []*domain.BaseItem{}
	c.state = ComboBoxIdle
	c.syncList()
}

// syncList hands the list renderer the sorted view of the filtered items.
func (c *ComboBox) syncList() {
	c.list.SetItems(c.VisibleItems())
}

func (c *ComboBox) callOnChange() {
	if c.onChange != nil {
		c.onChange(c)
	}
}

// VisibleItems returns the filtered items in display order. Sorting happens
// here and never reorders FilteredItems.
func (c *ComboBox) VisibleItems() []*domain.BaseItem {
	if len(c.fields) == 0 {
		return append([]*domain.BaseItem(nil), c.filteredItems...)
	}
	return sortByField(c.filteredItems, c.fields, c.sortFieldIndex, c.collator)
}

// ID returns the registry id.
func (c *ComboBox) ID() string { return c.id }

// Text returns the text currently shown in the input.
func (c *ComboBox) Text() string { return c.textInput.Value() }

// DataText returns the last committed text.
func (c *ComboBox) DataText() string { return c.dataText }

// Placeholder returns the input placeholder.
func (c *ComboBox) Placeholder() string { return c.textInput.Placeholder }

// Items returns the raw source items.
func (c *ComboBox) Items() []any { return c.rawItems }

// Fields returns the configured field names.
func (c *ComboBox) Fields() []string { return append([]string(nil), c.fields...) }

// SortFieldIndex returns the configured sort index, -1 when sorting is off.
func (c *ComboBox) SortFieldIndex() int {
	if len(c.fields) == 0 {
		return -1
	}
	return c.sortFieldIndex
}

// Strikes returns the minimum query length before filtering starts.
func (c *ComboBox) Strikes() int { return c.strikes }

// BaseItems returns the normalized source items.
func (c *ComboBox) BaseItems() []*domain.BaseItem { return c.baseItems }

// FilteredItems returns the items matching the current query, in base order.
func (c *ComboBox) FilteredItems() []*domain.BaseItem { return c.filteredItems }

// FocusedItem returns the item highlighted by navigation, or nil.
func (c *ComboBox) FocusedItem() *domain.BaseItem { return c.focusedItem }

// State returns the dropdown state.
func (c *ComboBox) State() ComboBoxState { return c.state }

// IsListVisible reports whether the dropdown is drawn.
func (c *ComboBox) IsListVisible() bool {
	return c.state == ComboBoxOpen && len(c.filteredItems) > 0
}

// IsInputFocused reports whether the input has focus.
func (c *ComboBox) IsInputFocused() bool { return c.inputFocused }

// List exposes the list renderer.
func (c *ComboBox) List() *ComboBoxList { return &c.list }
