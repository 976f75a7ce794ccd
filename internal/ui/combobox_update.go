package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mount attaches the component to doc: pointer-up and key-down listeners are
// registered and the component becomes reachable through doc.Lookup. The
// returned function is Unmount; callers should defer it.
func (c *ComboBox) Mount(doc *Document) (unmount func()) {
	c.Unmount()
	c.doc = doc
	c.releases = []func(){
		doc.AddListener(EventPointerUp, c.handleDocumentPointerUp),
		doc.AddListener(EventKeyDown, c.handleDocumentKeyDown),
	}
	doc.Register(c.id, c)
	return c.Unmount
}

// Unmount releases everything Mount acquired. Safe to call repeatedly.
func (c *ComboBox) Unmount() {
	for _, release := range c.releases {
		release()
	}
	c.releases = nil
	if c.doc != nil {
		c.doc.Unregister(c.id, c)
		c.doc = nil
	}
}

// Mounted reports whether the component is attached to a document.
func (c *ComboBox) Mounted() bool { return c.doc != nil }

// handleDocumentPointerUp closes the list for any release outside the widget,
// whether or not the input is focused.
func (c *ComboBox) handleDocumentPointerUp(msg tea.Msg) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return
	}
	if !c.Contains(mouse.X, mouse.Y) {
		c.state = ComboBoxIdle
	}
}

// handleDocumentKeyDown commits the focused item on Enter while the input
// has focus.
func (c *ComboBox) handleDocumentKeyDown(msg tea.Msg) {
	if !c.inputFocused {
		return
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(keyMsg, comboBoxKeys.Select) {
		return
	}
	if c.focusedItem != nil {
		c.Select(c.focusedItem)
	}
}

// Update routes input and pointer messages that target the component itself.
// Document-wide behavior (outside clicks, Enter) is handled by the listeners
// installed in Mount.
func (c *ComboBox) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !c.inputFocused {
			return nil
		}
		return c.handleKey(msg)
	case tea.MouseMsg:
		return c.handleMouse(msg)
	}

	if !c.inputFocused {
		return nil
	}
	var cmd tea.Cmd
	c.textInput, cmd = c.textInput.Update(msg)
	return cmd
}

func (c *ComboBox) handleKey(msg tea.KeyMsg) tea.Cmd {
	if c.IsListVisible() {
		switch {
		case key.Matches(msg, comboBoxKeys.Down):
			c.list.MoveDown()
			return nil
		case key.Matches(msg, comboBoxKeys.Up):
			c.list.MoveUp()
			return nil
		case key.Matches(msg, comboBoxKeys.PageDown):
			c.list.PageDown()
			return nil
		case key.Matches(msg, comboBoxKeys.PageUp):
			c.list.PageUp()
			return nil
		case key.Matches(msg, comboBoxKeys.Close):
			c.CloseList()
			return nil
		}
	}
	if key.Matches(msg, comboBoxKeys.Select) {
		return nil
	}

	before := c.textInput.Value()
	var cmd tea.Cmd
	c.textInput, cmd = c.textInput.Update(msg)
	if after := c.textInput.Value(); after != before {
		c.HandleTextChange(after)
	}
	return cmd
}

func (c *ComboBox) handleMouse(msg tea.MouseMsg) tea.Cmd {
	region, row := c.hitTest(msg.X-c.originX, msg.Y-c.originY)

	switch msg.Action {
	case tea.MouseActionPress:
		switch {
		case region == regionInput && msg.Button == tea.MouseButtonLeft && !c.inputFocused:
			return c.Focus()
		case region == regionRow && msg.Button == tea.MouseButtonWheelDown:
			c.list.MoveDown()
		case region == regionRow && msg.Button == tea.MouseButtonWheelUp:
			c.list.MoveUp()
		}
	case tea.MouseActionMotion:
		if region == regionRow {
			c.list.Hover(row)
		}
	case tea.MouseActionRelease:
		switch region {
		case regionRow:
			c.list.Click(row)
		case regionIcon:
			c.ActivateIcon()
		}
	}
	return nil
}
