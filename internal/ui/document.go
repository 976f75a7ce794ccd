package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// EventKind identifies a document-level event stream.
type EventKind int

const (
	// EventPointerUp fires for every mouse button release, wherever it lands.
	EventPointerUp EventKind = iota
	// EventKeyDown fires for every key press.
	EventKeyDown
)

// Listener receives the raw bubbletea message behind a document event.
type Listener func(msg tea.Msg)

type listenerEntry struct {
	id int
	fn Listener
}

// Document is the process-wide event surface components attach to for the
// lifetime of their mount. It also keeps an id registry so a host can look a
// mounted component up by id.
//
// Document is not safe for concurrent use; it lives inside the bubbletea
// Update loop like the components attached to it.
type Document struct {
	nextID     int
	listeners  map[EventKind][]listenerEntry
	components map[string]*ComboBox
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		listeners:  make(map[EventKind][]listenerEntry),
		components: make(map[string]*ComboBox),
	}
}

// AddListener registers fn for kind and returns the function that removes it.
// The remove function is idempotent.
func (d *Document) AddListener(kind EventKind, fn Listener) (remove func()) {
	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], listenerEntry{id: id, fn: fn})

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		entries := d.listeners[kind]
		for i, entry := range entries {
			if entry.id == id {
				d.listeners[kind] = append(entries[:i:i], entries[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount reports how many listeners are attached for kind.
func (d *Document) ListenerCount(kind EventKind) int {
	return len(d.listeners[kind])
}

// Dispatch translates msg into a document event and notifies listeners in
// registration order. Listeners added or removed during dispatch take effect
// on the next event.
func (d *Document) Dispatch(msg tea.Msg) {
	kind, ok := eventKindOf(msg)
	if !ok {
		return
	}
	entries := append([]listenerEntry(nil), d.listeners[kind]...)
	for _, entry := range entries {
		entry.fn(msg)
	}
}

func eventKindOf(msg tea.Msg) (EventKind, bool) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease {
			return EventPointerUp, true
		}
	case tea.KeyMsg:
		return EventKeyDown, true
	}
	return 0, false
}

// Register records c under id, replacing any previous holder of the id.
func (d *Document) Register(id string, c *ComboBox) {
	d.components[id] = c
}

// Unregister drops id if it still points at c.
func (d *Document) Unregister(id string, c *ComboBox) {
	if d.components[id] == c {
		delete(d.components, id)
	}
}

// Lookup returns the mounted component registered under id.
func (d *Document) Lookup(id string) (*ComboBox, bool) {
	c, ok := d.components[id]
	return c, ok
}
