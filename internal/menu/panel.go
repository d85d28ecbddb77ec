package menu

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/atomic"
)

// PanelID identifies a panel. The empty string means "no panel".
type PanelID string

// IntPanelID returns the PanelID for a numeric identifier.
func IntPanelID(n int) PanelID {
	return PanelID(strconv.Itoa(n))
}

// Item is one selectable entry of a panel.
type Item struct {
	Name  string
	Key   string  // Optional; falls back to Name, then to the item position
	Panel PanelID // Sub-panel opened by this item, empty for leaf items

	// Visual properties passed through to the item renderer.
	Icon           string
	ToolTipTitle   string
	ToolTipContent string
	Disabled       bool

	OnClick tea.Cmd // Optional command run when the item is chosen
	Command string  // Optional shell command for leaf items (see internal/action)
	Data    any     // Application-specific data attached to the item
}

// HasPanel reports whether the item opens a sub-panel.
func (i Item) HasPanel() bool {
	return i.Panel != ""
}

// Panel is a titled group of items shown as one screen of the menu.
type Panel struct {
	ID      PanelID
	Title   string
	Items   []Item
	Content string // Free-form text rendered below the items
	Width   int    // Preferred width in columns, 0 for automatic
}

var panelSetVersion = atomic.NewUint64(0)

// PanelSet is an immutable panel list. Two PanelSets are the same list only
// if they are the same pointer; derived indices and rendered items are rebuilt
// whenever a different PanelSet is supplied.
type PanelSet struct {
	panels  []Panel
	version uint64
}

// NewPanelSet wraps panels. The outer slice is copied; item slices are shared
// so unchanged panels can keep their rendered items across sets.
func NewPanelSet(panels ...Panel) *PanelSet {
	cp := make([]Panel, len(panels))
	copy(cp, panels)
	return &PanelSet{
		panels:  cp,
		version: panelSetVersion.Inc(),
	}
}

// Panels returns the panels in declaration order. Callers must not modify it.
func (s *PanelSet) Panels() []Panel {
	if s == nil {
		return nil
	}
	return s.panels
}

// Version returns a process-unique token identifying this set.
func (s *PanelSet) Version() uint64 {
	if s == nil {
		return 0
	}
	return s.version
}

// Len returns the number of panels.
func (s *PanelSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.panels)
}

// First returns the id of the first declared panel.
func (s *PanelSet) First() (PanelID, bool) {
	if s.Len() == 0 {
		return "", false
	}
	return s.panels[0].ID, true
}

// MenuID distinguishes navigation messages of different menu instances.
type MenuID uint64

var menuIDs = atomic.NewUint64(0)

// NewMenuID returns a fresh MenuID.
func NewMenuID() MenuID {
	return MenuID(menuIDs.Inc())
}
