package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zones marks rendered regions and resolves mouse events against them.
type Zones interface {
	Mark(id, s string) string
	Scan(s string) string
	InBounds(id string, msg tea.MouseMsg) bool
	NewPrefix() string
}

// BubbleZones implements Zones with a bubblezone manager.
type BubbleZones struct {
	manager *zone.Manager
}

// Ensure BubbleZones implements Zones.
var _ Zones = (*BubbleZones)(nil)

// NewBubbleZones creates a zone manager. Close it when the program exits.
func NewBubbleZones() *BubbleZones {
	return &BubbleZones{manager: zone.New()}
}

// Mark implements Zones.
func (z *BubbleZones) Mark(id, s string) string {
	return z.manager.Mark(id, s)
}

// Scan implements Zones. It must wrap the outermost View output.
func (z *BubbleZones) Scan(s string) string {
	return z.manager.Scan(s)
}

// InBounds implements Zones.
func (z *BubbleZones) InBounds(id string, msg tea.MouseMsg) bool {
	info := z.manager.Get(id)
	if info == nil {
		return false
	}
	return info.InBounds(msg)
}

// NewPrefix implements Zones.
func (z *BubbleZones) NewPrefix() string {
	return z.manager.NewPrefix()
}

// Close stops the zone manager.
func (z *BubbleZones) Close() {
	z.manager.Close()
}

// isLeftClick reports whether msg is a primary button press.
func isLeftClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
