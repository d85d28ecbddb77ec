package ui

import tea "github.com/charmbracelet/bubbletea"

// OutsideClickMsg is emitted when a click lands outside the watched zone.
type OutsideClickMsg struct {
	X, Y int
}

// OutsideClickDetector classifies left clicks as inside or outside one zone.
// It inspects the mouse event synchronously; anything the click triggers
// inside the menu is applied in a later update, after this check.
type OutsideClickDetector struct {
	zones  Zones
	zoneID string
}

// NewOutsideClickDetector watches the zone with the given id.
func NewOutsideClickDetector(zones Zones, zoneID string) *OutsideClickDetector {
	return &OutsideClickDetector{zones: zones, zoneID: zoneID}
}

// Check returns an OutsideClickMsg command for left clicks outside the zone,
// nil otherwise.
func (d *OutsideClickDetector) Check(msg tea.MouseMsg) tea.Cmd {
	if d == nil || d.zones == nil || !isLeftClick(msg) {
		return nil
	}
	if d.zones.InBounds(d.zoneID, msg) {
		return nil
	}
	x, y := msg.X, msg.Y
	return func() tea.Msg { return OutsideClickMsg{X: x, Y: y} }
}
