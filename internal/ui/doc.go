// Package ui renders drill-down context menus with Bubble Tea.
//
// Core pieces:
//   - ContextMenu: a View showing one panel of a menu.PanelSet at a time,
//     animating the panel it leaves and clamping its height
//   - Zones: mouse regions (bubblezone) used for item clicks and outside clicks
//   - OutsideClickDetector: reports left clicks that miss the menu
//   - Overlay/OverlayStack: popup views with a dismiss binding
//   - AppModel: the demo application hosting a menu over a base screen
package ui
