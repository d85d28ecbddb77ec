// Package menu is the navigation core of a drill-down context menu.
//
// Core abstractions:
//   - Panel, Item: declarative menu content supplied by the caller
//   - PanelSet: an immutable panel list whose pointer identity drives cache invalidation
//   - Index: id->panel, id->parent and (panel, item)->child lookups derived from a PanelSet
//   - ItemRenderer: per-panel item descriptors with deferred click handlers
//   - Navigator: incoming/outgoing panel state machine with height clamping
//
// Nothing in this package draws anything. The ui package supplies the
// Bubble Tea collaborators that render panels and feed measurements back.
package menu
