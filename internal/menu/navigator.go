package menu

// Direction is the animation direction of a panel transition.
type Direction int

const (
	DirectionNone     Direction = iota
	DirectionNext               // Descending into a sub-panel
	DirectionPrevious           // Returning to the parent panel
)

func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrevious:
		return "previous"
	default:
		return "none"
	}
}

// State is a snapshot of the navigation state.
type State struct {
	IncomingPanelID        PanelID
	OutgoingPanelID        PanelID
	HasOutgoing            bool
	IsOutgoingPanelVisible bool
	TransitionDirection    Direction

	Height    int
	HasHeight bool // false until the first incoming panel measurement

	FocusedItemIndex int
	HasFocusedItem   bool // only meaningful in keyboard navigation mode

	IsUsingKeyboardToNavigate bool
}

// Transitioning reports whether an outgoing panel is still being shown.
func (s State) Transitioning() bool {
	return s.IsOutgoingPanelVisible
}

// Scroller scrolls the menu viewport back to its first line.
type Scroller interface {
	ScrollToTop()
}

// Observer is notified about completed navigation steps. Lookups that find
// nothing never reach the observer.
type Observer interface {
	PanelShown(from, to PanelID, dir Direction)
	OutgoingPanelHidden(id PanelID)
}

// NavigatorConfig configures a Navigator.
type NavigatorConfig struct {
	InitialPanel  PanelID
	MaximumHeight int // 0 disables height clamping
	Scroller      Scroller
	Observer      Observer
}

// Navigator is the incoming/outgoing panel state machine. It is not safe for
// concurrent use; it is meant to be driven from a single Bubble Tea Update.
type Navigator struct {
	index         *Index
	state         State
	maximumHeight int
	scroller      Scroller
	observer      Observer
}

// NewNavigator creates a navigator showing cfg.InitialPanel.
func NewNavigator(index *Index, cfg NavigatorConfig) *Navigator {
	maxHeight := cfg.MaximumHeight
	if maxHeight < 0 {
		maxHeight = 0
	}
	return &Navigator{
		index:         index,
		state:         State{IncomingPanelID: cfg.InitialPanel},
		maximumHeight: maxHeight,
		scroller:      cfg.Scroller,
		observer:      cfg.Observer,
	}
}

// State returns a copy of the current state.
func (n *Navigator) State() State {
	return n.state
}

// SetIndex swaps the lookups after the panel list changed. Navigation state
// is kept; lookups against the new index happen lazily on the next call.
func (n *Navigator) SetIndex(index *Index) {
	n.index = index
}

func (n *Navigator) showPanel(target PanelID, dir Direction) {
	from := n.state.IncomingPanelID
	n.state.OutgoingPanelID = from
	n.state.HasOutgoing = true
	n.state.IncomingPanelID = target
	n.state.TransitionDirection = dir
	n.state.IsOutgoingPanelVisible = true
	if n.observer != nil {
		n.observer.PanelShown(from, target, dir)
	}
}

// ShowNextPanel opens the sub-panel behind item itemIndex of the incoming
// panel. A negative index means no item. Returns false when nothing changed.
func (n *Navigator) ShowNextPanel(itemIndex int) bool {
	if itemIndex < 0 {
		return false
	}
	next, ok := n.index.Child(n.state.IncomingPanelID, itemIndex)
	if !ok {
		return false
	}
	if n.state.IsUsingKeyboardToNavigate {
		n.state.FocusedItemIndex = 0
		n.state.HasFocusedItem = true
	}
	n.showPanel(next, DirectionNext)
	return true
}

// ShowPreviousPanel returns to the parent of the incoming panel and focuses
// the item that led to it. Returns false when the panel has no parent.
func (n *Navigator) ShowPreviousPanel() bool {
	current := n.state.IncomingPanelID
	parentID, ok := n.index.Parent(current)
	if !ok {
		return false
	}
	if parent, ok := n.index.Panel(parentID); ok {
		for i, item := range parent.Items {
			if item.Panel == current {
				n.state.FocusedItemIndex = i
				n.state.HasFocusedItem = true
				break
			}
		}
	}
	n.showPanel(parentID, DirectionPrevious)
	return true
}

// OnIncomingPanelHeightChange records the laid-out height of the incoming
// panel, clamped to the maximum height. Returns false when the measurement
// equals the current height.
func (n *Navigator) OnIncomingPanelHeightChange(height int) bool {
	if n.state.HasHeight && height == n.state.Height {
		return false
	}
	if n.maximumHeight > 0 && height > n.maximumHeight {
		height = n.maximumHeight
	}
	changed := !n.state.HasHeight || height != n.state.Height
	n.state.Height = height
	n.state.HasHeight = true
	return changed
}

// OnOutgoingPanelTransitionComplete hides the outgoing panel. When the
// incoming panel was clamped to the maximum height the viewport is scrolled
// back to the top. Returns whether a scroll was requested.
func (n *Navigator) OnOutgoingPanelTransitionComplete() bool {
	scrolled := false
	if n.scroller != nil && n.maximumHeight > 0 && n.state.HasHeight && n.state.Height == n.maximumHeight {
		n.scroller.ScrollToTop()
		scrolled = true
	}
	wasVisible := n.state.IsOutgoingPanelVisible
	n.state.IsOutgoingPanelVisible = false
	if wasVisible && n.observer != nil {
		n.observer.OutgoingPanelHidden(n.state.OutgoingPanelID)
	}
	return scrolled
}

// OnUseKeyboardToNavigate latches keyboard navigation mode. The mode is never
// left again. Returns true only on the first call.
func (n *Navigator) OnUseKeyboardToNavigate() bool {
	if n.state.IsUsingKeyboardToNavigate {
		return false
	}
	n.state.IsUsingKeyboardToNavigate = true
	return true
}
