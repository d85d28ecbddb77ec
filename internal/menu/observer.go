package menu

// MultiObserver fans out navigation notifications to several observers.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver forwards to every non-nil observer in order.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall keeps one failing observer from breaking navigation.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// PanelShown implements Observer.
func (m *MultiObserver) PanelShown(from, to PanelID, dir Direction) {
	for _, obs := range m.observers {
		safeCall(func() { obs.PanelShown(from, to, dir) })
	}
}

// OutgoingPanelHidden implements Observer.
func (m *MultiObserver) OutgoingPanelHidden(id PanelID) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OutgoingPanelHidden(id) })
	}
}

// Len returns the number of attached observers.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}
