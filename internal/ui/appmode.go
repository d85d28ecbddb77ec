package ui

// AppMode is the top-level mode of the demo application.
type AppMode int

const (
	ModeBrowse AppMode = iota // No menu open
	ModeMenu                  // Context menu open and receiving input
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}
