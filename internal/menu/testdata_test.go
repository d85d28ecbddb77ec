package menu

func scenarioPanels() []Panel {
	return []Panel{
		{ID: "root", Items: []Item{{Name: "A", Panel: "sub"}}},
		{ID: "sub", Items: []Item{{Name: "B"}}},
	}
}

func deepPanels() []Panel {
	return []Panel{
		{ID: "root", Title: "Actions", Items: []Item{
			{Name: "Open"},
			{Name: "Share", Panel: "share"},
			{Name: "Export", Panel: "export"},
		}},
		{ID: "share", Title: "Share", Items: []Item{
			{Name: "Email"},
			{Name: "Link", Panel: "link"},
		}},
		{ID: "link", Title: "Link", Items: []Item{{Name: "Copy"}}},
		{ID: "export", Title: "Export", Items: []Item{{Name: "PDF"}, {Name: "CSV"}}},
	}
}

type recordingScroller struct {
	calls int
}

func (s *recordingScroller) ScrollToTop() { s.calls++ }

type transition struct {
	from, to PanelID
	dir      Direction
}

type recordingObserver struct {
	shown  []transition
	hidden []PanelID
}

func (o *recordingObserver) PanelShown(from, to PanelID, dir Direction) {
	o.shown = append(o.shown, transition{from, to, dir})
}

func (o *recordingObserver) OutgoingPanelHidden(id PanelID) {
	o.hidden = append(o.hidden, id)
}
