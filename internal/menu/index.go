package menu

// Index holds the lookups derived from a panel list. All three maps are built
// together by BuildIndex and never updated in place.
type Index struct {
	Panels   map[PanelID]*Panel
	Parents  map[PanelID]PanelID
	Children map[PanelID]map[int]PanelID
}

// BuildIndex derives the panel lookups from panels in a single pass.
//
// A sub-panel referenced from several panels records the last referencing
// panel as its parent. Item targets are not checked against the panel list;
// a dangling target only shows up as a navigation no-op.
func BuildIndex(panels []Panel) *Index {
	idx := &Index{
		Panels:   make(map[PanelID]*Panel, len(panels)),
		Parents:  make(map[PanelID]PanelID),
		Children: make(map[PanelID]map[int]PanelID, len(panels)),
	}
	for i := range panels {
		p := &panels[i]
		idx.Panels[p.ID] = p
		children := make(map[int]PanelID)
		for j, item := range p.Items {
			if !item.HasPanel() {
				continue
			}
			idx.Parents[item.Panel] = p.ID
			children[j] = item.Panel
		}
		idx.Children[p.ID] = children
	}
	return idx
}

// Panel returns the panel with the given id.
func (x *Index) Panel(id PanelID) (*Panel, bool) {
	if x == nil {
		return nil, false
	}
	p, ok := x.Panels[id]
	return p, ok
}

// Parent returns the id of the panel that leads to id.
func (x *Index) Parent(id PanelID) (PanelID, bool) {
	if x == nil {
		return "", false
	}
	parent, ok := x.Parents[id]
	return parent, ok
}

// HasParent reports whether id can navigate back one level.
func (x *Index) HasParent(id PanelID) bool {
	_, ok := x.Parent(id)
	return ok
}

// Child returns the sub-panel opened by item itemIndex of panel id.
func (x *Index) Child(id PanelID, itemIndex int) (PanelID, bool) {
	if x == nil {
		return "", false
	}
	child, ok := x.Children[id][itemIndex]
	return child, ok
}
