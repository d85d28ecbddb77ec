package menu

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderedItem is the interaction descriptor handed to the item renderer.
type RenderedItem struct {
	Key            string
	Name           string
	Icon           string
	ToolTipTitle   string
	ToolTipContent string
	Disabled       bool
	HasPanel       bool
	Index          int
	OnClick        tea.Cmd // nil when the item has neither a sub-panel nor its own command
	Item           *Item
}

// RenderItems builds descriptors for items belonging to the given menu.
func RenderItems(menu MenuID, items []Item) []RenderedItem {
	out := make([]RenderedItem, len(items))
	for i := range items {
		item := &items[i]
		out[i] = RenderedItem{
			Key:            itemKey(*item, i),
			Name:           item.Name,
			Icon:           item.Icon,
			ToolTipTitle:   item.ToolTipTitle,
			ToolTipContent: item.ToolTipContent,
			Disabled:       item.Disabled,
			HasPanel:       item.HasPanel(),
			Index:          i,
			OnClick:        clickHandler(menu, *item, i),
			Item:           item,
		}
	}
	return out
}

func itemKey(item Item, index int) string {
	if item.Key != "" {
		return item.Key
	}
	if item.Name != "" {
		return item.Name
	}
	return strconv.Itoa(index)
}

// clickHandler wraps the item's command so that, for items with a sub-panel,
// the item's own command runs first and navigation follows in a later update.
func clickHandler(menu MenuID, item Item, index int) tea.Cmd {
	if !item.HasPanel() {
		return item.OnClick
	}
	showNext := func() tea.Msg {
		return ShowNextPanelMsg{Menu: menu, Index: index}
	}
	if item.OnClick == nil {
		return showNext
	}
	return tea.Sequence(item.OnClick, showNext)
}

// ItemRenderer caches rendered items per panel id for one menu instance.
type ItemRenderer struct {
	menu     MenuID
	set      *PanelSet
	rendered map[PanelID][]RenderedItem
	sources  map[PanelID][]Item
}

// NewItemRenderer creates a renderer whose click handlers target menu.
func NewItemRenderer(menu MenuID) *ItemRenderer {
	return &ItemRenderer{menu: menu}
}

// Render returns the rendered items of every panel in set.
//
// Calling Render again with the same set returns the same map. For a new set,
// panels whose item slice is unchanged keep their previous rendered slice.
func (r *ItemRenderer) Render(set *PanelSet) map[PanelID][]RenderedItem {
	if r.rendered != nil && set == r.set {
		return r.rendered
	}
	panels := set.Panels()
	rendered := make(map[PanelID][]RenderedItem, len(panels))
	sources := make(map[PanelID][]Item, len(panels))
	for _, p := range panels {
		if prev, ok := r.rendered[p.ID]; ok && sameItems(r.sources[p.ID], p.Items) {
			rendered[p.ID] = prev
		} else {
			rendered[p.ID] = RenderItems(r.menu, p.Items)
		}
		sources[p.ID] = p.Items
	}
	r.set = set
	r.rendered = rendered
	r.sources = sources
	return rendered
}

// Items returns the cached rendered items for one panel.
func (r *ItemRenderer) Items(id PanelID) []RenderedItem {
	return r.rendered[id]
}

func sameItems(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
