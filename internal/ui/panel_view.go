package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ctxmenu/internal/menu"
	"ctxmenu/internal/ui/textutil"
)

// panelRole tells the panel renderer whether it paints the entering or the leaving panel.
type panelRole int

const (
	roleIncoming panelRole = iota
	roleOutgoing
)

const (
	cursorMarker   = "▸ "
	noCursorMarker = "  "
	subPanelMarker = " ›"
	backMarker     = "‹ "
	minPanelWidth  = 12
)

// panelView paints one panel. It is a pure function of its fields.
type panelView struct {
	Panel    *menu.Panel
	Items    []menu.RenderedItem
	Role     panelRole
	HasBack  bool
	Cursor   int // -1 hides the cursor
	MaxWidth int // 0 means unbounded

	// zone marks a rendered region; identity when nil.
	zone func(id, s string) string
	// zoneID names the region of an item index, or the back affordance for -1.
	zoneID func(panel menu.PanelID, index int) string
}

// titleLines returns how many lines precede the first item.
func (v panelView) titleLines() int {
	if v.Panel.Title == "" && !v.HasBack {
		return 0
	}
	return 2
}

// width returns the content width: the preferred width when set, otherwise
// the widest line, bounded by MaxWidth.
func (v panelView) width() int {
	w := v.Panel.Width
	if w <= 0 {
		w = minPanelWidth
		if tw := textutil.Width(v.titleText()); tw > w {
			w = tw
		}
		for _, it := range v.Items {
			if iw := textutil.Width(itemLabel(it)) + len(noCursorMarker) + textutil.Width(subPanelMarker); iw > w {
				w = iw
			}
		}
	}
	if v.MaxWidth > 0 && w > v.MaxWidth {
		w = v.MaxWidth
	}
	return w
}

func (v panelView) titleText() string {
	if v.HasBack {
		return backMarker + v.Panel.Title
	}
	return v.Panel.Title
}

func itemLabel(it menu.RenderedItem) string {
	if it.Icon != "" {
		return it.Icon + " " + it.Name
	}
	return it.Name
}

func (v panelView) mark(index int, s string) string {
	if v.zone == nil || v.zoneID == nil {
		return s
	}
	return v.zone(v.zoneID(v.Panel.ID, index), s)
}

// Render returns the painted panel.
func (v panelView) Render() string {
	w := v.width()
	var lines []string

	if v.titleLines() > 0 {
		var title string
		if v.HasBack {
			name := textutil.Truncate(v.Panel.Title, w-textutil.Width(backMarker))
			title = v.mark(-1, Styles.Back.Render(backMarker)+Styles.Title.Render(name))
		} else {
			title = Styles.Title.Render(textutil.Truncate(v.Panel.Title, w))
		}
		lines = append(lines, title, Styles.Separator.Render(strings.Repeat("─", w)))
	}

	for i, it := range v.Items {
		lines = append(lines, v.mark(i, v.renderItem(i, it, w)))
	}

	if v.Panel.Content != "" {
		lines = append(lines, Styles.Content.Width(w).Render(v.Panel.Content))
	}

	out := strings.Join(lines, "\n")
	if v.Role == roleOutgoing {
		out = Styles.Outgoing.Render(out)
	}
	return out
}

func (v panelView) renderItem(i int, it menu.RenderedItem, w int) string {
	prefix := noCursorMarker
	style := Styles.Item
	if it.Disabled {
		style = Styles.ItemDisabled
	}
	if i == v.Cursor && v.Role == roleIncoming {
		prefix = cursorMarker
		if !it.Disabled {
			style = Styles.ItemFocused
		}
	}
	suffix := ""
	if it.HasPanel {
		suffix = subPanelMarker
	}
	line := textutil.SpreadLine(prefix+itemLabel(it), suffix, w)
	if suffix == "" || !strings.HasSuffix(line, suffix) {
		return style.Render(line)
	}
	body := strings.TrimSuffix(line, suffix)
	return style.Render(body) + Styles.SubPanel.Render(suffix)
}

// Height returns the number of lines the painted panel occupies.
func (v panelView) Height() int {
	return lipgloss.Height(v.Render())
}
