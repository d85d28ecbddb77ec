package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctxmenu/internal/menu"
	"ctxmenu/internal/ui/textutil"
)

func newPanelView(p menu.Panel) panelView {
	return panelView{
		Panel:  &p,
		Items:  menu.RenderItems(1, p.Items),
		Role:   roleIncoming,
		Cursor: -1,
	}
}

func TestPanelView_Layout(t *testing.T) {
	v := newPanelView(menu.Panel{ID: "p", Title: "Edit", Items: []menu.Item{
		{Name: "Cut"},
		{Name: "Format", Panel: "fmt"},
	}})

	lines := strings.Split(v.Render(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Edit", strings.TrimSpace(lines[0]))
	assert.Equal(t, strings.Repeat("─", minPanelWidth), lines[1])
	assert.Equal(t, noCursorMarker+"Cut", strings.TrimRight(lines[2], " "))
	assert.True(t, strings.HasSuffix(lines[3], subPanelMarker), "sub-panel items carry a marker")
	assert.Equal(t, 4, v.Height())
}

func TestPanelView_NoTitle(t *testing.T) {
	v := newPanelView(menu.Panel{ID: "p", Items: []menu.Item{{Name: "One"}}})
	assert.Equal(t, 0, v.titleLines())
	assert.Equal(t, 1, v.Height())

	v.HasBack = true
	assert.Equal(t, 2, v.titleLines(), "the back affordance needs a title row")
}

func TestPanelView_Content(t *testing.T) {
	v := newPanelView(menu.Panel{ID: "p", Width: 20, Content: "Links expire after seven days."})
	assert.Equal(t, 2, v.Height(), "content wraps at the panel width")
}

func TestPanelView_Width(t *testing.T) {
	v := newPanelView(menu.Panel{ID: "p", Items: []menu.Item{{Name: strings.Repeat("w", 30)}}})
	assert.Equal(t, 30+len(noCursorMarker)+textutil.Width(subPanelMarker), v.width())

	v.MaxWidth = 16
	assert.Equal(t, 16, v.width())
	for _, line := range strings.Split(v.Render(), "\n") {
		assert.LessOrEqual(t, textutil.Width(line), 16)
	}

	v = newPanelView(menu.Panel{ID: "p", Width: 40})
	assert.Equal(t, 40, v.width(), "preferred width wins")
}

func TestPanelView_NarrowerThanMarker(t *testing.T) {
	v := newPanelView(menu.Panel{ID: "p", Items: []menu.Item{{Name: "Share", Panel: "share"}}})
	for _, limit := range []int{1, textutil.Width(subPanelMarker)} {
		v.MaxWidth = limit
		for _, line := range strings.Split(v.Render(), "\n") {
			assert.LessOrEqual(t, textutil.Width(line), limit)
		}
	}
}

func TestPanelView_CursorOnlyOnIncoming(t *testing.T) {
	v := newPanelView(menu.Panel{ID: "p", Items: []menu.Item{{Name: "A"}, {Name: "B"}}})
	v.Cursor = 1
	assert.Contains(t, v.Render(), cursorMarker+"B")

	v.Role = roleOutgoing
	assert.NotContains(t, v.Render(), cursorMarker)
}

func TestPanelView_Zones(t *testing.T) {
	marked := map[string]bool{}
	v := newPanelView(menu.Panel{ID: "p", Title: "T", Items: []menu.Item{{Name: "A"}}})
	v.HasBack = true
	v.zone = func(id, s string) string {
		marked[id] = true
		return s
	}
	v.zoneID = func(panel menu.PanelID, index int) string {
		return string(panel) + ":" + strings.Repeat("i", index+1)
	}

	v.Render()
	assert.True(t, marked["p:"], "back zone")
	assert.True(t, marked["p:i"], "item zone")
}
