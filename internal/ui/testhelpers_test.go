package ui

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"ctxmenu/internal/menu"
)

// fakeZones marks nothing and reports a single configurable zone as hit.
type fakeZones struct {
	prefixes int
	hit      string
	marked   map[string]int
}

func newFakeZones() *fakeZones {
	return &fakeZones{marked: map[string]int{}}
}

func (z *fakeZones) Mark(id, s string) string {
	z.marked[id]++
	return s
}

func (z *fakeZones) Scan(s string) string { return s }

func (z *fakeZones) InBounds(id string, _ tea.MouseMsg) bool {
	return id != "" && id == z.hit
}

func (z *fakeZones) NewPrefix() string {
	z.prefixes++
	return fmt.Sprintf("z%d:", z.prefixes)
}

var leftClick = tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runCmd executes cmd and flattens tea.Sequence and tea.Batch results into
// their messages.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for i := 0; i < v.Len(); i++ {
		if v.Index(i).IsNil() {
			continue
		}
		inner, ok := v.Index(i).Interface().(tea.Cmd)
		require.True(t, ok, "sequence element is not a tea.Cmd")
		out = append(out, runCmd(t, inner)...)
	}
	return out
}

// deliver feeds every message produced by cmd back into m and returns the
// command of the last update.
func deliver(t *testing.T, m *ContextMenu, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	var last tea.Cmd
	for _, msg := range runCmd(t, cmd) {
		_, last = m.Update(msg)
	}
	return last
}

// finishTransition runs animation ticks until the menu stops scheduling them.
func finishTransition(t *testing.T, m *ContextMenu, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 100, "transition never completed")
		cmd = deliver(t, m, cmd)
	}
}

func fastFrames() Option {
	return WithTransitionFrames(2, time.Millisecond)
}

func deepSet() *menu.PanelSet {
	return menu.NewPanelSet(
		menu.Panel{ID: "root", Title: "Actions", Items: []menu.Item{
			{Name: "Open"},
			{Name: "Share", Panel: "share"},
			{Name: "Delete", Disabled: true},
		}},
		menu.Panel{ID: "share", Title: "Share", Items: []menu.Item{
			{Name: "Email"},
			{Name: "Link", Panel: "link"},
		}},
		menu.Panel{ID: "link", Title: "Link", Items: []menu.Item{{Name: "Copy"}}},
	)
}

type clickedMsg struct{ name string }

type recordingObserver struct {
	shown  []menu.PanelID
	hidden []menu.PanelID
}

func (o *recordingObserver) PanelShown(_, to menu.PanelID, _ menu.Direction) {
	o.shown = append(o.shown, to)
}

func (o *recordingObserver) OutgoingPanelHidden(id menu.PanelID) {
	o.hidden = append(o.hidden, id)
}
