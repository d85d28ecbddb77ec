package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctxmenu/internal/action"
	"ctxmenu/internal/menu"
)

type fakeActions struct {
	runs []string
}

func (f *fakeActions) Run(name, command string) tea.Cmd {
	f.runs = append(f.runs, command)
	return func() tea.Msg {
		return action.FinishedMsg{Name: name, Command: command, Output: "line one\nline two"}
	}
}

func newTestApp(t *testing.T) (*AppModel, tea.Model, *fakeZones, *fakeActions) {
	t.Helper()
	zones := newFakeZones()
	actions := &fakeActions{}
	set := menu.NewPanelSet(
		menu.Panel{ID: "root", Title: "Actions", Items: []menu.Item{
			{Name: "Date", Command: "date", ToolTipTitle: "Date", ToolTipContent: "prints the date"},
			{Name: "Share", Panel: "share"},
			{Name: "Nothing"},
		}},
		menu.Panel{ID: "share", Title: "Share", Items: []menu.Item{{Name: "Email"}}},
	)
	app := NewAppModel(set, zones, actions, nil, fastFrames())
	return app, app.AsTeaModel(), zones, actions
}

func TestApp_ToggleMenu(t *testing.T) {
	app, model, _, _ := newTestApp(t)
	assert.Equal(t, ModeBrowse, app.Mode)
	assert.Contains(t, model.View(), "press m to open the menu")

	model.Update(runeKey('m'))
	require.Equal(t, ModeMenu, app.Mode)
	assert.Equal(t, 1, app.Overlays.Len())
	assert.Contains(t, model.View(), "Actions")

	model.Update(runeKey('m'))
	assert.Equal(t, ModeBrowse, app.Mode)
	assert.Equal(t, 0, app.Overlays.Len())
}

func TestApp_EscapeGoesBackThenCloses(t *testing.T) {
	app, model, _, _ := newTestApp(t)
	model.Update(runeKey('m'))
	model.Update(menu.ShowNextPanelMsg{Menu: app.Menu.ID(), Index: 1})
	require.Equal(t, menu.PanelID("share"), app.Menu.State().IncomingPanelID)

	_, cmd := model.Update(keyMsg(tea.KeyEsc))
	require.NotNil(t, cmd)
	model.Update(cmd())
	assert.Equal(t, menu.PanelID("root"), app.Menu.State().IncomingPanelID)
	assert.Equal(t, ModeMenu, app.Mode)

	model.Update(keyMsg(tea.KeyEsc))
	assert.Equal(t, ModeBrowse, app.Mode)
}

func TestApp_ReopenStartsAtInitialPanel(t *testing.T) {
	app, model, _, _ := newTestApp(t)
	model.Update(runeKey('m'))
	first := app.Menu.ID()
	model.Update(menu.ShowNextPanelMsg{Menu: first, Index: 1})
	model.Update(runeKey('m'))

	model.Update(runeKey('m'))
	assert.NotEqual(t, first, app.Menu.ID())
	assert.Equal(t, menu.PanelID("root"), app.Menu.State().IncomingPanelID)
}

func TestApp_OutsideClickCloses(t *testing.T) {
	app, model, zones, _ := newTestApp(t)
	model.Update(runeKey('m'))

	zones.hit = app.Menu.ZoneID()
	_, cmd := model.Update(leftClick)
	for _, msg := range runCmd(t, cmd) {
		model.Update(msg)
	}
	assert.Equal(t, ModeMenu, app.Mode, "click inside keeps the menu open")

	zones.hit = ""
	_, cmd = model.Update(leftClick)
	msgs := runCmd(t, cmd)
	require.Contains(t, msgs, OutsideClickMsg{})
	for _, msg := range msgs {
		model.Update(msg)
	}
	assert.Equal(t, ModeBrowse, app.Mode)
	assert.Equal(t, "menu closed", app.Status())
}

func TestApp_ChosenCommandRuns(t *testing.T) {
	app, model, _, actions := newTestApp(t)
	model.Update(runeKey('m'))
	model.Update(keyMsg(tea.KeyDown))

	_, cmd := model.Update(keyMsg(tea.KeyEnter))
	msgs := runCmd(t, cmd)
	require.Len(t, msgs, 1)

	_, cmd = model.Update(msgs[0])
	assert.Equal(t, "running date…", app.Status())
	assert.Equal(t, []string{"date"}, actions.runs)

	model.Update(cmd())
	assert.Equal(t, "Date: line one …", app.Status())
}

func TestApp_ChosenWithoutCommand(t *testing.T) {
	app, model, _, actions := newTestApp(t)

	model.Update(ItemChosenMsg{Item: menu.Item{Name: "Nothing"}})
	assert.Equal(t, `chose "Nothing"`, app.Status())
	assert.Empty(t, actions.runs)
}

func TestApp_FailedCommand(t *testing.T) {
	app, model, _, _ := newTestApp(t)

	model.Update(action.FinishedMsg{Name: "Date", Command: "date", Err: errors.New("exit status 1")})
	assert.Equal(t, "Date: exit status 1", app.Status())
}

func TestApp_TooltipOfFocusedItem(t *testing.T) {
	_, model, _, _ := newTestApp(t)
	model.Update(runeKey('m'))
	assert.NotContains(t, model.View(), "prints the date")

	model.Update(keyMsg(tea.KeyDown))
	assert.Contains(t, model.View(), "prints the date")
}

func TestApp_Quit(t *testing.T) {
	_, model, _, _ := newTestApp(t)
	_, cmd := model.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
