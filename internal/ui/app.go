package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ctxmenu/internal/action"
	"ctxmenu/internal/menu"
)

// ActionRunner runs the shell command of a chosen leaf item.
type ActionRunner interface {
	Run(name, command string) tea.Cmd
}

// AppModel is the root model of the demo application: a base screen with a
// context menu that opens as an overlay.
type AppModel struct {
	Mode     AppMode
	Title    string
	Panels   *menu.PanelSet
	Options  []Option // applied to every menu opened
	Menu     *ContextMenu
	Overlays OverlayStack
	Outside  *OutsideClickDetector
	Zones    Zones
	Keys     AppKeyMap
	Help     help.Model
	Actions  ActionRunner
	Logger   *slog.Logger

	status    string
	statusErr bool
	width     int
	height    int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the demo application over panels.
func NewAppModel(panels *menu.PanelSet, zones Zones, actions ActionRunner, logger *slog.Logger, opts ...Option) *AppModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := DefaultAppKeyMap()
	opts = append([]Option{WithKeyMap(keys.Menu), WithLogger(logger)}, opts...)
	if zones != nil {
		opts = append(opts, WithZones(zones))
	}
	return &AppModel{
		Mode:    ModeBrowse,
		Title:   "ctxmenu",
		Panels:  panels,
		Options: opts,
		Zones:   zones,
		Keys:    keys,
		Help:    help.New(),
		Actions: actions,
		Logger:  logger,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Status returns the status line text.
func (a *AppModel) Status() string {
	return a.status
}

// OpenMenu shows a fresh menu starting at its initial panel.
func (a *AppModel) OpenMenu() tea.Cmd {
	if a.Mode == ModeMenu {
		return nil
	}
	a.Menu = NewContextMenu(a.Panels, a.Options...)
	if a.width > 0 {
		a.Menu.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	a.Outside = NewOutsideClickDetector(a.Zones, a.Menu.ZoneID())
	a.Overlays.Push(Overlay{View: a.Menu, Dismiss: a.Keys.Close})
	a.Mode = ModeMenu
	a.Logger.Debug("menu opened", "menu", a.Menu.ID())
	return a.Menu.Init()
}

// CloseMenu hides the menu. Its navigation state is discarded.
func (a *AppModel) CloseMenu() {
	if a.Mode != ModeMenu {
		return
	}
	a.Logger.Debug("menu closed", "menu", a.Menu.ID())
	a.Overlays.Clear()
	a.Outside = nil
	a.Mode = ModeBrowse
}

func (a *AppModel) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Help.Width = msg.Width
	case OutsideClickMsg:
		if a.Mode == ModeMenu {
			a.CloseMenu()
			a.setStatus("menu closed", false)
		}
		return a, nil
	case ItemChosenMsg:
		return a, a.choose(msg)
	case action.FinishedMsg:
		a.finished(msg)
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		if a.Mode != ModeMenu {
			return a, nil
		}
		outside := a.Outside.Check(msg)
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, tea.Batch(outside, cmd)
	}

	if a.Menu == nil {
		return a, nil
	}
	_, cmd := a.Menu.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.Keys.Help):
		a.Help.ShowAll = !a.Help.ShowAll
		return nil
	}

	if a.Mode != ModeMenu {
		if key.Matches(msg, a.Keys.Toggle) {
			return a.OpenMenu()
		}
		return nil
	}

	if key.Matches(msg, a.Keys.Toggle) {
		a.CloseMenu()
		return nil
	}
	if top, ok := a.Overlays.Peek(); ok && top.IsDismissKey(msg) {
		if a.Menu.Index().HasParent(a.Menu.State().IncomingPanelID) {
			id := a.Menu.ID()
			return func() tea.Msg { return menu.ShowPreviousPanelMsg{Menu: id} }
		}
		a.CloseMenu()
		return nil
	}
	cmd, _ := a.Overlays.UpdateTop(msg)
	return cmd
}

func (a *AppModel) choose(msg ItemChosenMsg) tea.Cmd {
	a.Logger.Info("item chosen", "panel", msg.Panel, "index", msg.Index, "name", msg.Item.Name)
	if msg.Item.Command == "" || a.Actions == nil {
		a.setStatus(fmt.Sprintf("chose %q", msg.Item.Name), false)
		return nil
	}
	a.setStatus(fmt.Sprintf("running %s…", msg.Item.Command), false)
	return a.Actions.Run(msg.Item.Name, msg.Item.Command)
}

func (a *AppModel) finished(msg action.FinishedMsg) {
	if msg.Err != nil {
		a.Logger.Warn("item command failed", "command", msg.Command, "error", msg.Err)
		a.setStatus(fmt.Sprintf("%s: %v", msg.Name, msg.Err), true)
		return
	}
	out := msg.Output
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[:i] + " …"
	}
	if out == "" {
		out = "done"
	}
	a.setStatus(fmt.Sprintf("%s: %s", msg.Name, out), false)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Header.Render(a.Title))
	b.WriteString("\n\n")

	if a.Mode == ModeMenu {
		if top, ok := a.Overlays.Peek(); ok {
			b.WriteString(top.View.View())
			b.WriteString("\n")
		}
		if it, ok := a.Menu.FocusedItem(); ok && (it.ToolTipTitle != "" || it.ToolTipContent != "") {
			b.WriteString(Styles.Hint.Render(strings.TrimSpace(it.ToolTipTitle + " " + it.ToolTipContent)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(Styles.Hint.Render(fmt.Sprintf("press %s to open the menu", a.Keys.Toggle.Help().Key)))
		b.WriteString("\n")
	}

	if a.status != "" {
		b.WriteString("\n")
		if a.statusErr {
			b.WriteString(Styles.Error.Render(a.status))
		} else {
			b.WriteString(Styles.Status.Render(a.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.Help.View(a.Keys))

	if a.Zones == nil {
		return b.String()
	}
	return a.Zones.Scan(b.String())
}
