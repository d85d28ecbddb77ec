package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ctxmenu/internal/menu"
)

const (
	defaultTransitionFrames = 6
	defaultFrameInterval    = 16 * time.Millisecond
)

// ItemChosenMsg is sent when a leaf item without its own command is chosen.
type ItemChosenMsg struct {
	Menu  menu.MenuID
	Panel menu.PanelID
	Index int
	Item  menu.Item
}

// transitionTickMsg advances the outgoing panel animation of one menu.
type transitionTickMsg struct {
	menu menu.MenuID
	seq  int
}

// ContextMenu is a drill-down menu showing one panel at a time. It derives
// the panel lookups from a PanelSet, paints the incoming and outgoing panel
// while a transition runs, and clamps its height to a maximum.
type ContextMenu struct {
	id       menu.MenuID
	set      *menu.PanelSet
	index    *menu.Index
	renderer *menu.ItemRenderer
	items    map[menu.PanelID][]menu.RenderedItem
	nav      *menu.Navigator
	rebuilds int

	viewport viewport.Model
	keys     KeyMap
	zones    Zones
	prefix   string
	logger   *slog.Logger

	frames        int
	frameInterval time.Duration
	framesLeft    int
	transitionSeq int

	cursor   int
	maxWidth int
}

// Ensure ContextMenu implements View and menu.Scroller.
var (
	_ View          = (*ContextMenu)(nil)
	_ menu.Scroller = (*ContextMenu)(nil)
)

type contextMenuOptions struct {
	initialPanel  menu.PanelID
	maximumHeight int
	observers     []menu.Observer
	logger        *slog.Logger
	frames        int
	frameInterval time.Duration
	zones         Zones
	keys          KeyMap
}

// Option configures a ContextMenu.
type Option func(*contextMenuOptions)

// WithInitialPanel sets the panel shown first. Defaults to the first panel of the set.
func WithInitialPanel(id menu.PanelID) Option {
	return func(o *contextMenuOptions) { o.initialPanel = id }
}

// WithMaximumHeight clamps the menu height to h rows. 0 disables clamping.
func WithMaximumHeight(h int) Option {
	return func(o *contextMenuOptions) { o.maximumHeight = h }
}

// WithObserver attaches a navigation observer.
func WithObserver(obs menu.Observer) Option {
	return func(o *contextMenuOptions) { o.observers = append(o.observers, obs) }
}

// WithLogger sets the logger used for transition debug logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *contextMenuOptions) { o.logger = l }
}

// WithTransitionFrames sets how many animation frames a transition lasts.
func WithTransitionFrames(n int, interval time.Duration) Option {
	return func(o *contextMenuOptions) {
		o.frames = n
		if interval > 0 {
			o.frameInterval = interval
		}
	}
}

// WithZones enables mouse support through the given zone manager.
func WithZones(z Zones) Option {
	return func(o *contextMenuOptions) { o.zones = z }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(o *contextMenuOptions) { o.keys = k }
}

// NewContextMenu creates a menu over set.
func NewContextMenu(set *menu.PanelSet, opts ...Option) *ContextMenu {
	o := contextMenuOptions{
		frames:        defaultTransitionFrames,
		frameInterval: defaultFrameInterval,
		keys:          DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.initialPanel == "" {
		o.initialPanel, _ = set.First()
	}

	m := &ContextMenu{
		id:            menu.NewMenuID(),
		viewport:      viewport.New(0, 0),
		keys:          o.keys,
		zones:         o.zones,
		logger:        o.logger,
		frames:        o.frames,
		frameInterval: o.frameInterval,
	}
	if m.zones != nil {
		m.prefix = m.zones.NewPrefix()
	}
	m.renderer = menu.NewItemRenderer(m.id)

	observers := append([]menu.Observer{&logObserver{logger: m.logger, menu: m.id}}, o.observers...)
	m.nav = menu.NewNavigator(nil, menu.NavigatorConfig{
		InitialPanel:  o.initialPanel,
		MaximumHeight: o.maximumHeight,
		Scroller:      m,
		Observer:      menu.NewMultiObserver(observers...),
	})
	m.SetPanels(set)
	return m
}

// ID returns the menu instance id carried by its navigation messages.
func (m *ContextMenu) ID() menu.MenuID {
	return m.id
}

// State returns the current navigation state.
func (m *ContextMenu) State() menu.State {
	return m.nav.State()
}

// Index returns the lookups derived from the current panel set.
func (m *ContextMenu) Index() *menu.Index {
	return m.index
}

// RenderedItems returns the item descriptors of one panel.
func (m *ContextMenu) RenderedItems(id menu.PanelID) []menu.RenderedItem {
	return m.items[id]
}

// Rebuilds returns how often the panel lookups were derived.
func (m *ContextMenu) Rebuilds() int {
	return m.rebuilds
}

// ZoneID returns the mouse zone id covering the whole menu.
func (m *ContextMenu) ZoneID() string {
	return m.prefix + "menu"
}

// SetPanels replaces the panel list. The lookups and rendered items are
// derived again only when set is a different PanelSet than the current one.
// Returns whether anything was rebuilt.
func (m *ContextMenu) SetPanels(set *menu.PanelSet) bool {
	if m.index != nil && set == m.set {
		return false
	}
	m.set = set
	m.index = menu.BuildIndex(set.Panels())
	m.items = m.renderer.Render(set)
	m.nav.SetIndex(m.index)
	m.rebuilds++
	m.logger.Debug("menu panels replaced", "menu", m.id, "version", set.Version(), "panels", set.Len())

	m.clampCursor()
	m.measure()
	m.refresh()
	return true
}

// ScrollToTop implements menu.Scroller.
func (m *ContextMenu) ScrollToTop() {
	m.viewport.GotoTop()
}

// FocusedItem returns the item under the keyboard cursor. There is no
// focused item until keyboard navigation has been used.
func (m *ContextMenu) FocusedItem() (menu.RenderedItem, bool) {
	if !m.nav.State().IsUsingKeyboardToNavigate {
		return menu.RenderedItem{}, false
	}
	items := m.incomingItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return menu.RenderedItem{}, false
	}
	return items[m.cursor], true
}

// Init implements View.
func (m *ContextMenu) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ContextMenu) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case menu.ShowNextPanelMsg:
		if msg.Menu != m.id {
			return m, nil
		}
		return m, m.afterNavigation(m.nav.ShowNextPanel(msg.Index))
	case menu.ShowPreviousPanelMsg:
		if msg.Menu != m.id {
			return m, nil
		}
		return m, m.afterNavigation(m.nav.ShowPreviousPanel())
	case transitionTickMsg:
		return m, m.handleTick(msg)
	case tea.WindowSizeMsg:
		m.maxWidth = msg.Width - Styles.MenuBox.GetHorizontalFrameSize()
		m.measure()
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

// View implements View.
func (m *ContextMenu) View() string {
	box := Styles.MenuBox.Render(m.viewport.View())
	if m.zones == nil {
		return box
	}
	return m.zones.Mark(m.ZoneID(), box)
}

// afterNavigation starts the transition animation when the navigator moved.
func (m *ContextMenu) afterNavigation(changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	st := m.nav.State()
	m.cursor = 0
	if st.IsUsingKeyboardToNavigate && st.HasFocusedItem {
		m.cursor = st.FocusedItemIndex
	}
	m.clampCursor()
	m.transitionSeq++
	m.framesLeft = m.frames
	m.measure()
	m.refresh()
	m.ensureCursorVisible()
	return m.tick()
}

func (m *ContextMenu) tick() tea.Cmd {
	id, seq := m.id, m.transitionSeq
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return transitionTickMsg{menu: id, seq: seq}
	})
}

func (m *ContextMenu) handleTick(msg transitionTickMsg) tea.Cmd {
	if msg.menu != m.id || msg.seq != m.transitionSeq || !m.nav.State().IsOutgoingPanelVisible {
		return nil
	}
	m.framesLeft--
	if m.framesLeft > 0 {
		return m.tick()
	}
	m.nav.OnOutgoingPanelTransitionComplete()
	m.refresh()
	return nil
}

func (m *ContextMenu) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(func(int) int { return m.cursor - 1 })
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(func(int) int { return m.cursor + 1 })
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(func(int) int { return 0 })
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(func(n int) int { return n - 1 })
	case key.Matches(msg, m.keys.Select):
		if m.latchKeyboard() {
			return nil
		}
		return m.activate(m.cursor)
	case key.Matches(msg, m.keys.Forward):
		m.latchKeyboard()
		return m.afterNavigation(m.nav.ShowNextPanel(m.cursor))
	case key.Matches(msg, m.keys.Back):
		m.latchKeyboard()
		return m.afterNavigation(m.nav.ShowPreviousPanel())
	}
	return nil
}

// latchKeyboard enters keyboard navigation mode. Returns true on the first
// keyboard interaction, when the cursor becomes visible without moving.
func (m *ContextMenu) latchKeyboard() bool {
	if !m.nav.OnUseKeyboardToNavigate() {
		return false
	}
	m.refresh()
	return true
}

func (m *ContextMenu) moveCursor(next func(n int) int) {
	if m.latchKeyboard() {
		return
	}
	m.cursor = next(len(m.incomingItems()))
	m.clampCursor()
	m.refresh()
	m.ensureCursorVisible()
}

func (m *ContextMenu) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
		return nil
	case tea.MouseButtonWheelDown:
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
		return nil
	}
	if m.zones == nil || !isLeftClick(msg) {
		return nil
	}
	incoming := m.nav.State().IncomingPanelID
	if m.index.HasParent(incoming) && m.zones.InBounds(m.zoneFor(incoming, -1), msg) {
		id := m.id
		return func() tea.Msg { return menu.ShowPreviousPanelMsg{Menu: id} }
	}
	for i := range m.incomingItems() {
		if m.zones.InBounds(m.zoneFor(incoming, i), msg) {
			m.cursor = i
			m.refresh()
			return m.activate(i)
		}
	}
	return nil
}

// activate runs the click handler of item i of the incoming panel.
func (m *ContextMenu) activate(i int) tea.Cmd {
	items := m.incomingItems()
	if i < 0 || i >= len(items) || items[i].Disabled {
		return nil
	}
	it := items[i]
	if it.OnClick != nil {
		return it.OnClick
	}
	chosen := ItemChosenMsg{Menu: m.id, Panel: m.nav.State().IncomingPanelID, Index: i, Item: *it.Item}
	return func() tea.Msg { return chosen }
}

func (m *ContextMenu) incomingItems() []menu.RenderedItem {
	return m.items[m.nav.State().IncomingPanelID]
}

func (m *ContextMenu) clampCursor() {
	n := len(m.incomingItems())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *ContextMenu) zoneFor(panel menu.PanelID, index int) string {
	if index < 0 {
		return fmt.Sprintf("%sback:%s", m.prefix, panel)
	}
	return fmt.Sprintf("%sitem:%s:%d", m.prefix, panel, index)
}

// panelView returns the renderer for one panel, or false when the id is unknown.
func (m *ContextMenu) panelView(id menu.PanelID, role panelRole) (panelView, bool) {
	p, ok := m.index.Panel(id)
	if !ok {
		return panelView{}, false
	}
	v := panelView{
		Panel:    p,
		Items:    m.items[id],
		Role:     role,
		HasBack:  m.index.HasParent(id),
		Cursor:   -1,
		MaxWidth: m.maxWidth,
		zoneID:   m.zoneFor,
	}
	if role == roleIncoming && m.nav.State().IsUsingKeyboardToNavigate {
		v.Cursor = m.cursor
	}
	if m.zones != nil && role == roleIncoming {
		v.zone = m.zones.Mark
	}
	return v, true
}

// measure reports the laid-out height of the incoming panel to the navigator.
func (m *ContextMenu) measure() {
	v, ok := m.panelView(m.nav.State().IncomingPanelID, roleIncoming)
	if !ok {
		return
	}
	m.nav.OnIncomingPanelHeightChange(v.Height())
}

// body paints the incoming panel, preceded or followed by the outgoing one
// while it is still visible.
func (m *ContextMenu) body() string {
	st := m.nav.State()
	in, ok := m.panelView(st.IncomingPanelID, roleIncoming)
	if !ok {
		return ""
	}
	incoming := in.Render()
	if !st.IsOutgoingPanelVisible {
		return incoming
	}
	out, ok := m.panelView(st.OutgoingPanelID, roleOutgoing)
	if !ok {
		return incoming
	}
	outgoing := out.Render()
	if st.TransitionDirection == menu.DirectionPrevious {
		return lipgloss.JoinHorizontal(lipgloss.Top, incoming, "  ", outgoing)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, outgoing, "  ", incoming)
}

// refresh repaints the viewport content and sizes it to the current height.
func (m *ContextMenu) refresh() {
	content := m.body()
	m.viewport.Width = lipgloss.Width(content)
	if st := m.nav.State(); st.HasHeight {
		m.viewport.Height = st.Height
	} else {
		m.viewport.Height = lipgloss.Height(content)
	}
	m.viewport.SetContent(content)
}

// ensureCursorVisible scrolls the viewport so the cursor line is shown.
func (m *ContextMenu) ensureCursorVisible() {
	v, ok := m.panelView(m.nav.State().IncomingPanelID, roleIncoming)
	if !ok || v.Cursor < 0 {
		return
	}
	line := v.titleLines() + m.cursor
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// logObserver writes navigation steps to the menu's logger.
type logObserver struct {
	logger *slog.Logger
	menu   menu.MenuID
}

func (o *logObserver) PanelShown(from, to menu.PanelID, dir menu.Direction) {
	o.logger.Debug("menu transition", "menu", o.menu, "from", from, "to", to, "direction", dir.String())
}

func (o *logObserver) OutgoingPanelHidden(id menu.PanelID) {
	o.logger.Debug("menu transition complete", "menu", o.menu, "outgoing", id)
}
