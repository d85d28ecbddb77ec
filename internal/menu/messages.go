package menu

// ShowNextPanelMsg asks the menu to open the sub-panel behind item Index of
// the current incoming panel. Item click handlers deliver it one update cycle
// after the click so outside-click detection sees the pre-navigation layout.
type ShowNextPanelMsg struct {
	Menu  MenuID
	Index int
}

// ShowPreviousPanelMsg asks the menu to return to the parent panel.
type ShowPreviousPanelMsg struct {
	Menu MenuID
}
