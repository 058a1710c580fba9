package ui

import (
	"github.com/rivo/tview"
)

// panelWidth is the fixed width of the control column.
const panelWidth = 22

// CreateLayout places the canvas next to the control panel with the status
// bar below both.
func CreateLayout(canvas *BoardCanvas, controls *ControlPanel, status *StatusBar) *tview.Flex {
	controls.SetBorder(true)
	controls.SetBorderColor(PanelColors.Border)
	controls.SetBorderPadding(0, 0, 1, 1)
	controls.SetTitle(" Controls ")
	controls.SetTitleAlign(tview.AlignLeft)

	// Create horizontal flex: board | controls
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(canvas, 0, 1, true)
	boardRow.AddItem(controls, panelWidth, 0, false)

	// Main vertical flex: board area on top, status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(status, 4, 0, false)
	mainFlex.SetBorder(true)
	mainFlex.SetTitle(" ⬡ boardsketch ")

	return mainFlex
}
