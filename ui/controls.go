package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"boardsketch/sketch"
	"boardsketch/types"
)

var modeLabels = map[types.PlacementMode]string{
	types.Alternate:  "Alternate",
	types.FixedBlack: "Black",
	types.FixedWhite: "White",
}

// ControlPanel holds the mode, corner, reset and export buttons.
type ControlPanel struct {
	*tview.Flex
	session *sketch.Session
	active  tcell.Color
	modes   []*tview.Button
	corners []*tview.Button
	reset   *tview.Button
	export  *tview.Button
}

// NewControlPanel builds the panel. onChange runs after any button changed
// the session, onExport when the export button is pressed.
func NewControlPanel(session *sketch.Session, active tcell.Color, onChange, onExport func()) *ControlPanel {
	p := &ControlPanel{
		Flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		session: session,
		active:  active,
	}
	changed := func() {
		p.Refresh()
		if onChange != nil {
			onChange()
		}
	}

	p.addSection("Mode")
	for _, mode := range types.Modes {
		b := tview.NewButton("")
		b.SetSelectedFunc(func() {
			session.SetMode(mode)
			changed()
		})
		p.modes = append(p.modes, b)
		p.addButton(b)
	}

	p.addSection("Corner")
	for i := range types.NumCorners {
		corner := types.Zoom(i)
		b := tview.NewButton("")
		b.SetSelectedFunc(func() {
			session.SelectCorner(corner)
			changed()
		})
		p.corners = append(p.corners, b)
		p.addButton(b)
	}

	p.AddItem(nil, 1, 0, false)
	p.reset = tview.NewButton("Reset").SetSelectedFunc(func() {
		session.Reset()
		changed()
	})
	p.addButton(p.reset)
	p.export = tview.NewButton("Export").SetSelectedFunc(func() {
		if onExport != nil {
			onExport()
		}
	})
	p.addButton(p.export)
	p.AddItem(nil, 0, 1, false)

	p.Refresh()
	return p
}

func (p *ControlPanel) addSection(title string) {
	label := tview.NewTextView().
		SetDynamicColors(true).
		SetText(fmt.Sprintf("[::b]◈ %s", title))
	label.SetTextColor(PanelColors.Title)
	p.AddItem(nil, 1, 0, false)
	p.AddItem(label, 1, 0, false)
}

func (p *ControlPanel) addButton(b *tview.Button) {
	paint(b, false, p.active)
	b.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if isClick(action) {
			return tview.MouseLeftClick, event
		}
		return action, event
	})
	p.AddItem(b, 1, 0, false)
}

// Refresh repaints the buttons from the session state. Exactly one mode
// button is active; a corner button is active only while zoomed into it.
func (p *ControlPanel) Refresh() {
	for i, b := range p.modes {
		mode := types.Modes[i]
		on := p.session.Mode() == mode
		b.SetLabel(bulletLabel(modeLabels[mode], on))
		paint(b, on, p.active)
	}
	for i, b := range p.corners {
		corner := types.Zoom(i)
		on := p.session.Zoom() == corner
		b.SetLabel(bulletLabel(fmt.Sprintf("%d %s", i+1, corner), on))
		paint(b, on, p.active)
	}
}

func bulletLabel(label string, on bool) string {
	if on {
		return "● " + label
	}
	return "○ " + label
}

func paint(b *tview.Button, on bool, active tcell.Color) {
	bg, fg := PanelColors.ButtonBG, PanelColors.Label
	if on {
		bg, fg = active, PanelColors.ButtonText
	}
	b.SetLabelColor(fg)
	b.SetBackgroundColor(bg)
	b.SetLabelColorActivated(fg)
	b.SetBackgroundColorActivated(bg)
}
