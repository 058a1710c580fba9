package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"boardsketch/export"
	"boardsketch/geometry"
	"boardsketch/sketch"
	"boardsketch/types"
)

const keysHint = "a/b/w mode · 1-4 corner · hjkl/↑↓←→ move · ⏎ place · r reset · s export · q quit"

// StatusBar shows the session state and the outcome of the last export.
type StatusBar struct {
	*tview.TextView
	session   *sketch.Session
	exported  export.Result
	exportErr error
}

func NewStatusBar(session *sketch.Session) *StatusBar {
	s := &StatusBar{
		TextView: tview.NewTextView(),
		session:  session,
	}
	s.SetDynamicColors(true)
	s.SetBorder(true)
	s.SetBorderColor(PanelColors.Border)
	s.SetBorderPadding(0, 0, 1, 1)
	s.SetTitle(" Status ")
	s.SetTitleAlign(tview.AlignLeft)
	s.Refresh()
	return s
}

// SetExportResult records the outcome of an export for display.
func (s *StatusBar) SetExportResult(res export.Result, err error) {
	s.exported, s.exportErr = res, err
	s.Refresh()
}

func (s *StatusBar) Refresh() {
	s.SetText(statusText(s.session, s.exported, s.exportErr))
}

func statusText(session *sketch.Session, res export.Result, exportErr error) string {
	hover := "-"
	if pos, ok := session.HoverCell(); ok {
		hover = geometry.Label(pos)
	}
	black, white := session.Board().Count()

	var b strings.Builder
	fmt.Fprintf(&b, "%s next · mode %s · %s · at %s · ● %d ○ %d",
		stoneBullet(session.Color()), session.Mode(), session.Zoom(), hover, black, white)

	switch {
	case exportErr != nil:
		fmt.Fprintf(&b, " · %s%s[-]", colorTag(PanelColors.Error), tview.Escape(exportErr.Error()))
	case res.Image != "":
		fmt.Fprintf(&b, " · saved %s", tview.Escape(res.Image))
		if res.SGF != "" {
			fmt.Fprintf(&b, " + %s", tview.Escape(res.SGF))
		}
	}
	fmt.Fprintf(&b, "\n%s%s[-]", colorTag(PanelColors.Hint), keysHint)
	return b.String()
}

// colorTag formats c as a tview foreground color tag.
func colorTag(c tcell.Color) string {
	return fmt.Sprintf("[#%06x]", c.Hex())
}

func stoneBullet(stone types.Stone) string {
	if stone == types.White {
		return "○ White"
	}
	return "● Black"
}
