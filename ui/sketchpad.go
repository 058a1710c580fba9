package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"boardsketch/export"
	"boardsketch/sketch"
	"boardsketch/types"
)

// Exporter saves the surface and the position shown on it.
type Exporter interface {
	Export(src export.PNGSource, pos export.Position) (export.Result, error)
}

// Sketchpad wires the canvas, controls and status bar to one session.
type Sketchpad struct {
	session  *sketch.Session
	canvas   *BoardCanvas
	controls *ControlPanel
	status   *StatusBar
	exporter Exporter
	root     *tview.Flex
	stop     func()
	log      *logrus.Entry
}

// NewSketchpad builds the widgets. stop is called when the user quits.
func NewSketchpad(session *sketch.Session, canvas *BoardCanvas, exporter Exporter, active tcell.Color, stop func(), log *logrus.Entry) *Sketchpad {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	p := &Sketchpad{
		session:  session,
		canvas:   canvas,
		exporter: exporter,
		stop:     stop,
		log:      log.WithField("component", "ui"),
	}
	p.status = NewStatusBar(session)
	p.controls = NewControlPanel(session, active, p.status.Refresh, p.Export)
	p.root = CreateLayout(canvas, p.controls, p.status)

	canvas.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if isClick(action) && p.session.Click() {
			p.status.Refresh()
			return action, nil
		}
		return action, event
	})
	return p
}

// isClick reports whether action completes a left click. tview reports a
// second click within DoubleClickInterval anywhere on screen as a double
// click, so both count.
func isClick(action tview.MouseAction) bool {
	return action == tview.MouseLeftClick || action == tview.MouseLeftDoubleClick
}

// Root returns the primitive to install as the application root.
func (p *Sketchpad) Root() tview.Primitive {
	return p.root
}

// Refresh updates the status bar and the buttons.
func (p *Sketchpad) Refresh() {
	p.controls.Refresh()
	p.status.Refresh()
}

// Export saves the current surface. The outcome is shown in the status bar.
func (p *Sketchpad) Export() {
	res, err := p.exporter.Export(p.canvas.Surface(), p.session)
	if err != nil {
		p.log.WithError(err).Error("export failed")
	}
	p.status.SetExportResult(res, err)
}

// HandleMouse tracks the pointer over the canvas. It is installed as the
// application mouse capture so that leaving the canvas is seen too.
func (p *Sketchpad) HandleMouse(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if event == nil {
		return event, action
	}
	x, y := event.Position()
	if px, py, ok := p.canvas.SurfacePoint(x, y); ok {
		p.session.PointerMove(px, py)
	} else {
		p.session.PointerLeave()
	}
	return event, action
}

// HandleKey implements the keyboard shortcuts. Unhandled keys are passed on,
// and Enter only clicks while the canvas has focus so a focused button still
// receives it.
func (p *Sketchpad) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		p.session.NudgePointer(0, -1)
	case tcell.KeyDown:
		p.session.NudgePointer(0, 1)
	case tcell.KeyLeft:
		p.session.NudgePointer(-1, 0)
	case tcell.KeyRight:
		p.session.NudgePointer(1, 0)
	case tcell.KeyEnter:
		if !p.canvas.HasFocus() {
			return event
		}
		p.session.Click()
	case tcell.KeyRune:
		if !p.handleRune(event.Rune()) {
			return event
		}
	default:
		return event
	}
	p.Refresh()
	return nil
}

func (p *Sketchpad) handleRune(r rune) bool {
	switch r {
	case 'h':
		p.session.NudgePointer(-1, 0)
	case 'j':
		p.session.NudgePointer(0, 1)
	case 'k':
		p.session.NudgePointer(0, -1)
	case 'l':
		p.session.NudgePointer(1, 0)
	case ' ':
		p.session.Click()
	case 'a':
		p.session.SetMode(types.Alternate)
	case 'b':
		p.session.SetMode(types.FixedBlack)
	case 'w':
		p.session.SetMode(types.FixedWhite)
	case '1', '2', '3', '4':
		p.session.SelectCorner(types.Zoom(r - '1'))
	case 'r':
		p.session.Reset()
	case 's':
		p.Export()
	case 'q':
		if p.stop != nil {
			p.stop()
		}
	default:
		return false
	}
	return true
}
