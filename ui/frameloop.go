package ui

import (
	"context"
	"time"

	"github.com/rivo/tview"
)

// Drawer queues a function on the UI goroutine and redraws afterwards.
// *tview.Application implements it.
type Drawer interface {
	QueueUpdateDraw(f func()) *tview.Application
}

var _ Drawer = (*tview.Application)(nil)

// RunFrameLoop requests a redraw fps times per second until ctx is done.
// update runs on the UI goroutine before each redraw.
func RunFrameLoop(ctx context.Context, app Drawer, fps int, update func()) {
	if fps <= 0 {
		fps = 1
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.QueueUpdateDraw(func() {
				if update != nil {
					update()
				}
			})
		}
	}
}
