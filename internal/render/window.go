package render

import (
	"image"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/overlay"
)

// Window renders into a native OpenCV window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Draw applies ops to frame.
func (w *Window) Draw(frame *gocv.Mat, ops []overlay.Instruction) {
	Apply(frame, ops)
}

// Show displays frame.
func (w *Window) Show(frame *gocv.Mat) {
	w.win.IMShow(*frame)
}

// PollQuit pumps window events for up to wait and reports a quit key or a
// window closed by the user.
func (w *Window) PollQuit(wait time.Duration) bool {
	ms := int(wait / time.Millisecond)
	if ms < 1 {
		ms = 1
	}

	if IsQuitKey(w.win.WaitKey(ms)) {
		return true
	}

	// backends without the property report a negative value
	return w.win.GetWindowProperty(gocv.WindowPropertyVisible) == 0
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}

func rectOf(op overlay.Instruction) image.Rectangle {
	return image.Rectangle{Min: op.From, Max: op.To}.Canon()
}
