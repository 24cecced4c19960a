// Package render draws overlay instructions onto frames and shows them in a
// window.
package render

import (
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/overlay"
)

// Keys that end the session.
const (
	KeyQuit   = 'q'
	KeyEscape = 27
)

// Renderer draws feedback and reports the user's quit request.
type Renderer interface {
	Draw(frame *gocv.Mat, ops []overlay.Instruction)
	Show(frame *gocv.Mat)
	// PollQuit waits at most wait for input and reports whether the user
	// asked to quit.
	PollQuit(wait time.Duration) bool
	Close() error
}

// Apply draws ops onto frame in order.
func Apply(frame *gocv.Mat, ops []overlay.Instruction) {
	for _, op := range ops {
		switch op.Kind {
		case overlay.KindCircle:
			gocv.Circle(frame, op.From, op.Radius, op.Color, op.Thickness)
		case overlay.KindLine:
			gocv.Line(frame, op.From, op.To, op.Color, op.Thickness)
		case overlay.KindRect:
			gocv.Rectangle(frame, rectOf(op), op.Color, op.Thickness)
		case overlay.KindText:
			gocv.PutText(frame, op.Text, op.From, gocv.FontHersheyComplex, op.Scale, op.Color, op.Thickness)
		}
	}
}

// IsQuitKey reports whether a WaitKey result is a quit request.
func IsQuitKey(key int) bool {
	if key < 0 {
		return false
	}
	switch key & 0xFF {
	case KeyQuit, KeyEscape:
		return true
	}
	return false
}
