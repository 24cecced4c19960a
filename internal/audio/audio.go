// Package audio reads and sets the operating system's output volume.
package audio

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrUnsupportedPlatform is returned by Open when no backend exists for the
// running operating system.
var ErrUnsupportedPlatform = errors.New("no volume backend for this platform")

// ErrOutOfRange is returned by SetCurrent for a level outside the sink's
// range.
var ErrOutOfRange = errors.New("volume level out of range")

// percentRange is the scale of the percent-based backends.
var percentRange = Range{Min: 0, Max: 100}

// Range is the platform's valid volume interval. It is queried once at
// startup and never changes afterwards.
type Range struct {
	Min float64
	Max float64
}

// Degenerate reports whether the range has zero width.
func (r Range) Degenerate() bool {
	return r.Min == r.Max
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Sink is the output volume control surface.
type Sink interface {
	// Range returns the valid volume interval in platform units.
	Range() (Range, error)

	// Current returns the live volume level. Other processes may change it
	// at any time.
	Current() (float64, error)

	// SetCurrent sets the volume level.
	SetCurrent(level float64) error
}

// commandRunner executes a command and returns its combined output.
type commandRunner func(name string, args ...string) ([]byte, error)

func runCommand(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s: %w: %s", name, err, string(output))
	}
	return output, nil
}

// Open returns the volume backend for the running platform after checking
// that the output device can be read.
func Open() (Sink, error) {
	var sink Sink
	switch runtime.GOOS {
	case "darwin":
		sink = NewAppleScriptSink()
	case "linux":
		sink = NewALSASink("Master")
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}

	if _, err := sink.Current(); err != nil {
		return nil, fmt.Errorf("activate output device: %w", err)
	}

	return sink, nil
}
