package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AppleScriptSink controls the macOS output volume through osascript.
// Levels are the 0-100 "output volume" scale.
type AppleScriptSink struct {
	run commandRunner
}

// NewAppleScriptSink creates a sink backed by osascript.
func NewAppleScriptSink() *AppleScriptSink {
	return &AppleScriptSink{run: runCommand}
}

// Range returns the fixed 0-100 output volume scale.
func (s *AppleScriptSink) Range() (Range, error) {
	return percentRange, nil
}

// Current returns the output volume.
func (s *AppleScriptSink) Current() (float64, error) {
	out, err := s.runAppleScript(`output volume of (get volume settings)`)
	if err != nil {
		return 0, err
	}

	text := strings.TrimSpace(string(out))
	level, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// "missing value" is reported when the output device has no volume control
		return 0, fmt.Errorf("parse output volume %q: %w", text, err)
	}

	return level, nil
}

// SetCurrent sets the output volume. osascript only accepts integers.
func (s *AppleScriptSink) SetCurrent(level float64) error {
	if !percentRange.Contains(level) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, level)
	}
	script := fmt.Sprintf(`set volume output volume %d`, int(math.Round(level)))
	_, err := s.runAppleScript(script)
	return err
}

func (s *AppleScriptSink) runAppleScript(script string) ([]byte, error) {
	return s.run("osascript", "-e", script)
}
