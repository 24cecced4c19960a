package audio

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var percentPattern = regexp.MustCompile(`\[(\d+)%\]`)

// ALSASink controls a Linux mixer control through amixer.
// Levels are percentages of the control's range.
type ALSASink struct {
	control string
	run     commandRunner
}

// NewALSASink creates a sink for the named simple mixer control.
func NewALSASink(control string) *ALSASink {
	return &ALSASink{control: control, run: runCommand}
}

// Range returns the 0-100 percent scale.
func (s *ALSASink) Range() (Range, error) {
	return percentRange, nil
}

// Current returns the control's volume. With several channels the first one
// reported is used.
func (s *ALSASink) Current() (float64, error) {
	out, err := s.run("amixer", "sget", s.control)
	if err != nil {
		return 0, err
	}

	match := percentPattern.FindSubmatch(out)
	if match == nil {
		return 0, fmt.Errorf("no volume level for control %s", s.control)
	}

	level, err := strconv.ParseFloat(string(match[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("parse volume level: %w", err)
	}

	return level, nil
}

// SetCurrent sets every channel of the control to level percent.
func (s *ALSASink) SetCurrent(level float64) error {
	if !percentRange.Contains(level) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, level)
	}
	_, err := s.run("amixer", "-q", "sset", s.control, fmt.Sprintf("%d%%", int(math.Round(level))))
	return err
}
