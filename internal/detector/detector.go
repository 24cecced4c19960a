package detector

import (
	"errors"

	"gocv.io/x/gocv"
)

// ErrMalformedHand is returned when a detector reports a hand that does not
// carry exactly NumLandmarks points.
var ErrMalformedHand = errors.New("malformed hand landmarks")

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns detected hand landmarks.
	// Returns an empty slice if no hands are detected.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect.
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns the single-hand configuration used for pinch control.
func DefaultConfig() Config {
	return Config{
		MaxHands:        1,
		MinConfidence:   0.7,
		MinTrackingConf: 0.7,
	}
}

// SelectHand returns the first hand in the detector's list. The order is
// whatever the detector reports; for MediaPipe that is its internal tracking
// order, which is not guaranteed stable across versions.
func SelectHand(hands []HandLandmarks) (*HandLandmarks, bool) {
	if len(hands) == 0 {
		return nil, false
	}
	return &hands[0], true
}
