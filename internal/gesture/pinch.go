// Package gesture turns a hand's thumb-index pinch into a volume command and
// the feedback overlays that go with it.
package gesture

import (
	"image"
	"math"

	"github.com/ayusman/mudra/internal/audio"
	"github.com/ayusman/mudra/internal/detector"
)

// Pinch distances in pixels mapped onto the volume range. Distances outside
// the domain saturate.
const (
	PinchMin = 20.0
	PinchMax = 200.0
)

// EngageDistance is the pinch distance below which the engaged marker is
// drawn. It happens to equal PinchMin; the two are tuned independently.
const EngageDistance = 20.0

// ClampLerp maps value from [inMin, inMax] onto [outMin, outMax], saturating
// at the ends. Either interval may be reversed. A zero-width input domain
// yields outMin.
func ClampLerp(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMin == inMax {
		return outMin
	}

	t := (value - inMin) / (inMax - inMin)
	switch {
	case t <= 0:
		return outMin
	case t >= 1:
		return outMax
	}

	out := outMin + t*(outMax-outMin)

	// keep rounding error inside the output interval
	lo, hi := outMin, outMax
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, out))
}

// Denormalize converts a normalized landmark to pixel coordinates.
func Denormalize(p detector.Point3D, width, height int) image.Point {
	return image.Pt(
		int(math.Round(p.X*float64(width))),
		int(math.Round(p.Y*float64(height))),
	)
}

// PinchDistance is the Euclidean pixel distance between two points.
func PinchDistance(a, b image.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// VolumeForDistance maps a pinch distance onto the volume range. The result
// always lies within r; a degenerate range yields r.Min.
func VolumeForDistance(distance float64, r audio.Range) float64 {
	return ClampLerp(distance, PinchMin, PinchMax, r.Min, r.Max)
}

// PercentForVolume converts a volume level to the 0-100 display percentage.
func PercentForVolume(level float64, r audio.Range) int {
	return int(math.Round(ClampLerp(level, r.Min, r.Max, 0, 100)))
}

// BarTop returns the y coordinate of the top of the filled reference bar.
func BarTop(percent int) int {
	return int(math.Round(ClampLerp(float64(percent), 0, 100, barBottom, barTop)))
}
