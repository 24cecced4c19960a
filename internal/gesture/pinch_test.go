package gesture

import (
	"image"
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/audio"
	"github.com/ayusman/mudra/internal/detector"
)

var windowsRange = audio.Range{Min: -65.25, Max: 0}

func TestClampLerp(t *testing.T) {
	tests := []struct {
		name                 string
		value                float64
		inMin, inMax         float64
		outMin, outMax, want float64
	}{
		{"low edge", 20, 20, 200, -65.25, 0, -65.25},
		{"high edge", 200, 20, 200, -65.25, 0, 0},
		{"below domain", 5, 20, 200, -65.25, 0, -65.25},
		{"above domain", 500, 20, 200, -65.25, 0, 0},
		{"midpoint", 110, 20, 200, 0, 100, 50},
		{"reversed output", 25, 0, 100, 400, 150, 337.5},
		{"reversed output saturates", 150, 0, 100, 400, 150, 150},
		{"reversed input", 75, 100, 0, 0, 10, 2.5},
		{"zero width input", 42, 7, 7, 3, 9, 3},
		{"zero width output", 90, 20, 200, -5, -5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampLerp(tt.value, tt.inMin, tt.inMax, tt.outMin, tt.outMax)
			if got != tt.want {
				t.Errorf("ClampLerp(%v, %v, %v, %v, %v) = %v, want %v",
					tt.value, tt.inMin, tt.inMax, tt.outMin, tt.outMax, got, tt.want)
			}
		})
	}
}

func TestVolumeForDistance_Examples(t *testing.T) {
	ranges := []audio.Range{
		windowsRange,
		{Min: 0, Max: 100},
		{Min: 0.1, Max: 0.7},
	}

	for _, r := range ranges {
		if got := VolumeForDistance(20, r); got != r.Min {
			t.Errorf("%v: distance 20 = %v, want %v", r, got, r.Min)
		}
		if got := VolumeForDistance(200, r); got != r.Max {
			t.Errorf("%v: distance 200 = %v, want %v", r, got, r.Max)
		}
		if got, want := VolumeForDistance(110, r), r.Min+0.5*(r.Max-r.Min); got != want {
			t.Errorf("%v: distance 110 = %v, want %v", r, got, want)
		}
		if got := VolumeForDistance(5, r); got != r.Min {
			t.Errorf("%v: distance 5 = %v, want %v", r, got, r.Min)
		}
		if got := VolumeForDistance(500, r); got != r.Max {
			t.Errorf("%v: distance 500 = %v, want %v", r, got, r.Max)
		}
	}
}

func TestVolumeForDistance_Saturates(t *testing.T) {
	for d := 0.0; d <= PinchMin; d += 0.25 {
		if got := VolumeForDistance(d, windowsRange); got != windowsRange.Min {
			t.Fatalf("distance %v = %v, want min %v", d, got, windowsRange.Min)
		}
	}
	for d := PinchMax; d <= 1000; d += 0.25 {
		if got := VolumeForDistance(d, windowsRange); got != windowsRange.Max {
			t.Fatalf("distance %v = %v, want max %v", d, got, windowsRange.Max)
		}
	}
}

func TestVolumeForDistance_MonotonicAndBounded(t *testing.T) {
	for _, r := range []audio.Range{windowsRange, {Min: 0, Max: 100}, {Min: 0.3, Max: 0.31}} {
		prev := math.Inf(-1)
		for d := PinchMin; d <= PinchMax; d += 0.1 {
			got := VolumeForDistance(d, r)
			if got < prev {
				t.Fatalf("%v: not monotonic at distance %v: %v < %v", r, d, got, prev)
			}
			if !r.Contains(got) {
				t.Fatalf("%v: distance %v mapped outside range: %v", r, d, got)
			}
			prev = got
		}
	}
}

func TestVolumeForDistance_Deterministic(t *testing.T) {
	for d := 0.0; d < 300; d += 7.3 {
		a := VolumeForDistance(d, windowsRange)
		b := VolumeForDistance(d, windowsRange)
		if a != b {
			t.Fatalf("distance %v mapped to %v then %v", d, a, b)
		}
	}
}

func TestVolumeForDistance_DegenerateRange(t *testing.T) {
	r := audio.Range{Min: -12, Max: -12}

	for _, d := range []float64{0, 20, 110, 200, 500} {
		got := VolumeForDistance(d, r)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("distance %v produced %v", d, got)
		}
		if got != r.Min {
			t.Errorf("distance %v = %v, want constant %v", d, got, r.Min)
		}
	}

	if got := PercentForVolume(-12, r); got != 0 {
		t.Errorf("PercentForVolume on degenerate range = %d, want 0", got)
	}
}

func TestPercentForVolume_RoundTrip(t *testing.T) {
	for d := PinchMin; d <= PinchMax; d++ {
		want := int(math.Round((d - PinchMin) / (PinchMax - PinchMin) * 100))

		got := PercentForVolume(VolumeForDistance(d, windowsRange), windowsRange)
		if diff := got - want; diff < -1 || diff > 1 {
			t.Errorf("distance %v: percent %d, want %d ±1", d, got, want)
		}
	}
}

func TestBarTop(t *testing.T) {
	tests := []struct {
		percent int
		want    int
	}{
		{0, 400},
		{100, 150},
		{50, 275},
		{-10, 400},
		{120, 150},
	}

	for _, tt := range tests {
		if got := BarTop(tt.percent); got != tt.want {
			t.Errorf("BarTop(%d) = %d, want %d", tt.percent, got, tt.want)
		}
	}
}

func TestDenormalize(t *testing.T) {
	tests := []struct {
		name string
		p    detector.Point3D
		want image.Point
	}{
		{"origin", detector.Point3D{X: 0, Y: 0}, image.Pt(0, 0)},
		{"far corner", detector.Point3D{X: 1, Y: 1}, image.Pt(640, 480)},
		{"center", detector.Point3D{X: 0.25, Y: 0.5}, image.Pt(160, 240)},
		{"rounds down", detector.Point3D{X: 100.4 / 640, Y: 100.4 / 480}, image.Pt(100, 100)},
		{"rounds up", detector.Point3D{X: 100.6 / 640, Y: 100.6 / 480}, image.Pt(101, 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Denormalize(tt.p, 640, 480); got != tt.want {
				t.Errorf("Denormalize(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPinchDistance(t *testing.T) {
	if got := PinchDistance(image.Pt(0, 0), image.Pt(3, 4)); got != 5 {
		t.Errorf("PinchDistance = %v, want 5", got)
	}
	if got := PinchDistance(image.Pt(10, 10), image.Pt(10, 10)); got != 0 {
		t.Errorf("PinchDistance of same point = %v, want 0", got)
	}
}
