package gesture

import (
	"fmt"
	"image"

	"github.com/ayusman/mudra/internal/audio"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/overlay"
)

// Reference bar geometry in pixels.
const (
	barLeft   = 50
	barRight  = 85
	barTop    = 150
	barBottom = 400
)

var labelOrigin = image.Pt(40, 450)

const (
	tipRadius      = 12
	pinchThickness = 3
	jointRadius    = 4
	boneThickness  = 2
	barThickness   = 3
	labelScale     = 1.0
	labelThickness = 3
)

// Result is the outcome of one frame.
type Result struct {
	HandFound bool
	Thumb     image.Point
	Index     image.Point
	Distance  float64
	Engaged   bool

	// Command is the volume level to apply; only meaningful when HasCommand.
	Command    float64
	HasCommand bool

	Overlays []overlay.Instruction
}

// Controller maps pinch distance to volume. Control decisions are stateless;
// the only remembered value is the last displayed percentage, used when the
// live volume cannot be read.
type Controller struct {
	volumeRange audio.Range
	lastPercent int
}

// NewController creates a controller for the given volume range.
func NewController(r audio.Range) *Controller {
	return &Controller{volumeRange: r}
}

// Range returns the volume range the controller maps onto.
func (c *Controller) Range() audio.Range {
	return c.volumeRange
}

// Process computes the command and hand overlays for a frame of the given
// size. A nil hand produces neither.
func (c *Controller) Process(hand *detector.HandLandmarks, width, height int) Result {
	if hand == nil {
		return Result{}
	}

	thumb := Denormalize(hand.Points[detector.ThumbTip], width, height)
	index := Denormalize(hand.Points[detector.IndexTip], width, height)
	distance := PinchDistance(thumb, index)

	res := Result{
		HandFound:  true,
		Thumb:      thumb,
		Index:      index,
		Distance:   distance,
		Engaged:    distance < EngageDistance,
		Command:    VolumeForDistance(distance, c.volumeRange),
		HasCommand: true,
	}

	res.Overlays = append(skeleton(hand, width, height),
		overlay.Circle(overlay.RoleFingertip, thumb, tipRadius, overlay.Magenta, overlay.Filled),
		overlay.Circle(overlay.RoleFingertip, index, tipRadius, overlay.Magenta, overlay.Filled),
		overlay.Line(overlay.RolePinchLine, thumb, index, overlay.Magenta, pinchThickness),
	)

	if res.Engaged {
		mid := image.Pt(floorHalf(thumb.X+index.X), floorHalf(thumb.Y+index.Y))
		res.Overlays = append(res.Overlays,
			overlay.Circle(overlay.RoleEngaged, mid, tipRadius, overlay.Green, overlay.Filled))
	}

	return res
}

// ReferenceBar draws the volume bar for the live level and remembers its
// percentage.
func (c *Controller) ReferenceBar(current float64) []overlay.Instruction {
	c.lastPercent = PercentForVolume(current, c.volumeRange)
	return barOverlays(c.lastPercent)
}

// LastBar draws the volume bar as it was last displayed.
func (c *Controller) LastBar() []overlay.Instruction {
	return barOverlays(c.lastPercent)
}

// LastPercent returns the last displayed percentage.
func (c *Controller) LastPercent() int {
	return c.lastPercent
}

// floorHalf halves v rounding toward negative infinity. Landmarks may lie
// slightly outside the frame, so v can be negative.
func floorHalf(v int) int {
	if v < 0 {
		return (v - 1) / 2
	}
	return v / 2
}

func barOverlays(percent int) []overlay.Instruction {
	return []overlay.Instruction{
		overlay.Rect(overlay.RoleBarOutline, image.Pt(barLeft, barTop), image.Pt(barRight, barBottom), overlay.Green, barThickness),
		overlay.Rect(overlay.RoleBarFill, image.Pt(barLeft, BarTop(percent)), image.Pt(barRight, barBottom), overlay.Green, overlay.Filled),
		overlay.Text(overlay.RoleVolumeLabel, fmt.Sprintf("%d %%", percent), labelOrigin, labelScale, overlay.Green, labelThickness),
	}
}

func skeleton(hand *detector.HandLandmarks, width, height int) []overlay.Instruction {
	var points [detector.NumLandmarks]image.Point
	for i, p := range hand.Points {
		points[i] = Denormalize(p, width, height)
	}

	ops := make([]overlay.Instruction, 0, len(detector.HandConnections)+detector.NumLandmarks+4)
	for _, conn := range detector.HandConnections {
		ops = append(ops, overlay.Line(overlay.RoleSkeleton, points[conn.From], points[conn.To], overlay.White, boneThickness))
	}
	for _, p := range points {
		ops = append(ops, overlay.Circle(overlay.RoleSkeleton, p, jointRadius, overlay.Red, overlay.Filled))
	}
	return ops
}
