// Package overlay describes what to draw on a frame without drawing it.
package overlay

import (
	"image"
	"image/color"
)

// Kind selects the primitive an Instruction draws.
type Kind int

const (
	KindCircle Kind = iota
	KindLine
	KindRect
	KindText
)

// Role tags an instruction with the feedback element it belongs to.
type Role string

const (
	RoleSkeleton    Role = "skeleton"
	RoleFingertip   Role = "fingertip"
	RolePinchLine   Role = "pinch-line"
	RoleEngaged     Role = "engaged"
	RoleBarOutline  Role = "bar-outline"
	RoleBarFill     Role = "bar-fill"
	RoleVolumeLabel Role = "volume-label"
)

// Filled as a thickness fills the shape.
const Filled = -1

var (
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 0}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 0}
)

// Instruction is a single drawing primitive.
//
// Circles use From as the center and Radius; lines and rectangles span
// From..To; text is drawn at From with Scale.
type Instruction struct {
	Kind      Kind
	Role      Role
	From      image.Point
	To        image.Point
	Radius    int
	Text      string
	Scale     float64
	Color     color.RGBA
	Thickness int
}

func Circle(role Role, center image.Point, radius int, c color.RGBA, thickness int) Instruction {
	return Instruction{Kind: KindCircle, Role: role, From: center, Radius: radius, Color: c, Thickness: thickness}
}

func Line(role Role, from, to image.Point, c color.RGBA, thickness int) Instruction {
	return Instruction{Kind: KindLine, Role: role, From: from, To: to, Color: c, Thickness: thickness}
}

func Rect(role Role, from, to image.Point, c color.RGBA, thickness int) Instruction {
	return Instruction{Kind: KindRect, Role: role, From: from, To: to, Color: c, Thickness: thickness}
}

func Text(role Role, text string, at image.Point, scale float64, c color.RGBA, thickness int) Instruction {
	return Instruction{Kind: KindText, Role: role, From: at, Text: text, Scale: scale, Color: c, Thickness: thickness}
}

// Find returns the instructions with the given role, in order.
func Find(ops []Instruction, role Role) []Instruction {
	var found []Instruction
	for _, op := range ops {
		if op.Role == role {
			found = append(found, op)
		}
	}
	return found
}
