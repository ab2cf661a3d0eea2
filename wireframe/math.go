package wireframe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const twoPi = 2 * math.Pi

// Axis selects the rotation axis.
type Axis uint8

const (
	AxisY Axis = iota
	AxisX
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisZ:
		return "z"
	default:
		return "y"
	}
}

// ParseAxis parses "x", "y" or "z".
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x", "X":
		return AxisX, true
	case "y", "Y", "":
		return AxisY, true
	case "z", "Z":
		return AxisZ, true
	}
	return AxisY, false
}

// rotation returns the matrix turning a point by rad about the axis.
//
// Y uses the negated angle so x' = x·cos − z·sin and z' = x·sin + z·cos.
func (a Axis) rotation(rad float64) mgl64.Mat3 {
	switch a {
	case AxisX:
		return mgl64.Rotate3DX(rad)
	case AxisZ:
		return mgl64.Rotate3DZ(rad)
	default:
		return mgl64.Rotate3DY(-rad)
	}
}

// Rotate turns v by rad about the axis and pushes the result offset units away from the
// eye along z.
func Rotate(v Vertex, axis Axis, rad, offset float64) Vertex {
	p := axis.rotation(rad).Mul3x1(v)
	p[2] += offset
	return p
}

// Project applies the perspective divide.
func Project(v Vertex) mgl64.Vec2 {
	return mgl64.Vec2{v.X() / v.Z(), v.Y() / v.Z()}
}

// ToScreen maps normalized [-1,1] coordinates to pixels. Y is flipped: model space grows
// upwards, screen space grows downwards.
func ToScreen(p mgl64.Vec2, w, h int) (x, y float64) {
	x = (p.X() + 1) / 2 * float64(w)
	y = (1 - (p.Y()+1)/2) * float64(h)
	return x, y
}

// screenPoint is a projected vertex; ok is false when the vertex sits on or behind the eye.
type screenPoint struct {
	x, y float64
	ok   bool
}

func transform(v Vertex, axis Axis, rad, offset float64, w, h int) screenPoint {
	r := Rotate(v, axis, rad, offset)
	if r.Z() <= 0 {
		return screenPoint{}
	}
	x, y := ToScreen(Project(r), w, h)
	return screenPoint{x: x, y: y, ok: true}
}

// wrapAngle keeps the angle in [0, 2π).
func wrapAngle(rad float64) float64 {
	if rad >= twoPi || rad < 0 {
		rad = math.Mod(rad, twoPi)
		if rad < 0 {
			rad += twoPi
		}
	}
	return rad
}
