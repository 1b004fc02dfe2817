package model

import "math"

// Point represents a 3D point or vector.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a point from coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// setCoord applies one coordinate group code (10/20/30 family) to the
// point. base is the X code of the family; codes base+10 and base+20
// carry Y and Z.
func (p *Point) setCoord(code, base int, value float64) bool {
	switch code {
	case base:
		p.X = value
	case base + 10:
		p.Y = value
	case base + 20:
		p.Z = value
	default:
		return false
	}
	return true
}
