// Package geom holds the small spatial vocabulary shared by the model
// pipeline: the six axis directions and rotation snapping.
package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is one of the six axis-aligned face directions.
type Direction int

const (
	Down Direction = iota
	Up
	North
	South
	West
	East
)

// Directions lists all six directions in canonical iteration order.
var Directions = [6]Direction{Down, Up, North, South, West, East}

var directionNames = [6]string{"down", "up", "north", "south", "west", "east"}

// North is -Z, south +Z, west -X, east +X.
var directionNormals = [6]mgl32.Vec3{
	{0, -1, 0},
	{0, 1, 0},
	{0, 0, -1},
	{0, 0, 1},
	{-1, 0, 0},
	{1, 0, 0},
}

var directionOpposites = [6]Direction{Up, Down, South, North, East, West}

func (d Direction) String() string {
	if d < Down || d > East {
		return "invalid"
	}
	return directionNames[d]
}

// Normal returns the unit normal of a face pointing in d.
func (d Direction) Normal() mgl32.Vec3 {
	return directionNormals[d]
}

func (d Direction) Opposite() Direction {
	return directionOpposites[d]
}

// ParseDirection maps a lowercase direction name to its Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return Down, false
}

// Rotate transforms d's normal by the rotation component of m and
// snaps the result back to the closest axis direction. Exact ties keep
// the earlier direction in canonical order.
func Rotate(m mgl32.Mat4, d Direction) Direction {
	rotated := mgl32.TransformNormal(d.Normal(), m)
	best := Down
	bestDot := float32(-2)
	for _, cand := range Directions {
		if dot := cand.Normal().Dot(rotated); dot > bestDot {
			best = cand
			bestDot = dot
		}
	}
	return best
}
