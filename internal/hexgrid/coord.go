// Package hexgrid provides the cube-coordinate geometry of an infinite
// hexagonal tiling and the spiral numbering that indexes it.
// Uses cube coordinates (x, y, z) with x + y + z = 0.
package hexgrid

import "fmt"

// Coord represents a position on the hex grid using cube coordinates.
// The zero value is the center tile. Coords are immutable value types;
// all operations return a new Coord.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Origin returns the center coordinate (0, 0, 0).
func Origin() Coord {
	return Coord{}
}

// Valid reports whether the coordinate satisfies the cube constraint
// x + y + z = 0. Every Coord produced by this package is valid; a false
// result means the caller constructed one by hand and got it wrong.
func (c Coord) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Ring returns the hexagonal shell number max(|x|, |y|, |z|).
// Ring 0 is the single center tile.
func (c Coord) Ring() int {
	x, y, z := abs(c.X), abs(c.Y), abs(c.Z)
	max := x
	if y > max {
		max = y
	}
	if z > max {
		max = z
	}
	return max
}

// Direction identifies one of the six hex neighbor displacements.
type Direction uint8

const (
	North Direction = iota
	NorthWest
	SouthWest
	South
	SouthEast
	NorthEast
)

// Directions lists all six directions in declaration order.
var Directions = [6]Direction{North, NorthWest, SouthWest, South, SouthEast, NorthEast}

// displacements maps each direction to its unit offset in cube space.
// Each row sums to zero, so moving preserves the cube constraint.
var displacements = [6]Coord{
	North:     {X: 0, Y: 1, Z: -1},
	NorthWest: {X: -1, Y: 1, Z: 0},
	SouthWest: {X: -1, Y: 0, Z: 1},
	South:     {X: 0, Y: -1, Z: 1},
	SouthEast: {X: 1, Y: -1, Z: 0},
	NorthEast: {X: 1, Y: 0, Z: -1},
}

// Delta returns the unit displacement for the direction.
func (d Direction) Delta() Coord {
	return displacements[d]
}

// Opposite returns the reverse direction: North↔South, NorthWest↔SouthEast,
// SouthWest↔NorthEast.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	case SouthWest:
		return NorthEast
	case NorthEast:
		return SouthWest
	}
	panic(fmt.Sprintf("hexgrid: unknown direction %d", d))
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthWest:
		return "NorthWest"
	case SouthWest:
		return "SouthWest"
	case South:
		return "South"
	case SouthEast:
		return "SouthEast"
	case NorthEast:
		return "NorthEast"
	default:
		return "Unknown"
	}
}

// Neighbor returns the adjacent coordinate in the given direction.
func (c Coord) Neighbor(d Direction) Coord {
	delta := displacements[d]
	return Coord{X: c.X + delta.X, Y: c.Y + delta.Y, Z: c.Z + delta.Z}
}

// Travel returns the coordinate reached by moving distance steps in the
// given direction. Travel(d, 1) == Neighbor(d).
func (c Coord) Travel(d Direction, distance int) Coord {
	delta := displacements[d]
	return Coord{
		X: c.X + delta.X*distance,
		Y: c.Y + delta.Y*distance,
		Z: c.Z + delta.Z*distance,
	}
}

// Neighbors returns the six adjacent coordinates in declaration order.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, d := range Directions {
		result[i] = c.Neighbor(d)
	}
	return result
}

// Distance returns the hex distance between two coordinates: the maximum
// of the three absolute component differences.
func Distance(a, b Coord) int {
	return Coord{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}.Ring()
}

// String returns the coordinate as "(x, y, z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
