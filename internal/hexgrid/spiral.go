// Spiral numbering of the hex tiling. Tiles are indexed 1, 2, 3, ... ring by
// ring: index 1 is the center, each ring r >= 1 starts at its topmost
// coordinate (0, r, -r) and is walked in six straight legs.
package hexgrid

import (
	"fmt"
	"math"
)

// legOrder is the fixed walk order around a ring. Every leg is `ring` steps
// long except the final NorthWest leg, which stops one step short of the
// ring start.
var legOrder = [6]Direction{SouthWest, South, SouthEast, NorthEast, North, NorthWest}

// SpiralLegs returns the fixed leg order used to walk each ring.
func SpiralLegs() [6]Direction {
	return legOrder
}

// TilesInArea returns the number of tiles within radius r of the center,
// inclusive: 1 + 6 * r*(r+1)/2. Ring k contributes 6k tiles for k >= 1.
func TilesInArea(radius int) int64 {
	if radius < 0 {
		panic(fmt.Sprintf("hexgrid: negative radius %d", radius))
	}
	r := int64(radius)
	return 1 + 3*r*(r+1)
}

// RingFromIndex returns the ring containing the given spiral index: the
// smallest r such that TilesInArea(r) >= index. Index must be >= 1.
func RingFromIndex(index int64) int {
	if index < 1 {
		panic(fmt.Sprintf("hexgrid: index %d out of range", index))
	}
	// Closed-form guess from 1 + 3r(r+1) >= index, corrected in both
	// directions to absorb float rounding.
	r := int(math.Sqrt(float64(index-1) / 3.0))
	for r > 0 && TilesInArea(r-1) >= index {
		r--
	}
	for TilesInArea(r) < index {
		r++
	}
	return r
}

// IndexFromRing returns the first spiral index on the given ring:
// TilesInArea(ring-1) + 1. Ring must be >= 1; ring 0 is the center tile,
// index 1, handled by callers as a special case.
func IndexFromRing(ring int) int64 {
	if ring < 1 {
		panic(fmt.Sprintf("hexgrid: ring %d out of range", ring))
	}
	return TilesInArea(ring-1) + 1
}

// RingStart returns the coordinate where the given ring's walk begins:
// the topmost point (0, ring, -ring). Ring must be >= 1.
func RingStart(ring int) Coord {
	if ring < 1 {
		panic(fmt.Sprintf("hexgrid: ring %d out of range", ring))
	}
	return Coord{X: 0, Y: ring, Z: -ring}
}

// CoordFromIndex converts a spiral index to its cube coordinate by leaping
// leg by leg rather than stepping one tile at a time. Index must be >= 1.
func CoordFromIndex(index int64) Coord {
	if index < 1 {
		panic(fmt.Sprintf("hexgrid: index %d out of range", index))
	}
	if index == 1 {
		return Origin()
	}

	ring := RingFromIndex(index)
	remaining := index - IndexFromRing(ring)
	c := RingStart(ring)

	for _, d := range legOrder {
		if remaining == 0 {
			break
		}
		steps := int64(ring)
		if remaining < steps {
			steps = remaining
		}
		c = c.Travel(d, int(steps))
		remaining -= steps
	}
	return c
}

// IndexFromCoord converts a cube coordinate to its spiral index by walking
// the coordinate's ring from its start until the target is reached.
// Panics if the coordinate violates the cube constraint or does not lie on
// its ring's walk — both are programming errors, not runtime conditions.
func IndexFromCoord(c Coord) int64 {
	if !c.Valid() {
		panic(fmt.Sprintf("hexgrid: coordinate %v violates x+y+z=0", c))
	}
	ring := c.Ring()
	if ring == 0 {
		return 1
	}

	index := IndexFromRing(ring)
	cursor := RingStart(ring)
	if cursor == c {
		return index
	}

	for _, d := range legOrder {
		steps := ring
		if d == NorthWest {
			// The last leg closes the loop; its final step would revisit
			// the ring start.
			steps = ring - 1
		}
		for s := 0; s < steps; s++ {
			cursor = cursor.Neighbor(d)
			index++
			if cursor == c {
				return index
			}
		}
	}
	panic(fmt.Sprintf("hexgrid: coordinate %v not found on ring %d", c, ring))
}
