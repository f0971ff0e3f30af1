package tiling

import (
	"fmt"

	"github.com/talgya/hexspiral/internal/hexgrid"
)

// TileMap holds a bounded prefix of the tiling keyed by coordinate, for O(1)
// neighbor lookup during bulk scans. It is built once by Generate and
// read-only afterward.
type TileMap struct {
	tiles  map[hexgrid.Coord]Tile
	byIdx  []Tile // index i stored at position i-1
	radius int
}

// Generate materializes every tile within the given ring radius by walking
// the spiral once, one neighbor step per tile, instead of converting each
// index independently.
func Generate(radius int) *TileMap {
	if radius < 0 {
		panic(fmt.Sprintf("tiling: negative radius %d", radius))
	}

	total := hexgrid.TilesInArea(radius)
	m := &TileMap{
		tiles:  make(map[hexgrid.Coord]Tile, total),
		byIdx:  make([]Tile, 0, total),
		radius: radius,
	}

	m.add(Tile{Index: 1, Coord: hexgrid.Origin()})

	index := int64(2)
	for ring := 1; ring <= radius; ring++ {
		c := hexgrid.RingStart(ring)
		m.add(Tile{Index: index, Coord: c})
		index++

		for _, d := range hexgrid.SpiralLegs() {
			steps := ring
			if d == hexgrid.NorthWest {
				steps = ring - 1 // final step would revisit the ring start
			}
			for s := 0; s < steps; s++ {
				c = c.Neighbor(d)
				m.add(Tile{Index: index, Coord: c})
				index++
			}
		}
	}
	return m
}

func (m *TileMap) add(t Tile) {
	m.tiles[t.Coord] = t
	m.byIdx = append(m.byIdx, t)
}

// Radius returns the ring bound the map was generated with.
func (m *TileMap) Radius() int {
	return m.radius
}

// Len returns the number of materialized tiles.
func (m *TileMap) Len() int {
	return len(m.byIdx)
}

// TileFromIndex returns the tile at the given spiral index. Panics if the
// index lies outside the generated prefix; callers scanning toward the edge
// must bound their indices with Len.
func (m *TileMap) TileFromIndex(index int64) Tile {
	if index < 1 || index > int64(len(m.byIdx)) {
		panic(fmt.Sprintf("tiling: index %d outside generated prefix of %d tiles", index, len(m.byIdx)))
	}
	return m.byIdx[index-1]
}

// TileFromCoord returns the tile at the given coordinate, or false if the
// coordinate lies outside the generated prefix. Running off the edge is an
// expected boundary, not an error.
func (m *TileMap) TileFromCoord(c hexgrid.Coord) (Tile, bool) {
	t, ok := m.tiles[c]
	return t, ok
}

// Neighbor returns the adjacent tile in the given direction, or false if it
// falls outside the generated prefix.
func (m *TileMap) Neighbor(t Tile, d hexgrid.Direction) (Tile, bool) {
	return m.TileFromCoord(t.Coord.Neighbor(d))
}
