// Package tiling materializes tiles of the spiral-indexed hex grid.
// Two interchangeable lookup strategies exist: a stateless formula-backed
// one and a bounded precomputed map, which must agree everywhere inside
// the map's bound.
package tiling

import (
	"github.com/talgya/hexspiral/internal/hexgrid"
)

// Tile pairs a 1-based spiral index with its cube coordinate.
// Tiles are value objects created on demand.
type Tile struct {
	Index int64         `json:"index"`
	Coord hexgrid.Coord `json:"coord"`
}

// Ring returns the tile's hexagonal shell number.
func (t Tile) Ring() int {
	return t.Coord.Ring()
}

// Lookup resolves tiles by index or coordinate. The boolean result is false
// only when a bounded strategy is asked for a coordinate outside its
// generated prefix; the formula strategy always succeeds, since the tiling
// is unbounded.
type Lookup interface {
	TileFromIndex(index int64) Tile
	TileFromCoord(c hexgrid.Coord) (Tile, bool)
	Neighbor(t Tile, d hexgrid.Direction) (Tile, bool)
}

// Formula resolves tiles by direct index<->coordinate conversion.
// It is stateless and covers the entire infinite tiling.
type Formula struct{}

// TileFromIndex returns the tile at the given spiral index.
func (Formula) TileFromIndex(index int64) Tile {
	return Tile{Index: index, Coord: hexgrid.CoordFromIndex(index)}
}

// TileFromCoord returns the tile at the given coordinate. The boolean is
// always true.
func (Formula) TileFromCoord(c hexgrid.Coord) (Tile, bool) {
	return Tile{Index: hexgrid.IndexFromCoord(c), Coord: c}, true
}

// Neighbor returns the adjacent tile in the given direction. The boolean is
// always true: every tile has six neighbors somewhere on the spiral.
func (f Formula) Neighbor(t Tile, d hexgrid.Direction) (Tile, bool) {
	return f.TileFromCoord(t.Coord.Neighbor(d))
}
