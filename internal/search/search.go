// Package search scans the spiral-indexed hex tiling for tiles whose six
// neighbors' indices multiply to a product divisible by the tile's own
// index. Tiles are tested in strictly increasing index order, so discovery
// order equals index order.
package search

import (
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/talgya/hexspiral/internal/hexgrid"
	"github.com/talgya/hexspiral/internal/tiling"
)

// neighborOrder fixes the iteration order over a tile's neighbors. The
// product is order-independent; this only pins iteration cost and reporting.
var neighborOrder = [6]hexgrid.Direction{
	hexgrid.North, hexgrid.NorthEast, hexgrid.NorthWest,
	hexgrid.South, hexgrid.SouthEast, hexgrid.SouthWest,
}

// Config holds search parameters.
type Config struct {
	Target int           // Number of matches to collect
	Lookup tiling.Lookup // Tile resolution strategy
}

// DefaultConfig returns the standard search configuration: the classical
// 2000-match target over the unbounded formula lookup.
func DefaultConfig() Config {
	return Config{
		Target: 2000,
		Lookup: tiling.Formula{},
	}
}

// Result is the outcome of a completed search.
type Result struct {
	Matches       []tiling.Tile  // In discovery order (== index order)
	LastNeighbors [6]tiling.Tile // Neighbors of the final match, in neighborOrder
	LastProduct   *big.Int       // Neighbor index product of the final match
	Scanned       int64          // Total tiles tested
	Elapsed       time.Duration
}

// Last returns the final match found.
func (r *Result) Last() tiling.Tile {
	return r.Matches[len(r.Matches)-1]
}

// NeighborDirections returns the fixed direction order used for
// LastNeighbors.
func NeighborDirections() [6]hexgrid.Direction {
	return neighborOrder
}

// Run scans tiles from index 1 upward until cfg.Target matches are found.
// Neighbor index products use arbitrary-precision arithmetic: at the radii
// this search reaches, products overflow 64-bit and 128-bit integers alike.
//
// With a bounded lookup, reaching the edge of the generated prefix before
// the target count is a hard failure: Run returns an error rather than a
// short result.
func Run(cfg Config) (*Result, error) {
	if cfg.Target < 1 {
		panic(fmt.Sprintf("search: target %d out of range", cfg.Target))
	}
	lookup := cfg.Lookup
	if lookup == nil {
		lookup = tiling.Formula{}
	}

	start := time.Now()
	res := &Result{Matches: make([]tiling.Tile, 0, cfg.Target)}

	product := new(big.Int)
	operand := new(big.Int)
	rem := new(big.Int)

	ring := -1
	for index := int64(1); ; index++ {
		tile := lookup.TileFromIndex(index)

		if r := tile.Ring(); r != ring {
			ring = r
			slog.Info("checking ring",
				"ring", ring,
				"start_index", index,
				"matches", len(res.Matches),
			)
		}

		var neighbors [6]tiling.Tile
		product.SetInt64(1)
		edge := false
		for i, d := range neighborOrder {
			n, ok := lookup.Neighbor(tile, d)
			if !ok {
				edge = true
				break
			}
			neighbors[i] = n
			product.Mul(product, operand.SetInt64(n.Index))
		}
		if edge {
			return nil, fmt.Errorf("search: reached edge of generated prefix at tile %d with %d of %d matches", index, len(res.Matches), cfg.Target)
		}

		operand.SetInt64(tile.Index)
		if rem.Mod(product, operand).Sign() == 0 {
			res.Matches = append(res.Matches, tile)
			res.LastNeighbors = neighbors
			res.LastProduct = new(big.Int).Set(product)
			if len(res.Matches) == cfg.Target {
				res.Scanned = index
				res.Elapsed = time.Since(start)
				return res, nil
			}
		}
	}
}
