package search

import (
	"math/big"
	"testing"

	"github.com/talgya/hexspiral/internal/tiling"
)

// The first eight matching tiles, verified by hand against the spiral
// prefix: tile 7's neighbor product 19*2*1*6*17*18 leaves remainder 6 mod 7,
// and tile 10's product 22*23*24*11*3*9 carries no factor of 5.
var firstMatches = []int64{1, 2, 3, 4, 5, 6, 8, 9}

func TestRunFindsKnownPrefix(t *testing.T) {
	res, err := Run(Config{Target: len(firstMatches), Lookup: tiling.Formula{}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Matches) != len(firstMatches) {
		t.Fatalf("got %d matches, want %d", len(res.Matches), len(firstMatches))
	}
	for i, want := range firstMatches {
		if got := res.Matches[i].Index; got != want {
			t.Errorf("match %d = tile %d, want %d", i+1, got, want)
		}
	}
	if res.Scanned != 9 {
		t.Errorf("Scanned = %d, want 9 (search stops at the eighth match)", res.Scanned)
	}
}

func TestRunFirstMatchDetail(t *testing.T) {
	res, err := Run(Config{Target: 1, Lookup: tiling.Formula{}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	last := res.Last()
	if last.Index != 1 {
		t.Fatalf("first match = tile %d, want 1", last.Index)
	}

	// Center neighbors are 2..7; product is 7! = 5040.
	if want := big.NewInt(5040); res.LastProduct.Cmp(want) != 0 {
		t.Errorf("LastProduct = %s, want 5040", res.LastProduct)
	}
	for i, d := range NeighborDirections() {
		n := res.LastNeighbors[i]
		if n.Index < 2 || n.Index > 7 {
			t.Errorf("neighbor %s = tile %d, want 2..7", d, n.Index)
		}
		if n.Coord != last.Coord.Neighbor(d) {
			t.Errorf("neighbor %s at %v, want %v", d, n.Coord, last.Coord.Neighbor(d))
		}
	}
}

func TestRunMonotonicDiscovery(t *testing.T) {
	res, err := Run(Config{Target: 50, Lookup: tiling.Formula{}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Matches) != 50 {
		t.Fatalf("got %d matches, want exactly 50", len(res.Matches))
	}
	for i := 1; i < len(res.Matches); i++ {
		if res.Matches[i].Index <= res.Matches[i-1].Index {
			t.Fatalf("matches not strictly increasing at position %d: %d after %d",
				i, res.Matches[i].Index, res.Matches[i-1].Index)
		}
	}
	if res.Scanned != res.Matches[len(res.Matches)-1].Index {
		t.Errorf("Scanned = %d, want last match index %d", res.Scanned, res.Last().Index)
	}
}

func TestStrategiesAgree(t *testing.T) {
	const target = 30

	formula, err := Run(Config{Target: target, Lookup: tiling.Formula{}})
	if err != nil {
		t.Fatalf("formula run: %v", err)
	}
	mapped, err := Run(Config{Target: target, Lookup: tiling.Generate(40)})
	if err != nil {
		t.Fatalf("map run: %v", err)
	}

	if len(formula.Matches) != len(mapped.Matches) {
		t.Fatalf("match counts differ: %d vs %d", len(formula.Matches), len(mapped.Matches))
	}
	for i := range formula.Matches {
		if formula.Matches[i] != mapped.Matches[i] {
			t.Errorf("match %d differs: formula %+v, map %+v", i+1, formula.Matches[i], mapped.Matches[i])
		}
	}
}

func TestRunBoundedPrefixExhausted(t *testing.T) {
	// Radius 2 only lets tiles of rings 0 and 1 be tested before a neighbor
	// lookup runs off the generated edge; a large target cannot be met.
	_, err := Run(Config{Target: 1000, Lookup: tiling.Generate(2)})
	if err == nil {
		t.Fatal("Run over an undersized prefix returned no error")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Target != 2000 {
		t.Errorf("DefaultConfig().Target = %d, want 2000", cfg.Target)
	}
	if _, ok := cfg.Lookup.(tiling.Formula); !ok {
		t.Errorf("DefaultConfig().Lookup = %T, want tiling.Formula", cfg.Lookup)
	}
}

func TestRunInvalidTargetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Run with target 0 did not panic")
		}
	}()
	Run(Config{Target: 0})
}
