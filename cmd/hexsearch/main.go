// Command hexsearch runs the hex spiral divisibility search: it scans the
// spiral-indexed hexagonal tiling for tiles whose six neighbors' indices
// multiply to a product divisible by the tile's own index, and reports the
// 2000th such tile.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/talgya/hexspiral/internal/search"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := search.DefaultConfig()
	slog.Info("hex spiral divisibility search", "target", cfg.Target)

	res, err := search.Run(cfg)
	if err != nil {
		slog.Error("search failed", "error", err)
		os.Exit(1)
	}

	last := res.Last()
	slog.Info("search complete",
		"matches", len(res.Matches),
		"tiles_scanned", humanize.Comma(res.Scanned),
		"elapsed", res.Elapsed,
	)

	fmt.Printf("\nMatch #%d: tile %s at %s, ring %d\n",
		len(res.Matches), humanize.Comma(last.Index), last.Coord, last.Ring())
	fmt.Println("Neighbors:")
	for i, d := range search.NeighborDirections() {
		n := res.LastNeighbors[i]
		fmt.Printf("  %-9s tile %s at %s\n", d, humanize.Comma(n.Index), n.Coord)
	}
	fmt.Printf("Neighbor product: %s\n", humanize.BigComma(res.LastProduct))

	// Keep the console window open when launched interactively.
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Print("\nPress Enter to exit...")
		bufio.NewReader(os.Stdin).ReadString('\n')
	}
}
