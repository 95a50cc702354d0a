// Command perft runs the perft correctness/benchmark tool against a FEN
// position, printing leaf-node counts per depth.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	chesscore "github.com/corvid-lang/chesscore"
)

func main() {
	fen := flag.String("fen", chesscore.StartFEN, "FEN of the position to search")
	maxDepth := flag.Int("max_depth", 5, "deepest perft depth to run")
	divide := flag.Bool("divide", false, "print a per-root-move breakdown at max_depth instead of per-depth totals")
	flag.Parse()

	b, err := chesscore.FromFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	fmt.Printf("searching FEN %q\n", *fen)

	if *divide {
		start := time.Now()
		results := chesscore.Divide(b, *maxDepth)
		for uci, nodes := range results {
			fmt.Printf("%s: %d\n", uci, nodes)
		}
		fmt.Printf("elapsed %v\n", time.Since(start))
		return
	}

	fmt.Printf("%5s %12s %10s\n", "depth", "nodes", "elapsed")
	for depth := 1; depth <= *maxDepth; depth++ {
		start := time.Now()
		nodes := chesscore.Perft(b, depth)
		fmt.Printf("%5d %12d %10v\n", depth, nodes, time.Since(start))
	}
}
