package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/treechess/treechess/internal/oracle"
	"github.com/treechess/treechess/pkg/common"
)

func main() {
	var fen = flag.String("fen", common.InitialPositionFen, "FEN string (defaults to initial position)")
	var depth = flag.Int("depth", 0, "Perft depth (required)")
	var divide = flag.Bool("divide", false, "Print per-move node counts at root")
	var verify = flag.Bool("verify", false, "Compare the node count with a reference move generator")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	var p, err = common.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		var div = common.PerftDivide(&p, *depth)
		var keys = make([]string, 0, len(div))
		var sum = 0
		for m, n := range div {
			keys = append(keys, m)
			sum += n
		}
		sort.Strings(keys)
		for _, m := range keys {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var start = time.Now()
	var nodes = common.Perft(&p, *depth)
	var elapsed = time.Since(start)
	fmt.Printf("%d \t%d \t%s \t%.0f\n", *depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if *verify {
		var want, err = oracle.Perft(*fen, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "oracle error: %v\n", err)
			os.Exit(2)
		}
		if want != nodes {
			fmt.Fprintf(os.Stderr, "mismatch: got %d want %d\n", nodes, want)
			os.Exit(1)
		}
		fmt.Println("verified")
	}
}
