// Command generator produces a single puzzle at the requested difficulty
// level and prints it as a 3x3-boxed grid (Board.String), followed by its
// classification.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/kbourgoin/sudoku"
)

var (
	levelFlag = flag.String("level", "EASY", "difficulty level: EASY, MEDIUM, HARD, or CHALLENGER")
	symFlag   = flag.Bool("sym", false, "blank cells in point-symmetric pairs")
	seedFlag  = flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
	scoreFlag = flag.Bool("score", false, "also print the average-search-count difficulty score")
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintln(out, "usage: generator [options]")
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := sudoku.ParseLevel(*levelFlag)
	if err != nil {
		log.Fatal(err)
	}

	gen := sudoku.SeededGenerator(*seedFlag)

	var board *sudoku.Board
	var ok bool
	if *symFlag {
		board, ok = gen.GetSymmetricalPuzzle(level)
	} else {
		board, ok = gen.GetPuzzle(level)
	}
	if !ok {
		log.Fatal("generator exhausted its retry budget without producing any puzzle")
	}

	fmt.Println(board)
	fmt.Printf("Classification: %v\n", sudoku.Classify(board))

	if *scoreFlag {
		score, err := gen.ScoreDifficulty(board, 20)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Difficulty score (avg. branch attempts): %.2f\n", score)
	}
}
