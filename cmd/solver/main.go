// Command solver reads Sudoku boards from stdin, one per line (ignoring
// blank lines and lines starting with '#'), and solves each with
// sudoku.FullSolve.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/kbourgoin/sudoku"
)

func main() {
	statsFlag := flag.Bool("stats", false, "print per-board search stats")
	seedFlag := flag.Int64("seed", time.Now().UnixNano(), "RNG seed for randomized backtracking")
	flag.Parse()

	solver := sudoku.SeededSolver(*seedFlag)
	var stats *sudoku.SolveStats
	if *statsFlag {
		stats = &sudoku.SolveStats{}
		solver.WithStats(stats)
	}

	var totalDuration time.Duration
	var maxDuration time.Duration
	var totalSearches uint64
	var maxSearches uint64
	var numBoards, numSolved int

	// Expect one board per line, ignoring whitespace and lines starting with '#'.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		numBoards++

		board, err := sudoku.ParseLine(line)
		if err != nil {
			log.Fatal(err)
		}

		if stats != nil {
			stats.Reset()
		}

		tStart := time.Now()
		_, solved := solver.Solve(board, sudoku.SolveFull)
		tElapsed := time.Since(tStart)

		totalDuration += tElapsed
		if tElapsed > maxDuration {
			maxDuration = tElapsed
		}

		if solved && board.IsSolved() {
			numSolved++
		}

		if stats != nil {
			totalSearches += stats.NumSearches
			if stats.NumSearches > maxSearches {
				maxSearches = stats.NumSearches
			}
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}

	if numBoards == 0 {
		fmt.Println("no boards read from stdin")
		return
	}

	fmt.Printf("Solved %v/%v boards\n", numSolved, numBoards)
	fmt.Printf("Duration average=%-15v max=%v\n", totalDuration/time.Duration(numBoards), maxDuration)
	if stats != nil {
		fmt.Printf("Searches average=%-15.2f max=%v\n", float64(totalSearches)/float64(numBoards), maxSearches)
	}
}
