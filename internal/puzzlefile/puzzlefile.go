// Package puzzlefile parses the puzzle data file format from §6 of the
// specification: lines 1-9 are the puzzle board, each a comma-separated
// sequence of nine fields ('1'..'9' or blank); line 10 is the number of
// moves N in the expected solution, or -1 if the puzzle has no solution;
// lines 11..10+N (when N>=0) each carry one move as three comma-separated
// fields: row, column, value.
//
// This format (and this package) exists for the solver's test harness, per
// §6's "external interfaces" boundary — it is not used by the core solver
// or generator.
package puzzlefile

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kbourgoin/sudoku"
)

// Puzzle is one parsed entry from a puzzle data file.
type Puzzle struct {
	Board *sudoku.Board

	// HasSolution is false when the file recorded N == -1, meaning the
	// puzzle is expected to have no solution.
	HasSolution bool

	// Solution is the expected set of moves, present only if HasSolution.
	Solution []sudoku.Move
}

// Load reads and parses a puzzle data file from path.
func Load(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle file: %w", err)
	}
	return Parse(string(data))
}

// Parse parses the puzzle data file format from its in-memory contents.
func Parse(contents string) (*Puzzle, error) {
	lines := strings.Split(strings.ReplaceAll(contents, "\r\n", "\n"), "\n")

	if len(lines) < 10 {
		return nil, fmt.Errorf("%w: puzzle file has %d lines, want at least 10", sudoku.ErrInvalidInput, len(lines))
	}

	board := sudoku.NewBoard()
	if err := board.FromLines(lines[:9]); err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(lines[9]))
	if err != nil {
		return nil, fmt.Errorf("%w: line 10 (move count) is %q: %v", sudoku.ErrInvalidInput, lines[9], err)
	}

	if n < 0 {
		return &Puzzle{Board: board, HasSolution: false}, nil
	}

	if len(lines) < 10+n {
		return nil, fmt.Errorf("%w: file declares %d moves but has only %d move lines", sudoku.ErrInvalidInput, n, len(lines)-10)
	}

	moves := make([]sudoku.Move, 0, n)
	for i := 0; i < n; i++ {
		move, err := parseMoveLine(lines[10+i])
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return &Puzzle{Board: board, HasSolution: true, Solution: moves}, nil
}

func parseMoveLine(line string) (sudoku.Move, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return sudoku.Move{}, fmt.Errorf("%w: move line %q has %d fields, want 3", sudoku.ErrInvalidInput, line, len(fields))
	}

	vals := make([]int, 3)
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return sudoku.Move{}, fmt.Errorf("%w: move line %q field %d is not an integer: %v", sudoku.ErrInvalidInput, line, i, err)
		}
		vals[i] = v
	}

	return sudoku.Move{Row: vals[0], Col: vals[1], Digit: vals[2]}, nil
}

// SolutionSet renders moves as the sorted-set-of-"r,c,v"-strings form §6
// specifies for comparing solutions.
func SolutionSet(moves []sudoku.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}
