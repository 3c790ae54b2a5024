package sudoku

import "errors"

// ErrInvalidInput is returned when a caller-supplied input — a malformed
// board line count, a line with the wrong field count, or an unknown
// difficulty level — cannot be parsed. It is always wrapped with context via
// fmt.Errorf's %w.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoSolution is returned, never panicked, by Generator.ScoreDifficulty
// when the board has no completion. The solvers themselves report "no
// solution" as a false bool rather than an error.
var ErrNoSolution = errors.New("no solution")

// checkInvariants is a debug-mode assertion over the §3 index invariants. It
// panics (IndexInvariantViolation) rather than returning an error, since a
// violation always indicates a bug in the Solver rather than a caller
// mistake. Solver tests call this at chosen checkpoints; production code
// paths never call it, so the cost of the scan never reaches callers.
func checkInvariants(s *Solver) {
	for cell := 0; cell < 81; cell++ {
		if s.board.cells[cell] != blank {
			continue // Only blank cells are tracked by the buckets/locations index.
		}
		set := s.candidates[cell]
		for _, d := range set.digits() {
			for _, kind := range allRegionKinds {
				region := s.regionIndexOf(kind, cell)
				if !containsCell(s.possibleLocations[kind][region][d], cell) {
					panic(indexInvariantViolation{
						reason: "candidate digit missing from possible-locations index",
						cell:   cell,
						digit:  d,
					})
				}
			}
		}
		if !containsCell(s.buckets[set.size()], cell) {
			panic(indexInvariantViolation{
				reason: "cell missing from its candidate-count bucket",
				cell:   cell,
			})
		}
	}
}

// indexInvariantViolation is the payload of a checkInvariants panic.
type indexInvariantViolation struct {
	reason string
	cell   int
	digit  int
}

func (v indexInvariantViolation) Error() string {
	return v.reason
}

func containsCell(cells []int, cell int) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}
