package sudoku

import "sort"

// Mode selects the order in which a Solver tries candidate digits at a
// branching point. random is the default; max and min exist so the
// Generator can detect multiple solutions by comparing their results (see
// Generator.HasOnlySolution).
type Mode int

const (
	ModeRandom Mode = iota
	ModeMax
	ModeMin
)

// orderCandidates reorders ds in place according to s.mode. Random order
// uses a Fisher-Yates shuffle on the injected RNG; max/min sort descending
// or ascending and need no RNG at all.
func (s *Solver) orderCandidates(ds []int) {
	switch s.mode {
	case ModeMax:
		sort.Sort(sort.Reverse(sort.IntSlice(ds)))
	case ModeMin:
		sort.Ints(ds)
	default:
		s.rng.Shuffle(len(ds), func(i, j int) {
			ds[i], ds[j] = ds[j], ds[i]
		})
	}
}
