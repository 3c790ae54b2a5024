package sudoku

import (
	"math/rand"

	"golang.org/x/exp/slices"
)

// allRegionKinds is iterated whenever a cell's three containing regions
// need visiting (row, column, box).
var allRegionKinds = [3]regionKind{regionRow, regionCol, regionBox}

// locKey identifies one (region_kind, region_index, digit) entry of the
// possible-locations index (§3).
type locKey struct {
	kind   regionKind
	region int
	digit  int
}

// Solver is bound to one Board at a time and maintains the three derived
// indices described in §3: per-cell candidate sets, a possible-locations
// index keyed by (region, digit), and candidate-count buckets. All three are
// owned exclusively by the Solver for the life of a solve; they are rebuilt
// from scratch by Initialize and are otherwise updated incrementally.
type Solver struct {
	board *Board
	mode  Mode
	rng   *rand.Rand

	candidates        [81]Digits
	possibleLocations [3][9][10][]int // [kind][region][digit] -> blank cells
	uniqueLocations   map[locKey]int  // forced (region, digit) -> cell
	buckets           [10][]int       // buckets[k] -> blank cells with k candidates
	cellBucket        [81]int         // current bucket of a blank cell, -1 if placed

	stats *SolveStats
}

// SolveStats accumulates counters across one or more solves of the same
// Solver, in the spirit of the teacher's difficulty.go Stats/EnableStats
// pair. A nil *SolveStats (the default) disables counting entirely, so
// ordinary solves pay no bookkeeping cost.
type SolveStats struct {
	NumSearches   uint64 // branch attempts at MRV choice points
	NumPlacements uint64 // calls to place
}

// Reset zeroes the counters so stats can be reused across repeated solves.
func (st *SolveStats) Reset() {
	st.NumSearches = 0
	st.NumPlacements = 0
}

// NewSolver creates a Solver with the given candidate-ordering mode. rng is
// required for ModeRandom and ignored (may be nil) for ModeMax/ModeMin; the
// Solver never consults process-wide randomness.
func NewSolver(mode Mode, rng *rand.Rand) *Solver {
	return &Solver{mode: mode, rng: rng}
}

// WithStats attaches stats to the Solver so FullSolve/place increment its
// counters; pass nil to disable counting again.
func (s *Solver) WithStats(stats *SolveStats) *Solver {
	s.stats = stats
	return s
}

// SeededSolver is a convenience constructor for reproducible random-mode
// solving and testing.
func SeededSolver(seed int64) *Solver {
	return NewSolver(ModeRandom, rand.New(rand.NewSource(seed)))
}

// Attach binds the Solver to board for the duration of a solve.
func (s *Solver) Attach(board *Board) {
	s.board = board
}

func (s *Solver) regionIndexOf(kind regionKind, cell int) int {
	switch kind {
	case regionRow:
		return rowRegion(cell)
	case regionCol:
		return colRegion(cell)
	default:
		return boxRegion(cell)
	}
}

// Initialize rebuilds all three indices from the currently attached board's
// state (§3, §4.2 step 1-4). It must be called once before the first solve,
// and again after any speculative branch is abandoned.
func (s *Solver) Initialize() {
	for k := range s.possibleLocations {
		for r := range s.possibleLocations[k] {
			for d := range s.possibleLocations[k][r] {
				s.possibleLocations[k][r][d] = nil
			}
		}
	}
	s.uniqueLocations = make(map[locKey]int)
	for k := range s.buckets {
		s.buckets[k] = nil
	}

	for cell := 0; cell < 81; cell++ {
		sym := s.board.cells[cell]
		if sym == blank {
			set := fullDigits
			for _, peer := range peers[cell] {
				if peerSym := s.board.cells[peer]; peerSym != blank {
					set = set.remove(int(peerSym - '0'))
				}
			}
			s.candidates[cell] = set
		} else {
			s.candidates[cell] = fromDigit(int(sym - '0'))
			s.cellBucket[cell] = -1
		}
	}

	for cell := 0; cell < 81; cell++ {
		if s.board.cells[cell] != blank {
			continue
		}
		set := s.candidates[cell]
		for _, d := range set.digits() {
			for _, kind := range allRegionKinds {
				region := s.regionIndexOf(kind, cell)
				s.possibleLocations[kind][region][d] = append(s.possibleLocations[kind][region][d], cell)
			}
		}
		bucket := set.size()
		s.buckets[bucket] = append(s.buckets[bucket], cell)
		s.cellBucket[cell] = bucket
	}

	for _, kind := range allRegionKinds {
		for region := 0; region < 9; region++ {
			for d := 1; d <= 9; d++ {
				locs := s.possibleLocations[kind][region][d]
				if len(locs) == 1 {
					s.uniqueLocations[locKey{kind, region, d}] = locs[0]
				}
			}
		}
	}
}

// removeLocationEntry removes cell from every possible-locations entry that
// references digit d for one of cell's three regions, updating
// uniqueLocations as entries shrink to or away from size 1.
func (s *Solver) removeLocationEntry(cell, d int) {
	for _, kind := range allRegionKinds {
		region := s.regionIndexOf(kind, cell)
		key := locKey{kind, region, d}
		locs := s.possibleLocations[kind][region][d]
		if idx := slices.Index(locs, cell); idx >= 0 {
			locs = slices.Delete(locs, idx, idx+1)
			s.possibleLocations[kind][region][d] = locs
		}
		if len(locs) == 1 {
			s.uniqueLocations[key] = locs[0]
		} else {
			delete(s.uniqueLocations, key)
		}
	}
}

// moveBucket relocates cell from bucket "from" to bucket "to".
func (s *Solver) moveBucket(cell, from, to int) {
	if idx := slices.Index(s.buckets[from], cell); idx >= 0 {
		s.buckets[from] = slices.Delete(s.buckets[from], idx, idx+1)
	}
	s.buckets[to] = append(s.buckets[to], cell)
	s.cellBucket[cell] = to
}

// removeCandidate removes d from cell's candidate set, moving it to the
// next-smaller bucket and updating the possible-locations index (§4.2). It
// is a no-op if d is not currently a candidate of cell.
func (s *Solver) removeCandidate(cell, d int) {
	if !s.candidates[cell].isMember(d) {
		return
	}
	oldSize := s.candidates[cell].size()
	s.candidates[cell] = s.candidates[cell].remove(d)
	s.moveBucket(cell, oldSize, oldSize-1)
	s.removeLocationEntry(cell, d)
}

// place commits digit d at cell (§4.2). The caller must have already written
// d to the Board before calling place, so the shared-region scan in step 4
// correctly filters on "still blank".
func (s *Solver) place(cell, d int) {
	if s.stats != nil {
		s.stats.NumPlacements++
	}
	oldBucket := s.cellBucket[cell]
	if idx := slices.Index(s.buckets[oldBucket], cell); idx >= 0 {
		s.buckets[oldBucket] = slices.Delete(s.buckets[oldBucket], idx, idx+1)
	}
	s.cellBucket[cell] = -1

	for _, x := range s.candidates[cell].digits() {
		if x == d {
			continue
		}
		s.candidates[cell] = s.candidates[cell].remove(x)
		s.removeLocationEntry(cell, x)
	}
	s.candidates[cell] = 0

	for _, peer := range peers[cell] {
		if s.board.cells[peer] == blank {
			s.removeCandidate(peer, d)
		}
	}

	for _, kind := range allRegionKinds {
		region := s.regionIndexOf(kind, cell)
		key := locKey{kind, region, d}
		s.possibleLocations[kind][region][d] = nil
		delete(s.uniqueLocations, key)
	}
}

// revertMoves blanks out every cell the given moves wrote, then rebuilds the
// indices so the Solver is left consistent with the reverted board.
func (s *Solver) revertMoves(moves []Move) {
	for _, m := range moves {
		s.board.Set(m.Row, m.Col, blank)
	}
	s.Initialize()
}

// PartialSolve applies one round of naked-single and hidden-single
// deductions (§4.3). On success it returns the moves made (possibly empty,
// if the board is already a fixed point of propagation) and writes them to
// the board. On contradiction it leaves the board untouched and returns
// (nil, false).
func (s *Solver) PartialSolve() ([]Move, bool) {
	if len(s.buckets[0]) > 0 {
		return nil, false
	}

	committed := make(map[int]int) // cell -> digit, this round only

	for _, cell := range append([]int(nil), s.buckets[1]...) {
		d := s.candidates[cell].singleMemberDigit()
		if existing, ok := committed[cell]; ok {
			if existing != d {
				return nil, false
			}
			continue
		}
		committed[cell] = d
	}

	for key, cell := range s.uniqueLocations {
		d := key.digit
		if existing, ok := committed[cell]; ok {
			if existing != d {
				return nil, false
			}
			continue
		}
		committed[cell] = d
	}

	if len(committed) == 0 {
		return nil, true
	}

	for cell, d := range committed {
		s.board.Set(rowOf(cell), colOf(cell), byte('0'+d))
	}

	if !s.board.IsValid() {
		for cell := range committed {
			s.board.Set(rowOf(cell), colOf(cell), blank)
		}
		return nil, false
	}

	// Place in cell order, not map order, so bucket order and therefore the
	// next branch cell are deterministic.
	moves := make([]Move, 0, len(committed))
	for cell := 0; cell < 81; cell++ {
		d, ok := committed[cell]
		if !ok {
			continue
		}
		s.place(cell, d)
		moves = append(moves, Move{rowOf(cell), colOf(cell), d})
	}

	return moves, true
}

// runPropagation calls PartialSolve repeatedly (at most 81 times — enough
// since each round either fills at least one cell or reaches a fixed point)
// and accumulates its moves.
func (s *Solver) runPropagation() ([]Move, bool) {
	var moves []Move
	for i := 0; i < 81; i++ {
		if s.board.IsSolved() {
			break
		}
		round, ok := s.PartialSolve()
		if !ok {
			return moves, false
		}
		moves = append(moves, round...)
		if len(round) == 0 {
			break
		}
	}
	return moves, true
}

// pickBranchCell returns the first cell of the smallest non-empty bucket
// with at least 2 candidates (MRV, §4.4 step 3).
func (s *Solver) pickBranchCell() (int, bool) {
	for k := 2; k <= 9; k++ {
		if len(s.buckets[k]) > 0 {
			return s.buckets[k][0], true
		}
	}
	return -1, false
}

// FullSolve performs propagation followed by randomized/ordered MRV
// backtracking (§4.4) and returns the moves that complete the board, or
// (nil, false) if no completion exists. The Solver must already be attached
// and initialized.
func (s *Solver) FullSolve() ([]Move, bool) {
	accumulated, ok := s.runPropagation()
	if !ok {
		s.revertMoves(accumulated)
		return nil, false
	}

	if s.board.IsSolved() {
		return accumulated, true
	}

	cell, ok := s.pickBranchCell()
	if !ok {
		s.revertMoves(accumulated)
		return nil, false
	}

	candidates := s.candidates[cell].digits()
	s.orderCandidates(candidates)

	for _, d := range candidates {
		if s.stats != nil {
			s.stats.NumSearches++
		}
		s.board.Set(rowOf(cell), colOf(cell), byte('0'+d))
		s.place(cell, d)

		subMoves, solved := s.FullSolve()
		if solved {
			result := make([]Move, 0, len(accumulated)+1+len(subMoves))
			result = append(result, accumulated...)
			result = append(result, Move{rowOf(cell), colOf(cell), d})
			result = append(result, subMoves...)
			return result, true
		}

		s.board.Set(rowOf(cell), colOf(cell), blank)
		s.Initialize()
	}

	s.revertMoves(accumulated)
	return nil, false
}

// Solve is the dispatching entry point described in §6: full performs
// propagation plus randomized backtracking (the default), partial performs
// a single round of human-style deduction, and simple runs the independent
// oracle (which ignores the Solver's indices and mode entirely).
type SolveKind int

const (
	SolveFull SolveKind = iota
	SolvePartial
	SolveSimple
)

// Solve attaches board, initializes the indices (except for SolveSimple,
// which doesn't use them), and runs the requested solve kind.
func (s *Solver) Solve(board *Board, kind SolveKind) ([]Move, bool) {
	if kind == SolveSimple {
		return SimpleSolve(board)
	}

	s.Attach(board)
	s.Initialize()

	if kind == SolvePartial {
		return s.PartialSolve()
	}
	return s.FullSolve()
}
