package sudoku

import "testing"

func TestSimpleSolveMatchesFullSolve(t *testing.T) {
	for _, board := range []string{easyboard1, hardboard1, hardboard2} {
		b1 := mustParse(t, board)
		_, ok1 := SimpleSolve(b1)

		b2 := mustParse(t, board)
		solver := SeededSolver(1)
		solver.Attach(b2)
		solver.Initialize()
		_, ok2 := solver.FullSolve()

		if ok1 != ok2 {
			t.Errorf("board %q: SimpleSolve solvable=%v, FullSolve solvable=%v", board, ok1, ok2)
		}
		if ok1 && !b1.IsSolved() {
			t.Errorf("board %q: SimpleSolve reported success but board is not solved", board)
		}
	}
}

func TestSimpleSolveEmptyIsDeterministicAndRowMajorAscending(t *testing.T) {
	b := NewBoard()
	if _, ok := SimpleSolve(b); !ok {
		t.Fatal("expected empty board to be solvable")
	}
	if b.Get(0, 0) != '1' {
		t.Errorf("got (0,0)=%q, want '1' as the lexicographically-first choice", b.Get(0, 0))
	}

	// Solving the same empty board again must yield the same completion,
	// since SimpleSolve always tries digits ascending from the first blank.
	b2 := NewBoard()
	if _, ok := SimpleSolve(b2); !ok {
		t.Fatal("expected empty board to be solvable")
	}
	if b.cells != b2.cells {
		t.Errorf("SimpleSolve on an empty board is not deterministic")
	}
}

func TestSimpleSolveRejectsInvalidBoard(t *testing.T) {
	b := NewBoard()
	b.Set(0, 0, '5')
	b.Set(0, 1, '5') // row repeat: invalid starting board
	if _, ok := SimpleSolve(b); ok {
		t.Errorf("expected SimpleSolve to reject an already-invalid board")
	}
}

func BenchmarkSimpleSolveHardboard1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		board := mustParse(b, hardboard1)
		if _, ok := SimpleSolve(board); !ok {
			b.Fatal("not solved")
		}
	}
}
