package puzzlefile

import (
	"errors"
	"testing"

	"github.com/kbourgoin/sudoku"
)

const sampleSolved = `5,3,4,6,7,8,9,1,2
6,7,2,1,9,5,3,4,8
1,9,8,3,4,2,5,6,7
8,5,9,7,6,1,4,2,3
4,2,6,8,5,3,7,9,1
7,1,3,9,2,4,8,5,6
9,6,1,5,3,7,2,8,4
2,8,7,4,1,9,6,3,5
3,4,5,2,8,6,1,7,9
0
`

func TestParseSolvedPuzzle(t *testing.T) {
	p, err := Parse(sampleSolved)
	if err != nil {
		t.Fatal(err)
	}
	if !p.HasSolution {
		t.Errorf("got HasSolution=false, want true")
	}
	if len(p.Solution) != 0 {
		t.Errorf("got %d moves, want 0 for an already-solved puzzle", len(p.Solution))
	}
	if !p.Board.IsSolved() {
		t.Errorf("expected parsed board to be solved")
	}
}

const sampleWithMoves = `5,3, , , , , , ,
6,7,2,1,9,5,3,4,8
1,9,8,3,4,2,5,6,7
8,5,9,7,6,1,4,2,3
4,2,6,8,5,3,7,9,1
7,1,3,9,2,4,8,5,6
9,6,1,5,3,7,2,8,4
2,8,7,4,1,9,6,3,5
3,4,5,2,8,6,1,7,9
2
0,2,4
0,3,6
`

func TestParseWithMoves(t *testing.T) {
	p, err := Parse(sampleWithMoves)
	if err != nil {
		t.Fatal(err)
	}
	if !p.HasSolution {
		t.Fatal("got HasSolution=false, want true")
	}
	if len(p.Solution) != 2 {
		t.Fatalf("got %d moves, want 2", len(p.Solution))
	}
	want := sudoku.Move{Row: 0, Col: 2, Digit: 4}
	if p.Solution[0] != want {
		t.Errorf("got first move %v, want %v", p.Solution[0], want)
	}
}

const sampleNoSolution = `5,3, , , , , , ,
6,7,2,1,9,5,3,4,8
1,9,8,3,4,2,5,6,7
8,5,9,7,6,1,4,2,3
4,2,6,8,5,3,7,9,1
7,1,3,9,2,4,8,5,6
9,6,1,5,3,7,2,8,4
2,8,7,4,1,9,6,3,5
3,4,5,2,8,6,1,7,9
-1
`

func TestParseNoSolution(t *testing.T) {
	p, err := Parse(sampleNoSolution)
	if err != nil {
		t.Fatal(err)
	}
	if p.HasSolution {
		t.Errorf("got HasSolution=true, want false")
	}
	if p.Solution != nil {
		t.Errorf("got Solution=%v, want nil", p.Solution)
	}
}

func TestParseRejectsTooFewLines(t *testing.T) {
	if _, err := Parse("1,2,3\n4,5,6\n"); !errors.Is(err, sudoku.ErrInvalidInput) {
		t.Errorf("got err=%v, want ErrInvalidInput", err)
	}
}

func TestParseRejectsBadMoveCount(t *testing.T) {
	bad := sampleSolved[:len(sampleSolved)-2] + "not-a-number\n"
	if _, err := Parse(bad); !errors.Is(err, sudoku.ErrInvalidInput) {
		t.Errorf("got err=%v, want ErrInvalidInput", err)
	}
}

func TestParseRejectsMismatchedMoveCount(t *testing.T) {
	truncated := sampleWithMoves[:len(sampleWithMoves)-len("0,3,6\n")]
	if _, err := Parse(truncated); !errors.Is(err, sudoku.ErrInvalidInput) {
		t.Errorf("got err=%v, want ErrInvalidInput", err)
	}
}

func TestSolutionSetIsSorted(t *testing.T) {
	moves := []sudoku.Move{
		{Row: 3, Col: 1, Digit: 9},
		{Row: 0, Col: 2, Digit: 4},
		{Row: 0, Col: 2, Digit: 1},
	}
	got := SolutionSet(moves)
	want := []string{"0,2,1", "0,2,4", "3,1,9"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}
