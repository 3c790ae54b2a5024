package sudoku

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	b, err := ParseLine(easyboard1)
	if err != nil {
		t.Fatal(err)
	}
	if b.Get(0, 0) != blank {
		t.Errorf("got (0,0)=%q, want blank", b.Get(0, 0))
	}
	if b.Get(0, 2) != '3' {
		t.Errorf("got (0,2)=%q, want '3'", b.Get(0, 2))
	}

	if _, err := ParseLine("too short"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got err=%v, want ErrInvalidInput", err)
	}
}

func TestNewBoardIsBlank(t *testing.T) {
	b := NewBoard()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if b.Get(row, col) != blank {
				t.Errorf("NewBoard() not blank at (%d,%d)", row, col)
			}
		}
	}
	if b.IsSolved() {
		t.Errorf("a blank board must not be solved")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := ParseLine(easyboard1)
	if err != nil {
		t.Fatal(err)
	}
	clone := b.Clone()
	clone.Set(0, 0, '9')
	if b.Get(0, 0) == '9' {
		t.Errorf("mutating a clone affected the original")
	}
}

func TestFromLinesAndLinesRoundTrip(t *testing.T) {
	b, err := ParseLine(easyboard1)
	if err != nil {
		t.Fatal(err)
	}
	lines := b.Lines()
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}

	b2 := NewBoard()
	if err := b2.FromLines(lines); err != nil {
		t.Fatal(err)
	}
	if b2.cells != b.cells {
		t.Errorf("round trip through Lines/FromLines changed the board")
	}
}

func TestFromLinesRejectsBadInput(t *testing.T) {
	b := NewBoard()

	if err := b.FromLines([]string{"too,few"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got err=%v, want ErrInvalidInput for too few lines", err)
	}

	badFieldCount := strings.Repeat("1,2,3,4,5,6,7,8\n", 9)
	if err := b.FromLines(strings.Split(strings.TrimRight(badFieldCount, "\n"), "\n")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got err=%v, want ErrInvalidInput for wrong field count", err)
	}

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if b.Get(row, col) != blank {
				t.Errorf("FromLines mutated the board despite returning an error")
			}
		}
	}
}

func TestIsValid(t *testing.T) {
	b, err := ParseLine(easyboard1)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsValid() {
		t.Errorf("expected easyboard1 to be valid")
	}

	b.Set(0, 0, b.Get(0, 2)) // duplicate '3' into row 0
	if b.IsValid() {
		t.Errorf("expected board with a duplicated row digit to be invalid")
	}
}

func TestIsValidValue(t *testing.T) {
	b := NewBoard()
	b.Set(0, 0, '5')

	if b.IsValidValue(0, 1, '5') {
		t.Errorf("5 should conflict with row peer at (0,0)")
	}
	if b.IsValidValue(1, 0, '5') {
		t.Errorf("5 should conflict with column peer at (0,0)")
	}
	if b.IsValidValue(1, 1, '5') {
		t.Errorf("5 should conflict with box peer at (0,0)")
	}
	if !b.IsValidValue(8, 8, '5') {
		t.Errorf("5 at (8,8) shares no region with (0,0) and should be valid")
	}
	if b.IsValidValue(3, 3, '0') {
		t.Errorf("'0' is not a legal Sudoku digit")
	}
}

func TestIsSolved(t *testing.T) {
	solver := SeededSolver(1)
	b, err := ParseLine(easyboard1)
	if err != nil {
		t.Fatal(err)
	}
	solver.Attach(b)
	solver.Initialize()
	if _, ok := solver.FullSolve(); !ok {
		t.Fatal("expected easyboard1 to be solvable")
	}
	if !b.IsSolved() {
		t.Errorf("expected solved board to report IsSolved")
	}

	b.Set(0, 0, blank)
	if b.IsSolved() {
		t.Errorf("expected board with a blank cell to not be solved")
	}
}

func TestStringHasBoxSeparators(t *testing.T) {
	b := NewBoard()
	s := b.String()
	if !strings.Contains(s, "+") {
		t.Errorf("expected String() output to contain box separators")
	}
	if strings.Count(s, "\n") == 0 {
		t.Errorf("expected String() output to be multi-line")
	}
}
