package sudoku

import "math/bits"

// Digits is a bitmask over the nine Sudoku digits 1..9. Bit i (1<=i<=9)
// being set means digit i is a member of the set; bit 0 is unused.
//
// Digits doubles as both a cell's candidate set (§3 "Candidate set") and as
// the singleton representation of an already-placed digit.
type Digits uint16

// fullDigits is the candidate set containing every digit 1..9.
const fullDigits Digits = 0b11_1111_1110

// digitBit returns the bit for digit d (1<=d<=9).
func digitBit(d int) Digits {
	return 1 << uint(d)
}

// fromDigit returns the singleton set containing only d.
func fromDigit(d int) Digits {
	if d == 0 {
		return 0
	}
	return digitBit(d)
}

// isMember reports whether d is a member of the set.
func (s Digits) isMember(d int) bool {
	return s&digitBit(d) != 0
}

// add returns the set with d added.
func (s Digits) add(d int) Digits {
	return s | digitBit(d)
}

// remove returns the set with d removed.
func (s Digits) remove(d int) Digits {
	return s &^ digitBit(d)
}

// size returns the number of digits in the set.
func (s Digits) size() int {
	return bits.OnesCount16(uint16(s))
}

// singleMemberDigit returns the sole digit in a singleton set. The result is
// unspecified if size() != 1.
func (s Digits) singleMemberDigit() int {
	return bits.TrailingZeros16(uint16(s))
}

// digits returns the set's members in ascending order.
func (s Digits) digits() []int {
	out := make([]int, 0, s.size())
	for d := 1; d <= 9; d++ {
		if s.isMember(d) {
			out = append(out, d)
		}
	}
	return out
}
