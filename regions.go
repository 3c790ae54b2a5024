package sudoku

import "golang.org/x/exp/slices"

// cellIndex maps (row, col) to a linear index in [0, 80], following the
// layout documented by the teacher's Index type:
//
//	 0  1  2 |  3  4  5 |  6  7  8
//	 9 10 11 | 12 13 14 | 15 16 17
//	18 19 20 | 21 22 23 | 24 25 26
//	---------+----------+---------
//	...
func cellIndex(row, col int) int {
	return row*9 + col
}

func rowOf(cell int) int { return cell / 9 }
func colOf(cell int) int { return cell % 9 }

// boxIndex returns the index (0..8) of the 3x3 box containing (row, col).
func boxIndex(row, col int) int {
	return (row/3)*3 + col/3
}

// regionKind distinguishes the three families of region.
type regionKind int

const (
	regionRow regionKind = iota
	regionCol
	regionBox
	numRegionKinds
)

// unit is the list of the nine cell indices belonging to one region.
type unit = []int

// unitlist is the static list of all 27 regions: 9 rows, 9 columns, 9 boxes,
// in that order. regionID(kind, idx) gives the position of a given region
// within unitlist.
var unitlist []unit

// units[cell] lists the (up to three) regions containing cell.
var units [][]unit

// peers[cell] lists the unique cells sharing a region with cell, not
// including cell itself.
var peers [][]int

// regionOfKind[kind][idx] is the unit for region (kind, idx).
var regionOfKind [numRegionKinds][9]unit

// rowRegion, colRegion, boxRegion give the region index (0..8) of a cell
// within each region kind.
func rowRegion(cell int) int { return rowOf(cell) }
func colRegion(cell int) int { return colOf(cell) }
func boxRegion(cell int) int { return boxIndex(rowOf(cell), colOf(cell)) }

func regionID(kind regionKind, idx int) int {
	return int(kind)*9 + idx
}

// buildUnit returns the 9 cells making up region (kind, idx).
func buildUnit(kind regionKind, idx int) unit {
	u := make(unit, 0, 9)
	switch kind {
	case regionRow:
		for col := 0; col < 9; col++ {
			u = append(u, cellIndex(idx, col))
		}
	case regionCol:
		for row := 0; row < 9; row++ {
			u = append(u, cellIndex(row, idx))
		}
	default: // regionBox
		blockRow, blockCol := (idx/3)*3, (idx%3)*3
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				u = append(u, cellIndex(blockRow+row, blockCol+col))
			}
		}
	}
	return u
}

func init() {
	for kind := regionRow; kind < numRegionKinds; kind++ {
		for idx := 0; idx < 9; idx++ {
			u := buildUnit(kind, idx)
			unitlist = append(unitlist, u)
			regionOfKind[kind][idx] = u
		}
	}

	// units[i] is the list of all units containing cell i.
	units = make([][]unit, 81)
	for i := 0; i < 81; i++ {
		for _, u := range unitlist {
			if slices.Index(u, i) >= 0 {
				units[i] = append(units[i], slices.Clone(u))
			}
		}
	}

	// peers[i] is the list of unique cells sharing a unit with i, excluding i.
	peers = make([][]int, 81)
	for i := 0; i < 81; i++ {
		for _, u := range units[i] {
			for _, candidate := range u {
				// Linear search keeps this simple; it runs once at package init.
				if candidate != i && slices.Index(peers[i], candidate) < 0 {
					peers[i] = append(peers[i], candidate)
				}
			}
		}
	}
}
