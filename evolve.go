package hashlife

import "github.com/gosperlife/hashlife/internal/node"

// result returns the central 2^(h-1) x 2^(h-1) square of m, 2^(h-2)
// generations ahead, where m has height h. This is the Evolver: the
// memoized RESULT recursion from original_source/hgolbi.c's
// universe_get_RESULT, generalized so the same helper serves both the
// height==2 base case (direct rule-table lookup) and the general case
// (two nested rounds of overlapping, recursively-evolved subsquares: nine,
// then four).
//
// m == nil (an absent region) evolves to nil: vacuum stays vacuum.
func (u *Universe) result(m *node.Macrocell, h int) *node.Macrocell {
	if m == nil {
		return nil
	}
	if m.Result != nil {
		return m.Result
	}
	var res *node.Macrocell
	if h == 2 {
		res = u.resultBase(m)
	} else {
		res = u.resultRecursive(m, h)
	}
	m.SetResult(res)
	return res
}

// resultBase handles h == 2: m's four children are height-1 (2x2), so m as
// a whole is a literal 4x4 neighborhood and its one-generation successor
// (the centre 2x2) comes directly from the rule table.
func (u *Universe) resultBase(m *node.Macrocell) *node.Macrocell {
	var key uint16
	setBit := func(leaf *node.Macrocell, bitPos uint) {
		if leaf == node.Live {
			key |= 1 << bitPos
		}
	}
	setBit(m.NW.Child(node.NW), 0)
	setBit(m.NW.Child(node.NE), 1)
	setBit(m.NE.Child(node.NW), 2)
	setBit(m.NE.Child(node.NE), 3)
	setBit(m.NW.Child(node.SW), 4)
	setBit(m.NW.Child(node.SE), 5)
	setBit(m.NE.Child(node.SW), 6)
	setBit(m.NE.Child(node.SE), 7)
	setBit(m.SW.Child(node.NW), 8)
	setBit(m.SW.Child(node.NE), 9)
	setBit(m.SE.Child(node.NW), 10)
	setBit(m.SE.Child(node.NE), 11)
	setBit(m.SW.Child(node.SW), 12)
	setBit(m.SW.Child(node.SE), 13)
	setBit(m.SE.Child(node.SW), 14)
	setBit(m.SE.Child(node.SE), 15)

	out := u.table.Step(key)
	nw := node.Leaf(out&(1<<0) != 0)
	ne := node.Leaf(out&(1<<1) != 0)
	sw := node.Leaf(out&(1<<2) != 0)
	se := node.Leaf(out&(1<<3) != 0)
	return u.forest.Canonicalize(1, nw, ne, sw, se)
}

// resultRecursive handles h >= 3 via the classic two-round doubling: nine
// overlapping height-(h-1) windows slide over m's 4x4 grandchild grid; each
// is evolved 2^(h-3) generations (result at height h-1), producing a 3x3
// grid of height-(h-2) nodes; four overlapping height-(h-1) windows then
// slide over THAT grid and are evolved again, producing the four
// height-(h-2) quadrants of the final, fully 2^(h-2)-generations-ahead,
// height-(h-1) result.
func (u *Universe) resultRecursive(m *node.Macrocell, h int) *node.Macrocell {
	grid := node.GrandchildGrid(m)

	var mid [3][3]*node.Macrocell
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			window := u.forest.Canonicalize(h-1, grid[row][col], grid[row][col+1], grid[row+1][col], grid[row+1][col+1])
			mid[row][col] = u.result(window, h-1)
		}
	}

	quadrant := func(row, col int) *node.Macrocell {
		window := u.forest.Canonicalize(h-1, mid[row][col], mid[row][col+1], mid[row+1][col], mid[row+1][col+1])
		return u.result(window, h-1)
	}
	nw := quadrant(0, 0)
	ne := quadrant(0, 1)
	sw := quadrant(1, 0)
	se := quadrant(1, 1)
	return u.forest.Canonicalize(h-1, nw, ne, sw, se)
}
