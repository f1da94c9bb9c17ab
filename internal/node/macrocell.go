// Package node implements the macrocell: an immutable, content-addressed
// quadtree node, and the per-height hashcons tables that keep every
// macrocell of a given height canonical.
//
// Grounded on bart/node2.go's child-array node and bart/cloner.go's
// copy-on-write contract, generalized from an 8-bit-stride byte-trie
// (256-way branching) to a 2-way-per-axis quadtree (4-way branching).
package node

import "github.com/gosperlife/hashlife/internal/bigint"

// Quadrant names one of a macrocell's four children. The bit encoding
// matches original_source/hgolbi.c's Quadrant type: bit 0 is the east/west
// half, bit 1 is the south/north half, so NW=0, NE=1, SW=2, SE=3.
type Quadrant uint8

const (
	NW Quadrant = iota
	NE
	SW
	SE
)

// String renders the compass name, for diagnostics.
func (q Quadrant) String() string {
	switch q {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	default:
		return "?"
	}
}

// Live is the single canonical height-0 leaf representing a live cell.
// Dead cells are represented by the absent value, nil, never allocated.
var Live = &Macrocell{Height: 0, Population: bigint.FromUint64(1)}

// Macrocell is an immutable 2^h x 2^h square of cells. A nil *Macrocell
// means "absent", i.e. the canonical all-dead subtree of whatever height
// the context expects -- absence is never itself allocated or hashconsed.
type Macrocell struct {
	Height     int
	NW, NE     *Macrocell
	SW, SE     *Macrocell
	Population bigint.Uint256

	// Result is the cached 2^(h-1) x 2^(h-1) concentric successor,
	// 2^(h-2) generations ahead, or nil if not yet computed. Undefined
	// (never read) for Height < 2. Write-once-per-value: repeated writes
	// must write the same canonical identity (see Forest.Canonicalize).
	Result *Macrocell
}

// childKey is the 4-tuple of child identities used to canonicalize a
// macrocell: two canonical macrocells with the same four children ARE the
// same macrocell, by construction.
type childKey struct {
	nw, ne, sw, se *Macrocell
}

// PopulationOf returns the population of m, treating absence as zero and
// the canonical live leaf as one -- so callers never need a nil check
// before reading a child's contribution.
func PopulationOf(m *Macrocell) bigint.Uint256 {
	if m == nil {
		return bigint.Zero
	}
	return m.Population
}

// Child returns the child of m in quadrant q, or nil (absent) if m is nil.
func (m *Macrocell) Child(q Quadrant) *Macrocell {
	if m == nil {
		return nil
	}
	switch q {
	case NW:
		return m.NW
	case NE:
		return m.NE
	case SW:
		return m.SW
	default:
		return m.SE
	}
}

// GrandchildGrid lays out m's sixteen grandchildren (each height h-2) as a
// 4x4 grid, row-major, north to south then west to east -- the "sliding
// window" substrate both the Evolver's RESULT recursion and the Explorer's
// SHOW recursion read overlapping 2x2 (or larger) blocks from.
func GrandchildGrid(m *Macrocell) [4][4]*Macrocell {
	if m == nil {
		return [4][4]*Macrocell{}
	}
	return [4][4]*Macrocell{
		{m.NW.Child(NW), m.NW.Child(NE), m.NE.Child(NW), m.NE.Child(NE)},
		{m.NW.Child(SW), m.NW.Child(SE), m.NE.Child(SW), m.NE.Child(SE)},
		{m.SW.Child(NW), m.SW.Child(NE), m.SE.Child(NW), m.SE.Child(NE)},
		{m.SW.Child(SW), m.SW.Child(SE), m.SE.Child(SW), m.SE.Child(SE)},
	}
}

// HasVacuumFrontier reports whether m's twelve depth-2 border sub-quadrants
// -- the outer ring of width 2^(h-2) around m's centre -- are all absent.
// This is the test original_source/hgolbi.c calls universe_is_closed: of
// the 4x4 grandchild grid, only the central 2x2 block (one grandchild per
// top-level quadrant, nearest m's centre) may be populated. A universe that
// fails this test must be expanded before a query instant can safely assume
// no edge effects: result() only ever returns m's central 2^(h-1) square, so
// life any closer to m's outer edge than that would be silently truncated.
//
// A plain outermost-one-cell-ring check (the previous, weaker test this
// replaces) lets a pattern reach to within a few cells of m's edge while
// still reporting "closed", even though result() would already be cropping
// it.
func HasVacuumFrontier(m *Macrocell) bool {
	if m == nil {
		return true
	}
	grid := GrandchildGrid(m)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if row >= 1 && row <= 2 && col >= 1 && col <= 2 {
				continue
			}
			if PopulationOf(grid[row][col]).IsZero() {
				continue
			}
			return false
		}
	}
	return true
}
