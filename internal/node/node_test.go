package node

import "testing"

func TestCanonicalizeDedupes(t *testing.T) {
	f := NewForest()
	a := f.Canonicalize(1, Live, nil, nil, nil)
	b := f.Canonicalize(1, Live, nil, nil, nil)
	if a != b {
		t.Fatalf("two macrocells built from identical children must be the same pointer")
	}
}

func TestCanonicalizeAllAbsentIsNil(t *testing.T) {
	f := NewForest()
	if got := f.Canonicalize(3, nil, nil, nil, nil); got != nil {
		t.Fatalf("four absent children must canonicalize to nil, got %v", got)
	}
}

func TestCanonicalizePopulation(t *testing.T) {
	f := NewForest()
	m := f.Canonicalize(1, Live, Live, nil, nil)
	if m.Population.Cmp(PopulationOf(nil).Add(PopulationOf(Live)).Add(PopulationOf(Live))) != 0 {
		t.Fatalf("population should sum live children")
	}
	if m.Population.Cmp(m.Population) != 0 {
		t.Fatalf("sanity: population comparable to itself")
	}
}

func TestCanonicalizeReturnsSameNodeAcrossCalls(t *testing.T) {
	f := NewForest()
	m := f.Canonicalize(1, Live, nil, nil, nil)
	m.SetResult(Live)
	again := f.Canonicalize(1, Live, nil, nil, nil)
	if again != m || again.Result != Live {
		t.Fatalf("re-canonicalizing identical children must return the same, already-cached node")
	}
}

func TestAllAbsentChildrenStayNilAtAnyHeight(t *testing.T) {
	f := NewForest()
	// Canonicalize must collapse an all-absent macrocell to nil regardless
	// of height: absence never needs its own allocation or hashcons entry.
	inner := f.Canonicalize(5, nil, nil, nil, nil)
	if inner != nil {
		t.Fatalf("all-absent height-5 macrocell must canonicalize to nil")
	}
}

func TestHasVacuumFrontier(t *testing.T) {
	if !HasVacuumFrontier(nil) {
		t.Fatalf("an absent macrocell has a vacuum frontier")
	}

	f := NewForest()
	// At height 2, m's grandchildren are its own sixteen constituent cells,
	// so a live cell tucked in the exact centre (SE-of-NW grandchild) keeps
	// the frontier clear...
	centre := f.Canonicalize(1, nil, nil, nil, Live)
	m := f.Canonicalize(2, centre, nil, nil, nil)
	if !HasVacuumFrontier(m) {
		t.Fatalf("a centre-only live cell should not touch the frontier")
	}

	// ...while a live cell in an outward-facing grandchild (NW-of-NW)
	// touches it.
	corner := f.Canonicalize(1, Live, nil, nil, nil)
	m2 := f.Canonicalize(2, corner, nil, nil, nil)
	if HasVacuumFrontier(m2) {
		t.Fatalf("a corner-adjacent live cell should touch the frontier")
	}
}

// TestHasVacuumFrontierRejectsDeeperBorderLife demonstrates the precondition
// the result-jump strengthening fixes: a live cell one diagonal step in from
// m's literal outer edge sits inside a depth-2 border sub-quadrant, not on
// the single-cell outermost ring. The weaker outermost-ring test used to
// gate result-jumps would call this universe "closed" even though result()
// would silently crop this cell.
func TestHasVacuumFrontierRejectsDeeperBorderLife(t *testing.T) {
	f := NewForest()
	// Height-3 m, live cell at overall position (row=1, col=1): one cell in
	// from the corner, inside grandchild (0,0) rather than the centre 2x2
	// of the 4x4 grandchild grid.
	innerLeaf := f.Canonicalize(1, nil, nil, nil, Live)
	nwChild := f.Canonicalize(2, innerLeaf, nil, nil, nil)
	m := f.Canonicalize(3, nwChild, nil, nil, nil)

	if HasVacuumFrontier(m) {
		t.Fatalf("a live cell inside a border sub-quadrant must not read as a vacuum frontier")
	}
}

func TestQuadrantString(t *testing.T) {
	cases := map[Quadrant]string{NW: "NW", NE: "NE", SW: "SW", SE: "SE"}
	for q, want := range cases {
		if got := q.String(); got != want {
			t.Errorf("Quadrant(%d).String() = %q, want %q", q, got, want)
		}
	}
}
