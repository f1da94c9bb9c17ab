package hashlife

import (
	"testing"

	"github.com/gosperlife/hashlife/internal/node"
)

// buildBlockMacrocell returns a height-2 macrocell whose centre 2x2 cells
// are alive (a stable Conway block) and every other cell is dead.
func buildBlockMacrocell(u *Universe) *node.Macrocell {
	nw := u.forest.Canonicalize(1, nil, nil, nil, node.Live)
	ne := u.forest.Canonicalize(1, nil, nil, node.Live, nil)
	sw := u.forest.Canonicalize(1, nil, node.Live, nil, nil)
	se := u.forest.Canonicalize(1, node.Live, nil, nil, nil)
	return u.forest.Canonicalize(2, nw, ne, sw, se)
}

func TestResultBaseKeepsStableBlockStable(t *testing.T) {
	u := NewUniverse(Conway)
	m := buildBlockMacrocell(u)

	res := u.result(m, 2)
	if res.NW != node.Live || res.NE != node.Live || res.SW != node.Live || res.SE != node.Live {
		t.Fatalf("a stable block's one-generation result should still be all four quadrants alive, got %+v", res)
	}
}

func TestResultIsMemoizedPerMacrocell(t *testing.T) {
	u := NewUniverse(Conway)
	m := buildBlockMacrocell(u)

	if m.Result != nil {
		t.Fatalf("freshly built macrocell should not have a cached result yet")
	}
	first := u.result(m, 2)
	if m.Result != first {
		t.Fatalf("result() should cache its return value on m.Result")
	}
	second := u.result(m, 2)
	if first != second {
		t.Fatalf("a second result() call on the same macrocell should return the identical cached node")
	}
}

func TestResultOfNilIsNil(t *testing.T) {
	u := NewUniverse(Conway)
	if got := u.result(nil, 4); got != nil {
		t.Fatalf("result of an absent region should be nil, got %+v", got)
	}
}

func TestResultRecursiveMatchesEmptyUniverse(t *testing.T) {
	u := NewUniverse(Conway)
	empty := u.forest.Canonicalize(3, nil, nil, nil, nil)
	if empty != nil {
		t.Fatalf("an all-absent macrocell should canonicalize to nil regardless of height")
	}
	if got := u.result(empty, 3); got != nil {
		t.Fatalf("result of an all-vacuum region should remain nil, got %+v", got)
	}
}
