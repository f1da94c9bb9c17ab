package node

// Forest is the hashcons: one canonical table per height, so that any two
// macrocells built from the same four children at the same height are the
// same *Macrocell, by pointer identity. This is what lets evolve.go
// memoize purely on node identity (the Macrocell.Result field) instead of
// on structural content.
//
// A Forest never evicts: original_source/hgolbi.c manually reference-counts
// and frees macrocells, but that bookkeeping only exists because C has no
// garbage collector. Go does, and the GC already solves the "how long do
// shared immutable nodes live" problem for every OTHER kind of shared
// structure in this codebase, so the idiomatic translation keeps that for
// macrocells too: Canonicalize is pure memoization, the table only grows,
// and the whole Forest is discarded at once (Universe.Reinitialize simply
// allocates a new one). This trades peak memory for never having to reason
// about a node being evicted while some in-flight recursive computation
// (evolve.go's memoized RESULT, explore.go's SHOW recursion) still holds a
// bare pointer to it with no tracked "reference" of its own.
type Forest struct {
	levels []map[childKey]*Macrocell // levels[h] canonicalizes height-h nodes, h >= 1
}

// NewForest returns an empty hashcons.
func NewForest() *Forest {
	return &Forest{}
}

func (f *Forest) level(h int) map[childKey]*Macrocell {
	for len(f.levels) <= h {
		f.levels = append(f.levels, nil)
	}
	if f.levels[h] == nil {
		f.levels[h] = make(map[childKey]*Macrocell)
	}
	return f.levels[h]
}

// Canonicalize returns the unique macrocell of height h with the given four
// children, allocating it on first use and returning the existing one on
// every subsequent call with the same children.
//
// h must be >= 1; height-0 leaves are the two singletons Live and nil, never
// hashconsed here.
func (f *Forest) Canonicalize(h int, nw, ne, sw, se *Macrocell) *Macrocell {
	if nw == nil && ne == nil && sw == nil && se == nil {
		return nil
	}
	key := childKey{nw, ne, sw, se}
	tbl := f.level(h)
	if existing, ok := tbl[key]; ok {
		return existing
	}
	pop := PopulationOf(nw).Add(PopulationOf(ne)).Add(PopulationOf(sw)).Add(PopulationOf(se))
	m := &Macrocell{
		Height:     h,
		NW:         nw,
		NE:         ne,
		SW:         sw,
		SE:         se,
		Population: pop,
	}
	tbl[key] = m
	return m
}

// SetResult caches res as m's evolved successor. Idempotent across repeated
// calls with the same res (Canonicalize guarantees any two computations of
// the same successor converge on the same node identity).
func (m *Macrocell) SetResult(res *Macrocell) {
	m.Result = res
}

// ClearResults clears every macrocell's cached Result throughout the
// hashcons, the cache flush SetRule uses: a Result cached under the old
// rule would misreport generations under the new one if left in place, and
// since each Result is keyed implicitly by living on a rule-specific
// Universe's own Forest, a full sweep is the direct way to invalidate all
// of them at once.
func (f *Forest) ClearResults() {
	for _, level := range f.levels {
		for _, m := range level {
			m.Result = nil
		}
	}
}

// Leaf returns the canonical height-0 macrocell for a single cell: Live if
// alive is true, nil (absent) otherwise.
func Leaf(alive bool) *Macrocell {
	if alive {
		return Live
	}
	return nil
}
