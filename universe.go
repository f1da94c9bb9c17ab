package hashlife

import (
	"github.com/gosperlife/hashlife/internal/bigint"
	"github.com/gosperlife/hashlife/internal/node"
	"github.com/gosperlife/hashlife/internal/ruletable"
)

// initialHeight is the conceptual height a freshly created or
// freshly-reinitialized Universe starts at: a root square of side 2^3 = 8,
// small enough to stay nil (all-dead) until the first Set, large enough
// that the Evolver's recursion has the height>=2 base case immediately
// available once any pattern is loaded.
const initialHeight = 3

// Universe is a HashLife simulation: a hash-consed macrocell tree, a rule
// and its precomputed lookup table, and the signed coordinate of the root
// square's north-west corner.
//
// The zero value is not usable; construct with NewUniverse.
type Universe struct {
	forest *node.Forest
	table  *ruletable.Table
	rule   Rule

	height  int // root's conceptual height; valid even when root == nil
	root    *node.Macrocell
	originX bigint.Int256 // signed coordinate of the root square's NW corner
	originY bigint.Int256
}

// NewUniverse returns an empty Universe evolving under rule.
func NewUniverse(rule Rule) *Universe {
	u := &Universe{forest: node.NewForest()}
	u.resetGeometry()
	u.SetRule(rule)
	return u
}

// resetGeometry centres an empty root square of initialHeight on (0, 0).
func (u *Universe) resetGeometry() {
	u.height = initialHeight
	u.root = nil
	half := bigint.FromUint(bigint.FromUint64(1).Lsh(uint(initialHeight - 1)))
	u.originX = half.Neg()
	u.originY = half.Neg()
}

// Reinitialize discards all cells and resets the Universe to empty, under
// the same rule it already had.
func (u *Universe) Reinitialize() {
	u.forest = node.NewForest()
	u.resetGeometry()
}

// SetRule changes the rule the Universe evolves under and flushes every
// cached evolution result, since a Result cached under the old rule would
// silently misreport generations under the new one otherwise.
func (u *Universe) SetRule(rule Rule) {
	u.rule = rule
	u.table = ruletable.NewTable(rule)
	if u.forest != nil {
		u.forest.ClearResults()
	}
}

// Rule returns the Universe's current rule.
func (u *Universe) Rule() Rule { return u.rule }

// Population returns the total number of live cells, in O(1): every
// macrocell caches its own population at construction time.
func (u *Universe) Population() bigint.Uint256 {
	return node.PopulationOf(u.root)
}
