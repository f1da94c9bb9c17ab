package hashlife

import (
	"sort"

	"github.com/gosperlife/hashlife/internal/bigint"
	"github.com/gosperlife/hashlife/internal/node"
)

// Cell is the coordinate of a single live cell, as returned by LiveCellsIn
// and Explore. Comparable, so it can be used as a map key or set member.
type Cell struct {
	X, Y bigint.Int256
}

// clone returns a Universe sharing this one's hashcons and rule table but
// with its own independent root/height/origin -- cheap, since macrocells
// are immutable and the Forest never mutates existing entries, only grows.
// Explore uses this so the vacuum-expansion a forecast needs never touches
// u itself.
func (u *Universe) clone() *Universe {
	return &Universe{
		forest:  u.forest,
		table:   u.table,
		rule:    u.rule,
		height:  u.height,
		root:    u.root,
		originX: u.originX,
		originY: u.originY,
	}
}

// LiveCellsIn returns every live cell within w, sorted in strictly
// ascending (y, x) order, descending only into subtrees that overlap w.
func (u *Universe) LiveCellsIn(w Window) []Cell {
	found := make(map[Cell]struct{})
	collectLive(u.root, u.height, u.originX, u.originY, &w, found)
	return sortedCells(found)
}

// collectAllLive returns every live cell in the whole Universe, sorted in
// strictly ascending (y, x) order.
func (u *Universe) collectAllLive() []Cell {
	found := make(map[Cell]struct{})
	collectLive(u.root, u.height, u.originX, u.originY, nil, found)
	return sortedCells(found)
}

// collectLive walks m (height h, NW corner at (originX, originY)), adding
// every live leaf to found. A nil w collects unconditionally; otherwise
// subtrees that don't overlap w are pruned.
func collectLive(m *node.Macrocell, h int, originX, originY bigint.Int256, w *Window, found map[Cell]struct{}) {
	if m == nil {
		return
	}
	if w != nil && !w.overlaps(originX, originY, uint(h)) {
		return
	}
	if h == 0 {
		if m == node.Live && (w == nil || w.contains(originX, originY)) {
			found[Cell{X: originX, Y: originY}] = struct{}{}
		}
		return
	}
	half := sideAsInt(h - 1)
	midX := originX.Add(half)
	midY := originY.Add(half)
	collectLive(m.NW, h-1, originX, originY, w, found)
	collectLive(m.NE, h-1, midX, originY, w, found)
	collectLive(m.SW, h-1, originX, midY, w, found)
	collectLive(m.SE, h-1, midX, midY, w, found)
}

// sortedCells drains found into a slice sorted in strictly ascending
// (y, x) order, the enumeration contract every cell-listing query honors.
func sortedCells(found map[Cell]struct{}) []Cell {
	out := make([]Cell, 0, len(found))
	for c := range found {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Y.Cmp(out[j].Y); cmp != 0 {
			return cmp < 0
		}
		return out[i].X.Cmp(out[j].X) < 0
	})
	return out
}

// Explore returns the live cells within w at instant -- a count of
// generations ahead of the Universe's current state -- without mutating u.
// An axis of w whose minimum is not strictly below its maximum (including a
// single-column or single-row window) is widened to the full coordinate
// range on that axis.
//
// Instant zero is a direct window query against the current tree: no
// forecast is needed. Any later instant runs the SHOW recursion: a
// throwaway copy of the Universe is expanded until its root carries enough
// vacuum padding to forecast that far ahead (min_height = 2 +
// ceil(log2(instant))), four diagonally-shifted copies of that root are
// built -- one per compass corner, so instant's light cone never runs off
// whichever edge of the root it would otherwise approach -- and each is
// explored by the show recursion, which prunes by both space and time and
// memoizes by (height, xmin, ymin, tbase) so overlapping sub-regions are
// only ever visited once.
//
// Grounded on original_source/hgolbi.c's universe_explore and
// universe_show_RESULT.
func (u *Universe) Explore(w Window, instant bigint.Uint256) []Cell {
	if w.MinX.Cmp(w.MaxX) >= 0 {
		w.MinX, w.MaxX = bigint.IntMin, bigint.IntMax
	}
	if w.MinY.Cmp(w.MaxY) >= 0 {
		w.MinY, w.MaxY = bigint.IntMin, bigint.IntMax
	}

	found := make(map[Cell]struct{})
	scratch := u.clone()

	switch {
	case scratch.root == nil:
		// vacuum everywhere; nothing to find at any instant
	case instant.IsZero():
		collectLive(scratch.root, scratch.height, scratch.originX, scratch.originY, &w, found)
	default:
		minHeight := 2 + int(instant.Sub(bigint.FromUint64(1)).BitLen())
		for scratch.height < minHeight || !node.HasVacuumFrontier(scratch.root) {
			scratch.expand()
		}

		state := &showState{
			u:        scratch,
			window:   w.toUnsigned(),
			instant:  instant,
			explored: make(map[spaceTimeRegion]bool),
			found:    found,
		}
		quarter := quarterOf(scratch.height)
		baseX := bigint.UnsignedDomain(scratch.originX)
		baseY := bigint.UnsignedDomain(scratch.originY)
		for _, q := range [4]node.Quadrant{node.NW, node.NE, node.SW, node.SE} {
			xmin, ymin := shiftedOrigin(q, baseX, baseY, quarter)
			shifted := scratch.buildShiftedRoot(q)
			state.show(shifted, spaceTimeRegion{height: scratch.height, xmin: xmin, ymin: ymin, tbase: bigint.Zero})
		}
	}

	return sortedCells(found)
}

// buildShiftedRoot builds a height-matching macrocell holding the central
// half of u's current root (its four innermost grandchildren, picked via
// the opposite-corner trick expand also uses) as the single quadrant q of
// a fresh root. This is safe only once HasVacuumFrontier(u.root) holds:
// the twelve border grandchildren are discarded outright, whatever q is,
// and that's only legitimate because they are guaranteed vacuum.
func (u *Universe) buildShiftedRoot(q node.Quadrant) *node.Macrocell {
	var rq [4]*node.Macrocell
	if u.root != nil {
		rq = [4]*node.Macrocell{u.root.NW, u.root.NE, u.root.SW, u.root.SE}
	}
	var inner [4]*node.Macrocell
	for p := node.Quadrant(0); p < 4; p++ {
		inner[p] = rq[p].Child(3 - p)
	}
	innerNode := u.forest.Canonicalize(u.height-1, inner[node.NW], inner[node.NE], inner[node.SW], inner[node.SE])
	var outer [4]*node.Macrocell
	outer[q] = innerNode
	return u.forest.Canonicalize(u.height, outer[node.NW], outer[node.NE], outer[node.SW], outer[node.SE])
}

// shiftedOrigin returns the unsigned-domain coordinate of the NW corner of
// the light cone buildShiftedRoot(q) serves: the Universe's own origin
// moved one quarter-side on each axis toward the corner opposite q.
func shiftedOrigin(q node.Quadrant, baseX, baseY, quarter bigint.Uint256) (bigint.Uint256, bigint.Uint256) {
	switch q {
	case node.NW:
		return baseX.Add(quarter), baseY.Add(quarter)
	case node.SW:
		return baseX.Add(quarter), baseY.Sub(quarter)
	case node.NE:
		return baseX.Sub(quarter), baseY.Add(quarter)
	default: // SE
		return baseX.Sub(quarter), baseY.Sub(quarter)
	}
}

// spaceTimeRegion is a height-h square of side 2^h, with unsigned-domain NW
// corner (xmin, ymin), under consideration at generation tbase -- the SHOW
// recursion's unit of work, and its memoization key.
type spaceTimeRegion struct {
	height     int
	xmin, ymin bigint.Uint256
	tbase      bigint.Uint256
}

// showState carries the parameters constant across one Explore call's SHOW
// recursion: the Universe being forecast, the query window (translated
// once into the unsigned domain), the target instant, the already-explored
// region memo, and the accumulating result set.
type showState struct {
	u        *Universe
	window   unsignedRect
	instant  bigint.Uint256
	explored map[spaceTimeRegion]bool
	found    map[Cell]struct{}
}

// quarterOf returns 2^(height-2), the number of generations spanned by one
// RESULT jump at height, or zero below height 2 where no jump is defined.
func quarterOf(height int) bigint.Uint256 {
	if height < 2 {
		return bigint.Zero
	}
	return pow2(uint(height - 2))
}

func pow2(n uint) bigint.Uint256 {
	return bigint.FromUint64(1).Lsh(n)
}

// timesSmall returns a*k for the small, non-negative multipliers (at most
// 2) the SHOW recursion's grid offsets ever need.
func timesSmall(a bigint.Uint256, k int) bigint.Uint256 {
	r := bigint.Zero
	for i := 0; i < k; i++ {
		r = r.Add(a)
	}
	return r
}

// timeOverlap reports whether region (height, tbase) can still reach
// instant: tbase must not be in the future, and the region's light cone --
// which spans at most quarterOf(height) generations before its content
// must be re-derived from a finer-grained region -- must not have expired.
func timeOverlap(height int, tbase, instant bigint.Uint256) bool {
	if instant.Cmp(tbase) < 0 {
		return false
	}
	return instant.Sub(tbase).Cmp(quarterOf(height)) <= 0
}

// show recurses into m, a macrocell of region r.height occupying r in
// space-time, collecting every live cell of m (or its forecast) that lies
// both within quarterOf(r.height) generations' reach of the query instant and within
// the query window, into s.found.
//
// Implements original_source/hgolbi.c's universe_show_RESULT: region r is
// decomposed, when neither instant nor its quarter-of-r.height predecessor
// land exactly on it, into thirteen overlapping height-(r.height-1)
// sub-regions -- the same nine-then-four sliding-window construction the
// Evolver's RESULT recursion uses to compute m's own successor, each
// windowed pairing recursed into directly, each RESULT pairing recursed
// into one quarter-generation further along.
func (s *showState) show(m *node.Macrocell, r spaceTimeRegion) {
	if m == nil || r.height < 2 {
		return
	}
	if !timeOverlap(r.height, r.tbase, s.instant) || !s.window.overlapsSquare(r.xmin, r.ymin, pow2(uint(r.height))) {
		return
	}
	if s.explored[r] {
		return
	}
	s.explored[r] = true

	quarter := quarterOf(r.height)
	deltat := s.instant.Sub(r.tbase)
	switch {
	case deltat.IsZero():
		collectCellsUnsigned(m, r.height, r.xmin, r.ymin, s.window, s.found)
		return
	case deltat.Cmp(quarter) == 0:
		res := s.u.result(m, r.height)
		collectCellsUnsigned(res, r.height-1, r.xmin.Add(quarter), r.ymin.Add(quarter), s.window, s.found)
		return
	}

	grid := node.GrandchildGrid(m)
	var windows [3][3]*node.Macrocell
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			windows[row][col] = s.u.forest.Canonicalize(r.height-1,
				grid[row][col], grid[row][col+1], grid[row+1][col], grid[row+1][col+1])
			s.show(windows[row][col], spaceTimeRegion{
				height: r.height - 1,
				xmin:   r.xmin.Add(timesSmall(quarter, col)),
				ymin:   r.ymin.Add(timesSmall(quarter, row)),
				tbase:  r.tbase,
			})
		}
	}

	eighth := quarter.Rsh(1)
	for sr := 0; sr < 2; sr++ {
		for sc := 0; sc < 2; sc++ {
			a := s.u.result(windows[sr][sc], r.height-1)
			b := s.u.result(windows[sr][sc+1], r.height-1)
			c := s.u.result(windows[sr+1][sc], r.height-1)
			d := s.u.result(windows[sr+1][sc+1], r.height-1)
			combined := s.u.forest.Canonicalize(r.height-1, a, b, c, d)
			s.show(combined, spaceTimeRegion{
				height: r.height - 1,
				xmin:   r.xmin.Add(timesSmall(quarter, sc)).Add(eighth),
				ymin:   r.ymin.Add(timesSmall(quarter, sr)).Add(eighth),
				tbase:  r.tbase.Add(eighth),
			})
		}
	}
}

// unsignedRect is w translated once into the unsigned coordinate domain,
// so the SHOW recursion's space-overlap tests never need to re-translate
// or special-case sign.
type unsignedRect struct {
	minX, minY bigint.Uint256
	maxX, maxY bigint.Uint256
}

func (w Window) toUnsigned() unsignedRect {
	return unsignedRect{
		minX: bigint.UnsignedDomain(w.MinX),
		minY: bigint.UnsignedDomain(w.MinY),
		maxX: bigint.UnsignedDomain(w.MaxX),
		maxY: bigint.UnsignedDomain(w.MaxY),
	}
}

func (r unsignedRect) contains(x, y bigint.Uint256) bool {
	return x.Cmp(r.minX) >= 0 && x.Cmp(r.maxX) <= 0 &&
		y.Cmp(r.minY) >= 0 && y.Cmp(r.maxY) <= 0
}

// overlapsSquare reports whether r and the axis-aligned square with NW
// corner (originX, originY) and side side share any cell.
func (r unsignedRect) overlapsSquare(originX, originY, side bigint.Uint256) bool {
	maxX := originX.Add(side).Sub(bigint.FromUint64(1))
	maxY := originY.Add(side).Sub(bigint.FromUint64(1))
	if maxX.Cmp(r.minX) < 0 || originX.Cmp(r.maxX) > 0 {
		return false
	}
	if maxY.Cmp(r.minY) < 0 || originY.Cmp(r.maxY) > 0 {
		return false
	}
	return true
}

// collectCellsUnsigned walks m (height h, unsigned-domain NW corner
// (originX, originY)), adding every live leaf within w to found. Mirrors
// collectLive but in the unsigned domain the SHOW recursion works in, and
// translates each hit back to a signed Cell on the way out.
func collectCellsUnsigned(m *node.Macrocell, h int, originX, originY bigint.Uint256, w unsignedRect, found map[Cell]struct{}) {
	if m == nil {
		return
	}
	if !w.overlapsSquare(originX, originY, pow2(uint(h))) {
		return
	}
	if h == 0 {
		if m == node.Live && w.contains(originX, originY) {
			found[Cell{X: bigint.SignedFromDomain(originX), Y: bigint.SignedFromDomain(originY)}] = struct{}{}
		}
		return
	}
	half := pow2(uint(h - 1))
	midX := originX.Add(half)
	midY := originY.Add(half)
	collectCellsUnsigned(m.NW, h-1, originX, originY, w, found)
	collectCellsUnsigned(m.NE, h-1, midX, originY, w, found)
	collectCellsUnsigned(m.SW, h-1, originX, midY, w, found)
	collectCellsUnsigned(m.SE, h-1, midX, midY, w, found)
}

// Advance evolves the Universe forward by exactly generations ticks,
// taking the largest memoized RESULT jump available at each step (every
// jump is an exact power of two, bounded by how much vacuum padding the
// current pattern already affords) and falling back to a direct,
// non-memoized single-generation update for any remainder too small for
// the next available jump. The bulk of a long advance is handled by the
// memoized Evolver; only the last few ticks, if any, fall back to brute
// force.
func (u *Universe) Advance(generations uint64) {
	for generations > 0 {
		for u.height < 3 || !node.HasVacuumFrontier(u.root) {
			u.expand()
		}
		// The jump is taken from one expansion further out, which puts every
		// live cell in the root's central quarter so that nothing the pattern
		// grows into during the jump falls outside the returned centre.
		jump := uint64(1) << uint(u.height-1)
		if jump <= generations {
			u.expand()
			u.stepOnce()
			generations -= jump
			continue
		}
		u.stepBruteForceOnce()
		generations--
	}
}

// Step advances the Universe by exactly 2^(height-2) generations, where
// height is the root height once enough vacuum padding has been added to
// make that advance safe (a vacuum frontier, plus one further expansion).
func (u *Universe) Step() {
	for u.height < 3 || !node.HasVacuumFrontier(u.root) {
		u.expand()
	}
	u.expand()
	u.stepOnce()
}

func (u *Universe) stepOnce() {
	h := u.height
	offset := sideAsInt(h - 2)
	u.root = u.result(u.root, h)
	u.height = h - 1
	u.originX = u.originX.Add(offset)
	u.originY = u.originY.Add(offset)
}

// stepBruteForceOnce advances exactly one generation by direct neighbor
// counting over the live-cell set, bypassing the memoized Evolver. Used
// only for the remainder of an Advance too small to justify (or safely
// fit) the next power-of-two RESULT jump.
func (u *Universe) stepBruteForceOnce() {
	live := u.collectAllLive()
	liveSet := make(map[Cell]bool, len(live))
	counts := make(map[Cell]int, len(live)*8)
	for _, c := range live {
		liveSet[c] = true
		if _, ok := counts[c]; !ok {
			counts[c] = 0
		}
	}
	one := bigint.FromInt64(1)
	negOne := bigint.FromInt64(-1)
	deltas := [8][2]bigint.Int256{
		{negOne, negOne}, {bigint.IntZero, negOne}, {one, negOne},
		{negOne, bigint.IntZero}, {one, bigint.IntZero},
		{negOne, one}, {bigint.IntZero, one}, {one, one},
	}
	for _, c := range live {
		for _, d := range deltas {
			counts[Cell{c.X.Add(d[0]), c.Y.Add(d[1])}]++
		}
	}

	var toSet, toUnset []Cell
	for coord, n := range counts {
		alive := liveSet[coord]
		mask := uint16(1) << uint(n)
		var next bool
		if alive {
			next = u.rule.Survive&mask != 0
		} else {
			next = u.rule.Born&mask != 0
		}
		switch {
		case next && !alive:
			toSet = append(toSet, coord)
		case !next && alive:
			toUnset = append(toUnset, coord)
		}
	}
	for _, c := range toSet {
		u.Set(c.X, c.Y)
	}
	for _, c := range toUnset {
		u.Unset(c.X, c.Y)
	}
}
