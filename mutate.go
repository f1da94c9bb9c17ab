package hashlife

import (
	"github.com/gosperlife/hashlife/internal/bigint"
	"github.com/gosperlife/hashlife/internal/node"
)

// sideAsInt returns 2^height as a (non-negative) Int256.
func sideAsInt(height int) bigint.Int256 {
	return bigint.FromUint(bigint.FromUint64(1).Lsh(uint(height)))
}

// contains reports whether (x, y) lies within the Universe's current root
// square.
func (u *Universe) contains(x, y bigint.Int256) bool {
	maxX := u.originX.Add(sideAsInt(u.height)).Sub(bigint.FromInt64(1))
	maxY := u.originY.Add(sideAsInt(u.height)).Sub(bigint.FromInt64(1))
	return x.Cmp(u.originX) >= 0 && x.Cmp(maxX) <= 0 && y.Cmp(u.originY) >= 0 && y.Cmp(maxY) <= 0
}

// expand doubles the side of the root square, re-embedding the current
// content at the new square's centre: each of the old root's four children
// becomes the grandchild of a new child nearest the centre, at the
// diagonally opposite corner from where it originally sat. A border of
// vacuum surrounds the old content on every side.
func (u *Universe) expand() {
	h := u.height
	half := sideAsInt(h - 1)

	var newNW, newNE, newSW, newSE *node.Macrocell
	if u.root != nil {
		r := u.root
		newNW = u.forest.Canonicalize(h, nil, nil, nil, r.NW)
		newNE = u.forest.Canonicalize(h, nil, nil, r.NE, nil)
		newSW = u.forest.Canonicalize(h, nil, r.SW, nil, nil)
		newSE = u.forest.Canonicalize(h, r.SE, nil, nil, nil)
	}
	u.root = u.forest.Canonicalize(h+1, newNW, newNE, newSW, newSE)
	u.height = h + 1
	u.originX = u.originX.Sub(half)
	u.originY = u.originY.Sub(half)
}

// ensureContains expands the Universe until (x, y) lies within its root
// square.
func (u *Universe) ensureContains(x, y bigint.Int256) {
	for !u.contains(x, y) {
		u.expand()
	}
}

// Set marks the cell at (x, y) alive, expanding the Universe as needed to
// bring the coordinate into range.
func (u *Universe) Set(x, y bigint.Int256) {
	u.ensureContains(x, y)
	u.write(x, y, true)
}

// Unset marks the cell at (x, y) dead. A coordinate outside the current
// root square is already dead, so no expansion is needed. If this empties
// the root entirely, the Universe contracts back to its initial geometry
// rather than carrying an inflated height with nothing left to evolve.
func (u *Universe) Unset(x, y bigint.Int256) {
	if !u.contains(x, y) {
		return
	}
	u.write(x, y, false)
	if u.root == nil {
		u.resetGeometry()
	}
}

func (u *Universe) write(x, y bigint.Int256, alive bool) {
	u.root = u.setCell(u.root, u.height, u.originX, u.originY, x, y, alive)
}

// setCell returns the macrocell obtained from m (height h, NW corner at
// (originX, originY)) by setting the single cell at (x, y), sharing every
// subtree not on the path to that cell.
func (u *Universe) setCell(m *node.Macrocell, h int, originX, originY, x, y bigint.Int256, alive bool) *node.Macrocell {
	if h == 0 {
		return node.Leaf(alive)
	}
	half := sideAsInt(h - 1)
	midX := originX.Add(half)
	midY := originY.Add(half)

	var cnw, cne, csw, cse *node.Macrocell
	if m != nil {
		cnw, cne, csw, cse = m.NW, m.NE, m.SW, m.SE
	}
	west := x.Cmp(midX) < 0
	north := y.Cmp(midY) < 0
	switch {
	case west && north:
		cnw = u.setCell(cnw, h-1, originX, originY, x, y, alive)
	case !west && north:
		cne = u.setCell(cne, h-1, midX, originY, x, y, alive)
	case west && !north:
		csw = u.setCell(csw, h-1, originX, midY, x, y, alive)
	default:
		cse = u.setCell(cse, h-1, midX, midY, x, y, alive)
	}
	return u.forest.Canonicalize(h, cnw, cne, csw, cse)
}

// IsSet reports whether the cell at (x, y) is alive.
func (u *Universe) IsSet(x, y bigint.Int256) bool {
	if !u.contains(x, y) {
		return false
	}
	return queryCell(u.root, u.height, u.originX, u.originY, x, y)
}

func queryCell(m *node.Macrocell, h int, originX, originY, x, y bigint.Int256) bool {
	if m == nil {
		return false
	}
	if h == 0 {
		return m == node.Live
	}
	half := sideAsInt(h - 1)
	midX := originX.Add(half)
	midY := originY.Add(half)
	west := x.Cmp(midX) < 0
	north := y.Cmp(midY) < 0
	switch {
	case west && north:
		return queryCell(m.NW, h-1, originX, originY, x, y)
	case !west && north:
		return queryCell(m.NE, h-1, midX, originY, x, y)
	case west && !north:
		return queryCell(m.SW, h-1, originX, midY, x, y)
	default:
		return queryCell(m.SE, h-1, midX, midY, x, y)
	}
}

// PopulationIn returns the number of live cells within w, descending only
// into subtrees that overlap it.
func (u *Universe) PopulationIn(w Window) bigint.Uint256 {
	return populationIn(u.root, u.height, u.originX, u.originY, w)
}

func populationIn(m *node.Macrocell, h int, originX, originY bigint.Int256, w Window) bigint.Uint256 {
	if m == nil || !w.overlaps(originX, originY, uint(h)) {
		return bigint.Zero
	}
	if windowFullyContains(w, originX, originY, h) {
		return node.PopulationOf(m)
	}
	if h == 0 {
		if m == node.Live && w.contains(originX, originY) {
			return bigint.FromUint64(1)
		}
		return bigint.Zero
	}
	half := sideAsInt(h - 1)
	midX := originX.Add(half)
	midY := originY.Add(half)
	total := populationIn(m.NW, h-1, originX, originY, w)
	total = total.Add(populationIn(m.NE, h-1, midX, originY, w))
	total = total.Add(populationIn(m.SW, h-1, originX, midY, w))
	total = total.Add(populationIn(m.SE, h-1, midX, midY, w))
	return total
}

func windowFullyContains(w Window, originX, originY bigint.Int256, h int) bool {
	side := sideAsInt(h)
	maxX := originX.Add(side).Sub(bigint.FromInt64(1))
	maxY := originY.Add(side).Sub(bigint.FromInt64(1))
	return originX.Cmp(w.MinX) >= 0 && maxX.Cmp(w.MaxX) <= 0 &&
		originY.Cmp(w.MinY) >= 0 && maxY.Cmp(w.MaxY) <= 0
}
