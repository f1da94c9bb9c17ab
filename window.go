package hashlife

import "github.com/gosperlife/hashlife/internal/bigint"

// Window is an axis-aligned, inclusive rectangle of cells, used to bound
// both Explore and PopulationIn queries. MinX <= MaxX and MinY <= MaxY must
// hold; NewWindow validates this.
type Window struct {
	MinX, MinY bigint.Int256
	MaxX, MaxY bigint.Int256
}

// NewWindow validates and returns a Window, or ErrCoordinateOutOfRange if
// the rectangle is degenerate.
func NewWindow(minX, minY, maxX, maxY bigint.Int256) (Window, error) {
	if minX.Cmp(maxX) > 0 || minY.Cmp(maxY) > 0 {
		return Window{}, ErrCoordinateOutOfRange
	}
	return Window{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// contains reports whether (x, y) lies within w.
func (w Window) contains(x, y bigint.Int256) bool {
	return x.Cmp(w.MinX) >= 0 && x.Cmp(w.MaxX) <= 0 &&
		y.Cmp(w.MinY) >= 0 && y.Cmp(w.MaxY) <= 0
}

// overlaps reports whether w and the axis-aligned square with NW corner
// (originX, originY) and side 2^height share any cell.
func (w Window) overlaps(originX, originY bigint.Int256, height uint) bool {
	side := bigint.FromUint(bigint.FromUint64(1).Lsh(height))
	squareMaxX := originX.Add(side).Sub(bigint.FromInt64(1))
	squareMaxY := originY.Add(side).Sub(bigint.FromInt64(1))
	if squareMaxX.Cmp(w.MinX) < 0 || originX.Cmp(w.MaxX) > 0 {
		return false
	}
	if squareMaxY.Cmp(w.MinY) < 0 || originY.Cmp(w.MaxY) > 0 {
		return false
	}
	return true
}
