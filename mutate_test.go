package hashlife

import (
	"testing"

	"github.com/gosperlife/hashlife/internal/bigint"
)

func xy(x, y int64) (bigint.Int256, bigint.Int256) {
	return bigint.FromInt64(x), bigint.FromInt64(y)
}

func TestSetUnsetIsSet(t *testing.T) {
	u := NewUniverse(Conway)
	x, y := xy(1, 1)
	if u.IsSet(x, y) {
		t.Fatalf("fresh universe should have no live cells")
	}
	u.Set(x, y)
	if !u.IsSet(x, y) {
		t.Fatalf("cell should be alive after Set")
	}
	u.Unset(x, y)
	if u.IsSet(x, y) {
		t.Fatalf("cell should be dead after Unset")
	}
}

func TestUnsetOutsideBoundsIsNoop(t *testing.T) {
	u := NewUniverse(Conway)
	x, y := xy(1_000_000, -1_000_000)
	u.Unset(x, y) // must not panic or expand
	if u.IsSet(x, y) {
		t.Fatalf("coordinate outside current bounds must read as dead")
	}
}

func TestSetForcesExpansion(t *testing.T) {
	u := NewUniverse(Conway)
	x, y := xy(1000, -1000)
	u.Set(x, y)
	if !u.IsSet(x, y) {
		t.Fatalf("cell should be alive after an expansion-forcing Set")
	}
	if got := u.Population(); got.Cmp(bigint.FromUint64(1)) != 0 {
		t.Fatalf("population = %s, want 1", got)
	}
}

func TestSetMultipleCellsPreservesEachOther(t *testing.T) {
	u := NewUniverse(Conway)
	coords := [][2]int64{{0, 0}, {1, 0}, {0, 1}, {5, 5}, {-5, -5}}
	for _, c := range coords {
		x, y := xy(c[0], c[1])
		u.Set(x, y)
	}
	for _, c := range coords {
		x, y := xy(c[0], c[1])
		if !u.IsSet(x, y) {
			t.Fatalf("cell (%d,%d) should be alive", c[0], c[1])
		}
	}
	if got := u.Population(); got.Cmp(bigint.FromUint64(uint64(len(coords)))) != 0 {
		t.Fatalf("population = %s, want %d", got, len(coords))
	}
}

func TestPopulationInWindow(t *testing.T) {
	u := NewUniverse(Conway)
	u.Set(xy(0, 0))
	u.Set(xy(1, 0))
	u.Set(xy(100, 100))

	w, err := NewWindow(bigint.FromInt64(-2), bigint.FromInt64(-2), bigint.FromInt64(2), bigint.FromInt64(2))
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if got := u.PopulationIn(w); got.Cmp(bigint.FromUint64(2)) != 0 {
		t.Fatalf("PopulationIn small window = %s, want 2", got)
	}
	if got := u.Population(); got.Cmp(bigint.FromUint64(3)) != 0 {
		t.Fatalf("total population = %s, want 3", got)
	}
}

func TestNewWindowRejectsDegenerate(t *testing.T) {
	_, err := NewWindow(bigint.FromInt64(5), bigint.IntZero, bigint.FromInt64(1), bigint.IntZero)
	if err != ErrCoordinateOutOfRange {
		t.Fatalf("expected ErrCoordinateOutOfRange, got %v", err)
	}
}

func TestSetRuleFlushesCache(t *testing.T) {
	u := NewUniverse(Conway)
	u.Set(xy(0, 0))
	u.Set(xy(1, 0))
	u.Set(xy(2, 0))
	u.Step()
	before := u.Population()

	cached := u.root
	u.result(cached, u.height)
	if cached.Result == nil {
		t.Fatalf("result() should have cached a Result on the root")
	}
	u.SetRule(Conway) // same rule, re-set: must not corrupt cached results
	if cached.Result != nil {
		t.Fatalf("SetRule must flush every cached Result")
	}
	u.Reinitialize()
	u.Set(xy(0, 0))
	u.Set(xy(1, 0))
	u.Set(xy(2, 0))
	u.Step()
	after := u.Population()
	if before.Cmp(after) != 0 {
		t.Fatalf("identical blinker evolution diverged after SetRule/Reinitialize: %s vs %s", before, after)
	}
}
