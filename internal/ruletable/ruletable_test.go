package ruletable

import "testing"

func TestParseRoundTrip(t *testing.T) {
	r, err := Parse("B3/S23")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r != Conway {
		t.Fatalf("Parse(B3/S23) = %+v, want Conway %+v", r, Conway)
	}
	if got := r.String(); got != "B3/S23" {
		t.Errorf("String() = %q, want B3/S23", got)
	}
}

func TestParseSwappedOrder(t *testing.T) {
	r, err := Parse("S23/B3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r != Conway {
		t.Fatalf("Parse(S23/B3) = %+v, want Conway %+v", r, Conway)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	cases := []string{"", "B3", "B3/S23/S1", "X3/S23", "B9/S23", "B3/S"}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q) should have failed", c)
		}
	}
}

// key builds the 16-bit neighborhood key for a 4x4 grid of booleans
// addressed [row][col], row 0 = north, col 0 = west.
func key(grid [4][4]bool) uint16 {
	var k uint16
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if grid[row][col] {
				k |= 1 << bitIndex(row, col)
			}
		}
	}
	return k
}

func TestTableBlockIsStill(t *testing.T) {
	tbl := NewTable(Conway)
	// A 2x2 block occupying the centre of the 4x4 window: every centre
	// cell has exactly 3 live neighbors among the other three block cells,
	// and survives under B3/S23.
	grid := [4][4]bool{}
	grid[1][1], grid[1][2], grid[2][1], grid[2][2] = true, true, true, true
	got := tbl.Step(key(grid))
	want := uint8(1<<0 | 1<<1 | 1<<2 | 1<<3)
	if got != want {
		t.Fatalf("block should be stable: got %04b, want %04b", got, want)
	}
}

func TestTableEmptyStaysEmpty(t *testing.T) {
	tbl := NewTable(Conway)
	if got := tbl.Step(0); got != 0 {
		t.Fatalf("an empty neighborhood must stay empty, got %04b", got)
	}
}

func TestTableBlinkerPhase(t *testing.T) {
	tbl := NewTable(Conway)
	// A vertical 3-in-a-row at column 1, rows 0-2, is a blinker that turns
	// horizontal through row 1 on the next tick. Only the centre 2x2
	// (rows 1-2, cols 1-2) is observable here; the two row-1 cells of that
	// block are checked via direct rule semantics rather than a fixed bit
	// pattern.
	grid := [4][4]bool{}
	grid[0][1] = true
	grid[1][1] = true
	grid[2][1] = true
	got := tbl.Step(key(grid))
	// (1,1) has neighbors (0,1) and (2,1) alive: count 2 -> survives.
	if got&(1<<0) == 0 {
		t.Errorf("(1,1) should survive with 2 neighbors")
	}
	// (1,2) has neighbors (0,1),(1,1),(2,1) alive: count 3 -> born.
	if got&(1<<1) == 0 {
		t.Errorf("(1,2) should be born with 3 neighbors")
	}
}
