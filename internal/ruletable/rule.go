// Package ruletable holds the B/S neighbor-count rule and its precomputed
// 4x4-cells-to-centre-2x2-cells lookup table, the base case every Evolver
// recursion eventually bottoms out at.
//
// Grounded on bart/allot_tbl.go's pattern of precomputing a table once, at
// configuration time, and indexing it at query time with a small bitfield
// key -- there it is an allotment index into a fixed-size table of
// pre-expanded prefix lengths; here it is a uint16 of 16 cell bits into a
// table of 2^16 four-bit results.
package ruletable

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is a life-like cellular automaton rule: a cell with exactly one of
// the Survive neighbor counts stays alive, one with exactly one of the Born
// counts becomes alive, otherwise it dies or stays dead. Both fields are
// bitmaps over neighbor counts 0..8 (bit i set means count i is in the set).
type Rule struct {
	Born    uint16
	Survive uint16
}

// Conway is the canonical B3/S23 rule.
var Conway = Rule{Born: 1 << 3, Survive: 1<<2 | 1<<3}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	return "B" + countsString(r.Born) + "/S" + countsString(r.Survive)
}

func countsString(bitmap uint16) string {
	var b strings.Builder
	for n := 0; n <= 8; n++ {
		if bitmap&(1<<uint(n)) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// Parse reads a rule string of the form "Bddd/Sddd" (in either B/S order),
// e.g. "B3/S23" or "S23/B3". Each clause needs at least one digit, digits
// must be 0-8 and each clause's digits must be strictly ascending, matching how original_source/hgolbi.c's rule
// strings are always emitted (and is the canonical rendering .String()
// itself produces).
func Parse(s string) (Rule, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("ruletable: invalid rule %q: want two /-separated clauses", s)
	}
	var r Rule
	sawB, sawS := false, false
	for _, part := range parts {
		if len(part) == 0 {
			return Rule{}, fmt.Errorf("ruletable: invalid rule %q: empty clause", s)
		}
		switch part[0] {
		case 'B', 'b':
			bitmap, err := parseCounts(part[1:])
			if err != nil {
				return Rule{}, fmt.Errorf("ruletable: invalid rule %q: %w", s, err)
			}
			r.Born = bitmap
			sawB = true
		case 'S', 's':
			bitmap, err := parseCounts(part[1:])
			if err != nil {
				return Rule{}, fmt.Errorf("ruletable: invalid rule %q: %w", s, err)
			}
			r.Survive = bitmap
			sawS = true
		default:
			return Rule{}, fmt.Errorf("ruletable: invalid rule %q: clause must start with B or S", s)
		}
	}
	if !sawB || !sawS {
		return Rule{}, fmt.Errorf("ruletable: invalid rule %q: must have exactly one B and one S clause", s)
	}
	return r, nil
}

func parseCounts(digits string) (uint16, error) {
	if digits == "" {
		return 0, fmt.Errorf("clause has no neighbor counts")
	}
	var bitmap uint16
	last := -1
	for _, d := range digits {
		n, err := strconv.Atoi(string(d))
		if err != nil || n < 0 || n > 8 {
			return 0, fmt.Errorf("neighbor count digit %q out of range 0-8", d)
		}
		if n <= last {
			return 0, fmt.Errorf("neighbor counts must be strictly ascending")
		}
		last = n
		bitmap |= 1 << uint(n)
	}
	return bitmap, nil
}
