package hashlife

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosperlife/hashlife/internal/bigint"
)

// LoadRLE reads a Run Length Encoded pattern from r and sets the
// corresponding cells alive in the Universe, with the pattern's own NW
// corner placed at (x0, y0). It accepts the grammar
// original_source/hgolbi.c's reader does: any number of leading
// '#'-comment lines, then, if hasHeader is true, exactly one further line
// consumed unconditionally as the header (an "x = W, y = H[, rule =
// B.../S...]" line; only the rule clause is used, width/height are
// informational and not otherwise validated), then row data made of
// [count]<tag> tokens where tag is one of:
//
//	b, .     dead cell(s)
//	o, x, X  live cell(s)
//	$        end of row (advances to the next row, resets column to x0)
//	!        end of pattern
//
// If the header carries a rule=, LoadRLE applies it via SetRule before
// placing any cells; otherwise the Universe's current rule is left alone.
// It returns the number of cells actually set alive by this call (not the
// Universe's total population, which may already have been non-zero
// before the call -- LoadRLE never reinitializes the Universe first).
func (u *Universe) LoadRLE(r io.Reader, x0, y0 bigint.Int256, hasHeader bool) (bigint.Uint256, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var body strings.Builder
	headerConsumed := !hasHeader
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !headerConsumed {
			headerConsumed = true
			if rule, ok := ruleFromHeader(line); ok {
				parsed, err := ParseRule(rule)
				if err != nil {
					return bigint.Zero, fmt.Errorf("%w: %v", ErrInvalidRLE, err)
				}
				u.SetRule(parsed)
			}
			continue
		}
		body.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return bigint.Zero, fmt.Errorf("%w: %v", ErrInvalidRLE, err)
	}

	return u.placeRLEBody(body.String(), x0, y0)
}

// ruleFromHeader extracts the "rule=B.../S..." clause from an RLE header
// line such as "x = 3, y = 3, rule = B3/S23", if present.
func ruleFromHeader(line string) (string, bool) {
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if idx := strings.IndexByte(field, '='); idx >= 0 {
			key := strings.TrimSpace(field[:idx])
			if strings.EqualFold(key, "rule") {
				return strings.TrimSpace(field[idx+1:]), true
			}
		}
	}
	return "", false
}

// placeRLEBody walks body's token stream, placing cells with the pattern's
// own (0, 0) mapped to (x0, y0), and returns the number of cells it set
// alive.
func (u *Universe) placeRLEBody(body string, x0, y0 bigint.Int256) (bigint.Uint256, error) {
	x, y := x0, y0
	one := bigint.FromInt64(1)
	total := bigint.Zero
	i := 0
	n := len(body)
	for i < n {
		c := body[i]
		if c >= '0' && c <= '9' {
			start := i
			for i < n && body[i] >= '0' && body[i] <= '9' {
				i++
			}
			if i >= n {
				return bigint.Zero, fmt.Errorf("%w: count %q with no following tag", ErrInvalidRLE, body[start:i])
			}
			runCount, err := strconv.Atoi(body[start:i])
			if err != nil || runCount == 0 {
				return bigint.Zero, fmt.Errorf("%w: invalid run count %q", ErrInvalidRLE, body[start:i])
			}
			tag := body[i]
			i++
			set, err := u.applyRLERun(tag, runCount, &x, &y, x0, one)
			if err != nil {
				return bigint.Zero, err
			}
			total = total.Add(set)
			continue
		}
		set, err := u.applyRLERun(c, 1, &x, &y, x0, one)
		if err != nil {
			return bigint.Zero, err
		}
		total = total.Add(set)
		i++
		if c == '!' {
			return total, nil
		}
	}
	return bigint.Zero, fmt.Errorf("%w: pattern missing terminating '!'", ErrInvalidRLE)
}

// applyRLERun applies one decoded (count, tag) token, advancing x (and y,
// for '$') in place, and returns the number of cells it set alive.
func (u *Universe) applyRLERun(tag byte, count int, x, y *bigint.Int256, x0 bigint.Int256, one bigint.Int256) (bigint.Uint256, error) {
	switch tag {
	case 'b', '.':
		for k := 0; k < count; k++ {
			u.Unset(*x, *y)
			*x = x.Add(one)
		}
		return bigint.Zero, nil
	case 'o', 'x', 'X':
		for k := 0; k < count; k++ {
			u.Set(*x, *y)
			*x = x.Add(one)
		}
		return bigint.FromUint64(uint64(count)), nil
	case '$':
		for k := 0; k < count; k++ {
			*y = y.Add(one)
		}
		*x = x0
		return bigint.Zero, nil
	case '!':
		return bigint.Zero, nil
	default:
		return bigint.Zero, fmt.Errorf("%w: unrecognized token %q", ErrInvalidRLE, string(tag))
	}
}
