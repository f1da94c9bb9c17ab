package hashlife

import "errors"

// Sentinel errors reported at the RLE, rule-parsing and window-construction
// boundaries, the places where a caller needs an actual error value rather than a (value,
// ok) pair or a silent no-op, mirroring how bart wraps its handful of
// genuinely reportable failures (bad CIDR in dumper.go) with the standard
// errors package instead of a third-party error library.
var (
	// ErrInvalidRule is returned when a rule string cannot be parsed.
	ErrInvalidRule = errors.New("hashlife: invalid rule")

	// ErrInvalidRLE is returned when an RLE pattern fails to parse.
	ErrInvalidRLE = errors.New("hashlife: invalid RLE pattern")

	// ErrCoordinateOutOfRange is returned by NewWindow when a requested
	// window is degenerate (min > max on either axis). Set, Unset and IsSet
	// do not return it.
	ErrCoordinateOutOfRange = errors.New("hashlife: coordinate out of range")
)
