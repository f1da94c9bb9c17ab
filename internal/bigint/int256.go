package bigint

// Int256 is a signed 256-bit integer in two's-complement representation,
// sharing its word layout with Uint256 (original_source/bitl.h typedefs
// intbig_t as exactly the uintbig_t struct — same bits, different
// interpretation of the top bit).
type Int256 struct {
	u Uint256
}

// signBit is the index of the sign bit within the 256-bit word.
const signBit = Bits - 1

// IntZero is 0.
var IntZero = Int256{}

// IntMin is the smallest representable Int256 (-2^255).
var IntMin = Int256{u: Uint256{w: [words]uint64{0, 0, 0, 1 << 63}}}

// IntMax is the largest representable Int256 (2^255 - 1).
var IntMax = Int256{u: Uint256{w: [words]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0) >> 1}}}

// FromInt64 widens an int64 into an Int256.
func FromInt64(v int64) Int256 {
	var u Uint256
	if v < 0 {
		u = Uint256{w: [words]uint64{uint64(v), ^uint64(0), ^uint64(0), ^uint64(0)}}
	} else {
		u = FromUint64(uint64(v))
	}
	return Int256{u: u}
}

// AsUint reinterprets a's bit pattern as a Uint256, with no translation.
func (a Int256) AsUint() Uint256 { return a.u }

// FromUint reinterprets u's bit pattern as an Int256, with no translation.
func FromUint(u Uint256) Int256 { return Int256{u: u} }

// signFlip is the bit pattern with only the sign bit set: 2^255.
var signFlip = FromUint64(1).Lsh(signBit)

// UnsignedDomain maps a signed coordinate into the unsigned domain used for
// interval arithmetic, per the translation x_u = UINTBIG_MAX - INTBIG_MAX +
// x this module's coordinate system specifies: since UINTBIG_MAX -
// INTBIG_MAX == 2^255, that addition is exactly a sign-bit flip of a's
// two's-complement bit pattern, which is also why the mapping is
// order-preserving (monotonic) end to end.
func UnsignedDomain(a Int256) Uint256 {
	return a.u.Xor(signFlip)
}

// SignedFromDomain is the inverse of UnsignedDomain.
func SignedFromDomain(u Uint256) Int256 {
	return Int256{u: u.Xor(signFlip)}
}

// IsNegative reports whether a's sign bit is set.
func (a Int256) IsNegative() bool {
	return a.u.Bit(signBit) == 1
}

// IsZero reports whether a is zero.
func (a Int256) IsZero() bool {
	return a.u.IsZero()
}

// Neg returns -a.
func (a Int256) Neg() Int256 {
	return Int256{u: a.u.Not().Add(FromUint64(1))}
}

// Abs returns |a|.
func (a Int256) Abs() Int256 {
	if a.IsNegative() {
		return a.Neg()
	}
	return a
}

// Add returns a + b (wrapping on overflow, as the unsigned representation
// does).
func (a Int256) Add(b Int256) Int256 {
	return Int256{u: a.u.Add(b.u)}
}

// Sub returns a - b.
func (a Int256) Sub(b Int256) Int256 {
	return Int256{u: a.u.Sub(b.u)}
}

// Cmp returns a negative, zero or positive int as a is lower, equal to or
// higher than b, honoring sign.
func (a Int256) Cmp(b Int256) int {
	an, bn := a.IsNegative(), b.IsNegative()
	switch {
	case an && !bn:
		return -1
	case !an && bn:
		return 1
	default:
		return a.u.Cmp(b.u)
	}
}

// String renders a in base-10 decimal.
func (a Int256) String() string {
	if a.IsNegative() {
		return "-" + a.Abs().u.String()
	}
	return a.u.String()
}
