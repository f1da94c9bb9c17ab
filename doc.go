// Package hashlife implements Bill Gosper's HashLife algorithm: a
// quadtree-structured, hash-consed representation of a two-state cellular
// automaton that memoizes the result of evolving any macrocell 2^(h-2)
// generations ahead, so that sparse, large-scale or deeply periodic
// patterns (gliders, guns, spaceship fleets) advance in time far faster
// than a generation-by-generation simulation would.
//
// A Universe owns a hashcons (internal/node.Forest) and a rule-specific
// lookup table (internal/ruletable.Table); cells are addressed with
// 256-bit signed coordinates (internal/bigint.Int256) so that patterns can
// run for an astronomically large number of generations, or occupy an
// astronomically large bounding square, without overflow.
package hashlife
