// Package vector provides the fixed width bit vector used by every other
// binop package.
//
// A vector is stored least significant bit first. Index 0 is the 2^0 digit of
// an integer (or the smallest fraction digit of a fixed point number) and the
// final index holds the most significant bit, which is the sign bit for signed
// values. Rendering is always most significant bit first:
//
//  index  | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
//  |------|---|---|---|---|---|---|---|---|
//  | bits | 0 | 0 | 0 | 0 | 1 | 0 | 1 | 0 |  Vector{0, 1, 0, 1, 0, 0, 0, 0}
//  |------|---|---|---|---|---|---|---|---|
//  text     "00001010"
//
// Width
//
// The width of a vector never changes. Operations that produce a different
// width (Resize, Concat, Round) return a new vector and leave their inputs
// untouched.
//
// Resize
//
// Growing a vector extends it with zeros, or with ones when the vector is
// treated as signed and its most significant bit is set (sign extension).
// Shrinking keeps the low bits and silently drops the rest:
//
//  | 1 . 0 . 1 . 1 |                  4 bits
//  | 1 . 1 . 1 . 1 | 1 . 0 . 1 . 1 |  8 bits, signed
//  | 0 . 0 . 0 . 0 | 1 . 0 . 1 . 1 |  8 bits, unsigned
//  |         0 . 1 . 1 |              3 bits (truncated)
//
// Round
//
// Round keeps the low bits like a truncating resize but adds one to them when
// the bit immediately above the cut is set. The increment wraps within the new
// width:
//
//  | 0 . 1 | 1 . 0 . 1 |  5 bits
//          | 1 . 1 . 0 |  3 bits: 101 + 1 (bit 3 was set)
//
// Concat
//
// Concat joins parts with the first part in the most significant position:
//
//  Concat(Vector{1, 1}, One, Vector{0, 0, 1}) = "11" + "1" + "100" = "111100"
package vector
