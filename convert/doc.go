// Package convert translates between bit vectors and their decimal,
// hexadecimal and textual forms.
//
// Fixed Point
//
// Every decimal conversion takes a fixed point index: the position of the 2^0
// digit inside the vector. Bits below it are negative powers of two. A fixed
// point of zero is a plain integer.
//
//  width=4 fixedPoint=3
//
//  | 3   | 2    | 1    | 0     |
//  |-----|------|------|-------|
//  | 2^0 | 2^-1 | 2^-2 | 2^-3  |
//  |-----|------|------|-------|
//  | 0   | 0    | 1    | 0     |  0.25
//
// Values that don't fit are not wrapped: DecimalToBits sets bits greedily from
// the most significant representable power of two down to the least, so a
// magnitude larger than the vector can hold saturates to all ones (before the
// two's complement of a negative value is taken) and fractions finer than
// 2^-fixedPoint are truncated. RatToBits applies the same rule to a big.Rat
// and is exact at any width.
//
// Literals
//
// ParseLiteral reads the prefix notation used when rendering values:
//
//  <width>'<radix><digits>
//
// Where width is a positive decimal integer, radix is one of b (binary), h
// (hexadecimal) or d (decimal) and digits may contain underscores for
// grouping. For example:
//
//  8'b0000_1010   binary, most significant digit first
//  8'h0A          hexadecimal
//  8'd10          decimal, may carry a leading '-' and a fraction
package convert
