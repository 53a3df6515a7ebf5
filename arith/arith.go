// Package arith implements fixed width binary arithmetic directly on bit
// vectors.
package arith

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/binop/vector"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("arith")

// ErrDivisionByZero is returned by Divide when the denominator is zero.
var ErrDivisionByZero = errs.Class("division by zero")

// FullAdder is a one bit adder with carry.
func FullAdder(a, b, carryIn vector.Bit) (sum, carryOut vector.Bit) {
	sum = a ^ b ^ carryIn
	carryOut = (a & b) | (carryIn & (a | b))

	return sum, carryOut
}

// Add ripples a carry through width bits of num1 and num2. If width is not
// positive it defaults to the wider operand. Bits above an operand's width
// read as zero and the final carry out is discarded, so overflow wraps.
func Add(num1, num2 vector.Vector, width int) vector.Vector {
	if width <= 0 {
		width = max(num1.Width(), num2.Width())
	}

	sum := vector.New(width)
	carry := vector.Zero

	for i := 0; i < width; i++ {
		sum[i], carry = FullAdder(num1.Bit(i), num2.Bit(i), carry)
	}

	return sum
}

// Negate returns the two's complement of num at the same width.
func Negate(num vector.Vector) vector.Vector {
	one := vector.Resize(vector.Vector{vector.One}, num.Width(), false)

	return Add(vector.Invert(num), one, num.Width())
}

// Subtract returns num1 - num2 in width bits. Both operands are zero extended
// (or truncated) to width first; callers that need num2 sign extended should
// resize it before calling. If width is not positive it defaults to the wider
// operand.
func Subtract(num1, num2 vector.Vector, width int) vector.Vector {
	if width <= 0 {
		width = max(num1.Width(), num2.Width())
	}

	return Add(
		vector.Resize(num1, width, false),
		Negate(vector.Resize(num2, width, false)),
		width,
	)
}

// Multiply returns num1 * num2 in width bits using shift and add. Operands are
// treated as unsigned and zero extended (or truncated) to width. The product
// is truncated to width bits.
//
// NOTE: The partial product for the top multiplier bit (i == width-1) is two's
// complemented before it is accumulated. That is a signed style correction
// and is not standard for unsigned multiplication. It is kept for
// compatibility with existing results; at that position only one bit of the
// multiplicand survives the shift, and the two's complement of a single bit is
// the bit itself.
func Multiply(num1, num2 vector.Vector, width int) (product vector.Vector, err error) {
	defer Error.WrapP(&err)

	if width <= 0 {
		return nil, vector.ErrInvalidArgument.New("multiply: width=%d", width)
	}

	a := vector.Resize(num1, width, false)
	b := vector.Resize(num2, width, false)

	product = vector.New(width)

	for i := 0; i < width; i++ {
		if b[i] != vector.One {
			continue
		}

		shifted := a[:width-i]
		if i == width-1 {
			shifted = Negate(shifted)
		}

		partial := vector.New(width)
		copy(partial[i:], shifted)

		product = Add(product, partial, width)
	}

	return product, nil
}

// Divide returns the quotient and remainder of numerator / denominator, both
// width bits. Operands are treated as unsigned and zero extended (or
// truncated) to width.
//
// Division is performed by repeated subtraction, so it runs in time
// proportional to the quotient.
func Divide(numerator, denominator vector.Vector, width int) (quotient, remainder vector.Vector, err error) {
	defer Error.WrapP(&err)

	if width <= 0 {
		return nil, nil, vector.ErrInvalidArgument.New("divide: width=%d", width)
	}

	if denominator.IsZero() {
		return nil, nil, ErrDivisionByZero.New("denominator=%s", denominator)
	}

	n := vector.Resize(numerator, width, false)
	d := vector.Resize(denominator, width, false)

	// A denominator with no set bits inside width would never stop the loop.
	if d.IsZero() {
		return nil, nil, ErrDivisionByZero.New(
			"denominator=%s truncated to %d bits",
			denominator,
			width,
		)
	}

	negD := Negate(d)
	one := vector.Resize(vector.Vector{vector.One}, width, false)

	quotient = vector.New(width)

	for vector.Cmp(n, d) >= 0 {
		n = Add(n, negD, width)
		quotient = Add(quotient, one, width)
	}

	return quotient, n, nil
}
