package convert

import (
	"math"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/binop/arith"
	"github.com/calebcase/binop/vector"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("convert")

// DecimalToBits encodes value into width bits with the 2^0 digit at index
// fixedPoint. Negative values are stored as two's complement and are only
// allowed when signed is true.
func DecimalToBits(value float64, width, fixedPoint int, signed bool) (v vector.Vector, err error) {
	defer Error.WrapP(&err)

	switch {
	case width <= 0:
		return nil, vector.ErrInvalidArgument.New("width=%d", width)
	case math.IsNaN(value) || math.IsInf(value, 0):
		return nil, vector.ErrInvalidArgument.New("value=%v", value)
	case value < 0 && !signed:
		return nil, vector.ErrInvalidArgument.New("negative value %v for unsigned", value)
	}

	magnitude := math.Abs(value)
	v = vector.New(width)

	for idx := width - 1; idx >= 0; idx-- {
		power := math.Ldexp(1, idx-fixedPoint)

		if magnitude >= power {
			v[idx] = vector.One
			magnitude -= power
		}
	}

	if value < 0 {
		v = arith.Negate(v)
	}

	return v, nil
}

// BitsToDecimal decodes v with the 2^0 digit at index fixedPoint. When signed
// is true a set MSB marks a negative two's complement value.
func BitsToDecimal(v vector.Vector, fixedPoint int, signed bool) float64 {
	negative := signed && v.MSB() == vector.One

	magnitude := v
	if negative {
		magnitude = arith.Negate(v)
	}

	var total float64

	for i, b := range magnitude {
		if b == vector.One {
			total += math.Ldexp(1, i-fixedPoint)
		}
	}

	if negative {
		return -total
	}

	return total
}

// BitsToRat is like BitsToDecimal but exact for any width.
func BitsToRat(v vector.Vector, fixedPoint int, signed bool) *big.Rat {
	negative := signed && v.MSB() == vector.One

	magnitude := v
	if negative {
		magnitude = arith.Negate(v)
	}

	num := new(big.Int)
	for i, b := range magnitude {
		num.SetBit(num, i, uint(b))
	}

	if negative {
		num.Neg(num)
	}

	r := new(big.Rat).SetInt(num)

	return r.Mul(r, pow2(-fixedPoint))
}

// RatToBits is like DecimalToBits but exact for any width. A nil value is an
// error.
func RatToBits(value *big.Rat, width, fixedPoint int, signed bool) (v vector.Vector, err error) {
	defer Error.WrapP(&err)

	switch {
	case width <= 0:
		return nil, vector.ErrInvalidArgument.New("width=%d", width)
	case value == nil:
		return nil, vector.ErrInvalidArgument.New("nil value")
	case value.Sign() < 0 && !signed:
		return nil, vector.ErrInvalidArgument.New("negative value %s for unsigned", value.RatString())
	}

	magnitude := new(big.Rat).Abs(value)
	v = vector.New(width)

	for idx := width - 1; idx >= 0; idx-- {
		power := pow2(idx - fixedPoint)

		if magnitude.Cmp(power) >= 0 {
			v[idx] = vector.One
			magnitude.Sub(magnitude, power)
		}
	}

	if value.Sign() < 0 {
		v = arith.Negate(v)
	}

	return v, nil
}

// pow2 returns 2^exp.
func pow2(exp int) *big.Rat {
	if exp >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(exp)))
	}

	return new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(-exp)))
}
