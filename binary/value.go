// Package binary provides Value, a bit vector bound to its width, signedness,
// fixed point and display settings.
package binary

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/binop/arith"
	"github.com/calebcase/binop/convert"
	"github.com/calebcase/binop/vector"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("binary")

// ErrSignMismatch is returned when a negative value is assigned to an
// unsigned Value.
var ErrSignMismatch = errs.Class("sign mismatch")

// Schema is the metadata attached to a Value.
type Schema struct {
	// Width is the number of bits.
	Width int

	// FixedPoint is the index of the 2^0 digit; bits below it are fractions.
	FixedPoint int

	// Signed values use the MSB as a two's complement sign bit.
	Signed bool

	// Prefix adds "<width>'b" (or "<width>'h") to rendered strings.
	Prefix bool
}

// Option overrides one field of a Schema.
type Option func(*Schema)

// Width sets the number of bits.
func Width(n int) Option {
	return func(s *Schema) { s.Width = n }
}

// FixedPoint sets the index of the 2^0 digit.
func FixedPoint(n int) Option {
	return func(s *Schema) { s.FixedPoint = n }
}

// Signed sets whether the MSB is a sign bit.
func Signed(b bool) Option {
	return func(s *Schema) { s.Signed = b }
}

// Prefix sets whether rendered strings carry a width and radix prefix.
func Prefix(b bool) Option {
	return func(s *Schema) { s.Prefix = b }
}

// Source is anything a Value can be built from: Int, BigInt, Float, Bits, Hex
// or another *Value.
type Source interface {
	source()
}

// Int is a signed integer source.
type Int int64

// BigInt is an integer source of any size.
type BigInt struct {
	*big.Int
}

// Float is a (possibly fractional) decimal source.
type Float float64

// Bits is a bit vector source. It is resized to the target width.
type Bits vector.Vector

// Hex is a source of unprefixed hexadecimal digits.
type Hex string

func (Int) source() {}

func (BigInt) source() {}

func (Float) source() {}

func (Bits) source() {}

func (Hex) source() {}

func (*Value) source() {}

// Value is a fixed width binary number.
type Value struct {
	schema Schema
	bits   vector.Vector
}

// New builds a Value from src. Width may be omitted only when src is Bits or
// a *Value, in which case the source's width is used.
func New(src Source, opts ...Option) (v *Value, err error) {
	defer Error.WrapP(&err)

	schema := Schema{}
	for _, opt := range opts {
		opt(&schema)
	}

	if schema.Width == 0 {
		switch s := src.(type) {
		case Bits:
			schema.Width = len(s)
		case *Value:
			if s != nil {
				schema.Width = s.schema.Width
			}
		}
	}

	bits, err := derive(src, schema)
	if err != nil {
		return nil, err
	}

	return &Value{
		schema: schema,
		bits:   bits,
	}, nil
}

// Parse builds a Value from a "<width>'<radix><digits>" literal. The width
// comes from the literal; opts supply the remaining settings (a Width option
// is ignored).
func Parse(text string, opts ...Option) (v *Value, err error) {
	defer Error.WrapP(&err)

	schema := Schema{}
	for _, opt := range opts {
		opt(&schema)
	}

	bits, err := convert.ParseLiteral(text, schema.FixedPoint, schema.Signed)
	if err != nil {
		return nil, err
	}

	schema.Width = len(bits)

	return &Value{
		schema: schema,
		bits:   bits,
	}, nil
}

// derive computes the bits for src under schema.
func derive(src Source, schema Schema) (bits vector.Vector, err error) {
	if schema.Width <= 0 {
		return nil, vector.ErrInvalidArgument.New("width=%d: width is required", schema.Width)
	}

	switch s := src.(type) {
	case Int:
		return fromRat(new(big.Rat).SetInt64(int64(s)), schema)
	case BigInt:
		if s.Int == nil {
			return nil, vector.ErrInvalidArgument.New("nil integer")
		}

		return fromRat(new(big.Rat).SetInt(s.Int), schema)
	case Float:
		return fromDecimal(float64(s), schema)
	case Bits:
		err = vector.Vector(s).Validate()
		if err != nil {
			return nil, err
		}

		return vector.Resize(vector.Vector(s), schema.Width, schema.Signed), nil
	case Hex:
		return convert.HexToBits(string(s), schema.Width)
	case *Value:
		if s == nil {
			return nil, vector.ErrInvalidArgument.New("nil value")
		}

		return fromRat(s.Rat(), schema)
	}

	return nil, vector.ErrInvalidArgument.New("unsupported source %T", src)
}

func fromDecimal(value float64, schema Schema) (vector.Vector, error) {
	if value < 0 && !schema.Signed {
		return nil, ErrSignMismatch.New("negative value %v for unsigned", value)
	}

	return convert.DecimalToBits(value, schema.Width, schema.FixedPoint, schema.Signed)
}

func fromRat(value *big.Rat, schema Schema) (vector.Vector, error) {
	if value.Sign() < 0 && !schema.Signed {
		return nil, ErrSignMismatch.New("negative value %s for unsigned", value.RatString())
	}

	return convert.RatToBits(value, schema.Width, schema.FixedPoint, schema.Signed)
}

// Reconfigure replaces the value with src after applying opts to the current
// schema. Nothing changes if an error is returned.
func (v *Value) Reconfigure(src Source, opts ...Option) (err error) {
	defer Error.WrapP(&err)

	schema := v.schema
	for _, opt := range opts {
		opt(&schema)
	}

	bits, err := derive(src, schema)
	if err != nil {
		return err
	}

	v.schema = schema
	v.bits = bits

	return nil
}

// SetDecimal re-encodes the value from a decimal number.
func (v *Value) SetDecimal(value float64) (err error) {
	defer Error.WrapP(&err)

	bits, err := fromDecimal(value, v.schema)
	if err != nil {
		return err
	}

	v.bits = bits

	return nil
}

// SetBits replaces the stored bits. The vector must have exactly the value's
// width.
func (v *Value) SetBits(bits vector.Vector) (err error) {
	defer Error.WrapP(&err)

	if len(bits) != v.schema.Width {
		return vector.ErrInvalidArgument.New("width=%d want %d", len(bits), v.schema.Width)
	}

	err = bits.Validate()
	if err != nil {
		return err
	}

	v.bits = bits.Clone()

	return nil
}

// SetPrefix changes whether rendered strings carry a prefix.
func (v *Value) SetPrefix(prefix bool) {
	v.schema.Prefix = prefix
}

// Schema returns the value's metadata.
func (v *Value) Schema() Schema { return v.schema }

// Width returns the number of bits.
func (v *Value) Width() int { return v.schema.Width }

// FixedPoint returns the index of the 2^0 digit.
func (v *Value) FixedPoint() int { return v.schema.FixedPoint }

// Signed reports whether the MSB is a sign bit.
func (v *Value) Signed() bool { return v.schema.Signed }

// Prefix reports whether rendered strings carry a prefix.
func (v *Value) Prefix() bool { return v.schema.Prefix }

// Bits returns a copy of the stored bits.
func (v *Value) Bits() vector.Vector { return v.bits.Clone() }

// Decimal returns the numeric value of the bits. Values wider than a float64
// mantissa are rounded; use Rat for the exact value.
func (v *Value) Decimal() float64 {
	return convert.BitsToDecimal(v.bits, v.schema.FixedPoint, v.schema.Signed)
}

// Rat returns the exact numeric value of the bits.
func (v *Value) Rat() *big.Rat {
	return convert.BitsToRat(v.bits, v.schema.FixedPoint, v.schema.Signed)
}

// Hex renders the bits in hexadecimal.
func (v *Value) Hex() string {
	return convert.BitsToHex(v.bits, v.schema.Prefix)
}

// String renders the bits in binary, grouped by four.
func (v *Value) String() string {
	return convert.Format(v.bits, v.schema.Prefix)
}

func (v *Value) with(bits vector.Vector) *Value {
	return &Value{
		schema: v.schema,
		bits:   bits,
	}
}

// Add returns v + o at v's width and settings. The right operand is zero
// extended (or truncated) to v's width; overflow wraps.
func (v *Value) Add(o *Value) *Value {
	w := v.schema.Width

	return v.with(arith.Add(v.bits, vector.Resize(o.bits, w, false), w))
}

// Sub returns v - o at v's width and settings. The right operand is resized
// to v's width using its own signedness; overflow wraps.
func (v *Value) Sub(o *Value) *Value {
	w := v.schema.Width

	return v.with(arith.Subtract(v.bits, vector.Resize(o.bits, w, o.schema.Signed), w))
}

// Mul returns v * o at v's width and settings. Both operands are read as
// unsigned.
func (v *Value) Mul(o *Value) (p *Value, err error) {
	defer Error.WrapP(&err)

	bits, err := arith.Multiply(v.bits, o.bits, v.schema.Width)
	if err != nil {
		return nil, err
	}

	return v.with(bits), nil
}

// Div returns the quotient and remainder of v / o at v's width and settings.
// Both operands are read as unsigned.
func (v *Value) Div(o *Value) (q, r *Value, err error) {
	defer Error.WrapP(&err)

	qb, rb, err := arith.Divide(v.bits, o.bits, v.schema.Width)
	if err != nil {
		return nil, nil, err
	}

	return v.with(qb), v.with(rb), nil
}

// Resize returns a copy of v at a new width, sign extending when v is signed.
func (v *Value) Resize(width int) (r *Value, err error) {
	defer Error.WrapP(&err)

	if width <= 0 {
		return nil, vector.ErrInvalidArgument.New("width=%d", width)
	}

	r = v.with(vector.Resize(v.bits, width, v.schema.Signed))
	r.schema.Width = width

	return r, nil
}

// Round returns the low width bits of v rounded by the next bit up.
func (v *Value) Round(width int) (vector.Vector, error) {
	return vector.Round(v.bits, width)
}

// Slice returns bits lo through hi (inclusive) as an unsigned integer Value,
// like v[hi:lo] in Verilog. The prefix setting is kept.
func (v *Value) Slice(lo, hi int) (s *Value, err error) {
	defer Error.WrapP(&err)

	if lo < 0 || hi < lo || hi >= v.schema.Width {
		return nil, vector.ErrInvalidArgument.New("slice [%d:%d] of width=%d", hi, lo, v.schema.Width)
	}

	return &Value{
		schema: Schema{
			Width:  hi - lo + 1,
			Prefix: v.schema.Prefix,
		},
		bits: v.bits[lo : hi+1].Clone(),
	}, nil
}
