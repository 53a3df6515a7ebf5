package vector

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("vector")

// ErrInvalidArgument marks malformed input: bits other than 0 or 1, widths
// that don't fit the operation, unparsable text and similar contract
// violations. It is shared by the packages built on top of vector.
var ErrInvalidArgument = errs.Class("invalid argument")

// Bit is a single binary digit. Valid values are Zero and One.
type Bit uint8

// Bit values.
const (
	Zero Bit = 0
	One  Bit = 1
)

func (b Bit) part() (Vector, error) {
	if b > One {
		return nil, ErrInvalidArgument.New("bit=%d", b)
	}

	return Vector{b}, nil
}

// Vector is a fixed width sequence of bits, least significant bit first.
type Vector []Bit

// New returns an all zero vector of the given width.
func New(width int) Vector {
	if width < 0 {
		width = 0
	}

	return make(Vector, width)
}

// FromBits returns a vector holding bits (least significant first) after
// checking each is 0 or 1.
func FromBits(bits ...Bit) (v Vector, err error) {
	defer Error.WrapP(&err)

	v = Vector(bits).Clone()

	err = v.Validate()
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Parse reads a most significant bit first string of 0 and 1 characters.
// Underscores are ignored so "0000_1010" and "00001010" are equivalent.
func Parse(text string) (v Vector, err error) {
	defer Error.WrapP(&err)

	digits := strings.ReplaceAll(text, "_", "")
	if len(digits) == 0 {
		return nil, ErrInvalidArgument.New("empty bit string")
	}

	v = make(Vector, len(digits))

	for i := 0; i < len(digits); i++ {
		switch digits[len(digits)-1-i] {
		case '0':
		case '1':
			v[i] = One
		default:
			return nil, ErrInvalidArgument.New(
				"not a binary digit: %q in %q",
				digits[len(digits)-1-i],
				text,
			)
		}
	}

	return v, nil
}

// MustParse is like Parse but panics if the text cannot be parsed.
func MustParse(text string) Vector {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return v
}

func (v Vector) part() (Vector, error) {
	return v, v.Validate()
}

// Validate returns an error if any element is not 0 or 1.
func (v Vector) Validate() error {
	for i, b := range v {
		if b > One {
			return ErrInvalidArgument.New("bit[%d]=%d", i, b)
		}
	}

	return nil
}

// Width returns the number of bits in the vector.
func (v Vector) Width() int {
	return len(v)
}

// Bit returns the bit at index i, or Zero when i is outside the vector.
func (v Vector) Bit(i int) Bit {
	if i < 0 || i >= len(v) {
		return Zero
	}

	return v[i]
}

// MSB returns the most significant bit. An empty vector has a zero MSB.
func (v Vector) MSB() Bit {
	return v.Bit(len(v) - 1)
}

// IsZero reports whether every bit is zero.
func (v Vector) IsZero() bool {
	for _, b := range v {
		if b != Zero {
			return false
		}
	}

	return true
}

// Clone returns a copy that shares no storage with v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}

	c := make(Vector, len(v))
	copy(c, v)

	return c
}

// Equal reports whether both vectors have the same width and bits.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}

	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}

	return true
}

// String renders the bits most significant first without grouping.
func (v Vector) String() string {
	sb := &strings.Builder{}
	sb.Grow(len(v))

	for i := len(v) - 1; i >= 0; i-- {
		if v[i] == One {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Cmp compares a and b as unsigned integers and returns -1, 0 or +1. Vectors
// of different widths are compared as if the shorter one were zero extended.
func Cmp(a, b Vector) int {
	width := len(a)
	if len(b) > width {
		width = len(b)
	}

	for i := width - 1; i >= 0; i-- {
		x, y := a.Bit(i), b.Bit(i)

		switch {
		case x > y:
			return 1
		case x < y:
			return -1
		}
	}

	return 0
}
