package convert

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/calebcase/binop/vector"
)

// Radix selects how the digits of a literal are read.
type Radix byte

// Literal radixes.
const (
	Binary      Radix = 'b'
	Hexadecimal Radix = 'h'
	Decimal     Radix = 'd'
)

var (
	widthDigits   = regexp.MustCompile(`^[0-9]+$`)
	decimalDigits = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
)

// Literal is a parsed "<width>'<radix><digits>" string. Digits has the
// grouping underscores removed.
type Literal struct {
	Width  int
	Radix  Radix
	Digits string
}

// SplitLiteral breaks text into its width, radix and digits without decoding
// the digits.
func SplitLiteral(text string) (lit Literal, err error) {
	defer Error.WrapP(&err)

	head, tail, ok := strings.Cut(text, "'")
	if !ok {
		return lit, vector.ErrInvalidArgument.New("missing width prefix: %q", text)
	}

	if !widthDigits.MatchString(head) {
		return lit, vector.ErrInvalidArgument.New("bad width %q in %q", head, text)
	}

	lit.Width, err = strconv.Atoi(head)
	if err != nil || lit.Width <= 0 {
		return lit, vector.ErrInvalidArgument.New("bad width %q in %q", head, text)
	}

	if len(tail) == 0 {
		return lit, vector.ErrInvalidArgument.New("missing radix: %q", text)
	}

	lit.Radix = Radix(tail[0] | 0x20)
	switch lit.Radix {
	case Binary, Hexadecimal, Decimal:
	default:
		return lit, vector.ErrInvalidArgument.New("bad radix %q in %q", tail[0], text)
	}

	lit.Digits = strings.ReplaceAll(tail[1:], "_", "")
	if len(lit.Digits) == 0 {
		return lit, vector.ErrInvalidArgument.New("missing digits: %q", text)
	}

	return lit, nil
}

// ParseLiteral decodes a prefixed literal into a vector of the literal's
// width. Binary digits must fit the width and are zero extended. Decimal
// digits are an optional '-', an integer part and an optional ".fraction";
// they are encoded exactly with fixedPoint and signed (a leading '-' requires
// signed).
func ParseLiteral(text string, fixedPoint int, signed bool) (v vector.Vector, err error) {
	defer Error.WrapP(&err)

	lit, err := SplitLiteral(text)
	if err != nil {
		return nil, err
	}

	switch lit.Radix {
	case Binary:
		if len(lit.Digits) > lit.Width {
			return nil, vector.ErrInvalidArgument.New(
				"%d binary digits exceed width=%d",
				len(lit.Digits),
				lit.Width,
			)
		}

		v, err = vector.Parse(lit.Digits)
		if err != nil {
			return nil, err
		}

		return vector.Resize(v, lit.Width, false), nil
	case Hexadecimal:
		return HexToBits(lit.Digits, lit.Width)
	case Decimal:
		if !decimalDigits.MatchString(lit.Digits) {
			return nil, vector.ErrInvalidArgument.New("bad decimal digits %q", lit.Digits)
		}

		value, ok := new(big.Rat).SetString(lit.Digits)
		if !ok {
			return nil, vector.ErrInvalidArgument.New("bad decimal digits %q", lit.Digits)
		}

		return RatToBits(value, lit.Width, fixedPoint, signed)
	}

	return nil, vector.ErrInvalidArgument.New("bad radix %q", lit.Radix)
}
