package convert

import (
	"strconv"
	"strings"

	"github.com/calebcase/binop/vector"
)

const hexDigits = "0123456789ABCDEF"

// nibble returns the value of a hexadecimal digit.
func nibble(c byte) (n byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// HexToBits decodes unprefixed hexadecimal digits (either case) into width
// bits. Each digit fills four bits, last digit in the lowest nibble. Width
// must hold every digit.
func HexToBits(text string, width int) (v vector.Vector, err error) {
	defer Error.WrapP(&err)

	switch {
	case width <= 0:
		return nil, vector.ErrInvalidArgument.New("width=%d", width)
	case width < 4*len(text):
		return nil, vector.ErrInvalidArgument.New(
			"width=%d too small for %d hex digits in %q",
			width,
			len(text),
			text,
		)
	}

	v = vector.New(width)

	for i := 0; i < len(text); i++ {
		c := text[len(text)-1-i]

		n, ok := nibble(c)
		if !ok {
			return nil, vector.ErrInvalidArgument.New("not a hex digit: %q in %q", c, text)
		}

		for j := 0; j < 4; j++ {
			v[i*4+j] = vector.Bit(n >> j & 1)
		}
	}

	return v, nil
}

// BitsToHex renders v as upper case hexadecimal digits. The bits are grouped
// into nibbles from the least significant end, so a width that isn't a
// multiple of four leaves a short top digit. When prefix is true the digits
// follow "<width>'h".
func BitsToHex(v vector.Vector, prefix bool) string {
	digits := (v.Width() + 3) / 4
	out := make([]byte, digits)

	for i := 0; i < digits; i++ {
		var n byte
		for j := 0; j < 4; j++ {
			n |= byte(v.Bit(i*4+j)) << j
		}

		out[digits-1-i] = hexDigits[n]
	}

	if prefix {
		return strconv.Itoa(v.Width()) + "'h" + string(out)
	}

	return string(out)
}

// HexToDecimal decodes hexadecimal digits into width bits and returns their
// decimal value.
func HexToDecimal(text string, width, fixedPoint int, signed bool) (value float64, err error) {
	v, err := HexToBits(text, width)
	if err != nil {
		return 0, err
	}

	return BitsToDecimal(v, fixedPoint, signed), nil
}

// DecimalToHex encodes value into width bits and renders them as unprefixed
// hexadecimal.
func DecimalToHex(value float64, width, fixedPoint int, signed bool) (text string, err error) {
	v, err := DecimalToBits(value, width, fixedPoint, signed)
	if err != nil {
		return "", err
	}

	return BitsToHex(v, false), nil
}

// Format renders v most significant bit first with an underscore between
// every group of four bits (counted from the least significant end). When
// prefix is true the digits follow "<width>'b".
func Format(v vector.Vector, prefix bool) string {
	sb := &strings.Builder{}

	if prefix {
		sb.WriteString(strconv.Itoa(v.Width()))
		sb.WriteString("'b")
	}

	for i := v.Width() - 1; i >= 0; i-- {
		if v[i] == vector.One {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}

		if i%4 == 0 && i != 0 {
			sb.WriteByte('_')
		}
	}

	return sb.String()
}
