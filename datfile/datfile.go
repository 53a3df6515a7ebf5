// Package datfile reads hexadecimal data files.
//
// Each line holds one hexadecimal value, optionally followed by whitespace
// and anything else, or by a '/' comment:
//
//  00FE    // first sample
//  0102
//  7FFF/ max
//
// Blank and comment only lines are skipped.
package datfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/binop/convert"
	"github.com/calebcase/binop/vector"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("datfile")

// Format describes how every value in a file is interpreted.
type Format struct {
	Width      int
	FixedPoint int
	Signed     bool
}

// Reader decodes values one line at a time.
type Reader struct {
	format  Format
	scanner *bufio.Scanner

	line  int
	bits  vector.Vector
	value float64
	err   error
}

// NewReader returns a reader of r using format.
func NewReader(r io.Reader, format Format) *Reader {
	return &Reader{
		format:  format,
		scanner: bufio.NewScanner(r),
	}
}

// field returns the hexadecimal digits at the start of line.
func field(line string) string {
	end := strings.IndexFunc(line, func(r rune) bool {
		return r == '/' || unicode.IsSpace(r)
	})
	if end < 0 {
		return line
	}

	return line[:end]
}

// Next advances to the next value. It returns false at the end of input or on
// the first error, which is then available from Err.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}

	for r.scanner.Scan() {
		r.line++

		digits := field(strings.TrimLeftFunc(r.scanner.Text(), unicode.IsSpace))
		if digits == "" {
			continue
		}

		bits, err := convert.HexToBits(digits, r.format.Width)
		if err != nil {
			r.err = Error.Wrap(fmt.Errorf("line %d: %w", r.line, err))

			return false
		}

		r.bits = bits
		r.value = convert.BitsToDecimal(bits, r.format.FixedPoint, r.format.Signed)

		return true
	}

	err := r.scanner.Err()
	if err != nil {
		r.err = Error.Wrap(oops.Trace(err))
	}

	return false
}

// Line returns the line number of the current value.
func (r *Reader) Line() int { return r.line }

// Bits returns the current value's bits.
func (r *Reader) Bits() vector.Vector { return r.bits }

// Value returns the current value's decimal form.
func (r *Reader) Value() float64 { return r.value }

// Err returns the error that stopped Next, if any.
func (r *Reader) Err() error { return r.err }

// ReadAll decodes every value in r.
func ReadAll(r io.Reader, format Format) (values []float64, err error) {
	dr := NewReader(r, format)

	for dr.Next() {
		values = append(values, dr.Value())
	}

	return values, dr.Err()
}

// Each opens the named file and calls fn for every value in it. Iteration
// stops at the first error from fn.
func Each(path string, format Format, fn func(r *Reader) error) (err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(path)
	if err != nil {
		return oops.Trace(err)
	}
	defer func() {
		err = errs.Combine(err, oops.Trace(f.Close()))
	}()

	r := NewReader(f, format)
	for r.Next() {
		err = fn(r)
		if err != nil {
			return err
		}
	}

	return r.Err()
}

// Load decodes every value in the named file.
func Load(path string, format Format) (values []float64, err error) {
	err = Each(path, format, func(r *Reader) error {
		values = append(values, r.Value())

		return nil
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}
