package vector

// Part is one piece of a concatenation: a single Bit or a whole Vector.
type Part interface {
	part() (Vector, error)
}

// Resize returns v with the given width. When growing, the new high bits are
// copies of the MSB if signed is true and zeros otherwise. When shrinking, the
// high bits are dropped without any overflow indication. A non-positive width
// yields an empty vector.
func Resize(v Vector, width int, signed bool) Vector {
	switch {
	case width <= 0:
		return Vector{}
	case width <= len(v):
		return v[:width].Clone()
	}

	fill := Zero
	if signed && v.MSB() == One {
		fill = One
	}

	r := make(Vector, width)
	copy(r, v)

	for i := len(v); i < width; i++ {
		r[i] = fill
	}

	return r
}

// Concat joins parts into a single vector. The first part occupies the most
// significant bits and the last part the least significant.
func Concat(parts ...Part) (v Vector, err error) {
	defer Error.WrapP(&err)

	pieces := make([]Vector, 0, len(parts))
	width := 0

	for i, p := range parts {
		if p == nil {
			return nil, ErrInvalidArgument.New("part[%d] is nil", i)
		}

		piece, err := p.part()
		if err != nil {
			return nil, err
		}

		pieces = append(pieces, piece)
		width += len(piece)
	}

	v = make(Vector, 0, width)
	for i := len(pieces) - 1; i >= 0; i-- {
		v = append(v, pieces[i]...)
	}

	return v, nil
}

// Invert returns the bitwise NOT of v.
func Invert(v Vector) Vector {
	r := make(Vector, len(v))

	for i, b := range v {
		r[i] = b ^ One
	}

	return r
}

// Round truncates v to width bits and adds one to the result if the bit at
// index width (the lowest discarded bit) is set. The increment wraps inside
// width bits. Width must be positive and less than the width of v.
func Round(v Vector, width int) (r Vector, err error) {
	defer Error.WrapP(&err)

	if width <= 0 || width >= len(v) {
		return nil, ErrInvalidArgument.New(
			"round: width=%d must be in [1, %d)",
			width,
			len(v),
		)
	}

	r = v[:width].Clone()

	if v[width] == One {
		increment(r)
	}

	return r, nil
}

// increment adds one to v in place, discarding the final carry.
func increment(v Vector) {
	for i := range v {
		if v[i] == Zero {
			v[i] = One

			return
		}

		v[i] = Zero
	}
}
