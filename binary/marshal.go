package binary

import (
	enc "encoding/binary"
	"math/big"

	"github.com/calebcase/binop/vector"
)

// Schema flags.
const (
	flagSigned byte = 0b0000_0001
	flagPrefix byte = 0b0000_0010
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The encoding is the width (uvarint), the fixed point (varint), a flags byte
// and then the bits packed big-endian into (width+7)/8 bytes. The flags byte
// has bit 0 set for signed values and bit 1 set for prefixed values:
//
//  | width | fixed point | flags       | bits        |
//  |-------|-------------|-------------|-------------|
//  | 0x05  | 0x00        | 0b0000_0011 | 0b0000_1010 |  5'b0_1010 signed, prefixed
//  | 0x0C  | 0x08        | 0b0000_0000 | 0x01 0x80   |  12'b0001_1000_0000 fixed point 4
func (v *Value) MarshalBinary() (data []byte, err error) {
	data = enc.AppendUvarint(nil, uint64(v.schema.Width))
	data = enc.AppendVarint(data, int64(v.schema.FixedPoint))

	var flags byte
	if v.schema.Signed {
		flags |= flagSigned
	}
	if v.schema.Prefix {
		flags |= flagPrefix
	}
	data = append(data, flags)

	i := new(big.Int)
	for idx, b := range v.bits {
		i.SetBit(i, idx, uint(b))
	}

	return append(data, i.FillBytes(make([]byte, (v.schema.Width+7)/8))...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	width, n := enc.Uvarint(data)
	if n <= 0 || width == 0 {
		return vector.ErrInvalidArgument.New("bad width header")
	}
	data = data[n:]

	fixedPoint, n := enc.Varint(data)
	if n <= 0 {
		return vector.ErrInvalidArgument.New("bad fixed point header")
	}
	data = data[n:]

	if len(data) < 1 {
		return vector.ErrInvalidArgument.New("missing flags")
	}
	flags := data[0]
	data = data[1:]

	if flags&^(flagSigned|flagPrefix) != 0 {
		return vector.ErrInvalidArgument.New("unknown flags: %08b", flags)
	}

	if width > 8*uint64(len(data)) {
		return vector.ErrInvalidArgument.New("data size=%d too small for width=%d", len(data), width)
	}

	size := (width + 7) / 8
	if uint64(len(data)) != size {
		return vector.ErrInvalidArgument.New("data size=%d want %d", len(data), size)
	}

	i := new(big.Int).SetBytes(data)
	if uint64(i.BitLen()) > width {
		return vector.ErrInvalidArgument.New("bits exceed width=%d", width)
	}

	bits := vector.New(int(width))
	for idx := range bits {
		bits[idx] = vector.Bit(i.Bit(idx))
	}

	v.schema = Schema{
		Width:      int(width),
		FixedPoint: int(fixedPoint),
		Signed:     flags&flagSigned != 0,
		Prefix:     flags&flagPrefix != 0,
	}
	v.bits = bits

	return nil
}
