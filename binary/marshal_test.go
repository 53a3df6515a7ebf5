package binary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/binop/binary"
	"github.com/calebcase/binop/vector"
)

func TestMarshalBinary(t *testing.T) {
	t.Run("layout", func(t *testing.T) {
		v := mustNew(t, binary.Int(10), binary.Width(5), binary.Signed(true), binary.Prefix(true))

		data, err := v.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, []byte{0x05, 0x00, 0b0000_0011, 0b0000_1010}, data)

		v = mustNew(t, binary.Float(24), binary.Width(12), binary.FixedPoint(4))

		data, err = v.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, []byte{0x0C, 0x08, 0b0000_0000, 0x01, 0x80}, data)
	})

	t.Run("roundtrip", func(t *testing.T) {
		values := []*binary.Value{
			mustNew(t, binary.Int(-3), binary.Width(4), binary.Signed(true)),
			mustNew(t, binary.Float(0.25), binary.Width(4), binary.FixedPoint(3)),
			mustNew(t, binary.Hex("DEADBEEF"), binary.Width(35), binary.Prefix(true)),
			mustNew(t, binary.Int(1), binary.Width(1)),
		}

		for _, v := range values {
			data, err := v.MarshalBinary()
			require.NoError(t, err)

			out := &binary.Value{}
			require.NoError(t, out.UnmarshalBinary(data))
			require.Equal(t, v.Schema(), out.Schema())
			require.Equal(t, v.Bits(), out.Bits())
			require.Equal(t, v.String(), out.String())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		tcs := [][]byte{
			nil,
			{0x00},
			{0x05},
			{0x05, 0x00},
			{0x05, 0x00, 0b0000_0100, 0x0A},
			{0x05, 0x00, 0x00, 0x0A, 0x00},
			{0x05, 0x00, 0x00, 0b0010_0000},
			{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01, 0x00, 0x00, 0x00},
		}

		for _, data := range tcs {
			out := &binary.Value{}
			err := out.UnmarshalBinary(data)
			require.Error(t, err)
			require.True(t, vector.ErrInvalidArgument.Has(err), err)
		}
	})
}
