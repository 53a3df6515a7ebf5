package arith_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/calebcase/binop/arith"
	"github.com/calebcase/binop/vector"
)

func drawVector(t *rapid.T, label string, min, max int) vector.Vector {
	width := rapid.IntRange(min, max).Draw(t, label+".width")
	bits := rapid.SliceOfN(rapid.IntRange(0, 1), width, width).Draw(t, label+".bits")

	v := vector.New(width)
	for i, b := range bits {
		v[i] = vector.Bit(b)
	}

	return v
}

// toBig reads v as an unsigned integer.
func toBig(v vector.Vector) *big.Int {
	i := new(big.Int)
	for idx, b := range v {
		i.SetBit(i, idx, uint(b))
	}

	return i
}

// modulus returns 2^width.
func modulus(width int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(width))
}

func TestFullAdder(t *testing.T) {
	type TC struct {
		A, B, C  vector.Bit
		Sum, Out vector.Bit
	}

	tcs := []TC{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 0, 1},
		{1, 0, 0, 1, 0},
		{1, 0, 1, 0, 1},
		{1, 1, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d%d%d", tc.A, tc.B, tc.C), func(t *testing.T) {
			sum, out := arith.FullAdder(tc.A, tc.B, tc.C)
			require.Equal(t, tc.Sum, sum)
			require.Equal(t, tc.Out, out)
		})
	}
}

func TestAdd(t *testing.T) {
	type TC struct {
		A, B   string
		Width  int
		Output string
		Mark   error
	}

	tcs := []TC{
		{A: "01010", B: "00001", Width: 5, Output: "01011", Mark: oops.New("unexpected")},
		{A: "01010", B: "01000", Width: 5, Output: "10010", Mark: oops.New("unexpected")},
		{A: "1111", B: "0001", Width: 4, Output: "0000", Mark: oops.New("unexpected")},
		{A: "1111", B: "0001", Width: 0, Output: "0000", Mark: oops.New("unexpected")},
		{A: "11", B: "0001", Width: 0, Output: "0100", Mark: oops.New("unexpected")},
		{A: "00001010", B: "00001000", Width: 8, Output: "00010010", Mark: oops.New("unexpected")},
		{A: "1111", B: "1111", Width: 2, Output: "10", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s+%s", i, tc.A, tc.B), func(t *testing.T) {
			out := arith.Add(vector.MustParse(tc.A), vector.MustParse(tc.B), tc.Width)
			require.Equal(t, tc.Output, out.String(), tc.Mark)
		})
	}

	t.Run("modular", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := drawVector(t, "a", 1, 96)
			b := vector.Resize(drawVector(t, "b", 1, 96), a.Width(), false)

			want := new(big.Int).Add(toBig(a), toBig(b))
			want.Mod(want, modulus(a.Width()))

			got := toBig(arith.Add(a, b, a.Width()))
			if got.Cmp(want) != 0 {
				t.Fatalf("%s + %s = %s want %s", a, b, got, want)
			}
		})
	})
}

func TestNegate(t *testing.T) {
	require.Equal(t, "11111", arith.Negate(vector.MustParse("00001")).String())
	require.Equal(t, "10110", arith.Negate(vector.MustParse("01010")).String())
	require.Equal(t, "1000", arith.Negate(vector.MustParse("1000")).String())
	require.Equal(t, "0000", arith.Negate(vector.MustParse("0000")).String())
	require.Equal(t, "1", arith.Negate(vector.MustParse("1")).String())

	t.Run("identity", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := drawVector(t, "a", 1, 128)

			sum := arith.Add(a, arith.Negate(a), a.Width())
			if sum.Width() != a.Width() || !sum.IsZero() {
				t.Fatalf("%s + -%s = %s", a, a, sum)
			}
		})
	})
}

func TestSubtract(t *testing.T) {
	type TC struct {
		A, B   string
		Width  int
		Output string
	}

	tcs := []TC{
		{A: "01010", B: "01000", Width: 5, Output: "00010"},
		{A: "00001000", B: "00001010", Width: 8, Output: "11111110"},
		{A: "0000", B: "0001", Width: 4, Output: "1111"},
		{A: "0101", B: "11", Width: 0, Output: "0010"},
		{A: "1", B: "1", Width: 6, Output: "000000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s-%s", i, tc.A, tc.B), func(t *testing.T) {
			out := arith.Subtract(vector.MustParse(tc.A), vector.MustParse(tc.B), tc.Width)
			require.Equal(t, tc.Output, out.String())
		})
	}
}

func TestMultiply(t *testing.T) {
	t.Run("examples", func(t *testing.T) {
		type TC struct {
			A, B   string
			Width  int
			Output string
		}

		tcs := []TC{
			// 10 * 8 = 80
			{A: "01010", B: "00001000", Width: 7, Output: "1010000"},
			{A: "0011", B: "0011", Width: 4, Output: "1001"},
			{A: "1111", B: "1111", Width: 4, Output: "0001"},
			{A: "0111", B: "1000", Width: 4, Output: "1000"},
			{A: "0110", B: "1000", Width: 4, Output: "0000"},
			{A: "0", B: "1", Width: 3, Output: "000"},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("%02d/%s*%s", i, tc.A, tc.B), func(t *testing.T) {
				out, err := arith.Multiply(vector.MustParse(tc.A), vector.MustParse(tc.B), tc.Width)
				require.NoError(t, err)
				require.Equal(t, tc.Output, out.String(), spew.Sdump(out))
			})
		}
	})

	t.Run("width", func(t *testing.T) {
		_, err := arith.Multiply(vector.MustParse("1"), vector.MustParse("1"), 0)
		require.Error(t, err)
		require.True(t, vector.ErrInvalidArgument.Has(err))
	})

	t.Run("modular", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := drawVector(t, "a", 1, 24)
			b := drawVector(t, "b", 1, 24)
			width := rapid.IntRange(1, 32).Draw(t, "width")

			m := modulus(width)
			want := new(big.Int).Mul(
				new(big.Int).Mod(toBig(a), m),
				new(big.Int).Mod(toBig(b), m),
			)
			want.Mod(want, m)

			out, err := arith.Multiply(a, b, width)
			if err != nil {
				t.Fatal(err)
			}

			if got := toBig(out); got.Cmp(want) != 0 {
				t.Fatalf("%s * %s (width=%d) = %s want %s", a, b, width, got, want)
			}
		})
	})
}

func TestDivide(t *testing.T) {
	t.Run("examples", func(t *testing.T) {
		type TC struct {
			N, D      string
			Width     int
			Quotient  string
			Remainder string
		}

		tcs := []TC{
			// 10 / 8 = 1 r 2
			{N: "01010", D: "00001000", Width: 7, Quotient: "0000001", Remainder: "0000010"},
			{N: "1111", D: "0011", Width: 4, Quotient: "0101", Remainder: "0000"},
			{N: "0010", D: "0011", Width: 4, Quotient: "0000", Remainder: "0010"},
			{N: "1111", D: "0001", Width: 4, Quotient: "1111", Remainder: "0000"},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("%02d/%s/%s", i, tc.N, tc.D), func(t *testing.T) {
				q, r, err := arith.Divide(vector.MustParse(tc.N), vector.MustParse(tc.D), tc.Width)
				require.NoError(t, err)
				require.Equal(t, tc.Quotient, q.String())
				require.Equal(t, tc.Remainder, r.String())
			})
		}
	})

	t.Run("zero", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			n := drawVector(t, "n", 0, 64)
			dw := rapid.IntRange(0, 64).Draw(t, "d.width")
			width := rapid.IntRange(1, 64).Draw(t, "width")

			_, _, err := arith.Divide(n, vector.New(dw), width)
			if !arith.ErrDivisionByZero.Has(err) {
				t.Fatalf("expected division by zero, got %v", err)
			}
		})
	})

	t.Run("truncated to zero", func(t *testing.T) {
		_, _, err := arith.Divide(vector.MustParse("0101"), vector.MustParse("1000"), 3)
		require.Error(t, err)
		require.True(t, arith.ErrDivisionByZero.Has(err))
	})

	t.Run("width", func(t *testing.T) {
		_, _, err := arith.Divide(vector.MustParse("0101"), vector.MustParse("1"), 0)
		require.Error(t, err)
		require.True(t, vector.ErrInvalidArgument.Has(err))
	})

	t.Run("quotient remainder", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			width := rapid.IntRange(1, 10).Draw(t, "width")
			n := drawVector(t, "n", width, width)
			d := drawVector(t, "d", width, width)
			if d.IsZero() {
				d[0] = vector.One
			}

			q, r, err := arith.Divide(n, d, width)
			if err != nil {
				t.Fatal(err)
			}

			wantQ, wantR := new(big.Int).QuoRem(toBig(n), toBig(d), new(big.Int))
			if toBig(q).Cmp(wantQ) != 0 || toBig(r).Cmp(wantR) != 0 {
				t.Fatalf("%s / %s = %s r %s want %s r %s", n, d, q, r, wantQ, wantR)
			}
		})
	})
}
