package basen

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/treeforest/basen/alphabet"
	"github.com/treeforest/basen/internal/fixture"
)

const fox = "the quick brown fox jumps over the lazy dog"

func mustCodec(t testing.TB, radix int, id StrategyID) *Codec {
	abc, err := alphabet.Predefined(radix)
	require.NoError(t, err)
	return id.NewCodec(abc)
}

func TestEncodeDecodeSamples(t *testing.T) {
	set, err := fixture.Load("testdata/samples")
	require.NoError(t, err)
	require.NotEmpty(t, set.Encodes)

	for _, id := range Strategies() {
		for _, s := range set.Encodes {
			bin := set.Bins[s.Name]
			codec := mustCodec(t, s.Radix, id)

			encoded, err := codec.Encode(bin)
			require.NoError(t, err)
			require.Equal(t, s.Text, encoded, "%s %s.e%d", id, s.Name, s.Radix)

			decoded, err := codec.Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, bin, decoded, "%s %s.e%d", id, s.Name, s.Radix)
		}
	}
}

func TestEncodeVectors(t *testing.T) {
	codec := mustCodec(t, 58, Loop)

	encoded, err := codec.Encode([]byte(fox))
	require.NoError(t, err)
	require.Equal(t, "9aMVMYHHtr2a2wF61xEqKskeCwxniaf4m7FeCivEGBzLhSEwB6NEdfeySxW", encoded)

	encoded, err = codec.Encode([]byte("this is the example"))
	require.NoError(t, err)
	require.Equal(t, "NK2smnfSzALMcNJ8YHsxUJMrfN", encoded)

	encoded, err = codec.Encode([]byte{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, "112", encoded)
}

func TestEmpty(t *testing.T) {
	for _, id := range Strategies() {
		for _, radix := range alphabet.Radices() {
			codec := mustCodec(t, radix, id)

			encoded, err := codec.Encode(nil)
			require.NoError(t, err)
			require.Equal(t, "", encoded)

			decoded, err := codec.Decode("")
			require.NoError(t, err)
			require.NotNil(t, decoded)
			require.Len(t, decoded, 0)
		}
	}
}

func TestLeadingZeros(t *testing.T) {
	for _, id := range Strategies() {
		for _, radix := range alphabet.Radices() {
			codec := mustCodec(t, radix, id)
			zero := string(codec.Alphabet().Zero())

			for k := 0; k < 5; k++ {
				for _, tail := range [][]byte{nil, {1}, {0xff, 0}, {0x80, 0, 0, 7}} {
					b := append(make([]byte, k), tail...)
					encoded, err := codec.Encode(b)
					require.NoError(t, err)

					prefix := strings.Repeat(zero, k)
					require.True(t, strings.HasPrefix(encoded, prefix), "%s radix %d: %q", id, radix, encoded)
					require.False(t, strings.HasPrefix(encoded, prefix+zero), "%s radix %d: %q", id, radix, encoded)

					decoded, err := codec.Decode(encoded)
					require.NoError(t, err)
					require.Equal(t, b, decoded)
				}
			}
		}
	}
}

func TestDecodeLeadingZeroSymbols(t *testing.T) {
	codec := mustCodec(t, 58, BigInt)
	decoded, err := codec.Decode("1112")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 1}, decoded)

	decoded, err = codec.Decode("111")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0}, decoded)
}

func TestRoundTripStrategiesAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(58))
	for _, radix := range alphabet.Radices() {
		loop := mustCodec(t, radix, Loop)
		bigInt := mustCodec(t, radix, BigInt)
		for size := 0; size < 80; size++ {
			b := make([]byte, size)
			rnd.Read(b)
			if size%7 == 0 && size > 0 {
				b[0] = 0
			}

			l, err := loop.Encode(b)
			require.NoError(t, err)
			r, err := bigInt.Encode(b)
			require.NoError(t, err)
			require.Equal(t, l, r, "radix %d size %d", radix, size)

			for _, codec := range []*Codec{loop, bigInt} {
				decoded, err := codec.Decode(l)
				require.NoError(t, err)
				require.True(t, bytes.Equal(b, decoded), "radix %d size %d", radix, size)
			}
		}
	}
}

func TestLargeInput(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	b := make([]byte, 4096)
	rnd.Read(b)
	for _, radix := range []int{2, 58, 67} {
		loop := mustCodec(t, radix, Loop)
		bigInt := mustCodec(t, radix, BigInt)

		l, err := loop.Encode(b)
		require.NoError(t, err)
		r, err := bigInt.Encode(b)
		require.NoError(t, err)
		require.Equal(t, l, r)

		decoded, err := loop.Decode(l)
		require.NoError(t, err)
		require.Equal(t, b, decoded)
	}
}

func TestEncodeKeepsInput(t *testing.T) {
	b := []byte{0, 1, 2, 3, 250}
	orig := append([]byte(nil), b...)
	for _, id := range Strategies() {
		_, err := mustCodec(t, 58, id).Encode(b)
		require.NoError(t, err)
		require.Equal(t, orig, b)
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	for _, id := range Strategies() {
		codec := mustCodec(t, 58, id)
		for _, text := range []string{"0", "2l", "abcO", "zz I"} {
			_, err := codec.Decode(text)
			var invalid *alphabet.InvalidCharacterError
			require.True(t, errors.As(err, &invalid), "%q", text)
			require.Equal(t, text[invalid.Pos], byte(invalid.Char))
		}
	}
}

func TestDecodeMalformedUTF8(t *testing.T) {
	codec, err := ForAlphabet("ab\uFFFD")
	require.NoError(t, err)
	for _, text := range []string{"\xfe\xfe", "ab\xff"} {
		out, err := codec.Decode(text)
		var invalid *alphabet.InvalidCharacterError
		require.True(t, errors.As(err, &invalid), "%q", text)
		require.Nil(t, out)
	}
}

func TestCustomAlphabet(t *testing.T) {
	codec, err := ForAlphabet("01")
	require.NoError(t, err)
	encoded, err := codec.Encode([]byte{0, 5})
	require.NoError(t, err)
	require.Equal(t, "0101", encoded)

	same, err := ForRadix(2)
	require.NoError(t, err)
	require.Same(t, codec.Alphabet(), same.Alphabet())

	_, err = ForAlphabet("aa")
	require.True(t, errors.Is(err, alphabet.ErrDuplicateSymbol))

	_, err = ForRadix(3)
	var unknown *alphabet.UnknownRadixError
	require.True(t, errors.As(err, &unknown))
}

func TestUnicodeCodec(t *testing.T) {
	codec, err := ForAlphabet("😀😃😄😁😆😅🤣😂")
	require.NoError(t, err)

	b := []byte{0, 0xde, 0xad, 0xbe, 0xef}
	encoded, err := codec.Encode(b)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "😀"))

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, b, decoded)
}

func BenchmarkEncode(b *testing.B) {
	src := []byte(fox)
	for _, id := range Strategies() {
		codec := mustCodec(b, 58, id)
		b.Run(id.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = codec.Encode(src)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, id := range Strategies() {
		codec := mustCodec(b, 58, id)
		b.Run(id.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = codec.Decode("9aMVMYHHtr2a2wF61xEqKskeCwxniaf4m7FeCivEGBzLhSEwB6NEdfeySxW")
			}
		})
	}
}
