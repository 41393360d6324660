package basen

import (
	"math/rand"
	"testing"

	"github.com/eknkc/basex"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
	"github.com/treeforest/basen/alphabet"
)

func TestBase58Interop(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, id := range Strategies() {
		codec := mustCodec(t, 58, id)
		for size := 1; size < 64; size++ {
			b := make([]byte, size)
			rnd.Read(b)
			if size%5 == 0 {
				b[0] = 0
			}

			ours, err := codec.Encode(b)
			require.NoError(t, err)
			require.Equal(t, base58.Encode(b), ours)

			theirs, err := base58.Decode(ours)
			require.NoError(t, err)
			require.Equal(t, b, theirs)
		}
	}
}

func TestBaseXInterop(t *testing.T) {
	rnd := rand.New(rand.NewSource(62))
	for _, radix := range []int{16, 36, 58, 62, 67} {
		key, _ := alphabet.Table(radix)
		enc, err := basex.NewEncoding(key)
		require.NoError(t, err)

		codec := mustCodec(t, radix, Loop)
		for size := 1; size < 48; size++ {
			b := make([]byte, size)
			rnd.Read(b)

			ours, err := codec.Encode(b)
			require.NoError(t, err)
			require.Equal(t, enc.Encode(b), ours, "radix %d", radix)

			decoded, err := codec.Decode(enc.Encode(b))
			require.NoError(t, err)
			require.Equal(t, b, decoded)
		}
	}
}
