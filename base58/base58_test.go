package base58

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/treeforest/basen"
	"github.com/treeforest/basen/alphabet"
)

func TestBase58(t *testing.T) {
	src := []byte("this is the example")
	e := Encode(src)
	require.Equal(t, "NK2smnfSzALMcNJ8YHsxUJMrfN", e)
	d, err := Decode(e)
	require.NoError(t, err)
	require.Equal(t, src, d)
}

func TestLeadingZeros(t *testing.T) {
	require.Equal(t, "112", Encode([]byte{0, 0, 1}))
	d, err := Decode("112")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 1}, d)
}

func TestCheck(t *testing.T) {
	src := []byte("this is the example")
	e := CheckEncode(src)
	d, err := CheckDecode(e)
	require.NoError(t, err)
	require.Equal(t, src, d)

	_, err = CheckDecode(Encode(src))
	require.True(t, errors.Is(err, basen.ErrChecksumMismatch))
}

func TestSharesPredefinedTable(t *testing.T) {
	abc, err := alphabet.Predefined(58)
	require.NoError(t, err)
	require.Same(t, abc, Codec().Alphabet())
}

func BenchmarkEncode(b *testing.B) {
	src := []byte("this is the example")
	for i := 0; i < b.N; i++ {
		_ = Encode(src)
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Decode("2Cf1ZEY1opMKrSbSgCAYAMw3epujqbUL3Rbg5Tv5omXXUd4qrK")
	}
}
