package address

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/treeforest/basen"
)

func base58Codec(t *testing.T) *basen.Codec {
	c, err := basen.ForRadix(58)
	require.NoError(t, err)
	return c
}

func TestKnownAddress(t *testing.T) {
	c := base58Codec(t)
	hash160, err := hex.DecodeString("010966776006953d5567439e5e39f86a0d273bee")
	require.NoError(t, err)

	addr, err := Encode(c, 0x00, hash160)
	require.NoError(t, err)
	require.Equal(t, "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM", addr)

	version, payload, err := Decode(c, addr)
	require.NoError(t, err)
	require.Equal(t, byte(0), version)
	require.Equal(t, hash160, payload)
	require.True(t, IsValid(c, addr))
	require.False(t, IsValid(c, "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvN"))
}

func TestFromPublicKey(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	pub := elliptic.Marshal(elliptic.P256(), key.PublicKey.X, key.PublicKey.Y)

	hash160 := Hash160(pub)
	require.Len(t, hash160, 20)

	for _, radix := range []int{32, 58, 62} {
		c, err := basen.ForRadix(radix)
		require.NoError(t, err)

		addr, err := FromPublicKey(c, 0x6f, pub)
		require.NoError(t, err)

		version, payload, err := Decode(c, addr)
		require.NoError(t, err)
		require.Equal(t, byte(0x6f), version)
		require.Equal(t, hash160, payload)
	}
}

func TestDecodeErrors(t *testing.T) {
	c := base58Codec(t)

	// 只有校验码没有版本号
	bare, err := c.EncodeCheck(nil)
	require.NoError(t, err)
	_, _, err = Decode(c, bare)
	require.True(t, errors.Is(err, ErrNoVersion))

	_, _, err = Decode(c, "")
	require.True(t, errors.Is(err, basen.ErrChecksumMismatch))
}
