// Package address builds checksummed, versioned identifiers such as
// Bitcoin-style addresses on top of any basen codec.
package address

import (
	"crypto/sha256"

	"github.com/pkg/errors"
	"github.com/treeforest/basen"
	"golang.org/x/crypto/ripemd160"
)

var ErrNoVersion = errors.New("address has no version byte")

// Hash160 RIPEMD160(SHA256(pub))
func Hash160(pub []byte) []byte {
	hash := sha256.Sum256(pub)
	r := ripemd160.New()
	r.Write(hash[:])
	return r.Sum(nil)
}

// Encode 版本号 + 负载 + 校验码
func Encode(c *basen.Codec, version byte, payload []byte) (string, error) {
	versioned := make([]byte, len(payload)+1)
	versioned[0] = version
	copy(versioned[1:], payload)
	return c.EncodeCheck(versioned)
}

// Decode verifies the checksum and splits off the version byte.
func Decode(c *basen.Codec, addr string) (byte, []byte, error) {
	versioned, err := c.DecodeCheck(addr)
	if err != nil {
		return 0, nil, err
	}
	if len(versioned) == 0 {
		return 0, nil, ErrNoVersion
	}
	return versioned[0], versioned[1:], nil
}

// FromPublicKey encodes the Hash160 of pub under version.
func FromPublicKey(c *basen.Codec, version byte, pub []byte) (string, error) {
	return Encode(c, version, Hash160(pub))
}

func IsValid(c *basen.Codec, addr string) bool {
	_, _, err := Decode(c, addr)
	return err == nil
}
