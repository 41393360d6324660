package basen

import (
	"bytes"
	"crypto/sha256"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ChecksumSize is the length of the tag appended by EncodeCheck.
const ChecksumSize = 4

var ErrChecksumMismatch = errors.New("checksum does not match")

// HashFunc is one application of a hash; tags use it twice.
type HashFunc func(data []byte) []byte

func SHA256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

func SHA3(data []byte) []byte {
	h := sha3.Sum256(data)
	return h[:]
}

func Blake2b(data []byte) []byte {
	h := blake2b.Sum256(data)
	return h[:]
}

var hashes = map[string]HashFunc{
	"sha256":  SHA256,
	"sha3":    SHA3,
	"blake2b": Blake2b,
}

// ParseHash looks a hash up by name; the empty name selects SHA256.
func ParseHash(name string) (HashFunc, error) {
	if name == "" {
		return SHA256, nil
	}
	h, ok := hashes[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown hash %q", name)
	}
	return h, nil
}

func (c *Codec) checksum(b []byte) []byte {
	return c.hash(c.hash(b))[:ChecksumSize]
}

// EncodeCheck appends a 4-byte double hash of b and encodes the result.
func (c *Codec) EncodeCheck(b []byte) (string, error) {
	buf := make([]byte, len(b)+ChecksumSize)
	copy(buf, b)
	copy(buf[len(b):], c.checksum(b))
	return c.encodeDigits(buf)
}

// DecodeCheck decodes text and verifies and strips the trailing tag.
func (c *Codec) DecodeCheck(text string) ([]byte, error) {
	buf, err := c.Decode(text)
	if err != nil {
		return nil, err
	}
	if len(buf) < ChecksumSize {
		return nil, errors.Wrapf(ErrChecksumMismatch, "decoded %d bytes, shorter than checksum", len(buf))
	}
	n := len(buf) - ChecksumSize
	payload, tag := buf[:n], buf[n:]
	if !bytes.Equal(c.checksum(payload), tag) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}
