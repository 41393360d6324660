// Package basen encodes binary data as text in an arbitrary alphabet and
// back, keeping leading zero bytes, with an optional checksummed form.
package basen

import (
	"github.com/treeforest/basen/alphabet"
)

// Codec 编解码器
type Codec struct {
	abc      *alphabet.Alphabet
	strategy Strategy
	hash     HashFunc
}

type Option func(*Codec)

func WithStrategy(s Strategy) Option {
	return func(c *Codec) {
		c.strategy = s
	}
}

// WithHash sets the hash applied twice to build checksum tags.
func WithHash(h HashFunc) Option {
	return func(c *Codec) {
		c.hash = h
	}
}

// New returns a codec over abc. It repacks with Loop and checksums with
// SHA256 unless told otherwise.
func New(abc *alphabet.Alphabet, opts ...Option) *Codec {
	c := &Codec{abc: abc, strategy: Loop.Strategy(), hash: SHA256}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ForRadix returns a codec over the predefined alphabet for radix.
func ForRadix(radix int, opts ...Option) (*Codec, error) {
	abc, err := alphabet.Predefined(radix)
	if err != nil {
		return nil, err
	}
	return New(abc, opts...), nil
}

// ForAlphabet returns a codec over the alphabet spelled by key.
func ForAlphabet(key string, opts ...Option) (*Codec, error) {
	abc, err := alphabet.FromString(key)
	if err != nil {
		return nil, err
	}
	return New(abc, opts...), nil
}

func (c *Codec) Alphabet() *alphabet.Alphabet { return c.abc }

func (c *Codec) Strategy() Strategy { return c.strategy }

// Encode renders b as text. Every leading zero byte becomes one zero symbol.
func (c *Codec) Encode(b []byte) (string, error) {
	digits := b
	if c.strategy.Destructive() {
		digits = make([]byte, len(b))
		copy(digits, b)
	}
	return c.encodeDigits(digits)
}

// Decode parses text produced by Encode.
func (c *Codec) Decode(text string) ([]byte, error) {
	digits, err := c.abc.ToDigits(text)
	if err != nil {
		return nil, err
	}
	return c.codeDigits(digits, c.abc.Decoding())
}

// encodeDigits may consume digits.
func (c *Codec) encodeDigits(digits []byte) (string, error) {
	out, err := c.codeDigits(digits, c.abc.Encoding())
	if err != nil {
		return "", err
	}
	return c.abc.ToChars(out)
}

func (c *Codec) codeDigits(digits []byte, dir alphabet.Direction) ([]byte, error) {
	if len(digits) == 0 {
		return []byte{}, nil
	}
	zeros := countLeadingZeros(digits)
	out := make([]byte, zeros+dir.ApproximateSize(len(digits)-zeros))
	firstNonZero, err := c.strategy.Repack(dir, digits, out, zeros)
	if err != nil {
		return nil, err
	}
	// out[:zeros] 未被写入，仍为零
	return out[firstNonZero-zeros:], nil
}

func countLeadingZeros(digits []byte) int {
	z := 0
	for z < len(digits) && digits[z] == 0 {
		z++
	}
	return z
}
