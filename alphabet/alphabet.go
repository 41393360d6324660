// Package alphabet maps between symbols and digit values for one radix.
package alphabet

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	minRadix = 2
	maxRadix = 256
	byteBase = 256
)

// Alphabet 字母表，构造后不可变
type Alphabet struct {
	key      string
	symbols  []rune
	index    map[rune]byte
	encoding Direction
	decoding Direction
}

func build(key string) (*Alphabet, error) {
	if !utf8.ValidString(key) {
		return nil, errors.Wrapf(ErrInvalidSymbol, "key %q", key)
	}
	radix := utf8.RuneCountInString(key)
	if radix < minRadix || radix > maxRadix {
		return nil, errors.Wrapf(ErrRadix, "got %d symbols", radix)
	}

	symbols := make([]rune, 0, radix)
	index := make(map[rune]byte, radix)
	for _, r := range key {
		if _, ok := index[r]; ok {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "symbol %q", r)
		}
		index[r] = byte(len(symbols))
		symbols = append(symbols, r)
	}

	return &Alphabet{
		key:      key,
		symbols:  symbols,
		index:    index,
		encoding: NewDirection(byteBase, radix),
		decoding: NewDirection(radix, byteBase),
	}, nil
}

// Radix is the number of symbols.
func (a *Alphabet) Radix() int { return len(a.symbols) }

// String returns the symbol sequence the alphabet was built from.
func (a *Alphabet) String() string { return a.key }

// Zero is the symbol of digit 0, used for leading zero bytes.
func (a *Alphabet) Zero() rune { return a.symbols[0] }

// Encoding is the bytes -> symbols direction.
func (a *Alphabet) Encoding() Direction { return a.encoding }

// Decoding is the symbols -> bytes direction.
func (a *Alphabet) Decoding() Direction { return a.decoding }

// ToDigits maps every symbol of text to its digit value. Bytes that are
// not valid UTF-8 are invalid characters.
func (a *Alphabet) ToDigits(text string) ([]byte, error) {
	digits := make([]byte, 0, len(text))
	for pos := 0; pos < len(text); {
		r, width := utf8.DecodeRuneInString(text[pos:])
		d, ok := a.index[r]
		if !ok || (r == utf8.RuneError && width == 1) {
			return nil, &InvalidCharacterError{Char: r, Pos: pos}
		}
		digits = append(digits, d)
		pos += width
	}
	return digits, nil
}

// ToChars renders digits as symbols.
func (a *Alphabet) ToChars(digits []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(digits))
	for _, d := range digits {
		if int(d) >= len(a.symbols) {
			return "", &InvalidDigitError{Digit: d, Radix: len(a.symbols)}
		}
		sb.WriteRune(a.symbols[d])
	}
	return sb.String(), nil
}
