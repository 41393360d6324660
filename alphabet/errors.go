package alphabet

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")
	ErrRadix           = errors.New("alphabet radix must be between 2 and 256")
	ErrInvalidSymbol   = errors.New("alphabet is not valid UTF-8")
)

// InvalidCharacterError 待解码文本中出现了字母表之外的字符
type InvalidCharacterError struct {
	Char rune
	Pos  int // 字节偏移
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// InvalidDigitError 数字超出基数范围，说明转换过程本身有缺陷
type InvalidDigitError struct {
	Digit byte
	Radix int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("digit %d out of range for radix %d", e.Digit, e.Radix)
}

type UnknownRadixError struct {
	Radix int
}

func (e *UnknownRadixError) Error() string {
	return fmt.Sprintf("no predefined alphabet for radix %d", e.Radix)
}
