package basen

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/treeforest/basen/alphabet"
)

// ErrBufferOverflow the output buffer ran out before the conversion finished.
var ErrBufferOverflow = errors.New("output buffer too small for conversion")

// Strategy 进制转换算法
type Strategy interface {
	// Repack converts from[leadingZeros:], a number in dir.From(), into
	// dir.To() digits written right-aligned into to, and returns the index
	// of the first non-zero digit written. Slots below leadingZeros are
	// never written.
	Repack(dir alphabet.Direction, from, to []byte, leadingZeros int) (int, error)
	// Destructive reports whether Repack overwrites from.
	Destructive() bool
}

type StrategyID int

const (
	Loop StrategyID = iota
	BigInt
)

var strategies = []struct {
	name     string
	strategy Strategy
}{
	{"loop", loopStrategy{}},
	{"bigint", bigIntStrategy{}},
}

// Strategies lists every available strategy.
func Strategies() []StrategyID {
	return []StrategyID{Loop, BigInt}
}

func (id StrategyID) String() string {
	return strategies[id].name
}

func (id StrategyID) Strategy() Strategy {
	return strategies[id].strategy
}

// NewCodec is shorthand for New(abc, WithStrategy(id.Strategy()), opts...).
func (id StrategyID) NewCodec(abc *alphabet.Alphabet, opts ...Option) *Codec {
	return New(abc, append([]Option{WithStrategy(id.Strategy())}, opts...)...)
}

// ParseStrategy looks a strategy up by name; the empty name selects Loop.
func ParseStrategy(name string) (StrategyID, error) {
	if name == "" {
		return Loop, nil
	}
	for i, s := range strategies {
		if strings.EqualFold(s.name, name) {
			return StrategyID(i), nil
		}
	}
	return Loop, errors.Errorf("unknown strategy %q", name)
}

// loopStrategy 长除法：每一轮对剩余数字做一次 DivMod，余数即为一位输出
type loopStrategy struct{}

func (loopStrategy) Destructive() bool { return true }

func (loopStrategy) Repack(dir alphabet.Direction, from, to []byte, leadingZeros int) (int, error) {
	startAt := leadingZeros
	j := len(to)
	firstNonZero := j
	for startAt < len(from) {
		if j <= leadingZeros {
			return 0, ErrBufferOverflow
		}
		mod := dir.DivMod(from, startAt)
		for startAt < len(from) && from[startAt] == 0 {
			startAt++
		}
		j--
		to[j] = byte(mod)
		if mod != 0 {
			firstNonZero = j
		}
	}
	return firstNonZero, nil
}

// bigIntStrategy 先累加为一个大整数，再逐次取余
type bigIntStrategy struct{}

func (bigIntStrategy) Destructive() bool { return false }

func (bigIntStrategy) Repack(dir alphabet.Direction, from, to []byte, leadingZeros int) (int, error) {
	fromBase := big.NewInt(int64(dir.From()))
	toBase := big.NewInt(int64(dir.To()))

	acc := new(big.Int)
	digit := new(big.Int)
	for _, d := range from[leadingZeros:] {
		acc.Mul(acc, fromBase)
		acc.Add(acc, digit.SetInt64(int64(d)))
	}

	j := len(to)
	firstNonZero := j
	mod := new(big.Int)
	for acc.Sign() > 0 {
		if j <= leadingZeros {
			return 0, ErrBufferOverflow
		}
		acc.DivMod(acc, toBase, mod)
		j--
		to[j] = byte(mod.Int64())
		if to[j] != 0 {
			firstNonZero = j
		}
	}
	return firstNonZero, nil
}
