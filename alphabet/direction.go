package alphabet

import "math"

const logScale = 10000

// Direction 一个转换方向 from -> to
type Direction struct {
	from    int
	to      int
	fromLog int // ln(from)*10000 向上取整
	toLog   int // ln(to)*10000 向下取整
}

// NewDirection precomputes the scaled logarithms used by ApproximateSize.
// Rounding the source up and the target down keeps the ratio an upper bound.
func NewDirection(from, to int) Direction {
	return Direction{
		from:    from,
		to:      to,
		fromLog: int(math.Ceil(math.Log(float64(from)) * logScale)),
		toLog:   int(math.Log(float64(to)) * logScale),
	}
}

func (d Direction) From() int    { return d.from }
func (d Direction) To() int      { return d.to }
func (d Direction) FromLog() int { return d.fromLog }
func (d Direction) ToLog() int   { return d.toLog }

// ApproximateSize returns an upper bound on the number of target digits
// needed for n source digits.
func (d Direction) ApproximateSize(n int) int {
	return 1 + n*d.fromLog/d.toLog
}

// DivMod divides digits[startAt:], read as one number in base from, by to.
// The quotient replaces the digits in place and the remainder is returned.
func (d Direction) DivMod(digits []byte, startAt int) int {
	remaining := 0
	for i := startAt; i < len(digits); i++ {
		num := d.from*remaining + int(digits[i])
		digits[i] = byte(num / d.to)
		remaining = num % d.to
	}
	return remaining
}
