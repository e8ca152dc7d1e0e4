package fixed

import (
	"math"
	"strings"

	"github.com/govalues/decimal"
)

// Point is an unsafe wrapper around decimal implementation. Caller must make sure the calculations
// are correct and will not result in an error state, otherwise it will panic
type Point struct {
	v decimal.Decimal
}

var Zero = Point{decimal.Zero}

func FromInt(value int, scale int) Point {
	return Point{must(decimal.New(int64(value), scale))}
}

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

func FromFloat64(value float64) Point {
	return Point{must(decimal.NewFromFloat64(value))}
}

// TryFromFloat64 converts value without panicking. NaN, infinities and values outside
// the decimal range are reported as not ok.
func TryFromFloat64(value float64) (Point, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero, false
	}
	d, err := decimal.NewFromFloat64(value)
	if err != nil {
		return Zero, false
	}
	return Point{d}, true
}

// Round converts value to a Point with scale digits after the decimal point, rounding
// halves towards positive infinity. NaN resolves to zero. Infinities and values too
// large for scale saturate at the largest representable magnitude with their sign.
func Round(value float64, scale int) Point {
	if math.IsNaN(value) {
		return Zero.Rescale(scale)
	}
	pow := math.Pow10(scale)
	p, ok := TryFromFloat64(math.Floor(value*pow+0.5) / pow)
	if ok {
		p = p.Rescale(scale)
	}
	if !ok || p.Scale() < scale {
		return Largest(scale).sign(value)
	}
	return p
}

// Largest is the greatest Point that keeps scale digits after the decimal point.
func Largest(scale int) Point {
	scale = min(max(scale, 0), decimal.MaxPrec)
	digits := strings.Repeat("9", decimal.MaxPrec)
	s := digits[:decimal.MaxPrec-scale]
	if scale > 0 {
		s += "." + digits[:scale]
	}
	if s[0] == '.' {
		s = "0" + s
	}
	return Point{must(decimal.Parse(s))}
}

func (p Point) sign(value float64) Point {
	if value < 0 {
		return p.Neg()
	}
	return p
}

func Parse(s string) (Point, error) {
	d, err := decimal.Parse(strings.TrimSpace(s))
	if err != nil {
		return Zero, err
	}
	return Point{d}, nil
}

func (p Point) String() string           { return p.v.String() }
func (p Point) Float64() (float64, bool) { return p.v.Float64() }
func (p Point) Scale() int               { return p.v.Scale() }

func (p Point) Abs() Point { return Point{p.v.Abs()} }
func (p Point) Neg() Point { return Point{p.v.Neg()} }

func (p Point) Add(o Point) Point { return Point{must(p.v.Add(o.v))} }
func (p Point) Sub(o Point) Point { return Point{must(p.v.Sub(o.v))} }
func (p Point) Mul(o Point) Point { return Point{must(p.v.Mul(o.v))} }

func (p Point) Eq(o Point) bool  { return p.v.Cmp(o.v) == 0 }
func (p Point) Gt(o Point) bool  { return p.v.Cmp(o.v) > 0 }
func (p Point) Gte(o Point) bool { return p.v.Cmp(o.v) >= 0 }
func (p Point) Cmp(o Point) int  { return p.v.Cmp(o.v) }

func (p Point) IsZero() bool            { return p.v.IsZero() }
func (p Point) IsPos() bool             { return p.v.IsPos() }
func (p Point) IsNeg() bool             { return p.v.IsNeg() }
func (p Point) Rescale(scale int) Point { return Point{p.v.Rescale(scale)} }

func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Point) UnmarshalText(text []byte) error {
	d, err := decimal.Parse(string(text))
	if err != nil {
		return err
	}
	p.v = d
	return nil
}

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		// Return in the happy path
		return v
	}
	panic(err)
}
