package fixed

import (
	"math"
	"testing"
)

func TestFixedPoint_FromInt64(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		scale int
		want  string
	}{
		{"zero", 0, 0, "0"},
		{"positive", 123, 0, "123"},
		{"negative", -456, 0, "-456"},
		{"with scale", 123, 2, "1.23"},
		{"negative with scale", -456, 3, "-0.456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromInt64(tt.value, tt.scale)
			if got.String() != tt.want {
				t.Errorf("FromInt64(%d, %d) = %s; want %s", tt.value, tt.scale, got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_Round(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		scale int
		want  string
	}{
		{"pads", 5, 2, "5.00"},
		{"exact half up", 10.125, 2, "10.13"},
		{"binary below half", 2.675, 2, "2.67"},
		{"negative half towards positive", -2.5, 0, "-2"},
		{"negative", -18.004, 2, "-18.00"},
		{"aum", 52340.6, 0, "52341"},
		{"nav", 12.34567, 4, "12.3457"},
		{"nan", math.NaN(), 2, "0.00"},
		{"positive infinity", math.Inf(1), 2, "99999999999999999.99"},
		{"negative infinity", math.Inf(-1), 0, "-9999999999999999999"},
		{"out of range", 1e25, 2, "99999999999999999.99"},
		{"negative out of range", -1e25, 2, "-99999999999999999.99"},
		{"too wide for scale", 1e18, 2, "99999999999999999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.value, tt.scale)
			if got.String() != tt.want {
				t.Errorf("Round(%v, %d) = %s; want %s", tt.value, tt.scale, got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_Largest(t *testing.T) {
	tests := []struct {
		scale int
		want  string
	}{
		{0, "9999999999999999999"},
		{2, "99999999999999999.99"},
		{4, "999999999999999.9999"},
	}

	for _, tt := range tests {
		if got := Largest(tt.scale).String(); got != tt.want {
			t.Errorf("Largest(%d) = %s; want %s", tt.scale, got, tt.want)
		}
	}
}

func TestFixedPoint_TryFromFloat64(t *testing.T) {
	if _, ok := TryFromFloat64(math.NaN()); ok {
		t.Error("expected NaN to be rejected")
	}
	if _, ok := TryFromFloat64(1e30); ok {
		t.Error("expected out of range value to be rejected")
	}
	p, ok := TryFromFloat64(0.25)
	if !ok || p.String() != "0.25" {
		t.Errorf("TryFromFloat64(0.25) = %s, %v", p, ok)
	}
}

func TestFixedPoint_Parse(t *testing.T) {
	p, err := Parse(" 101.2500 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.String() != "101.2500" {
		t.Errorf("Parse = %s; want 101.2500", p)
	}
	if _, err := Parse("n/a"); err == nil {
		t.Error("expected error for n/a")
	}
}

func TestFixedPoint_Arithmetic(t *testing.T) {
	a := FromInt(150, 2)
	b := FromInt(25, 1)

	if got := a.Add(b).String(); got != "4.00" {
		t.Errorf("Add = %s", got)
	}
	if got := a.Sub(b).String(); got != "-1.00" {
		t.Errorf("Sub = %s", got)
	}
	if got := a.Mul(b); !got.Eq(FromInt(375, 2)) {
		t.Errorf("Mul = %s", got)
	}
	if got := a.Sub(b).Abs().String(); got != "1.00" {
		t.Errorf("Abs = %s", got)
	}
	if got := a.Neg().String(); got != "-1.50" {
		t.Errorf("Neg = %s", got)
	}
}

func TestFixedPoint_Comparison(t *testing.T) {
	a := FromInt(10, 0)
	b := Round(10, 2)

	hundred := FromInt(100, 0)

	if !a.Eq(b) || a.Cmp(b) != 0 || !a.Gte(b) {
		t.Error("expected 10 and 10.00 to compare equal")
	}
	if !hundred.Gt(a) || a.Cmp(hundred) >= 0 {
		t.Error("expected 100 > 10")
	}
	if !Zero.IsZero() || !a.IsPos() || !a.Neg().IsNeg() {
		t.Error("unexpected sign predicates")
	}
	if b.Scale() != 2 {
		t.Errorf("Scale = %d; want 2", b.Scale())
	}
}

func TestFixedPoint_Text(t *testing.T) {
	text, err := Round(3.14159, 2).MarshalText()
	if err != nil || string(text) != "3.14" {
		t.Errorf("MarshalText = %q, %v", text, err)
	}

	var p Point
	if err := p.UnmarshalText([]byte("-0.50")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Eq(FromInt(-5, 1)) {
		t.Errorf("UnmarshalText = %s", p)
	}
	if err := p.UnmarshalText([]byte("abc")); err == nil {
		t.Error("expected error")
	}
}

func TestFixedPoint_Float64(t *testing.T) {
	f, ok := Round(1.5, 2).Float64()
	if !ok || f != 1.5 {
		t.Errorf("Float64 = %v, %v", f, ok)
	}
}
