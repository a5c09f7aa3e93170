package num

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		in   float64
		want string
	}{
		{"shortest integer", Default, 10, "10"},
		{"shortest fraction", Default, 10.5, "10.5"},
		{"shortest negative", Default, -3.25, "-3.25"},
		{"shortest large", Default, 123456, "123456"},
		{"shortest negative zero", Default, math.Copysign(0, -1), "0"},
		{"fixed zero rounds up half", Fixed(0), 2.5, "3"},
		{"fixed zero rounds down", Fixed(0), 2.4, "2"},
		{"fixed zero negative half", Fixed(0), -2.5, "-3"},
		{"fixed zero negative to zero", Fixed(0), -0.4, "0"},
		{"fixed two pads", Fixed(2), 1, "1.00"},
		{"fixed two rounds", Fixed(2), 1.236, "1.24"},
		{"fixed six", Fixed(6), 5, "5.000000"},
		{"negative precision is shortest", Fixed(-4), 0.125, "0.125"},
		{"grouped integer", Format{Precision: 0, Grouping: true}, 1234, "1,234"},
		{"grouped millions", Format{Precision: 0, Grouping: true}, 1234567, "1,234,567"},
		{"grouped small", Format{Precision: 0, Grouping: true}, 12, "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Float(tt.in); got != tt.want {
				t.Errorf("Float(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPair(t *testing.T) {
	if got := Default.Pair(10, 20.5); got != "10,20.5" {
		t.Errorf("Pair = %q, want %q", got, "10,20.5")
	}
	if got := Fixed(1).Pair(1, -1); got != "1.0,-1.0" {
		t.Errorf("Pair = %q, want %q", got, "1.0,-1.0")
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{-5, "-5"},
		{math.Copysign(0, -1), "0"},
		{1e6, "1000000"},
	}
	for _, tt := range tests {
		if got := Integer(tt.in); got != tt.want {
			t.Errorf("Integer(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(1.25, 1); got != 1.3 {
		t.Errorf("Round(1.25, 1) = %v, want 1.3", got)
	}
	if got := Round(-1.25, 1); got != -1.3 {
		t.Errorf("Round(-1.25, 1) = %v, want -1.3", got)
	}
	if got := Round(math.MaxFloat64, 3); got != math.MaxFloat64 {
		t.Errorf("Round(MaxFloat64, 3) = %v, want unchanged", got)
	}
}
