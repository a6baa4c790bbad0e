package metrics

import (
	"math"
	"testing"
)

func TestRampUp(t *testing.T) {
	tests := []struct {
		name  string
		lines int
		check func(float64) bool
	}{
		{"empty", 0, func(v float64) bool { return v == 0 }},
		{"negative", -5, func(v float64) bool { return v == 0 }},
		{"huge", math.MaxUint32, func(v float64) bool { return v == 0 }},
		{"long", 1000, func(v float64) bool { return v <= 0.1 }},
		{"ideal", 150, func(v float64) bool { return v >= 0.99 && v <= 1 }},
		{"short", 20, func(v float64) bool { return v > 0 && v < 0.99 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RampUp(tt.lines); !tt.check(got) {
				t.Errorf("RampUp(%d) = %v", tt.lines, got)
			}
		})
	}
}

func TestCorrectness(t *testing.T) {
	tests := []struct {
		all, closed int
		want        float64
	}{
		{0, 0, 0},
		{100, 0, 0},
		{100, 100, 1},
		{0, 100, 0},
		{50, 100, 0},
		{2000, 1900, 0.95},
		{2000, 100, 0.05},
		{-1, -3, 0},
	}

	for _, tt := range tests {
		if got := Correctness(tt.all, tt.closed); got != tt.want {
			t.Errorf("Correctness(%d, %d) = %v, want %v", tt.all, tt.closed, got, tt.want)
		}
	}
}

func TestBusFactor(t *testing.T) {
	tests := []struct {
		users int
		want  float64
	}{
		{0, 0},
		{1, 0},
		{3, 0.5},
		{9, 0.8},
	}

	for _, tt := range tests {
		if got := BusFactor(tt.users); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("BusFactor(%d) = %v, want %v", tt.users, got, tt.want)
		}
	}
	if got := BusFactor(1_000_000); got <= 0.99 || got > 1 {
		t.Errorf("BusFactor(1e6) = %v, want just under 1", got)
	}
}

func TestResponsiveness(t *testing.T) {
	if got := Responsiveness(26); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Responsiveness(26) = %v, want 0.5", got)
	}
	if got := Responsiveness(0); got <= 0 || got > 0.03 {
		t.Errorf("Responsiveness(0) = %v, want about 0.023", got)
	}
	if got := Responsiveness(1000); got < 0.999 || got > 1 {
		t.Errorf("Responsiveness(1000) = %v, want about 1", got)
	}
	prev := -1.0
	for p := 0; p < 100; p += 5 {
		got := Responsiveness(p)
		if got < prev {
			t.Fatalf("Responsiveness not monotonic at %d", p)
		}
		prev = got
	}
}

func TestCompatibility(t *testing.T) {
	tests := []struct {
		spdx string
		want float64
	}{
		{"MIT", 1},
		{"LGPL-2.1", 1},
		{"Unlicense", 1},
		{"BSD-3-Clause", 1},
		{"notMIT", 0},
		{"mit", 0},
		{"GPL-3.0", 0},
		{"NOASSERTION", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := Compatibility(tt.spdx); got != tt.want {
			t.Errorf("Compatibility(%q) = %v, want %v", tt.spdx, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{math.NaN(), 0},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{-0.5, 0},
		{1.5, 1},
		{0.25, 0.25},
	}

	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
