package utils

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "₹0"},
		{480, "₹480"},
		{4800, "₹4,800"},
		{9600, "₹9,600"},
		{48000, "₹48,000"},
		{560000, "₹5,60,000"},
		{12345678, "₹1,23,45,678"},
		{4800.4, "₹4,800"},
		{-9600, "-₹9,600"},
	}
	for _, tt := range tests {
		if got := FormatINR(tt.value); got != tt.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+91 98765-43210", "919876543210"},
		{"98765", "98765"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DigitsOnly(tt.in); got != tt.want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
