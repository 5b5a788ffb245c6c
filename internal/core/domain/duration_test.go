package domain

import (
	"errors"
	"testing"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{in: "PT1H2M3S", want: 3723},
		{in: "PT0S", want: 0},
		{in: "PT45M", want: 2700},
		{in: "PT2H", want: 7200},
		{in: "PT15S", want: 15},
		{in: "P1DT1S", want: 86401},
	}
	for _, tt := range tests {
		got, err := ParseISODuration(tt.in)
		if err != nil {
			t.Fatalf("ParseISODuration(%q) error=%v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseISODuration(%q)=%d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseISODuration_Malformed(t *testing.T) {
	tests := []string{
		"",
		"1:02:03",
		"90 minutes",
		"TP1H",
	}
	for _, in := range tests {
		_, err := ParseISODuration(in)
		if !errors.Is(err, ErrMalformedDuration) {
			t.Fatalf("ParseISODuration(%q): expected ErrMalformedDuration, got %v", in, err)
		}
	}
}
