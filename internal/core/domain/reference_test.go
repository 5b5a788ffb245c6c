package domain

import (
	"errors"
	"testing"
)

func TestExtractPlaylistID_SupportedShapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "PL0123456789abcdefgh", want: "PL0123456789abcdefgh"},
		{in: "https://www.youtube.com/playlist?list=PL0123456789abcdefgh", want: "PL0123456789abcdefgh"},
		{in: "https://www.youtube.com/playlist?list=PL0123456789abcdefgh&other=y", want: "PL0123456789abcdefgh"},
		{in: "https://youtube.com/watch?v=jNQXAC9IVRw&list=PL0123456789abcdefgh", want: "PL0123456789abcdefgh"},
		{in: "https://m.youtube.com/playlist?list=PL0123456789abcdefgh", want: "PL0123456789abcdefgh"},
		{in: "  PL0123456789abcdefgh  ", want: "PL0123456789abcdefgh"},
	}
	for _, tt := range tests {
		got, err := ExtractPlaylistID(tt.in)
		if err != nil {
			t.Fatalf("ExtractPlaylistID(%q) error=%v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ExtractPlaylistID(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractPlaylistID_Invalid(t *testing.T) {
	tests := []string{
		"",
		"not a playlist",
		"shortid",
		"https://example.com/playlist?list=PL0123456789abcdefgh",
		"https://www.youtube.com/watch?v=jNQXAC9IVRw",
		"https://www.youtube.com/playlist?list=tooshort",
	}
	for _, in := range tests {
		_, err := ExtractPlaylistID(in)
		if !errors.Is(err, ErrInvalidPlaylistReference) {
			t.Fatalf("ExtractPlaylistID(%q): expected ErrInvalidPlaylistReference, got %v", in, err)
		}
	}
}
