package common

import (
	"errors"
	"testing"
)

func TestParseIntParam(t *testing.T) {
	cases := []struct {
		value    string
		fallback int64
		want     int64
		wantErr  bool
	}{
		{"", 19, 19, false},
		{"  ", 19, 19, false},
		{"0", 19, 0, false},
		{"7", 19, 7, false},
		{" 7 ", 19, 7, false},
		{"abc", 19, 0, true},
		{"9.5", 19, 0, true},
		{"-1", 19, 0, true},
	}
	for _, tc := range cases {
		got, err := ParseIntParam(tc.value, tc.fallback)
		if tc.wantErr {
			if !errors.Is(err, ErrNotANumber) {
				t.Fatalf("ParseIntParam(%q) err = %v, want ErrNotANumber", tc.value, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseIntParam(%q): %v", tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("ParseIntParam(%q) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestParseFloatParam(t *testing.T) {
	got, err := ParseFloatParam(" -0.969 ")
	if err != nil {
		t.Fatalf("ParseFloatParam: %v", err)
	}
	if got != -0.969 {
		t.Fatalf("ParseFloatParam = %v, want -0.969", got)
	}

	if _, err := ParseFloatParam("east"); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("expected ErrNotANumber, got %v", err)
	}
	if _, err := ParseFloatParam(""); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("expected ErrNotANumber for empty input, got %v", err)
	}
}
