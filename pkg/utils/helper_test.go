package utils

import (
	"strings"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:30", 390, false},
		{"17:00", 1020, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"17:60", 0, true},
		{"5pm", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, input := range []string{"00:00", "06:30", "17:00", "23:59"} {
		minutes, err := ParseClock(input)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatClock(minutes); got != input {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", input, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-05")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2026 || d.Month() != 9 || d.Day() != 5 {
		t.Errorf("ParseDate = %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("ParseDate not midnight: %v", d)
	}

	if _, err := ParseDate("05-09-2026"); err == nil {
		t.Error("expected error for wrong date layout")
	}
}

func TestGenerateBookingRef(t *testing.T) {
	ref := GenerateBookingRef()
	if !strings.HasPrefix(ref, "TURF-") {
		t.Errorf("reference %q missing prefix", ref)
	}
	if len(strings.Split(ref, "-")) != 4 {
		t.Errorf("reference %q has unexpected shape", ref)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		want         int
	}{
		{"5", 1, 5},
		{"", 1, 1},
		{"abc", 7, 7},
		{"0", 3, 3},
		{"-2", 3, 3},
	}

	for _, tt := range tests {
		if got := ParseInt(tt.input, tt.defaultValue); got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.input, tt.defaultValue, got, tt.want)
		}
	}
}
