package utils

import "testing"

type clockFixture struct {
	Start string `validate:"required,hhmm"`
	Day   int    `validate:"weekday"`
}

func TestCustomValidators(t *testing.T) {
	tests := []struct {
		name    string
		fixture clockFixture
		valid   bool
	}{
		{"valid", clockFixture{Start: "17:00", Day: 0}, true},
		{"saturday", clockFixture{Start: "06:30", Day: 6}, true},
		{"bad clock", clockFixture{Start: "25:00", Day: 1}, false},
		{"bad weekday high", clockFixture{Start: "17:00", Day: 7}, false},
		{"bad weekday negative", clockFixture{Start: "17:00", Day: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.fixture)
			if tt.valid && len(errs) > 0 {
				t.Errorf("unexpected validation errors: %v", errs)
			}
			if !tt.valid && len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Start": "Must be a wall-clock time in HH:MM format"})
	if out == "" {
		t.Error("empty formatted output")
	}
}
