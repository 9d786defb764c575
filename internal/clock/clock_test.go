package clock

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	ref := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input    string
		hour     int
		minute   int
		second   int
		hasError bool
	}{
		{"8:30", 8, 30, 0, false},
		{"08:30", 8, 30, 0, false},
		{"8:30:15", 8, 30, 15, false},
		{"17:30", 17, 30, 0, false},
		{"0:00", 0, 0, 0, false},
		{"23:59:59", 23, 59, 59, false},
		{"8:30:15:00", 0, 0, 0, true},
		{"8", 0, 0, 0, true},
		{"", 0, 0, 0, true},
		{"abc:30", 0, 0, 0, true},
		{"8:3x", 0, 0, 0, true},
		{"-1:30", 0, 0, 0, true},
		{"24:00", 0, 0, 0, true},
		{"8:60", 0, 0, 0, true},
		{"8:30:60", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := Parse(tt.input, ref)
			if tt.hasError {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %v", tt.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if result.Hour() != tt.hour || result.Minute() != tt.minute || result.Second() != tt.second {
				t.Errorf("Parse(%q) = %v, want %02d:%02d:%02d", tt.input, result, tt.hour, tt.minute, tt.second)
			}
			if result.Year() != ref.Year() || result.Month() != ref.Month() || result.Day() != ref.Day() {
				t.Errorf("Parse(%q) should be anchored to the reference day, got %v", tt.input, result)
			}
			if result.Location() != ref.Location() {
				t.Errorf("Parse(%q) location = %v, want %v", tt.input, result.Location(), ref.Location())
			}
		})
	}
}

func TestParseSpan(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		hasError bool
	}{
		{"39:00", 39 * time.Hour, false},
		{"7:48", 7*time.Hour + 48*time.Minute, false},
		{"0:30", 30 * time.Minute, false},
		{"1:30:05", time.Hour + 30*time.Minute + 5*time.Second, false},
		{"39", 0, true},
		{"1:2:3:4", 0, true},
		{"x:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseSpan(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("ParseSpan(%q) expected error, got %v", tt.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpan(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseSpan(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseInterval(t *testing.T) {
	ref := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input    string
		expected time.Duration
		hasError bool
	}{
		{"9:00-9:30", 30 * time.Minute, false},
		{"9:30-9:00", 30 * time.Minute, false},
		{"12:00-12:40", 40 * time.Minute, false},
		{"9:00-9:00", 0, false},
		{"9:00:30-9:01:00", 30 * time.Second, false},
		{"9:00", 0, true},
		{"9:00-bad", 0, true},
		{"bad-9:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseInterval(tt.input, ref)
			if tt.hasError {
				if err == nil {
					t.Errorf("ParseInterval(%q) expected error, got %v", tt.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInterval(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseInterval(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"h m s", time.Hour + 30*time.Minute + 5*time.Second, "01:30:05"},
		{"negative is absolute", -(18 * time.Minute), "00:18:00"},
		{"over a day", 25*time.Hour + 1*time.Minute, "25:01:00"},
		{"sub-second truncated", 500 * time.Millisecond, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHMS(tt.input); got != tt.expected {
				t.Errorf("FormatHMS(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{"goal", 7*time.Hour + 48*time.Minute, "7.8"},
		{"plain half", 7*time.Hour + 30*time.Minute, "7.5"},
		{"short remainder", 18 * time.Minute, "0.3"},
		{"negative is absolute", -(2*time.Hour + 45*time.Minute), "2.75"},
		{"seconds ignored", time.Hour + 59*time.Second, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHours(tt.input); got != tt.expected {
				t.Errorf("FormatHours(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(96.1538461); got != 96.15 {
		t.Errorf("Round2(96.1538461) = %v, want 96.15", got)
	}
	if got := Round2(96.156); got != 96.16 {
		t.Errorf("Round2(96.156) = %v, want 96.16", got)
	}
}
