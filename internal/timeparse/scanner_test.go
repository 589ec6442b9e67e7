package timeparse

import (
	"errors"
	"maps"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Counts
	}{
		{"single unit", "5s", Counts{1: 5}},
		{"multiple units", "2h 30m 15s", Counts{3600: 2, 60: 30, 1: 15}},
		{"long form units", "1 hours 30 minutes 45 seconds", Counts{3600: 1, 60: 30, 1: 45}},
		{"larger units", "1y 2mo 3d", Counts{31536000: 1, 2419200: 2, 86400: 3}},
		{"large numbers", "999h 123456s", Counts{3600: 999, 1: 123456}},
		{"duplicate units", "5m 10m", Counts{60: 15}},
		{"short and long forms merge", "5s 10seconds", Counts{1: 15}},
		{"empty string", "", Counts{}},
		{"only whitespace", " \t\n", Counts{}},
		{"number without unit", "120", Counts{60: 120}},
		{"mixed formats", "1h 90 30s", Counts{3600: 1, 60: 90, 1: 30}},
		{"no separating whitespace", "1h30m15s", Counts{3600: 1, 60: 30, 1: 15}},
		{"trailing bare number", "1h 5", Counts{3600: 1, 60: 5}},
		{"zero values", "0h 0m 0s", Counts{3600: 0, 60: 0, 1: 0}},
		{"surrounding whitespace", "  10m  ", Counts{60: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.input, DefaultUnits())
			if err != nil {
				t.Fatalf("Scan(%q) unexpected error: %v", tt.input, err)
			}
			if !maps.Equal(got, tt.want) {
				t.Errorf("Scan(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    error
		wantToken  string
		wantOffset int
	}{
		{"unknown unit", "10x", ErrUnknownUnit, "x", 2},
		{"unknown long unit", "1h 5weeks", ErrUnknownUnit, "weeks", 4},
		{"bare word", "bogus", ErrMissingNumber, "bogus", 0},
		{"unit without number", "h", ErrMissingNumber, "h", 0},
		{"case sensitive", "5H", ErrUnknownUnit, "H", 1},
		{"sub-second unit", "100ms", ErrUnknownUnit, "ms", 3},
		{"negative", "-10s", ErrInvalidCharacter, "-", 0},
		{"fractional", "1.5h", ErrInvalidCharacter, ".", 1},
		{"punctuation", "1h, 2m", ErrInvalidCharacter, ",", 2},
		{"number too large", "99999999999999999999s", ErrOverflow, "99999999999999999999", 0},
		{"accumulated overflow", "9223372036854775807s 1s", ErrOverflow, "1s", 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan(tt.input, DefaultUnits())
			if err == nil {
				t.Fatalf("Scan(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Scan(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Scan(%q) error type = %T, want *ParseError", tt.input, err)
			}
			if perr.Token != tt.wantToken {
				t.Errorf("Scan(%q) token = %q, want %q", tt.input, perr.Token, tt.wantToken)
			}
			if perr.Offset != tt.wantOffset {
				t.Errorf("Scan(%q) offset = %d, want %d", tt.input, perr.Offset, tt.wantOffset)
			}
			if perr.Input != tt.input {
				t.Errorf("Scan(%q) input = %q", tt.input, perr.Input)
			}
		})
	}
}

func TestScanCustomTable(t *testing.T) {
	table, err := NewUnitTable(map[string]int64{"w": 604800, "d": 86400, "s": 1}, 1)
	if err != nil {
		t.Fatalf("NewUnitTable() unexpected error: %v", err)
	}

	got, err := Scan("2w 3d 45", table)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	want := Counts{604800: 2, 86400: 3, 1: 45}
	if !maps.Equal(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}

	// Tokens missing from the custom table are rejected even if they are
	// part of the default table.
	if _, err := Scan("5m", table); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Scan(\"5m\") error = %v, want %v", err, ErrUnknownUnit)
	}
}

func TestCountsTotal(t *testing.T) {
	tests := []struct {
		name    string
		counts  Counts
		want    int64
		wantErr bool
	}{
		{"empty", Counts{}, 0, false},
		{"weighted sum", Counts{3600: 2, 60: 30, 1: 15}, 9015, false},
		{"zero count", Counts{86400: 0}, 0, false},
		{"product overflow", Counts{Year: 1 << 40}, 0, true},
		{"sum overflow", Counts{1: 1 << 62, 2: 1 << 61}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.counts.Total()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Total() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("Total() error = %v, want %v", err, ErrOverflow)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Total() = %d, want %d", got, tt.want)
			}
		})
	}
}
