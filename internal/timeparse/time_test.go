package timeparse

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"date only", "2018-10-27", time.Date(2018, 10, 27, 0, 0, 0, 0, time.UTC), false},
		{"date and time", "2018-10-27 10:30:45", time.Date(2018, 10, 27, 10, 30, 45, 0, time.UTC), false},
		{"RFC3339 with Z", "2018-10-27T10:00:00Z", time.Date(2018, 10, 27, 10, 0, 0, 0, time.UTC), false},
		{"RFC3339 with offset", "2018-10-27T10:00:00-07:00", time.Date(2018, 10, 27, 17, 0, 0, 0, time.UTC), false},
		{"slashes", "10/27/2018", time.Time{}, true},
		{"empty", "", time.Time{}, true},
		{"out of range", "2018-13-45", time.Time{}, true},
		{"text", "yesterday", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBetween(t *testing.T) {
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		want    string
		wantErr bool
	}{
		{"same instant", base, base, "0s", false},
		{"working day", base, base.Add(9*time.Hour + 30*time.Minute), "9h 30m 0s", false},
		{"sub-second dropped", base, base.Add(90*time.Second + 500*time.Millisecond), "1m 30s", false},
		{"fractional instants under a second apart", base.Add(900 * time.Millisecond), base.Add(1100 * time.Millisecond), "0s", false},
		{"fractional instants", base.Add(900 * time.Millisecond), base.Add(2*time.Second + 800*time.Millisecond), "1s", false},
		{"across days", base, base.AddDate(0, 0, 2).Add(5 * time.Hour), "2d 5h 0s", false},
		{"end before start", base, base.Add(-time.Minute), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Between(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Between() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("Between() = %q, want %q", got, tt.want)
			}
		})
	}
}
