package provider

import (
	"testing"
	"time"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"plain", "10", 10, false},
		{"zero", "0", 0, false},
		{"whitespace", " 7 ", 7, false},
		{"empty", "", 0, true},
		{"non-numeric", "abc", 0, true},
		{"float", "3.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCount("intPlayed", tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCount(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseSignedAllowsNegative(t *testing.T) {
	got, err := ParseSigned("intGoalDifference", "-5")
	if err != nil {
		t.Fatalf("ParseSigned(-5) error: %v", err)
	}
	if got != -5 {
		t.Errorf("ParseSigned(-5) = %d, want -5", got)
	}
}

func TestOptionalInt(t *testing.T) {
	if got := OptionalInt("1903"); got == nil || *got != 1903 {
		t.Errorf("OptionalInt(1903) = %v, want 1903", got)
	}
	if got := OptionalInt(""); got != nil {
		t.Errorf("OptionalInt(\"\") = %v, want nil", got)
	}
	if got := OptionalInt("not a year"); got != nil {
		t.Errorf("OptionalInt(garbage) = %v, want nil", got)
	}
}

func TestOptionalString(t *testing.T) {
	if got := OptionalString("  "); got != nil {
		t.Errorf("OptionalString(blank) = %v, want nil", got)
	}
	if got := OptionalString("x"); got == nil || *got != "x" {
		t.Errorf("OptionalString(x) = %v, want x", got)
	}
}

func TestEventTime(t *testing.T) {
	ts, err := EventTime("2025-03-15", "18:00:00")
	if err != nil {
		t.Fatalf("EventTime error: %v", err)
	}
	want := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("EventTime = %v, want %v", ts, want)
	}

	// Missing time defaults to midnight.
	ts, err = EventTime("2025-03-15", "")
	if err != nil {
		t.Fatalf("EventTime (no time) error: %v", err)
	}
	if ts.Hour() != 0 || ts.Minute() != 0 {
		t.Errorf("EventTime (no time) = %v, want midnight", ts)
	}

	if _, err := EventTime("not-a-date", "18:00:00"); err == nil {
		t.Error("EventTime(garbage) succeeded, want error")
	}
}
