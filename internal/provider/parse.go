package provider

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors shared by all provider packages. Empty results are
// deliberately failures: an empty table from a flaky free tier is not
// trusted as "really empty", it triggers the fallback ladder.
var (
	ErrEmptyResult    = errors.New("provider returned an empty result")
	ErrLeagueNotFound = errors.New("league not found in provider league list")
	ErrTeamNotFound   = errors.New("team not found by name search")
)

// ParseCount parses a non-negative integer stat field.
//
// TheSportsDB serves every numeric as a string ("intPlayed":"10"); the paid
// provider serves real numbers. A field that fails to parse poisons the sum
// invariants (won+draw+lost, goal difference), so the error is surfaced and
// the whole row is rejected upstream — never silently coerced to zero.
func ParseCount(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("field %s is empty", field)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not an integer", field, raw)
	}
	return n, nil
}

// ParseSigned parses an integer field that may legitimately be negative
// (goal difference).
func ParseSigned(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("field %s is empty", field)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not an integer", field, raw)
	}
	return n, nil
}

// OptionalInt parses an integer field where absence is fine: unknown or
// malformed values map to nil rather than an error. Used for fields that no
// invariant depends on (founding year).
func OptionalInt(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// OptionalString maps empty provider strings to nil.
func OptionalString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// IntPtr returns a pointer to n. Score literals in normalization code and
// tests read better with it.
func IntPtr(n int) *int { return &n }

// EventTime assembles an event's UTC timestamp from TheSportsDB's split
// date ("2025-03-15") and time ("18:00:00") fields. A missing time defaults
// to midnight, matching the upstream convention.
func EventTime(dateEvent, strTime string) (time.Time, error) {
	if strTime == "" {
		strTime = "00:00:00"
	}
	ts, err := time.Parse(time.RFC3339, dateEvent+"T"+strTime+"Z")
	if err != nil {
		return time.Time{}, fmt.Errorf("event timestamp %q %q: %w", dateEvent, strTime, err)
	}
	return ts, nil
}
