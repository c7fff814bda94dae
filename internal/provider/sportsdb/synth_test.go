package sportsdb

import (
	"testing"

	"github.com/ffkstats/ffkstats/internal/provider"
)

func TestStatsGeneratorDeterministic(t *testing.T) {
	p := rawPlayer{ID: "1", Name: "Striker", Position: "Forward"}
	a := NewStatsGenerator(42).PlayerStat(p)
	b := NewStatsGenerator(42).PlayerStat(p)
	if a.Goals != b.Goals || a.Assists != b.Assists || a.Rating != b.Rating {
		t.Errorf("same seed produced different stats: %+v vs %+v", a, b)
	}
}

func TestStatsGeneratorPositionBias(t *testing.T) {
	gen := NewStatsGenerator(7)
	for i := 0; i < 50; i++ {
		forward := gen.PlayerStat(rawPlayer{Position: "Forward"})
		keeper := gen.PlayerStat(rawPlayer{Position: "Goalkeeper"})
		if forward.Goals < 3 {
			t.Fatalf("forward scored %d, want at least 3", forward.Goals)
		}
		if keeper.Goals != 0 {
			t.Fatalf("goalkeeper scored %d, want 0", keeper.Goals)
		}
	}
}

func TestStatsGeneratorShape(t *testing.T) {
	gen := NewStatsGenerator(1)
	stat := gen.PlayerStat(rawPlayer{
		ID: "9", Name: "Player", Position: "Midfielder",
		Nationality: "Norway", Thumb: "https://img/thumb.jpg",
	})

	if len(stat.Form) != formWindow {
		t.Errorf("form length %d, want %d", len(stat.Form), formWindow)
	}
	for _, f := range stat.Form {
		if f != provider.FormWin && f != provider.FormDraw && f != provider.FormLoss {
			t.Errorf("unexpected form entry %q", f)
		}
	}
	if stat.Rating < 6.0 || stat.Rating > 9.0 {
		t.Errorf("rating %.1f outside plausible range", stat.Rating)
	}
	if stat.Matches < 10 || stat.Matches > 15 {
		t.Errorf("matches %d outside 10..15", stat.Matches)
	}
	if stat.Image == nil || *stat.Image != "https://img/thumb.jpg" {
		t.Errorf("image = %v, want thumb", stat.Image)
	}
}

func TestStatsGeneratorFallbacks(t *testing.T) {
	gen := NewStatsGenerator(1)

	// Cutout fills in when the thumb is missing.
	stat := gen.PlayerStat(rawPlayer{Cutout: "https://img/cutout.png"})
	if stat.Image == nil || *stat.Image != "https://img/cutout.png" {
		t.Errorf("image = %v, want cutout", stat.Image)
	}

	// Blank positions are labeled, not propagated empty.
	if stat.Position != "Unknown" {
		t.Errorf("position = %q, want Unknown", stat.Position)
	}
}

func TestClassifyPosition(t *testing.T) {
	tests := []struct {
		pos  string
		want positionKind
	}{
		{"Forward", kindForward},
		{"Centre Forward", kindForward},
		{"Striker", kindForward},
		{"Midfielder", kindMidfielder},
		{"Defensive Midfield", kindMidfielder},
		{"Defender", kindDefender},
		{"Left Back", kindDefender},
		{"Goalkeeper", kindKeeper},
		{"", kindKeeper},
	}
	for _, tt := range tests {
		if got := classifyPosition(tt.pos); got != tt.want {
			t.Errorf("classifyPosition(%q) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}
