package provider

import "testing"

func validTable() Table {
	return Table{
		Rows: []StandingsRow{
			{Position: 1, Team: Team{Name: "Fredrikstad"}, PlayedGames: 10, Won: 7, Draw: 2, Lost: 1, GoalsFor: 22, GoalsAgainst: 8, GoalDifference: 14, Points: 23},
			{Position: 2, Team: Team{Name: "Rosenborg"}, PlayedGames: 10, Won: 6, Draw: 2, Lost: 2, GoalsFor: 18, GoalsAgainst: 9, GoalDifference: 9, Points: 20},
		},
	}
}

func TestTableValidate(t *testing.T) {
	if err := validTable().Validate(); err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Table)
	}{
		{"position gap", func(tb *Table) { tb.Rows[1].Position = 3 }},
		{"duplicate position", func(tb *Table) { tb.Rows[1].Position = 1 }},
		{"result sum mismatch", func(tb *Table) { tb.Rows[0].Won = 8 }},
		{"goal difference mismatch", func(tb *Table) { tb.Rows[0].GoalDifference = 2 }},
		{"points increase down table", func(tb *Table) { tb.Rows[1].Points = 30 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := validTable()
			tt.mutate(&tb)
			if err := tb.Validate(); err == nil {
				t.Error("Validate accepted a broken table")
			}
		})
	}
}

func TestMatchInvolves(t *testing.T) {
	m := Match{
		HomeTeam: Team{Name: "Fredrikstad FK"},
		AwayTeam: Team{Name: "Rosenborg"},
	}
	if !m.Involves("Fredrikstad") {
		t.Error("substring on home side should match")
	}
	if !m.Involves("Rosenborg") {
		t.Error("away side should match")
	}
	if m.Involves("Molde") {
		t.Error("uninvolved club should not match")
	}
}

func TestDeriveDirection(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     TransferDirection
	}{
		{"incoming", "Molde FK", "Fredrikstad FK", TransferIncoming},
		{"outgoing", "Fredrikstad FK", "Sarpsborg 08", TransferOutgoing},
		{"destination wins when both match", "Fredrikstad FK", "Fredrikstad FK II", TransferIncoming},
		{"neither side defaults incoming", "Molde FK", "Rosenborg", TransferIncoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveDirection(tt.from, tt.to, "Fredrikstad"); got != tt.want {
				t.Errorf("DeriveDirection(%q, %q) = %q, want %q", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
