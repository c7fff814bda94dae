package sportsdb

import (
	"time"

	"github.com/ffkstats/ffkstats/internal/provider"
)

// Statically authored placeholder data, substituted when the free provider
// is down or deliberately bypassed in development. A placeholder result is
// always whole: live rows are never merged into these.

func strPtr(s string) *string { return &s }

const (
	ffkBadgeURL = "https://www.thesportsdb.com/images/media/team/badge/twqvtr1473505928.png"
	rbkBadgeURL = "https://www.thesportsdb.com/images/media/team/badge/q8n3r41537477618.png"
)

// PlaceholderLeagues lists Eliteserien the way search_all_leagues returns it.
var PlaceholderLeagues = provider.LeagueList{
	Leagues: []provider.League{
		{
			ID:        "4358",
			Name:      "Norwegian Eliteserien",
			Sport:     "Soccer",
			Alternate: "Eliteserien, Tippeligaen",
		},
	},
}

// PlaceholderTeams holds a minimal Eliteserien team listing.
var PlaceholderTeams = provider.TeamList{
	Teams: []provider.Team{
		{
			ID:        "133604",
			Name:      "Fredrikstad",
			ShortName: "FFK",
			Crest:     strPtr(ffkBadgeURL),
			Venue:     "Fredrikstad Stadion",
			Website:   strPtr("www.fredrikstadfk.no"),
			Founded:   provider.IntPtr(1903),
		},
		{
			ID:        "133602",
			Name:      "Rosenborg",
			ShortName: "RBK",
			Crest:     strPtr(rbkBadgeURL),
			Venue:     "Lerkendal Stadion",
		},
	},
}

// PlaceholderStandings is a two-row table satisfying every table invariant.
var PlaceholderStandings = provider.Table{
	CompetitionName: "Eliteserien",
	Rows: []provider.StandingsRow{
		{
			Position:       1,
			Team:           provider.Team{ID: "133604", Name: "Fredrikstad", Crest: strPtr(ffkBadgeURL)},
			PlayedGames:    10,
			Won:            7,
			Draw:           2,
			Lost:           1,
			GoalsFor:       22,
			GoalsAgainst:   8,
			GoalDifference: 14,
			Points:         23,
		},
		{
			Position:       2,
			Team:           provider.Team{ID: "133602", Name: "Rosenborg", Crest: strPtr(rbkBadgeURL)},
			PlayedGames:    10,
			Won:            6,
			Draw:           2,
			Lost:           2,
			GoalsFor:       18,
			GoalsAgainst:   9,
			GoalDifference: 9,
			Points:         20,
		},
	},
}

// PlaceholderTeamDetails is the Fredrikstad FK profile shown when the
// search endpoint is unavailable. The honors here are real club history,
// which the live path cannot supply (see Service.TeamDetails).
var PlaceholderTeamDetails = provider.TeamDetails{
	Team: provider.Team{
		ID:         "133604",
		Name:       "Fredrikstad",
		ShortName:  "FFK",
		TLA:        "FFK",
		Crest:      strPtr(ffkBadgeURL),
		Address:    "Fredrikstad, Norway",
		Website:    strPtr("www.fredrikstadfk.no"),
		Founded:    provider.IntPtr(1903),
		ClubColors: "Red and White",
		Venue:      "Fredrikstad Stadion",
	},
	LastUpdated: time.Date(2025, 3, 5, 13, 45, 0, 0, time.UTC),
	Achievements: []provider.Achievement{
		{Title: "Eliteserien", Count: 9, Years: "1938, 1939, 1949, 1951, 1952, 1954, 1957, 1960, 1961"},
		{Title: "Norwegian Cup", Count: 11, Years: "1932, 1935, 1936, 1938, 1940, 1950, 1957, 1961, 1966, 1984, 2006"},
	},
}

// PlaceholderUpcoming is one scheduled home fixture.
var PlaceholderUpcoming = provider.MatchList{
	Matches: []provider.Match{
		{
			ID:          "1234567",
			Competition: "Norwegian Eliteserien",
			UTCDate:     time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
			Status:      provider.StatusScheduled,
			HomeTeam:    provider.Team{Name: "Fredrikstad", Crest: strPtr(ffkBadgeURL)},
			AwayTeam:    provider.Team{Name: "Rosenborg", Crest: strPtr(rbkBadgeURL)},
		},
	},
}

// PlaceholderPastEvents covers recent finished matches.
var PlaceholderPastEvents = provider.MatchList{
	Matches: []provider.Match{
		{
			ID:          "1001",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2023, 11, 12, 18, 0, 0, 0, time.UTC),
			Status:      provider.StatusFinished,
			HomeTeam:    provider.Team{Name: "Fredrikstad FK", Crest: strPtr(ffkBadgeURL)},
			AwayTeam:    provider.Team{Name: "Rosenborg", Crest: strPtr(rbkBadgeURL)},
			Score:       provider.Score{Home: provider.IntPtr(2), Away: provider.IntPtr(1)},
		},
		{
			ID:          "1002",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2023, 11, 5, 15, 0, 0, 0, time.UTC),
			Status:      provider.StatusFinished,
			HomeTeam:    provider.Team{Name: "Molde"},
			AwayTeam:    provider.Team{Name: "Fredrikstad FK", Crest: strPtr(ffkBadgeURL)},
			Score:       provider.Score{Home: provider.IntPtr(1), Away: provider.IntPtr(2)},
		},
		{
			ID:          "1003",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2023, 10, 29, 14, 0, 0, 0, time.UTC),
			Status:      provider.StatusFinished,
			HomeTeam:    provider.Team{Name: "Fredrikstad FK", Crest: strPtr(ffkBadgeURL)},
			AwayTeam:    provider.Team{Name: "Bodø/Glimt"},
			Score:       provider.Score{Home: provider.IntPtr(1), Away: provider.IntPtr(1)},
		},
	},
}

// PlaceholderTransfers mirrors the winter 2025 window.
var PlaceholderTransfers = provider.TransferList{
	Synthetic: true,
	Transfers: []provider.Transfer{
		{
			ID: 1, PlayerName: "Markus Kaasa",
			FromTeam: "Molde FK", ToTeam: "Fredrikstad FK",
			Season: "Vinteren 2025", Type: provider.TransferPermanent, Fee: "Fri overgang",
			Direction: provider.TransferIncoming,
		},
		{
			ID: 2, PlayerName: "Simen Rafn",
			FromTeam: "Lillestrøm", ToTeam: "Fredrikstad FK",
			Season: "Vinteren 2025", Type: provider.TransferPermanent, Fee: "Ukjent",
			Direction: provider.TransferIncoming,
		},
		{
			ID: 3, PlayerName: "Henrik Kjelsrud Johansen",
			FromTeam: "Fredrikstad FK", ToTeam: "Sarpsborg 08",
			Season: "Vinteren 2025", Type: provider.TransferPermanent, Fee: "Ukjent",
			Direction: provider.TransferOutgoing,
		},
		{
			ID: 4, PlayerName: "Stian Stray Molde",
			FromTeam: "Fredrikstad FK", ToTeam: "Kristiansund BK",
			Season: "Vinteren 2025", Type: provider.TransferLoan, Fee: "Lån",
			Direction: provider.TransferOutgoing,
		},
		{
			ID: 5, PlayerName: "Oscar Aga",
			FromTeam: "Sarpsborg 08", ToTeam: "Fredrikstad FK",
			Season: "Vinteren 2025", Type: provider.TransferLoan, Fee: "Lån",
			Direction: provider.TransferIncoming,
		},
	},
}

// PlaceholderPlayerStats is a small ranked set for development rendering.
var PlaceholderPlayerStats = provider.PlayerStats{
	Synthetic: true,
	TopScorers: []provider.PlayerStat{
		{Name: "Martin Andersen", Position: "Forward", Goals: 10},
		{Name: "Sander Eriksson", Position: "Midfielder", Goals: 8},
		{Name: "Henrik Kristiansen", Position: "Defender", Goals: 6},
	},
	TopAssists: []provider.PlayerStat{
		{Name: "Martin Andersen", Position: "Forward", Assists: 7},
		{Name: "Sander Eriksson", Position: "Midfielder", Assists: 6},
		{Name: "Henrik Kristiansen", Position: "Defender", Assists: 5},
	},
	PlayerForm: []provider.PlayerStat{
		{
			Name: "Martin Andersen", Position: "Forward",
			Matches: 15, Goals: 10, Assists: 7, Rating: 7.5,
			Form: []provider.FormResult{"W", "W", "L", "W", "D"},
		},
		{
			Name: "Sander Eriksson", Position: "Midfielder",
			Matches: 15, Goals: 8, Assists: 6, Rating: 7.2,
			Form: []provider.FormResult{"W", "L", "W", "D", "W"},
		},
		{
			Name: "Henrik Kristiansen", Position: "Defender",
			Matches: 15, Goals: 6, Assists: 5, Rating: 7.0,
			Form: []provider.FormResult{"L", "W", "D", "W", "L"},
		},
	},
}

// fallbackTransfers is the known-accurate transfer list returned when the
// roster synthesis itself fails. Distinct from PlaceholderTransfers: this
// one is the error-path value baked into the operation, the placeholder is
// what the fetch controller substitutes in development.
var fallbackTransfers = provider.TransferList{
	Synthetic: true,
	Transfers: []provider.Transfer{
		{
			ID: 1, PlayerName: "Simen Rafn",
			FromTeam: "Lillestrøm", ToTeam: "Fredrikstad FK",
			Season: "2025", Type: provider.TransferPermanent, Fee: "Fri overgang",
			Direction: provider.TransferIncoming,
		},
		{
			ID: 2, PlayerName: "Markus Kaasa",
			FromTeam: "Molde FK", ToTeam: "Fredrikstad FK",
			Season: "2025", Type: provider.TransferPermanent, Fee: "Ukjent",
			Direction: provider.TransferIncoming,
		},
		{
			ID: 3, PlayerName: "Henrik Kjelsrud Johansen",
			FromTeam: "Fredrikstad FK", ToTeam: "Sarpsborg 08",
			Season: "2025", Type: provider.TransferPermanent, Fee: "Ukjent",
			Direction: provider.TransferOutgoing,
		},
	},
}
