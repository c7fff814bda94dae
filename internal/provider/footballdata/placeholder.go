package footballdata

import (
	"time"

	"github.com/ffkstats/ffkstats/internal/provider"
)

// Statically authored placeholder data for the paid provider's operations.
// The operations themselves reject on failure; these payloads are what the
// fetch controller substitutes when its mock flag is set.

func strPtr(s string) *string { return &s }

// PlaceholderTeam is the Fredrikstad FK profile.
var PlaceholderTeam = provider.TeamDetails{
	Team: provider.Team{
		ID:         "6956",
		Name:       "Fredrikstad FK",
		ShortName:  "FFK",
		TLA:        "FFK",
		Crest:      strPtr("../assets/images/fredrikstad.png"),
		Address:    "Fredrikstad Stadion, Fredrikstad",
		Website:    strPtr("https://www.fredrikstadfk.no"),
		Founded:    provider.IntPtr(1903),
		ClubColors: "Red / White",
		Venue:      "Fredrikstad Stadion",
	},
	LastUpdated:  time.Date(2023, 5, 10, 19, 48, 56, 0, time.UTC),
	Achievements: []provider.Achievement{},
}

// PlaceholderUpcomingFixtures is a single scheduled fixture.
var PlaceholderUpcomingFixtures = provider.MatchList{
	Matches: []provider.Match{
		{
			ID:          "500001",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
			Status:      provider.StatusScheduled,
			HomeTeam:    provider.Team{Name: "Fredrikstad FK"},
			AwayTeam:    provider.Team{Name: "Rosenborg BK"},
		},
	},
}

// PlaceholderPastMatches is a single finished match.
var PlaceholderPastMatches = provider.MatchList{
	Matches: []provider.Match{
		{
			ID:          "500002",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC),
			Status:      provider.StatusFinished,
			HomeTeam:    provider.Team{Name: "Fredrikstad FK"},
			AwayTeam:    provider.Team{Name: "Molde FK"},
			Score:       provider.Score{Home: provider.IntPtr(2), Away: provider.IntPtr(1)},
		},
	},
}

// PlaceholderSeasonMatches sketches the opening weeks of a season.
var PlaceholderSeasonMatches = provider.MatchList{
	Matches: []provider.Match{
		{
			ID:          "500001",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
			Status:      provider.StatusScheduled,
			HomeTeam:    provider.Team{Name: "Fredrikstad FK"},
			AwayTeam:    provider.Team{Name: "Rosenborg BK"},
		},
		{
			ID:          "500003",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2025, 3, 16, 18, 0, 0, 0, time.UTC),
			Status:      provider.StatusScheduled,
			HomeTeam:    provider.Team{Name: "Molde FK"},
			AwayTeam:    provider.Team{Name: "Fredrikstad FK"},
		},
		{
			ID:          "500004",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2025, 3, 30, 15, 0, 0, 0, time.UTC),
			Status:      provider.StatusScheduled,
			HomeTeam:    provider.Team{Name: "Fredrikstad FK"},
			AwayTeam:    provider.Team{Name: "Bodø/Glimt"},
		},
		{
			ID:          "500005",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2025, 4, 13, 14, 0, 0, 0, time.UTC),
			Status:      provider.StatusScheduled,
			HomeTeam:    provider.Team{Name: "Viking FK"},
			AwayTeam:    provider.Team{Name: "Fredrikstad FK"},
		},
		{
			ID:          "500006",
			Competition: "Eliteserien",
			UTCDate:     time.Date(2025, 4, 20, 17, 0, 0, 0, time.UTC),
			Status:      provider.StatusScheduled,
			HomeTeam:    provider.Team{Name: "Fredrikstad FK"},
			AwayTeam:    provider.Team{Name: "Vålerenga"},
		},
	},
}

// PlaceholderLeagueTable is a four-row top of the table satisfying every
// invariant.
var PlaceholderLeagueTable = provider.Table{
	CompetitionName: "Eliteserien",
	Rows: []provider.StandingsRow{
		{
			Position:       1,
			Team:           provider.Team{ID: "6956", Name: "Fredrikstad FK", Crest: strPtr("../assets/images/fredrikstad.png")},
			PlayedGames:    27,
			Won:            20,
			Draw:           5,
			Lost:           2,
			GoalsFor:       62,
			GoalsAgainst:   20,
			GoalDifference: 42,
			Points:         65,
		},
		{
			Position:       2,
			Team:           provider.Team{ID: "6965", Name: "Bodø/Glimt", Crest: strPtr("../assets/images/bodo-glimt.png")},
			PlayedGames:    27,
			Won:            19,
			Draw:           4,
			Lost:           4,
			GoalsFor:       58,
			GoalsAgainst:   24,
			GoalDifference: 34,
			Points:         61,
		},
		{
			Position:       3,
			Team:           provider.Team{ID: "450", Name: "Molde FK", Crest: strPtr("../assets/images/molde.png")},
			PlayedGames:    27,
			Won:            17,
			Draw:           5,
			Lost:           5,
			GoalsFor:       50,
			GoalsAgainst:   26,
			GoalDifference: 24,
			Points:         56,
		},
		{
			Position:       4,
			Team:           provider.Team{ID: "464", Name: "Rosenborg BK", Crest: strPtr("../assets/images/rosenborg.png")},
			PlayedGames:    27,
			Won:            15,
			Draw:           6,
			Lost:           6,
			GoalsFor:       47,
			GoalsAgainst:   28,
			GoalDifference: 19,
			Points:         51,
		},
	},
}

// PlaceholderSquad is a single sample roster entry.
var PlaceholderSquad = provider.Squad{
	Squad: []provider.SquadMember{
		{
			ID:          10001,
			Name:        "Sample Player",
			Position:    "Offence",
			DateOfBirth: "1995-01-01",
			Nationality: "Norway",
		},
	},
}

// PlaceholderCompetitions and PlaceholderCompetitionTeams are safe-empty:
// there is nothing meaningful to fake for a full competition catalogue.
var (
	PlaceholderCompetitions     = provider.LeagueList{Leagues: []provider.League{}}
	PlaceholderCompetitionTeams = provider.TeamList{Teams: []provider.Team{}}
)
