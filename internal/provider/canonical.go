// Package provider defines canonical data types that all providers normalize
// into. These structs are the contract between provider packages and every
// consumer — providers output these, handlers and the CLI render them.
//
// Adding a new provider means implementing functions that return these types.
// The canonical shapes never carry provider-specific fields: translation or
// dropping happens at the provider boundary.
package provider

import (
	"fmt"
	"strings"
	"time"
)

// Team is the canonical club shape. IDs are provider-specific strings and
// are not comparable across providers.
type Team struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ShortName  string  `json:"shortName,omitempty"`
	TLA        string  `json:"tla,omitempty"`
	Crest      *string `json:"crest"`
	Address    string  `json:"address,omitempty"`
	Website    *string `json:"website"`
	Founded    *int    `json:"founded"`
	ClubColors string  `json:"clubColors,omitempty"`
	Venue      string  `json:"venue,omitempty"`
}

// Achievement is a club honor (title + count + years). No provider exposes
// honors, so these are always the unknown placeholder — never fabricated.
type Achievement struct {
	Title string `json:"title"`
	Count int    `json:"count"`
	Years string `json:"years"`
}

// TeamDetails is the full club profile returned by the team-details lookup.
type TeamDetails struct {
	Team
	LastUpdated  time.Time     `json:"lastUpdated"`
	Achievements []Achievement `json:"achievements"`
}

// StandingsRow is one rank-ordered row of a league table.
type StandingsRow struct {
	Position       int  `json:"position"`
	Team           Team `json:"team"`
	PlayedGames    int  `json:"playedGames"`
	Won            int  `json:"won"`
	Draw           int  `json:"draw"`
	Lost           int  `json:"lost"`
	GoalsFor       int  `json:"goalsFor"`
	GoalsAgainst   int  `json:"goalsAgainst"`
	GoalDifference int  `json:"goalDifference"`
	Points         int  `json:"points"`
}

// Table is a full league table: rows rank-sorted by the provider, positions
// 1..N with no gaps or duplicates.
type Table struct {
	CompetitionName string         `json:"competitionName,omitempty"`
	Season          string         `json:"season,omitempty"`
	Rows            []StandingsRow `json:"rows"`
}

// Validate checks the table invariants: contiguous 1-based positions,
// won+draw+lost == playedGames, goalsFor-goalsAgainst == goalDifference,
// and points non-increasing down the table.
func (t Table) Validate() error {
	prevPoints := 0
	for i, row := range t.Rows {
		if row.Position != i+1 {
			return fmt.Errorf("row %d: position %d, want %d", i, row.Position, i+1)
		}
		if row.Won+row.Draw+row.Lost != row.PlayedGames {
			return fmt.Errorf("row %d (%s): won+draw+lost=%d, playedGames=%d",
				i, row.Team.Name, row.Won+row.Draw+row.Lost, row.PlayedGames)
		}
		if row.GoalsFor-row.GoalsAgainst != row.GoalDifference {
			return fmt.Errorf("row %d (%s): goalsFor-goalsAgainst=%d, goalDifference=%d",
				i, row.Team.Name, row.GoalsFor-row.GoalsAgainst, row.GoalDifference)
		}
		if i > 0 && row.Points > prevPoints {
			return fmt.Errorf("row %d (%s): points %d exceed position %d's %d",
				i, row.Team.Name, row.Points, i, prevPoints)
		}
		prevPoints = row.Points
	}
	return nil
}

// MatchStatus is the canonical match state. Unrecognized provider values
// pass through untranslated.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusFinished  MatchStatus = "FINISHED"
)

// Score holds full-time goals. Both fields are nil until the match is
// played, both non-nil once FINISHED.
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Match is one fixture or result.
type Match struct {
	ID          string      `json:"id"`
	Competition string      `json:"competition"`
	UTCDate     time.Time   `json:"utcDate"`
	Status      MatchStatus `json:"status"`
	HomeTeam    Team        `json:"homeTeam"`
	AwayTeam    Team        `json:"awayTeam"`
	Score       Score       `json:"score"`
}

// MatchList is the safe-empty result shape for match queries: a zero value
// renders as {"matches": []} rather than null.
type MatchList struct {
	Matches []Match `json:"matches"`
}

// Involves reports whether either side's name contains club (the home-club
// substring predicate).
func (m Match) Involves(club string) bool {
	return strings.Contains(m.HomeTeam.Name, club) || strings.Contains(m.AwayTeam.Name, club)
}

// TransferType distinguishes permanent moves from loans.
type TransferType string

const (
	TransferPermanent TransferType = "permanent"
	TransferLoan      TransferType = "loan"
)

// TransferDirection is derived relative to the home club, never transcribed.
type TransferDirection string

const (
	TransferIncoming TransferDirection = "incoming"
	TransferOutgoing TransferDirection = "outgoing"
)

// Transfer is one player movement. Fee is free text; "Ukjent" marks an
// unknown amount.
type Transfer struct {
	ID         int               `json:"id"`
	PlayerName string            `json:"playerName"`
	FromTeam   string            `json:"fromTeam"`
	ToTeam     string            `json:"toTeam"`
	Season     string            `json:"season"`
	Type       TransferType      `json:"transferType"`
	Fee        string            `json:"transferFee"`
	Direction  TransferDirection `json:"direction"`
}

// DeriveDirection computes a transfer's direction relative to the home
// club: a destination match is incoming, a source match is outgoing.
func DeriveDirection(fromTeam, toTeam, homeClub string) TransferDirection {
	if strings.Contains(toTeam, homeClub) {
		return TransferIncoming
	}
	if strings.Contains(fromTeam, homeClub) {
		return TransferOutgoing
	}
	return TransferIncoming
}

// TransferList is a set of transfers. Synthetic marks lists assembled from
// roster heuristics rather than a real transfers endpoint.
type TransferList struct {
	Transfers []Transfer `json:"transfers"`
	Synthetic bool       `json:"synthetic,omitempty"`
}

// FormResult is a single entry of a player's recent form.
type FormResult string

const (
	FormWin  FormResult = "W"
	FormDraw FormResult = "D"
	FormLoss FormResult = "L"
)

// PlayerStat is one player's season statistics. Form is fixed-length,
// most-recent-first.
type PlayerStat struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Position    string       `json:"position"`
	Nationality string       `json:"nationality"`
	Image       *string      `json:"image"`
	Matches     int          `json:"matches"`
	Goals       int          `json:"goals"`
	Assists     int          `json:"assists"`
	Rating      float64      `json:"rating"`
	Form        []FormResult `json:"form"`
}

// PlayerStats bundles the ranked views the dashboard renders. Synthetic is
// always true today: no upstream exposes per-player statistics, so values
// are generated (see sportsdb.StatsGenerator).
type PlayerStats struct {
	TopScorers []PlayerStat `json:"topScorers"`
	TopAssists []PlayerStat `json:"topAssists"`
	PlayerForm []PlayerStat `json:"playerForm"`
	Synthetic  bool         `json:"synthetic,omitempty"`
}

// League is a competition as listed by a provider.
type League struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Sport     string `json:"sport,omitempty"`
	Alternate string `json:"alternate,omitempty"`
}

// LeagueList is the safe-empty wrapper for league listings.
type LeagueList struct {
	Leagues []League `json:"leagues"`
}

// TeamList is the safe-empty wrapper for team listings.
type TeamList struct {
	Teams []Team `json:"teams"`
}

// SquadMember is one roster entry from the paid provider's team payload.
type SquadMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// Squad is the safe-empty wrapper for a team roster.
type Squad struct {
	Squad []SquadMember `json:"squad"`
}
