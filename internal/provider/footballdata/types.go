package footballdata

import "time"

// Raw football-data.org v4 payload shapes. IDs and stats are real JSON
// numbers here, unlike the free provider. These types never leave this
// package.

type rawTeam struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	ShortName  string        `json:"shortName"`
	TLA        string        `json:"tla"`
	Crest      string        `json:"crest"`
	Address    string        `json:"address"`
	Website    string        `json:"website"`
	Founded    *int          `json:"founded"`
	ClubColors string        `json:"clubColors"`
	Venue      string        `json:"venue"`
	LastUpdate time.Time     `json:"lastUpdated"`
	Squad      []rawSquadMem `json:"squad"`
}

type rawSquadMem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
}

type rawMatch struct {
	ID          int       `json:"id"`
	Competition rawComp   `json:"competition"`
	UTCDate     time.Time `json:"utcDate"`
	Status      string    `json:"status"`
	HomeTeam    rawSide   `json:"homeTeam"`
	AwayTeam    rawSide   `json:"awayTeam"`
	Score       rawScore  `json:"score"`
}

type rawComp struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type rawSide struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Crest string `json:"crest"`
}

type rawScore struct {
	FullTime struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"fullTime"`
}

type matchesEnvelope struct {
	Matches []rawMatch `json:"matches"`
}

type rawTableEntry struct {
	Position       int     `json:"position"`
	Team           rawSide `json:"team"`
	PlayedGames    int     `json:"playedGames"`
	Won            int     `json:"won"`
	Draw           int     `json:"draw"`
	Lost           int     `json:"lost"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

type rawStanding struct {
	Stage string          `json:"stage"`
	Type  string          `json:"type"`
	Table []rawTableEntry `json:"table"`
}

type standingsEnvelope struct {
	Competition rawComp       `json:"competition"`
	Standings   []rawStanding `json:"standings"`
}

type competitionsEnvelope struct {
	Competitions []rawComp `json:"competitions"`
}

type teamsEnvelope struct {
	Teams []rawTeam `json:"teams"`
}
