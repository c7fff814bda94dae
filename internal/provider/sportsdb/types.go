package sportsdb

// Raw TheSportsDB payload shapes. Every numeric arrives as a string; the
// abbreviated field names are the provider's own. These types never leave
// this package — translation into canonical shapes happens in service.go.

type rawLeague struct {
	ID        string `json:"idLeague"`
	Name      string `json:"strLeague"`
	Sport     string `json:"strSport"`
	Alternate string `json:"strLeagueAlternate"`
}

// leaguesEnvelope wraps search_all_leagues.php. The list really is called
// "countries" upstream.
type leaguesEnvelope struct {
	Countries []rawLeague `json:"countries"`
}

type rawTableRow struct {
	TeamID         string `json:"idTeam"`
	Team           string `json:"strTeam"`
	Badge          string `json:"strTeamBadge"`
	Played         string `json:"intPlayed"`
	Win            string `json:"intWin"`
	Draw           string `json:"intDraw"`
	Loss           string `json:"intLoss"`
	GoalsFor       string `json:"intGoalsFor"`
	GoalsAgainst   string `json:"intGoalsAgainst"`
	GoalDifference string `json:"intGoalDifference"`
	Points         string `json:"intPoints"`
}

type tableEnvelope struct {
	Table []rawTableRow `json:"table"`
}

type rawTeam struct {
	ID          string `json:"idTeam"`
	Name        string `json:"strTeam"`
	ShortName   string `json:"strTeamShort"`
	Badge       string `json:"strTeamBadge"`
	Stadium     string `json:"strStadium"`
	Location    string `json:"strStadiumLocation"`
	Website     string `json:"strWebsite"`
	FormedYear  string `json:"intFormedYear"`
	KitColours  string `json:"strKitColours"`
	Description string `json:"strDescriptionEN"`
}

type teamsEnvelope struct {
	Teams []rawTeam `json:"teams"`
}

type rawEvent struct {
	ID            string `json:"idEvent"`
	Name          string `json:"strEvent"`
	League        string `json:"strLeague"`
	HomeTeam      string `json:"strHomeTeam"`
	AwayTeam      string `json:"strAwayTeam"`
	HomeTeamBadge string `json:"strHomeTeamBadge"`
	AwayTeamBadge string `json:"strAwayTeamBadge"`
	HomeScore     string `json:"intHomeScore"`
	AwayScore     string `json:"intAwayScore"`
	DateEvent     string `json:"dateEvent"`
	Time          string `json:"strTime"`
	Venue         string `json:"strVenue"`
}

type eventsEnvelope struct {
	Events []rawEvent `json:"events"`
}

type rawPlayer struct {
	ID          string `json:"idPlayer"`
	Name        string `json:"strPlayer"`
	Position    string `json:"strPosition"`
	Nationality string `json:"strNationality"`
	Thumb       string `json:"strThumb"`
	Cutout      string `json:"strCutout"`
	DateSigned  string `json:"dateSigned"`
	FormerTeam  string `json:"strFormerTeam"`
	Wage        string `json:"strWage"`
}

type playersEnvelope struct {
	Player []rawPlayer `json:"player"`
}
