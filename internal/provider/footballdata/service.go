package footballdata

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/ffkstats/ffkstats/internal/provider"
)

// Service bundles the normalization operations against football-data.org.
// All operations here reject on failure; empty match lists are legitimate
// for this provider (a team between seasons really has no scheduled
// fixtures), so empty-as-failure is not applied — the free provider's
// operations, which serve a flakier tier, are the ones that distrust empty.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates the football-data.org normalization service.
func NewService(client *Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// TeamInfo returns a club's profile.
func (s *Service) TeamInfo(ctx context.Context, teamID string) (provider.TeamDetails, error) {
	var t rawTeam
	if err := s.client.getJSON(ctx, "/teams/"+teamID, nil, &t); err != nil {
		return provider.TeamDetails{}, fmt.Errorf("team info %s: %w", teamID, err)
	}
	return provider.TeamDetails{
		Team:         mapTeam(t),
		LastUpdated:  t.LastUpdate,
		Achievements: []provider.Achievement{},
	}, nil
}

// TeamSquad returns a club's roster from the team payload.
func (s *Service) TeamSquad(ctx context.Context, teamID string) (provider.Squad, error) {
	var t rawTeam
	if err := s.client.getJSON(ctx, "/teams/"+teamID, nil, &t); err != nil {
		return provider.Squad{}, fmt.Errorf("team squad %s: %w", teamID, err)
	}
	squad := provider.Squad{Squad: make([]provider.SquadMember, 0, len(t.Squad))}
	for _, m := range t.Squad {
		squad.Squad = append(squad.Squad, provider.SquadMember{
			ID:          m.ID,
			Name:        m.Name,
			Position:    m.Position,
			DateOfBirth: m.DateOfBirth,
			Nationality: m.Nationality,
		})
	}
	return squad, nil
}

// UpcomingFixtures returns a team's next scheduled matches, at most limit.
func (s *Service) UpcomingFixtures(ctx context.Context, teamID string, limit int) (provider.MatchList, error) {
	return s.teamMatches(ctx, teamID, url.Values{
		"status": {"SCHEDULED"},
		"limit":  {strconv.Itoa(limit)},
	}, limit)
}

// PastMatches returns a team's most recent finished matches, at most limit.
func (s *Service) PastMatches(ctx context.Context, teamID string, limit int) (provider.MatchList, error) {
	return s.teamMatches(ctx, teamID, url.Values{
		"status": {"FINISHED"},
		"limit":  {strconv.Itoa(limit)},
	}, limit)
}

// SeasonMatches returns every match of a team's season, played or not.
func (s *Service) SeasonMatches(ctx context.Context, teamID, season string) (provider.MatchList, error) {
	return s.teamMatches(ctx, teamID, url.Values{"season": {season}}, 0)
}

func (s *Service) teamMatches(ctx context.Context, teamID string, params url.Values, limit int) (provider.MatchList, error) {
	var env matchesEnvelope
	if err := s.client.getJSON(ctx, "/teams/"+teamID+"/matches", params, &env); err != nil {
		return provider.MatchList{}, fmt.Errorf("team matches %s: %w", teamID, err)
	}
	matches := env.Matches
	// The limit parameter is advisory upstream; enforce it here.
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := provider.MatchList{Matches: make([]provider.Match, 0, len(matches))}
	for _, m := range matches {
		out.Matches = append(out.Matches, mapMatch(m))
	}
	return out, nil
}

// LeagueTable returns a competition's total standings. The provider splits
// standings by stage/type; the TOTAL table is the one the dashboard shows.
func (s *Service) LeagueTable(ctx context.Context, competition string) (provider.Table, error) {
	var env standingsEnvelope
	if err := s.client.getJSON(ctx, "/competitions/"+competition+"/standings", nil, &env); err != nil {
		return provider.Table{}, fmt.Errorf("league table %s: %w", competition, err)
	}
	table := pickTotalTable(env.Standings)
	if table == nil {
		return provider.Table{}, fmt.Errorf("league table %s: %w", competition, provider.ErrEmptyResult)
	}
	rows := make([]provider.StandingsRow, 0, len(table))
	for _, e := range table {
		rows = append(rows, provider.StandingsRow{
			Position:       e.Position,
			Team:           mapSide(e.Team),
			PlayedGames:    e.PlayedGames,
			Won:            e.Won,
			Draw:           e.Draw,
			Lost:           e.Lost,
			GoalsFor:       e.GoalsFor,
			GoalsAgainst:   e.GoalsAgainst,
			GoalDifference: e.GoalDifference,
			Points:         e.Points,
		})
	}
	return provider.Table{CompetitionName: env.Competition.Name, Rows: rows}, nil
}

func pickTotalTable(standings []rawStanding) []rawTableEntry {
	for _, st := range standings {
		if st.Type == "TOTAL" && len(st.Table) > 0 {
			return st.Table
		}
	}
	for _, st := range standings {
		if len(st.Table) > 0 {
			return st.Table
		}
	}
	return nil
}

// Competitions lists the competitions visible to the configured plan.
func (s *Service) Competitions(ctx context.Context) (provider.LeagueList, error) {
	var env competitionsEnvelope
	if err := s.client.getJSON(ctx, "/competitions", nil, &env); err != nil {
		return provider.LeagueList{}, fmt.Errorf("competitions: %w", err)
	}
	out := provider.LeagueList{Leagues: make([]provider.League, 0, len(env.Competitions))}
	for _, c := range env.Competitions {
		out.Leagues = append(out.Leagues, provider.League{
			ID:   c.Code,
			Name: c.Name,
		})
	}
	return out, nil
}

// TeamsByCompetition lists every club in a competition.
func (s *Service) TeamsByCompetition(ctx context.Context, competition string) (provider.TeamList, error) {
	var env teamsEnvelope
	if err := s.client.getJSON(ctx, "/competitions/"+competition+"/teams", nil, &env); err != nil {
		return provider.TeamList{}, fmt.Errorf("competition teams %s: %w", competition, err)
	}
	out := provider.TeamList{Teams: make([]provider.Team, 0, len(env.Teams))}
	for _, t := range env.Teams {
		out.Teams = append(out.Teams, mapTeam(t))
	}
	return out, nil
}

// --------------------------------------------------------------------------
// Mapping
// --------------------------------------------------------------------------

func mapTeam(t rawTeam) provider.Team {
	return provider.Team{
		ID:         strconv.Itoa(t.ID),
		Name:       t.Name,
		ShortName:  t.ShortName,
		TLA:        t.TLA,
		Crest:      provider.OptionalString(t.Crest),
		Address:    t.Address,
		Website:    provider.OptionalString(t.Website),
		Founded:    t.Founded,
		ClubColors: t.ClubColors,
		Venue:      t.Venue,
	}
}

func mapSide(side rawSide) provider.Team {
	return provider.Team{
		ID:    strconv.Itoa(side.ID),
		Name:  side.Name,
		Crest: provider.OptionalString(side.Crest),
	}
}

// mapMatch translates one fixture. The status is passed through when it is
// neither of the two canonical states (IN_PLAY, POSTPONED and friends reach
// consumers unchanged).
func mapMatch(m rawMatch) provider.Match {
	return provider.Match{
		ID:          strconv.Itoa(m.ID),
		Competition: m.Competition.Name,
		UTCDate:     m.UTCDate,
		Status:      provider.MatchStatus(m.Status),
		HomeTeam:    mapSide(m.HomeTeam),
		AwayTeam:    mapSide(m.AwayTeam),
		Score: provider.Score{
			Home: m.Score.FullTime.Home,
			Away: m.Score.FullTime.Away,
		},
	}
}
