package sportsdb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ffkstats/ffkstats/internal/provider"
)

// Service bundles the normalization operations against TheSportsDB. Each
// operation follows the same skeleton: fetch, map to canonical shapes,
// treat empty results as failures, then apply the operation's fixed
// terminal strategy (placeholder, safe-empty, or propagate).
type Service struct {
	client   *Client
	logger   *slog.Logger
	homeClub string
	leagueID string
	season   string
}

// NewService creates the TheSportsDB normalization service. homeClub is the
// club name used for match filtering and transfer direction, leagueID the
// provider's Eliteserien id, season the current season label.
func NewService(client *Client, homeClub, leagueID, season string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client:   client,
		logger:   logger,
		homeClub: homeClub,
		leagueID: leagueID,
		season:   season,
	}
}

// unknownAchievements is what the live path reports for club honors: the
// provider has no honors endpoint and fabricating them would masquerade as
// real data.
var unknownAchievements = []provider.Achievement{
	{Title: "Eliteserien", Count: 0, Years: "N/A"},
}

// --------------------------------------------------------------------------
// League and team listings
// --------------------------------------------------------------------------

// NorwegianLeagues lists every Norwegian league. Falls back to the static
// placeholder on failure.
func (s *Service) NorwegianLeagues(ctx context.Context) (provider.LeagueList, error) {
	leagues, err := s.liveLeagues(ctx)
	if err != nil {
		s.logger.Warn("league list fetch failed, serving placeholder", "error", err)
		return PlaceholderLeagues, nil
	}
	return leagues, nil
}

func (s *Service) liveLeagues(ctx context.Context) (provider.LeagueList, error) {
	var env leaguesEnvelope
	if err := s.client.getJSON(ctx, "/search_all_leagues.php", url.Values{"c": {"Norway"}}, &env); err != nil {
		return provider.LeagueList{}, err
	}
	if len(env.Countries) == 0 {
		return provider.LeagueList{}, fmt.Errorf("norwegian leagues: %w", provider.ErrEmptyResult)
	}
	out := provider.LeagueList{Leagues: make([]provider.League, 0, len(env.Countries))}
	for _, l := range env.Countries {
		out.Leagues = append(out.Leagues, provider.League{
			ID:        l.ID,
			Name:      l.Name,
			Sport:     l.Sport,
			Alternate: l.Alternate,
		})
	}
	return out, nil
}

// EliteserienTeams lists the clubs of the league. Falls back to the static
// placeholder on failure.
func (s *Service) EliteserienTeams(ctx context.Context) (provider.TeamList, error) {
	var env teamsEnvelope
	err := s.client.getJSON(ctx, "/search_all_teams.php", url.Values{"l": {"Norwegian Eliteserien"}}, &env)
	if err == nil && len(env.Teams) == 0 {
		err = fmt.Errorf("eliteserien teams: %w", provider.ErrEmptyResult)
	}
	if err != nil {
		s.logger.Warn("team list fetch failed, serving placeholder", "error", err)
		return PlaceholderTeams, nil
	}
	out := provider.TeamList{Teams: make([]provider.Team, 0, len(env.Teams))}
	for _, t := range env.Teams {
		out.Teams = append(out.Teams, mapTeam(t))
	}
	return out, nil
}

func mapTeam(t rawTeam) provider.Team {
	return provider.Team{
		ID:         t.ID,
		Name:       t.Name,
		ShortName:  t.ShortName,
		Crest:      provider.OptionalString(t.Badge),
		Venue:      t.Stadium,
		Address:    t.Location,
		Website:    provider.OptionalString(t.Website),
		Founded:    provider.OptionalInt(t.FormedYear),
		ClubColors: t.KitColours,
	}
}

// --------------------------------------------------------------------------
// Standings (two-phase: league discovery, then table lookup)
// --------------------------------------------------------------------------

// LeagueStandings fetches the Eliteserien table for a season. The league id
// is resolved by name first — a discovery miss aborts the lookup rather
// than guessing an id. Any failure, including an empty table, falls back to
// the static placeholder table.
func (s *Service) LeagueStandings(ctx context.Context, season string) (provider.Table, error) {
	table, err := s.liveStandings(ctx, season)
	if err != nil {
		s.logger.Warn("standings fetch failed, serving placeholder", "season", season, "error", err)
		return PlaceholderStandings, nil
	}
	return table, nil
}

func (s *Service) liveStandings(ctx context.Context, season string) (provider.Table, error) {
	league, err := s.discoverEliteserien(ctx)
	if err != nil {
		return provider.Table{}, err
	}
	s.logger.Debug("resolved league", "id", league.ID, "name", league.Name)

	var env tableEnvelope
	params := url.Values{"l": {league.ID}, "s": {season}}
	if err := s.client.getJSON(ctx, "/lookuptable.php", params, &env); err != nil {
		return provider.Table{}, err
	}
	if len(env.Table) == 0 {
		return provider.Table{}, fmt.Errorf("standings season %s: %w", season, provider.ErrEmptyResult)
	}

	rows := make([]provider.StandingsRow, 0, len(env.Table))
	for i, raw := range env.Table {
		// The provider returns rows pre-sorted by rank; arrival order is
		// the position. A row with an unparsable stat fails the whole
		// operation instead of corrupting the sum invariants.
		row, err := mapTableRow(i+1, raw)
		if err != nil {
			return provider.Table{}, fmt.Errorf("standings row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return provider.Table{
		CompetitionName: league.Name,
		Season:          season,
		Rows:            rows,
	}, nil
}

// discoverEliteserien resolves the league id by fuzzy name match over the
// Norwegian league list: the league has been renamed over the years, so
// both "Eliteserien" and "Tippeligaen" count, in the primary name or the
// alternate names.
func (s *Service) discoverEliteserien(ctx context.Context) (provider.League, error) {
	leagues, err := s.liveLeagues(ctx)
	if err != nil {
		return provider.League{}, err
	}
	for _, l := range leagues.Leagues {
		if matchesEliteserien(l) {
			return l, nil
		}
	}
	return provider.League{}, provider.ErrLeagueNotFound
}

func matchesEliteserien(l provider.League) bool {
	for _, name := range []string{l.Name, l.Alternate} {
		if strings.Contains(name, "Eliteserien") || strings.Contains(name, "Tippeligaen") {
			return true
		}
	}
	return false
}

func mapTableRow(position int, raw rawTableRow) (provider.StandingsRow, error) {
	played, err := provider.ParseCount("intPlayed", raw.Played)
	if err != nil {
		return provider.StandingsRow{}, err
	}
	won, err := provider.ParseCount("intWin", raw.Win)
	if err != nil {
		return provider.StandingsRow{}, err
	}
	draw, err := provider.ParseCount("intDraw", raw.Draw)
	if err != nil {
		return provider.StandingsRow{}, err
	}
	lost, err := provider.ParseCount("intLoss", raw.Loss)
	if err != nil {
		return provider.StandingsRow{}, err
	}
	goalsFor, err := provider.ParseCount("intGoalsFor", raw.GoalsFor)
	if err != nil {
		return provider.StandingsRow{}, err
	}
	goalsAgainst, err := provider.ParseCount("intGoalsAgainst", raw.GoalsAgainst)
	if err != nil {
		return provider.StandingsRow{}, err
	}
	goalDiff, err := provider.ParseSigned("intGoalDifference", raw.GoalDifference)
	if err != nil {
		return provider.StandingsRow{}, err
	}
	points, err := provider.ParseCount("intPoints", raw.Points)
	if err != nil {
		return provider.StandingsRow{}, err
	}
	return provider.StandingsRow{
		Position: position,
		Team: provider.Team{
			ID:    raw.TeamID,
			Name:  raw.Team,
			Crest: provider.OptionalString(raw.Badge),
		},
		PlayedGames:    played,
		Won:            won,
		Draw:           draw,
		Lost:           lost,
		GoalsFor:       goalsFor,
		GoalsAgainst:   goalsAgainst,
		GoalDifference: goalDiff,
		Points:         points,
	}, nil
}

// --------------------------------------------------------------------------
// Team details
// --------------------------------------------------------------------------

// TeamDetails looks a club up by name and returns its profile. Multi-match
// results are not disambiguated: the first hit wins, as the upstream search
// ranks exact matches first. Failure falls back to the static profile.
func (s *Service) TeamDetails(ctx context.Context, name string) (provider.TeamDetails, error) {
	details, err := s.liveTeamDetails(ctx, name)
	if err != nil {
		s.logger.Warn("team details fetch failed, serving placeholder", "team", name, "error", err)
		return PlaceholderTeamDetails, nil
	}
	return details, nil
}

func (s *Service) liveTeamDetails(ctx context.Context, name string) (provider.TeamDetails, error) {
	var env teamsEnvelope
	if err := s.client.getJSON(ctx, "/searchteams.php", url.Values{"t": {name}}, &env); err != nil {
		return provider.TeamDetails{}, err
	}
	if len(env.Teams) == 0 {
		return provider.TeamDetails{}, fmt.Errorf("team %q: %w", name, provider.ErrTeamNotFound)
	}

	t := env.Teams[0]
	team := mapTeam(t)
	if team.ShortName == "" {
		team.ShortName = shortNameFor(t.Name)
	}
	team.TLA = team.ShortName
	if team.Address == "" {
		team.Address = "Unknown"
	}
	if team.ClubColors == "" {
		team.ClubColors = "Unknown"
	}
	if team.Venue == "" {
		team.Venue = "Unknown"
	}
	return provider.TeamDetails{
		Team:         team,
		LastUpdated:  time.Now().UTC(),
		Achievements: unknownAchievements,
	}, nil
}

func shortNameFor(name string) string {
	r := []rune(name)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

// --------------------------------------------------------------------------
// Events
// --------------------------------------------------------------------------

// UpcomingEvents lists the league's next fixtures. Every returned event is
// mapped — filtering down to the home club is the consumer's concern.
// Failure falls back to the static placeholder fixtures.
func (s *Service) UpcomingEvents(ctx context.Context) (provider.MatchList, error) {
	var env eventsEnvelope
	err := s.client.getJSON(ctx, "/eventsnextleague.php", url.Values{"id": {s.leagueID}}, &env)
	if err == nil && len(env.Events) == 0 {
		err = fmt.Errorf("upcoming events: %w", provider.ErrEmptyResult)
	}
	if err != nil {
		s.logger.Warn("upcoming events fetch failed, serving placeholder", "error", err)
		return PlaceholderUpcoming, nil
	}

	out := provider.MatchList{Matches: make([]provider.Match, 0, len(env.Events))}
	for _, e := range env.Events {
		ts, err := provider.EventTime(e.DateEvent, e.Time)
		if err != nil {
			s.logger.Warn("dropping event with bad timestamp", "event", e.ID, "error", err)
			continue
		}
		out.Matches = append(out.Matches, provider.Match{
			ID:          e.ID,
			Competition: "Eliteserien",
			UTCDate:     ts,
			Status:      provider.StatusScheduled,
			HomeTeam:    provider.Team{Name: e.HomeTeam, Crest: provider.OptionalString(e.HomeTeamBadge)},
			AwayTeam:    provider.Team{Name: e.AwayTeam, Crest: provider.OptionalString(e.AwayTeamBadge)},
		})
	}
	return out, nil
}

// pastEventEndpoints is the fallback ladder for finished matches, in fixed
// priority order: team results first, then league results, then the whole
// season.
func (s *Service) pastEventEndpoints(teamID string) []eventEndpoint {
	return []eventEndpoint{
		{"/eventslast.php", url.Values{"id": {teamID}}},
		{"/eventspastleague.php", url.Values{"id": {s.leagueID}}},
		{"/eventsseason.php", url.Values{"id": {s.leagueID}, "s": {s.season}}},
	}
}

type eventEndpoint struct {
	path   string
	params url.Values
}

// PastEvents fetches finished matches involving the home club. The ladder
// stops at the first endpoint yielding a non-empty event list; the result
// is then filtered by club-name substring. This operation never surfaces an
// error — exhausting the ladder or filtering down to nothing both produce
// the safe-empty list.
func (s *Service) PastEvents(ctx context.Context, teamID string) (provider.MatchList, error) {
	safeEmpty := provider.MatchList{Matches: []provider.Match{}}

	events, err := s.tryEventEndpoints(ctx, s.pastEventEndpoints(teamID))
	if err != nil {
		s.logger.Warn("no past events from any endpoint", "team", teamID, "error", err)
		return safeEmpty, nil
	}

	out := provider.MatchList{Matches: []provider.Match{}}
	for _, e := range events {
		if !strings.Contains(e.HomeTeam, s.homeClub) && !strings.Contains(e.AwayTeam, s.homeClub) {
			continue
		}
		match, err := mapFinishedEvent(e)
		if err != nil {
			s.logger.Warn("dropping unmappable past event", "event", e.ID, "error", err)
			continue
		}
		out.Matches = append(out.Matches, match)
	}
	return out, nil
}

// tryEventEndpoints walks the ladder until an endpoint yields events. An
// empty list counts as a miss just like a transport error.
func (s *Service) tryEventEndpoints(ctx context.Context, endpoints []eventEndpoint) ([]rawEvent, error) {
	var lastErr error = provider.ErrEmptyResult
	for _, ep := range endpoints {
		var env eventsEnvelope
		if err := s.client.getJSON(ctx, ep.path, ep.params, &env); err != nil {
			s.logger.Debug("event endpoint failed, trying next", "path", ep.path, "error", err)
			lastErr = err
			continue
		}
		if len(env.Events) == 0 {
			s.logger.Debug("event endpoint empty, trying next", "path", ep.path)
			lastErr = fmt.Errorf("%s: %w", ep.path, provider.ErrEmptyResult)
			continue
		}
		return env.Events, nil
	}
	return nil, lastErr
}

func mapFinishedEvent(e rawEvent) (provider.Match, error) {
	ts, err := provider.EventTime(e.DateEvent, e.Time)
	if err != nil {
		return provider.Match{}, err
	}
	home, err := provider.ParseCount("intHomeScore", e.HomeScore)
	if err != nil {
		return provider.Match{}, err
	}
	away, err := provider.ParseCount("intAwayScore", e.AwayScore)
	if err != nil {
		return provider.Match{}, err
	}
	competition := e.League
	if competition == "" {
		competition = "Eliteserien"
	}
	return provider.Match{
		ID:          e.ID,
		Competition: competition,
		UTCDate:     ts,
		Status:      provider.StatusFinished,
		HomeTeam:    provider.Team{Name: e.HomeTeam, Crest: provider.OptionalString(e.HomeTeamBadge)},
		AwayTeam:    provider.Team{Name: e.AwayTeam, Crest: provider.OptionalString(e.AwayTeamBadge)},
		Score:       provider.Score{Home: &home, Away: &away},
	}, nil
}

// --------------------------------------------------------------------------
// Transfers (synthesized — no upstream endpoint exists)
// --------------------------------------------------------------------------

// TeamTransfers assembles a transfer list for the club. There is no real
// transfers endpoint: incoming moves are synthesized from roster signing
// dates within the last calendar year, and two known outgoing moves are
// appended as a hand-maintained supplement. The result is tagged Synthetic.
// Failure falls back to the baked-in known-accurate list.
func (s *Service) TeamTransfers(ctx context.Context, name string) (provider.TransferList, error) {
	list, err := s.synthesizeTransfers(ctx, name)
	if err != nil {
		s.logger.Warn("transfer synthesis failed, serving fallback list", "team", name, "error", err)
		return fallbackTransfers, nil
	}
	return list, nil
}

func (s *Service) synthesizeTransfers(ctx context.Context, name string) (provider.TransferList, error) {
	details, err := s.liveTeamDetails(ctx, name)
	if err != nil {
		return provider.TransferList{}, err
	}

	var env playersEnvelope
	if err := s.client.getJSON(ctx, "/lookup_all_players.php", url.Values{"id": {details.ID}}, &env); err != nil {
		return provider.TransferList{}, err
	}
	if len(env.Player) == 0 {
		return provider.TransferList{}, fmt.Errorf("roster for %q: %w", name, provider.ErrEmptyResult)
	}

	currentYear := time.Now().Year()
	season := strconv.Itoa(currentYear)

	list := provider.TransferList{Synthetic: true}
	for _, p := range env.Player {
		if !signedSince(p.DateSigned, currentYear-1) {
			continue
		}
		from := p.FormerTeam
		if from == "" {
			from = "Unknown"
		}
		fee := p.Wage
		if fee == "" {
			fee = "Ukjent"
		}
		list.Transfers = append(list.Transfers, provider.Transfer{
			ID:         len(list.Transfers) + 1,
			PlayerName: p.Name,
			FromTeam:   from,
			ToTeam:     name,
			Season:     season,
			Type:       provider.TransferPermanent,
			Fee:        fee,
			Direction:  provider.DeriveDirection(from, name, s.homeClub),
		})
	}

	// Known outgoing moves the roster endpoint cannot show — players who
	// left no longer appear in the roster at all.
	for _, out := range []struct{ player, to string }{
		{"Henrik Kjelsrud Johansen", "Sarpsborg 08"},
		{"Stian Stray Molde", "Kristiansund BK"},
	} {
		list.Transfers = append(list.Transfers, provider.Transfer{
			ID:         len(list.Transfers) + 1,
			PlayerName: out.player,
			FromTeam:   name,
			ToTeam:     out.to,
			Season:     season,
			Type:       provider.TransferPermanent,
			Fee:        "Ukjent",
			Direction:  provider.DeriveDirection(name, out.to, s.homeClub),
		})
	}
	return list, nil
}

func signedSince(dateSigned string, year int) bool {
	if dateSigned == "" {
		return false
	}
	t, err := time.Parse("2006-01-02", dateSigned)
	if err != nil {
		return false
	}
	return t.Year() >= year
}

// --------------------------------------------------------------------------
// Player statistics (synthesized — no upstream endpoint exists)
// --------------------------------------------------------------------------

// PlayerStats fetches the roster and recent results, then generates
// per-player statistics with gen. The values are simulated — tagged
// Synthetic — but the position bias is contractual: forwards out-score
// goalkeepers. This operation propagates failure instead of substituting a
// placeholder; the fetch controller decides what the caller sees.
func (s *Service) PlayerStats(ctx context.Context, teamID string, gen *StatsGenerator) (provider.PlayerStats, error) {
	var env playersEnvelope
	if err := s.client.getJSON(ctx, "/lookup_all_players.php", url.Values{"id": {teamID}}, &env); err != nil {
		return provider.PlayerStats{}, fmt.Errorf("fetch roster: %w", err)
	}
	if len(env.Player) == 0 {
		return provider.PlayerStats{}, fmt.Errorf("roster for team %s: %w", teamID, provider.ErrEmptyResult)
	}

	// The results fetch is sequential by design: roster first, then form
	// context. PastEvents never errors.
	past, _ := s.PastEvents(ctx, teamID)
	s.logger.Debug("player stats form context", "team", teamID, "recent_matches", len(past.Matches))

	players := make([]provider.PlayerStat, 0, len(env.Player))
	for _, p := range env.Player {
		players = append(players, gen.PlayerStat(p))
	}

	return provider.PlayerStats{
		TopScorers: topBy(players, 5, func(p provider.PlayerStat) float64 { return float64(p.Goals) }),
		TopAssists: topBy(players, 5, func(p provider.PlayerStat) float64 { return float64(p.Assists) }),
		PlayerForm: topBy(players, 10, func(p provider.PlayerStat) float64 { return p.Rating }),
		Synthetic:  true,
	}, nil
}

// topBy returns the n highest-keyed players without disturbing the input.
func topBy(players []provider.PlayerStat, n int, key func(provider.PlayerStat) float64) []provider.PlayerStat {
	sorted := make([]provider.PlayerStat, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool { return key(sorted[i]) > key(sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
