package footballdata

import (
	"context"

	"github.com/ffkstats/ffkstats/internal/fetch"
	"github.com/ffkstats/ffkstats/internal/provider"
)

// Query constructors bind an operation's arguments and attach its
// placeholder payload for the fetch controller.

func (s *Service) TeamInfoQuery(teamID string) fetch.Query[provider.TeamDetails] {
	return fetch.Query[provider.TeamDetails]{
		Name:        "footballdata.team_info",
		Placeholder: &PlaceholderTeam,
		Run: func(ctx context.Context) (provider.TeamDetails, error) {
			return s.TeamInfo(ctx, teamID)
		},
	}
}

func (s *Service) UpcomingFixturesQuery(teamID string, limit int) fetch.Query[provider.MatchList] {
	return fetch.Query[provider.MatchList]{
		Name:        "footballdata.upcoming_fixtures",
		Placeholder: &PlaceholderUpcomingFixtures,
		Run: func(ctx context.Context) (provider.MatchList, error) {
			return s.UpcomingFixtures(ctx, teamID, limit)
		},
	}
}

func (s *Service) PastMatchesQuery(teamID string, limit int) fetch.Query[provider.MatchList] {
	return fetch.Query[provider.MatchList]{
		Name:        "footballdata.past_matches",
		Placeholder: &PlaceholderPastMatches,
		Run: func(ctx context.Context) (provider.MatchList, error) {
			return s.PastMatches(ctx, teamID, limit)
		},
	}
}

func (s *Service) SeasonMatchesQuery(teamID, season string) fetch.Query[provider.MatchList] {
	return fetch.Query[provider.MatchList]{
		Name:        "footballdata.season_matches",
		Placeholder: &PlaceholderSeasonMatches,
		Run: func(ctx context.Context) (provider.MatchList, error) {
			return s.SeasonMatches(ctx, teamID, season)
		},
	}
}

func (s *Service) TeamSquadQuery(teamID string) fetch.Query[provider.Squad] {
	return fetch.Query[provider.Squad]{
		Name:        "footballdata.team_squad",
		Placeholder: &PlaceholderSquad,
		Run: func(ctx context.Context) (provider.Squad, error) {
			return s.TeamSquad(ctx, teamID)
		},
	}
}

func (s *Service) LeagueTableQuery(competition string) fetch.Query[provider.Table] {
	return fetch.Query[provider.Table]{
		Name:        "footballdata.league_table",
		Placeholder: &PlaceholderLeagueTable,
		Run: func(ctx context.Context) (provider.Table, error) {
			return s.LeagueTable(ctx, competition)
		},
	}
}

func (s *Service) CompetitionsQuery() fetch.Query[provider.LeagueList] {
	return fetch.Query[provider.LeagueList]{
		Name:        "footballdata.competitions",
		Placeholder: &PlaceholderCompetitions,
		Run: func(ctx context.Context) (provider.LeagueList, error) {
			return s.Competitions(ctx)
		},
	}
}

func (s *Service) TeamsByCompetitionQuery(competition string) fetch.Query[provider.TeamList] {
	return fetch.Query[provider.TeamList]{
		Name:        "footballdata.competition_teams",
		Placeholder: &PlaceholderCompetitionTeams,
		Run: func(ctx context.Context) (provider.TeamList, error) {
			return s.TeamsByCompetition(ctx, competition)
		},
	}
}
