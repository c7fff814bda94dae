package sportsdb

import (
	"context"

	"github.com/ffkstats/ffkstats/internal/fetch"
	"github.com/ffkstats/ffkstats/internal/provider"
)

// Query constructors bind an operation's arguments and attach its
// placeholder payload for the fetch controller.

func (s *Service) NorwegianLeaguesQuery() fetch.Query[provider.LeagueList] {
	return fetch.Query[provider.LeagueList]{
		Name:        "sportsdb.norwegian_leagues",
		Placeholder: &PlaceholderLeagues,
		Run: func(ctx context.Context) (provider.LeagueList, error) {
			return s.NorwegianLeagues(ctx)
		},
	}
}

func (s *Service) EliteserienTeamsQuery() fetch.Query[provider.TeamList] {
	return fetch.Query[provider.TeamList]{
		Name:        "sportsdb.eliteserien_teams",
		Placeholder: &PlaceholderTeams,
		Run: func(ctx context.Context) (provider.TeamList, error) {
			return s.EliteserienTeams(ctx)
		},
	}
}

func (s *Service) LeagueStandingsQuery(season string) fetch.Query[provider.Table] {
	return fetch.Query[provider.Table]{
		Name:        "sportsdb.league_standings",
		Placeholder: &PlaceholderStandings,
		Run: func(ctx context.Context) (provider.Table, error) {
			return s.LeagueStandings(ctx, season)
		},
	}
}

func (s *Service) TeamDetailsQuery(name string) fetch.Query[provider.TeamDetails] {
	return fetch.Query[provider.TeamDetails]{
		Name:        "sportsdb.team_details",
		Placeholder: &PlaceholderTeamDetails,
		Run: func(ctx context.Context) (provider.TeamDetails, error) {
			return s.TeamDetails(ctx, name)
		},
	}
}

func (s *Service) UpcomingEventsQuery() fetch.Query[provider.MatchList] {
	return fetch.Query[provider.MatchList]{
		Name:        "sportsdb.upcoming_events",
		Placeholder: &PlaceholderUpcoming,
		Run: func(ctx context.Context) (provider.MatchList, error) {
			return s.UpcomingEvents(ctx)
		},
	}
}

func (s *Service) PastEventsQuery(teamID string) fetch.Query[provider.MatchList] {
	return fetch.Query[provider.MatchList]{
		Name:        "sportsdb.past_events",
		Placeholder: &PlaceholderPastEvents,
		Run: func(ctx context.Context) (provider.MatchList, error) {
			return s.PastEvents(ctx, teamID)
		},
	}
}

func (s *Service) TeamTransfersQuery(name string) fetch.Query[provider.TransferList] {
	return fetch.Query[provider.TransferList]{
		Name:        "sportsdb.team_transfers",
		Placeholder: &PlaceholderTransfers,
		Run: func(ctx context.Context) (provider.TransferList, error) {
			return s.TeamTransfers(ctx, name)
		},
	}
}

func (s *Service) PlayerStatsQuery(teamID string, gen *StatsGenerator) fetch.Query[provider.PlayerStats] {
	return fetch.Query[provider.PlayerStats]{
		Name:        "sportsdb.player_stats",
		Placeholder: &PlaceholderPlayerStats,
		Run: func(ctx context.Context) (provider.PlayerStats, error) {
			return s.PlayerStats(ctx, teamID, gen)
		},
	}
}
