package sportsdb

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ffkstats/ffkstats/internal/fetch"
)

func TestStandingsQueryThroughController(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search_all_leagues.php" {
			w.Write([]byte(leaguesJSON))
			return
		}
		w.Write([]byte(tableJSON))
	})

	c := fetch.New(svc.LeagueStandingsQuery("2025"), fetch.Options{})
	c.Reload(context.Background(), "season", "2025")

	st := c.State()
	require.NoError(t, st.Err)
	require.NotNil(t, st.Data)
	require.Len(t, st.Data.Rows, 2)
}

func TestPlayerStatsQueryFallsBackInController(t *testing.T) {
	// PlayerStats propagates its error; the controller is what substitutes
	// the placeholder.
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := fetch.New(svc.PlayerStatsQuery("133604", NewStatsGenerator(1)), fetch.Options{UseMock: true})
	c.Refetch(context.Background())

	st := c.State()
	require.Error(t, st.Err)
	require.NotNil(t, st.Data)
	require.Equal(t, &PlaceholderPlayerStats, st.Data)
}

func TestQueriesCarryPlaceholders(t *testing.T) {
	svc := NewService(nil, "Fredrikstad", "4330", "2025", nil)

	if svc.NorwegianLeaguesQuery().Placeholder == nil {
		t.Error("leagues query lacks a placeholder")
	}
	if svc.EliteserienTeamsQuery().Placeholder == nil {
		t.Error("teams query lacks a placeholder")
	}
	if svc.TeamDetailsQuery("Fredrikstad").Placeholder == nil {
		t.Error("team details query lacks a placeholder")
	}
	if svc.UpcomingEventsQuery().Placeholder == nil {
		t.Error("upcoming query lacks a placeholder")
	}
	if svc.PastEventsQuery("133604").Placeholder == nil {
		t.Error("past events query lacks a placeholder")
	}
	if svc.TeamTransfersQuery("Fredrikstad").Placeholder == nil {
		t.Error("transfers query lacks a placeholder")
	}
}
