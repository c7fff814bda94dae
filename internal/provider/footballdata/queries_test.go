package footballdata

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ffkstats/ffkstats/internal/fetch"
)

func TestTeamInfoQueryFallsBackInController(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	c := fetch.New(svc.TeamInfoQuery("6956"), fetch.Options{UseMock: true})
	c.Refetch(context.Background())

	// The operation rejected; the controller substituted the placeholder
	// and kept the error visible.
	st := c.State()
	require.Error(t, st.Err)
	require.NotNil(t, st.Data)
	require.Equal(t, "Fredrikstad FK", st.Data.Name)
}

func TestSeasonMatchesQueryThroughController(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(matchesJSON))
	})

	c := fetch.New(svc.SeasonMatchesQuery("6956", "2025"), fetch.Options{UseMock: true})
	c.Reload(context.Background(), "team", "6956", "season", "2025")

	st := c.State()
	require.NoError(t, st.Err)
	require.Len(t, st.Data.Matches, 3)
}

func TestQueriesCarryPlaceholders(t *testing.T) {
	svc := NewService(nil, nil)

	if svc.UpcomingFixturesQuery("6956", 5).Placeholder == nil {
		t.Error("fixtures query lacks a placeholder")
	}
	if svc.PastMatchesQuery("6956", 5).Placeholder == nil {
		t.Error("past matches query lacks a placeholder")
	}
	if svc.TeamSquadQuery("6956").Placeholder == nil {
		t.Error("squad query lacks a placeholder")
	}
	if svc.LeagueTableQuery("TIP").Placeholder == nil {
		t.Error("table query lacks a placeholder")
	}
	if svc.CompetitionsQuery().Placeholder == nil {
		t.Error("competitions query lacks a placeholder")
	}
	if svc.TeamsByCompetitionQuery("TIP").Placeholder == nil {
		t.Error("competition teams query lacks a placeholder")
	}
}
