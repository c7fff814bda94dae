// Command ffkstats is the FFKStats data inspection CLI. It runs the same
// normalization pipeline as the dashboard and prints canonical JSON, which
// makes upstream shape changes easy to diagnose from a terminal.
//
// Usage:
//
//	ffkstats sportsdb standings --season 2025
//	ffkstats sportsdb team "Fredrikstad"
//	ffkstats sportsdb results
//	ffkstats sportsdb players --seed 42
//	ffkstats fd table --competition TIP
//	ffkstats fd season --season 2025
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ffkstats/ffkstats/internal/config"
	"github.com/ffkstats/ffkstats/internal/provider/footballdata"
	"github.com/ffkstats/ffkstats/internal/provider/sportsdb"
)

// Free-tier request rate shared by both upstreams.
const upstreamRequestsPerMinute = 30

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "ffkstats",
		Short: "FFKStats data inspection CLI",
	}

	root.AddCommand(sportsDBCmd())
	root.AddCommand(footballDataCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// run wires config, signal handling and JSON output around one fetch.
func run(fetch func(ctx context.Context, cfg *config.Config) (any, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, 60*time.Second)
	defer timeoutCancel()

	result, err := fetch(ctx, cfg)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func sportsDBService(cfg *config.Config) *sportsdb.Service {
	client := sportsdb.NewClient(cfg.SportsDBBaseURL, upstreamRequestsPerMinute, logger)
	return sportsdb.NewService(client, cfg.HomeClub, cfg.SportsDBLeagueID, cfg.Season, logger)
}

func footballDataService(cfg *config.Config) *footballdata.Service {
	client := footballdata.NewClient(cfg.FootballDataBaseURL, cfg.FootballDataAPIKey, upstreamRequestsPerMinute, logger)
	return footballdata.NewService(client, logger)
}

// --------------------------------------------------------------------------
// sportsdb commands
// --------------------------------------------------------------------------

func sportsDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sportsdb",
		Short: "Inspect TheSportsDB normalization",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "leagues",
		Short: "Norwegian leagues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return sportsDBService(cfg).NorwegianLeagues(ctx)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "teams",
		Short: "Eliteserien teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return sportsDBService(cfg).EliteserienTeams(ctx)
			})
		},
	})

	var standingsSeason string
	standings := &cobra.Command{
		Use:   "standings",
		Short: "Eliteserien standings table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				season := standingsSeason
				if season == "" {
					season = cfg.Season
				}
				return sportsDBService(cfg).LeagueStandings(ctx, season)
			})
		},
	}
	standings.Flags().StringVar(&standingsSeason, "season", "", "Season year (defaults to FFK_SEASON)")
	cmd.AddCommand(standings)

	cmd.AddCommand(&cobra.Command{
		Use:   "team [name]",
		Short: "Team details by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				name := cfg.HomeClub
				if len(args) > 0 {
					name = args[0]
				}
				return sportsDBService(cfg).TeamDetails(ctx, name)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "upcoming",
		Short: "Upcoming league events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return sportsDBService(cfg).UpcomingEvents(ctx)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "results",
		Short: "Recent finished events for the club",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return sportsDBService(cfg).PastEvents(ctx, cfg.SportsDBTeamID)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "transfers [name]",
		Short: "Transfer activity for a club",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				name := cfg.HomeClub
				if len(args) > 0 {
					name = args[0]
				}
				return sportsDBService(cfg).TeamTransfers(ctx, name)
			})
		},
	})

	var statsSeed int64
	players := &cobra.Command{
		Use:   "players",
		Short: "Player statistics for the club roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				seed := statsSeed
				if seed == 0 {
					seed = time.Now().UnixNano()
				}
				gen := sportsdb.NewStatsGenerator(seed)
				return sportsDBService(cfg).PlayerStats(ctx, cfg.SportsDBTeamID, gen)
			})
		},
	}
	players.Flags().Int64Var(&statsSeed, "seed", 0, "Statistics seed (0 uses the clock)")
	cmd.AddCommand(players)

	return cmd
}

// --------------------------------------------------------------------------
// football-data.org commands
// --------------------------------------------------------------------------

func footballDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fd",
		Short: "Inspect football-data.org normalization",
	}

	var teamID string
	teamFlag := func(c *cobra.Command) {
		c.Flags().StringVar(&teamID, "team", "", "Team ID (defaults to FFK_TEAM_ID)")
	}
	resolveTeam := func(cfg *config.Config) string {
		if teamID != "" {
			return teamID
		}
		return cfg.TeamID
	}

	team := &cobra.Command{
		Use:   "team",
		Short: "Team profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return footballDataService(cfg).TeamInfo(ctx, resolveTeam(cfg))
			})
		},
	}
	teamFlag(team)
	cmd.AddCommand(team)

	squad := &cobra.Command{
		Use:   "squad",
		Short: "Team squad",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return footballDataService(cfg).TeamSquad(ctx, resolveTeam(cfg))
			})
		},
	}
	teamFlag(squad)
	cmd.AddCommand(squad)

	var limit int
	fixtures := &cobra.Command{
		Use:   "fixtures",
		Short: "Upcoming fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return footballDataService(cfg).UpcomingFixtures(ctx, resolveTeam(cfg), limit)
			})
		},
	}
	teamFlag(fixtures)
	fixtures.Flags().IntVar(&limit, "limit", 5, "Maximum matches")
	cmd.AddCommand(fixtures)

	var resultsLimit int
	results := &cobra.Command{
		Use:   "results",
		Short: "Recent finished matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return footballDataService(cfg).PastMatches(ctx, resolveTeam(cfg), resultsLimit)
			})
		},
	}
	teamFlag(results)
	results.Flags().IntVar(&resultsLimit, "limit", 5, "Maximum matches")
	cmd.AddCommand(results)

	var season string
	seasonCmd := &cobra.Command{
		Use:   "season",
		Short: "All matches for one season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				s := season
				if s == "" {
					s = cfg.Season
				}
				return footballDataService(cfg).SeasonMatches(ctx, resolveTeam(cfg), s)
			})
		},
	}
	teamFlag(seasonCmd)
	seasonCmd.Flags().StringVar(&season, "season", "", "Season year (defaults to FFK_SEASON)")
	cmd.AddCommand(seasonCmd)

	var competition string
	compFlag := func(c *cobra.Command) {
		c.Flags().StringVar(&competition, "competition", "", "Competition code (defaults to FFK_COMPETITION)")
	}
	resolveComp := func(cfg *config.Config) string {
		if competition != "" {
			return competition
		}
		return cfg.CompetitionCode
	}

	table := &cobra.Command{
		Use:   "table",
		Short: "League table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return footballDataService(cfg).LeagueTable(ctx, resolveComp(cfg))
			})
		},
	}
	compFlag(table)
	cmd.AddCommand(table)

	cmd.AddCommand(&cobra.Command{
		Use:   "competitions",
		Short: "Available competitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return footballDataService(cfg).Competitions(ctx)
			})
		},
	})

	clubs := &cobra.Command{
		Use:   "clubs",
		Short: "Teams in a competition",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) (any, error) {
				return footballDataService(cfg).TeamsByCompetition(ctx, resolveComp(cfg))
			})
		},
	}
	compFlag(clubs)
	cmd.AddCommand(clubs)

	return cmd
}
