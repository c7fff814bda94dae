// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ffkstats.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Provider defaults
// --------------------------------------------------------------------------

const (
	// DefaultFootballDataBaseURL is the paid provider (football-data.org v4).
	DefaultFootballDataBaseURL = "https://api.football-data.org/v4"

	// DefaultSportsDBBaseURL is the free provider (TheSportsDB, key 3 tier).
	DefaultSportsDBBaseURL = "https://www.thesportsdb.com/api/v1/json/3"

	// DefaultTeamID is Fredrikstad FK's football-data.org team id.
	DefaultTeamID = "6956"

	// DefaultCompetitionCode is Eliteserien's football-data.org code.
	DefaultCompetitionCode = "TIP"

	// DefaultSportsDBLeagueID is Eliteserien's TheSportsDB league id.
	DefaultSportsDBLeagueID = "4330"

	// DefaultSportsDBTeamID is Fredrikstad FK's TheSportsDB team id.
	DefaultSportsDBTeamID = "133604"

	// DefaultHomeClub is the club name used for match filtering and
	// transfer direction derivation.
	DefaultHomeClub = "Fredrikstad"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production

	// Upstream providers
	FootballDataBaseURL string
	FootballDataAPIKey  string
	SportsDBBaseURL     string

	// Club defaults
	TeamID           string
	CompetitionCode  string
	SportsDBLeagueID string
	SportsDBTeamID   string
	HomeClub         string
	Season           string

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Image cache
	CacheEnabled  bool
	ImageCacheTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// The football-data.org key is optional: its absence is logged at startup
// and proxied requests simply go out without the auth header.
func Load() (*Config, error) {
	return &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 3001)),
		Environment: envOr("ENVIRONMENT", "development"),

		FootballDataBaseURL: envOr("FOOTBALL_DATA_BASE_URL", DefaultFootballDataBaseURL),
		FootballDataAPIKey:  envOr("FOOTBALL_DATA_API_KEY", envOr("VITE_API_KEY", "")),
		SportsDBBaseURL:     envOr("SPORTSDB_BASE_URL", DefaultSportsDBBaseURL),

		TeamID:           envOr("FFK_TEAM_ID", envOr("VITE_TEAM_ID", DefaultTeamID)),
		CompetitionCode:  envOr("FFK_COMPETITION", DefaultCompetitionCode),
		SportsDBLeagueID: envOr("FFK_SPORTSDB_LEAGUE_ID", DefaultSportsDBLeagueID),
		SportsDBTeamID:   envOr("FFK_SPORTSDB_TEAM_ID", DefaultSportsDBTeamID),
		HomeClub:         envOr("FFK_HOME_CLUB", DefaultHomeClub),
		Season:           envOr("FFK_SEASON", strconv.Itoa(time.Now().Year())),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled:  envBool("CACHE_ENABLED", true),
		ImageCacheTTL: time.Duration(envInt("IMAGE_CACHE_TTL_MINUTES", 60)) * time.Minute,
	}, nil
}

// IsDevelopment reports whether the process runs in development mode.
// The fetch controller's mock short-circuit is only armed in development.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
