package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/ffkstats/ffkstats/internal/api/respond"
)

// ProxyFootballData relays /api/* to football-data.org, attaching the
// server-held auth token the browser must never see.
// @Summary football-data.org passthrough
// @Description Forwards the remaining path and query string to football-data.org v4 with the configured X-Auth-Token. The upstream status code and body are returned verbatim, error bodies included.
// @Tags proxy
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/{path} [get]
func (h *Handler) ProxyFootballData(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, "/api", h.cfg.FootballDataBaseURL, h.cfg.FootballDataAPIKey)
}

// ProxySportsDB relays /sportsdb/* to TheSportsDB. No auth required.
// @Summary TheSportsDB passthrough
// @Description Forwards the remaining path and query string to TheSportsDB. The upstream status code and body are returned verbatim.
// @Tags proxy
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /sportsdb/{path} [get]
func (h *Handler) ProxySportsDB(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, "/sportsdb", h.cfg.SportsDBBaseURL, "")
}

// relay forwards one request to an upstream base URL. A single best-effort
// attempt: upstream responses — errors included — pass through with their
// original status so callers can tell provider errors from proxy errors,
// which use the {error, ...} envelope with status 500.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request, prefix, baseURL, authToken string) {
	upstreamURL := baseURL + strings.TrimPrefix(r.URL.Path, prefix)
	if r.URL.RawQuery != "" {
		upstreamURL += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, upstreamURL, nil)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	req.Header.Set("Accept", "application/json")
	if authToken != "" {
		req.Header.Set("X-Auth-Token", authToken)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "No response received from API")
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}
