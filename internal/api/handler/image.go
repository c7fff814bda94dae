package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/ffkstats/ffkstats/internal/api/respond"
	"github.com/ffkstats/ffkstats/internal/cache"
)

// ProxyImage fetches an external image server-side so that badge and player
// images load without cross-origin restrictions. Successful responses are
// cached with a weak ETag so repeat views cost nothing upstream.
// @Summary Image passthrough
// @Description Fetches the image at ?url= and returns its bytes. Responses carry Cache-Control and an ETag; conditional requests are answered with 304.
// @Tags proxy
// @Produce octet-stream
// @Param url query string true "Absolute image URL"
// @Success 200 {string} binary
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /proxy-image [get]
func (h *Handler) ProxyImage(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("url")
	if imageURL == "" {
		respond.WriteError(w, http.StatusBadRequest, "No image URL provided")
		return
	}

	cacheKey := "image:" + imageURL
	if data, contentType, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			w.Header().Set("ETag", etag)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		h.writeImage(w, data, contentType, etag)
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, imageURL, nil)
	if err != nil {
		respond.WriteErrorMessage(w, http.StatusInternalServerError, "Failed to proxy image", err.Error())
		return
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		respond.WriteErrorMessage(w, http.StatusInternalServerError, "Failed to proxy image", err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respond.WriteErrorMessage(w, http.StatusInternalServerError, "Failed to proxy image", resp.Status)
		return
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		respond.WriteErrorMessage(w, http.StatusInternalServerError, "Failed to proxy image", err.Error())
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = contentTypeFromURL(imageURL)
	}

	etag := h.cache.Set(cacheKey, data, contentType, h.cfg.ImageCacheTTL)
	h.writeImage(w, data, contentType, etag)
}

func (h *Handler) writeImage(w http.ResponseWriter, data []byte, contentType, etag string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func contentTypeFromURL(u string) string {
	lower := strings.ToLower(u)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".svg"):
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
