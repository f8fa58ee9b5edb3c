// ABOUTME: HTTP handlers for campboard fragments and APIs
// ABOUTME: Renders logo and utilization fragments and serves classification JSON

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/markalston/campboard/internal/branding"
	"github.com/markalston/campboard/internal/config"
	"github.com/markalston/campboard/internal/utilization"
	"github.com/markalston/campboard/internal/web/components"
	"github.com/markalston/campboard/internal/web/middleware"
)

type Handler struct {
	cfg      *config.Config
	branding branding.Branding
	bars     *components.BarRenderer
	rosters  *rosterSource
}

// NewHandler wires handlers to branding and a memoizing bar renderer
func NewHandler(cfg *config.Config, b branding.Branding) *Handler {
	if cfg == nil {
		cfg = &config.Config{}
	}
	ttl := time.Duration(cfg.RenderCacheTTL) * time.Second
	h := &Handler{
		cfg:      cfg,
		branding: b,
		bars:     components.NewBarRenderer(ttl),
	}
	if cfg.HasRoster() {
		h.rosters = newRosterSource(cfg.RosterFile, ttl)
	}
	return h
}

// Close releases the renderer and roster caches
func (h *Handler) Close() {
	h.bars.Close()
	if h.rosters != nil {
		h.rosters.Close()
	}
}

// UtilizationResponse is the JSON classification of a reading
type UtilizationResponse struct {
	utilization.Reading
	Level        utilization.Level `json:"level"`
	FillWidth    float64           `json:"fill_width"`
	OverCapacity bool              `json:"over_capacity"`
}

func newUtilizationResponse(r utilization.Reading) UtilizationResponse {
	return UtilizationResponse{
		Reading:      r,
		Level:        utilization.Classify(r),
		FillWidth:    utilization.FillWidth(r.Utilization),
		OverCapacity: r.OverCapacity(),
	}
}

// SessionResponse is one roster session with its classification
type SessionResponse struct {
	Name string `json:"name"`
	UtilizationResponse
}

// Health returns service status and renderer cache size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ok",
		"camp":              h.branding.Name,
		"roster_configured": h.cfg.HasRoster(),
		"cached_fragments":  h.bars.Cached(),
	})
}

// Utilization classifies the reading given in the query string.
func (h *Handler) Utilization(w http.ResponseWriter, r *http.Request) {
	reading, err := parseReading(r)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, newUtilizationResponse(reading))
}

// Sessions lists roster sessions with their classification.
func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	if h.rosters == nil {
		h.writeError(w, "No roster configured", http.StatusNotFound)
		return
	}

	ros, err := h.rosters.Load()
	if err != nil {
		slog.Error("Failed to load roster", "path", h.cfg.RosterFile, "error", err)
		h.writeError(w, "Roster unavailable", http.StatusInternalServerError)
		return
	}

	resp := make([]SessionResponse, 0, len(ros.Sessions))
	for _, s := range ros.Sessions {
		resp = append(resp, SessionResponse{
			Name:                s.Name,
			UtilizationResponse: newUtilizationResponse(s.Reading()),
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// LogoFragment renders the logo HTML fragment.
func (h *Handler) LogoFragment(w http.ResponseWriter, r *http.Request) {
	props, err := parseLogoProps(r)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.Logo(h.branding, props).Render(r.Context(), w); err != nil {
		slog.Error("Failed to write logo fragment", "error", err)
	}
}

// UtilizationFragment renders the utilization bar HTML fragment.
func (h *Handler) UtilizationFragment(w http.ResponseWriter, r *http.Request) {
	reading, err := parseReading(r)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	html, err := h.bars.Render(r.Context(), reading)
	if err != nil {
		slog.Error("Failed to render utilization bar", "error", err)
		h.writeError(w, "Render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func parseReading(r *http.Request) (utilization.Reading, error) {
	q := r.URL.Query()

	percent, err := strconv.ParseFloat(q.Get("utilization"), 64)
	if err != nil || math.IsNaN(percent) || math.IsInf(percent, 0) {
		return utilization.Reading{}, fmt.Errorf("utilization must be a number")
	}
	occupancy, err := strconv.Atoi(q.Get("occupancy"))
	if err != nil {
		return utilization.Reading{}, fmt.Errorf("occupancy must be an integer")
	}
	capacity, err := strconv.Atoi(q.Get("capacity"))
	if err != nil {
		return utilization.Reading{}, fmt.Errorf("capacity must be an integer")
	}

	return utilization.Reading{Utilization: percent, Occupancy: occupancy, Capacity: capacity}, nil
}

func parseLogoProps(r *http.Request) (components.LogoProps, error) {
	q := r.URL.Query()

	size, err := branding.ParseSize(q.Get("size"))
	if err != nil {
		return components.LogoProps{}, err
	}

	dark := false
	if v := q.Get("dark"); v != "" {
		if dark, err = strconv.ParseBool(v); err != nil {
			return components.LogoProps{}, fmt.Errorf("dark must be a boolean")
		}
	}

	return components.LogoProps{Size: size, ExtraClass: q.Get("class"), DarkBackground: dark}, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		h.writeError(w, "Response encoding failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(append(data, '\n'))
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	middleware.WriteJSONError(w, message, code)
}
