// ABOUTME: HTML board page listing every roster session with its utilization bar
// ABOUTME: Renders rows concurrently through the memoizing bar renderer

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/markalston/campboard/internal/roster"
	"github.com/markalston/campboard/internal/web/components"
	"golang.org/x/sync/errgroup"
)

// maxRowRenderers bounds concurrent row rendering for large rosters
const maxRowRenderers = 8

// Board renders the full board page. Without a roster the page shows only
// the header.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	dark := h.cfg.DarkBackground
	if v := r.URL.Query().Get("dark"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.writeError(w, "dark must be a boolean", http.StatusBadRequest)
			return
		}
		dark = parsed
	}

	var sessions []roster.Session
	if h.rosters != nil {
		ros, err := h.rosters.Load()
		if err != nil {
			slog.Error("Failed to load roster", "path", h.cfg.RosterFile, "error", err)
			h.writeError(w, "Roster unavailable", http.StatusInternalServerError)
			return
		}
		sessions = ros.Sessions
	}

	rows, err := h.renderRows(r.Context(), sessions)
	if err != nil {
		slog.Error("Failed to render board rows", "error", err)
		h.writeError(w, "Render failed", http.StatusInternalServerError)
		return
	}

	var page bytes.Buffer
	if err := components.BoardPage(h.branding, dark, rows).Render(r.Context(), &page); err != nil {
		slog.Error("Failed to render board page", "error", err)
		h.writeError(w, "Render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page.WriteTo(w)
}

// renderRows builds one board row per session, preserving roster order.
func (h *Handler) renderRows(ctx context.Context, sessions []roster.Session) ([]components.BoardRow, error) {
	rows := make([]components.BoardRow, len(sessions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxRowRenderers)

	for i, s := range sessions {
		g.Go(func() error {
			reading := s.Reading()
			bar, err := h.bars.Render(ctx, reading)
			if err != nil {
				return fmt.Errorf("session %q: %w", s.Name, err)
			}
			rows[i] = components.BoardRow{
				Name:      s.Name,
				Occupancy: reading.Occupancy,
				Capacity:  reading.Capacity,
				Bar:       templ.Raw(bar),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
