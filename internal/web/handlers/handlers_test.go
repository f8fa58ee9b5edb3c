// ABOUTME: Tests for campboard HTTP handlers and route registration
// ABOUTME: Uses httptest to exercise JSON APIs, fragments, and the board page

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markalston/campboard/internal/branding"
	"github.com/markalston/campboard/internal/config"
	"github.com/markalston/campboard/internal/utilization"
)

const testRoster = `
sessions:
  - name: Maple Cabin
    occupancy: 11
    capacity: 10
  - name: Birch <Cabin>
    occupancy: 4
    capacity: 10
`

func newTestHandler(t *testing.T, withRoster bool) *Handler {
	t.Helper()
	if withRoster {
		return newRosterHandler(t, testRoster, 60)
	}
	return buildHandler(t, &config.Config{RenderCacheTTL: 60})
}

// newRosterHandler serves the given roster YAML with the given cache TTL
func newRosterHandler(t *testing.T, rosterYAML string, ttl int) *Handler {
	t.Helper()

	cfg := &config.Config{RenderCacheTTL: ttl}
	cfg.RosterFile = filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(cfg.RosterFile, []byte(rosterYAML), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return buildHandler(t, cfg)
}

func buildHandler(t *testing.T, cfg *config.Config) *Handler {
	t.Helper()

	b := branding.Branding{
		Name:      "Camp Pinecrest",
		ShortName: "Pinecrest",
		Logos:     branding.StaticLogos{Large: "/static/pine-lg.svg"},
	}

	h := NewHandler(cfg, b)
	t.Cleanup(h.Close)
	return h
}

func serve(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	h.Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, false)

	rec := serve(t, h, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != "ok" || resp["camp"] != "Camp Pinecrest" {
		t.Errorf("unexpected health response: %v", resp)
	}
	if resp["roster_configured"] != false {
		t.Errorf("expected roster_configured false, got %v", resp["roster_configured"])
	}
}

func TestUtilization_JSON(t *testing.T) {
	h := newTestHandler(t, false)

	rec := serve(t, h, "/api/v1/utilization?utilization=150&occupancy=11&capacity=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Level        string  `json:"level"`
		FillWidth    float64 `json:"fill_width"`
		OverCapacity bool    `json:"over_capacity"`
		Occupancy    int     `json:"occupancy"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Level != "over_capacity" || resp.FillWidth != 100 || !resp.OverCapacity || resp.Occupancy != 11 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestUtilization_BadQuery(t *testing.T) {
	h := newTestHandler(t, false)

	for _, target := range []string{
		"/api/v1/utilization",
		"/api/v1/utilization?utilization=abc&occupancy=1&capacity=2",
		"/api/v1/utilization?utilization=50&occupancy=1.5&capacity=2",
		"/fragments/utilization?utilization=NaN&occupancy=1&capacity=2",
		"/fragments/utilization?utilization=50&occupancy=1",
	} {
		rec := serve(t, h, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: expected JSON error, got %s", target, ct)
		}
	}
}

func TestUtilizationFragment_Memoized(t *testing.T) {
	h := newTestHandler(t, false)

	target := "/fragments/utilization?utilization=42&occupancy=4&capacity=10"
	first := serve(t, h, target)
	second := serve(t, h, target)

	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("expected identical fragments")
	}
	if !strings.Contains(first.Body.String(), `style="width: 42%"`) {
		t.Errorf("unexpected fragment: %s", first.Body.String())
	}
	if h.bars.Renders() != 1 {
		t.Errorf("expected one render, got %d", h.bars.Renders())
	}
}

func TestLogoFragment(t *testing.T) {
	h := newTestHandler(t, false)

	rec := serve(t, h, "/fragments/logo?size=large&dark=true&class=mx-auto")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<img src="/static/pine-lg.svg"`) || !strings.Contains(body, "brightness-110 contrast-125 mx-auto") {
		t.Errorf("unexpected large logo: %s", body)
	}

	rec = serve(t, h, "/fragments/logo?size=compact")
	if body := rec.Body.String(); !strings.Contains(body, ">Pinecrest</span>") {
		t.Errorf("expected text fallback for compact, got %s", body)
	}
}

func TestLogoFragment_BadParams(t *testing.T) {
	h := newTestHandler(t, false)

	for _, target := range []string{"/fragments/logo?size=huge", "/fragments/logo?dark=maybe"} {
		if rec := serve(t, h, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestSessions(t *testing.T) {
	h := newTestHandler(t, true)

	rec := serve(t, h, "/api/v1/sessions")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []struct {
		Name  string `json:"name"`
		Level string `json:"level"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(resp))
	}
	if resp[0].Name != "Maple Cabin" || resp[0].Level != utilization.OverCapacity.String() {
		t.Errorf("unexpected first session: %+v", resp[0])
	}
	if resp[1].Level != utilization.Healthy.String() {
		t.Errorf("unexpected second session: %+v", resp[1])
	}
}

func TestSessions_NoRoster(t *testing.T) {
	h := newTestHandler(t, false)

	if rec := serve(t, h, "/api/v1/sessions"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestBoard(t *testing.T) {
	h := newTestHandler(t, true)

	rec := serve(t, h, "/?dark=true")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	maple := strings.Index(body, "Maple Cabin")
	birch := strings.Index(body, "Birch &lt;Cabin&gt;")
	if maple < 0 || birch < 0 || maple > birch {
		t.Errorf("expected escaped rows in roster order, got %s", body)
	}
	if !strings.Contains(body, "bg-red-600") || !strings.Contains(body, "bg-green-500") {
		t.Errorf("expected both level colors, got %s", body)
	}
	if !strings.Contains(body, "bg-gray-900") || !strings.Contains(body, "contrast-125") {
		t.Errorf("expected dark page with boosted logo, got %s", body)
	}
}

func TestBoard_NoRoster(t *testing.T) {
	h := newTestHandler(t, false)

	rec := serve(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<ul class="space-y-3"></ul>`) {
		t.Errorf("expected empty list, got %s", rec.Body.String())
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	h := newTestHandler(t, false)

	if rec := serve(t, h, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown path, got %d", rec.Code)
	}
}

const nanRoster = `
sessions:
  - name: Unknown Cabin
    occupancy: 3
    capacity: 10
    utilization: .nan
`

func TestSessions_UnencodableValueReturnsJSONError(t *testing.T) {
	h := newRosterHandler(t, nanRoster, 60)

	rec := serve(t, h, "/api/v1/sessions")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON error, got %s", ct)
	}
	if !strings.Contains(rec.Body.String(), `"code":500`) {
		t.Errorf("expected error body, got %q", rec.Body.String())
	}
}

func TestBoard_NaNReadingRendersOnce(t *testing.T) {
	h := newRosterHandler(t, nanRoster, 0)

	for i := 0; i < 3; i++ {
		if rec := serve(t, h, "/"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	if h.bars.Renders() != 1 {
		t.Errorf("expected one render, got %d", h.bars.Renders())
	}
	if h.bars.Cached() != 1 {
		t.Errorf("expected one cached fragment, got %d", h.bars.Cached())
	}
}

func TestRosterSource_ReparsesOnlyWhenFileChanges(t *testing.T) {
	h := newTestHandler(t, true)

	serve(t, h, "/api/v1/sessions")
	serve(t, h, "/")
	if got := h.rosters.Loads(); got != 1 {
		t.Fatalf("expected one parse for an unchanged file, got %d", got)
	}

	updated := testRoster + "  - name: Archery\n    occupancy: 1\n    capacity: 8\n"
	if err := os.WriteFile(h.cfg.RosterFile, []byte(updated), 0o600); err != nil {
		t.Fatalf("rewrite roster: %v", err)
	}

	rec := serve(t, h, "/api/v1/sessions")
	if !strings.Contains(rec.Body.String(), "Archery") {
		t.Errorf("expected updated roster, got %s", rec.Body.String())
	}
	if got := h.rosters.Loads(); got != 2 {
		t.Errorf("expected a second parse after the change, got %d", got)
	}
}

func TestRosterSource_MissingFile(t *testing.T) {
	h := newTestHandler(t, true)
	if err := os.Remove(h.cfg.RosterFile); err != nil {
		t.Fatalf("remove roster: %v", err)
	}

	if rec := serve(t, h, "/api/v1/sessions"); rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
