// ABOUTME: Declarative route table for campboard endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import (
	"net/http"

	"github.com/markalston/campboard/internal/web/middleware"
)

// Route defines an endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // ServeMux pattern path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & JSON
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/api/v1/utilization", Handler: h.Utilization},
		{Method: http.MethodGet, Path: "/api/v1/sessions", Handler: h.Sessions},

		// HTML fragments
		{Method: http.MethodGet, Path: "/fragments/logo", Handler: h.LogoFragment},
		{Method: http.MethodGet, Path: "/fragments/utilization", Handler: h.UtilizationFragment},

		// Board page
		{Method: http.MethodGet, Path: "/{$}", Handler: h.Board},
	}
}

// Register adds every route to mux wrapped with recovery and request logging.
func (h *Handler) Register(mux *http.ServeMux) {
	for _, rt := range h.Routes() {
		mux.HandleFunc(rt.Method+" "+rt.Path, middleware.Chain(rt.Handler, middleware.Recover, middleware.LogRequest))
	}
}
