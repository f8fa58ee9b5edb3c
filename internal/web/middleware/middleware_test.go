// ABOUTME: Tests for logging, recovery, and chaining middleware
// ABOUTME: Verifies request IDs, path sanitization, panic handling, and ordering

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizePath_RemovesControlCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline injection", "/fragments/logo\nAdmin access granted", "/fragments/logoAdmin access granted"},
		{"CRLF", "/api/test\r\ninjected line", "/api/testinjected line"},
		{"tab", "/api/test\tvalue", "/api/testvalue"},
		{"null byte", "/api/test\x00value", "/api/testvalue"},
		{"escape sequence", "/api/test\x1b[31mred", "/api/test[31mred"},
		{"DEL", "/api/test\x7fvalue", "/api/testvalue"},
		{"clean path", "/api/v1/utilization", "/api/v1/utilization"},
		{"unicode kept", "/api/cabaña", "/api/cabaña"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizePath(tt.input); got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogRequest_SetsRequestIDAndStatus(t *testing.T) {
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", rec.Code)
	}
	if id := rec.Header().Get("X-Request-ID"); len(id) != 16 {
		t.Errorf("expected 16-char request ID, got %q", id)
	}
}

func TestLogRequest_KeepsIncomingRequestID(t *testing.T) {
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/fragments/logo", nil)
	req.Header.Set("X-Request-ID", "upstream-1")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "upstream-1" {
		t.Errorf("expected upstream ID to pass through, got %q", got)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("expected body to reach client, got %q", rec.Body.String())
	}
}

func TestRecover_ReturnsJSON500(t *testing.T) {
	handler := Recover(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("expected JSON body: %v", err)
	}
	if body.Code != http.StatusInternalServerError || body.Error == "" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestChain_AppliesMiddlewareInOrder(t *testing.T) {
	var order []string

	mw := func(name string) func(http.HandlerFunc) http.HandlerFunc {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next(w, r)
			}
		}
	}

	handler := Chain(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}, mw("first"), mw("second"))

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestChain_EmptyMiddlewares(t *testing.T) {
	called := false
	handler := Chain(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("expected handler to be called")
	}
}
