package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/clinic-support/triage-backend/internal/config"
	"github.com/clinic-support/triage-backend/internal/triage"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Port:           "8080",
		GinMode:        gin.TestMode,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

type fakeDB struct {
	err error
}

func (f *fakeDB) Ping(ctx context.Context) error { return f.err }

func TestRootEndpoint(t *testing.T) {
	router := Router(testConfig(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Triage AI Backend Running") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	router := Router(testConfig(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReadyzWithoutDatabase(t *testing.T) {
	router := Router(testConfig(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "disabled") {
		t.Fatalf("expected db disabled, got %s", w.Body.String())
	}
}

func TestReadyzHealthyDatabase(t *testing.T) {
	router := Router(testConfig(), &fakeDB{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReadyzUnhealthyDatabase(t *testing.T) {
	router := Router(testConfig(), &fakeDB{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "degraded") {
		t.Fatalf("expected degraded status, got %s", w.Body.String())
	}
}

func TestTriageEndpoint(t *testing.T) {
	router := Router(testConfig(), nil)

	body, _ := json.Marshal(map[string]any{"message": "I have a terrible headache"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/triage", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp triage.TurnResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SymptomType != "headache" {
		t.Fatalf("expected headache, got %q", resp.SymptomType)
	}
	if resp.NextQuestion == "" {
		t.Fatal("expected a next question")
	}
	if len(resp.AllAnswers) != 1 {
		t.Fatalf("expected the message recorded, got %+v", resp.AllAnswers)
	}
}

func TestTriageMissingMessage(t *testing.T) {
	router := Router(testConfig(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/triage", strings.NewReader(`{"symptom_type":"headache"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTriageMalformedJSON(t *testing.T) {
	router := Router(testConfig(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/triage", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTriageOversizedBody(t *testing.T) {
	router := Router(testConfig(), nil)

	// Payload beyond the 1MB cap is refused during binding.
	huge := `{"message":"` + strings.Repeat("a", 1<<20) + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/triage", strings.NewReader(huge))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := Router(testConfig(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected a generated request ID")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected caller's request ID echoed, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := Router(testConfig(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/triage", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}
}
