package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakway-labs/eventscout/internal/core/domain"
)

// fakeService is a scriptable driving.ActivityService.
type fakeService struct {
	activities []domain.Activity
	err        error
}

func (f *fakeService) Search(_ context.Context, query, location string) ([]domain.Activity, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &domain.ValidationError{Field: "query"}
	}
	if strings.TrimSpace(location) == "" {
		return nil, &domain.ValidationError{Field: "location"}
	}
	return f.activities, f.err
}

func postSearch(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/activities/search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleSearch_Success(t *testing.T) {
	svc := &fakeService{activities: []domain.Activity{
		{ID: "1", Title: "Jazz Night", Location: "Austin", Source: "Eventbrite"},
		{ID: "2", Title: "Rock Show", Location: "Austin", Source: "Ticketmaster"},
	}}
	handler := New(svc, Options{}).Handler()

	rec := postSearch(t, handler, `{"query":"music","location":"Austin"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp domain.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Activities, 2)
	assert.Equal(t, "Jazz Night", resp.Activities[0].Title)
}

func TestHandleSearch_Validation(t *testing.T) {
	handler := New(&fakeService{}, Options{}).Handler()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{"missing query", `{"location":"Austin"}`, "query is required"},
		{"missing location", `{"query":"jazz"}`, "location is required"},
		{"empty body object", `{}`, "query is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postSearch(t, handler, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp["error"])
		})
	}
}

func TestHandleSearch_BadJSON(t *testing.T) {
	handler := New(&fakeService{}, Options{}).Handler()

	rec := postSearch(t, handler, `{"query": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestHandleSearch_InternalError(t *testing.T) {
	svc := &fakeService{err: errors.New("normalization exploded")}
	handler := New(svc, Options{}).Handler()

	rec := postSearch(t, handler, `{"query":"jazz","location":"Austin"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal detail never leaks to the caller.
	assert.NotContains(t, rec.Body.String(), "exploded")
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestHandleSearch_EmptyResultsStillSucceed(t *testing.T) {
	svc := &fakeService{activities: []domain.Activity{}}
	handler := New(svc, Options{}).Handler()

	rec := postSearch(t, handler, `{"query":"jazz","location":"Austin"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Zero(t, resp.Total)
	assert.NotNil(t, resp.Activities)
}

func TestCORSMiddleware(t *testing.T) {
	handler := New(&fakeService{}, Options{
		AllowedOrigins: []string{"http://localhost:5173"},
	}).Handler()

	t.Run("allowed origin echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/activities/search", strings.NewReader(`{"query":"q","location":"l"}`))
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin not echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/activities/search", strings.NewReader(`{"query":"q","location":"l"}`))
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/activities/search", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}

func TestRequestIDHeader(t *testing.T) {
	handler := New(&fakeService{}, Options{}).Handler()

	rec := postSearch(t, handler, `{"query":"jazz","location":"Austin"}`)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	handler := New(&fakeService{}, Options{StaticDir: dir}).Handler()

	t.Run("existing file served", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "console.log(1)", rec.Body.String())
	})

	t.Run("unknown path falls back to index", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/some/client/route", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "app")
	})
}

func TestMetricsRoute(t *testing.T) {
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("metrics ok"))
	})
	handler := New(&fakeService{}, Options{Metrics: metricsHandler}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "metrics ok", rec.Body.String())
}
