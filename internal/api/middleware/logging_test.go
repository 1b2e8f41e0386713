package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, "info"},
		{http.StatusNotFound, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		e := echo.New()
		e.Use(RequestLogger(zerolog.New(&buf)))
		e.GET("/x", func(c echo.Context) error {
			return c.NoContent(tt.status)
		})

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-1")
		e.ServeHTTP(httptest.NewRecorder(), req)

		var line map[string]any
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("status %d: invalid log line %q: %v", tt.status, buf.String(), err)
		}
		if line["level"] != tt.wantLevel {
			t.Errorf("status %d: expected level %q, got %v", tt.status, tt.wantLevel, line["level"])
		}
		if line["uri"] != "/x" || line["method"] != "GET" {
			t.Errorf("status %d: unexpected fields %v", tt.status, line)
		}
	}
}
