package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

type stubVerifier struct {
	tokens map[string]domain.Actor
}

func (s stubVerifier) VerifyAccess(token string) (domain.Actor, error) {
	actor, ok := s.tokens[token]
	if !ok {
		return domain.Anonymous, domain.ErrInvalidToken
	}
	return actor, nil
}

var verifier = stubVerifier{tokens: map[string]domain.Actor{
	"good": {UserID: "u1", Username: "alice"},
}}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(verifier)(func(c echo.Context) error {
		called = true
		actor := ActorFrom(c)
		if actor.UserID != "u1" || actor.Username != "alice" {
			t.Fatalf("unexpected actor: %+v", actor)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(verifier)(func(c echo.Context) error {
		if ActorFrom(c).Authenticated() {
			t.Fatalf("expected anonymous actor")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_InvalidHeaderFormat(t *testing.T) {
	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Authenticate(verifier)(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(verifier)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRequireAuthenticated(t *testing.T) {
	e := echo.New()

	anon := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	anon.Set(ActorKey, domain.Anonymous)
	handler := RequireAuthenticated()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(anon); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	authed := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	authed.Set(ActorKey, domain.Actor{UserID: "u1"})
	called := false
	handler = RequireAuthenticated()(func(c echo.Context) error {
		called = true
		return nil
	})
	if err := handler(authed); err != nil || !called {
		t.Fatalf("expected next to run, err=%v called=%v", err, called)
	}
}

func TestRequirePolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   domain.ResourcePolicy
		op       domain.Operation
		actor    domain.Actor
		wantNext bool
	}{
		{"public skill list", domain.SkillPolicy, domain.OpList, domain.Anonymous, true},
		{"anonymous skill create", domain.SkillPolicy, domain.OpCreate, domain.Anonymous, false},
		{"anonymous message list", domain.MessagePolicy, domain.OpList, domain.Anonymous, false},
		{"authenticated message update", domain.MessagePolicy, domain.OpUpdate, domain.Actor{UserID: "u1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			// An unreadable body proves the gate runs before decoding.
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
			c := e.NewContext(req, httptest.NewRecorder())
			c.Set(ActorKey, tt.actor)

			called := false
			err := RequirePolicy(tt.policy, tt.op)(func(c echo.Context) error {
				called = true
				return nil
			})(c)

			if called != tt.wantNext {
				t.Fatalf("next called = %v, want %v", called, tt.wantNext)
			}
			if !tt.wantNext && !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}
