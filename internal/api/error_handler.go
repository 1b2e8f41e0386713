package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap-api/internal/api/metrics"
	"github.com/skillswap/skillswap-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, kind, resp := resolveError(err, log, c)
		metrics.APIErrorsTotal.WithLabelValues(kind).Inc()

		if code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, errorResponse) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "validation", errorResponse{Error: "validation failed", Fields: ve.Fields}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", errorResponse{Error: domain.ErrUnauthenticated.Error()}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "unauthenticated", errorResponse{Error: domain.ErrInvalidToken.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "unauthenticated", errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrSkillNotFound):
		return http.StatusNotFound, "not_found", errorResponse{Error: "skill not found"}
	case errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, "not_found", errorResponse{Error: "message not found"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "not_found", errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found", errorResponse{Error: "not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "conflict", errorResponse{Error: "user already exists"}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("http error")
		}
		return he.Code, "http", errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal", errorResponse{Error: "internal server error"}
}
