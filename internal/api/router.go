package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap-api/internal/api/handler"
	"github.com/skillswap/skillswap-api/internal/api/metrics"
	"github.com/skillswap/skillswap-api/internal/api/middleware"
	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
	infrahttp "github.com/skillswap/skillswap-api/internal/infrastructure/http"
	"github.com/skillswap/skillswap-api/internal/infrastructure/http/handlers"
)

// Dependencies is everything NewRouter needs. Services and the verifier are
// interfaces so tests can wire stubs or in-memory adapters.
type Dependencies struct {
	Skills   ports.SkillService
	Messages ports.MessageService
	Auth     ports.AuthService
	Verifier ports.TokenVerifier

	Logger zerolog.Logger
	// Registry receives the HTTP and API collectors and is served at
	// /metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
	// Checks are the readiness checks keyed by dependency name.
	Checks         map[string]handlers.Check
	AllowedOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if err := metrics.Register(reg); err != nil {
		deps.Logger.Error().Err(err).Msg("failed to register metrics")
	}

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "skillswap",
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Ops routes (no auth) ---
	infrahttp.RegisterOpsRoutes(e, deps.Checks, reg)

	authn := middleware.Authenticate(deps.Verifier)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	auth := e.Group("/auth", authn)
	auth.POST("/register", authHandler.Register)
	auth.POST("/token", authHandler.Obtain)
	auth.POST("/token/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, middleware.RequireAuthenticated())
	auth.PATCH("/me", authHandler.UpdateMe, middleware.RequireAuthenticated())

	// --- Resources: the policy gate runs before any decoding; the services
	// check the same policy again before touching storage ---
	v1 := e.Group("/v1", authn)

	skillHandler := handler.NewSkillHandler(deps.Skills)
	skills := func(op domain.Operation) echo.MiddlewareFunc {
		return middleware.RequirePolicy(domain.SkillPolicy, op)
	}
	v1.GET("/skills", skillHandler.List, skills(domain.OpList))
	v1.POST("/skills", skillHandler.Create, skills(domain.OpCreate))
	v1.GET("/skills/:id", skillHandler.Get, skills(domain.OpRetrieve))
	v1.PUT("/skills/:id", skillHandler.Update, skills(domain.OpUpdate))
	v1.PATCH("/skills/:id", skillHandler.Patch, skills(domain.OpUpdate))
	v1.DELETE("/skills/:id", skillHandler.Delete, skills(domain.OpDelete))

	messageHandler := handler.NewMessageHandler(deps.Messages)
	messages := func(op domain.Operation) echo.MiddlewareFunc {
		return middleware.RequirePolicy(domain.MessagePolicy, op)
	}
	v1.GET("/messages", messageHandler.List, messages(domain.OpList))
	v1.POST("/messages", messageHandler.Create, messages(domain.OpCreate))
	v1.GET("/messages/:id", messageHandler.Get, messages(domain.OpRetrieve))
	v1.PUT("/messages/:id", messageHandler.Update, messages(domain.OpUpdate))
	v1.PATCH("/messages/:id", messageHandler.Patch, messages(domain.OpUpdate))
	v1.DELETE("/messages/:id", messageHandler.Delete, messages(domain.OpDelete))

	return e
}
