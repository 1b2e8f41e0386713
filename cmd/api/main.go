// Command api runs the SkillSwap HTTP API.
//
// @title                       SkillSwap API
// @version                     1.0
// @description                 Skill catalog and messaging backend for a peer-to-peer skill exchange.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../docs --parseInternal

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap-api/internal/api"
	"github.com/skillswap/skillswap-api/internal/api/handler"
	"github.com/skillswap/skillswap-api/internal/core/service"
	"github.com/skillswap/skillswap-api/internal/infrastructure/config"
	mongodb "github.com/skillswap/skillswap-api/internal/infrastructure/db/mongo"
	redisdb "github.com/skillswap/skillswap-api/internal/infrastructure/db/redis"
	infrahttp "github.com/skillswap/skillswap-api/internal/infrastructure/http"
	"github.com/skillswap/skillswap-api/internal/infrastructure/http/handlers"
	"github.com/skillswap/skillswap-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("api exited")
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	// A missing .env is fine; the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Init(logger.Options{})
		return err
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "skillswap-api",
		Env:     cfg.Env,
	})

	if err := handler.CheckRepresentations(); err != nil {
		return err
	}

	// Connections opened below are closed here if startup fails before the
	// server takes them over through its shutdown hooks.
	acquired := &releaser{log: log}
	defer func() {
		if err != nil {
			acquired.releaseAll(context.Background())
		}
	}()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	acquired.add("mongo", mongoClient.Disconnect)
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	acquired.add("redis", func(context.Context) error { return rdb.Close() })
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	tokens := service.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e := api.NewRouter(api.Dependencies{
		Skills:   service.NewSkillService(mongodb.NewSkillRepository(db), component(log, "skills")),
		Messages: service.NewMessageService(mongodb.NewMessageRepository(db), component(log, "messages")),
		Auth: service.NewAuthService(
			mongodb.NewAuthRepository(db),
			redisdb.NewRevocationStore(rdb),
			tokens,
			component(log, "auth"),
		),
		Verifier: tokens,
		Logger:   log,
		Registry: reg,
		Checks: map[string]handlers.Check{
			"mongo": mongodb.Pinger(db),
			"redis": redisdb.Pinger(rdb),
		},
		AllowedOrigins: cfg.AllowedOrigins(),
	})

	srv := infrahttp.NewServer(e, ":"+cfg.Port, cfg.ShutdownTimeout, log)
	for _, r := range acquired.handOff() {
		srv.OnShutdown(r.name, r.fn)
	}

	return srv.Run(ctx)
}

func component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
