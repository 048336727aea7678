package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"webapp-auth-backend/internal/cache/redis"
	"webapp-auth-backend/internal/common/logger"
	"webapp-auth-backend/internal/config"
	apphttp "webapp-auth-backend/internal/http"
	"webapp-auth-backend/internal/initdata"
	rplatform "webapp-auth-backend/internal/platform/redis"
	"webapp-auth-backend/internal/service"
)

// @title Telegram Web Apps Auth API
// @version 1.0
// @description Validates signed Telegram Mini Apps init data and returns the decoded user and session payload.
// @BasePath /api/v1
// @securityDefinitions.apikey TelegramInitData
// @in header
// @name X-Telegram-Init-Data
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.Init("webapp-auth", cfg.Debug)

	authenticator, err := initdata.New(cfg.Telegram.BotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("Authenticator init failed")
	}

	var cache service.InitDataCache
	if addr := cfg.RedisAddr(); addr != "" {
		client, err := rplatform.Open(ctx, addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Redis open failed")
		}
		defer client.Close()
		cache = redis.NewInitDataCache(client, cfg.CacheTTL())
		logger.Info().Str("addr", addr).Msg("Verification cache enabled")
	} else {
		logger.Info().Msg("Verification cache disabled")
	}

	svc := service.NewAuthService(authenticator, cache, cfg.InitDataTTL())
	router := apphttp.NewRouter(cfg, svc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
