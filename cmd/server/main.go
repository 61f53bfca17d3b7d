package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"today-knowledge/cmd/internal/logger"
	"today-knowledge/cmd/server/quota"
	"today-knowledge/cmd/server/router"
	"today-knowledge/cmd/server/services"
	"today-knowledge/config"
	"today-knowledge/db"
	"today-knowledge/generator"
	"today-knowledge/repositories"
)

// @title           Today Knowledge API
// @version         1.0
// @description     API for generating one-minute knowledge snippets
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := generator.NewGeminiGenerator(ctx, cfg.Server.GeminiApiKey, cfg.Server.GeminiModel)
	if err != nil {
		logger.Log.Errorf("failed to initialize generator: %v", err)
		os.Exit(1)
	}

	// 생성 로그 저장소는 mongo.uri 가 있을 때만 붙인다.
	var logs services.GenerationLogWriter
	switch err := db.Init(ctx, cfg.Mongo); {
	case err == nil:
		logs = repositories.NewGenerationLogRepository(db.Database())
		logger.InfoWithFields("MongoDB connected and indexes ensured", logger.Fields{"database": cfg.Mongo.Database})
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = db.Disconnect(shutdownCtx)
		}()
	case errors.Is(err, db.ErrNotConfigured):
		logger.Log.Info("mongo uri not set, generation logs are disabled")
	default:
		logger.Log.Errorf("failed to initialize MongoDB, generation logs are disabled: %v", err)
	}

	// 일일 한도 카운터는 redis.url 이 있으면 Redis 에서 공유한다.
	var counter quota.DailyCounter
	if cfg.Redis.URL != "" {
		rdb, err := quota.ConnectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Log.Errorf("failed to connect Redis: %v", err)
			os.Exit(1)
		}
		defer rdb.Close()
		counter = quota.NewRedisCounter(rdb, cfg.Redis.KeyPrefix)
	}

	knowledgeSvc := services.NewKnowledgeService(gen, quota.NewGenerationQuotaLimiterFromConfig(cfg, counter), logs)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.New(knowledgeSvc, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.InfoWithFields("starting knowledge server", logger.Fields{
		"addr":  cfg.Server.Addr,
		"model": gen.ModelName(),
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
