package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/koleso24/cabinet-api/internal/api"
	"github.com/koleso24/cabinet-api/internal/core/ports"
	"github.com/koleso24/cabinet-api/internal/core/service"
	"github.com/koleso24/cabinet-api/internal/infrastructure/db/mongo"
	redisdb "github.com/koleso24/cabinet-api/internal/infrastructure/db/redis"
	"github.com/koleso24/cabinet-api/internal/infrastructure/memory"
	"github.com/koleso24/cabinet-api/internal/infrastructure/notify"
	"github.com/koleso24/cabinet-api/internal/infrastructure/sheets"
	"github.com/koleso24/cabinet-api/internal/pkg/config"
	"github.com/koleso24/cabinet-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.BotToken == "" {
		log.Warn().Msg("TELEGRAM_BOT_TOKEN not set: all authenticated requests will be rejected")
	}
	if cfg.AdminChatID == "" {
		log.Warn().Msg("ADMIN_CHAT_ID not set: no identity will resolve to admin")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	cache := redisdb.NewProjectionCache(rdb)

	var (
		repo          ports.ClientRepository
		settingsStore ports.SettingsStore
		mongoDB       *mongodriver.Database
	)

	switch cfg.DataSource {
	case config.DataSourceMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		mongoRepo := mongo.NewClientRepository(db)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}

		repo = mongoRepo
		settingsStore = mongo.NewSettingsStore(db)
		mongoDB = db

	case config.DataSourceSheets:
		repo = sheets.NewRepository(
			sheets.NewClient(cfg.Sheets.ScriptURL),
			cfg.Sheets.ClientSheet,
			cfg.Sheets.ArchiveSheet,
			cfg.Sheets.TemplateSheet,
		)
		// Sheets mode has no database; settings live in process memory.
		settingsStore = memory.NewSettingsStore()
	}

	var notifier ports.Notifier = notify.Disabled{}
	if cfg.BotToken != "" {
		n, err := notify.New(cfg.BotToken)
		if err != nil {
			log.Fatal().Err(err).Msg("telegram bot init failed")
		}
		notifier = n
	}

	e := api.NewRouter(api.Deps{
		Cabinet:     service.NewCabinetService(repo, settingsStore, cache, log),
		Visibility:  service.NewVisibilityService(settingsStore, cache, log),
		Messenger:   service.NewMessengerService(notifier, repo, log),
		Mongo:       mongoDB,
		Redis:       rdb,
		BotToken:    cfg.BotToken,
		AdminChatID: cfg.AdminChatID,
		Log:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("data_source", cfg.DataSource).Msg("cabinet API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
