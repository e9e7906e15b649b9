// Command server runs the BizGenie API: the HTTP surface, the live event
// streams, and the assignment-notification worker.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bizgenie/bizgenie-api/internal/api"
	"github.com/bizgenie/bizgenie-api/internal/core/liveview"
	"github.com/bizgenie/bizgenie-api/internal/core/session"
	bizmongo "github.com/bizgenie/bizgenie-api/internal/infrastructure/db/mongo"
	bizredis "github.com/bizgenie/bizgenie-api/internal/infrastructure/db/redis"
	"github.com/bizgenie/bizgenie-api/internal/infrastructure/genai"
	"github.com/bizgenie/bizgenie-api/internal/infrastructure/mail"
	"github.com/bizgenie/bizgenie-api/internal/infrastructure/queue"
	"github.com/bizgenie/bizgenie-api/internal/infrastructure/storage/s3"
	"github.com/bizgenie/bizgenie-api/internal/pkg/config"
	"github.com/bizgenie/bizgenie-api/pkg/logger"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 15 * time.Second
)

// @title           BizGenie API
// @version         1.0
// @description     Multi-tenant backend for AI-assisted small-business operations.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	// Missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Data stores ---
	mongoClient, db, err := bizmongo.Connect(ctx, bizmongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := bizredis.Connect(ctx, bizredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()

	fileStore, err := s3.New(ctx, s3.Config{
		Bucket: cfg.S3.Bucket,
		Region: cfg.S3.Region,
		Prefix: cfg.S3.Prefix,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("object store init")
	}

	// --- Messaging ---
	broker, err := queue.Connect(cfg.AMQP.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbitmq connect")
	}
	defer broker.Close()

	notifier := queue.NewProducer(broker.Ch)
	mailer := mail.NewSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	worker := queue.NewWorker(broker.Ch, mailer, log)
	if err := worker.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("notification worker start")
	}

	// --- Generation gateway ---
	generator := genai.NewClient(genai.Config{
		BaseURL:         cfg.GenAI.BaseURL,
		APIKey:          cfg.GenAI.APIKey,
		TextModel:       cfg.GenAI.TextModel,
		ImageModel:      cfg.GenAI.ImageModel,
		TTSModel:        cfg.GenAI.TTSModel,
		VideoModel:      cfg.GenAI.VideoModel,
		PollInterval:    cfg.GenAI.PollInterval,
		MaxPollAttempts: cfg.GenAI.MaxPollAttempts,
	}, log)

	// --- In-process broadcasters ---
	feed := session.NewFeed()
	hub := liveview.NewHub()

	e := api.NewRouter(api.Dependencies{
		DB:        db,
		Redis:     rdb,
		Feed:      feed,
		Hub:       hub,
		Generator: generator,
		FileStore: fileStore,
		Notifier:  notifier,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  tokenTTL,
		Logger:    log,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("project_id", cfg.App.ProjectID).
			Str("sender_id", cfg.App.SenderID).
			Str("app_id", cfg.App.AppID).
			Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}
