package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"custody-ledger/config"
	httpHandler "custody-ledger/internal/adapter/http/handler"
	kafkaNotify "custody-ledger/internal/adapter/notify/kafka"
	"custody-ledger/internal/adapter/plugin"
	pgStorage "custody-ledger/internal/adapter/storage/postgres"
	redisStorage "custody-ledger/internal/adapter/storage/redis"
	"custody-ledger/internal/adapter/transfer/httpsettle"
	"custody-ledger/internal/adapter/transfer/memory"
	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/internal/service"
	"custody-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Custody Ledger")

	owner, err := domain.ParseAddress(cfg.Ledger.Owner)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid ledger owner address")
	}
	account, err := domain.ParseAddress(cfg.Ledger.Account)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid ledger account address")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	callerKeyRepo := pgStorage.NewCallerKeyRepo(pool)
	noticeRepo := pgStorage.NewNoticeRepo(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Notice trail: structured log + PostgreSQL, plus Kafka when brokers
	// are configured.
	var publisher ports.NoticePublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kp := kafkaNotify.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kp.Close()
		publisher = kp
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka notice publisher enabled")
	}
	noticeSvc := service.NewNoticeService(noticeRepo, publisher, log)

	// Transfer backend
	var transfer ports.TransferSystem
	switch cfg.Transfer.Backend {
	case "http":
		transfer = httpsettle.NewClient(cfg.Transfer.BaseURL, cfg.Transfer.APIKey, cfg.Transfer.Timeout, log)
		log.Info().Str("base_url", cfg.Transfer.BaseURL).Msg("HTTP settlement backend")
	case "memory":
		transfer = memory.NewSettlement(account)
		log.Warn().Msg("In-memory settlement backend, transfers are not durable")
	default:
		log.Fatal().Str("backend", cfg.Transfer.Backend).Msg("Unknown transfer backend")
	}

	// Plugin catalog
	catalog := plugin.NewCatalog()
	for _, pc := range cfg.Plugins {
		addr, err := domain.ParseAddress(pc.Address)
		if err != nil {
			log.Fatal().Err(err).Str("plugin", pc.Name).Msg("Invalid plugin address")
		}
		if err := catalog.Register(plugin.NewReservePlugin(pc.Name, addr, log)); err != nil {
			log.Fatal().Err(err).Str("plugin", pc.Name).Msg("Failed to register plugin")
		}
		log.Info().Str("plugin", pc.Name).Str("address", addr.Hex()).Msg("Plugin registered")
	}

	// Initialize business services
	ledgerSvc := service.NewLedgerService(owner, account, transfer, noticeSvc, log)
	authSvc := service.NewAuthService(callerKeyRepo, encSvc, tokenSvc)
	callerKeySvc := service.NewCallerKeyService(callerKeyRepo, encSvc, noticeSvc)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		Catalog:        catalog,
		NoticeSvc:      noticeSvc,
		AuthSvc:        authSvc,
		CallerKeySvc:   callerKeySvc,
		CallerKeyRepo:  callerKeyRepo,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
