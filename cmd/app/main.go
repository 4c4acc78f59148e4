package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/api"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/market"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/middleware"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/repository"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/service"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/telegram"
	"github.com/kriptobogasinet22/telegram-borsa-bot/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Store)
	if err != nil {
		zapLogger.Fatal("Failed to initialize store", zap.Error(err))
	}

	tg, err := telegram.New(cfg.Telegram.BotToken)
	if err != nil {
		zapLogger.Fatal("Failed to initialize telegram gateway", zap.Error(err))
	}

	provider := market.NewMockProvider(time.Now().UnixNano())
	dispatcher := service.NewDispatcher(repo, tg, provider)
	broadcaster := service.NewBroadcaster(repo, tg, service.DefaultBroadcastDelay)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Observe())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api")
	api.NewWebhookRoutes(a, dispatcher, api.HealthInfo{
		BotConfigured:   cfg.Telegram.BotToken != "",
		StoreConfigured: cfg.Store.URL != "" && cfg.Store.ServiceKey != "",
	})
	api.NewAdminRoutes(a, repo, tg, broadcaster)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Telegram.WebhookURL != "" {
		if err := tg.SetWebhook(cfg.Telegram.WebhookURL); err != nil {
			zapLogger.Fatal("Failed to register webhook", zap.Error(err))
		}
		zapLogger.Info("Webhook registered", zap.String("url", cfg.Telegram.WebhookURL))
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zapLogger.Info("Starting server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
	}
}
