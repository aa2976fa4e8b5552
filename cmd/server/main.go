package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/edenspa/eden-spa-api/internal/config"
	"github.com/edenspa/eden-spa-api/internal/database"
	"github.com/edenspa/eden-spa-api/internal/handler"
	"github.com/edenspa/eden-spa-api/internal/logger"
	"github.com/edenspa/eden-spa-api/internal/queue"
	"github.com/edenspa/eden-spa-api/internal/repository"
	"github.com/edenspa/eden-spa-api/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Env)
	defer logger.Sync()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Logger.Fatal("mysql connect failed", zap.Error(err))
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		// Sessions, drafts, carts and prompts all live in Redis; without it
		// the service has no session-scoped surface to offer.
		logger.Logger.Fatal("redis connect failed")
	}
	defer rdb.Close()

	sessionTTL := time.Duration(cfg.SessionTTLMin) * time.Minute
	sessions := repository.NewSessionStore(rdb, sessionTTL)
	accounts := repository.NewAccountRepo(db)
	appointments := repository.NewAppointmentRepo(db)
	catalog := repository.NewCatalogRepo(db)
	drafts := repository.NewDraftStore(rdb, sessionTTL)
	carts := repository.NewCartStore(rdb, sessionTTL)
	prompts := repository.NewPromptStore(rdb, sessionTTL)
	orders := repository.NewOrderStore(rdb, sessionTTL)

	h := router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, accounts, sessions),
		Booking: handler.NewBookingHandler(catalog, appointments, drafts, sessions, prompts),
		Cart:    handler.NewCartHandler(catalog, carts, prompts, orders),
		Prompt:  handler.NewPromptHandler(prompts, appointments, carts, orders),
		Catalog: handler.NewCatalogHandler(catalog),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	router.Register(e, cfg, rdb, sessions, h)

	go func() {
		if err := queue.StartNotificationConsumer(cfg.RabbitURL); err != nil {
			logger.Logger.Warn("notification consumer stopped", zap.Error(err))
		}
	}()

	go func() {
		addr := ":" + cfg.Port
		logger.Logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil {
			logger.Logger.Info("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Logger.Error("shutdown failed", zap.Error(err))
	}
}
