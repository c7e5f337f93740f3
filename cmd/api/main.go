package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "moneymornings-backend/internal/adapter/http"
	"moneymornings-backend/internal/adapter/middleware"
	"moneymornings-backend/internal/adapter/repository/mysql"
	"moneymornings-backend/internal/config"
	appDomain "moneymornings-backend/internal/domain/application"
	scDomain "moneymornings-backend/internal/domain/statuscheck"
	"moneymornings-backend/internal/infrastructure/cache"
	"moneymornings-backend/internal/infrastructure/db"
	"moneymornings-backend/internal/notifier"
	appUC "moneymornings-backend/internal/usecase/application"
	scUC "moneymornings-backend/internal/usecase/statuscheck"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal("mysql connect failed", zap.Error(err))
	}
	if err := gdb.AutoMigrate(&appDomain.Application{}, &scDomain.StatusCheck{}); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}

	mailer := notifier.NewSMTPMailer(notifier.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		To:       cfg.NotificationEmail,
	}, logger)
	notif := notifier.New(mailer, cfg.BackendURL, logger)

	appRepo := mysql.NewApplicationRepository(gdb)
	scRepo := mysql.NewStatusCheckRepository(gdb)

	appUsecase := appUC.NewUsecase(appRepo, notif, logger)
	scUsecase := scUC.NewUsecase(scRepo)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(appUsecase)
	scH := httpadp.NewStatusCheckHandler(scUsecase)
	adminH := httpadp.NewAdminHandler()

	adminAuth := middleware.AdminBasicAuth(cfg.AdminUsername, cfg.AdminPassword)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover(), echomw.CORS())

	// routes
	e.GET("/health", h.Health)
	e.GET("/admin", adminH.Dashboard, adminAuth)

	api := e.Group("/api")
	api.GET("/", h.Root)
	api.POST("/status", scH.Create)
	api.GET("/status", scH.List)
	api.POST("/applications/submit", appH.Submit, idemp)
	api.GET("/applications", appH.List)
	api.GET("/applications/stats/summary", appH.Stats)
	api.GET("/applications/:application_id", appH.Get)
	api.PUT("/applications/:application_id", appH.Update, adminAuth)

	go func() {
		addr := ":" + cfg.AppPort
		logger.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}

	// drain queued notifications, then release connections
	notif.Close()
	_ = rdb.Close()
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("shutdown complete")
}
