package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"market_backend/internal/app/di"
	"market_backend/internal/app/router"
	"market_backend/internal/config"
	authadapters "market_backend/internal/feature/auth/adapters"
	authhandler "market_backend/internal/feature/auth/transport/handler"
	authusecase "market_backend/internal/feature/auth/usecase"
	offeradapters "market_backend/internal/feature/offers/adapters"
	offerhandler "market_backend/internal/feature/offers/transport/handler"
	offerusecase "market_backend/internal/feature/offers/usecase"
	paymenthandler "market_backend/internal/feature/payment/transport/handler"
	paymentusecase "market_backend/internal/feature/payment/usecase"
	"market_backend/internal/platform/authmw"
	"market_backend/internal/platform/db"
	"market_backend/internal/platform/logging"
	infraredis "market_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.Fatalf("setup logging: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid config: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.Open(cfg.Database.Driver, cfg.Database.URL, cfg.Database.ConnectTimeout)
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}
	if cfg.Database.RunMigrations {
		if err := db.Migrate(gdb); err != nil {
			logrus.Fatalf("migrate database: %v", err)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		opts := infraredis.Options{Host: cfg.Redis.Host, Port: cfg.Redis.Port, Password: cfg.Redis.Password}
		if tmp, err := infraredis.NewRedisClient(ctx, opts); err != nil {
			logrus.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					logrus.WithFields(logrus.Fields{"error": err}).Error("failed to close Redis client")
				}
			}()
		}
	}

	// Asset store
	assets, err := di.NewAssetStore(ctx, cfg)
	if err != nil {
		logrus.Fatalf("setup storage: %v", err)
	}

	// Repository
	userRepo := authadapters.NewUserGorm(gdb)
	offerRepo := di.NewOfferRepository(gdb, rdb, cfg.Redis.CacheTTL)
	owners := offeradapters.NewOwnerDirectory(gdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo)
	offerUC := offerusecase.NewOfferUsecase(offerRepo, owners, assets)
	paymentUC := paymentusecase.NewPaymentUsecase(di.NewPaymentGateway(cfg), cfg.Stripe.Currency)

	// Handler
	r := router.NewRouter(router.Handlers{
		Auth:    authhandler.NewAuthHandler(authUC),
		Offers:  offerhandler.NewOfferHandler(offerUC),
		Payment: paymenthandler.NewPaymentHandler(paymentUC),
	}, authmw.AuthRequired(authUC), cfg.Server.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("server started on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Warnf("http shutdown: %v", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("bye")
}
