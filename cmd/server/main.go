// Package main runs the conference site HTTP API with graceful shutdown.
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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/techsummit/backend/config"
	"github.com/techsummit/backend/internal/catalog"
	"github.com/techsummit/backend/internal/clock"
	"github.com/techsummit/backend/internal/server"
	"github.com/techsummit/backend/internal/submissions"
	"github.com/techsummit/backend/internal/validation"
	"github.com/techsummit/backend/pkg/database"
	"github.com/techsummit/backend/pkg/events"
	"github.com/techsummit/backend/pkg/queue"
	"github.com/techsummit/backend/pkg/redis"
	"github.com/techsummit/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if err := validation.Register(); err != nil {
		logger.Fatal("register validators", zap.Error(err))
	}
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()

	source, closeSource, err := newCatalogSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("catalog source", zap.Error(err))
	}
	defer closeSource()

	store := catalog.NewStore(source, clock.NewSystem(), logger)
	if err := store.Reload(ctx); err != nil {
		logger.Fatal("initial catalog load", zap.Error(err))
	}

	var notifiers []submissions.Notifier
	if cfg.Notifications.Queue {
		rdb, err := redis.NewClient(ctx, redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}, logger)
		if err != nil {
			logger.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()
		notifiers = append(notifiers, submissions.NewQueueNotifier(queue.NewQueue(rdb.Client, logger)))
	}
	if cfg.Notifications.Kafka {
		publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer publisher.Close()
		notifiers = append(notifiers, submissions.NewEventNotifier(publisher))
	}

	backend := submissions.NewSimulatedBackend(logger)
	service := submissions.NewService(backend, logger, notifiers...)

	router := server.NewRouter(server.Deps{
		Catalog:     store,
		Booker:      service,
		Forms:       service,
		CORSOrigins: cfg.Server.CORSAllowedOrigins,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Periodic catalog refresh
	reloadCtx, reloadCancel := context.WithCancel(context.Background())
	defer reloadCancel()
	if every := cfg.Catalog.ReloadEvery(); every > 0 {
		go store.Watch(reloadCtx, every)
		logger.Info("catalog reload enabled", zap.Duration("interval", every))
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port), zap.String("catalog_source", cfg.Catalog.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	reloadCancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// newCatalogSource builds the configured catalog source and a func releasing its resources.
func newCatalogSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case config.CatalogPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), int32(cfg.Database.MaxConns), logger)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Database.Migrate {
			if err := database.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return catalog.NewPostgresSource(pool), pool.Close, nil
	case config.CatalogS3:
		s3Client, err := storage.NewS3(ctx, storage.S3Config{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.Endpoint,
			Bucket:          cfg.AWS.CatalogBucket,
			Prefix:          cfg.AWS.CatalogPrefix,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewObjectSource(s3Client), func() {}, nil
	default:
		return catalog.NewEmbeddedSource(), func() {}, nil
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
