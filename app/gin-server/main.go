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
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sustainhire/internship-intake/config"
	"github.com/sustainhire/internship-intake/internal/api/handlers"
	"github.com/sustainhire/internship-intake/internal/api/routes"
	"github.com/sustainhire/internship-intake/internal/events"
	"github.com/sustainhire/internship-intake/internal/logger"
	"github.com/sustainhire/internship-intake/internal/repositories"
	mongorepo "github.com/sustainhire/internship-intake/internal/repositories/mongo"
	pgrepo "github.com/sustainhire/internship-intake/internal/repositories/postgres"
	"github.com/sustainhire/internship-intake/internal/services"
	"github.com/sustainhire/internship-intake/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cleanups []func()
	defer func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}()

	repo, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("store init error")
	}
	cleanups = append(cleanups, cleanup)

	uploader, cleanup, err := openStorage(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("file storage init error")
	}
	cleanups = append(cleanups, cleanup)

	var publisher events.Publisher = events.Nop{}
	if cfg.RedisAddr != "" {
		rdb, err := config.InitRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Fatal("Redis init error")
		}
		cleanups = append(cleanups, func() { _ = rdb.Close() })

		publisher, err = events.NewRedisPublisher(rdb, cfg.EventsStream, cfg.EventsMaxLen)
		if err != nil {
			log.WithError(err).Fatal("event publisher init error")
		}
		log.WithField("stream", cfg.EventsStream).Info("Redis connected")
	}

	svc := services.NewApplicationService(repo, uploader, publisher, log, services.ValidationRules{
		ResumeRequired: cfg.ResumeRequired,
		MaxResumeBytes: cfg.ResumeMaxBytes,
	})

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Application: handlers.NewApplicationHandler(svc, cfg.ResumeMaxBytes),
		Logger:      log,
		CORSOrigin:  cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (repositories.ApplicationRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := config.InitPostgres(cfg.PostgresURI)
		if err != nil {
			return nil, nil, err
		}
		log.Info("PostgreSQL connected")

		return pgrepo.NewApplicationRepo(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	default:
		client, err := config.InitMongo(ctx, cfg.MongoURI, cfg.MongoTLS)
		if err != nil {
			return nil, nil, err
		}
		log.Info("MongoDB connected")

		db := client.Database(cfg.MongoDB)
		if err := config.EnsureMongoIndexes(ctx, db); err != nil {
			log.WithError(err).Warn("failed to ensure mongo indexes")
		}

		return mongorepo.NewApplicationRepo(db), func() {
			_ = client.Disconnect(context.Background())
		}, nil
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Uploader, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageGCS:
		u, err := storage.NewGCSUploader(ctx, storage.GCSOptions{
			Bucket:          cfg.GCSBucket,
			Prefix:          cfg.UploadDir,
			CredentialsFile: cfg.GCSCredentialsFile,
			Public:          cfg.GCSPublic,
		})
		if err != nil {
			return nil, nil, err
		}
		return u, func() { _ = u.Close() }, nil
	default:
		u, err := storage.NewLocalUploader(cfg.UploadDir)
		if err != nil {
			return nil, nil, err
		}
		return u, func() {}, nil
	}
}
