package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdetokunAdenike/alx-files-manager/internal/app/router"
	authadapters "github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/adapters"
	authhandler "github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/transport/handler"
	authusecase "github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/usecase"
	filesadapters "github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/adapters"
	fileshandler "github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/transport/handler"
	filesusecase "github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/usecase"
	thumbadapters "github.com/AdetokunAdenike/alx-files-manager/internal/feature/thumbnails/adapters"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/config"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/http/handler"
	platformmongo "github.com/AdetokunAdenike/alx-files-manager/internal/platform/mongo"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/queue"
	platformredis "github.com/AdetokunAdenike/alx-files-manager/internal/platform/redis"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	// MongoDB
	mongoClient, err := platformmongo.NewMongoClient(cfg.MongoURI)
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("failed to disconnect MongoDB client", "error", err)
		}
	}()
	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis
	rdb, err := platformredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		slog.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("failed to close Redis client", "error", err)
		}
	}()

	// ローカルディスクストレージ
	disk, err := storage.NewDisk(cfg.FolderPath)
	if err != nil {
		slog.Error("failed to prepare storage directory", "path", cfg.FolderPath, "error", err)
		os.Exit(1)
	}

	// Repository
	userRepo := authadapters.NewUserMongo(db)
	fileRepo := filesadapters.NewFileMongo(db)
	sessions := authadapters.NewSessionRedis(rdb)
	jobs := thumbadapters.NewProducer(queue.NewQueue(rdb, thumbadapters.QueueKey))

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessions)
	filesUC := filesusecase.NewFilesUsecase(fileRepo, disk, jobs)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	filesH := fileshandler.NewFilesHandler(filesUC, authUC)
	statusH := handler.NewStatusHandler(
		handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
		userRepo, fileRepo)

	// ルータ生成
	r := router.NewRouter(authH, filesH, statusH, authUC)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// SIGINT/SIGTERMで新規受付をやめ、処理中のリクエストを待ってから終了する
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server listening", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}
}
