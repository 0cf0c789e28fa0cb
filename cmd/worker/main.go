package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	filesadapters "github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/adapters"
	thumbadapters "github.com/AdetokunAdenike/alx-files-manager/internal/feature/thumbnails/adapters"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/thumbnails/adapters/imaging"
	thumbusecase "github.com/AdetokunAdenike/alx-files-manager/internal/feature/thumbnails/usecase"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/config"
	platformmongo "github.com/AdetokunAdenike/alx-files-manager/internal/platform/mongo"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/queue"
	platformredis "github.com/AdetokunAdenike/alx-files-manager/internal/platform/redis"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/storage"
)

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

	fileRepo := filesadapters.NewFileMongo(mongoClient.Database(cfg.MongoDatabase))
	jobs := queue.NewQueue(rdb, thumbadapters.QueueKey)
	processor := thumbusecase.NewProcessor(fileRepo, disk, imaging.NewResizer())
	worker := thumbusecase.NewWorker(jobs, processor)

	// SIGINT/SIGTERMで新規ジョブの受付をやめ、処理中のジョブを完了してから終了する
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("thumbnail worker started", "queue", thumbadapters.QueueKey)
	if err := worker.Run(ctx); err != nil {
		slog.Error("worker failed", "error", err)
		os.Exit(1)
	}
	slog.Info("thumbnail worker stopped")
}
