package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdetokunAdenike/alx-files-manager/internal/api"
)

// Pinger は依存サービスへの導通確認を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマー（handler）が定義します。
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc は関数をPingerとして使うためのアダプターです。
type PingFunc func(ctx context.Context) error

// Ping implements Pinger.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Counter はコレクション内のドキュメント数の取得を抽象化します。
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// StatusHandler は /status と /stats のHTTPハンドラーです。
type StatusHandler struct {
	cache Pinger
	store Pinger
	users Counter
	files Counter
}

// NewStatusHandler はStatusHandlerの新しいインスタンスを生成します。
func NewStatusHandler(cache, store Pinger, users, files Counter) *StatusHandler {
	return &StatusHandler{
		cache: cache,
		store: store,
		users: users,
		files: files,
	}
}

// Status は GET /status を処理します。
// 依存サービスが落ちていても200で返し、各フラグで状態を伝えます。
func (h *StatusHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	resp := api.StatusResponse{Redis: true, DB: true}
	if err := h.cache.Ping(ctx); err != nil {
		slog.Warn("redis ping failed", "error", err)
		resp.Redis = false
	}
	if err := h.store.Ping(ctx); err != nil {
		slog.Warn("db ping failed", "error", err)
		resp.DB = false
	}

	c.JSON(http.StatusOK, resp)
}

// Stats は GET /stats を処理します。
func (h *StatusHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.users.Count(ctx)
	if err != nil {
		slog.Error("failed to count users", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	files, err := h.files.Count(ctx)
	if err != nil {
		slog.Error("failed to count files", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, api.StatsResponse{Users: users, Files: files})
}
