// Package handler はfilesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AdetokunAdenike/alx-files-manager/internal/api"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/transport/middleware"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/domain/entity"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/usecase"
)

// FilesUsecase はファイル操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type FilesUsecase interface {
	// Upload は新しいファイルまたはフォルダを登録します。
	Upload(ctx context.Context, userID string, p usecase.UploadParams) (*entity.File, error)
	// Show は所有者スコープでメタデータを返します。
	Show(ctx context.Context, userID, fileID string) (*entity.File, error)
	// List はユーザーのファイル一覧を1ページ分返します。
	List(ctx context.Context, userID, parentID string, page int64) ([]*entity.File, error)
	// SetVisibility はisPublicフラグを切り替えます。
	SetVisibility(ctx context.Context, userID, fileID string, public bool) (*entity.File, error)
	// Content はアクセスポリシーを評価した上でファイル内容を返します。
	Content(ctx context.Context, requesterID, fileID string, width int) (*usecase.Content, error)
}

// TokenResolver resolves an opaque session token to a user ID.
// The content endpoint resolves tokens itself because anonymous requests
// are allowed through to public files.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (string, error)
}

// FilesHandler はファイル操作のHTTPリクエストを処理します。
type FilesHandler struct {
	files  FilesUsecase
	tokens TokenResolver
}

// NewFilesHandler はFilesHandlerの新しいインスタンスを生成します。
func NewFilesHandler(files FilesUsecase, tokens TokenResolver) *FilesHandler {
	return &FilesHandler{files: files, tokens: tokens}
}

// toResponse converts a file entity to its public JSON view.
func toResponse(f *entity.File) api.FileResponse {
	return api.FileResponse{
		ID:       f.ID,
		UserID:   f.UserID,
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: f.ParentID,
	}
}

// Upload はファイルアップロードAPIエンドポイントを処理します。
// バリデーション失敗は400、成功時は201でメタデータを返します。
func (h *FilesHandler) Upload(c *gin.Context) {
	var req api.UploadFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing name"})
		return
	}

	file, err := h.files.Upload(c.Request.Context(), middleware.UserID(c), usecase.UploadParams{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingName):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing name"})
		case errors.Is(err, usecase.ErrMissingType):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing type"})
		case errors.Is(err, usecase.ErrMissingData):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing data"})
		case errors.Is(err, usecase.ErrInvalidData):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid data"})
		case errors.Is(err, usecase.ErrParentNotFound):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Parent not found"})
		case errors.Is(err, usecase.ErrParentNotFolder):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Parent is not a folder"})
		default:
			slog.Error("file upload failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, toResponse(file))
}

// Show はファイルメタデータ取得APIエンドポイントを処理します。
// 他人のファイルは存在しないものとして404を返します。
func (h *FilesHandler) Show(c *gin.Context) {
	file, err := h.files.Show(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
			return
		}
		slog.Error("file lookup failed", "error", err, "file_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, toResponse(file))
}

// Index はファイル一覧APIエンドポイントを処理します。
// parentIdとpageクエリでフィルタ・ページングします（1ページ20件）。
func (h *FilesHandler) Index(c *gin.Context) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	if err != nil || page < 0 {
		page = 0
	}

	files, err := h.files.List(c.Request.Context(), middleware.UserID(c), c.Query("parentId"), page)
	if err != nil {
		slog.Error("file listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	out := make([]api.FileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, toResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

// Publish はファイルを公開状態にします。
func (h *FilesHandler) Publish(c *gin.Context) {
	h.setVisibility(c, true)
}

// Unpublish はファイルを非公開状態にします。
func (h *FilesHandler) Unpublish(c *gin.Context) {
	h.setVisibility(c, false)
}

func (h *FilesHandler) setVisibility(c *gin.Context, public bool) {
	file, err := h.files.SetVisibility(c.Request.Context(), middleware.UserID(c), c.Param("id"), public)
	if err != nil {
		if errors.Is(err, usecase.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
			return
		}
		slog.Error("visibility update failed", "error", err, "file_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, toResponse(file))
}

// Data はファイル内容配信APIエンドポイントを処理します。
// 認証は必須ではなく、トークンが無ければ匿名リクエストとして公開ファイル
// のみ読めます。アクセス拒否と不存在はどちらも404で区別できません。
func (h *FilesHandler) Data(c *gin.Context) {
	// トークンはベストエフォートで解決する（失敗しても匿名として続行）
	requesterID := ""
	if token := c.GetHeader(middleware.TokenHeader); token != "" {
		if userID, err := h.tokens.ResolveToken(c.Request.Context(), token); err == nil {
			requesterID = userID
		}
	}

	width := 0
	if sizeParam := c.Query("size"); sizeParam != "" {
		w, err := strconv.Atoi(sizeParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid size"})
			return
		}
		width = w
	}

	content, err := h.files.Content(c.Request.Context(), requesterID, c.Param("id"), width)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFileNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
		case errors.Is(err, usecase.ErrFolderHasNoContent):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "A folder doesn't have content"})
		case errors.Is(err, usecase.ErrContentMissing):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "File not found locally"})
		case errors.Is(err, usecase.ErrUnknownMime):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unable to determine MIME type"})
		default:
			slog.Error("file content retrieval failed", "error", err, "file_id", c.Param("id"))
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.Data(http.StatusOK, content.MimeType, content.Data)
}
