// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdetokunAdenike/alx-files-manager/internal/api"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/domain/entity"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/transport/middleware"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたメールアドレスとパスワードで新規ユーザーを登録します。
	Register(ctx context.Context, email, password string) (*entity.User, error)
	// Connect はBasic認証情報を検証し、セッショントークンを発行します。
	Connect(ctx context.Context, authorization string) (string, error)
	// Disconnect はトークンを失効させます。
	Disconnect(ctx context.Context, token string) error
	// UserFromToken はトークンから認証済みユーザーを取得します。
	UserFromToken(ctx context.Context, token string) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// CreateUser はユーザー登録APIエンドポイントを処理します。
// - email/passwordの欠落と形式不正は400を返却
// - メール重複時は400を返却
// - 成功時は201でidとemailのみ返却（パスワードは返さない）
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req api.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing email"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing email"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing password"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMalformedCredentials):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid email format"})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Already exist"})
		default:
			slog.Error("user creation failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error creating user"})
		}
		return
	}

	slog.Info("user created", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.UserResponse{ID: user.ID, Email: user.Email})
}

// Connect はログインAPIエンドポイントを処理します。
// Basic認証ヘッダーを検証し、成功時はセッショントークンを返します。
// ヘッダー不正と認証失敗はどちらも401で、内部の失敗理由はログにのみ残します。
func (h *AuthHandler) Connect(c *gin.Context) {
	token, err := h.auth.Connect(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMalformedCredentials):
			slog.Warn("login rejected: malformed credentials", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// どのフィールドが誤っていたかは公開しない
			slog.Warn("login rejected: invalid credentials", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	slog.Info("user login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Disconnect はログアウトAPIエンドポイントを処理します。
// トークン失効の成功時は204（ボディなし）、トークン不明・欠落時は401を返します。
func (h *AuthHandler) Disconnect(c *gin.Context) {
	token := c.GetHeader(middleware.TokenHeader)
	if token == "" {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.auth.Disconnect(c.Request.Context(), token); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid token"})
			return
		}
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Me は認証済みユーザー自身の情報を返すAPIエンドポイントを処理します。
// トークンが無効な場合やキャッシュ障害時は401を返します（フェイルクローズ）。
func (h *AuthHandler) Me(c *gin.Context) {
	token := c.GetHeader(middleware.TokenHeader)
	if token == "" {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.auth.UserFromToken(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, usecase.ErrSessionNotFound) {
			slog.Error("token resolution failed", "error", err, "remote_addr", c.ClientIP())
		}
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, api.UserResponse{ID: user.ID, Email: user.Email})
}
