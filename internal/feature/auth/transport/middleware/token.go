// Package middleware はx-tokenヘッダーによる認証ミドルウェアを提供します。
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdetokunAdenike/alx-files-manager/internal/api"
)

// ContextUserID is the gin context key holding the authenticated user's ID.
const ContextUserID = "userID"

// TokenHeader is the header carrying the opaque session token.
const TokenHeader = "X-Token"

// TokenResolver resolves an opaque session token to a user ID.
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（middleware）が定義します。
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (string, error)
}

// AuthRequired returns a Gin middleware function that validates session
// tokens and restricts access to authenticated users only.
func AuthRequired(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
			return
		}

		// 未知・期限切れ・キャッシュ障害はすべて未認証扱い（フェイルクローズ）
		userID, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID set by AuthRequired.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
