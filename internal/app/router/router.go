package router

import (
	"github.com/gin-gonic/gin"

	authhandler "github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/transport/handler"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/transport/middleware"
	fileshandler "github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/transport/handler"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/http/handler"
)

// NewRouter はAPIの全ルートを組み立てます。
func NewRouter(authH *authhandler.AuthHandler, filesH *fileshandler.FilesHandler,
	statusH *handler.StatusHandler, tokens middleware.TokenResolver) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// 依存サービスの状態と集計
	r.GET("/status", statusH.Status)
	r.GET("/stats", statusH.Stats)
	// 新規ユーザー登録
	r.POST("/users", authH.CreateUser)
	// ログイン（Basic認証でトークン発行）
	r.GET("/connect", authH.Connect)
	// ログアウト（ハンドラー内でX-Tokenを検証する）
	r.GET("/disconnect", authH.Disconnect)
	// 自分のプロフィール（同上）
	r.GET("/users/me", authH.Me)
	// ファイル内容の取得は公開ファイルなら匿名でも読めるため、
	// ミドルウェアを通さずハンドラー側でトークンを任意解決する
	r.GET("/files/:id/data", filesH.Data)

	// 認証必須のルート
	auth := r.Group("/")
	// middleware.AuthRequired を適用
	// → リクエストヘッダーに X-Token が必要になる
	auth.Use(middleware.AuthRequired(tokens))
	{
		auth.POST("/files", filesH.Upload)
		auth.GET("/files/:id", filesH.Show)
		auth.GET("/files", filesH.Index)
		auth.PUT("/files/:id/publish", filesH.Publish)
		auth.PUT("/files/:id/unpublish", filesH.Unpublish)
	}

	return r
}
