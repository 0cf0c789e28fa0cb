// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import "github.com/gin-gonic/gin"

// Health は死活監視用の /healthz エンドポイントを処理します。
// 依存サービスには触れず、プロセスが応答できることだけを示します。
// 依存込みのチェックは /status が担当します。
func Health(c *gin.Context) {
	// ロードバランサーが古い結果を使わないようキャッシュを防止
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == "HEAD" {
		c.Status(200)
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}
