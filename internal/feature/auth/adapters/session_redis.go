// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/usecase"
)

// sessionKeyPrefix はセッションキャッシュのキー接頭辞です。
// キー形式は "auth_<token>"、値はuserIDの文字列です。
const sessionKeyPrefix = "auth_"

// sessionRedis はSessionStoreインターフェースのRedis実装です。
// エントリの失効はRedisのTTLに委ねます。
type sessionRedis struct {
	client *redis.Client
}

// sessionRedisがSessionStoreを実装していることをコンパイル時に検証します。
var _ usecase.SessionStore = (*sessionRedis)(nil)

// NewSessionRedis は指定されたRedisクライアントでsessionRedisの新しいインスタンスを生成します。
func NewSessionRedis(client *redis.Client) *sessionRedis {
	return &sessionRedis{client: client}
}

// sessionKey returns the cache key for a token.
func (r *sessionRedis) sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Create はtoken -> userIDを指定TTLで保存します。
// トークンごとに独立したキーなので、並行呼び出しの調整は不要です。
func (r *sessionRedis) Create(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.sessionKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrCacheUnavailable, err)
	}
	return nil
}

// Resolve はトークンに対応するuserIDを返します。
// 参照してもTTLは更新されません（スライディング有効期限は実装しない）。
func (r *sessionRedis) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, r.sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", usecase.ErrSessionNotFound
		}
		return "", fmt.Errorf("%w: %w", usecase.ErrCacheUnavailable, err)
	}
	return userID, nil
}

// Revoke はトークンを削除し、存在していたかどうかを返します。
func (r *sessionRedis) Revoke(ctx context.Context, token string) (bool, error) {
	deleted, err := r.client.Del(ctx, r.sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", usecase.ErrCacheUnavailable, err)
	}
	return deleted > 0, nil
}
