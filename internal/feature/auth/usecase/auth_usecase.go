// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/domain/entity"
)

const (
	// sessionTTL はセッショントークンの固定有効期限です。
	// 発行から24時間で失効し、参照しても延長されません。
	sessionTTL = 24 * time.Hour
)

// emailPattern はメールアドレスの形式チェックに使います。
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users    UserRepository
	sessions SessionStore
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionStore) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスの形式が不正な場合、または既に登録済みの場合はエラーを返します。
func (u *authUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrMalformedCredentials)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: string(hashed), CreatedAt: time.Now()}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// decodeBasicAuth はAuthorizationヘッダーからemailとpasswordを取り出します。
// "Basic <base64(email:password)>" 以外の形式はErrMalformedCredentialsになります。
func decodeBasicAuth(authorization string) (string, string, error) {
	const prefix = "Basic "
	if !strings.HasPrefix(authorization, prefix) {
		return "", "", ErrMalformedCredentials
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authorization, prefix))
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformedCredentials, err)
	}

	// 区切りは最初の":"のみ。パスワード側に":"が含まれていても許容する。
	email, password, found := strings.Cut(string(decoded), ":")
	if !found || email == "" || password == "" {
		return "", "", ErrMalformedCredentials
	}
	return email, password, nil
}

// Connect はBasic認証情報を検証し、新しいセッショントークンを発行します。
// トークンはランダムなUUID v4で、TTLキャッシュにuserIDと共に保存されます。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Connect(ctx context.Context, authorization string) (string, error) {
	email, password, err := decodeBasicAuth(authorization)
	if err != nil {
		return "", err
	}

	user, findErr := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if findErr == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if findErr != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	// 同一ユーザーの並行ログインはそれぞれ独立したセッションになる
	token := uuid.NewString()
	if err := u.sessions.Create(ctx, token, user.ID, sessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

// Disconnect はトークンを失効させます。
// 既に失効済み・未発行のトークンはErrSessionNotFoundを返します（冪等）。
func (u *authUsecase) Disconnect(ctx context.Context, token string) error {
	existed, err := u.sessions.Revoke(ctx, token)
	if err != nil {
		return err
	}
	if !existed {
		return ErrSessionNotFound
	}
	return nil
}

// ResolveToken はトークンからuserIDを解決します。
// キャッシュ障害時はErrCacheUnavailableを伝播し、呼び出し側はフェイル
// クローズ（未認証扱い）にします。
func (u *authUsecase) ResolveToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}
	return u.sessions.Resolve(ctx, token)
}

// UserFromToken はトークンから認証済みユーザーを取得します。
func (u *authUsecase) UserFromToken(ctx context.Context, token string) (*entity.User, error) {
	userID, err := u.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		// セッションはあるがユーザーが消えている場合も未認証扱いにする
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}
