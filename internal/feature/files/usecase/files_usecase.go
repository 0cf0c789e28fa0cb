// Package usecase はfilesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"slices"
	"time"

	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/domain/entity"
)

// UploadParams は新規アップロードの入力値です。
type UploadParams struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	// Data はbase64エンコードされたファイル内容です。フォルダでは空。
	Data string
}

// Content はファイル内容と配信用MIMEタイプのペアです。
type Content struct {
	Data     []byte
	MimeType string
}

// filesUsecase はファイル操作のビジネスロジックを実装します。
type filesUsecase struct {
	files FileRepository
	disk  BlobStore
	jobs  ThumbnailProducer
}

// NewFilesUsecase はfilesUsecaseの新しいインスタンスを生成します。
func NewFilesUsecase(files FileRepository, disk BlobStore, jobs ThumbnailProducer) *filesUsecase {
	return &filesUsecase{
		files: files,
		disk:  disk,
		jobs:  jobs,
	}
}

// Upload は新しいファイルまたはフォルダを登録します。
// 非フォルダはbase64デコードした内容をディスクへ保存してからドキュメントを
// 挿入します。画像の場合はサムネイルジョブを投入しますが、投入失敗で
// アップロード自体を失敗にはしません（ベストエフォート）。
func (u *filesUsecase) Upload(ctx context.Context, userID string, p UploadParams) (*entity.File, error) {
	if p.Name == "" {
		return nil, ErrMissingName
	}
	if p.Type != entity.TypeFolder && p.Type != entity.TypeFile && p.Type != entity.TypeImage {
		return nil, ErrMissingType
	}
	if p.Type != entity.TypeFolder && p.Data == "" {
		return nil, ErrMissingData
	}

	parentID := p.ParentID
	if parentID == "" {
		parentID = entity.RootParentID
	}
	if parentID != entity.RootParentID {
		parent, err := u.files.FindByID(ctx, parentID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParentNotFound, err)
		}
		if parent.Type != entity.TypeFolder {
			return nil, ErrParentNotFolder
		}
	}

	file := &entity.File{
		UserID:    userID,
		Name:      p.Name,
		Type:      p.Type,
		IsPublic:  p.IsPublic,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}

	if p.Type != entity.TypeFolder {
		data, err := base64.StdEncoding.DecodeString(p.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
		path, err := u.disk.Save(data)
		if err != nil {
			return nil, err
		}
		file.LocalPath = path
	}

	if err := u.files.Insert(ctx, file); err != nil {
		return nil, err
	}

	// ドキュメントは既に永続化済みなので、投入失敗でもロールバックしない。
	// サムネイル欠落は劣化状態であって破損ではない。
	if file.Type == entity.TypeImage {
		if err := u.jobs.Enqueue(ctx, userID, file.ID); err != nil {
			slog.Warn("thumbnail job enqueue failed", "file_id", file.ID, "error", err)
		}
	}

	return file, nil
}

// Show はファイルのメタデータを返します。所有者以外にはErrFileNotFoundです。
func (u *filesUsecase) Show(ctx context.Context, userID, fileID string) (*entity.File, error) {
	return u.files.FindByIDAndUser(ctx, fileID, userID)
}

// List はユーザーのファイル一覧を1ページ分返します。
func (u *filesUsecase) List(ctx context.Context, userID, parentID string, page int64) ([]*entity.File, error) {
	if page < 0 {
		page = 0
	}
	return u.files.ListByUser(ctx, userID, parentID, page)
}

// SetVisibility はisPublicフラグを切り替えます。所有者以外にはErrFileNotFoundです。
func (u *filesUsecase) SetVisibility(ctx context.Context, userID, fileID string, public bool) (*entity.File, error) {
	return u.files.SetPublic(ctx, fileID, userID, public)
}

// canRead reports whether the requester may read the file's content.
// Public files are readable by anyone (including anonymous requesters);
// private files only by their owner.
func canRead(requesterID string, f *entity.File) bool {
	return f.IsPublic || (requesterID != "" && f.UserID == requesterID)
}

// Content はアクセスポリシーを評価した上でファイル内容を返します。
// 評価順序:
//  1. ファイルが存在しない → ErrFileNotFound
//  2. 非公開かつ所有者以外 → ErrFileNotFound（存在を秘匿するため同じエラー）
//  3. フォルダ → ErrFolderHasNoContent
//  4. 実体がディスクに無い → ErrContentMissing
//
// widthが0以外の場合は該当サムネイルを返します。
func (u *filesUsecase) Content(ctx context.Context, requesterID, fileID string, width int) (*Content, error) {
	file, err := u.files.FindByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if !canRead(requesterID, file) {
		// 404と区別がつかないこと自体がポリシー（403は使わない）
		return nil, ErrFileNotFound
	}

	if file.Type == entity.TypeFolder {
		return nil, ErrFolderHasNoContent
	}

	path := file.LocalPath
	if width != 0 {
		if !slices.Contains(entity.ThumbnailWidths, width) {
			return nil, ErrContentMissing
		}
		path = file.ThumbnailPath(width)
	}

	if !u.disk.Exists(path) {
		return nil, ErrContentMissing
	}

	data, err := u.disk.Read(path)
	if err != nil {
		return nil, err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(file.Name))
	if mimeType == "" {
		return nil, ErrUnknownMime
	}

	return &Content{Data: data, MimeType: mimeType}, nil
}

// Count は登録ファイル数を返します。
func (u *filesUsecase) Count(ctx context.Context) (int64, error) {
	return u.files.Count(ctx)
}
