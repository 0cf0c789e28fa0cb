// Package usecase はサムネイルパイプラインのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/domain/entity"
	filesusecase "github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/usecase"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/queue"
)

// FileRepository は所有者スコープのファイル取得を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマーが定義します。
type FileRepository interface {
	FindByIDAndUser(ctx context.Context, id, userID string) (*entity.File, error)
}

// BlobStore はサムネイル生成に必要なディスク操作を抽象化します。
type BlobStore interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Exists(path string) bool
	EnsureDir(dir string) error
}

// Resizer は画像を指定幅に縮小します。アスペクト比は維持されます。
type Resizer interface {
	Resize(data []byte, width int) ([]byte, error)
}

// processor はサムネイルジョブを1件ずつ処理します。
type processor struct {
	files   FileRepository
	disk    BlobStore
	resizer Resizer
}

// NewProcessor はprocessorの新しいインスタンスを生成します。
func NewProcessor(files FileRepository, disk BlobStore, resizer Resizer) *processor {
	return &processor{
		files:   files,
		disk:    disk,
		resizer: resizer,
	}
}

// Process は1件のジョブを検証し、固定幅[500, 250, 100]のサムネイルを
// 順番に生成します。生成は並列化せず、1つでも失敗したら残りを中止して
// ジョブ全体を失敗させます。部分的な成功を成功扱いにすると、3サイズ
// 揃っている前提の呼び出し側が欠けたセットを観測してしまうためです。
// 再実行は同じパスへの上書きなので冪等です。
func (p *processor) Process(ctx context.Context, job queue.Job) error {
	if job.FileID == "" {
		return ErrMissingFileID
	}
	if job.UserID == "" {
		return ErrMissingUserID
	}

	file, err := p.files.FindByIDAndUser(ctx, job.FileID, job.UserID)
	if err != nil {
		if errors.Is(err, filesusecase.ErrFileNotFound) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, job.FileID)
		}
		return fmt.Errorf("failed to fetch file %s: %w", job.FileID, err)
	}

	if file.Type != entity.TypeImage {
		return fmt.Errorf("%w: %s is %s", ErrNotAnImage, file.ID, file.Type)
	}

	if !p.disk.Exists(file.LocalPath) {
		return fmt.Errorf("%w: %s", ErrContentMissing, file.LocalPath)
	}

	src, err := p.disk.Read(file.LocalPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrContentMissing, err)
	}

	if err := p.disk.EnsureDir(file.ThumbnailDir()); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	for _, width := range entity.ThumbnailWidths {
		thumb, err := p.resizer.Resize(src, width)
		if err != nil {
			return fmt.Errorf("%w: width %d: %w", ErrRenderFailed, width, err)
		}
		if err := p.disk.Write(file.ThumbnailPath(width), thumb); err != nil {
			return fmt.Errorf("%w: width %d: %w", ErrRenderFailed, width, err)
		}
	}

	return nil
}
