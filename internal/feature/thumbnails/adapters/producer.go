// Package adapters はサムネイルパイプラインのキュー接続を提供します。
package adapters

import (
	"context"

	filesusecase "github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/usecase"
	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/queue"
)

// QueueKey はサムネイルジョブ用Redisリストのキー名です。
// APIサーバー（投入側）とワーカー（消費側）で共有します。
const QueueKey = "thumbnail_jobs"

// producer はアップロードAPI側でサムネイルジョブを投入します。
type producer struct {
	queue *queue.Queue
}

// producerがThumbnailProducerを実装していることをコンパイル時に検証します。
var _ filesusecase.ThumbnailProducer = (*producer)(nil)

// NewProducer は指定されたキューへ投入するproducerの新しいインスタンスを生成します。
func NewProducer(q *queue.Queue) *producer {
	return &producer{queue: q}
}

// Enqueue は画像1件につき1ジョブを投入します。
func (p *producer) Enqueue(ctx context.Context, userID, fileID string) error {
	return p.queue.Enqueue(ctx, queue.Job{UserID: userID, FileID: fileID})
}
