package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/AdetokunAdenike/alx-files-manager/internal/platform/queue"
)

// dequeueTimeout bounds each blocking pop so shutdown is responsive.
const dequeueTimeout = 5 * time.Second

// JobQueue はワーカーが消費するジョブキューを抽象化します。
type JobQueue interface {
	Dequeue(ctx context.Context, timeout time.Duration) (*queue.Job, string, error)
	Ack(ctx context.Context, raw string) error
	Reclaim(ctx context.Context) (int, error)
}

// JobProcessor は1件のジョブを処理します。
type JobProcessor interface {
	Process(ctx context.Context, job queue.Job) error
}

// Worker はキューを継続的に消費する長寿命プロセスの本体です。
type Worker struct {
	queue     JobQueue
	processor JobProcessor
}

// NewWorker はWorkerの新しいインスタンスを生成します。
func NewWorker(q JobQueue, p JobProcessor) *Worker {
	return &Worker{queue: q, processor: p}
}

// Run はctxがキャンセルされるまでジョブを取り出して処理し続けます。
// 起動時に前回のワーカーが残した処理中ジョブをキューへ戻します。
// ジョブの失敗はすべて終端的で、ログに残してackし、ワーカー自体は
// 決して停止させません。シャットダウン時は新規ジョブの受付をやめ、
// 処理中のジョブを完了させてから戻ります。
func (w *Worker) Run(ctx context.Context) error {
	reclaimed, err := w.queue.Reclaim(ctx)
	if err != nil {
		return err
	}
	if reclaimed > 0 {
		slog.Info("reclaimed pending jobs from a previous run", "count", reclaimed)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		job, raw, err := w.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Error("dequeue failed", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			continue
		}

		// 処理中のジョブはシャットダウンシグナルの影響を受けずに完走させる
		jobCtx := context.WithoutCancel(ctx)

		if err := w.processor.Process(jobCtx, *job); err != nil {
			slog.Error("thumbnail job failed", "file_id", job.FileID, "user_id", job.UserID, "error", err)
		} else {
			slog.Info("thumbnail job completed", "file_id", job.FileID, "user_id", job.UserID)
		}

		// 終端的な失敗もackする（自動リトライはしない）
		if err := w.queue.Ack(jobCtx, raw); err != nil {
			slog.Error("failed to ack job", "file_id", job.FileID, "error", err)
		}
	}
}
