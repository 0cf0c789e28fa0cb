// Package queue はRedisのリストを使ったジョブキューを提供します。
//
// ジョブはJSONとしてメインリストにLPUSHされ、ワーカーはBLMOVEで
// pendingリストへアトミックに移動しながら取り出します。処理が終わった
// ジョブはAckでpendingリストから削除されます。ワーカーがジョブ処理中に
// 落ちた場合、エントリはpendingリストに残り、次回起動時のReclaimで
// メインリストに戻されて再配信されます（at-least-once配信）。
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Job is a single unit of background work: one thumbnail set for one file.
type Job struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// Queue はRedisリストベースのジョブキューです。
type Queue struct {
	client  *redis.Client
	key     string
	pending string
}

// NewQueue は指定されたキー名でQueueの新しいインスタンスを生成します。
// 処理中ジョブは "<key>:pending" リストに保持されます。
func NewQueue(client *redis.Client, key string) *Queue {
	return &Queue{
		client:  client,
		key:     key,
		pending: key + ":pending",
	}
}

// Enqueue はジョブをJSONにエンコードしてキューの先頭に積みます。
func (q *Queue) Enqueue(ctx context.Context, job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}

// Dequeue はキューの末尾からジョブを1件取り出し、pendingリストへ移動します。
// timeoutの間にジョブが到着しなければ (nil, "", nil) を返します。
// 戻り値のrawはAckでの削除に使う生ペイロードです。
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (*Job, string, error) {
	raw, err := q.client.BLMove(ctx, q.key, q.pending, "RIGHT", "LEFT", timeout).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to dequeue job: %w", err)
	}

	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		// 壊れたペイロードはpendingに残さない
		q.client.LRem(ctx, q.pending, 1, raw)
		return nil, "", fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, raw, nil
}

// Ack は処理済みジョブをpendingリストから削除します。
func (q *Queue) Ack(ctx context.Context, raw string) error {
	if err := q.client.LRem(ctx, q.pending, 1, raw).Err(); err != nil {
		return fmt.Errorf("failed to ack job: %w", err)
	}
	return nil
}

// Reclaim は前回のワーカーが処理しきれなかったpendingジョブを
// メインリストへ戻します。戻したジョブ数を返します。
func (q *Queue) Reclaim(ctx context.Context) (int, error) {
	moved := 0
	for {
		_, err := q.client.LMove(ctx, q.pending, q.key, "RIGHT", "LEFT").Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return moved, nil
			}
			return moved, fmt.Errorf("failed to reclaim pending jobs: %w", err)
		}
		moved++
	}
}

// Len は未処理ジョブの件数を返します。
func (q *Queue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return n, nil
}
