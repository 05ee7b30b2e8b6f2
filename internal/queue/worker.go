package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	return q.PublishPost(ctx, payload.PostID)
}

// PublishPost publishes a post if it is still scheduled and due. Tasks for
// posts that were edited, deleted or moved later are dropped.
func (q *Queue) PublishPost(ctx context.Context, postID int64) error {
	post, err := q.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		zap.L().Info("skipping publish of deleted post", zap.Int64("post_id", postID))
		return nil
	}
	if post.Status != models.PostStatusScheduled || post.ScheduledAt == nil {
		zap.L().Info("skipping publish of unscheduled post", zap.Int64("post_id", postID), zap.String("status", post.Status))
		return nil
	}
	if post.ScheduledAt.After(q.now().Add(dueSlack)) {
		zap.L().Info("skipping publish of rescheduled post", zap.Int64("post_id", postID), zap.Time("scheduled_at", *post.ScheduledAt))
		return nil
	}

	if err := q.pub.Publish(ctx, post); err != nil {
		// the post is already marked failed, retrying would only repeat that
		return fmt.Errorf("publish post %d: %v: %w", postID, err, asynq.SkipRetry)
	}
	return nil
}
