package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Scheduler enqueues one delayed publish task per post and schedule time.
type Scheduler struct {
	client enqueuer
}

func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{client: client}
}

func taskID(postID int64, at time.Time) string {
	return fmt.Sprintf("publish:%d:%d", postID, at.Unix())
}

func (s *Scheduler) SchedulePublish(ctx context.Context, postID int64, at time.Time) error {
	payload, err := json.Marshal(PublishPostPayload{PostID: postID, ScheduledAt: at.Unix()})
	if err != nil {
		return err
	}

	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}

	task := asynq.NewTask(TaskTypePublishPost, payload)
	_, err = s.client.EnqueueContext(ctx, task,
		asynq.ProcessIn(delay),
		asynq.TaskID(taskID(postID, at)),
		asynq.MaxRetry(3),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	if err != nil {
		return err
	}

	zap.L().Info("publish task scheduled", zap.Int64("post_id", postID), zap.Duration("delay", delay))
	return nil
}
