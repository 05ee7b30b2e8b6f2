package job

import (
	"context"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"go.uber.org/zap"
)

type ScheduleSweepJob struct {
	pr        repository.PostRepository
	scheduler service.PublishScheduler
	grace     time.Duration
}

func NewScheduleSweepJob(pr repository.PostRepository, scheduler service.PublishScheduler) *ScheduleSweepJob {
	return &ScheduleSweepJob{
		pr:        pr,
		scheduler: scheduler,
		grace:     2 * time.Minute,
	}
}

// Sweep re-enqueues scheduled posts that are overdue, e.g. because their
// task was lost or never enqueued. Task IDs make this idempotent.
func (j *ScheduleSweepJob) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	posts, err := j.pr.ListDueScheduled(ctx, time.Now().Add(-j.grace))
	if err != nil {
		zap.L().Info(err.Error())
		return
	}

	for _, post := range posts {
		if err := j.scheduler.SchedulePublish(ctx, post.ID, *post.ScheduledAt); err != nil {
			zap.L().Info("unable to re-enqueue post", zap.Int64("post_id", post.ID), zap.Error(err))
		}
	}
	if len(posts) > 0 {
		zap.L().Info("re-enqueued overdue posts", zap.Int("count", len(posts)))
	}
}
