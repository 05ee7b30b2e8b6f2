package queue

import (
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/service"
)

const TaskTypePublishPost = "post:publish"

// dueSlack tolerates clock skew between the enqueuer and the worker.
const dueSlack = time.Minute

type PublishPostPayload struct {
	PostID      int64 `json:"post_id"`
	ScheduledAt int64 `json:"scheduled_at"`
}

type Queue struct {
	pr  repository.PostRepository
	pub service.PostPublisher
	now func() time.Time
}

func NewQueue(pr repository.PostRepository, pub service.PostPublisher) *Queue {
	return &Queue{
		pr:  pr,
		pub: pub,
		now: time.Now,
	}
}
