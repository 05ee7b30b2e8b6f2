package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
	"go.uber.org/zap"
)

// PublishScheduler arranges for a post to be published at a given time.
type PublishScheduler interface {
	SchedulePublish(ctx context.Context, postID int64, at time.Time) error
}

type PostService interface {
	Create(ctx context.Context, userID int64, in *transfer.PostInput) (*models.Post, error)
	List(ctx context.Context, userID int64, filter repository.PostFilter) ([]*models.Post, error)
	Get(ctx context.Context, userID, postID int64) (*models.Post, error)
	Update(ctx context.Context, userID, postID int64, in *transfer.PostInput) (*models.Post, error)
	Schedule(ctx context.Context, userID, postID int64, in *transfer.ScheduleInput) (*models.Post, error)
	PublishNow(ctx context.Context, userID, postID int64) (*models.Post, error)
	UpdateMetrics(ctx context.Context, userID, postID int64, in *transfer.MetricsInput) (*models.Post, error)
	Remove(ctx context.Context, userID, postID int64) error
}

type postService struct {
	pr        repository.PostRepository
	pl        repository.PillarRepository
	sa        repository.SocialAccountRepository
	scheduler PublishScheduler
	publisher PostPublisher
}

func NewPostService(
	pr repository.PostRepository,
	pl repository.PillarRepository,
	sa repository.SocialAccountRepository,
	scheduler PublishScheduler,
	publisher PostPublisher) PostService {
	return &postService{
		pr:        pr,
		pl:        pl,
		sa:        sa,
		scheduler: scheduler,
		publisher: publisher,
	}
}

func validatePost(in *transfer.PostInput) error {
	if err := required("content", in.Content, maxPostLength); err != nil {
		return err
	}
	if in.Status == "" {
		in.Status = models.PostStatusDraft
	}
	if err := oneOf("status", in.Status, models.PostStatuses); err != nil {
		return err
	}
	if in.Status == models.PostStatusScheduled && in.ScheduledAt == nil {
		return invalid("scheduled_at", "is required for scheduled posts")
	}
	if len(in.Title) > 200 {
		return invalid("title", "is too long")
	}
	return nil
}

func requireFuture(at *time.Time) error {
	if at == nil {
		return invalid("scheduled_at", "is required")
	}
	if !at.After(time.Now()) {
		return invalid("scheduled_at", "must be in the future")
	}
	return nil
}

// checkRefs verifies the optional pillar and account belong to userID.
func (s *postService) checkRefs(ctx context.Context, userID int64, pillarID, accountID *int64) error {
	if pillarID != nil {
		pillar, err := s.pl.GetByID(ctx, *pillarID)
		if err != nil {
			return err
		}
		if pillar == nil {
			return notFound("pillar")
		}
		if pillar.UserID != userID {
			return forbidden("pillar")
		}
	}
	if accountID != nil {
		ok, err := s.sa.CheckByUserID(ctx, *accountID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("account")
		}
	}
	return nil
}

func (s *postService) Create(ctx context.Context, userID int64, in *transfer.PostInput) (*models.Post, error) {
	if err := validatePost(in); err != nil {
		return nil, err
	}
	if in.Status == models.PostStatusScheduled {
		if err := requireFuture(in.ScheduledAt); err != nil {
			return nil, err
		}
	}
	if err := s.checkRefs(ctx, userID, in.PillarID, in.AccountID); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:      userID,
		PillarID:    in.PillarID,
		AccountID:   in.AccountID,
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
		Status:      in.Status,
		ScheduledAt: in.ScheduledAt,
		Hashtags:    normalizeTags(in.Hashtags, "#"),
		Mentions:    normalizeTags(in.Mentions, "@"),
		Media:       cleanList(in.Media),
	}

	id, err := s.pr.Create(ctx, nil, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	post.ID = id

	if post.Status == models.PostStatusScheduled {
		s.enqueue(ctx, post)
	}
	return s.pr.GetByID(ctx, id)
}

// enqueue failures are logged only: the schedule sweep picks up overdue posts.
func (s *postService) enqueue(ctx context.Context, post *models.Post) {
	if err := s.scheduler.SchedulePublish(ctx, post.ID, *post.ScheduledAt); err != nil {
		zap.L().Warn("failed to enqueue post", zap.Int64("post_id", post.ID), zap.Error(err))
	}
}

func (s *postService) List(ctx context.Context, userID int64, filter repository.PostFilter) ([]*models.Post, error) {
	if filter.Status != "" {
		if err := oneOf("status", filter.Status, models.PostStatuses); err != nil {
			return nil, err
		}
	}
	posts, err := s.pr.ListByUserID(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, userID, postID int64) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error getting post: %w", err)
	}
	if post == nil {
		return nil, notFound("post")
	}
	if post.UserID != userID {
		return nil, forbidden("post")
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, userID, postID int64, in *transfer.PostInput) (*models.Post, error) {
	if err := validatePost(in); err != nil {
		return nil, err
	}

	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, userID, in.PillarID, in.AccountID); err != nil {
		return nil, err
	}

	reschedule := in.Status == models.PostStatusScheduled &&
		(post.Status != models.PostStatusScheduled || !sameTime(post.ScheduledAt, in.ScheduledAt))
	if reschedule {
		if err := requireFuture(in.ScheduledAt); err != nil {
			return nil, err
		}
	}

	post.PillarID = in.PillarID
	post.AccountID = in.AccountID
	post.Title = strings.TrimSpace(in.Title)
	post.Content = in.Content
	post.Status = in.Status
	post.ScheduledAt = in.ScheduledAt
	post.Hashtags = normalizeTags(in.Hashtags, "#")
	post.Mentions = normalizeTags(in.Mentions, "@")
	post.Media = cleanList(in.Media)

	if err := s.pr.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	if reschedule {
		s.enqueue(ctx, post)
	}
	return s.pr.GetByID(ctx, postID)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (s *postService) Schedule(ctx context.Context, userID, postID int64, in *transfer.ScheduleInput) (*models.Post, error) {
	if err := requireFuture(in.ScheduledAt); err != nil {
		return nil, err
	}

	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusPublished {
		return nil, invalid("status", "post is already published")
	}

	post.Status = models.PostStatusScheduled
	post.ScheduledAt = in.ScheduledAt
	if err := s.pr.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("error scheduling post: %w", err)
	}
	s.enqueue(ctx, post)

	return s.pr.GetByID(ctx, postID)
}

func (s *postService) PublishNow(ctx context.Context, userID, postID int64) (*models.Post, error) {
	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusPublished {
		return nil, invalid("status", "post is already published")
	}

	if err := s.publisher.Publish(ctx, post); err != nil {
		return nil, err
	}
	return s.pr.GetByID(ctx, postID)
}

func (s *postService) UpdateMetrics(ctx context.Context, userID, postID int64, in *transfer.MetricsInput) (*models.Post, error) {
	if in.Likes < 0 || in.Comments < 0 || in.Shares < 0 || in.Impressions < 0 {
		return nil, invalid("metrics", "must not be negative")
	}

	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post.Likes = in.Likes
	post.Comments = in.Comments
	post.Shares = in.Shares
	post.Impressions = in.Impressions
	if err := s.pr.UpdateMetrics(ctx, post); err != nil {
		return nil, fmt.Errorf("error updating metrics: %w", err)
	}
	return s.pr.GetByID(ctx, postID)
}

func (s *postService) Remove(ctx context.Context, userID, postID int64) error {
	if _, err := s.Get(ctx, userID, postID); err != nil {
		return err
	}
	if err := s.pr.Remove(ctx, postID); err != nil {
		return fmt.Errorf("error removing post: %w", err)
	}
	return nil
}
