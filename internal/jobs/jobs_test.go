package job

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type fakePostRepo struct {
	repository.PostRepository
	due    []*models.Post
	before time.Time
}

func (r *fakePostRepo) ListDueScheduled(ctx context.Context, before time.Time) ([]*models.Post, error) {
	r.before = before
	return r.due, nil
}

type fakeScheduler struct {
	ids []int64
	err error
}

func (s *fakeScheduler) SchedulePublish(ctx context.Context, postID int64, at time.Time) error {
	s.ids = append(s.ids, postID)
	return s.err
}

func TestScheduleSweepJob_Sweep(t *testing.T) {
	past := time.Now().Add(-10 * time.Minute)
	repo := &fakePostRepo{due: []*models.Post{
		{ID: 1, Status: models.PostStatusScheduled, ScheduledAt: &past},
		{ID: 2, Status: models.PostStatusScheduled, ScheduledAt: &past},
	}}
	scheduler := &fakeScheduler{}

	NewScheduleSweepJob(repo, scheduler).Sweep()

	assert.Equal(t, []int64{1, 2}, scheduler.ids)
	assert.WithinDuration(t, time.Now().Add(-2*time.Minute), repo.before, 5*time.Second)
}

func TestScheduleSweepJob_ContinuesAfterEnqueueError(t *testing.T) {
	past := time.Now().Add(-10 * time.Minute)
	repo := &fakePostRepo{due: []*models.Post{
		{ID: 1, ScheduledAt: &past},
		{ID: 2, ScheduledAt: &past},
	}}
	scheduler := &fakeScheduler{err: errors.New("redis down")}

	NewScheduleSweepJob(repo, scheduler).Sweep()

	assert.Equal(t, []int64{1, 2}, scheduler.ids)
}

type fakeAccountRepo struct {
	repository.SocialAccountRepository
	accounts []*models.SocialAccount
}

func (r *fakeAccountRepo) ListByTimeInterval(ctx context.Context, initialTime, finalTime time.Time) ([]*models.SocialAccount, error) {
	return r.accounts, nil
}

type fakeLinkedIn struct {
	service.LinkedInService
	mu        sync.Mutex
	refreshed []int64
}

func (l *fakeLinkedIn) RefreshLinkedInToken(ctx context.Context, acc *models.SocialAccount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refreshed = append(l.refreshed, acc.ID)
	if acc.ID == 3 {
		return errors.New("invalid_grant")
	}
	return nil
}

func TestTokenRefreshJob_RefreshTokens(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := &fakeAccountRepo{}
	for i := int64(1); i <= 25; i++ {
		repo.accounts = append(repo.accounts, &models.SocialAccount{ID: i, Platform: models.PlatformLinkedIn, AccountStatus: models.AccountStatusActive})
	}
	repo.accounts = append(repo.accounts,
		&models.SocialAccount{ID: 100, Platform: "tiktok", AccountStatus: models.AccountStatusActive},
		&models.SocialAccount{ID: 101, Platform: models.PlatformLinkedIn, AccountStatus: models.AccountStatusExpired},
	)
	li := &fakeLinkedIn{}

	NewTokenRefreshJob(repo, li).RefreshTokens()

	assert.Len(t, li.refreshed, 25)
	assert.NotContains(t, li.refreshed, int64(100))
	assert.NotContains(t, li.refreshed, int64(101))
}
