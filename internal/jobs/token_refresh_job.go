package job

import (
	"context"
	"sync"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"go.uber.org/zap"
)

const refreshConcurrency = 10

type TokenRefreshJob struct {
	sr     repository.SocialAccountRepository
	li     service.LinkedInService
	window time.Duration
}

func NewTokenRefreshJob(sr repository.SocialAccountRepository, li service.LinkedInService) *TokenRefreshJob {
	return &TokenRefreshJob{
		sr:     sr,
		li:     li,
		window: 24 * time.Hour,
	}
}

// RefreshTokens renews LinkedIn tokens that expire within the window.
func (c *TokenRefreshJob) RefreshTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	currentTime := time.Now()
	accounts, err := c.sr.ListByTimeInterval(ctx, currentTime, currentTime.Add(c.window))
	if err != nil {
		zap.L().Info(err.Error())
		return
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, refreshConcurrency)

	for _, acc := range accounts {
		if acc.Platform != models.PlatformLinkedIn || acc.AccountStatus == models.AccountStatusExpired {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *models.SocialAccount) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := c.li.RefreshLinkedInToken(ctx, acc); err != nil {
				zap.L().Info("unable to refresh linkedin token", zap.Int64("account_id", acc.ID), zap.Error(err))
			}
		}(acc)
	}

	wg.Wait()
}
