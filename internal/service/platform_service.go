package service

import (
	"context"
	"fmt"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
)

type PlatformService interface {
	GetAuthURL(ctx context.Context, platform, state string) (string, error)
	List(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	Delete(ctx context.Context, userID, accountID int64) error
}

type platformService struct {
	li LinkedInService
	sa repository.SocialAccountRepository
}

func NewPlatformService(li LinkedInService, sa repository.SocialAccountRepository) PlatformService {
	return &platformService{
		li: li,
		sa: sa,
	}
}

func (s *platformService) GetAuthURL(ctx context.Context, platform, state string) (string, error) {
	switch platform {
	case models.PlatformLinkedIn:
		return s.li.AuthURL(state), nil
	default:
		return "", invalid("platform", "is not supported")
	}
}

func (s *platformService) List(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	accounts, err := s.sa.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting social accounts: %w", err)
	}
	return accounts, nil
}

func (s *platformService) Delete(ctx context.Context, userID, accountID int64) error {
	if accountID == 0 {
		return invalid("account_id", "is required")
	}

	account, err := s.sa.GetByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("unable to get social account info: %w", err)
	}
	if account == nil {
		return notFound("account")
	}
	if account.UserID != userID {
		return forbidden("account")
	}

	if err := s.sa.Remove(ctx, accountID); err != nil {
		return fmt.Errorf("error removing account: %w", err)
	}
	return nil
}
