package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type PillarService interface {
	Create(ctx context.Context, userID int64, in *transfer.PillarInput) (*models.Pillar, error)
	List(ctx context.Context, userID int64) ([]*models.Pillar, error)
	Get(ctx context.Context, userID, pillarID int64) (*models.Pillar, error)
	Update(ctx context.Context, userID, pillarID int64, in *transfer.PillarInput) (*models.Pillar, error)
	Remove(ctx context.Context, userID, pillarID int64) error
}

type pillarService struct {
	pr repository.PillarRepository
}

func NewPillarService(pr repository.PillarRepository) PillarService {
	return &pillarService{pr: pr}
}

func validatePillar(in *transfer.PillarInput) error {
	if err := required("name", in.Name, maxNameLength); err != nil {
		return err
	}
	if in.Color == "" {
		in.Color = models.DefaultPillarColor
	}
	if !hexColorRe.MatchString(in.Color) {
		return invalid("color", "must be a hex color like #0A66C2")
	}
	if in.TargetPercentage < 0 || in.TargetPercentage > 100 {
		return invalid("target_percentage", "must be between 0 and 100")
	}
	return nil
}

func (s *pillarService) Create(ctx context.Context, userID int64, in *transfer.PillarInput) (*models.Pillar, error) {
	if err := validatePillar(in); err != nil {
		return nil, err
	}

	pillar := &models.Pillar{
		UserID:           userID,
		Name:             strings.TrimSpace(in.Name),
		Description:      in.Description,
		Color:            strings.ToUpper(in.Color),
		TargetPercentage: in.TargetPercentage,
	}

	id, err := s.pr.Create(ctx, pillar)
	if err != nil {
		return nil, fmt.Errorf("error creating pillar: %w", err)
	}
	return s.pr.GetByID(ctx, id)
}

func (s *pillarService) List(ctx context.Context, userID int64) ([]*models.Pillar, error) {
	pillars, err := s.pr.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing pillars: %w", err)
	}
	return pillars, nil
}

func (s *pillarService) Get(ctx context.Context, userID, pillarID int64) (*models.Pillar, error) {
	pillar, err := s.pr.GetByID(ctx, pillarID)
	if err != nil {
		return nil, fmt.Errorf("error getting pillar: %w", err)
	}
	if pillar == nil {
		return nil, notFound("pillar")
	}
	if pillar.UserID != userID {
		return nil, forbidden("pillar")
	}
	return pillar, nil
}

func (s *pillarService) Update(ctx context.Context, userID, pillarID int64, in *transfer.PillarInput) (*models.Pillar, error) {
	if err := validatePillar(in); err != nil {
		return nil, err
	}

	pillar, err := s.Get(ctx, userID, pillarID)
	if err != nil {
		return nil, err
	}

	pillar.Name = strings.TrimSpace(in.Name)
	pillar.Description = in.Description
	pillar.Color = strings.ToUpper(in.Color)
	pillar.TargetPercentage = in.TargetPercentage

	if err := s.pr.Update(ctx, pillar); err != nil {
		return nil, fmt.Errorf("error updating pillar: %w", err)
	}
	return s.pr.GetByID(ctx, pillarID)
}

func (s *pillarService) Remove(ctx context.Context, userID, pillarID int64) error {
	if _, err := s.Get(ctx, userID, pillarID); err != nil {
		return err
	}
	if err := s.pr.Remove(ctx, pillarID); err != nil {
		return fmt.Errorf("error removing pillar: %w", err)
	}
	return nil
}
