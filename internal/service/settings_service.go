package service

import (
	"context"
	"fmt"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type SettingsService interface {
	GetSettingsInfo(ctx context.Context, userID int64) (*models.Settings, error)
	UpdateSettings(ctx context.Context, userID int64, in *transfer.SettingsInput) (*models.Settings, error)
}

type settingsService struct {
	sr repository.SettingsRepository
}

func NewSettingsService(sr repository.SettingsRepository) SettingsService {
	return &settingsService{
		sr: sr,
	}
}

func defaultSettings(userID int64) *models.Settings {
	return &models.Settings{
		UserID:      userID,
		PostingTime: "09:00",
		Timezone:    "UTC",
		DefaultTone: "professional",
	}
}

// GetSettingsInfo falls back to defaults for users who never saved settings.
func (s *settingsService) GetSettingsInfo(ctx context.Context, userID int64) (*models.Settings, error) {
	settings, isExist, err := s.sr.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		return defaultSettings(userID), nil
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID int64, in *transfer.SettingsInput) (*models.Settings, error) {
	current, err := s.GetSettingsInfo(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.PostingTime != "" {
		if !postingTimeRe.MatchString(in.PostingTime) {
			return nil, invalid("posting_time", "must be HH:MM")
		}
		current.PostingTime = in.PostingTime
	}
	if in.Timezone != "" {
		if err := validTimezone(in.Timezone); err != nil {
			return nil, err
		}
		current.Timezone = in.Timezone
	}
	if in.DefaultTone != "" {
		if err := oneOf("default_tone", in.DefaultTone, models.Tones); err != nil {
			return nil, err
		}
		current.DefaultTone = in.DefaultTone
	}

	if err := s.sr.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("error saving settings: %w", err)
	}
	return s.GetSettingsInfo(ctx, userID)
}
