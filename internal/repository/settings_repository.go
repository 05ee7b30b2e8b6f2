package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Settings, bool, error)
	Upsert(ctx context.Context, s *models.Settings) error
}

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByUserID(ctx context.Context, userID int64) (*models.Settings, bool, error) {
	query := `SELECT id, user_id, posting_time, timezone, default_tone, created_at, updated_at FROM settings WHERE user_id = $1`

	var s models.Settings
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.ID, &s.UserID, &s.PostingTime, &s.Timezone,
		&s.DefaultTone, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		zap.L().Info(err.Error())
		return nil, false, err
	}
	return &s, true, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, s *models.Settings) error {
	query := `
		INSERT INTO settings (user_id, posting_time, timezone, default_tone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET posting_time = EXCLUDED.posting_time,
			timezone = EXCLUDED.timezone,
			default_tone = EXCLUDED.default_tone,
			updated_at = $5
	`
	_, err := r.db.ExecContext(ctx, query, s.UserID, s.PostingTime, s.Timezone, s.DefaultTone, time.Now())
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
