package repository

import (
	"context"
	"database/sql"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type PostingHistoryRepository interface {
	Create(ctx context.Context, ph *models.PostingHistory) (int64, error)
	ListByPostID(ctx context.Context, postID int64) ([]*models.PostingHistory, error)
}

type postingHistoryRepository struct {
	db *sql.DB
}

func NewPostingHistoryRepository(db *sql.DB) PostingHistoryRepository {
	return &postingHistoryRepository{db: db}
}

func (r *postingHistoryRepository) Create(ctx context.Context, ph *models.PostingHistory) (int64, error) {
	query := `
		INSERT INTO posting_history (user_id, post_id, account_id, external_id, error_message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var accountID sql.NullInt64
	if ph.AccountID != 0 {
		accountID = sql.NullInt64{Int64: ph.AccountID, Valid: true}
	}

	var id int64
	err := r.db.QueryRowContext(ctx, query, ph.UserID, ph.PostID, accountID, ph.ExternalID, ph.ErrorMessage).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *postingHistoryRepository) ListByPostID(ctx context.Context, postID int64) ([]*models.PostingHistory, error) {
	query := `
		SELECT id, user_id, post_id, COALESCE(account_id, 0), external_id, error_message, created_at
		FROM posting_history
		WHERE post_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	phs := []*models.PostingHistory{}
	for rows.Next() {
		var ph models.PostingHistory
		if err := rows.Scan(&ph.ID, &ph.UserID, &ph.PostID, &ph.AccountID, &ph.ExternalID, &ph.ErrorMessage, &ph.CreatedAt); err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		phs = append(phs, &ph)
	}
	return phs, rows.Err()
}
