package repository

import (
	"context"
	"database/sql"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type AIAssetRepository interface {
	Create(ctx context.Context, tx *sql.Tx, asset *models.AIAsset) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.AIAsset, error)
	ListBySessionID(ctx context.Context, sessionID int64) ([]*models.AIAsset, error)
	Remove(ctx context.Context, id int64) error
}

type aiAssetRepository struct {
	db *sql.DB
}

func NewAIAssetRepository(db *sql.DB) AIAssetRepository {
	return &aiAssetRepository{db: db}
}

const aiAssetColumns = `id, session_id, user_id, asset_type, style, prompt, url, width, height, created_at`

func scanAIAsset(row scanner) (*models.AIAsset, error) {
	var a models.AIAsset
	err := row.Scan(&a.ID, &a.SessionID, &a.UserID, &a.AssetType, &a.Style, &a.Prompt, &a.URL, &a.Width, &a.Height, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *aiAssetRepository) Create(ctx context.Context, tx *sql.Tx, asset *models.AIAsset) (int64, error) {
	query := `
		INSERT INTO ai_assets (session_id, user_id, asset_type, style, prompt, url, width, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := conn(r.db, tx).QueryRowContext(ctx, query, asset.SessionID, asset.UserID, asset.AssetType, asset.Style,
		asset.Prompt, asset.URL, asset.Width, asset.Height).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *aiAssetRepository) GetByID(ctx context.Context, id int64) (*models.AIAsset, error) {
	query := `SELECT ` + aiAssetColumns + ` FROM ai_assets WHERE id = $1`

	asset, err := scanAIAsset(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return asset, nil
}

func (r *aiAssetRepository) ListBySessionID(ctx context.Context, sessionID int64) ([]*models.AIAsset, error) {
	query := `SELECT ` + aiAssetColumns + ` FROM ai_assets WHERE session_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	assets := []*models.AIAsset{}
	for rows.Next() {
		asset, err := scanAIAsset(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func (r *aiAssetRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM ai_assets WHERE id = $1`, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
