package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type PillarRepository interface {
	Create(ctx context.Context, pillar *models.Pillar) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Pillar, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Pillar, error)
	Update(ctx context.Context, pillar *models.Pillar) error
	Remove(ctx context.Context, id int64) error
}

type pillarRepository struct {
	db *sql.DB
}

func NewPillarRepository(db *sql.DB) PillarRepository {
	return &pillarRepository{db: db}
}

func (r *pillarRepository) Create(ctx context.Context, pillar *models.Pillar) (int64, error) {
	query := `
		INSERT INTO content_pillars (user_id, name, description, color, target_percentage)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, pillar.UserID, pillar.Name, pillar.Description, pillar.Color, pillar.TargetPercentage).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *pillarRepository) GetByID(ctx context.Context, id int64) (*models.Pillar, error) {
	query := `
		SELECT p.id, p.user_id, p.name, p.description, p.color, p.target_percentage,
			(SELECT COUNT(*) FROM content_posts cp WHERE cp.pillar_id = p.id),
			p.created_at, p.updated_at
		FROM content_pillars p
		WHERE p.id = $1
	`

	var p models.Pillar
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Color,
		&p.TargetPercentage, &p.PostCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return &p, nil
}

func (r *pillarRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Pillar, error) {
	query := `
		SELECT p.id, p.user_id, p.name, p.description, p.color, p.target_percentage,
			COUNT(cp.id), p.created_at, p.updated_at
		FROM content_pillars p
		LEFT JOIN content_posts cp ON cp.pillar_id = p.id
		WHERE p.user_id = $1
		GROUP BY p.id
		ORDER BY p.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	pillars := []*models.Pillar{}
	for rows.Next() {
		var p models.Pillar
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Color, &p.TargetPercentage,
			&p.PostCount, &p.CreatedAt, &p.UpdatedAt); err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		pillars = append(pillars, &p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	return pillars, nil
}

func (r *pillarRepository) Update(ctx context.Context, pillar *models.Pillar) error {
	query := `
		UPDATE content_pillars
		SET name = $1,
			description = $2,
			color = $3,
			target_percentage = $4,
			updated_at = $5
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query, pillar.Name, pillar.Description, pillar.Color, pillar.TargetPercentage, time.Now(), pillar.ID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *pillarRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM content_pillars WHERE id = $1`, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
