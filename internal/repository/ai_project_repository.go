package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type AIProjectRepository interface {
	Create(ctx context.Context, project *models.AIProject) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.AIProject, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.AIProject, error)
	Update(ctx context.Context, project *models.AIProject) error
	Remove(ctx context.Context, id int64) error
}

type aiProjectRepository struct {
	db *sql.DB
}

func NewAIProjectRepository(db *sql.DB) AIProjectRepository {
	return &aiProjectRepository{db: db}
}

const aiProjectColumns = `id, user_id, name, description, tone, content_type, target_audience, guidelines, created_at, updated_at`

func scanAIProject(row scanner) (*models.AIProject, error) {
	var p models.AIProject
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Tone, &p.ContentType,
		&p.TargetAudience, &p.Guidelines, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *aiProjectRepository) Create(ctx context.Context, project *models.AIProject) (int64, error) {
	query := `
		INSERT INTO ai_projects (user_id, name, description, tone, content_type, target_audience, guidelines)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, project.UserID, project.Name, project.Description, project.Tone,
		project.ContentType, project.TargetAudience, project.Guidelines).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *aiProjectRepository) GetByID(ctx context.Context, id int64) (*models.AIProject, error) {
	query := `SELECT ` + aiProjectColumns + ` FROM ai_projects WHERE id = $1`

	project, err := scanAIProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return project, nil
}

func (r *aiProjectRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.AIProject, error) {
	query := `SELECT ` + aiProjectColumns + ` FROM ai_projects WHERE user_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	projects := []*models.AIProject{}
	for rows.Next() {
		project, err := scanAIProject(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *aiProjectRepository) Update(ctx context.Context, project *models.AIProject) error {
	query := `
		UPDATE ai_projects
		SET name = $1,
			description = $2,
			tone = $3,
			content_type = $4,
			target_audience = $5,
			guidelines = $6,
			updated_at = $7
		WHERE id = $8
	`
	_, err := r.db.ExecContext(ctx, query, project.Name, project.Description, project.Tone, project.ContentType,
		project.TargetAudience, project.Guidelines, time.Now(), project.ID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *aiProjectRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM ai_projects WHERE id = $1`, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
