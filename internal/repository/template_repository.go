package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *models.Template) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Template, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Template, error)
	Update(ctx context.Context, template *models.Template) error
	Remove(ctx context.Context, id int64) error
}

type templateRepository struct {
	db *sql.DB
}

func NewTemplateRepository(db *sql.DB) TemplateRepository {
	return &templateRepository{db: db}
}

const templateColumns = `id, user_id, name, category, body, variables, created_at, updated_at`

func scanTemplate(row scanner) (*models.Template, error) {
	var t models.Template
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Category, &t.Body, &t.Variables, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepository) Create(ctx context.Context, template *models.Template) (int64, error) {
	query := `
		INSERT INTO templates (user_id, name, category, body, variables)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, template.UserID, template.Name, template.Category, template.Body,
		template.Variables).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *templateRepository) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	template, err := scanTemplate(r.db.QueryRowContext(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return template, nil
}

func (r *templateRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Template, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+templateColumns+` FROM templates WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	templates := []*models.Template{}
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}

func (r *templateRepository) Update(ctx context.Context, template *models.Template) error {
	query := `
		UPDATE templates
		SET name = $1,
			category = $2,
			body = $3,
			variables = $4,
			updated_at = $5
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query, template.Name, template.Category, template.Body, template.Variables,
		time.Now(), template.ID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *templateRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
