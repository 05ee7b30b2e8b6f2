package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Lead, error)
	ListByUserID(ctx context.Context, userID int64, status string) ([]*models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) error
	Remove(ctx context.Context, id int64) error
}

type leadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) LeadRepository {
	return &leadRepository{db: db}
}

const leadColumns = `id, user_id, name, company, job_title, email, linkedin_url, status, source, notes, estimated_value, created_at, updated_at`

func scanLead(row scanner) (*models.Lead, error) {
	var l models.Lead
	err := row.Scan(&l.ID, &l.UserID, &l.Name, &l.Company, &l.JobTitle, &l.Email, &l.LinkedInURL, &l.Status,
		&l.Source, &l.Notes, &l.EstimatedValue, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) (int64, error) {
	query := `
		INSERT INTO leads (user_id, name, company, job_title, email, linkedin_url, status, source, notes, estimated_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, lead.UserID, lead.Name, lead.Company, lead.JobTitle, lead.Email,
		lead.LinkedInURL, lead.Status, lead.Source, lead.Notes, lead.EstimatedValue).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *leadRepository) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := scanLead(r.db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return lead, nil
}

func (r *leadRepository) ListByUserID(ctx context.Context, userID int64, status string) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE user_id = $1`
	args := []interface{}{userID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY updated_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	leads := []*models.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *leadRepository) Update(ctx context.Context, lead *models.Lead) error {
	query := `
		UPDATE leads
		SET name = $1,
			company = $2,
			job_title = $3,
			email = $4,
			linkedin_url = $5,
			status = $6,
			source = $7,
			notes = $8,
			estimated_value = $9,
			updated_at = $10
		WHERE id = $11
	`
	_, err := r.db.ExecContext(ctx, query, lead.Name, lead.Company, lead.JobTitle, lead.Email, lead.LinkedInURL,
		lead.Status, lead.Source, lead.Notes, lead.EstimatedValue, time.Now(), lead.ID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *leadRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
