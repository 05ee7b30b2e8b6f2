package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type AISessionRepository interface {
	Create(ctx context.Context, session *models.AISession) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.AISession, error)
	ListByProjectID(ctx context.Context, projectID int64) ([]*models.AISession, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id int64, status string) error
	Lock(ctx context.Context, tx *sql.Tx, id int64) error
	Remove(ctx context.Context, id int64) error
}

type aiSessionRepository struct {
	db *sql.DB
}

func NewAISessionRepository(db *sql.DB) AISessionRepository {
	return &aiSessionRepository{db: db}
}

const aiSessionColumns = `id, project_id, user_id, post_idea, content_type, status, created_at, updated_at`

func scanAISession(row scanner) (*models.AISession, error) {
	var s models.AISession
	err := row.Scan(&s.ID, &s.ProjectID, &s.UserID, &s.PostIdea, &s.ContentType, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *aiSessionRepository) Create(ctx context.Context, session *models.AISession) (int64, error) {
	query := `
		INSERT INTO ai_post_sessions (project_id, user_id, post_idea, content_type, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, session.ProjectID, session.UserID, session.PostIdea,
		session.ContentType, session.Status).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *aiSessionRepository) GetByID(ctx context.Context, id int64) (*models.AISession, error) {
	query := `SELECT ` + aiSessionColumns + ` FROM ai_post_sessions WHERE id = $1`

	session, err := scanAISession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return session, nil
}

func (r *aiSessionRepository) ListByProjectID(ctx context.Context, projectID int64) ([]*models.AISession, error) {
	query := `SELECT ` + aiSessionColumns + ` FROM ai_post_sessions WHERE project_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	sessions := []*models.AISession{}
	for rows.Next() {
		session, err := scanAISession(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (r *aiSessionRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id int64, status string) error {
	query := `UPDATE ai_post_sessions SET status = $1, updated_at = $2 WHERE id = $3`
	_, err := conn(r.db, tx).ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

// Lock takes a row lock on the session until tx ends. Writers to a session's
// versions serialize on it. Returns sql.ErrNoRows if the session is gone.
func (r *aiSessionRepository) Lock(ctx context.Context, tx *sql.Tx, id int64) error {
	var locked int64
	err := conn(r.db, tx).QueryRowContext(ctx, `SELECT id FROM ai_post_sessions WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil && err != sql.ErrNoRows {
		zap.L().Info(err.Error())
	}
	return err
}

func (r *aiSessionRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM ai_post_sessions WHERE id = $1`, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

type AIVersionRepository interface {
	Create(ctx context.Context, tx *sql.Tx, version *models.AIVersion) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.AIVersion, error)
	ListBySessionID(ctx context.Context, sessionID int64) ([]*models.AIVersion, error)
	NextPosition(ctx context.Context, tx *sql.Tx, sessionID int64) (int, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	ClearSelected(ctx context.Context, tx *sql.Tx, sessionID int64) error
	SetSelected(ctx context.Context, tx *sql.Tx, id int64) error
}

type aiVersionRepository struct {
	db *sql.DB
}

func NewAIVersionRepository(db *sql.DB) AIVersionRepository {
	return &aiVersionRepository{db: db}
}

func (r *aiVersionRepository) Create(ctx context.Context, tx *sql.Tx, version *models.AIVersion) (int64, error) {
	query := `
		INSERT INTO ai_content_versions (session_id, user_id, content, position, selected)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := conn(r.db, tx).QueryRowContext(ctx, query, version.SessionID, version.UserID, version.Content,
		version.Position, version.Selected).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *aiVersionRepository) GetByID(ctx context.Context, id int64) (*models.AIVersion, error) {
	query := `
		SELECT id, session_id, user_id, content, position, selected, created_at, updated_at
		FROM ai_content_versions
		WHERE id = $1
	`

	var v models.AIVersion
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.SessionID, &v.UserID, &v.Content, &v.Position,
		&v.Selected, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return &v, nil
}

func (r *aiVersionRepository) ListBySessionID(ctx context.Context, sessionID int64) ([]*models.AIVersion, error) {
	query := `
		SELECT id, session_id, user_id, content, position, selected, created_at, updated_at
		FROM ai_content_versions
		WHERE session_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	versions := []*models.AIVersion{}
	for rows.Next() {
		var v models.AIVersion
		if err := rows.Scan(&v.ID, &v.SessionID, &v.UserID, &v.Content, &v.Position, &v.Selected,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		versions = append(versions, &v)
	}
	return versions, rows.Err()
}

func (r *aiVersionRepository) NextPosition(ctx context.Context, tx *sql.Tx, sessionID int64) (int, error) {
	query := `SELECT COALESCE(MAX(position) + 1, 0) FROM ai_content_versions WHERE session_id = $1`

	var position int
	if err := conn(r.db, tx).QueryRowContext(ctx, query, sessionID).Scan(&position); err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return position, nil
}

func (r *aiVersionRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	query := `UPDATE ai_content_versions SET content = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, content, time.Now(), id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *aiVersionRepository) ClearSelected(ctx context.Context, tx *sql.Tx, sessionID int64) error {
	query := `UPDATE ai_content_versions SET selected = FALSE, updated_at = $1 WHERE session_id = $2 AND selected`
	_, err := conn(r.db, tx).ExecContext(ctx, query, time.Now(), sessionID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *aiVersionRepository) SetSelected(ctx context.Context, tx *sql.Tx, id int64) error {
	query := `UPDATE ai_content_versions SET selected = TRUE, updated_at = $1 WHERE id = $2`
	_, err := conn(r.db, tx).ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
