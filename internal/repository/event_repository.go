package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	ListByUserID(ctx context.Context, userID int64, upcomingOnly bool) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Remove(ctx context.Context, id int64) error
}

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, user_id, title, description, event_type, location, url, status, starts_at, ends_at, created_at, updated_at`

func scanEvent(row scanner) (*models.Event, error) {
	var e models.Event
	var endsAt sql.NullTime
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.EventType, &e.Location, &e.URL, &e.Status,
		&e.StartsAt, &endsAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if endsAt.Valid {
		e.EndsAt = &endsAt.Time
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := `
		INSERT INTO events (user_id, title, description, event_type, location, url, status, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, event.UserID, event.Title, event.Description, event.EventType,
		event.Location, event.URL, event.Status, event.StartsAt, event.EndsAt).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := scanEvent(r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) ListByUserID(ctx context.Context, userID int64, upcomingOnly bool) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE user_id = $1`
	args := []interface{}{userID}
	if upcomingOnly {
		query += ` AND starts_at >= $2`
		args = append(args, time.Now())
	}
	query += ` ORDER BY starts_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1,
			description = $2,
			event_type = $3,
			location = $4,
			url = $5,
			status = $6,
			starts_at = $7,
			ends_at = $8,
			updated_at = $9
		WHERE id = $10
	`
	_, err := r.db.ExecContext(ctx, query, event.Title, event.Description, event.EventType, event.Location,
		event.URL, event.Status, event.StartsAt, event.EndsAt, time.Now(), event.ID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *eventRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
