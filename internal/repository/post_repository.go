package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type PostFilter struct {
	Status   string
	PillarID int64
}

type PostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	ListByUserID(ctx context.Context, userID int64, filter PostFilter) ([]*models.Post, error)
	ListDueScheduled(ctx context.Context, before time.Time) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	UpdatePostStatus(ctx context.Context, status string, postID int64) error
	MarkPublished(ctx context.Context, postID int64, externalID string, publishedAt time.Time) error
	UpdateMetrics(ctx context.Context, post *models.Post) error
	Remove(ctx context.Context, id int64) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = `id, user_id, pillar_id, account_id, title, content, status, scheduled_at, published_at,
	external_id, hashtags, mentions, media, likes, comments, shares, impressions, created_at, updated_at`

func scanPost(row scanner) (*models.Post, error) {
	var post models.Post
	var pillarID, accountID sql.NullInt64
	var scheduledAt, publishedAt sql.NullTime

	err := row.Scan(&post.ID, &post.UserID, &pillarID, &accountID, &post.Title, &post.Content, &post.Status,
		&scheduledAt, &publishedAt, &post.ExternalID, &post.Hashtags, &post.Mentions, &post.Media,
		&post.Likes, &post.Comments, &post.Shares, &post.Impressions, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if pillarID.Valid {
		post.PillarID = &pillarID.Int64
	}
	if accountID.Valid {
		post.AccountID = &accountID.Int64
	}
	if scheduledAt.Valid {
		post.ScheduledAt = &scheduledAt.Time
	}
	if publishedAt.Valid {
		post.PublishedAt = &publishedAt.Time
	}
	return &post, nil
}

func scanPosts(rows *sql.Rows) ([]*models.Post, error) {
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error) {
	query := `
		INSERT INTO content_posts (user_id, pillar_id, account_id, title, content, status, scheduled_at, hashtags, mentions, media)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err := conn(r.db, tx).QueryRowContext(ctx, query, post.UserID, post.PillarID, post.AccountID, post.Title,
		post.Content, post.Status, post.ScheduledAt, post.Hashtags, post.Mentions, post.Media).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM content_posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}

	return post, nil
}

func (r *postRepository) ListByUserID(ctx context.Context, userID int64, filter PostFilter) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM content_posts WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.PillarID != 0 {
		args = append(args, filter.PillarID)
		query += fmt.Sprintf(" AND pillar_id = $%d", len(args))
	}
	query += " ORDER BY COALESCE(scheduled_at, created_at) DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	return scanPosts(rows)
}

func (r *postRepository) ListDueScheduled(ctx context.Context, before time.Time) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM content_posts WHERE status = $1 AND scheduled_at <= $2 ORDER BY scheduled_at`

	rows, err := r.db.QueryContext(ctx, query, models.PostStatusScheduled, before)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	return scanPosts(rows)
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE content_posts
		SET pillar_id = $1,
			account_id = $2,
			title = $3,
			content = $4,
			status = $5,
			scheduled_at = $6,
			hashtags = $7,
			mentions = $8,
			media = $9,
			updated_at = $10
		WHERE id = $11
	`
	_, err := r.db.ExecContext(ctx, query, post.PillarID, post.AccountID, post.Title, post.Content, post.Status,
		post.ScheduledAt, post.Hashtags, post.Mentions, post.Media, time.Now(), post.ID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) UpdatePostStatus(ctx context.Context, status string, postID int64) error {
	query := `
		UPDATE content_posts
		SET status = $1,
			updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), postID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) MarkPublished(ctx context.Context, postID int64, externalID string, publishedAt time.Time) error {
	query := `
		UPDATE content_posts
		SET status = $1,
			external_id = $2,
			published_at = $3,
			updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, models.PostStatusPublished, externalID, publishedAt, time.Now(), postID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) UpdateMetrics(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE content_posts
		SET likes = $1,
			comments = $2,
			shares = $3,
			impressions = $4,
			updated_at = $5
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query, post.Likes, post.Comments, post.Shares, post.Impressions, time.Now(), post.ID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM content_posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
