package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByUserID(ctx context.Context, userID, postID int64) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Remove(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentColumns = `id, user_id, post_id, author_name, author_headline, content, sentiment, replied, reply_content, created_at, updated_at`

func scanComment(row scanner) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.UserID, &c.PostID, &c.AuthorName, &c.AuthorHeadline, &c.Content, &c.Sentiment,
		&c.Replied, &c.ReplyContent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	query := `
		INSERT INTO comments (user_id, post_id, author_name, author_headline, content, sentiment, replied, reply_content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, comment.UserID, comment.PostID, comment.AuthorName, comment.AuthorHeadline,
		comment.Content, comment.Sentiment, comment.Replied, comment.ReplyContent).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	comment, err := scanComment(r.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return comment, nil
}

// ListByUserID returns the user's comments, narrowed to one post when postID is non-zero.
func (r *commentRepository) ListByUserID(ctx context.Context, userID, postID int64) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE user_id = $1`
	args := []interface{}{userID}
	if postID != 0 {
		query += ` AND post_id = $2`
		args = append(args, postID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments
		SET author_name = $1,
			author_headline = $2,
			content = $3,
			sentiment = $4,
			replied = $5,
			reply_content = $6,
			updated_at = $7
		WHERE id = $8
	`
	_, err := r.db.ExecContext(ctx, query, comment.AuthorName, comment.AuthorHeadline, comment.Content,
		comment.Sentiment, comment.Replied, comment.ReplyContent, time.Now(), comment.ID)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *commentRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
