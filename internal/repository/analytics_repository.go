package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

type EngagementTotals struct {
	Posts       int64 `json:"posts"`
	Likes       int64 `json:"likes"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
	Impressions int64 `json:"impressions"`
}

type PillarCount struct {
	PillarID         int64  `json:"pillar_id"`
	Name             string `json:"name"`
	Color            string `json:"color"`
	TargetPercentage int    `json:"target_percentage"`
	Posts            int64  `json:"posts"`
}

type AnalyticsRepository interface {
	EngagementTotals(ctx context.Context, userID int64) (*EngagementTotals, error)
	StatusCounts(ctx context.Context, userID int64) (map[string]int64, error)
	PillarCounts(ctx context.Context, userID int64) ([]*PillarCount, error)
	TopPosts(ctx context.Context, userID int64, limit int) ([]*TopPost, error)
}

type TopPost struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Shares      int64  `json:"shares"`
	Impressions int64  `json:"impressions"`
}

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) EngagementTotals(ctx context.Context, userID int64) (*EngagementTotals, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(likes), 0), COALESCE(SUM(comments), 0),
			COALESCE(SUM(shares), 0), COALESCE(SUM(impressions), 0)
		FROM content_posts
		WHERE user_id = $1 AND status = 'published'
	`

	var t EngagementTotals
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&t.Posts, &t.Likes, &t.Comments, &t.Shares, &t.Impressions)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	return &t, nil
}

func (r *analyticsRepository) StatusCounts(ctx context.Context, userID int64) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM content_posts WHERE user_id = $1 GROUP BY status`, userID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) PillarCounts(ctx context.Context, userID int64) ([]*PillarCount, error) {
	query := `
		SELECT p.id, p.name, p.color, p.target_percentage, COUNT(cp.id)
		FROM content_pillars p
		LEFT JOIN content_posts cp ON cp.pillar_id = p.id AND cp.status <> 'archived'
		WHERE p.user_id = $1
		GROUP BY p.id
		ORDER BY p.name
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	counts := []*PillarCount{}
	for rows.Next() {
		var pc PillarCount
		if err := rows.Scan(&pc.PillarID, &pc.Name, &pc.Color, &pc.TargetPercentage, &pc.Posts); err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		counts = append(counts, &pc)
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) TopPosts(ctx context.Context, userID int64, limit int) ([]*TopPost, error) {
	query := `
		SELECT id, title, likes, comments, shares, impressions
		FROM content_posts
		WHERE user_id = $1 AND status = 'published'
		ORDER BY (likes + comments * 2 + shares * 3) DESC, impressions DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	posts := []*TopPost{}
	for rows.Next() {
		var p TopPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Likes, &p.Comments, &p.Shares, &p.Impressions); err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}
