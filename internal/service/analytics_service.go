package service

import (
	"context"
	"fmt"
	"math"

	"github.com/maheshrc27/linkedin-studio/internal/repository"
)

type AnalyticsOverview struct {
	TotalPosts      int64                 `json:"total_posts"`
	StatusCounts    map[string]int64      `json:"status_counts"`
	PublishedPosts  int64                 `json:"published_posts"`
	Likes           int64                 `json:"likes"`
	Comments        int64                 `json:"comments"`
	Shares          int64                 `json:"shares"`
	Impressions     int64                 `json:"impressions"`
	EngagementRate  float64               `json:"engagement_rate"`
	AvgLikesPerPost float64               `json:"avg_likes_per_post"`
	TopPosts        []*repository.TopPost `json:"top_posts"`
}

type PillarAllocation struct {
	PillarID         int64   `json:"pillar_id"`
	Name             string  `json:"name"`
	Color            string  `json:"color"`
	Posts            int64   `json:"posts"`
	TargetPercentage int     `json:"target_percentage"`
	ActualPercentage float64 `json:"actual_percentage"`
	Gap              float64 `json:"gap"`
}

type AnalyticsService interface {
	Overview(ctx context.Context, userID int64) (*AnalyticsOverview, error)
	PillarAllocation(ctx context.Context, userID int64) ([]*PillarAllocation, error)
}

type analyticsService struct {
	ar repository.AnalyticsRepository
}

func NewAnalyticsService(ar repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{ar: ar}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *analyticsService) Overview(ctx context.Context, userID int64) (*AnalyticsOverview, error) {
	counts, err := s.ar.StatusCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting posts: %w", err)
	}
	totals, err := s.ar.EngagementTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error summing engagement: %w", err)
	}
	top, err := s.ar.TopPosts(ctx, userID, 5)
	if err != nil {
		return nil, fmt.Errorf("error listing top posts: %w", err)
	}

	o := &AnalyticsOverview{
		StatusCounts:   counts,
		PublishedPosts: totals.Posts,
		Likes:          totals.Likes,
		Comments:       totals.Comments,
		Shares:         totals.Shares,
		Impressions:    totals.Impressions,
		TopPosts:       top,
	}
	for _, n := range counts {
		o.TotalPosts += n
	}
	if totals.Impressions > 0 {
		o.EngagementRate = round2(float64(totals.Likes+totals.Comments+totals.Shares) / float64(totals.Impressions) * 100)
	}
	if totals.Posts > 0 {
		o.AvgLikesPerPost = round2(float64(totals.Likes) / float64(totals.Posts))
	}
	return o, nil
}

// PillarAllocation compares each pillar's share of non-archived posts with its target.
func (s *analyticsService) PillarAllocation(ctx context.Context, userID int64) ([]*PillarAllocation, error) {
	counts, err := s.ar.PillarCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting pillar posts: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c.Posts
	}

	out := make([]*PillarAllocation, 0, len(counts))
	for _, c := range counts {
		a := &PillarAllocation{
			PillarID:         c.PillarID,
			Name:             c.Name,
			Color:            c.Color,
			Posts:            c.Posts,
			TargetPercentage: c.TargetPercentage,
		}
		if total > 0 {
			a.ActualPercentage = round2(float64(c.Posts) / float64(total) * 100)
		}
		a.Gap = round2(a.ActualPercentage - float64(c.TargetPercentage))
		out = append(out, a)
	}
	return out, nil
}
