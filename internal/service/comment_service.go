package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type CommentService interface {
	Create(ctx context.Context, userID int64, in *transfer.CommentInput) (*models.Comment, error)
	List(ctx context.Context, userID, postID int64) ([]*models.Comment, error)
	Get(ctx context.Context, userID, commentID int64) (*models.Comment, error)
	Update(ctx context.Context, userID, commentID int64, in *transfer.CommentInput) (*models.Comment, error)
	Remove(ctx context.Context, userID, commentID int64) error
}

type commentService struct {
	cr repository.CommentRepository
	pr repository.PostRepository
}

func NewCommentService(cr repository.CommentRepository, pr repository.PostRepository) CommentService {
	return &commentService{cr: cr, pr: pr}
}

func validateComment(in *transfer.CommentInput) error {
	if in.PostID == 0 {
		return invalid("post_id", "is required")
	}
	if err := required("author_name", in.AuthorName, maxNameLength); err != nil {
		return err
	}
	if err := required("content", in.Content, maxPostLength); err != nil {
		return err
	}
	if in.Sentiment == "" {
		in.Sentiment = "neutral"
	}
	if err := oneOf("sentiment", in.Sentiment, models.Sentiments); err != nil {
		return err
	}
	if in.ReplyContent != "" {
		in.Replied = true
	}
	return nil
}

func (s *commentService) checkPost(ctx context.Context, userID, postID int64) error {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return notFound("post")
	}
	if post.UserID != userID {
		return forbidden("post")
	}
	return nil
}

func applyComment(c *models.Comment, in *transfer.CommentInput) {
	c.PostID = in.PostID
	c.AuthorName = strings.TrimSpace(in.AuthorName)
	c.AuthorHeadline = in.AuthorHeadline
	c.Content = in.Content
	c.Sentiment = in.Sentiment
	c.Replied = in.Replied
	c.ReplyContent = in.ReplyContent
}

func (s *commentService) Create(ctx context.Context, userID int64, in *transfer.CommentInput) (*models.Comment, error) {
	if err := validateComment(in); err != nil {
		return nil, err
	}
	if err := s.checkPost(ctx, userID, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{UserID: userID}
	applyComment(comment, in)
	id, err := s.cr.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}
	return s.cr.GetByID(ctx, id)
}

func (s *commentService) List(ctx context.Context, userID, postID int64) ([]*models.Comment, error) {
	if postID != 0 {
		if err := s.checkPost(ctx, userID, postID); err != nil {
			return nil, err
		}
	}
	comments, err := s.cr.ListByUserID(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Get(ctx context.Context, userID, commentID int64) (*models.Comment, error) {
	comment, err := s.cr.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("error getting comment: %w", err)
	}
	if comment == nil {
		return nil, notFound("comment")
	}
	if comment.UserID != userID {
		return nil, forbidden("comment")
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, userID, commentID int64, in *transfer.CommentInput) (*models.Comment, error) {
	comment, err := s.Get(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	if in.PostID == 0 {
		in.PostID = comment.PostID
	}
	if err := validateComment(in); err != nil {
		return nil, err
	}
	if in.PostID != comment.PostID {
		if err := s.checkPost(ctx, userID, in.PostID); err != nil {
			return nil, err
		}
	}

	applyComment(comment, in)
	if err := s.cr.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("error updating comment: %w", err)
	}
	return s.cr.GetByID(ctx, commentID)
}

func (s *commentService) Remove(ctx context.Context, userID, commentID int64) error {
	if _, err := s.Get(ctx, userID, commentID); err != nil {
		return err
	}
	if err := s.cr.Remove(ctx, commentID); err != nil {
		return fmt.Errorf("error removing comment: %w", err)
	}
	return nil
}
