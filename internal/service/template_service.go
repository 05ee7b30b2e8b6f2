package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type TemplateService interface {
	Create(ctx context.Context, userID int64, in *transfer.TemplateInput) (*models.Template, error)
	List(ctx context.Context, userID int64) ([]*models.Template, error)
	Get(ctx context.Context, userID, templateID int64) (*models.Template, error)
	Update(ctx context.Context, userID, templateID int64, in *transfer.TemplateInput) (*models.Template, error)
	Remove(ctx context.Context, userID, templateID int64) error
}

type templateService struct {
	tr repository.TemplateRepository
}

func NewTemplateService(tr repository.TemplateRepository) TemplateService {
	return &templateService{tr: tr}
}

func validateTemplate(in *transfer.TemplateInput) error {
	if err := required("name", in.Name, maxNameLength); err != nil {
		return err
	}
	return required("body", in.Body, maxPostLength)
}

func applyTemplate(t *models.Template, in *transfer.TemplateInput) {
	t.Name = strings.TrimSpace(in.Name)
	t.Category = in.Category
	t.Body = in.Body
	t.Variables = extractVariables(in.Body)
}

func (s *templateService) Create(ctx context.Context, userID int64, in *transfer.TemplateInput) (*models.Template, error) {
	if err := validateTemplate(in); err != nil {
		return nil, err
	}
	template := &models.Template{UserID: userID}
	applyTemplate(template, in)

	id, err := s.tr.Create(ctx, template)
	if err != nil {
		return nil, fmt.Errorf("error creating template: %w", err)
	}
	return s.tr.GetByID(ctx, id)
}

func (s *templateService) List(ctx context.Context, userID int64) ([]*models.Template, error) {
	templates, err := s.tr.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing templates: %w", err)
	}
	return templates, nil
}

func (s *templateService) Get(ctx context.Context, userID, templateID int64) (*models.Template, error) {
	template, err := s.tr.GetByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("error getting template: %w", err)
	}
	if template == nil {
		return nil, notFound("template")
	}
	if template.UserID != userID {
		return nil, forbidden("template")
	}
	return template, nil
}

func (s *templateService) Update(ctx context.Context, userID, templateID int64, in *transfer.TemplateInput) (*models.Template, error) {
	if err := validateTemplate(in); err != nil {
		return nil, err
	}
	template, err := s.Get(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	applyTemplate(template, in)

	if err := s.tr.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("error updating template: %w", err)
	}
	return s.tr.GetByID(ctx, templateID)
}

func (s *templateService) Remove(ctx context.Context, userID, templateID int64) error {
	if _, err := s.Get(ctx, userID, templateID); err != nil {
		return err
	}
	if err := s.tr.Remove(ctx, templateID); err != nil {
		return fmt.Errorf("error removing template: %w", err)
	}
	return nil
}
