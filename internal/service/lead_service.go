package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type LeadService interface {
	Create(ctx context.Context, userID int64, in *transfer.LeadInput) (*models.Lead, error)
	List(ctx context.Context, userID int64, status string) ([]*models.Lead, error)
	Get(ctx context.Context, userID, leadID int64) (*models.Lead, error)
	Update(ctx context.Context, userID, leadID int64, in *transfer.LeadInput) (*models.Lead, error)
	Remove(ctx context.Context, userID, leadID int64) error
}

type leadService struct {
	lr repository.LeadRepository
}

func NewLeadService(lr repository.LeadRepository) LeadService {
	return &leadService{lr: lr}
}

func validateLead(in *transfer.LeadInput) error {
	if err := required("name", in.Name, maxNameLength); err != nil {
		return err
	}
	if in.Status == "" {
		in.Status = models.LeadStatuses[0]
	}
	if err := oneOf("status", in.Status, models.LeadStatuses); err != nil {
		return err
	}
	in.Email = strings.TrimSpace(in.Email)
	if err := validEmail("email", in.Email); err != nil {
		return err
	}
	if in.LinkedInURL != "" && !strings.Contains(in.LinkedInURL, "linkedin.com/") {
		return invalid("linkedin_url", "must be a linkedin.com URL")
	}
	if in.EstimatedValue < 0 {
		return invalid("estimated_value", "must not be negative")
	}
	return nil
}

func applyLead(l *models.Lead, in *transfer.LeadInput) {
	l.Name = strings.TrimSpace(in.Name)
	l.Company = in.Company
	l.JobTitle = in.JobTitle
	l.Email = in.Email
	l.LinkedInURL = in.LinkedInURL
	l.Status = in.Status
	l.Source = in.Source
	l.Notes = in.Notes
	l.EstimatedValue = in.EstimatedValue
}

func (s *leadService) Create(ctx context.Context, userID int64, in *transfer.LeadInput) (*models.Lead, error) {
	if err := validateLead(in); err != nil {
		return nil, err
	}
	lead := &models.Lead{UserID: userID}
	applyLead(lead, in)

	id, err := s.lr.Create(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("error creating lead: %w", err)
	}
	return s.lr.GetByID(ctx, id)
}

func (s *leadService) List(ctx context.Context, userID int64, status string) ([]*models.Lead, error) {
	if status != "" {
		if err := oneOf("status", status, models.LeadStatuses); err != nil {
			return nil, err
		}
	}
	leads, err := s.lr.ListByUserID(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("error listing leads: %w", err)
	}
	return leads, nil
}

func (s *leadService) Get(ctx context.Context, userID, leadID int64) (*models.Lead, error) {
	lead, err := s.lr.GetByID(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("error getting lead: %w", err)
	}
	if lead == nil {
		return nil, notFound("lead")
	}
	if lead.UserID != userID {
		return nil, forbidden("lead")
	}
	return lead, nil
}

func (s *leadService) Update(ctx context.Context, userID, leadID int64, in *transfer.LeadInput) (*models.Lead, error) {
	if err := validateLead(in); err != nil {
		return nil, err
	}
	lead, err := s.Get(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}
	applyLead(lead, in)

	if err := s.lr.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("error updating lead: %w", err)
	}
	return s.lr.GetByID(ctx, leadID)
}

func (s *leadService) Remove(ctx context.Context, userID, leadID int64) error {
	if _, err := s.Get(ctx, userID, leadID); err != nil {
		return err
	}
	if err := s.lr.Remove(ctx, leadID); err != nil {
		return fmt.Errorf("error removing lead: %w", err)
	}
	return nil
}
