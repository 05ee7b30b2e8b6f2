package service

import (
	"context"
	"errors"
	"fmt"

	config "github.com/maheshrc27/linkedin-studio/configs"
	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type AuthService interface {
	LoginURL(state string) string
	LoginCallback(ctx context.Context, code string) (int64, error)
}

type authService struct {
	oauth *oauth2.Config
	u     repository.UserRepository
}

func NewAuthService(cfg config.Config, u repository.UserRepository) AuthService {
	return &authService{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{oauth2api.UserinfoEmailScope, oauth2api.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		},
		u: u,
	}
}

func (s *authService) LoginURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

func (s *authService) LoginCallback(ctx context.Context, code string) (int64, error) {
	if code == "" {
		return 0, invalid("code", "is required")
	}

	if s.oauth.ClientID == "" || s.oauth.ClientSecret == "" || s.oauth.RedirectURL == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		zap.L().Info(err.Error())
		return 0, err
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, fmt.Errorf("%w: code exchange failed", ErrUnauthorized)
	}

	svc, err := oauth2api.NewService(ctx, option.WithHTTPClient(s.oauth.Client(ctx, token)))
	if err != nil {
		return 0, err
	}
	userInfo, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		zap.L().Info(err.Error())
		return 0, fmt.Errorf("error fetching google user info: %w", err)
	}
	if userInfo.Email == "" {
		return 0, fmt.Errorf("%w: google account has no email", ErrUnauthorized)
	}

	return s.upsertUser(ctx, &models.User{
		GoogleID:       userInfo.Id,
		Email:          userInfo.Email,
		Name:           userInfo.Name,
		ProfilePicture: userInfo.Picture,
	})
}

func (s *authService) upsertUser(ctx context.Context, info *models.User) (int64, error) {
	user, isExist, err := s.u.GetByEmail(ctx, info.Email)
	if err != nil {
		return 0, err
	}

	if !isExist {
		id, err := s.u.Create(ctx, nil, info)
		if err != nil {
			return 0, fmt.Errorf("error creating user: %w", err)
		}
		zap.L().Info("user created", zap.Int64("user_id", id))
		return id, nil
	}

	if user.GoogleID != info.GoogleID || user.Name != info.Name || user.ProfilePicture != info.ProfilePicture {
		info.ID = user.ID
		if err := s.u.Update(ctx, info); err != nil {
			return 0, fmt.Errorf("error updating user: %w", err)
		}
	}
	return user.ID, nil
}
