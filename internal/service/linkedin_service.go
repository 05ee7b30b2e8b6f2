package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	config "github.com/maheshrc27/linkedin-studio/configs"
	"github.com/maheshrc27/linkedin-studio/internal/metrics"
	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
	"github.com/maheshrc27/linkedin-studio/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"
)

var linkedinScopes = []string{"openid", "profile", "email", "w_member_social"}

// PostPublisher pushes a post to LinkedIn and records the outcome.
type PostPublisher interface {
	Publish(ctx context.Context, post *models.Post) error
}

type LinkedInService interface {
	PostPublisher
	AuthURL(state string) string
	LinkedInCallback(ctx context.Context, code string, userID int64) error
	RefreshLinkedInToken(ctx context.Context, acc *models.SocialAccount) error
}

type linkedinService struct {
	cfg    config.Config
	oauth  *oauth2.Config
	client *http.Client
	p      repository.PostRepository
	sa     repository.SocialAccountRepository
	ph     repository.PostingHistoryRepository
}

func NewLinkedInService(
	cfg config.Config,
	p repository.PostRepository,
	sa repository.SocialAccountRepository,
	ph repository.PostingHistoryRepository) LinkedInService {
	return &linkedinService{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.LinkedInClientID,
			ClientSecret: cfg.LinkedInClientSecret,
			RedirectURL:  cfg.LinkedInRedirectURI,
			Scopes:       linkedinScopes,
			Endpoint:     linkedin.Endpoint,
		},
		client: &http.Client{Timeout: 30 * time.Second},
		p:      p,
		sa:     sa,
		ph:     ph,
	}
}

func (s *linkedinService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

func (s *linkedinService) LinkedInCallback(ctx context.Context, code string, userID int64) error {
	if code == "" {
		return invalid("code", "is required")
	}
	if s.oauth.ClientID == "" || s.oauth.ClientSecret == "" {
		err := errors.New("LinkedIn OAuth configuration is incomplete")
		zap.L().Info(err.Error())
		return err
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		zap.L().Info(err.Error())
		return fmt.Errorf("exchange linkedin code: %w", err)
	}

	userInfo, err := s.userInfo(ctx, token.AccessToken)
	if err != nil {
		return err
	}

	encryptedAccessToken, err := utils.Encrypt([]byte(token.AccessToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}

	encryptedRefreshToken := ""
	if token.RefreshToken != "" {
		encryptedRefreshToken, err = utils.Encrypt([]byte(token.RefreshToken), []byte(s.cfg.SecretKey))
		if err != nil {
			return err
		}
	}

	accountInfo := &models.SocialAccount{
		UserID:         userID,
		Platform:       models.PlatformLinkedIn,
		AccountID:      userInfo.Sub,
		AccountName:    userInfo.Name,
		AccountEmail:   userInfo.Email,
		ProfilePicture: userInfo.Picture,
		AccessToken:    encryptedAccessToken,
		RefreshToken:   encryptedRefreshToken,
		TokenExpiresAt: token.Expiry,
	}

	if _, err := s.sa.Upsert(ctx, nil, accountInfo); err != nil {
		return fmt.Errorf("error saving linkedin account: %w", err)
	}
	return nil
}

func (s *linkedinService) userInfo(ctx context.Context, accessToken string) (*transfer.LinkedInUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.LinkedInAPIURL+"/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, fmt.Errorf("error fetching linkedin user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, linkedinError(resp)
	}

	var info transfer.LinkedInUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		zap.L().Info(err.Error())
		return nil, fmt.Errorf("error decoding linkedin user info: %w", err)
	}
	if info.Sub == "" {
		return nil, errors.New("linkedin user info has no subject")
	}
	return &info, nil
}

// RefreshLinkedInToken renews an account's access token. Accounts without a
// refresh token are marked expired once their access token lapses.
func (s *linkedinService) RefreshLinkedInToken(ctx context.Context, acc *models.SocialAccount) error {
	if acc.RefreshToken == "" {
		if time.Now().After(acc.TokenExpiresAt) && acc.AccountStatus != models.AccountStatusExpired {
			metrics.TokenRefreshes.WithLabelValues("expired").Inc()
			return s.sa.UpdateStatus(ctx, acc.ID, models.AccountStatusExpired)
		}
		return nil
	}

	refreshToken, err := utils.Decrypt(acc.RefreshToken, []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}

	src := s.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken, Expiry: time.Now().Add(-time.Minute)})
	token, err := src.Token()
	metrics.TokenRefreshes.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		zap.L().Info("linkedin token refresh failed", zap.Int64("account_id", acc.ID), zap.Error(err))
		if time.Now().After(acc.TokenExpiresAt) {
			if uerr := s.sa.UpdateStatus(ctx, acc.ID, models.AccountStatusExpired); uerr != nil {
				return uerr
			}
		}
		return err
	}

	encryptedAccessToken, err := utils.Encrypt([]byte(token.AccessToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}
	encryptedRefreshToken := ""
	if token.RefreshToken != "" {
		encryptedRefreshToken, err = utils.Encrypt([]byte(token.RefreshToken), []byte(s.cfg.SecretKey))
		if err != nil {
			return err
		}
	}

	return s.sa.SetToken(ctx, acc.ID, acc.AccessToken, &models.SocialAccount{
		AccessToken:    encryptedAccessToken,
		RefreshToken:   encryptedRefreshToken,
		TokenExpiresAt: token.Expiry,
	})
}

// Publish shares the post on the member's feed. Every attempt leaves a
// posting history row and moves the post to published or failed.
func (s *linkedinService) Publish(ctx context.Context, post *models.Post) error {
	acc, err := s.accountFor(ctx, post)
	if err != nil {
		return err
	}
	if acc == nil {
		return s.fail(ctx, post, 0, invalid("account", "no active LinkedIn account is connected"))
	}

	accessToken, err := utils.Decrypt(acc.AccessToken, []byte(s.cfg.SecretKey))
	if err != nil {
		return s.fail(ctx, post, acc.ID, fmt.Errorf("decrypt access token: %w", err))
	}

	externalID, err := s.createUGCPost(ctx, accessToken, acc.AccountID, post)
	if err != nil {
		return s.fail(ctx, post, acc.ID, err)
	}

	if err := s.p.MarkPublished(ctx, post.ID, externalID, time.Now()); err != nil {
		return err
	}
	if _, err := s.ph.Create(ctx, &models.PostingHistory{
		UserID:     post.UserID,
		PostID:     post.ID,
		AccountID:  acc.ID,
		ExternalID: externalID,
	}); err != nil {
		zap.L().Warn("failed to record posting history", zap.Int64("post_id", post.ID), zap.Error(err))
	}

	metrics.Publishes.WithLabelValues("ok").Inc()
	zap.L().Info("post published", zap.Int64("post_id", post.ID), zap.String("external_id", externalID))
	return nil
}

func (s *linkedinService) accountFor(ctx context.Context, post *models.Post) (*models.SocialAccount, error) {
	var acc *models.SocialAccount
	var err error
	if post.AccountID != nil {
		acc, err = s.sa.GetByID(ctx, *post.AccountID)
	} else {
		acc, err = s.sa.GetFirstByUserID(ctx, post.UserID, models.PlatformLinkedIn)
	}
	if err != nil {
		return nil, err
	}
	if acc == nil || acc.UserID != post.UserID || acc.AccountStatus != models.AccountStatusActive {
		return nil, nil
	}
	return acc, nil
}

func (s *linkedinService) fail(ctx context.Context, post *models.Post, accountID int64, cause error) error {
	metrics.Publishes.WithLabelValues("error").Inc()
	zap.L().Info("post publish failed", zap.Int64("post_id", post.ID), zap.Error(cause))

	if err := s.p.UpdatePostStatus(ctx, models.PostStatusFailed, post.ID); err != nil {
		return err
	}
	if _, err := s.ph.Create(ctx, &models.PostingHistory{
		UserID:       post.UserID,
		PostID:       post.ID,
		AccountID:    accountID,
		ErrorMessage: cause.Error(),
	}); err != nil {
		zap.L().Warn("failed to record posting history", zap.Int64("post_id", post.ID), zap.Error(err))
	}
	return cause
}

// shareText appends hashtags the body does not already contain.
func shareText(post *models.Post) string {
	text := post.Content
	var missing []string
	for _, tag := range post.Hashtags {
		if !strings.Contains(strings.ToLower(text), strings.ToLower(tag)) {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		text += "\n\n" + strings.Join(missing, " ")
	}
	return text
}

func (s *linkedinService) createUGCPost(ctx context.Context, accessToken, memberID string, post *models.Post) (string, error) {
	share := transfer.UGCShareContent{
		ShareCommentary:    transfer.UGCText{Text: shareText(post)},
		ShareMediaCategory: "NONE",
	}
	// An ARTICLE share carries exactly one link.
	if len(post.Media) > 0 {
		share.ShareMediaCategory = "ARTICLE"
		share.Media = []transfer.UGCMedia{{
			Status:      "READY",
			OriginalURL: post.Media[0],
			Title:       transfer.UGCText{Text: post.Title},
		}}
		if len(post.Media) > 1 {
			zap.L().Info("linkedin share keeps only the first media url",
				zap.Int64("post_id", post.ID), zap.Int("media", len(post.Media)))
		}
	}

	payload, err := json.Marshal(transfer.UGCPost{
		Author:          "urn:li:person:" + memberID,
		LifecycleState:  "PUBLISHED",
		SpecificContent: transfer.UGCSpecificContent{ShareContent: share},
		Visibility:      transfer.UGCVisibility{MemberNetworkVisibility: "PUBLIC"},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.LinkedInAPIURL+"/v2/ugcPosts", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("linkedin request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", linkedinError(resp)
	}

	if id := resp.Header.Get("X-RestLi-Id"); id != "" {
		return id, nil
	}
	var out transfer.UGCPostResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("error decoding linkedin response: %w", err)
	}
	if out.ID == "" {
		return "", errors.New("linkedin response has no post id")
	}
	return out.ID, nil
}

func linkedinError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var le transfer.LinkedInError
	if json.Unmarshal(body, &le) == nil && le.Message != "" {
		return fmt.Errorf("linkedin returned %d: %s", resp.StatusCode, le.Message)
	}
	return fmt.Errorf("linkedin returned %d", resp.StatusCode)
}
