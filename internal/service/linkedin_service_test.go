package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	config "github.com/maheshrc27/linkedin-studio/configs"
	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
	"github.com/maheshrc27/linkedin-studio/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

type linkedinFixture struct {
	posts    *fakePostRepo
	accounts *fakeSocialAccountRepo
	history  *fakePostingHistoryRepo
	service  LinkedInService
}

func newLinkedInFixture(t *testing.T, apiURL string) *linkedinFixture {
	t.Helper()

	token, err := utils.Encrypt([]byte("access-123"), []byte(testSecretKey))
	require.NoError(t, err)

	f := &linkedinFixture{
		posts: newFakePostRepo(&models.Post{
			ID: 10, UserID: 1, Title: "Launch", Content: "We shipped it #launch",
			Status:   models.PostStatusScheduled,
			Hashtags: models.StringList{"#launch", "#golang"},
		}),
		accounts: newFakeSocialAccountRepo(&models.SocialAccount{
			ID: 5, UserID: 1, Platform: models.PlatformLinkedIn, AccountID: "abc123",
			AccessToken: token, AccountStatus: models.AccountStatusActive,
			TokenExpiresAt: time.Now().Add(time.Hour),
		}),
		history: &fakePostingHistoryRepo{},
	}
	cfg := config.Config{SecretKey: testSecretKey, LinkedInAPIURL: apiURL}
	f.service = NewLinkedInService(cfg, f.posts, f.accounts, f.history)
	return f
}

func TestLinkedInService_Publish(t *testing.T) {
	var got transfer.UGCPost
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/ugcPosts", r.URL.Path)
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))
		assert.Equal(t, "2.0.0", r.Header.Get("X-Restli-Protocol-Version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("X-RestLi-Id", "urn:li:share:42")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	f := newLinkedInFixture(t, srv.URL)
	post, _ := f.posts.GetByID(context.Background(), 10)

	require.NoError(t, f.service.Publish(context.Background(), post))

	assert.Equal(t, "urn:li:person:abc123", got.Author)
	assert.Equal(t, "PUBLIC", got.Visibility.MemberNetworkVisibility)
	assert.Equal(t, "NONE", got.SpecificContent.ShareContent.ShareMediaCategory)
	assert.Equal(t, "We shipped it #launch\n\n#golang", got.SpecificContent.ShareContent.ShareCommentary.Text)

	stored, _ := f.posts.GetByID(context.Background(), 10)
	assert.Equal(t, models.PostStatusPublished, stored.Status)
	assert.Equal(t, "urn:li:share:42", stored.ExternalID)

	require.Len(t, f.history.entries, 1)
	assert.Equal(t, int64(5), f.history.entries[0].AccountID)
	assert.Empty(t, f.history.entries[0].ErrorMessage)
}

func TestLinkedInService_PublishReadsIDFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"urn:li:ugcPost:7"}`))
	}))
	defer srv.Close()

	f := newLinkedInFixture(t, srv.URL)
	post, _ := f.posts.GetByID(context.Background(), 10)
	post.Media = models.StringList{"https://cdn.example.com/a.png"}

	require.NoError(t, f.service.Publish(context.Background(), post))
	assert.Equal(t, "urn:li:ugcPost:7", f.posts.published[10])
}

func TestLinkedInService_PublishSharesFirstMediaURL(t *testing.T) {
	var got transfer.UGCPost
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("X-RestLi-Id", "urn:li:share:43")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	f := newLinkedInFixture(t, srv.URL)
	post, _ := f.posts.GetByID(context.Background(), 10)
	post.Media = models.StringList{
		"https://cdn.example.com/a.png",
		"https://cdn.example.com/b.png",
		"https://cdn.example.com/c.mp4",
	}

	require.NoError(t, f.service.Publish(context.Background(), post))

	share := got.SpecificContent.ShareContent
	assert.Equal(t, "ARTICLE", share.ShareMediaCategory)
	require.Len(t, share.Media, 1)
	assert.Equal(t, "https://cdn.example.com/a.png", share.Media[0].OriginalURL)
	assert.Equal(t, "Launch", share.Media[0].Title.Text)
	assert.Equal(t, "urn:li:share:43", f.posts.published[10])
}

func TestLinkedInService_PublishFailureMarksPostFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":401,"message":"Invalid access token"}`))
	}))
	defer srv.Close()

	f := newLinkedInFixture(t, srv.URL)
	post, _ := f.posts.GetByID(context.Background(), 10)

	err := f.service.Publish(context.Background(), post)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid access token")

	stored, _ := f.posts.GetByID(context.Background(), 10)
	assert.Equal(t, models.PostStatusFailed, stored.Status)
	require.Len(t, f.history.entries, 1)
	assert.Contains(t, f.history.entries[0].ErrorMessage, "401")
}

func TestLinkedInService_PublishWithoutAccount(t *testing.T) {
	f := newLinkedInFixture(t, "http://127.0.0.1:1")
	require.NoError(t, f.accounts.UpdateStatus(context.Background(), 5, models.AccountStatusExpired))
	post, _ := f.posts.GetByID(context.Background(), 10)

	err := f.service.Publish(context.Background(), post)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	stored, _ := f.posts.GetByID(context.Background(), 10)
	assert.Equal(t, models.PostStatusFailed, stored.Status)
	require.Len(t, f.history.entries, 1)
	assert.Zero(t, f.history.entries[0].AccountID)
}

func TestLinkedInService_RefreshWithoutRefreshToken(t *testing.T) {
	f := newLinkedInFixture(t, "http://127.0.0.1:1")
	acc, _ := f.accounts.GetByID(context.Background(), 5)

	require.NoError(t, f.service.RefreshLinkedInToken(context.Background(), acc))
	assert.Equal(t, models.AccountStatusActive, f.accounts.accounts[5].AccountStatus)

	acc.TokenExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, f.service.RefreshLinkedInToken(context.Background(), acc))
	assert.Equal(t, models.AccountStatusExpired, f.accounts.accounts[5].AccountStatus)
}

func TestShareText(t *testing.T) {
	post := &models.Post{Content: "Hello #Go", Hashtags: models.StringList{"#go", "#backend"}}
	assert.Equal(t, "Hello #Go\n\n#backend", shareText(post))

	post = &models.Post{Content: "No tags"}
	assert.Equal(t, "No tags", shareText(post))
}
