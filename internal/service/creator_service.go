package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/maheshrc27/linkedin-studio/internal/metrics"
	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
	"go.uber.org/zap"
)

const (
	defaultVariations = 3
	maxVariations     = 5
	maxAssets         = 4
	defaultAssetStyle = "modern"
)

var ErrNoVariations = errors.New("model returned no usable variations")

type assetSize struct{ width, height int }

var assetSizes = map[string]assetSize{
	"image":       {1200, 627},
	"carousel":    {1080, 1080},
	"banner":      {1584, 396},
	"infographic": {800, 2000},
}

type CreatorService interface {
	CreateProject(ctx context.Context, userID int64, in *transfer.ProjectInput) (*models.AIProject, error)
	ListProjects(ctx context.Context, userID int64) ([]*models.AIProject, error)
	GetProject(ctx context.Context, userID, projectID int64) (*models.AIProject, error)
	UpdateProject(ctx context.Context, userID, projectID int64, in *transfer.ProjectInput) (*models.AIProject, error)
	RemoveProject(ctx context.Context, userID, projectID int64) error

	CreateSession(ctx context.Context, userID, projectID int64, in *transfer.SessionInput) (*models.AISession, error)
	ListSessions(ctx context.Context, userID, projectID int64) ([]*models.AISession, error)
	GetSession(ctx context.Context, userID, sessionID int64) (*models.AISession, error)
	RemoveSession(ctx context.Context, userID, sessionID int64) error
	Generate(ctx context.Context, userID, sessionID int64, in *transfer.GenerateInput) ([]*models.AIVersion, error)

	UpdateVersion(ctx context.Context, userID, versionID int64, in *transfer.VersionInput) (*models.AIVersion, error)
	SelectVersion(ctx context.Context, userID, versionID int64) (*models.AIVersion, error)
	ConvertVersion(ctx context.Context, userID, versionID int64, in *transfer.ConvertInput) (*models.Post, error)

	GenerateAssets(ctx context.Context, userID, sessionID int64, in *transfer.AssetInput) ([]*models.AIAsset, error)
	RemoveAsset(ctx context.Context, userID, assetID int64) error
}

type creatorService struct {
	tx        repository.Transactor
	projects  repository.AIProjectRepository
	sessions  repository.AISessionRepository
	versions  repository.AIVersionRepository
	assets    repository.AIAssetRepository
	posts     repository.PostRepository
	pillars   repository.PillarRepository
	generator TextGenerator
	timeout   time.Duration
}

func NewCreatorService(
	tx repository.Transactor,
	projects repository.AIProjectRepository,
	sessions repository.AISessionRepository,
	versions repository.AIVersionRepository,
	assets repository.AIAssetRepository,
	posts repository.PostRepository,
	pillars repository.PillarRepository,
	generator TextGenerator,
	timeout time.Duration) CreatorService {
	return &creatorService{
		tx:        tx,
		projects:  projects,
		sessions:  sessions,
		versions:  versions,
		assets:    assets,
		posts:     posts,
		pillars:   pillars,
		generator: generator,
		timeout:   timeout,
	}
}

func validateProject(in *transfer.ProjectInput) error {
	if err := required("name", in.Name, maxNameLength); err != nil {
		return err
	}
	if in.Tone == "" {
		in.Tone = models.Tones[0]
	}
	if err := oneOf("tone", in.Tone, models.Tones); err != nil {
		return err
	}
	if in.ContentType == "" {
		in.ContentType = models.ContentTypes[0]
	}
	if err := oneOf("content_type", in.ContentType, models.ContentTypes); err != nil {
		return err
	}
	if utf8.RuneCountInString(in.Guidelines) > maxPromptLength {
		return invalid("guidelines", "is too long")
	}
	return nil
}

func (s *creatorService) CreateProject(ctx context.Context, userID int64, in *transfer.ProjectInput) (*models.AIProject, error) {
	if err := validateProject(in); err != nil {
		return nil, err
	}

	project := &models.AIProject{
		UserID:         userID,
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		Tone:           in.Tone,
		ContentType:    in.ContentType,
		TargetAudience: in.TargetAudience,
		Guidelines:     in.Guidelines,
	}
	id, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}
	return s.projects.GetByID(ctx, id)
}

func (s *creatorService) ListProjects(ctx context.Context, userID int64) ([]*models.AIProject, error) {
	projects, err := s.projects.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	return projects, nil
}

func (s *creatorService) GetProject(ctx context.Context, userID, projectID int64) (*models.AIProject, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	if project == nil {
		return nil, notFound("project")
	}
	if project.UserID != userID {
		return nil, forbidden("project")
	}
	return project, nil
}

func (s *creatorService) UpdateProject(ctx context.Context, userID, projectID int64, in *transfer.ProjectInput) (*models.AIProject, error) {
	if err := validateProject(in); err != nil {
		return nil, err
	}
	project, err := s.GetProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	project.Name = strings.TrimSpace(in.Name)
	project.Description = in.Description
	project.Tone = in.Tone
	project.ContentType = in.ContentType
	project.TargetAudience = in.TargetAudience
	project.Guidelines = in.Guidelines

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("error updating project: %w", err)
	}
	return s.projects.GetByID(ctx, projectID)
}

func (s *creatorService) RemoveProject(ctx context.Context, userID, projectID int64) error {
	if _, err := s.GetProject(ctx, userID, projectID); err != nil {
		return err
	}
	if err := s.projects.Remove(ctx, projectID); err != nil {
		return fmt.Errorf("error removing project: %w", err)
	}
	return nil
}

func (s *creatorService) CreateSession(ctx context.Context, userID, projectID int64, in *transfer.SessionInput) (*models.AISession, error) {
	if err := required("post_idea", in.PostIdea, maxPostIdeaChars); err != nil {
		return nil, err
	}
	project, err := s.GetProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if in.ContentType == "" {
		in.ContentType = project.ContentType
	}
	if err := oneOf("content_type", in.ContentType, models.ContentTypes); err != nil {
		return nil, err
	}

	session := &models.AISession{
		ProjectID:   projectID,
		UserID:      userID,
		PostIdea:    strings.TrimSpace(in.PostIdea),
		ContentType: in.ContentType,
		Status:      models.SessionStatusDraft,
	}
	id, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return s.sessions.GetByID(ctx, id)
}

func (s *creatorService) ListSessions(ctx context.Context, userID, projectID int64) ([]*models.AISession, error) {
	if _, err := s.GetProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	return sessions, nil
}

func (s *creatorService) ownedSession(ctx context.Context, userID, sessionID int64) (*models.AISession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error getting session: %w", err)
	}
	if session == nil {
		return nil, notFound("session")
	}
	if session.UserID != userID {
		return nil, forbidden("session")
	}
	return session, nil
}

func (s *creatorService) GetSession(ctx context.Context, userID, sessionID int64) (*models.AISession, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Versions, err = s.versions.ListBySessionID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("error listing versions: %w", err)
	}
	if session.Assets, err = s.assets.ListBySessionID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("error listing assets: %w", err)
	}
	return session, nil
}

func (s *creatorService) RemoveSession(ctx context.Context, userID, sessionID int64) error {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	if err := s.sessions.Remove(ctx, sessionID); err != nil {
		return fmt.Errorf("error removing session: %w", err)
	}
	return nil
}

func buildPrompt(project *models.AIProject, session *models.AISession, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d distinct LinkedIn post variations.\n\n", count)
	fmt.Fprintf(&b, "Post idea: %s\n", session.PostIdea)
	fmt.Fprintf(&b, "Tone: %s\n", project.Tone)
	fmt.Fprintf(&b, "Content type: %s\n", session.ContentType)
	if project.TargetAudience != "" {
		fmt.Fprintf(&b, "Target audience: %s\n", project.TargetAudience)
	}
	if project.Description != "" {
		fmt.Fprintf(&b, "Project context: %s\n", project.Description)
	}
	if project.Guidelines != "" {
		fmt.Fprintf(&b, "Guidelines: %s\n", project.Guidelines)
	}
	fmt.Fprintf(&b, "\nEach post must stay under %d characters. ", maxPostLength)
	fmt.Fprintf(&b, "Separate the variations with a line containing only %s and nothing else.", VariationDelimiter)
	return b.String()
}

// Generate runs one model call for the session and stores each variation
// as an unselected version.
func (s *creatorService) Generate(ctx context.Context, userID, sessionID int64, in *transfer.GenerateInput) ([]*models.AIVersion, error) {
	count := in.Count
	if count == 0 {
		count = defaultVariations
	}
	if count < 1 || count > maxVariations {
		return nil, invalid("count", fmt.Sprintf("must be between 1 and %d", maxVariations))
	}

	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	project, err := s.GetProject(ctx, userID, session.ProjectID)
	if err != nil {
		return nil, err
	}

	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	output, err := s.generator.Generate(genCtx, buildPrompt(project, session, count))
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	variations := SplitVariations(output, count)
	if err == nil && len(variations) == 0 {
		err = ErrNoVariations
	}
	metrics.Generations.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		zap.L().Info("generation failed", zap.Int64("session_id", sessionID), zap.Error(err))
		if uerr := s.sessions.UpdateStatus(ctx, nil, sessionID, models.SessionStatusFailed); uerr != nil {
			zap.L().Warn("failed to mark session failed", zap.Error(uerr))
		}
		return nil, fmt.Errorf("error generating content: %w", err)
	}

	versions := make([]*models.AIVersion, 0, len(variations))
	err = s.tx.WithTx(ctx, func(tx *sql.Tx) error {
		if err := s.lockSession(ctx, tx, sessionID); err != nil {
			return err
		}
		position, err := s.versions.NextPosition(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		for i, content := range variations {
			v := &models.AIVersion{
				SessionID: sessionID,
				UserID:    userID,
				Content:   content,
				Position:  position + i,
			}
			if v.ID, err = s.versions.Create(ctx, tx, v); err != nil {
				return err
			}
			versions = append(versions, v)
		}
		return s.sessions.UpdateStatus(ctx, tx, sessionID, models.SessionStatusGenerated)
	})
	if err != nil {
		return nil, fmt.Errorf("error saving versions: %w", err)
	}
	return versions, nil
}

func (s *creatorService) lockSession(ctx context.Context, tx *sql.Tx, sessionID int64) error {
	err := s.sessions.Lock(ctx, tx, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound("session")
	}
	return err
}

func (s *creatorService) ownedVersion(ctx context.Context, userID, versionID int64) (*models.AIVersion, error) {
	version, err := s.versions.GetByID(ctx, versionID)
	if err != nil {
		return nil, fmt.Errorf("error getting version: %w", err)
	}
	if version == nil {
		return nil, notFound("version")
	}
	if version.UserID != userID {
		return nil, forbidden("version")
	}
	return version, nil
}

func (s *creatorService) UpdateVersion(ctx context.Context, userID, versionID int64, in *transfer.VersionInput) (*models.AIVersion, error) {
	if err := required("content", in.Content, maxPostLength); err != nil {
		return nil, err
	}
	if _, err := s.ownedVersion(ctx, userID, versionID); err != nil {
		return nil, err
	}
	if err := s.versions.UpdateContent(ctx, versionID, in.Content); err != nil {
		return nil, fmt.Errorf("error updating version: %w", err)
	}
	return s.versions.GetByID(ctx, versionID)
}

// SelectVersion makes versionID the only selected version of its session.
func (s *creatorService) SelectVersion(ctx context.Context, userID, versionID int64) (*models.AIVersion, error) {
	version, err := s.ownedVersion(ctx, userID, versionID)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *sql.Tx) error {
		if err := s.lockSession(ctx, tx, version.SessionID); err != nil {
			return err
		}
		if err := s.versions.ClearSelected(ctx, tx, version.SessionID); err != nil {
			return err
		}
		return s.versions.SetSelected(ctx, tx, versionID)
	})
	if err != nil {
		return nil, fmt.Errorf("error selecting version: %w", err)
	}
	return s.versions.GetByID(ctx, versionID)
}

func (s *creatorService) ConvertVersion(ctx context.Context, userID, versionID int64, in *transfer.ConvertInput) (*models.Post, error) {
	version, err := s.ownedVersion(ctx, userID, versionID)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(version.Content) > maxPostLength {
		return nil, invalid("content", "is too long for a LinkedIn post")
	}

	if in.PillarID != nil {
		pillar, err := s.pillars.GetByID(ctx, *in.PillarID)
		if err != nil {
			return nil, err
		}
		if pillar == nil {
			return nil, notFound("pillar")
		}
		if pillar.UserID != userID {
			return nil, forbidden("pillar")
		}
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = titleFrom(version.Content)
	}

	post := &models.Post{
		UserID:   userID,
		PillarID: in.PillarID,
		Title:    title,
		Content:  version.Content,
		Status:   models.PostStatusDraft,
		Hashtags: models.StringList{},
		Mentions: models.StringList{},
		Media:    models.StringList{},
	}
	id, err := s.posts.Create(ctx, nil, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return s.posts.GetByID(ctx, id)
}

// titleFrom derives a short title from the first line of content.
func titleFrom(content string) string {
	line := strings.TrimSpace(strings.SplitN(strings.TrimSpace(content), "\n", 2)[0])
	if utf8.RuneCountInString(line) <= 80 {
		return line
	}
	return strings.TrimSpace(string([]rune(line)[:77])) + "..."
}

func mockAssetURL(assetType, style string, index int) (string, assetSize) {
	size := assetSizes[assetType]
	label := fmt.Sprintf("%s %s %d", style, assetType, index+1)
	return fmt.Sprintf("https://placehold.co/%dx%d/0A66C2/FFFFFF/png?text=%s",
		size.width, size.height, url.QueryEscape(label)), size
}

// GenerateAssets stores placeholder images for the session. No image model
// is called.
func (s *creatorService) GenerateAssets(ctx context.Context, userID, sessionID int64, in *transfer.AssetInput) ([]*models.AIAsset, error) {
	if in.AssetType == "" {
		in.AssetType = models.AssetTypes[0]
	}
	if err := oneOf("asset_type", in.AssetType, models.AssetTypes); err != nil {
		return nil, err
	}
	if err := required("prompt", in.Prompt, maxPromptLength); err != nil {
		return nil, err
	}
	if in.Count == 0 {
		in.Count = 1
	}
	if in.Count < 1 || in.Count > maxAssets {
		return nil, invalid("count", fmt.Sprintf("must be between 1 and %d", maxAssets))
	}
	style := strings.TrimSpace(in.Style)
	if style == "" {
		style = defaultAssetStyle
	}

	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	assets := make([]*models.AIAsset, 0, in.Count)
	err := s.tx.WithTx(ctx, func(tx *sql.Tx) error {
		for i := 0; i < in.Count; i++ {
			u, size := mockAssetURL(in.AssetType, style, i)
			a := &models.AIAsset{
				SessionID: sessionID,
				UserID:    userID,
				AssetType: in.AssetType,
				Style:     style,
				Prompt:    in.Prompt,
				URL:       u,
				Width:     size.width,
				Height:    size.height,
			}
			id, err := s.assets.Create(ctx, tx, a)
			if err != nil {
				return err
			}
			a.ID = id
			assets = append(assets, a)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error saving assets: %w", err)
	}
	return assets, nil
}

func (s *creatorService) RemoveAsset(ctx context.Context, userID, assetID int64) error {
	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return fmt.Errorf("error getting asset: %w", err)
	}
	if asset == nil {
		return notFound("asset")
	}
	if asset.UserID != userID {
		return forbidden("asset")
	}
	if err := s.assets.Remove(ctx, assetID); err != nil {
		return fmt.Errorf("error removing asset: %w", err)
	}
	return nil
}
