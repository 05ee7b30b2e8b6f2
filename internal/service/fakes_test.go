package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
)

var errBoom = errors.New("boom")

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	f.calls++
	return fn(nil)
}

type fakePillarRepo struct {
	mu      sync.Mutex
	nextID  int64
	pillars map[int64]*models.Pillar
}

func newFakePillarRepo(pillars ...*models.Pillar) *fakePillarRepo {
	r := &fakePillarRepo{pillars: map[int64]*models.Pillar{}}
	for _, p := range pillars {
		r.pillars[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakePillarRepo) Create(ctx context.Context, pillar *models.Pillar) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cp := *pillar
	cp.ID = r.nextID
	r.pillars[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakePillarRepo) GetByID(ctx context.Context, id int64) (*models.Pillar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pillars[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePillarRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.Pillar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Pillar
	for _, p := range r.pillars {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePillarRepo) Update(ctx context.Context, pillar *models.Pillar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *pillar
	r.pillars[pillar.ID] = &cp
	return nil
}

func (r *fakePillarRepo) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pillars, id)
	return nil
}

type fakePostRepo struct {
	mu        sync.Mutex
	nextID    int64
	posts     map[int64]*models.Post
	published map[int64]string
	createErr error
}

func newFakePostRepo(posts ...*models.Post) *fakePostRepo {
	r := &fakePostRepo{posts: map[int64]*models.Post{}, published: map[int64]string{}}
	for _, p := range posts {
		r.posts[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakePostRepo) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	cp := *post
	cp.ID = r.nextID
	r.posts[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) ListByUserID(ctx context.Context, userID int64, filter repository.PostFilter) ([]*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Post
	for _, p := range r.posts {
		if p.UserID != userID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.PillarID != 0 && (p.PillarID == nil || *p.PillarID != filter.PillarID) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePostRepo) ListDueScheduled(ctx context.Context, before time.Time) ([]*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Post
	for _, p := range r.posts {
		if p.Status == models.PostStatusScheduled && p.ScheduledAt != nil && p.ScheduledAt.Before(before) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) UpdatePostStatus(ctx context.Context, status string, postID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[postID]; ok {
		p.Status = status
	}
	return nil
}

func (r *fakePostRepo) MarkPublished(ctx context.Context, postID int64, externalID string, publishedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[postID]; ok {
		p.Status = models.PostStatusPublished
		p.ExternalID = externalID
		p.PublishedAt = &publishedAt
	}
	r.published[postID] = externalID
	return nil
}

func (r *fakePostRepo) UpdateMetrics(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[post.ID]; ok {
		p.Likes, p.Comments, p.Shares, p.Impressions = post.Likes, post.Comments, post.Shares, post.Impressions
	}
	return nil
}

func (r *fakePostRepo) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

type fakeSocialAccountRepo struct {
	mu       sync.Mutex
	accounts map[int64]*models.SocialAccount
	tokens   map[int64]string
}

func newFakeSocialAccountRepo(accounts ...*models.SocialAccount) *fakeSocialAccountRepo {
	r := &fakeSocialAccountRepo{accounts: map[int64]*models.SocialAccount{}, tokens: map[int64]string{}}
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *fakeSocialAccountRepo) Upsert(ctx context.Context, tx *sql.Tx, sa *models.SocialAccount) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := int64(len(r.accounts) + 1)
	cp := *sa
	cp.ID = id
	r.accounts[id] = &cp
	return id, nil
}

func (r *fakeSocialAccountRepo) GetByID(ctx context.Context, id int64) (*models.SocialAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeSocialAccountRepo) GetFirstByUserID(ctx context.Context, userID int64, platform string) (*models.SocialAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.UserID == userID && a.Platform == platform {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSocialAccountRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.SocialAccount
	for _, a := range r.accounts {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSocialAccountRepo) ListByTimeInterval(ctx context.Context, initialTime, finalTime time.Time) ([]*models.SocialAccount, error) {
	return nil, nil
}

func (r *fakeSocialAccountRepo) CheckByUserID(ctx context.Context, accountID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[accountID]
	return ok && a.UserID == userID, nil
}

func (r *fakeSocialAccountRepo) SetToken(ctx context.Context, id int64, oldAccessToken string, sa *models.SocialAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok || a.AccessToken != oldAccessToken {
		return repository.ErrTokenConflict
	}
	a.AccessToken = sa.AccessToken
	a.RefreshToken = sa.RefreshToken
	a.TokenExpiresAt = sa.TokenExpiresAt
	return nil
}

func (r *fakeSocialAccountRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[id]; ok {
		a.AccountStatus = status
	}
	return nil
}

func (r *fakeSocialAccountRepo) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
	return nil
}

type fakePostingHistoryRepo struct {
	mu      sync.Mutex
	entries []*models.PostingHistory
}

func (r *fakePostingHistoryRepo) Create(ctx context.Context, ph *models.PostingHistory) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ph
	r.entries = append(r.entries, &cp)
	return int64(len(r.entries)), nil
}

func (r *fakePostingHistoryRepo) ListByPostID(ctx context.Context, postID int64) ([]*models.PostingHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.PostingHistory
	for _, e := range r.entries {
		if e.PostID == postID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeProjectRepo struct {
	nextID   int64
	projects map[int64]*models.AIProject
}

func newFakeProjectRepo(projects ...*models.AIProject) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: map[int64]*models.AIProject{}}
	for _, p := range projects {
		r.projects[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *models.AIProject) (int64, error) {
	r.nextID++
	cp := *project
	cp.ID = r.nextID
	r.projects[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id int64) (*models.AIProject, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.AIProject, error) {
	var out []*models.AIProject
	for _, p := range r.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *models.AIProject) error {
	cp := *project
	r.projects[project.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Remove(ctx context.Context, id int64) error {
	delete(r.projects, id)
	return nil
}

type fakeSessionRepo struct {
	nextID   int64
	sessions map[int64]*models.AISession
	locked   []int64
	lockErr  error
}

func newFakeSessionRepo(sessions ...*models.AISession) *fakeSessionRepo {
	r := &fakeSessionRepo{sessions: map[int64]*models.AISession{}}
	for _, s := range sessions {
		r.sessions[s.ID] = s
		if s.ID > r.nextID {
			r.nextID = s.ID
		}
	}
	return r
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *models.AISession) (int64, error) {
	r.nextID++
	cp := *session
	cp.ID = r.nextID
	r.sessions[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id int64) (*models.AISession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) ListByProjectID(ctx context.Context, projectID int64) ([]*models.AISession, error) {
	var out []*models.AISession
	for _, s := range r.sessions {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) UpdateStatus(ctx context.Context, tx *sql.Tx, id int64, status string) error {
	if s, ok := r.sessions[id]; ok {
		s.Status = status
	}
	return nil
}

func (r *fakeSessionRepo) Lock(ctx context.Context, tx *sql.Tx, id int64) error {
	if r.lockErr != nil {
		return r.lockErr
	}
	r.locked = append(r.locked, id)
	return nil
}

func (r *fakeSessionRepo) Remove(ctx context.Context, id int64) error {
	delete(r.sessions, id)
	return nil
}

type fakeVersionRepo struct {
	nextID    int64
	versions  map[int64]*models.AIVersion
	createErr error
}

func newFakeVersionRepo(versions ...*models.AIVersion) *fakeVersionRepo {
	r := &fakeVersionRepo{versions: map[int64]*models.AIVersion{}}
	for _, v := range versions {
		r.versions[v.ID] = v
		if v.ID > r.nextID {
			r.nextID = v.ID
		}
	}
	return r
}

func (r *fakeVersionRepo) Create(ctx context.Context, tx *sql.Tx, version *models.AIVersion) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	cp := *version
	cp.ID = r.nextID
	r.versions[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakeVersionRepo) GetByID(ctx context.Context, id int64) (*models.AIVersion, error) {
	v, ok := r.versions[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVersionRepo) ListBySessionID(ctx context.Context, sessionID int64) ([]*models.AIVersion, error) {
	var out []*models.AIVersion
	for _, v := range r.versions {
		if v.SessionID == sessionID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVersionRepo) NextPosition(ctx context.Context, tx *sql.Tx, sessionID int64) (int, error) {
	next := 1
	for _, v := range r.versions {
		if v.SessionID == sessionID && v.Position >= next {
			next = v.Position + 1
		}
	}
	return next, nil
}

func (r *fakeVersionRepo) UpdateContent(ctx context.Context, id int64, content string) error {
	if v, ok := r.versions[id]; ok {
		v.Content = content
	}
	return nil
}

func (r *fakeVersionRepo) ClearSelected(ctx context.Context, tx *sql.Tx, sessionID int64) error {
	for _, v := range r.versions {
		if v.SessionID == sessionID {
			v.Selected = false
		}
	}
	return nil
}

func (r *fakeVersionRepo) SetSelected(ctx context.Context, tx *sql.Tx, id int64) error {
	if v, ok := r.versions[id]; ok {
		v.Selected = true
	}
	return nil
}

type fakeAssetRepo struct {
	nextID int64
	assets map[int64]*models.AIAsset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: map[int64]*models.AIAsset{}}
}

func (r *fakeAssetRepo) Create(ctx context.Context, tx *sql.Tx, asset *models.AIAsset) (int64, error) {
	r.nextID++
	cp := *asset
	cp.ID = r.nextID
	r.assets[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakeAssetRepo) GetByID(ctx context.Context, id int64) (*models.AIAsset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAssetRepo) ListBySessionID(ctx context.Context, sessionID int64) ([]*models.AIAsset, error) {
	var out []*models.AIAsset
	for _, a := range r.assets {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssetRepo) Remove(ctx context.Context, id int64) error {
	delete(r.assets, id)
	return nil
}

type fakeGenerator struct {
	output string
	err    error
	prompt string
	calls  int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.prompt = prompt
	return g.output, g.err
}

type scheduledCall struct {
	postID int64
	at     time.Time
}

type fakeScheduler struct {
	mu    sync.Mutex
	calls []scheduledCall
	err   error
}

func (s *fakeScheduler) SchedulePublish(ctx context.Context, postID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, scheduledCall{postID: postID, at: at})
	return s.err
}

type fakePublisher struct {
	published []int64
	err       error
}

func (p *fakePublisher) Publish(ctx context.Context, post *models.Post) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, post.ID)
	return nil
}
