package service

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeadRepo struct {
	nextID int64
	leads  map[int64]*models.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: map[int64]*models.Lead{}}
}

func (r *fakeLeadRepo) Create(ctx context.Context, lead *models.Lead) (int64, error) {
	r.nextID++
	lead.ID = r.nextID
	r.leads[lead.ID] = lead
	return lead.ID, nil
}

func (r *fakeLeadRepo) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	return r.leads[id], nil
}

func (r *fakeLeadRepo) ListByUserID(ctx context.Context, userID int64, status string) ([]*models.Lead, error) {
	var out []*models.Lead
	for _, l := range r.leads {
		if l.UserID == userID && (status == "" || l.Status == status) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) Update(ctx context.Context, lead *models.Lead) error {
	r.leads[lead.ID] = lead
	return nil
}

func (r *fakeLeadRepo) Remove(ctx context.Context, id int64) error {
	delete(r.leads, id)
	return nil
}

type fakeEventRepo struct {
	nextID int64
	events map[int64]*models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[int64]*models.Event{}}
}

func (r *fakeEventRepo) Create(ctx context.Context, event *models.Event) (int64, error) {
	r.nextID++
	event.ID = r.nextID
	r.events[event.ID] = event
	return event.ID, nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return r.events[id], nil
}

func (r *fakeEventRepo) ListByUserID(ctx context.Context, userID int64, upcomingOnly bool) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range r.events {
		if e.UserID == userID && (!upcomingOnly || e.StartsAt.After(time.Now())) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *models.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) Remove(ctx context.Context, id int64) error {
	delete(r.events, id)
	return nil
}

type fakeCommentRepo struct {
	nextID   int64
	comments map[int64]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]*models.Comment{}}
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	r.nextID++
	comment.ID = r.nextID
	r.comments[comment.ID] = comment
	return comment.ID, nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	return r.comments[id], nil
}

func (r *fakeCommentRepo) ListByUserID(ctx context.Context, userID, postID int64) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, c := range r.comments {
		if c.UserID == userID && (postID == 0 || c.PostID == postID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) Remove(ctx context.Context, id int64) error {
	delete(r.comments, id)
	return nil
}

type fakeTemplateRepo struct {
	nextID    int64
	templates map[int64]*models.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[int64]*models.Template{}}
}

func (r *fakeTemplateRepo) Create(ctx context.Context, template *models.Template) (int64, error) {
	r.nextID++
	template.ID = r.nextID
	r.templates[template.ID] = template
	return template.ID, nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	return r.templates[id], nil
}

func (r *fakeTemplateRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.Template, error) {
	var out []*models.Template
	for _, t := range r.templates {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(ctx context.Context, template *models.Template) error {
	r.templates[template.ID] = template
	return nil
}

func (r *fakeTemplateRepo) Remove(ctx context.Context, id int64) error {
	delete(r.templates, id)
	return nil
}

func TestLeadService(t *testing.T) {
	ctx := context.Background()
	s := NewLeadService(newFakeLeadRepo())

	lead, err := s.Create(ctx, 1, &transfer.LeadInput{Name: " Ada ", Email: " ada@example.com "})
	require.NoError(t, err)
	assert.Equal(t, "Ada", lead.Name)
	assert.Equal(t, "new", lead.Status)
	assert.Equal(t, "ada@example.com", lead.Email)

	for name, in := range map[string]*transfer.LeadInput{
		"missing name":   {},
		"bad status":     {Name: "x", Status: "maybe"},
		"bad email":      {Name: "x", Email: "not-an-email"},
		"bad linkedin":   {Name: "x", LinkedInURL: "https://example.com/ada"},
		"negative value": {Name: "x", EstimatedValue: -5},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Create(ctx, 1, in)
			assert.True(t, IsValidation(err), "got %v", err)
		})
	}

	_, err = s.Create(ctx, 1, &transfer.LeadInput{Name: "Grace", Status: "won"})
	require.NoError(t, err)

	won, err := s.List(ctx, 1, "won")
	require.NoError(t, err)
	require.Len(t, won, 1)
	assert.Equal(t, "Grace", won[0].Name)

	_, err = s.List(ctx, 1, "bogus")
	assert.True(t, IsValidation(err))

	_, err = s.Get(ctx, 2, lead.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.Get(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := s.Update(ctx, 1, lead.ID, &transfer.LeadInput{Name: "Ada L", Status: "qualified"})
	require.NoError(t, err)
	assert.Equal(t, "qualified", updated.Status)
	assert.Empty(t, updated.Email)

	assert.ErrorIs(t, s.Remove(ctx, 2, lead.ID), ErrForbidden)
	require.NoError(t, s.Remove(ctx, 1, lead.ID))
	_, err = s.Get(ctx, 1, lead.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService(t *testing.T) {
	ctx := context.Background()
	s := NewEventService(newFakeEventRepo())
	start := time.Now().Add(24 * time.Hour)
	before := start.Add(-time.Hour)
	after := start.Add(time.Hour)

	event, err := s.Create(ctx, 1, &transfer.EventInput{Title: "Summit", StartsAt: start, EndsAt: &after})
	require.NoError(t, err)
	assert.Equal(t, "other", event.EventType)
	assert.Equal(t, "planned", event.Status)

	for name, in := range map[string]*transfer.EventInput{
		"missing title": {StartsAt: start},
		"bad type":      {Title: "x", EventType: "party", StartsAt: start},
		"missing start": {Title: "x"},
		"ends before":   {Title: "x", StartsAt: start, EndsAt: &before},
		"bad status":    {Title: "x", StartsAt: start, Status: "maybe"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Create(ctx, 1, in)
			assert.True(t, IsValidation(err), "got %v", err)
		})
	}

	_, err = s.Create(ctx, 1, &transfer.EventInput{Title: "Past meetup", EventType: "meetup", StartsAt: time.Now().Add(-48 * time.Hour)})
	require.NoError(t, err)

	upcoming, err := s.List(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, event.ID, upcoming[0].ID)

	all, err := s.List(ctx, 1, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = s.Update(ctx, 2, event.ID, &transfer.EventInput{Title: "Mine", StartsAt: start})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCommentService(t *testing.T) {
	ctx := context.Background()
	posts := newFakePostRepo(
		&models.Post{ID: 1, UserID: 1, Content: "mine"},
		&models.Post{ID: 2, UserID: 2, Content: "theirs"},
		&models.Post{ID: 3, UserID: 1, Content: "also mine"},
	)
	s := NewCommentService(newFakeCommentRepo(), posts)

	comment, err := s.Create(ctx, 1, &transfer.CommentInput{PostID: 1, AuthorName: "Bob", Content: "Great post"})
	require.NoError(t, err)
	assert.Equal(t, "neutral", comment.Sentiment)
	assert.False(t, comment.Replied)

	_, err = s.Create(ctx, 1, &transfer.CommentInput{PostID: 2, AuthorName: "Bob", Content: "x"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.Create(ctx, 1, &transfer.CommentInput{PostID: 42, AuthorName: "Bob", Content: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Create(ctx, 1, &transfer.CommentInput{PostID: 1, AuthorName: "Bob", Content: "x", Sentiment: "angry"})
	assert.True(t, IsValidation(err))

	// a reply marks the comment replied and the post id carries over
	updated, err := s.Update(ctx, 1, comment.ID, &transfer.CommentInput{AuthorName: "Bob", Content: "Great post", Sentiment: "positive", ReplyContent: "Thanks!"})
	require.NoError(t, err)
	assert.True(t, updated.Replied)
	assert.Equal(t, int64(1), updated.PostID)

	_, err = s.Update(ctx, 1, comment.ID, &transfer.CommentInput{PostID: 2, AuthorName: "Bob", Content: "moved"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.Create(ctx, 1, &transfer.CommentInput{PostID: 3, AuthorName: "Eve", Content: "Nice"})
	require.NoError(t, err)

	onPost, err := s.List(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, onPost, 1)
	all, err := s.List(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	_, err = s.List(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, s.Remove(ctx, 2, comment.ID), ErrForbidden)
	require.NoError(t, s.Remove(ctx, 1, comment.ID))
}

func TestTemplateService(t *testing.T) {
	ctx := context.Background()
	s := NewTemplateService(newFakeTemplateRepo())

	tpl, err := s.Create(ctx, 1, &transfer.TemplateInput{
		Name: "Launch",
		Body: "Hi {{name}}, {{ company }} just shipped {{product}}. Thanks {{name}}!",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"name", "company", "product"}, tpl.Variables)

	_, err = s.Create(ctx, 1, &transfer.TemplateInput{Name: "Empty"})
	assert.True(t, IsValidation(err))

	updated, err := s.Update(ctx, 1, tpl.ID, &transfer.TemplateInput{Name: "Launch", Body: "No placeholders"})
	require.NoError(t, err)
	assert.Empty(t, updated.Variables)

	_, err = s.Get(ctx, 2, tpl.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	list, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
