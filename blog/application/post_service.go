package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adaptivekitchen/studio-site/blog/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultSaveRetries = 3

// PostService presents callers with a single deduplicated view over the
// dynamic store and the compiled-in static posts, and implements
// create/update/delete against the dynamic subset only.
type PostService struct {
	store          domain.PostStore
	static         []domain.Post
	fallbackStatic bool
	saveRetries    int

	now   func() time.Time
	newID func() string
}

type Option func(*PostService)

// WithStrictReads makes ListAll propagate store failures instead of degrading
// to the static posts.
func WithStrictReads() Option {
	return func(s *PostService) {
		s.fallbackStatic = false
	}
}

// WithStaticPosts overrides the compiled-in static post list.
func WithStaticPosts(posts []domain.Post) Option {
	return func(s *PostService) {
		s.static = posts
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *PostService) {
		s.now = now
	}
}

// WithIDGenerator overrides post ID generation. Used in tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *PostService) {
		s.newID = newID
	}
}

func NewPostService(store domain.PostStore, opts ...Option) *PostService {
	s := &PostService{
		store:          store,
		static:         domain.StaticPosts(),
		fallbackStatic: true,
		saveRetries:    defaultSaveRetries,
		now:            time.Now,
		newID:          newPostID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newPostID builds an ID that is unique within the dynamic collection:
// creation timestamp plus a random suffix.
func newPostID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("post_%d_%s", time.Now().UnixMilli(), suffix)
}

// ListAll returns the dynamic posts in storage order followed by any static
// posts whose titles are not already taken. When the store is unreachable the
// listing degrades to static-only unless strict reads are configured.
func (s *PostService) ListAll(ctx context.Context) ([]domain.Post, error) {
	dynamic, _, err := s.store.LoadAll(ctx)
	if err != nil {
		if !s.fallbackStatic {
			return nil, err
		}
		log.Warn().Err(err).Msg("Store unavailable, serving static posts only")
		dynamic = nil
	}
	return mergePosts(dynamic, s.static), nil
}

// mergePosts concatenates dynamic ahead of static and keeps the first post
// seen for each exact title. Titles are the sole dedup key; a dynamic post
// always shadows a static post sharing its title.
func mergePosts(dynamic, static []domain.Post) []domain.Post {
	merged := make([]domain.Post, 0, len(dynamic)+len(static))
	seen := make(map[string]struct{}, len(dynamic)+len(static))

	keep := func(posts []domain.Post) {
		for _, p := range posts {
			if _, ok := seen[p.Title]; ok {
				continue
			}
			seen[p.Title] = struct{}{}
			merged = append(merged, p)
		}
	}
	keep(dynamic)
	keep(static)
	return merged
}

// GetBySlug returns the first post in listing order with the given slug.
// Slug uniqueness is not enforced anywhere, so "first match" is the contract.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	posts, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			p := posts[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Get looks a post up by ID or slug, whichever matches first in listing
// order. The public post page addresses posts either way.
func (s *PostService) Get(ctx context.Context, idOrSlug string) (*domain.Post, error) {
	posts, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == idOrSlug || posts[i].Slug == idOrSlug {
			p := posts[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateInput carries the fields accepted by Create. Content may be HTML or,
// when ContentFormat is "markdown", markdown rendered to HTML before saving.
type CreateInput struct {
	Title         string
	Excerpt       string
	Content       string
	ContentFormat string
	Category      string
	ReadTime      string
	Author        string
	Tags          []string
	Image         string
	ContentImages []string
	Date          string
	Slug          string
}

// Create validates the input, assigns an ID and timestamps, derives the slug
// from the title when none is supplied, and prepends the post to the dynamic
// collection. No store write happens when validation fails.
func (s *PostService) Create(ctx context.Context, in CreateInput) (*domain.Post, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	content, err := renderContent(in.Content, in.ContentFormat)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	post := domain.Post{
		ID:            s.newID(),
		Title:         in.Title,
		Excerpt:       in.Excerpt,
		Content:       content,
		Category:      in.Category,
		ReadTime:      in.ReadTime,
		Author:        in.Author,
		Tags:          in.Tags,
		Image:         in.Image,
		ContentImages: in.ContentImages,
		Date:          in.Date,
		Slug:          in.Slug,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.Date == "" {
		post.Date = now.Format("Jan 2, 2006")
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.ContentImages == nil {
		post.ContentImages = []string{}
	}

	err = s.mutate(ctx, func(posts []domain.Post) ([]domain.Post, error) {
		return append([]domain.Post{post}, posts...), nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Title         *string
	Excerpt       *string
	Content       *string
	ContentFormat string
	Category      *string
	ReadTime      *string
	Author        *string
	Tags          *[]string
	Image         *string
	ContentImages *[]string
	Date          *string
	Slug          *string
}

// Update merges the supplied fields over the stored post and bumps updatedAt.
// Only the dynamic collection is searched; updating a static post's ID or a
// title that exists only statically fails with ErrNotFound.
func (s *PostService) Update(ctx context.Context, id string, in UpdateInput) (*domain.Post, error) {
	if !validFormat(in.ContentFormat) {
		return nil, &domain.ValidationError{Fields: []string{"contentFormat"}}
	}

	var updated domain.Post
	err := s.mutate(ctx, func(posts []domain.Post) ([]domain.Post, error) {
		idx := -1
		for i := range posts {
			if posts[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domain.ErrNotFound
		}

		p := posts[idx]
		if err := applyUpdate(&p, in); err != nil {
			return nil, err
		}
		p.UpdatedAt = s.now().UTC()

		posts[idx] = p
		updated = p
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func applyUpdate(p *domain.Post, in UpdateInput) error {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Excerpt != nil {
		p.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		content, err := renderContent(*in.Content, in.ContentFormat)
		if err != nil {
			return err
		}
		p.Content = content
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.ReadTime != nil {
		p.ReadTime = *in.ReadTime
	}
	if in.Author != nil {
		p.Author = *in.Author
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.ContentImages != nil {
		p.ContentImages = *in.ContentImages
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	return nil
}

// Delete removes the post with the given ID from the dynamic collection.
// Deleting an ID that does not exist is an error, not a silent success.
func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, func(posts []domain.Post) ([]domain.Post, error) {
		remaining := make([]domain.Post, 0, len(posts))
		for _, p := range posts {
			if p.ID != id {
				remaining = append(remaining, p)
			}
		}
		if len(remaining) == len(posts) {
			return nil, domain.ErrNotFound
		}
		return remaining, nil
	})
}

// mutate runs one read-modify-write cycle against the store, retrying a
// bounded number of times when a concurrent writer advanced the revision
// first. Errors from fn abort without retrying.
func (s *PostService) mutate(ctx context.Context, fn func([]domain.Post) ([]domain.Post, error)) error {
	var lastErr error
	for attempt := 0; attempt <= s.saveRetries; attempt++ {
		posts, rev, err := s.store.LoadAll(ctx)
		if err != nil {
			return err
		}

		next, err := fn(posts)
		if err != nil {
			return err
		}

		err = s.store.SaveAll(ctx, next, rev)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
		lastErr = err
		log.Debug().Int("attempt", attempt+1).Msg("Retrying save after revision conflict")
	}
	return lastErr
}

// validateCreate checks every required field and reports all offenders at
// once. The slug is not required; it is derived from the title when absent.
func validateCreate(in CreateInput) error {
	var fields []string

	required := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"excerpt", in.Excerpt},
		{"content", in.Content},
		{"category", in.Category},
		{"readTime", in.ReadTime},
		{"image", in.Image},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, f.name)
		}
	}
	if !validFormat(in.ContentFormat) {
		fields = append(fields, "contentFormat")
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
