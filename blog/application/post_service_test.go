package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/adaptivekitchen/studio-site/blog/domain"
	"github.com/adaptivekitchen/studio-site/blog/persistence"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "Simple title",
			title:    "My First Post",
			expected: "my-first-post",
		},
		{
			name:     "Punctuation and digits",
			title:    "Hello, World! 2025",
			expected: "hello-world-2025",
		},
		{
			name:     "Leading and trailing separators",
			title:    "---Spaced Out---",
			expected: "spaced-out",
		},
		{
			name:     "Consecutive non-alphanumerics collapse",
			title:    "A  --  B",
			expected: "a-b",
		},
		{
			name:     "Already a slug",
			title:    "already-a-slug",
			expected: "already-a-slug",
		},
		{
			name:     "Only punctuation",
			title:    "!!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.title)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, result, tt.expected)
			}
		})
	}
}

func validInput() CreateInput {
	return CreateInput{
		Title:    "A Fresh Take",
		Excerpt:  "Something short",
		Content:  "<p>Body</p>",
		Category: "Industry Insights",
		ReadTime: "4 min read",
		Image:    "https://example.com/cover.jpg",
	}
}

func newTestService(store domain.PostStore, static []domain.Post, opts ...Option) *PostService {
	base := []Option{WithStaticPosts(static)}
	return NewPostService(store, append(base, opts...)...)
}

func staticPost(title, slug string) domain.Post {
	return domain.Post{
		ID:      "static-" + slug,
		Title:   title,
		Excerpt: "static excerpt",
		Slug:    slug,
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateInput)
		missing []string
	}{
		{
			name:    "All fields missing",
			mutate:  func(in *CreateInput) { *in = CreateInput{} },
			missing: []string{"title", "excerpt", "content", "category", "readTime", "image"},
		},
		{
			name:    "Empty title only",
			mutate:  func(in *CreateInput) { in.Title = "" },
			missing: []string{"title"},
		},
		{
			name:    "Whitespace counts as missing",
			mutate:  func(in *CreateInput) { in.Excerpt = "   " },
			missing: []string{"excerpt"},
		},
		{
			name:    "Unknown content format",
			mutate:  func(in *CreateInput) { in.ContentFormat = "asciidoc" },
			missing: []string{"contentFormat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &countingStore{inner: persistence.NewMemoryStore()}
			svc := newTestService(store, nil)

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(ve.Fields) != len(tt.missing) {
				t.Fatalf("expected fields %v, got %v", tt.missing, ve.Fields)
			}
			for i, f := range tt.missing {
				if ve.Fields[i] != f {
					t.Errorf("field[%d] = %q, want %q", i, ve.Fields[i], f)
				}
			}
			if store.saves != 0 {
				t.Errorf("expected no store writes on validation failure, got %d", store.saves)
			}
		})
	}
}

func TestCreateThenGetBySlug(t *testing.T) {
	svc := newTestService(persistence.NewMemoryStore(), nil)

	in := validInput()
	in.Title = "Hello, World! 2025"

	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Slug != "hello-world-2025" {
		t.Errorf("derived slug = %q, want %q", created.Slug, "hello-world-2025")
	}
	if created.ID == "" {
		t.Error("expected a generated ID")
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Error("expected createdAt == updatedAt on creation")
	}

	got, err := svc.GetBySlug(context.Background(), "hello-world-2025")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if got.ID != created.ID || got.Title != in.Title || got.Excerpt != in.Excerpt {
		t.Errorf("GetBySlug returned %+v, want the created post", got)
	}
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	svc := newTestService(persistence.NewMemoryStore(), nil)

	in := validInput()
	in.Slug = "custom-slug"

	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Slug != "custom-slug" {
		t.Errorf("slug = %q, want the supplied slug", created.Slug)
	}
}

func TestCreateRendersMarkdown(t *testing.T) {
	svc := newTestService(persistence.NewMemoryStore(), nil)

	in := validInput()
	in.Content = "# Heading\n\nSome **bold** text."
	in.ContentFormat = FormatMarkdown

	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if want := "<h1>Heading</h1>"; !strings.Contains(created.Content, want) {
		t.Errorf("content %q does not contain %q", created.Content, want)
	}
	if want := "<strong>bold</strong>"; !strings.Contains(created.Content, want) {
		t.Errorf("content %q does not contain %q", created.Content, want)
	}
}

func TestListAllDedupesByTitle(t *testing.T) {
	store := persistence.NewMemoryStore()
	static := []domain.Post{staticPost("B", "b-static"), staticPost("C", "c-static")}
	svc := newTestService(store, static)

	for _, title := range []string{"B", "A"} {
		in := validInput()
		in.Title = title
		in.Slug = "dynamic-" + title
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("Create(%q) failed: %v", title, err)
		}
	}

	posts, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	titles := make([]string, len(posts))
	for i, p := range posts {
		titles[i] = p.Title
	}
	want := []string{"A", "B", "C"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("titles = %v, want %v", titles, want)
		}
	}

	// the shared title must come from the dynamic store
	if posts[1].Slug != "dynamic-B" {
		t.Errorf(`post "B" slug = %q, want the dynamic post's slug`, posts[1].Slug)
	}

	seen := make(map[string]bool)
	for _, p := range posts {
		if seen[p.Title] {
			t.Errorf("duplicate title %q in listing", p.Title)
		}
		seen[p.Title] = true
	}
}

func TestGetMatchesIDOrSlug(t *testing.T) {
	svc := newTestService(persistence.NewMemoryStore(), nil)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byID, err := svc.Get(context.Background(), created.ID)
	if err != nil || byID.ID != created.ID {
		t.Fatalf("Get by ID failed: %v", err)
	}

	bySlug, err := svc.Get(context.Background(), created.Slug)
	if err != nil || bySlug.ID != created.ID {
		t.Fatalf("Get by slug failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get(nope) = %v, want ErrNotFound", err)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: fixed}
	svc := newTestService(persistence.NewMemoryStore(), nil, WithClock(clock.Now))

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	clock.t = fixed.Add(time.Hour)
	newTitle := "Updated Title"
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("title = %q, want %q", updated.Title, newTitle)
	}
	if updated.Excerpt != created.Excerpt {
		t.Errorf("excerpt changed unexpectedly: %q", updated.Excerpt)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("updatedAt %v not after createdAt %v", updated.UpdatedAt, updated.CreatedAt)
	}
	if updated.ID != created.ID {
		t.Error("ID must be immutable")
	}
}

func TestUpdateStaticPostFails(t *testing.T) {
	static := []domain.Post{staticPost("Static Only", "static-only")}
	svc := newTestService(persistence.NewMemoryStore(), static)

	title := "New Title"
	_, err := svc.Update(context.Background(), "static-static-only", UpdateInput{Title: &title})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("updating a static post = %v, want ErrNotFound", err)
	}
}

func TestDeleteMissingLeavesCollectionUnchanged(t *testing.T) {
	svc := newTestService(persistence.NewMemoryStore(), nil)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), "does-not-exist"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete(missing) = %v, want ErrNotFound", err)
	}

	posts, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != created.ID {
		t.Errorf("collection changed after failed delete: %+v", posts)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	posts, _ = svc.ListAll(context.Background())
	if len(posts) != 0 {
		t.Errorf("expected empty collection after delete, got %d posts", len(posts))
	}
}

func TestConcurrentCreatesAllLand(t *testing.T) {
	// every conflict means another writer committed, so with the retry
	// budget of 3 all four writers are guaranteed to land
	const writers = 4

	svc := newTestService(persistence.NewMemoryStore(), nil)

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := validInput()
			in.Title = fmt.Sprintf("Concurrent Post %d", i)
			if _, err := svc.Create(context.Background(), in); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Create failed: %v", err)
	}

	posts, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(posts) != writers {
		t.Errorf("expected %d posts after concurrent creates, got %d", writers, len(posts))
	}
}

func TestListAllFallsBackToStatic(t *testing.T) {
	static := []domain.Post{staticPost("Static", "static")}
	svc := newTestService(&failingStore{}, static)

	posts, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Static" {
		t.Errorf("expected static-only listing, got %+v", posts)
	}
}

func TestListAllStrictReadsPropagates(t *testing.T) {
	svc := newTestService(&failingStore{}, nil, WithStrictReads())

	_, err := svc.ListAll(context.Background())
	var se *domain.StoreError
	if !errors.As(err, &se) {
		t.Errorf("ListAll = %v, want a StoreError", err)
	}
}

func TestMutateGivesUpAfterRetries(t *testing.T) {
	svc := newTestService(&conflictingStore{}, nil)

	_, err := svc.Create(context.Background(), validInput())
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Create against a conflicting store = %v, want ErrConflict", err)
	}
}

// countingStore wraps a store and counts SaveAll calls.
type countingStore struct {
	inner domain.PostStore
	saves int
}

func (s *countingStore) LoadAll(ctx context.Context) ([]domain.Post, domain.Revision, error) {
	return s.inner.LoadAll(ctx)
}

func (s *countingStore) SaveAll(ctx context.Context, posts []domain.Post, base domain.Revision) error {
	s.saves++
	return s.inner.SaveAll(ctx, posts, base)
}

// failingStore fails every operation with a connection-style error.
type failingStore struct{}

func (s *failingStore) LoadAll(ctx context.Context) ([]domain.Post, domain.Revision, error) {
	return nil, 0, &domain.StoreError{Op: "load", Err: errors.New("connection refused")}
}

func (s *failingStore) SaveAll(ctx context.Context, posts []domain.Post, base domain.Revision) error {
	return &domain.StoreError{Op: "save", Err: errors.New("connection refused")}
}

// conflictingStore rejects every save as if another writer always wins.
type conflictingStore struct{}

func (s *conflictingStore) LoadAll(ctx context.Context) ([]domain.Post, domain.Revision, error) {
	return []domain.Post{}, 0, nil
}

func (s *conflictingStore) SaveAll(ctx context.Context, posts []domain.Post, base domain.Revision) error {
	return &domain.StoreError{Op: "save", Err: domain.ErrConflict}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}
