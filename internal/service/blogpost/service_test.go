package blogpost

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"godivatech-site/internal/domain"
	blogpostrepo "godivatech-site/internal/repository/blogpost"
	categoryrepo "godivatech-site/internal/repository/category"
)

type stubCategoryRepo struct {
	categories map[int]domain.Category
	err        error
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	return nil, errors.New("not used")
}

func (r *stubCategoryRepo) Get(_ context.Context, id int) (*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *stubCategoryRepo) GetBySlug(_ context.Context, _ string) (*domain.Category, error) {
	return nil, domain.ErrNotFound
}

func (r *stubCategoryRepo) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	return &c, nil
}

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func intPtr(v int) *int { return &v }

func testPosts() blogpostrepo.Repository {
	return blogpostrepo.NewMemory([]domain.BlogPost{
		{
			ID:          1,
			Title:       "Scaling Postgres",
			Slug:        "scaling-postgres",
			Content:     "## Indexes\n\nUse **covering** indexes.",
			PublishedAt: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
			CategoryID:  intPtr(7),
		},
		{
			ID:          2,
			Title:       "Uncategorized thoughts",
			Slug:        "uncategorized-thoughts",
			Content:     "Plain text.",
			PublishedAt: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
			CategoryID:  intPtr(99),
		},
		{
			ID:          3,
			Title:       "No category at all",
			Slug:        "no-category",
			Content:     "Also plain.",
			PublishedAt: time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
	})
}

func TestList_AttachesResolvableCategories(t *testing.T) {
	categories := &stubCategoryRepo{categories: map[int]domain.Category{
		7: {ID: 7, Name: "Databases", Slug: "databases"},
	}}
	svc := New(testPosts(), categories, logDiscard())

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}

	if posts[0].Slug != "scaling-postgres" {
		t.Fatalf("expected newest post first, got %q", posts[0].Slug)
	}
	if posts[0].Category == nil || posts[0].Category.Name != "Databases" {
		t.Fatalf("expected resolved category, got %+v", posts[0].Category)
	}
	// Dangling and absent references both come through without a category.
	if posts[1].Category != nil {
		t.Fatalf("dangling reference should stay unresolved, got %+v", posts[1].Category)
	}
	if posts[2].Category != nil {
		t.Fatalf("post without categoryId should have no category")
	}
}

func TestList_SurvivesCategoryStoreFailure(t *testing.T) {
	categories := &stubCategoryRepo{err: errors.New("timeout")}
	svc := New(testPosts(), categories, logDiscard())

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected all posts despite category failures, got %d", len(posts))
	}
	for _, p := range posts {
		if p.Category != nil {
			t.Fatalf("post %q should have no category when the store fails", p.Slug)
		}
	}
}

func TestGetBySlug_RendersMarkdown(t *testing.T) {
	categories := &stubCategoryRepo{categories: map[int]domain.Category{
		7: {ID: 7, Name: "Databases", Slug: "databases"},
	}}
	svc := New(testPosts(), categories, logDiscard())

	post, err := svc.GetBySlug(context.Background(), "scaling-postgres")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if post.Category == nil || post.Category.ID != 7 {
		t.Fatalf("expected category 7, got %+v", post.Category)
	}
	if !strings.Contains(post.ContentHTML, "<h2") {
		t.Fatalf("expected rendered heading, got %q", post.ContentHTML)
	}
	if !strings.Contains(post.ContentHTML, "<strong>covering</strong>") {
		t.Fatalf("expected rendered emphasis, got %q", post.ContentHTML)
	}
}

func TestGetBySlug_NotFound(t *testing.T) {
	svc := New(testPosts(), &stubCategoryRepo{}, logDiscard())

	_, err := svc.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

var _ categoryrepo.Repository = (*stubCategoryRepo)(nil)
