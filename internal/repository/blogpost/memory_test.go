package blogpost

import (
	"context"
	"errors"
	"testing"
	"time"

	"godivatech-site/internal/domain"
)

func seedPosts() []domain.BlogPost {
	return []domain.BlogPost{
		{ID: 1, Title: "Old", Slug: "old", Content: "old body", PublishedAt: time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "New", Slug: "new", Content: "new body", PublishedAt: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Title: "Mid", Slug: "mid", Content: "mid body", PublishedAt: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestMemory_ListNewestFirst(t *testing.T) {
	repo := NewMemory(seedPosts())

	posts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].PublishedAt.After(posts[i-1].PublishedAt) {
			t.Fatalf("posts out of order at %d: %s before %s", i, posts[i-1].Slug, posts[i].Slug)
		}
	}
	if posts[0].Slug != "new" || posts[2].Slug != "old" {
		t.Fatalf("unexpected ordering: %s..%s", posts[0].Slug, posts[2].Slug)
	}
}

func TestMemory_GetBySlug(t *testing.T) {
	repo := NewMemory(seedPosts())

	p, err := repo.GetBySlug(context.Background(), "mid")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if p.ID != 3 || p.Title != "Mid" {
		t.Fatalf("unexpected post: %+v", p)
	}

	if _, err := repo.GetBySlug(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_CreateContinuesFromSeededIDs(t *testing.T) {
	repo := NewMemory(seedPosts())

	created, err := repo.Create(context.Background(), domain.BlogPost{Title: "Fresh", Slug: "fresh", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 4 {
		t.Fatalf("expected id 4, got %d", created.ID)
	}

	next, err := repo.Create(context.Background(), domain.BlogPost{Title: "Fresher", Slug: "fresher", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if next.ID != 5 {
		t.Fatalf("expected id 5, got %d", next.ID)
	}

	got, err := repo.Get(context.Background(), 4)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Slug != "fresh" {
		t.Fatalf("unexpected slug %q", got.Slug)
	}
}

func TestMemory_GetNotFound(t *testing.T) {
	repo := NewMemory(nil)

	if _, err := repo.Get(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
