package blogpost

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"godivatech-site/internal/domain"
	"godivatech-site/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("ping db: %v", err)
	}
	return pool
}

func TestPostgres_CreateListAndGetBySlug(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE blog_posts RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	repo := NewPostgres(pool)

	older, err := repo.Create(ctx, domain.BlogPost{
		Title:       "Older",
		Slug:        "older",
		Excerpt:     "older excerpt",
		Content:     "older body",
		Published:   true,
		AuthorName:  "Priya",
		PublishedAt: time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create older: %v", err)
	}

	newer, err := repo.Create(ctx, domain.BlogPost{
		Title:       "Newer",
		Slug:        "newer",
		Excerpt:     "newer excerpt",
		Content:     "newer body",
		Published:   true,
		AuthorName:  "Priya",
		PublishedAt: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create newer: %v", err)
	}

	posts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != newer.ID || posts[1].ID != older.ID {
		t.Fatalf("expected newest-first ordering, got %+v", posts)
	}

	got, err := repo.GetBySlug(ctx, "older")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != older.ID || got.Title != "Older" {
		t.Fatalf("unexpected post %+v", got)
	}

	if _, err := repo.GetBySlug(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
