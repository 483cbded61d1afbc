package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"godivatech-site/internal/domain"
	blogpostrepo "godivatech-site/internal/repository/blogpost"
	categoryrepo "godivatech-site/internal/repository/category"
)

// JSONImporter reads a content export (the JSON dump format the site's
// previous backend produced) and loads categories and blog posts into a
// storage backend. Entries whose slug already exists are skipped, so
// re-running an import is safe.
type JSONImporter struct {
	reader     io.Reader
	categories categoryrepo.Repository
	posts      blogpostrepo.Repository
	logger     *log.Logger
}

func NewJSONImporter(r io.Reader, categories categoryrepo.Repository, posts blogpostrepo.Repository, logger *log.Logger) *JSONImporter {
	return &JSONImporter{reader: r, categories: categories, posts: posts, logger: logger}
}

type contentExport struct {
	Categories []domain.Category `json:"categories"`
	BlogPosts  []domain.BlogPost `json:"blogPosts"`
}

// Run parses the export and creates the entries it contains. It returns the
// number of records created.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var export contentExport
	if err := json.NewDecoder(i.reader).Decode(&export); err != nil {
		return 0, fmt.Errorf("decode export: %w", err)
	}

	imported := 0

	for _, c := range export.Categories {
		if c.Name == "" || c.Slug == "" {
			return imported, fmt.Errorf("invalid category row (missing name or slug) for slug %q", c.Slug)
		}
		exists, err := i.slugExists(ctx, func() error {
			_, err := i.categories.GetBySlug(ctx, c.Slug)
			return err
		})
		if err != nil {
			return imported, fmt.Errorf("check category %q: %w", c.Slug, err)
		}
		if exists {
			i.logger.Printf("skip category %q: slug already present", c.Slug)
			continue
		}
		if _, err := i.categories.Create(ctx, c); err != nil {
			return imported, fmt.Errorf("create category %q: %w", c.Slug, err)
		}
		imported++
	}

	for _, p := range export.BlogPosts {
		if p.Title == "" || p.Slug == "" || p.Content == "" {
			return imported, fmt.Errorf("invalid post row (missing required fields) for slug %q", p.Slug)
		}
		exists, err := i.slugExists(ctx, func() error {
			_, err := i.posts.GetBySlug(ctx, p.Slug)
			return err
		})
		if err != nil {
			return imported, fmt.Errorf("check post %q: %w", p.Slug, err)
		}
		if exists {
			i.logger.Printf("skip post %q: slug already present", p.Slug)
			continue
		}
		if _, err := i.posts.Create(ctx, p); err != nil {
			return imported, fmt.Errorf("create post %q: %w", p.Slug, err)
		}
		imported++
	}

	return imported, nil
}

func (i *JSONImporter) slugExists(_ context.Context, lookup func() error) (bool, error) {
	err := lookup()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, err
}
