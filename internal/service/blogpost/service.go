package blogpost

import (
	"bytes"
	"context"
	"errors"
	"log"

	"godivatech-site/internal/domain"
	blogpostrepo "godivatech-site/internal/repository/blogpost"
	categoryrepo "godivatech-site/internal/repository/category"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// markdown renderer for post bodies, GFM plus raw URL linkification
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

// Post is a blog post as returned by the API: the stored record plus the
// resolved category when the weak categoryId reference could be followed.
// A nil Category means "no category or enrichment failed"; either way the
// post itself is still served.
type Post struct {
	domain.BlogPost
	Category    *domain.Category `json:"category,omitempty"`
	ContentHTML string           `json:"contentHtml,omitempty"`
}

type Service struct {
	posts      blogpostrepo.Repository
	categories categoryrepo.Repository
	logger     *log.Logger
}

func New(posts blogpostrepo.Repository, categories categoryrepo.Repository, logger *log.Logger) *Service {
	return &Service{posts: posts, categories: categories, logger: logger}
}

// List returns all posts, newest first, each enriched best-effort.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		result = append(result, s.enrich(ctx, p))
	}
	return result, nil
}

// GetBySlug returns a single enriched post with its body rendered to HTML.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	p, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	post := s.enrich(ctx, *p)
	post.ContentHTML = s.renderHTML(post.Slug, post.Content)
	return &post, nil
}

// enrich attaches the referenced category if it can be resolved. Resolution
// failures are logged and swallowed so one bad reference never takes down a
// whole listing.
func (s *Service) enrich(ctx context.Context, p domain.BlogPost) Post {
	post := Post{BlogPost: p}
	if p.CategoryID == nil {
		return post
	}

	cat, err := s.categories.Get(ctx, *p.CategoryID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("enrich post %d: resolve category %d: %v", p.ID, *p.CategoryID, err)
		}
		return post
	}
	post.Category = cat
	return post
}

func (s *Service) renderHTML(slug, content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		s.logger.Printf("render post %s: %v", slug, err)
		return ""
	}
	return buf.String()
}
