package httpserver

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"godivatech-site/internal/domain"
	blogpostrepo "godivatech-site/internal/repository/blogpost"
	categoryrepo "godivatech-site/internal/repository/category"
	contactrepo "godivatech-site/internal/repository/contact"
	projectrepo "godivatech-site/internal/repository/project"
	servicerepo "godivatech-site/internal/repository/service"
	subscriberrepo "godivatech-site/internal/repository/subscriber"
	teammemberrepo "godivatech-site/internal/repository/teammember"
	testimonialrepo "godivatech-site/internal/repository/testimonial"
	blogpostsvc "godivatech-site/internal/service/blogpost"
	subscribersvc "godivatech-site/internal/service/subscriber"

	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func intPtr(v int) *int { return &v }

// newTestRouter builds a router over in-memory storage with a small fixture
// set shared by the handler tests.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	categories := categoryrepo.NewMemory([]domain.Category{
		{ID: 1, Name: "Tech", Slug: "tech"},
		{ID: 2, Name: "Design", Slug: "design"},
	})
	posts := blogpostrepo.NewMemory([]domain.BlogPost{
		{
			ID:          1,
			Title:       "Hello World",
			Slug:        "hello",
			Excerpt:     "First post",
			Content:     "# Hello\n\nWelcome.",
			Published:   true,
			AuthorName:  "Priya",
			PublishedAt: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
			CategoryID:  intPtr(1),
		},
		{
			ID:          2,
			Title:       "Orphaned",
			Slug:        "orphaned",
			Content:     "No category survives here.",
			Published:   true,
			AuthorName:  "Priya",
			PublishedAt: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
			CategoryID:  intPtr(42),
		},
	})
	projects := projectrepo.NewMemory([]domain.Project{
		{ID: 1, Title: "Retail platform", Description: "E-commerce build", Category: "Web", Technologies: []string{"Go", "Postgres"}},
		{ID: 2, Title: "Booking app", Description: "Mobile booking", Category: "Mobile", Technologies: []string{"Flutter"}},
	})
	services := servicerepo.NewMemory([]domain.Service{
		{ID: 1, Title: "Web Development", Description: "Sites and apps", Icon: "code", Slug: "web-development"},
	})

	logger := logDiscard()
	deps := Deps{
		Blog:          blogpostsvc.New(posts, categories, logger),
		Subscribers:   subscribersvc.New(subscriberrepo.NewMemory()),
		Categories:    categories,
		Services:      services,
		Projects:      projects,
		TeamMembers:   teammemberrepo.NewMemory(nil),
		Testimonials:  testimonialrepo.NewMemory(nil),
		Contacts:      contactrepo.NewMemory(),
		AdminUsername: "admin",
		AdminPassword: "password123",
		BaseURL:       "https://godivatech.com",
	}
	return buildRouter(logger, nil, deps)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"status":"ok"`) || !strings.Contains(body, `"environment"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestReadyEndpoint_MemoryMode(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 in memory mode, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/blog-posts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCORSHeaderPresent(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Origin", "https://godivatech.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}
