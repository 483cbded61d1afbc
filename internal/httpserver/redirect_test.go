package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSEORedirect_ExactMatch(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]string{
		"/about-us":    "/about",
		"/our-work":    "/portfolio",
		"/news":        "/blog",
		"/home":        "/",
		"/index.html":  "/",
		"/contact-us/": "/contact",
	}
	for path, want := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusMovedPermanently {
			t.Fatalf("%s: expected 301, got %d", path, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != want {
			t.Fatalf("%s: expected Location %q, got %q", path, want, got)
		}
	}
}

func TestSEORedirect_DynamicPortfolioPages(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/portfolio/hospital-website", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/portfolio" {
		t.Fatalf("expected /portfolio, got %q", got)
	}
}

func TestSEORedirect_TrailingSlash(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/blog/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/blog" {
		t.Fatalf("expected /blog, got %q", got)
	}
}

func TestSEORedirect_LeavesAPIPathsAlone(t *testing.T) {
	router := newTestRouter(t)

	// API routes must never be consumed by the trailing-slash rule.
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNoRoute_ReturnsSitemapHint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/totally-unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Page not found") || !strings.Contains(body, "/sitemap.xml") {
		t.Fatalf("unexpected body: %s", body)
	}
}
