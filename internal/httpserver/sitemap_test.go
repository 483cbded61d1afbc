package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSitemap_ListsStaticAndContentURLs(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/xml") {
		t.Fatalf("unexpected content type %q", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"<urlset",
		"https://godivatech.com/about",
		"https://godivatech.com/services/web-development",
		"https://godivatech.com/blog/hello",
		"<lastmod>2023-06-15</lastmod>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("sitemap missing %q:\n%s", want, body)
		}
	}
}
