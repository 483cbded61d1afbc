package httpserver

import (
	"encoding/xml"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// staticPages are the site's fixed routes; content-driven URLs are appended
// from the blog and service stores.
var staticPages = []string{"/", "/about", "/services", "/portfolio", "/blog", "/contact"}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func sitemapHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	base := strings.TrimSuffix(deps.BaseURL, "/")

	return func(c *gin.Context) {
		set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
		for _, page := range staticPages {
			set.URLs = append(set.URLs, sitemapURL{Loc: base + page})
		}

		// Store failures degrade the sitemap to the static pages only.
		if services, err := deps.Services.List(c.Request.Context()); err != nil {
			logger.Printf("sitemap: list services: %v", err)
		} else {
			for _, s := range services {
				set.URLs = append(set.URLs, sitemapURL{Loc: base + "/services/" + s.Slug})
			}
		}

		if posts, err := deps.Blog.List(c.Request.Context()); err != nil {
			logger.Printf("sitemap: list blog posts: %v", err)
		} else {
			for _, p := range posts {
				set.URLs = append(set.URLs, sitemapURL{
					Loc:     base + "/blog/" + p.Slug,
					LastMod: p.PublishedAt.UTC().Format(time.DateOnly),
				})
			}
		}

		out, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			logger.Printf("sitemap: marshal: %v", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
	}
}
