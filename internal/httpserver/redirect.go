package httpserver

import (
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

// Permanent redirects for URLs search engines indexed before the site's
// information architecture settled.
var redirectMap = map[string]string{
	"/about-us":                "/about",
	"/about-us/":               "/about",
	"/portfolio/logo-design":   "/portfolio",
	"/portfolio/logo-design/":  "/portfolio",
	"/our-services":            "/services",
	"/our-services/":           "/services",
	"/contact-us":              "/contact",
	"/contact-us/":             "/contact",
	"/our-work":                "/portfolio",
	"/our-work/":               "/portfolio",
	"/our-team":                "/about",
	"/our-team/":               "/about",
	"/news":                    "/blog",
	"/news/":                   "/blog",
	"/articles":                "/blog",
	"/articles/":               "/blog",
	"/services/website-development":       "/services/web-development",
	"/services/website-design":            "/services/web-development",
	"/services/mobile-app-development":    "/services/app-development",
	"/services/digital-marketing-services": "/services/digital-marketing",
	"/services/logo-design":               "/services/branding",
	"/services/brand-design":              "/services/branding",
	"/blog/categories/digital-marketing": "/blog/category/digital-marketing",
	"/blog/categories/web-development":   "/blog/category/web-development",
	"/blog/categories/technology":        "/blog/category/technology",
	"/home":         "/",
	"/home/":        "/",
	"/index.html":   "/",
	"/index.php":    "/",
	"/default.html": "/",
}

type dynamicRedirect struct {
	pattern     *regexp.Regexp
	replacement string
}

// Individual portfolio pages were folded into the portfolio index.
var dynamicRedirects = []dynamicRedirect{
	{pattern: regexp.MustCompile(`^/portfolio/([^/]+)$`), replacement: "/portfolio"},
}

// seoRedirectMiddleware issues 301s for the redirect table, dynamic
// patterns, and trailing-slash variants, in that order.
func seoRedirectMiddleware(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		target, ok := redirectMap[path]
		if !ok {
			target, ok = redirectMap[strings.ToLower(path)]
		}
		if ok {
			logger.Printf("seo redirect: %s -> %s", path, target)
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}

		for _, d := range dynamicRedirects {
			if d.pattern.MatchString(path) {
				target := d.pattern.ReplaceAllString(path, d.replacement)
				logger.Printf("seo dynamic redirect: %s -> %s", path, target)
				c.Redirect(http.StatusMovedPermanently, target)
				c.Abort()
				return
			}
		}

		if strings.HasSuffix(path, "/") && path != "/" && !strings.HasPrefix(path, "/api") {
			target := strings.TrimSuffix(path, "/")
			logger.Printf("seo trailing slash redirect: %s -> %s", path, target)
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}

		c.Next()
	}
}

// seoNotFoundHandler logs unmatched paths as redirect candidates before
// answering 404.
func seoNotFoundHandler(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Printf("seo 404: %s (referer %q, ua %q)", c.Request.URL.Path, c.GetHeader("Referer"), c.GetHeader("User-Agent"))
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Page not found",
			"suggestion": "This URL may have moved. Check our sitemap at /sitemap.xml",
		})
	}
}
