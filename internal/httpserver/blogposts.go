package httpserver

import (
	"errors"
	"log"
	"net/http"

	"godivatech-site/internal/domain"
	"github.com/gin-gonic/gin"
)

func listBlogPostsHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := deps.Blog.List(c.Request.Context())
		if err != nil {
			logger.Printf("list blog posts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blog posts", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

func getBlogPostHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := deps.Blog.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
				return
			}
			logger.Printf("get blog post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blog post", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}
