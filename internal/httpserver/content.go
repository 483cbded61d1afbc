package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"godivatech-site/internal/domain"
	"github.com/gin-gonic/gin"
)

func listCategoriesHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if slug := c.Query("slug"); slug != "" {
			cat, err := deps.Categories.GetBySlug(c.Request.Context(), slug)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
					return
				}
				logger.Printf("get category: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch category", "error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, cat)
			return
		}

		categories, err := deps.Categories.List(c.Request.Context())
		if err != nil {
			logger.Printf("list categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func listServicesHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		services, err := deps.Services.List(c.Request.Context())
		if err != nil {
			logger.Printf("list services: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch services", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

func getServiceHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc, err := deps.Services.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
				return
			}
			logger.Printf("get service: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch service", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, svc)
	}
}

func listTeamMembersHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := deps.TeamMembers.List(c.Request.Context())
		if err != nil {
			logger.Printf("list team members: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch team members", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

func listProjectsHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rawID := c.Query("id"); rawID != "" {
			id, err := strconv.Atoi(rawID)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
				return
			}
			project, err := deps.Projects.Get(c.Request.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
					return
				}
				logger.Printf("get project: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch project", "error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, project)
			return
		}

		projects, err := deps.Projects.List(c.Request.Context())
		if err != nil {
			logger.Printf("list projects: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, projects)
	}
}

func listTestimonialsHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := deps.Testimonials.List(c.Request.Context())
		if err != nil {
			logger.Printf("list testimonials: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch testimonials", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}
