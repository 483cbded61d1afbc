package httpserver

import (
	"log"
	"net/http"

	blogpostsvc "godivatech-site/internal/service/blogpost"
	subscribersvc "godivatech-site/internal/service/subscriber"

	categoryrepo "godivatech-site/internal/repository/category"
	contactrepo "godivatech-site/internal/repository/contact"
	projectrepo "godivatech-site/internal/repository/project"
	servicerepo "godivatech-site/internal/repository/service"
	teammemberrepo "godivatech-site/internal/repository/teammember"
	testimonialrepo "godivatech-site/internal/repository/testimonial"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries everything the handlers need.
type Deps struct {
	Blog         *blogpostsvc.Service
	Subscribers  *subscribersvc.Service
	Categories   categoryrepo.Repository
	Services     servicerepo.Repository
	Projects     projectrepo.Repository
	TeamMembers  teammemberrepo.Repository
	Testimonials testimonialrepo.Repository
	Contacts     contactrepo.Repository

	AdminUsername string
	AdminPassword string
	BaseURL       string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	router.Use(seoRedirectMiddleware(logger))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})
	router.NoRoute(seoNotFoundHandler(logger))

	sessions := newSessionStore()

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/sitemap.xml", sitemapHandler(deps, logger))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler)

		api.GET("/blog-posts", listBlogPostsHandler(deps, logger))
		api.GET("/blog-posts/:slug", getBlogPostHandler(deps, logger))

		api.GET("/categories", listCategoriesHandler(deps, logger))
		api.GET("/services", listServicesHandler(deps, logger))
		api.GET("/services/:slug", getServiceHandler(deps, logger))
		api.GET("/team-members", listTeamMembersHandler(deps, logger))
		api.GET("/projects", listProjectsHandler(deps, logger))
		api.GET("/testimonials", listTestimonialsHandler(deps, logger))

		api.POST("/contact", createContactHandler(deps, logger))
		api.POST("/subscribe", subscribeHandler(deps, logger))

		api.POST("/login", loginHandler(deps, sessions))
		api.POST("/logout", logoutHandler(sessions))
		api.GET("/user", currentUserHandler(sessions))
	}

	return router
}
