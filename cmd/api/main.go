package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"godivatech-site/internal/config"
	"godivatech-site/internal/db"
	"godivatech-site/internal/httpserver"
	blogpostrepo "godivatech-site/internal/repository/blogpost"
	categoryrepo "godivatech-site/internal/repository/category"
	contactrepo "godivatech-site/internal/repository/contact"
	projectrepo "godivatech-site/internal/repository/project"
	servicerepo "godivatech-site/internal/repository/service"
	subscriberrepo "godivatech-site/internal/repository/subscriber"
	teammemberrepo "godivatech-site/internal/repository/teammember"
	testimonialrepo "godivatech-site/internal/repository/testimonial"
	"godivatech-site/internal/seed"
	blogpostsvc "godivatech-site/internal/service/blogpost"
	subscribersvc "godivatech-site/internal/service/subscriber"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var (
		pool *pgxpool.Pool

		posts        blogpostrepo.Repository
		categories   categoryrepo.Repository
		services     servicerepo.Repository
		projects     projectrepo.Repository
		teamMembers  teammemberrepo.Repository
		testimonials testimonialrepo.Repository
		contacts     contactrepo.Repository
		subscribers  subscriberrepo.Repository
	)

	if cfg.DBConnString != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()

		posts = blogpostrepo.NewPostgres(pool)
		categories = categoryrepo.NewPostgres(pool)
		services = servicerepo.NewPostgres(pool)
		projects = projectrepo.NewPostgres(pool)
		teamMembers = teammemberrepo.NewPostgres(pool)
		testimonials = testimonialrepo.NewPostgres(pool)
		contacts = contactrepo.NewPostgres(pool)
		subscribers = subscriberrepo.NewPostgres(pool)
		logger.Printf("using postgres storage")
	} else {
		posts = blogpostrepo.NewMemory(seed.BlogPosts)
		categories = categoryrepo.NewMemory(seed.Categories)
		services = servicerepo.NewMemory(seed.Services)
		projects = projectrepo.NewMemory(seed.Projects)
		teamMembers = teammemberrepo.NewMemory(seed.TeamMembers)
		testimonials = testimonialrepo.NewMemory(seed.Testimonials)
		contacts = contactrepo.NewMemory()
		subscribers = subscriberrepo.NewMemory()
		logger.Printf("using in-memory storage seeded with sample content")
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Blog:          blogpostsvc.New(posts, categories, logger),
		Subscribers:   subscribersvc.New(subscribers),
		Categories:    categories,
		Services:      services,
		Projects:      projects,
		TeamMembers:   teamMembers,
		Testimonials:  testimonials,
		Contacts:      contacts,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		BaseURL:       cfg.BaseURL,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
