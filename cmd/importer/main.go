package main

import (
	"context"
	"flag"
	"log"
	"os"

	"godivatech-site/internal/config"
	"godivatech-site/internal/db"
	"godivatech-site/internal/importer"
	blogpostrepo "godivatech-site/internal/repository/blogpost"
	categoryrepo "godivatech-site/internal/repository/category"
)

func main() {
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	path := flag.String("file", "", "path to a JSON content export")
	flag.Parse()
	if *path == "" {
		logger.Fatal("usage: importer -file <export.json>")
	}

	cfg := config.FromEnv()
	if cfg.DBConnString == "" {
		logger.Fatal("DB_DSN is required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open export: %v", err)
	}
	defer f.Close()

	imp := importer.NewJSONImporter(f, categoryrepo.NewPostgres(pool), blogpostrepo.NewPostgres(pool), logger)
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d records: %v", count, err)
	}

	logger.Printf("imported %d records", count)
}
