package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/csg33k/surat-generator/internal/adapters/pdf"
	sqliteadapter "github.com/csg33k/surat-generator/internal/adapters/sqlite"
	"github.com/csg33k/surat-generator/internal/app"
	"github.com/csg33k/surat-generator/internal/config"
	"github.com/csg33k/surat-generator/internal/handlers"
	"github.com/csg33k/surat-generator/internal/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	repo, err := sqliteadapter.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()

	logger := slog.Default()
	state := snapshot.NewAutosave(repo, cfg.StateKey, logger)
	svc := app.New(state, pdf.New(), nil, logger)
	h := handlers.New(svc, cfg.BaseURL, cfg.DefaultLang, logger)

	log.Printf("Surat generator running on http://localhost:%s", cfg.Port)
	log.Printf("Database: %s (key %s)", cfg.DBPath, state.Key())
	if err := http.ListenAndServe(":"+cfg.Port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
