package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/cybergis/ctfmap/internal/game"
)

func addRoutes(r chi.Router, logger *slog.Logger, engine *game.Engine, db *sql.DB, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("CTF Map API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api", func(r chi.Router) {
		r.Route("/nodes", func(r chi.Router) {
			r.Get("/", handleListNodes(engine.Nodes))
			r.Post("/", handleCreateNode(engine.Nodes))
			r.Get("/export", handleExportNodes(engine.Nodes))
			r.Post("/import", handleImportNodes(engine.Nodes))
			r.Get("/{id}", handleGetNode(engine.Nodes, engine.Teams))
			r.Put("/{id}", handleUpdateNode(engine.Nodes))
			r.Delete("/{id}", handleDeleteNode(engine.Nodes))
			r.Post("/{id}/capture", handleCaptureNode(engine.Nodes, engine.Teams))
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", handleListTeams(engine.Teams))
			r.Post("/", handleCreateTeam(engine.Teams))
			r.Get("/export", handleExportTeams(engine.Teams))
			r.Post("/import", handleImportTeams(engine.Teams))
			r.Get("/{id}", handleGetTeam(engine.Teams))
			r.Put("/{id}", handleUpdateTeam(engine.Teams))
			r.Delete("/{id}", handleDeleteTeam(engine.Teams))
		})

		r.Get("/topology", handleTopology(engine.Nodes, engine.Settings))
		r.Get("/settings", handleGetSettings(engine.Settings))
		r.Put("/settings", handleSaveSettings(engine.Settings))
		r.Get("/events", handleEvents(engine.Bus))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
