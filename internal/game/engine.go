package game

import (
	"context"
	"log/slog"

	"github.com/cybergis/ctfmap/internal/event"
	"github.com/cybergis/ctfmap/internal/storage"
)

// Engine is the composition root for the domain state: one bus, the
// two entity repositories, and the settings blob, wired once at
// startup and handed to consumers by reference.
type Engine struct {
	Bus      *event.Bus
	Nodes    *NodeRepo
	Teams    *TeamRepo
	Settings *SettingsRepo
}

// NewEngine wires the repositories onto a shared bus. The team repo is
// constructed first so its capture listener is subscribed before any
// caller can publish a NodeCaptured.
func NewEngine(ctx context.Context, logger *slog.Logger, blobs storage.Blobs) *Engine {
	bus := event.NewBus(logger)
	teams := NewTeamRepo(ctx, logger, bus, blobs)
	nodes := NewNodeRepo(ctx, logger, bus, blobs)
	settings := NewSettingsRepo(ctx, logger, bus, blobs)

	return &Engine{
		Bus:      bus,
		Nodes:    nodes,
		Teams:    teams,
		Settings: settings,
	}
}
