package server

import (
	"math/rand/v2"
	"net/http"

	"github.com/cybergis/ctfmap/internal/game"
	"github.com/cybergis/ctfmap/internal/topology"
)

// handleTopology recomputes the route graph from scratch on every
// request; node counts are country-scale, so there is no incremental
// update path. With flight paths toggled off the graph is empty.
func handleTopology(nodes *game.NodeRepo, settings *game.SettingsRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := topology.Graph{Edges: []topology.Edge{}}

		if settings.Get().ShowFlightPaths {
			g = topology.Synthesize(nodes.List(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
			if g.Edges == nil {
				g.Edges = []topology.Edge{}
			}
		}
		writeJSON(w, http.StatusOK, g)
	}
}
