package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/cybergis/ctfmap/internal/game"
	"github.com/cybergis/ctfmap/internal/topology"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "CTF Map API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the capture-the-flag map dashboard.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/nodes
	listNodes, _ := r.NewOperationContext(http.MethodGet, "/api/nodes")
	listNodes.SetSummary("List nodes")
	listNodes.SetDescription("Returns all nodes in insertion order.")
	listNodes.AddRespStructure([]game.Node{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listNodes)

	// POST /api/nodes
	createNode, _ := r.NewOperationContext(http.MethodPost, "/api/nodes")
	createNode.SetSummary("Create node")
	createNode.SetDescription("Creates a node; omitted fields get schema defaults.")
	createNode.AddReqStructure(game.NodeDraft{})
	createNode.AddRespStructure(game.Node{}, openapi.WithHTTPStatus(http.StatusCreated))
	createNode.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(createNode)

	// GET /api/nodes/{id}
	getNode, _ := r.NewOperationContext(http.MethodGet, "/api/nodes/{id}")
	getNode.SetSummary("Get node")
	getNode.SetDescription("Returns one node with its resolved owner team, if any.")
	getNode.AddRespStructure(NodeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getNode.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getNode)

	// PUT /api/nodes/{id}
	updateNode, _ := r.NewOperationContext(http.MethodPut, "/api/nodes/{id}")
	updateNode.SetSummary("Update node")
	updateNode.SetDescription("Merges the provided fields; unspecified fields keep their value.")
	updateNode.AddReqStructure(game.NodePatch{})
	updateNode.AddRespStructure(game.Node{}, openapi.WithHTTPStatus(http.StatusOK))
	updateNode.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(updateNode)

	// DELETE /api/nodes/{id}
	deleteNode, _ := r.NewOperationContext(http.MethodDelete, "/api/nodes/{id}")
	deleteNode.SetSummary("Delete node")
	deleteNode.SetDescription("Removes the node. Deleting an unknown id is a no-op.")
	deleteNode.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(deleteNode)

	// POST /api/nodes/{id}/capture
	captureNode, _ := r.NewOperationContext(http.MethodPost, "/api/nodes/{id}/capture")
	captureNode.SetSummary("Capture node")
	captureNode.SetDescription("Transfers ownership to the team and triggers score bookkeeping.")
	captureNode.AddReqStructure(CaptureRequest{})
	captureNode.AddRespStructure(game.Node{}, openapi.WithHTTPStatus(http.StatusOK))
	captureNode.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	captureNode.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(captureNode)

	// GET /api/nodes/export
	exportNodes, _ := r.NewOperationContext(http.MethodGet, "/api/nodes/export")
	exportNodes.SetSummary("Export nodes")
	exportNodes.SetDescription("Returns the full node collection as an indented JSON array.")
	exportNodes.AddRespStructure([]game.Node{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(exportNodes)

	// POST /api/nodes/import
	importNodes, _ := r.NewOperationContext(http.MethodPost, "/api/nodes/import")
	importNodes.SetSummary("Import nodes")
	importNodes.SetDescription("Replaces the whole collection. Rejects anything that is not a JSON array.")
	importNodes.AddReqStructure([]game.Node{})
	importNodes.AddRespStructure(map[string]int{}, openapi.WithHTTPStatus(http.StatusOK))
	importNodes.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(importNodes)

	// GET /api/teams
	listTeams, _ := r.NewOperationContext(http.MethodGet, "/api/teams")
	listTeams.SetSummary("List teams")
	listTeams.AddRespStructure([]game.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listTeams)

	// POST /api/teams
	createTeam, _ := r.NewOperationContext(http.MethodPost, "/api/teams")
	createTeam.SetSummary("Create team")
	createTeam.AddReqStructure(game.TeamDraft{})
	createTeam.AddRespStructure(game.Team{}, openapi.WithHTTPStatus(http.StatusCreated))
	createTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(createTeam)

	// GET /api/teams/{id}
	getTeam, _ := r.NewOperationContext(http.MethodGet, "/api/teams/{id}")
	getTeam.SetSummary("Get team")
	getTeam.AddRespStructure(game.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	getTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getTeam)

	// PUT /api/teams/{id}
	updateTeam, _ := r.NewOperationContext(http.MethodPut, "/api/teams/{id}")
	updateTeam.SetSummary("Update team")
	updateTeam.AddReqStructure(game.TeamPatch{})
	updateTeam.AddRespStructure(game.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	updateTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(updateTeam)

	// DELETE /api/teams/{id}
	deleteTeam, _ := r.NewOperationContext(http.MethodDelete, "/api/teams/{id}")
	deleteTeam.SetSummary("Delete team")
	deleteTeam.SetDescription("Removes the team. Node owner references are left dangling and resolve as unowned.")
	deleteTeam.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(deleteTeam)

	// GET /api/teams/export
	exportTeams, _ := r.NewOperationContext(http.MethodGet, "/api/teams/export")
	exportTeams.SetSummary("Export teams")
	exportTeams.AddRespStructure([]game.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(exportTeams)

	// POST /api/teams/import
	importTeams, _ := r.NewOperationContext(http.MethodPost, "/api/teams/import")
	importTeams.SetSummary("Import teams")
	importTeams.AddReqStructure([]game.Team{})
	importTeams.AddRespStructure(map[string]int{}, openapi.WithHTTPStatus(http.StatusOK))
	importTeams.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(importTeams)

	// GET /api/topology
	getTopology, _ := r.NewOperationContext(http.MethodGet, "/api/topology")
	getTopology.SetSummary("Route graph")
	getTopology.SetDescription("Returns the derived hub-and-spoke curve set for the network overlay.")
	getTopology.AddRespStructure(topology.Graph{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getTopology)

	// GET /api/settings
	getSettings, _ := r.NewOperationContext(http.MethodGet, "/api/settings")
	getSettings.SetSummary("Get settings")
	getSettings.AddRespStructure(game.Settings{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getSettings)

	// PUT /api/settings
	saveSettings, _ := r.NewOperationContext(http.MethodPut, "/api/settings")
	saveSettings.SetSummary("Save settings")
	saveSettings.AddReqStructure(game.Settings{})
	saveSettings.AddRespStructure(game.Settings{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(saveSettings)

	// GET /api/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/events")
	getEvents.SetSummary("Event stream")
	getEvents.SetDescription("Server-sent events mirroring the engine's notification bus.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(newOpenAPISpec())
	}
}
