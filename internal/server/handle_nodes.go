package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cybergis/ctfmap/internal/game"
)

// NodeResponse is a node plus its resolved owner. A dangling owner id
// (team since deleted) resolves to no owner.
type NodeResponse struct {
	game.Node
	OwnerTeam *game.Team `json:"ownerTeam,omitempty"`
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func validCoords(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func handleListNodes(nodes *game.NodeRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nodes.List())
	}
}

func handleGetNode(nodes *game.NodeRepo, teams *game.TeamRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid node id")
			return
		}

		n, ok := nodes.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "node not found")
			return
		}

		resp := NodeResponse{Node: n}
		if n.Owner != nil {
			if owner, ok := teams.Get(*n.Owner); ok {
				resp.OwnerTeam = &owner
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleCreateNode(nodes *game.NodeRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft game.NodeDraft
		if err := readJSON(r, &draft); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !validCoords(draft.Lat, draft.Lng) {
			writeError(w, http.StatusBadRequest, "lat must be -90..90 and lng -180..180")
			return
		}
		if draft.Points != nil && *draft.Points < 0 {
			writeError(w, http.StatusBadRequest, "points must not be negative")
			return
		}

		n := nodes.Add(r.Context(), draft)
		writeJSON(w, http.StatusCreated, n)
	}
}

func handleUpdateNode(nodes *game.NodeRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid node id")
			return
		}

		var patch game.NodePatch
		if err := readJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if patch.Lat != nil || patch.Lng != nil {
			lat, lng := 0.0, 0.0
			if patch.Lat != nil {
				lat = *patch.Lat
			}
			if patch.Lng != nil {
				lng = *patch.Lng
			}
			if !validCoords(lat, lng) {
				writeError(w, http.StatusBadRequest, "lat must be -90..90 and lng -180..180")
				return
			}
		}
		if patch.Points != nil && *patch.Points < 0 {
			writeError(w, http.StatusBadRequest, "points must not be negative")
			return
		}

		n, err := nodes.Update(r.Context(), id, patch)
		if errors.Is(err, game.ErrNotFound) {
			writeError(w, http.StatusNotFound, "node not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "update failed")
			return
		}
		writeJSON(w, http.StatusOK, n)
	}
}

func handleDeleteNode(nodes *game.NodeRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid node id")
			return
		}

		// Idempotent: deleting an absent id succeeds without an event.
		nodes.Delete(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}

// CaptureRequest names the capturing team.
type CaptureRequest struct {
	TeamID int64 `json:"teamId"`
}

func handleCaptureNode(nodes *game.NodeRepo, teams *game.TeamRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid node id")
			return
		}

		var req CaptureRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		// The protocol itself does not guard against missing teams;
		// this caller-facing layer does.
		if teams.Count() == 0 {
			writeError(w, http.StatusConflict, "no teams exist")
			return
		}
		if _, ok := teams.Get(req.TeamID); !ok {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}

		if err := nodes.CaptureNode(r.Context(), id, req.TeamID); err != nil {
			if errors.Is(err, game.ErrNotFound) {
				writeError(w, http.StatusNotFound, "node not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "capture failed")
			return
		}

		n, _ := nodes.Get(id)
		writeJSON(w, http.StatusOK, n)
	}
}
