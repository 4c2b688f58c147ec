package server

import (
	"errors"
	"net/http"

	"github.com/cybergis/ctfmap/internal/game"
)

func handleListTeams(teams *game.TeamRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, teams.List())
	}
}

func handleGetTeam(teams *game.TeamRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid team id")
			return
		}

		tm, ok := teams.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		writeJSON(w, http.StatusOK, tm)
	}
}

func handleCreateTeam(teams *game.TeamRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft game.TeamDraft
		if err := readJSON(r, &draft); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if draft.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		if draft.Color == "" {
			writeError(w, http.StatusBadRequest, "color is required")
			return
		}

		tm := teams.Add(r.Context(), draft)
		writeJSON(w, http.StatusCreated, tm)
	}
}

func handleUpdateTeam(teams *game.TeamRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid team id")
			return
		}

		var patch game.TeamPatch
		if err := readJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if patch.NodesCaptured != nil && *patch.NodesCaptured < 0 {
			writeError(w, http.StatusBadRequest, "nodesCaptured must not be negative")
			return
		}

		tm, err := teams.Update(r.Context(), id, patch)
		if errors.Is(err, game.ErrNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "update failed")
			return
		}
		writeJSON(w, http.StatusOK, tm)
	}
}

func handleDeleteTeam(teams *game.TeamRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid team id")
			return
		}

		// Nodes owned by this team keep their owner id; readers resolve
		// the dangling reference as unowned.
		teams.Delete(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}
