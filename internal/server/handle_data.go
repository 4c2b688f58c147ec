package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/cybergis/ctfmap/internal/game"
)

// Import/export move whole collections as JSON arrays, matching the
// backup file format: import is an all-or-nothing replace, export is
// indented and diff-friendly.

func handleExportNodes(nodes *game.NodeRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := nodes.ExportAll()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		writeExport(w, "nodes_backup.json", data)
	}
}

func handleImportNodes(nodes *game.NodeRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := readBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "reading request body failed")
			return
		}

		if err := nodes.ImportAll(r.Context(), data); err != nil {
			if errors.Is(err, game.ErrInvalidImport) {
				writeError(w, http.StatusBadRequest, "payload must be a JSON array of node records")
				return
			}
			writeError(w, http.StatusInternalServerError, "import failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"imported": len(nodes.List())})
	}
}

func handleExportTeams(teams *game.TeamRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := teams.ExportAll()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		writeExport(w, "teams_backup.json", data)
	}
}

func handleImportTeams(teams *game.TeamRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := readBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "reading request body failed")
			return
		}

		if err := teams.ImportAll(r.Context(), data); err != nil {
			if errors.Is(err, game.ErrInvalidImport) {
				writeError(w, http.StatusBadRequest, "payload must be a JSON array of team records")
				return
			}
			writeError(w, http.StatusInternalServerError, "import failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"imported": teams.Count()})
	}
}

func writeExport(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
