package server

import (
	"net/http"

	"github.com/cybergis/ctfmap/internal/game"
)

func handleGetSettings(settings *game.SettingsRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, settings.Get())
	}
}

func handleSaveSettings(settings *game.SettingsRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Full replace: the settings form always submits every toggle.
		s := settings.Get()
		if err := readJSON(r, &s); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		settings.Save(r.Context(), s)
		writeJSON(w, http.StatusOK, s)
	}
}
