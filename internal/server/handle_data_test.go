package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postRaw(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportNodesIsDownloadable(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/nodes/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "nodes_backup.json") {
		t.Errorf("content-disposition = %q, want attachment filename", got)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("[")) {
		t.Error("export is not a JSON array")
	}
}

func TestImportNodesReplacesCollection(t *testing.T) {
	r, engine := testRouter(t)

	body := `[{"id": 1, "name": "Solo", "lat": 1, "lng": 2, "difficulty": "EASY", "points": 10}]`
	w := postRaw(t, r, "/api/nodes/import", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	resp := decode[map[string]int](t, w)
	if resp["imported"] != 1 {
		t.Errorf("imported = %d, want 1", resp["imported"])
	}
	if got := len(engine.Nodes.List()); got != 1 {
		t.Errorf("nodes after import = %d, want 1", got)
	}
}

func TestImportNodesRejectsNonArray(t *testing.T) {
	r, engine := testRouter(t)
	before := len(engine.Nodes.List())

	tests := []struct {
		name string
		body string
	}{
		{"object", `{"id": 1}`},
		{"null", `null`},
		{"string", `"nodes"`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRaw(t, r, "/api/nodes/import", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}

	if got := len(engine.Nodes.List()); got != before {
		t.Errorf("nodes after rejected imports = %d, want %d", got, before)
	}
}

func TestTeamsExportImportRoundTrip(t *testing.T) {
	r, engine := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/teams/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	exported := w.Body.String()

	// Wipe, then restore from the export.
	w = postRaw(t, r, "/api/teams/import", "[]")
	if w.Code != http.StatusOK {
		t.Fatalf("wipe status = %d", w.Code)
	}
	if engine.Teams.Count() != 0 {
		t.Fatalf("teams after wipe = %d", engine.Teams.Count())
	}

	w = postRaw(t, r, "/api/teams/import", exported)
	if w.Code != http.StatusOK {
		t.Fatalf("restore status = %d: %s", w.Code, w.Body.String())
	}
	if engine.Teams.Count() != 4 {
		t.Errorf("teams after restore = %d, want 4", engine.Teams.Count())
	}
}

func TestImportTeamsRejectsNonArray(t *testing.T) {
	r, engine := testRouter(t)

	w := postRaw(t, r, "/api/teams/import", `{"name": "Alpha"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if engine.Teams.Count() != 4 {
		t.Errorf("teams after rejected import = %d, want 4", engine.Teams.Count())
	}
}
