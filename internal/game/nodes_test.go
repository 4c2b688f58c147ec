package game_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/cybergis/ctfmap/internal/database"
	"github.com/cybergis/ctfmap/internal/event"
	"github.com/cybergis/ctfmap/internal/game"
	"github.com/cybergis/ctfmap/internal/migrations"
	"github.com/cybergis/ctfmap/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBlobs(t *testing.T) *storage.SQLiteBlobs {
	t.Helper()

	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return storage.NewSQLiteBlobs(db)
}

// emptyBlobs returns a store pre-seeded with empty collections so
// repos start blank instead of loading the default world.
func emptyBlobs(t *testing.T) *storage.SQLiteBlobs {
	t.Helper()
	blobs := testBlobs(t)
	ctx := context.Background()
	for _, key := range []string{"nodes", "teams"} {
		if err := blobs.Save(ctx, key, []byte(`[]`)); err != nil {
			t.Fatalf("seeding empty %s: %v", key, err)
		}
	}
	return blobs
}

// recordTopic subscribes to topic and returns the slice of events seen.
func recordTopic(bus *event.Bus, topic event.Topic) *[]event.Event {
	var seen []event.Event
	bus.Subscribe(topic, func(ctx context.Context, e event.Event) error {
		seen = append(seen, e)
		return nil
	})
	return &seen
}

func TestSeedOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	blobs := testBlobs(t)

	nodes := game.NewNodeRepo(ctx, testLogger(), bus, blobs)

	all := nodes.List()
	if len(all) != 197 {
		t.Fatalf("seeded %d nodes, want 197", len(all))
	}
	for _, n := range all {
		if n.Points < 100 || n.Points > 599 {
			t.Errorf("node %q points = %d, outside 100..599", n.Name, n.Points)
		}
		if n.Owner != nil {
			t.Errorf("node %q seeded with an owner", n.Name)
		}
	}

	// The roll happens once: a second repo over the same store must see
	// the identical snapshot, not a fresh roll.
	again := game.NewNodeRepo(ctx, testLogger(), bus, blobs)
	for i, n := range again.List() {
		if n != all[i] {
			t.Fatalf("reloaded node %d = %+v, want %+v", i, n, all[i])
		}
	}
}

func TestAddAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))
	added := recordTopic(bus, game.TopicNodeAdded)

	n := nodes.Add(ctx, game.NodeDraft{Lat: 10, Lng: 20})

	if n.Name != "Unknown Node" {
		t.Errorf("name = %q, want default", n.Name)
	}
	if n.Difficulty != game.DifficultyMedium {
		t.Errorf("difficulty = %q, want MEDIUM", n.Difficulty)
	}
	if n.Points != 100 {
		t.Errorf("points = %d, want 100", n.Points)
	}
	if n.Owner != nil {
		t.Error("new node must start unowned")
	}
	if len(*added) != 1 {
		t.Fatalf("NodeAdded events = %d, want 1", len(*added))
	}
	if got := (*added)[0].(game.NodeAdded).Node; got != n {
		t.Errorf("event payload = %+v, want %+v", got, n)
	}
}

func TestAddKeepsExplicitValues(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))

	zero := 0
	n := nodes.Add(ctx, game.NodeDraft{
		Name:       "Relay Nine",
		Difficulty: game.DifficultyExtreme,
		Points:     &zero,
	})

	if n.Name != "Relay Nine" || n.Difficulty != game.DifficultyExtreme {
		t.Errorf("explicit fields not kept: %+v", n)
	}
	if n.Points != 0 {
		t.Errorf("points = %d, want explicit 0", n.Points)
	}
}

func TestAddedIDsIncrease(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))

	var last int64
	for i := 0; i < 5; i++ {
		n := nodes.Add(ctx, game.NodeDraft{})
		if n.ID <= last {
			t.Fatalf("id %d not greater than previous %d", n.ID, last)
		}
		last = n.ID
	}
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))

	pts := 250
	n := nodes.Add(ctx, game.NodeDraft{Name: "Relay", Lat: 1, Lng: 2, Points: &pts})
	updated := recordTopic(bus, game.TopicNodeUpdated)

	name := "Relay Prime"
	got, err := nodes.Update(ctx, n.ID, game.NodePatch{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Name != "Relay Prime" {
		t.Errorf("name = %q, want Relay Prime", got.Name)
	}
	if got.Lat != 1 || got.Lng != 2 || got.Points != 250 {
		t.Errorf("unspecified fields changed: %+v", got)
	}
	if len(*updated) != 1 {
		t.Fatalf("NodeUpdated events = %d, want 1", len(*updated))
	}
}

func TestUpdateClearConnection(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))

	target := nodes.Add(ctx, game.NodeDraft{Name: "Target"})
	n := nodes.Add(ctx, game.NodeDraft{Name: "Source", ConnectedTo: &target.ID})

	got, err := nodes.Update(ctx, n.ID, game.NodePatch{ClearConnection: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ConnectedTo != nil {
		t.Errorf("connectedTo = %v, want cleared", *got.ConnectedTo)
	}
}

func TestUpdateUnknownNode(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))
	updated := recordTopic(bus, game.TopicNodeUpdated)

	name := "ghost"
	_, err := nodes.Update(ctx, 404, game.NodePatch{Name: &name})
	if !errors.Is(err, game.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(*updated) != 0 {
		t.Fatalf("NodeUpdated events = %d, want 0", len(*updated))
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))
	deleted := recordTopic(bus, game.TopicNodeDeleted)

	n := nodes.Add(ctx, game.NodeDraft{Name: "Relay"})

	nodes.Delete(ctx, n.ID)
	if _, ok := nodes.Get(n.ID); ok {
		t.Fatal("node still present after delete")
	}
	if len(*deleted) != 1 {
		t.Fatalf("NodeDeleted events = %d, want 1", len(*deleted))
	}

	// Second delete of the same id: no-op, no event.
	nodes.Delete(ctx, n.ID)
	if len(*deleted) != 1 {
		t.Fatalf("NodeDeleted events after repeat = %d, want 1", len(*deleted))
	}
}

func TestImportReplacesCollection(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))
	replaced := recordTopic(bus, game.TopicNodesReplaced)

	nodes.Add(ctx, game.NodeDraft{Name: "Old Relay"})

	payload := []byte(`[
  {"id": 1, "name": "Imported", "lat": 5, "lng": 6, "owner": null, "difficulty": "HARD", "points": 300}
]`)
	if err := nodes.ImportAll(ctx, payload); err != nil {
		t.Fatalf("import: %v", err)
	}

	all := nodes.List()
	if len(all) != 1 || all[0].Name != "Imported" {
		t.Fatalf("collection after import = %+v", all)
	}
	if len(*replaced) != 1 {
		t.Fatalf("NodesReplaced events = %d, want 1", len(*replaced))
	}
	if got := (*replaced)[0].(game.NodesReplaced).Count; got != 1 {
		t.Errorf("replaced count = %d, want 1", got)
	}
}

func TestImportRejectsNonArray(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))

	nodes.Add(ctx, game.NodeDraft{Name: "Keep Me"})
	before, err := nodes.ExportAll()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	for _, payload := range []string{`{"name":"x"}`, `null`, `"str"`, ``} {
		if err := nodes.ImportAll(ctx, []byte(payload)); !errors.Is(err, game.ErrInvalidImport) {
			t.Errorf("import %q: err = %v, want ErrInvalidImport", payload, err)
		}
	}

	after, err := nodes.ExportAll()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("rejected import changed the exported collection")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))

	pts := 450
	nodes.Add(ctx, game.NodeDraft{Name: "Relay A", Lat: 1, Lng: 2, Points: &pts})
	nodes.Add(ctx, game.NodeDraft{Name: "Relay B", Lat: 3, Lng: 4})

	exported, err := nodes.ExportAll()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	other := game.NewNodeRepo(ctx, testLogger(), bus, emptyBlobs(t))
	if err := other.ImportAll(ctx, exported); err != nil {
		t.Fatalf("import: %v", err)
	}

	reExported, err := other.ExportAll()
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if !bytes.Equal(exported, reExported) {
		t.Fatalf("round trip mismatch:\n%s\nvs\n%s", exported, reExported)
	}
}

// brokenBlobs seeds empty on load and fails every save.
type brokenBlobs struct{}

func (brokenBlobs) Get(ctx context.Context, key string) ([]byte, error) {
	return []byte(`[]`), nil
}

func (brokenBlobs) Save(ctx context.Context, key string, value []byte) error {
	return errors.New("disk on fire")
}

func (brokenBlobs) Clear(ctx context.Context) error { return nil }

func TestStorageFailureDoesNotBlockMutation(t *testing.T) {
	ctx := context.Background()
	bus := event.NewBus(testLogger())
	nodes := game.NewNodeRepo(ctx, testLogger(), bus, brokenBlobs{})
	added := recordTopic(bus, game.TopicNodeAdded)

	n := nodes.Add(ctx, game.NodeDraft{Name: "Relay"})

	if _, ok := nodes.Get(n.ID); !ok {
		t.Fatal("in-memory mutation lost on storage failure")
	}
	if len(*added) != 1 {
		t.Fatalf("NodeAdded events = %d, want 1 despite failed persist", len(*added))
	}
}
