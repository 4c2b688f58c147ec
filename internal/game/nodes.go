package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cybergis/ctfmap/internal/event"
	"github.com/cybergis/ctfmap/internal/storage"
)

// NodeRepo owns the node collection. All reads return copies; the
// collection is only mutated through the repo's own operations.
type NodeRepo struct {
	logger *slog.Logger
	bus    *event.Bus
	blobs  storage.Blobs

	mu     sync.Mutex
	nodes  []Node
	lastID int64
}

// NewNodeRepo loads the node snapshot, seeding the default world map
// when the store has none. A storage read failure is logged and the
// repo starts from the seed without overwriting the stored snapshot.
func NewNodeRepo(ctx context.Context, logger *slog.Logger, bus *event.Bus, blobs storage.Blobs) *NodeRepo {
	r := &NodeRepo{logger: logger, bus: bus, blobs: blobs}

	data, err := blobs.Get(ctx, keyNodes)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		r.nodes = defaultNodes()
		r.save(ctx)
	case err != nil:
		logger.Error("loading node snapshot", "error", err)
		r.nodes = defaultNodes()
	default:
		if err := json.Unmarshal(data, &r.nodes); err != nil {
			logger.Error("decoding node snapshot", "error", err)
			r.nodes = defaultNodes()
		}
	}
	if r.nodes == nil {
		r.nodes = []Node{}
	}
	for _, n := range r.nodes {
		if n.ID > r.lastID {
			r.lastID = n.ID
		}
	}
	return r
}

// List returns the nodes in insertion order.
func (r *NodeRepo) List() []Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Node, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// Get returns the node with the given id, reporting whether it exists.
func (r *NodeRepo) Get(id int64) (Node, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.index(id); i >= 0 {
		return r.nodes[i], true
	}
	return Node{}, false
}

// Add creates a node from the draft, filling schema defaults for
// omitted fields, and publishes NodeAdded.
func (r *NodeRepo) Add(ctx context.Context, d NodeDraft) Node {
	n := Node{
		Name:        d.Name,
		Lat:         d.Lat,
		Lng:         d.Lng,
		Difficulty:  d.Difficulty,
		Points:      defaultNodePoints,
		ConnectedTo: d.ConnectedTo,
	}
	if n.Name == "" {
		n.Name = defaultNodeName
	}
	if n.Difficulty == "" {
		n.Difficulty = DifficultyMedium
	}
	if d.Points != nil {
		n.Points = *d.Points
	}

	r.mu.Lock()
	n.ID = r.nextID()
	r.nodes = append(r.nodes, n)
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, NodeAdded{Node: n})
	return n
}

// Update merges the provided fields into the node and publishes
// NodeUpdated. Returns ErrNotFound if the id is unknown.
func (r *NodeRepo) Update(ctx context.Context, id int64, p NodePatch) (Node, error) {
	r.mu.Lock()
	i := r.index(id)
	if i < 0 {
		r.mu.Unlock()
		return Node{}, fmt.Errorf("updating node %d: %w", id, ErrNotFound)
	}

	n := &r.nodes[i]
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Lat != nil {
		n.Lat = *p.Lat
	}
	if p.Lng != nil {
		n.Lng = *p.Lng
	}
	if p.Owner != nil {
		owner := *p.Owner
		n.Owner = &owner
	}
	if p.Difficulty != nil {
		n.Difficulty = *p.Difficulty
	}
	if p.Points != nil {
		n.Points = *p.Points
	}
	if p.ClearConnection {
		n.ConnectedTo = nil
	} else if p.ConnectedTo != nil {
		target := *p.ConnectedTo
		n.ConnectedTo = &target
	}

	updated := *n
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, NodeUpdated{Node: updated})
	return updated, nil
}

// Delete removes the node if present. Deleting an unknown id is a
// no-op: nothing is persisted and no event is published.
func (r *NodeRepo) Delete(ctx context.Context, id int64) {
	r.mu.Lock()
	i := r.index(id)
	if i < 0 {
		r.mu.Unlock()
		return
	}
	r.nodes = append(r.nodes[:i], r.nodes[i+1:]...)
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, NodeDeleted{ID: id})
}

// CaptureNode transfers ownership of the node to the capturing team
// and publishes a single NodeCaptured event. Score bookkeeping happens
// in the team repo's listener, so the capture is fully applied only
// once both NodeCaptured and the follow-up TeamsChanged have fired.
//
// An unknown node id is a no-op: logged, no event, ErrNotFound
// returned for caller feedback.
func (r *NodeRepo) CaptureNode(ctx context.Context, nodeID, teamID int64) error {
	r.mu.Lock()
	i := r.index(nodeID)
	if i < 0 {
		r.mu.Unlock()
		r.logger.Warn("capture of unknown node", "node_id", nodeID, "team_id", teamID)
		return fmt.Errorf("capturing node %d: %w", nodeID, ErrNotFound)
	}

	oldOwner := r.nodes[i].Owner
	owner := teamID
	r.nodes[i].Owner = &owner
	captured := r.nodes[i]
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, NodeCaptured{Node: captured, TeamID: teamID, OldOwner: oldOwner})
	return nil
}

// ImportAll replaces the whole collection with the decoded payload.
// The payload must be a JSON array of node records; anything else is
// rejected with ErrInvalidImport and the collection is untouched.
func (r *NodeRepo) ImportAll(ctx context.Context, data []byte) error {
	incoming, err := decodeImport[Node](data)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.nodes = incoming
	r.lastID = 0
	for _, n := range r.nodes {
		if n.ID > r.lastID {
			r.lastID = n.ID
		}
	}
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, NodesReplaced{Count: len(incoming)})
	return nil
}

// ExportAll returns the collection as indented JSON, in insertion
// order, suitable for backup files and diffing.
func (r *NodeRepo) ExportAll() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return json.MarshalIndent(r.nodes, "", "  ")
}

// nextID derives ids from the wall clock, bumped past the last issued
// id so adds within the same millisecond stay unique and increasing.
// Callers hold r.mu.
func (r *NodeRepo) nextID() int64 {
	id := nowMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// index returns the position of id in the collection, -1 if absent.
// Callers hold r.mu.
func (r *NodeRepo) index(id int64) int {
	for i, n := range r.nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// save persists the full collection. Failures are logged and do not
// block the in-memory mutation or the notification. Callers hold r.mu.
func (r *NodeRepo) save(ctx context.Context) {
	data, err := json.Marshal(r.nodes)
	if err != nil {
		r.logger.Error("encoding node snapshot", "error", err)
		return
	}
	if err := r.blobs.Save(ctx, keyNodes, data); err != nil {
		r.logger.Error("persisting node snapshot", "error", err)
	}
}
