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

// TeamRepo owns the team collection and the capture bookkeeping: it
// subscribes to NodeCaptured and adjusts scores when ownership of a
// node changes hands.
type TeamRepo struct {
	logger *slog.Logger
	bus    *event.Bus
	blobs  storage.Blobs

	mu     sync.Mutex
	teams  []Team
	lastID int64
}

// NewTeamRepo loads the team snapshot, seeding the default roster when
// the store has none, and registers the capture listener.
func NewTeamRepo(ctx context.Context, logger *slog.Logger, bus *event.Bus, blobs storage.Blobs) *TeamRepo {
	r := &TeamRepo{logger: logger, bus: bus, blobs: blobs}

	data, err := blobs.Get(ctx, keyTeams)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		r.teams = defaultTeams()
		r.save(ctx)
	case err != nil:
		logger.Error("loading team snapshot", "error", err)
		r.teams = defaultTeams()
	default:
		if err := json.Unmarshal(data, &r.teams); err != nil {
			logger.Error("decoding team snapshot", "error", err)
			r.teams = defaultTeams()
		}
	}
	if r.teams == nil {
		r.teams = []Team{}
	}
	for _, t := range r.teams {
		if t.ID > r.lastID {
			r.lastID = t.ID
		}
	}

	bus.Subscribe(TopicNodeCaptured, r.onNodeCaptured)
	return r
}

// List returns the teams in insertion order.
func (r *TeamRepo) List() []Team {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Team, len(r.teams))
	copy(out, r.teams)
	return out
}

// Get returns the team with the given id, reporting whether it exists.
// A missing team is a legitimate outcome on read paths: node owner
// references may dangle after a team delete and are then rendered as
// unowned.
func (r *TeamRepo) Get(id int64) (Team, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.index(id); i >= 0 {
		return r.teams[i], true
	}
	return Team{}, false
}

// Count returns the number of teams.
func (r *TeamRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.teams)
}

// Add creates a team from the draft and publishes TeamAdded. New teams
// start with zero score and captures; a missing ip label gets the next
// address in the default range.
func (r *TeamRepo) Add(ctx context.Context, d TeamDraft) Team {
	t := Team{
		Name:     d.Name,
		Color:    d.Color,
		IP:       d.IP,
		Location: d.Location,
	}
	if t.Location == "" {
		t.Location = defaultTeamLocation
	}

	r.mu.Lock()
	if t.IP == "" {
		t.IP = fmt.Sprintf("192.168.1.%d", 100+len(r.teams)+1)
	}
	t.ID = r.nextID()
	r.teams = append(r.teams, t)
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, TeamAdded{Team: t})
	return t
}

// Update merges the provided fields into the team and publishes
// TeamUpdated. Returns ErrNotFound if the id is unknown.
func (r *TeamRepo) Update(ctx context.Context, id int64, p TeamPatch) (Team, error) {
	r.mu.Lock()
	i := r.index(id)
	if i < 0 {
		r.mu.Unlock()
		return Team{}, fmt.Errorf("updating team %d: %w", id, ErrNotFound)
	}

	t := &r.teams[i]
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.Score != nil {
		t.Score = *p.Score
	}
	if p.NodesCaptured != nil {
		t.NodesCaptured = *p.NodesCaptured
	}
	if p.IP != nil {
		t.IP = *p.IP
	}
	if p.Location != nil {
		t.Location = *p.Location
	}

	updated := *t
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, TeamUpdated{Team: updated})
	return updated, nil
}

// Delete removes the team if present. Deleting an unknown id is a
// no-op. Nodes still referencing the deleted team keep their dangling
// owner id; readers resolve it as unowned.
func (r *TeamRepo) Delete(ctx context.Context, id int64) {
	r.mu.Lock()
	i := r.index(id)
	if i < 0 {
		r.mu.Unlock()
		return
	}
	r.teams = append(r.teams[:i], r.teams[i+1:]...)
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, TeamDeleted{ID: id})
}

// ImportAll replaces the whole collection with the decoded payload,
// rejecting anything that is not a JSON array of team records.
func (r *TeamRepo) ImportAll(ctx context.Context, data []byte) error {
	incoming, err := decodeImport[Team](data)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.teams = incoming
	r.lastID = 0
	for _, t := range r.teams {
		if t.ID > r.lastID {
			r.lastID = t.ID
		}
	}
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, TeamsReplaced{Count: len(incoming)})
	return nil
}

// ExportAll returns the collection as indented JSON in insertion order.
func (r *TeamRepo) ExportAll() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return json.MarshalIndent(r.teams, "", "  ")
}

// onNodeCaptured applies the scoring side of a capture: the new owner
// gains the node's points and one capture; a previous owner loses one
// capture, never going below zero, and keeps points already scored.
// Runs for every capture, including recapture by the current owner,
// which re-awards the same team.
func (r *TeamRepo) onNodeCaptured(ctx context.Context, e event.Event) error {
	captured, ok := e.(NodeCaptured)
	if !ok {
		return fmt.Errorf("unexpected payload %T on %s", e, TopicNodeCaptured)
	}

	r.mu.Lock()
	if i := r.index(captured.TeamID); i >= 0 {
		r.teams[i].NodesCaptured++
		r.teams[i].Score += captured.Node.Points
	}
	if captured.OldOwner != nil {
		if i := r.index(*captured.OldOwner); i >= 0 && r.teams[i].NodesCaptured > 0 {
			r.teams[i].NodesCaptured--
		}
	}
	r.save(ctx)
	r.mu.Unlock()

	r.bus.Publish(ctx, TeamsChanged{})
	return nil
}

// nextID mirrors NodeRepo.nextID. Callers hold r.mu.
func (r *TeamRepo) nextID() int64 {
	id := nowMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *TeamRepo) index(id int64) int {
	for i, t := range r.teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (r *TeamRepo) save(ctx context.Context) {
	data, err := json.Marshal(r.teams)
	if err != nil {
		r.logger.Error("encoding team snapshot", "error", err)
		return
	}
	if err := r.blobs.Save(ctx, keyTeams, data); err != nil {
		r.logger.Error("persisting team snapshot", "error", err)
	}
}
