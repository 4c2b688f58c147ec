// Package game owns the engine's domain state: the node and team
// collections, the capture protocol that transfers node ownership
// between teams, and the persisted visualization settings.
//
// Repositories are the only writers of their collections. Every
// mutation follows save-then-notify: the snapshot store is written
// first, then the matching event is published on the bus. A failed
// save is logged and does not block the in-memory mutation or the
// notification.
package game

import (
	"errors"
	"time"
)

// ErrNotFound is returned by mutations that target a missing entity id.
var ErrNotFound = errors.New("not found")

// ErrInvalidImport is returned when an import payload is not a JSON
// array of entity records. The collection is left untouched.
var ErrInvalidImport = errors.New("import payload must be a JSON array of records")

// Snapshot store keys, one per collection.
const (
	keyNodes    = "nodes"
	keyTeams    = "teams"
	keySettings = "settings"
)

// nowMilli is the id clock: entity ids are millisecond timestamps,
// bumped by the repos when two allocations land in the same tick.
func nowMilli() int64 {
	return time.Now().UnixMilli()
}
