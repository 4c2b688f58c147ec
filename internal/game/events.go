package game

import "github.com/cybergis/ctfmap/internal/event"

// Bus topics published by the engine. Each topic carries exactly one
// payload type, declared below it.
const (
	TopicNodeAdded     event.Topic = "node.added"
	TopicNodeUpdated   event.Topic = "node.updated"
	TopicNodeDeleted   event.Topic = "node.deleted"
	TopicNodeCaptured  event.Topic = "node.captured"
	TopicNodesReplaced event.Topic = "nodes.replaced"
	TopicTeamAdded     event.Topic = "team.added"
	TopicTeamUpdated   event.Topic = "team.updated"
	TopicTeamDeleted   event.Topic = "team.deleted"
	TopicTeamsReplaced event.Topic = "teams.replaced"
	TopicTeamsChanged  event.Topic = "teams.changed"
	TopicSettingsSaved event.Topic = "settings.saved"
)

// Topics lists every topic the engine publishes, in a stable order.
// Consumers that mirror the whole stream (the SSE feed) subscribe to
// each of these.
var Topics = []event.Topic{
	TopicNodeAdded,
	TopicNodeUpdated,
	TopicNodeDeleted,
	TopicNodeCaptured,
	TopicNodesReplaced,
	TopicTeamAdded,
	TopicTeamUpdated,
	TopicTeamDeleted,
	TopicTeamsReplaced,
	TopicTeamsChanged,
	TopicSettingsSaved,
}

type NodeAdded struct {
	Node Node `json:"node"`
}

func (NodeAdded) Topic() event.Topic { return TopicNodeAdded }

type NodeUpdated struct {
	Node Node `json:"node"`
}

func (NodeUpdated) Topic() event.Topic { return TopicNodeUpdated }

type NodeDeleted struct {
	ID int64 `json:"id"`
}

func (NodeDeleted) Topic() event.Topic { return TopicNodeDeleted }

// NodeCaptured is the transient capture record: the node after the
// ownership write, the new owner, and the previous owner if any.
type NodeCaptured struct {
	Node     Node   `json:"node"`
	TeamID   int64  `json:"teamId"`
	OldOwner *int64 `json:"oldOwner"`
}

func (NodeCaptured) Topic() event.Topic { return TopicNodeCaptured }

// NodesReplaced signals a bulk import replaced the whole collection.
type NodesReplaced struct {
	Count int `json:"count"`
}

func (NodesReplaced) Topic() event.Topic { return TopicNodesReplaced }

type TeamAdded struct {
	Team Team `json:"team"`
}

func (TeamAdded) Topic() event.Topic { return TopicTeamAdded }

type TeamUpdated struct {
	Team Team `json:"team"`
}

func (TeamUpdated) Topic() event.Topic { return TopicTeamUpdated }

type TeamDeleted struct {
	ID int64 `json:"id"`
}

func (TeamDeleted) Topic() event.Topic { return TopicTeamDeleted }

type TeamsReplaced struct {
	Count int `json:"count"`
}

func (TeamsReplaced) Topic() event.Topic { return TopicTeamsReplaced }

// TeamsChanged is the generic refresh signal published after capture
// bookkeeping touches scores; consumers re-pull team state.
type TeamsChanged struct{}

func (TeamsChanged) Topic() event.Topic { return TopicTeamsChanged }

type SettingsSaved struct {
	Settings Settings `json:"settings"`
}

func (SettingsSaved) Topic() event.Topic { return TopicSettingsSaved }
