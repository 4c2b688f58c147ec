package game

// Difficulty rates how hard a node is to capture.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "EASY"
	DifficultyMedium  Difficulty = "MEDIUM"
	DifficultyHard    Difficulty = "HARD"
	DifficultyExtreme Difficulty = "EXTREME"
)

var difficulties = []Difficulty{
	DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme,
}

// Node is a capturable geographic point.
//
// Owner is a back-reference to a team id, nil while unowned. The
// referenced team existed at capture time but may since have been
// deleted; readers treat a dangling owner as unowned.
type Node struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	Owner       *int64     `json:"owner"`
	Difficulty  Difficulty `json:"difficulty"`
	Points      int        `json:"points"`
	ConnectedTo *int64     `json:"connectedTo,omitempty"`
}

// NodeDraft carries the caller-supplied attributes for a new node.
// Zero-value Name, Difficulty and nil Points get schema defaults.
type NodeDraft struct {
	Name        string     `json:"name"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	Difficulty  Difficulty `json:"difficulty"`
	Points      *int       `json:"points"`
	ConnectedTo *int64     `json:"connectedTo"`
}

// NodePatch is a partial update; nil fields keep their prior value.
// ClearConnection removes the manual topology edge.
type NodePatch struct {
	Name            *string     `json:"name"`
	Lat             *float64    `json:"lat"`
	Lng             *float64    `json:"lng"`
	Owner           *int64      `json:"owner"`
	Difficulty      *Difficulty `json:"difficulty"`
	Points          *int        `json:"points"`
	ConnectedTo     *int64      `json:"connectedTo"`
	ClearConnection bool        `json:"clearConnection,omitempty"`
}

const (
	defaultNodeName   = "Unknown Node"
	defaultNodePoints = 100
)
