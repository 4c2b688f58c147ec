package game

// Team is a competing entity accumulating score and capture count.
// IP and Location are display metadata with no domain meaning.
type Team struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	Score         int    `json:"score"`
	NodesCaptured int    `json:"nodesCaptured"`
	IP            string `json:"ip"`
	Location      string `json:"location"`
}

// TeamDraft carries the caller-supplied attributes for a new team.
type TeamDraft struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	IP       string `json:"ip"`
	Location string `json:"location"`
}

// TeamPatch is a partial update; nil fields keep their prior value.
type TeamPatch struct {
	Name          *string `json:"name"`
	Color         *string `json:"color"`
	Score         *int    `json:"score"`
	NodesCaptured *int    `json:"nodesCaptured"`
	IP            *string `json:"ip"`
	Location      *string `json:"location"`
}

const defaultTeamLocation = "Unknown Location"
