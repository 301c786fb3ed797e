package dto

// MatchHistory is the response for the history endpoint.
type MatchHistory struct {
	Matches []*MatchSummary `json:"matches"`
}

// MatchSummary is a compact view of a single match for the history list.
type MatchSummary struct {
	MatchId         string             `json:"matchId"`
	Outcome         string             `json:"outcome"`
	ChampionPlayed  string             `json:"championPlayed"`
	Mode            string             `json:"mode"`
	Duration        string             `json:"duration"`
	DurationSeconds int                `json:"durationSeconds"`
	Recency         string             `json:"recency"`
	TeamA           []*ParticipantView `json:"teamA"`
	TeamB           []*ParticipantView `json:"teamB"`
}

// Outcome values for a match summary.
const (
	OutcomeWin    = "win"
	OutcomeLoss   = "loss"
	OutcomeRemake = "remake"
)

// ParticipantView is one participant inside a match summary.
type ParticipantView struct {
	DisplayName        string `json:"displayName"`
	ChampionName       string `json:"championName"`
	Side               string `json:"side"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	Role               string `json:"role"`
	IsRequestingPlayer bool   `json:"isRequestingPlayer"`
	PlayerId           string `json:"playerId,omitempty"`
}

// Side labels for the two team ids.
const (
	SideBlue = "blue"
	SideRed  = "red"
)
