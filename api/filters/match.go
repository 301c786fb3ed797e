package filters

import "strings"

// MatchDetailsBody is the JSON body for the match-details endpoint.
// The player id is the opaque identifier returned in participant views.
type MatchDetailsBody struct {
	MatchId  string `json:"matchId" binding:"required"`
	PlayerId string `json:"playerId" binding:"required"`
}

// Valid reports whether both ids have content beyond whitespace.
func (b *MatchDetailsBody) Valid() bool {
	return strings.TrimSpace(b.MatchId) != "" && strings.TrimSpace(b.PlayerId) != ""
}
