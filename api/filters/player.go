package filters

import "strings"

// PlayerHandleBody is the JSON body shared by the history and player-stats
// endpoints. Both fields are required before any upstream call is issued.
type PlayerHandleBody struct {
	DisplayName   string `json:"displayName" binding:"required"`
	Discriminator string `json:"discriminator" binding:"required"`
}

// Valid reports whether the handle has content beyond whitespace.
func (b *PlayerHandleBody) Valid() bool {
	return strings.TrimSpace(b.DisplayName) != "" && strings.TrimSpace(b.Discriminator) != ""
}
