package champion

import "riftwatch/pkg/models/image"

// Champion is a single catalog entry from the Data Dragon.
// The ID is the numeric champion key used by the match endpoints.
type Champion struct {
	ID      string      `json:"id"`
	NameKey string      `json:"nameKey"`
	Name    string      `json:"name"`
	Title   string      `json:"title"`
	Image   image.Image `json:"image"`
}
