package image

// Image of a given asset on the Data Dragon.
type Image struct {
	Full   string `json:"full"`
	Sprite string `json:"sprite"`
	Group  string `json:"group"`
}
