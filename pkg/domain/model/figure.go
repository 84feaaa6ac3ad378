package model

// Figure canvas and sampling bounds. Coordinates are sampled from a bounded
// integer grid to keep the chance of overlapping labels low.
const (
	FigureWidth      = 760
	FigureHeight     = 760
	CoordinateDomain = 500
)

// Point is a single labeled position in the word cloud
type Point struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Label     string `json:"label"`
	HoverText string `json:"hoverText"`
	Style     Style  `json:"style"`
}

// Figure is a render-ready word cloud descriptor. It is regenerated
// wholesale on every count change; nothing is persisted between calls.
type Figure struct {
	ID     string  `json:"id"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Domain int     `json:"domain"`
	Points []Point `json:"points"`
}
