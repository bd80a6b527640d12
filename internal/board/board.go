// Package board generates the hex tile layout and derives the canonical
// settlement/road graph from it. Everything here is pure and deterministic
// given a seeded RNG; the session in internal/game owns the randomness.
package board

// Resource identifies what a tile yields.
type Resource string

const (
	Wood   Resource = "wood"
	Brick  Resource = "brick"
	Sheep  Resource = "sheep"
	Wheat  Resource = "wheat"
	Ore    Resource = "ore"
	Desert Resource = "desert"
)

// Resources lists the yielding resource types, excluding desert.
func Resources() []Resource {
	return []Resource{Wood, Brick, Sheep, Wheat, Ore}
}

// Point is a 2D position in board units (pixels in the default layout).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tile is one hex on the board. Number is 0 for the desert tile.
type Tile struct {
	Resource Resource `json:"resource"`
	Number   int      `json:"number,omitempty"`
	Center   Point    `json:"center"`
}

// Layout fixes the geometry shared by tile generation, graph building and
// rendering. Corner dedup depends on generation and graph build agreeing
// on radius and origin exactly.
type Layout struct {
	Radius  float64
	OriginX float64
	OriginY float64
}

// DefaultLayout matches a 1200x900 window with 70px hexes.
func DefaultLayout() Layout {
	return Layout{Radius: 70, OriginX: 600, OriginY: 450}
}
