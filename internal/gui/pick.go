package gui

import (
	"math"
	"strconv"

	"hexfield/internal/board"
)

// snapThreshold is the pixel radius within which a click snaps to the
// nearest node or edge midpoint.
const snapThreshold = 45.0

// PickNode snaps a screen position to a graph node, if one is within
// the snap threshold.
func PickNode(g *board.Graph, x, y float64) (int, bool) {
	node, dist := g.NearestNode(board.Point{X: x, Y: y})
	if node < 0 || dist > snapThreshold {
		return -1, false
	}
	return node, true
}

// PickEdge snaps a screen position to an edge midpoint, if one is
// within the snap threshold.
func PickEdge(g *board.Graph, x, y float64) (int, bool) {
	edge, dist := g.NearestEdge(board.Point{X: x, Y: y})
	if edge < 0 || dist > snapThreshold {
		return -1, false
	}
	return edge, true
}

// boardIndex parses a typed board index and checks it against the
// limit for the command's target kind (node count for settlements and
// cities, edge count for roads).
func boardIndex(arg string, limit int) (int, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || n >= limit {
		return -1, false
	}
	return n, true
}

// hexOutline returns the six corner points of a tile, matching the
// corner placement the board graph is built from.
func hexOutline(center board.Point, radius float64) [6]board.Point {
	var pts [6]board.Point
	for i := 0; i < 6; i++ {
		angle := math.Pi / 180 * float64(60*i-30)
		pts[i] = board.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return pts
}
