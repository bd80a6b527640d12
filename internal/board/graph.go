package board

import (
	"math"
	"sort"
)

// dedupDistance collapses coincident hex corners (and edge midpoints)
// from neighboring tiles into one graph element. Corners of adjacent
// tiles land within float noise of each other, never within 1 unit of a
// distinct corner at any sane radius.
const dedupDistance = 1.0

// Edge is a road location. A and B are the endpoint node indices
// (A < B); Pos is their midpoint.
type Edge struct {
	A   int   `json:"a"`
	B   int   `json:"b"`
	Pos Point `json:"pos"`
}

// Graph is the canonical node/edge graph derived from a tile set. Node
// and edge indices are the public identifiers used by ownership and hit
// testing, so their ordering is canonicalized: sorted by vertical then
// horizontal position, rounded to the nearest unit so float noise cannot
// reorder equal rows.
type Graph struct {
	Nodes     []Point
	Edges     []Edge
	Adjacency [][]int // per node, sorted neighbor node indices
	TileNodes [][]int // per tile, its 6 corner node indices
	nodeTiles [][]int // inverse of TileNodes
}

func hexCorner(center Point, radius float64, i int) Point {
	angle := float64(60*i-30) * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// BuildGraph computes the six corners of every tile, deduplicates them
// into nodes, registers one edge per unique unordered corner pair and
// canonicalizes the resulting indices.
func BuildGraph(tiles []Tile, layout Layout) *Graph {
	g := &Graph{}

	getOrCreateNode := func(p Point) int {
		for i, existing := range g.Nodes {
			if dist(p, existing) < dedupDistance {
				return i
			}
		}
		g.Nodes = append(g.Nodes, p)
		return len(g.Nodes) - 1
	}

	adjacency := map[int]map[int]bool{}
	addAdjacent := func(a, b int) {
		if adjacency[a] == nil {
			adjacency[a] = map[int]bool{}
		}
		adjacency[a][b] = true
	}
	seenEdges := map[[2]int]bool{}

	g.TileNodes = make([][]int, len(tiles))
	for t, tile := range tiles {
		corners := make([]int, 6)
		for i := 0; i < 6; i++ {
			corners[i] = getOrCreateNode(hexCorner(tile.Center, layout.Radius, i))
		}
		g.TileNodes[t] = corners

		for i := 0; i < 6; i++ {
			a := corners[i]
			b := corners[(i+1)%6]
			addAdjacent(a, b)
			addAdjacent(b, a)

			key := [2]int{min(a, b), max(a, b)}
			if seenEdges[key] {
				continue
			}
			seenEdges[key] = true
			g.Edges = append(g.Edges, Edge{
				A: key[0],
				B: key[1],
				Pos: Point{
					X: (g.Nodes[a].X + g.Nodes[b].X) / 2,
					Y: (g.Nodes[a].Y + g.Nodes[b].Y) / 2,
				},
			})
		}
	}

	g.canonicalize(adjacency)
	g.indexNodeTiles()
	return g
}

// canonicalize sorts nodes top-to-bottom then left-to-right and remaps
// every index reference through the resulting permutation, then gives
// edges the same ordering.
func (g *Graph) canonicalize(adjacency map[int]map[int]bool) {
	order := make([]int, len(g.Nodes))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := g.Nodes[order[i]], g.Nodes[order[j]]
		ay, by := math.Round(a.Y), math.Round(b.Y)
		if ay != by {
			return ay < by
		}
		return math.Round(a.X) < math.Round(b.X)
	})

	oldToNew := make([]int, len(g.Nodes))
	sortedNodes := make([]Point, len(g.Nodes))
	for newIdx, oldIdx := range order {
		oldToNew[oldIdx] = newIdx
		sortedNodes[newIdx] = g.Nodes[oldIdx]
	}
	g.Nodes = sortedNodes

	g.Adjacency = make([][]int, len(g.Nodes))
	for oldIdx, neighbors := range adjacency {
		mapped := make([]int, 0, len(neighbors))
		for n := range neighbors {
			mapped = append(mapped, oldToNew[n])
		}
		sort.Ints(mapped)
		g.Adjacency[oldToNew[oldIdx]] = mapped
	}

	for i := range g.Edges {
		a := oldToNew[g.Edges[i].A]
		b := oldToNew[g.Edges[i].B]
		g.Edges[i].A = min(a, b)
		g.Edges[i].B = max(a, b)
	}
	sort.Slice(g.Edges, func(i, j int) bool {
		a, b := g.Edges[i].Pos, g.Edges[j].Pos
		ay, by := math.Round(a.Y), math.Round(b.Y)
		if ay != by {
			return ay < by
		}
		return math.Round(a.X) < math.Round(b.X)
	})

	for t := range g.TileNodes {
		for i := range g.TileNodes[t] {
			g.TileNodes[t][i] = oldToNew[g.TileNodes[t][i]]
		}
	}
}

func (g *Graph) indexNodeTiles() {
	g.nodeTiles = make([][]int, len(g.Nodes))
	for t, corners := range g.TileNodes {
		for _, n := range corners {
			g.nodeTiles[n] = append(g.nodeTiles[n], t)
		}
	}
}

// NodeTiles returns the indices of the tiles touching a node (1 to 3).
func (g *Graph) NodeTiles(node int) []int {
	return g.nodeTiles[node]
}

// Adjacent reports whether two nodes share a graph edge.
func (g *Graph) Adjacent(a, b int) bool {
	for _, n := range g.Adjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}

// EdgesTouching returns the indices of edges with node as an endpoint.
func (g *Graph) EdgesTouching(node int) []int {
	out := make([]int, 0, 3)
	for i, e := range g.Edges {
		if e.A == node || e.B == node {
			out = append(out, i)
		}
	}
	return out
}

// NearestNode returns the node index closest to p and its distance.
// Snapping thresholds are the caller's concern.
func (g *Graph) NearestNode(p Point) (int, float64) {
	return nearest(p, len(g.Nodes), func(i int) Point { return g.Nodes[i] })
}

// NearestEdge returns the edge index closest to p and its distance.
func (g *Graph) NearestEdge(p Point) (int, float64) {
	return nearest(p, len(g.Edges), func(i int) Point { return g.Edges[i].Pos })
}

func nearest(p Point, n int, at func(int) Point) (int, float64) {
	best := -1
	bestDist := math.MaxFloat64
	for i := 0; i < n; i++ {
		if d := dist(p, at(i)); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}
