package gui

import (
	"math"
	"testing"

	"hexfield/internal/board"
)

func testGraph(t *testing.T) *board.Graph {
	t.Helper()
	layout := board.DefaultLayout()
	tiles := board.Generate(layout, board.SeededRNG(7))
	return board.BuildGraph(tiles, layout)
}

func TestPickNodeSnapsWithinThreshold(t *testing.T) {
	g := testGraph(t)
	target := g.Nodes[10]

	node, ok := PickNode(g, target.X+5, target.Y-5)
	if !ok || node != 10 {
		t.Fatalf("near click picked node %d ok=%v, want 10", node, ok)
	}

	if _, ok := PickNode(g, target.X+2000, target.Y); ok {
		t.Fatalf("far click should not snap")
	}
}

func TestPickEdgeSnapsToMidpoint(t *testing.T) {
	g := testGraph(t)
	mid := g.Edges[20].Pos

	edge, ok := PickEdge(g, mid.X+3, mid.Y+3)
	if !ok || edge != 20 {
		t.Fatalf("near click picked edge %d ok=%v, want 20", edge, ok)
	}

	if _, ok := PickEdge(g, -5000, -5000); ok {
		t.Fatalf("far click should not snap")
	}
}

func TestBoardIndexRespectsPerKindLimit(t *testing.T) {
	g := testGraph(t)
	nodes, edges := len(g.Nodes), len(g.Edges)

	// Index 60 names a valid edge but no node, so a settlement or city
	// command must reject it while a road command accepts it.
	if _, ok := boardIndex("60", nodes); ok {
		t.Errorf("index 60 accepted against %d nodes", nodes)
	}
	if n, ok := boardIndex("60", edges); !ok || n != 60 {
		t.Errorf("index 60 against %d edges: got %d ok=%v", edges, n, ok)
	}

	if n, ok := boardIndex("0", nodes); !ok || n != 0 {
		t.Errorf("index 0 rejected: got %d ok=%v", n, ok)
	}
	for _, arg := range []string{"-1", "72", "abc", "1.5", ""} {
		if _, ok := boardIndex(arg, edges); ok {
			t.Errorf("index %q accepted against %d edges", arg, edges)
		}
	}
}

func TestHexOutlineCornersLieOnTheRadius(t *testing.T) {
	center := board.Point{X: 600, Y: 450}
	pts := hexOutline(center, 70)

	for i, p := range pts {
		dx, dy := p.X-center.X, p.Y-center.Y
		dist := math.Hypot(dx, dy)
		if math.Abs(dist-70) > 1e-9 {
			t.Errorf("corner %d at distance %.6f, want 70", i, dist)
		}
	}

	// Corners 2 and 5 sit directly below and above the center.
	if math.Abs(pts[2].X-center.X) > 1e-6 || math.Abs(pts[5].X-center.X) > 1e-6 {
		t.Errorf("corners 2/5 should be vertical from center: %.3f, %.3f", pts[2].X, pts[5].X)
	}
}
