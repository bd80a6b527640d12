package game

import "hexfield/internal/board"

// BuildKind names something a player can pay for.
type BuildKind string

const (
	BuildRoad       BuildKind = "road"
	BuildSettlement BuildKind = "settlement"
	BuildCity       BuildKind = "city"
	BuildDevCard    BuildKind = "dev_card"
)

var buildCosts = map[BuildKind]map[board.Resource]int{
	BuildRoad:       {board.Wood: 1, board.Brick: 1},
	BuildSettlement: {board.Wood: 1, board.Brick: 1, board.Sheep: 1, board.Wheat: 1},
	BuildCity:       {board.Ore: 3, board.Wheat: 2},
	BuildDevCard:    {board.Ore: 1, board.Sheep: 1, board.Wheat: 1},
}

// Cost returns a copy of the fixed resource cost for a build kind.
func Cost(kind BuildKind) map[board.Resource]int {
	out := make(map[board.Resource]int, len(buildCosts[kind]))
	for res, n := range buildCosts[kind] {
		out[res] = n
	}
	return out
}

// Afford reports whether the player can pay for a build kind.
func Afford(p *Player, kind BuildKind) bool {
	for res, cost := range buildCosts[kind] {
		if p.Resources[res] < cost {
			return false
		}
	}
	return true
}

// pay deducts the cost unchecked; callers must gate it behind Afford.
func pay(p *Player, kind BuildKind) {
	for res, cost := range buildCosts[kind] {
		p.Resources[res] -= cost
	}
}

// canPlaceSettlement enforces the distance rule: the node must be
// unowned and no adjacent node may hold any player's settlement or
// city. Identical during setup and main phases.
func canPlaceSettlement(g *board.Graph, owns *Ownership, node int) bool {
	if _, taken := owns.NodeAt(node); taken {
		return false
	}
	for _, neighbor := range g.Adjacency[node] {
		if _, taken := owns.NodeAt(neighbor); taken {
			return false
		}
	}
	return true
}

// canPlaceRoad requires the edge to be unowned and to share an endpoint
// node with the player's own settlement/city or own road.
func canPlaceRoad(g *board.Graph, owns *Ownership, player, edge int) bool {
	if _, taken := owns.EdgeAt(edge); taken {
		return false
	}
	e := g.Edges[edge]
	for _, node := range []int{e.A, e.B} {
		if claim, ok := owns.NodeAt(node); ok && claim.Player == player {
			return true
		}
		for _, other := range g.EdgesTouching(node) {
			if other == edge {
				continue
			}
			if claim, ok := owns.EdgeAt(other); ok && claim.Player == player {
				return true
			}
		}
	}
	return false
}
