package game

// StructureKind tags what stands on an owned node.
type StructureKind string

const (
	StructureSettlement StructureKind = "settlement"
	StructureCity       StructureKind = "city"
)

// NodeClaim records who owns a node and what stands on it.
type NodeClaim struct {
	Player int           `json:"player"`
	Kind   StructureKind `json:"kind"`
}

// EdgeClaim records who owns a road edge.
type EdgeClaim struct {
	Player int `json:"player"`
}

// Ownership is the single source of truth for placements, keyed by
// graph index. Absence means unowned. Entries are created only by
// validated placements and removed only by Clear; no game rule
// un-places a structure.
type Ownership struct {
	nodes map[int]NodeClaim
	edges map[int]EdgeClaim
}

func newOwnership() *Ownership {
	return &Ownership{
		nodes: map[int]NodeClaim{},
		edges: map[int]EdgeClaim{},
	}
}

// NodeAt reports the claim on a node, if any.
func (o *Ownership) NodeAt(node int) (NodeClaim, bool) {
	claim, ok := o.nodes[node]
	return claim, ok
}

// EdgeAt reports the claim on an edge, if any.
func (o *Ownership) EdgeAt(edge int) (EdgeClaim, bool) {
	claim, ok := o.edges[edge]
	return claim, ok
}

func (o *Ownership) claimNode(node, player int, kind StructureKind) {
	o.nodes[node] = NodeClaim{Player: player, Kind: kind}
}

func (o *Ownership) claimEdge(edge, player int) {
	o.edges[edge] = EdgeClaim{Player: player}
}

// structureCounts tallies a player's settlements, cities and roads.
func (o *Ownership) structureCounts(player int) (settlements, cities, roads int) {
	for _, claim := range o.nodes {
		if claim.Player != player {
			continue
		}
		switch claim.Kind {
		case StructureCity:
			cities++
		default:
			settlements++
		}
	}
	for _, claim := range o.edges {
		if claim.Player == player {
			roads++
		}
	}
	return settlements, cities, roads
}

// Clear removes every claim. Only board-clear/reset goes through here.
func (o *Ownership) Clear() {
	o.nodes = map[int]NodeClaim{}
	o.edges = map[int]EdgeClaim{}
}

func (o *Ownership) snapshot() (map[int]NodeClaim, map[int]EdgeClaim) {
	nodes := make(map[int]NodeClaim, len(o.nodes))
	for k, v := range o.nodes {
		nodes[k] = v
	}
	edges := make(map[int]EdgeClaim, len(o.edges))
	for k, v := range o.edges {
		edges[k] = v
	}
	return nodes, edges
}

func (o *Ownership) restore(nodes map[int]NodeClaim, edges map[int]EdgeClaim) {
	o.Clear()
	for k, v := range nodes {
		o.nodes[k] = v
	}
	for k, v := range edges {
		o.edges[k] = v
	}
}
