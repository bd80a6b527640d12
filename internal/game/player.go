package game

import "hexfield/internal/board"

// DevCardKind identifies a development card type.
type DevCardKind string

const (
	DevKnight       DevCardKind = "knight"
	DevRoadBuilding DevCardKind = "road_building"
	DevYearOfPlenty DevCardKind = "year_of_plenty"
	DevMonopoly     DevCardKind = "monopoly"
	DevVictoryPoint DevCardKind = "victory_point"
)

// DevCardKinds lists every purchasable card kind.
func DevCardKinds() []DevCardKind {
	return []DevCardKind{DevKnight, DevRoadBuilding, DevYearOfPlenty, DevMonopoly, DevVictoryPoint}
}

// DevCard is a held development card. A card becomes playable on any
// turn after the one it was bought in.
type DevCard struct {
	Kind       DevCardKind `json:"kind"`
	BoughtTurn int         `json:"bought_turn"`
}

// Player holds the per-player mutable state: resource counts and dev
// cards. Structure counts, victory points and longest road are derived
// from the ownership store on demand, never stored here.
type Player struct {
	ID        int                    `json:"id"`
	Name      string                 `json:"name"`
	Resources map[board.Resource]int `json:"resources"`
	DevCards  []DevCard              `json:"dev_cards,omitempty"`
}

func newPlayer(id int, name string) *Player {
	resources := make(map[board.Resource]int, len(board.Resources()))
	for _, res := range board.Resources() {
		resources[res] = 0
	}
	return &Player{ID: id, Name: name, Resources: resources}
}

// ResourceCardCount is the total resource cards in hand.
func (p *Player) ResourceCardCount() int {
	total := 0
	for _, n := range p.Resources {
		total += n
	}
	return total
}

func (p *Player) devCardCount(kind DevCardKind) int {
	n := 0
	for _, c := range p.DevCards {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// playableCard returns the index of the oldest card of kind bought
// before turn, or -1.
func (p *Player) playableCard(kind DevCardKind, turn int) int {
	best := -1
	for i, c := range p.DevCards {
		if c.Kind != kind || c.BoughtTurn >= turn {
			continue
		}
		if best == -1 || c.BoughtTurn < p.DevCards[best].BoughtTurn {
			best = i
		}
	}
	return best
}

func (p *Player) removeDevCard(i int) {
	p.DevCards = append(p.DevCards[:i], p.DevCards[i+1:]...)
}

func (p *Player) reset() {
	for res := range p.Resources {
		p.Resources[res] = 0
	}
	p.DevCards = nil
}

// PlayerStats is the derived, read-only view handed to the UI layer.
type PlayerStats struct {
	ID            int
	Name          string
	Resources     map[board.Resource]int
	ResourceCards int
	Settlements   int
	Cities        int
	Roads         int
	VictoryPoints int
	LongestRoad   int
	DevCards      map[DevCardKind]int
}
