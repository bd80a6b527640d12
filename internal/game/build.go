package game

import (
	"fmt"

	"hexfield/internal/board"
)

// Payout is one resource grant to one player.
type Payout struct {
	Player   int
	Resource board.Resource
	Amount   int
}

// PlacementResult reports a successful settlement, city or road
// placement. During setup it also carries who places next and what;
// Granted holds the starting resources of a second settlement.
type PlacementResult struct {
	Player        int
	Index         int
	Kind          string
	Granted       []Payout
	SetupComplete bool
	NextPlayer    int
	NextAction    string
}

// PlaceSettlement places a settlement for the acting player at a node.
// Setup placements are free; main-phase placements cost and belong to
// the player whose turn it is. The distance rule applies in both.
func (s *Session) PlaceSettlement(node int) (PlacementResult, error) {
	s.mustNode(node)
	if err := s.ensureActive(); err != nil {
		return PlacementResult{}, err
	}

	if s.clock.Phase == PhaseSetup {
		if s.clock.SetupAction() != "settlement" {
			return PlacementResult{}, fmt.Errorf("%w: setup step %d places a road", ErrOutOfSequence, s.clock.SetupStep)
		}
		player := s.clock.CurrentPlayer()
		if !canPlaceSettlement(s.graph, s.owns, node) {
			return PlacementResult{}, fmt.Errorf("%w: node %d is occupied or too close to another settlement", ErrInvalidPlacement, node)
		}
		s.owns.claimNode(node, player, StructureSettlement)

		result := PlacementResult{Player: player, Index: node, Kind: "settlement"}
		if s.clock.inReverseSetupRound() {
			if settlements, _, _ := s.owns.structureCounts(player); settlements == 2 {
				result.Granted = s.grantStartingResources(player, node)
			}
		}
		result.SetupComplete = s.clock.advancePlacement()
		result.NextPlayer = s.clock.CurrentPlayer()
		result.NextAction = s.clock.SetupAction()
		return result, nil
	}

	player := s.clock.CurrentPlayer()
	p := s.player[player]
	if !canPlaceSettlement(s.graph, s.owns, node) {
		return PlacementResult{}, fmt.Errorf("%w: node %d is occupied or too close to another settlement", ErrInvalidPlacement, node)
	}
	if !Afford(p, BuildSettlement) {
		return PlacementResult{}, fmt.Errorf("%w: settlement costs 1 wood, 1 brick, 1 sheep, 1 wheat", ErrInsufficientResources)
	}
	pay(p, BuildSettlement)
	s.owns.claimNode(node, player, StructureSettlement)
	return PlacementResult{Player: player, Index: node, Kind: "settlement"}, nil
}

// grantStartingResources gives one of each non-desert resource adjacent
// to the just-placed second settlement.
func (s *Session) grantStartingResources(player, node int) []Payout {
	p := s.player[player]
	var granted []Payout
	for _, tileIdx := range s.graph.NodeTiles(node) {
		tile := s.tiles[tileIdx]
		if tile.Resource == board.Desert {
			continue
		}
		p.Resources[tile.Resource]++
		granted = append(granted, Payout{Player: player, Resource: tile.Resource, Amount: 1})
	}
	return granted
}

// PlaceRoad places a road for the acting player at an edge. The edge
// must share an endpoint with the player's own settlement, city or
// road.
func (s *Session) PlaceRoad(edge int) (PlacementResult, error) {
	s.mustEdge(edge)
	if err := s.ensureActive(); err != nil {
		return PlacementResult{}, err
	}

	if s.clock.Phase == PhaseSetup {
		if s.clock.SetupAction() != "road" {
			return PlacementResult{}, fmt.Errorf("%w: setup step %d places a settlement", ErrOutOfSequence, s.clock.SetupStep)
		}
		player := s.clock.CurrentPlayer()
		if !canPlaceRoad(s.graph, s.owns, player, edge) {
			return PlacementResult{}, fmt.Errorf("%w: edge %d is taken or not connected to your pieces", ErrInvalidPlacement, edge)
		}
		s.owns.claimEdge(edge, player)

		result := PlacementResult{Player: player, Index: edge, Kind: "road"}
		result.SetupComplete = s.clock.advancePlacement()
		result.NextPlayer = s.clock.CurrentPlayer()
		result.NextAction = s.clock.SetupAction()
		return result, nil
	}

	player := s.clock.CurrentPlayer()
	p := s.player[player]
	if !canPlaceRoad(s.graph, s.owns, player, edge) {
		return PlacementResult{}, fmt.Errorf("%w: edge %d is taken or not connected to your pieces", ErrInvalidPlacement, edge)
	}
	if !Afford(p, BuildRoad) {
		return PlacementResult{}, fmt.Errorf("%w: road costs 1 wood, 1 brick", ErrInsufficientResources)
	}
	pay(p, BuildRoad)
	s.owns.claimEdge(edge, player)
	return PlacementResult{Player: player, Index: edge, Kind: "road"}, nil
}

// UpgradeToCity replaces the acting player's settlement at node with a
// city.
func (s *Session) UpgradeToCity(node int) (PlacementResult, error) {
	s.mustNode(node)
	if err := s.ensureMain("upgrade"); err != nil {
		return PlacementResult{}, err
	}

	player := s.clock.CurrentPlayer()
	claim, ok := s.owns.NodeAt(node)
	if !ok || claim.Player != player || claim.Kind != StructureSettlement {
		return PlacementResult{}, fmt.Errorf("%w: node %d does not hold your settlement", ErrInvalidPlacement, node)
	}
	p := s.player[player]
	if !Afford(p, BuildCity) {
		return PlacementResult{}, fmt.Errorf("%w: city costs 3 ore, 2 wheat", ErrInsufficientResources)
	}
	pay(p, BuildCity)
	s.owns.claimNode(node, player, StructureCity)
	return PlacementResult{Player: player, Index: node, Kind: "city"}, nil
}

// BuyResult reports a development card purchase.
type BuyResult struct {
	Player int
	Card   DevCardKind
}

// BuyDevelopmentCard draws a uniformly random card kind and stamps it
// with the purchase turn; it becomes playable on a later turn.
func (s *Session) BuyDevelopmentCard() (BuyResult, error) {
	if err := s.ensureMain("buy"); err != nil {
		return BuyResult{}, err
	}

	player := s.clock.CurrentPlayer()
	p := s.player[player]
	if !Afford(p, BuildDevCard) {
		return BuyResult{}, fmt.Errorf("%w: development card costs 1 ore, 1 sheep, 1 wheat", ErrInsufficientResources)
	}
	pay(p, BuildDevCard)

	kinds := DevCardKinds()
	kind := kinds[s.rng.IntN(len(kinds))]
	p.DevCards = append(p.DevCards, DevCard{Kind: kind, BoughtTurn: s.clock.Turn})
	return BuyResult{Player: player, Card: kind}, nil
}

// PlayResult reports a played development card.
type PlayResult struct {
	Player int
	Card   DevCardKind
}

// PlayDevelopmentCard consumes the oldest playable card of the given
// kind. Knights trigger the robber hook; Year of Plenty, Monopoly and
// Road Building have no effect here. Victory Point cards are never
// played, they only score.
func (s *Session) PlayDevelopmentCard(kind DevCardKind) (PlayResult, error) {
	if err := s.ensureMain("play"); err != nil {
		return PlayResult{}, err
	}
	if kind == DevVictoryPoint {
		return PlayResult{}, fmt.Errorf("%w: victory point cards are not playable", ErrOutOfSequence)
	}
	valid := false
	for _, k := range DevCardKinds() {
		if k == kind {
			valid = true
			break
		}
	}
	if !valid {
		return PlayResult{}, fmt.Errorf("unknown development card kind %q", kind)
	}

	player := s.clock.CurrentPlayer()
	p := s.player[player]
	idx := p.playableCard(kind, s.clock.Turn)
	if idx < 0 {
		return PlayResult{}, fmt.Errorf("%w: no %s bought before this turn", ErrOutOfSequence, kind)
	}
	p.removeDevCard(idx)
	if kind == DevKnight {
		s.handleRobber()
	}
	return PlayResult{Player: player, Card: kind}, nil
}

// TradeResult reports a completed 4:1 bank trade.
type TradeResult struct {
	Player int
	Gave   board.Resource
	Got    board.Resource
}

// TradeBank exchanges four of one resource for one of another.
func (s *Session) TradeBank(give, get board.Resource) (TradeResult, error) {
	if err := s.ensureMain("trade"); err != nil {
		return TradeResult{}, err
	}
	if !yieldingResource(give) || !yieldingResource(get) {
		return TradeResult{}, fmt.Errorf("cannot trade %s for %s", give, get)
	}
	if give == get {
		return TradeResult{}, fmt.Errorf("cannot trade %s for itself", give)
	}

	player := s.clock.CurrentPlayer()
	p := s.player[player]
	if p.Resources[give] < 4 {
		return TradeResult{}, fmt.Errorf("%w: bank trade needs 4 %s, have %d", ErrInsufficientResources, give, p.Resources[give])
	}
	p.Resources[give] -= 4
	p.Resources[get]++
	return TradeResult{Player: player, Gave: give, Got: get}, nil
}

func yieldingResource(res board.Resource) bool {
	for _, r := range board.Resources() {
		if r == res {
			return true
		}
	}
	return false
}
