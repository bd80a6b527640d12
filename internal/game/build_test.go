package game

import (
	"errors"
	"testing"

	"hexfield/internal/board"
)

// mainPhaseSession returns a session that has finished setup, with
// player 0 to act on turn 0.
func mainPhaseSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t)
	completeSetup(t, s)
	if got := s.Clock().CurrentPlayer(); got != 0 {
		t.Fatalf("expected player 0 to open the main phase, got %d", got)
	}
	return s
}

func give(p *Player, res board.Resource, n int) {
	p.Resources[res] += n
}

func fundFor(p *Player, kind BuildKind) {
	for res, n := range Cost(kind) {
		give(p, res, n)
	}
}

// freeSettlementNode finds a node that still satisfies the distance
// rule.
func freeSettlementNode(t *testing.T, s *Session) int {
	t.Helper()
	for node := 0; node < len(s.Graph().Nodes); node++ {
		if canPlaceSettlement(s.graph, s.owns, node) {
			return node
		}
	}
	t.Fatalf("no legal settlement node left")
	return -1
}

// ownedSettlementNode finds a node holding the player's settlement.
func ownedSettlementNode(t *testing.T, s *Session, player int) int {
	t.Helper()
	for node := 0; node < len(s.Graph().Nodes); node++ {
		if claim, ok := s.NodeOwner(node); ok && claim.Player == player && claim.Kind == StructureSettlement {
			return node
		}
	}
	t.Fatalf("player %d owns no settlement", player)
	return -1
}

func TestDistanceRuleBlocksAdjacentNodes(t *testing.T) {
	s := newTestSession(t)
	g := s.graph

	if _, err := s.PlaceSettlement(0); err != nil {
		t.Fatalf("first settlement on empty board: %v", err)
	}
	for _, neighbor := range g.Adjacency[0] {
		if canPlaceSettlement(g, s.owns, neighbor) {
			t.Errorf("node %d adjacent to an occupied node should be blocked", neighbor)
		}
	}
	if canPlaceSettlement(g, s.owns, 0) {
		t.Errorf("occupied node should be blocked")
	}
}

func TestRoadNeedsConnection(t *testing.T) {
	s := newTestSession(t)
	g := s.graph

	if _, err := s.PlaceSettlement(0); err != nil {
		t.Fatalf("settlement: %v", err)
	}
	touching := map[int]bool{}
	for _, edge := range g.EdgesTouching(0) {
		touching[edge] = true
	}
	for edge := range g.Edges {
		got := canPlaceRoad(g, s.owns, 0, edge)
		if got != touching[edge] {
			t.Errorf("edge %d: connected=%v, want %v", edge, got, touching[edge])
		}
	}
	// A rival settlement does not provide connection.
	for edge := range g.Edges {
		if canPlaceRoad(g, s.owns, 1, edge) {
			t.Errorf("edge %d: player 1 has no pieces yet", edge)
		}
	}
}

func TestRoadChainsExtendConnectivity(t *testing.T) {
	s := newTestSession(t)
	g := s.graph

	if _, err := s.PlaceSettlement(0); err != nil {
		t.Fatalf("settlement: %v", err)
	}
	first := g.EdgesTouching(0)[0]
	if _, err := s.PlaceRoad(first); err != nil {
		t.Fatalf("road: %v", err)
	}

	// The far endpoint of the placed road now anchors further roads.
	e := g.Edges[first]
	far := e.A
	if far == 0 {
		far = e.B
	}
	extended := false
	for _, next := range g.EdgesTouching(far) {
		if next == first {
			continue
		}
		if canPlaceRoad(g, s.owns, 0, next) {
			extended = true
		}
	}
	if !extended {
		t.Fatalf("a road should extend connectivity through its far endpoint")
	}
}

func TestMainPhaseSettlementChargesCost(t *testing.T) {
	s := mainPhaseSession(t)
	p := s.player[0]
	node := freeSettlementNode(t, s)

	if _, err := s.PlaceSettlement(node); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected ErrInsufficientResources with empty hand, got %v", err)
	}

	fundFor(p, BuildSettlement)
	before := p.ResourceCardCount()
	if _, err := s.PlaceSettlement(node); err != nil {
		t.Fatalf("funded settlement: %v", err)
	}
	if p.ResourceCardCount() != before-4 {
		t.Fatalf("settlement should consume 4 cards, hand went %d -> %d", before, p.ResourceCardCount())
	}
	claim, ok := s.NodeOwner(node)
	if !ok || claim.Player != 0 || claim.Kind != StructureSettlement {
		t.Fatalf("node %d not claimed as expected: %+v ok=%v", node, claim, ok)
	}
}

func TestRejectedPlacementLeavesHandUntouched(t *testing.T) {
	s := mainPhaseSession(t)
	p := s.player[0]
	fundFor(p, BuildSettlement)
	before := p.ResourceCardCount()

	occupied := ownedSettlementNode(t, s, 1)
	if _, err := s.PlaceSettlement(occupied); !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("expected ErrInvalidPlacement on occupied node, got %v", err)
	}
	if p.ResourceCardCount() != before {
		t.Fatalf("rejected placement changed the hand: %d -> %d", before, p.ResourceCardCount())
	}
}

func TestUpgradeToCity(t *testing.T) {
	s := mainPhaseSession(t)
	p := s.player[0]
	node := ownedSettlementNode(t, s, 0)

	if _, err := s.UpgradeToCity(node); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected ErrInsufficientResources, got %v", err)
	}

	fundFor(p, BuildCity)
	result, err := s.UpgradeToCity(node)
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if result.Kind != "city" || result.Player != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
	claim, _ := s.NodeOwner(node)
	if claim.Kind != StructureCity {
		t.Fatalf("node %d should hold a city, got %s", node, claim.Kind)
	}
	if p.ResourceCardCount() != 0 {
		t.Fatalf("city cost not fully deducted, %d cards left", p.ResourceCardCount())
	}

	// Cities cannot be upgraded again.
	fundFor(p, BuildCity)
	if _, err := s.UpgradeToCity(node); !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("expected ErrInvalidPlacement on a city, got %v", err)
	}
}

func TestUpgradeRejectsRivalSettlement(t *testing.T) {
	s := mainPhaseSession(t)
	fundFor(s.player[0], BuildCity)

	node := ownedSettlementNode(t, s, 1)
	if _, err := s.UpgradeToCity(node); !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("expected ErrInvalidPlacement on rival settlement, got %v", err)
	}
}

func TestBuyDevelopmentCard(t *testing.T) {
	s := mainPhaseSession(t)
	p := s.player[0]

	if _, err := s.BuyDevelopmentCard(); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected ErrInsufficientResources, got %v", err)
	}

	fundFor(p, BuildDevCard)
	result, err := s.BuyDevelopmentCard()
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if len(p.DevCards) != 1 {
		t.Fatalf("expected 1 card in hand, got %d", len(p.DevCards))
	}
	card := p.DevCards[0]
	if card.Kind != result.Card {
		t.Fatalf("result card %s != held card %s", result.Card, card.Kind)
	}
	if card.BoughtTurn != s.Clock().Turn {
		t.Fatalf("card stamped with turn %d, current turn %d", card.BoughtTurn, s.Clock().Turn)
	}
	if p.ResourceCardCount() != 0 {
		t.Fatalf("card cost not fully deducted")
	}
}

func TestPlayDevelopmentCardWaitsATurn(t *testing.T) {
	s := mainPhaseSession(t)
	p := s.player[0]
	p.DevCards = append(p.DevCards, DevCard{Kind: DevKnight, BoughtTurn: s.Clock().Turn})

	if _, err := s.PlayDevelopmentCard(DevKnight); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("same-turn play should fail with ErrOutOfSequence, got %v", err)
	}

	// Three advances bring the turn back to player 0.
	for i := 0; i < s.PlayerCount(); i++ {
		if _, err := s.AdvanceTurn(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	result, err := s.PlayDevelopmentCard(DevKnight)
	if err != nil {
		t.Fatalf("play after waiting: %v", err)
	}
	if result.Card != DevKnight || result.Player != 0 {
		t.Fatalf("unexpected play result %+v", result)
	}
	if len(p.DevCards) != 0 {
		t.Fatalf("played card should leave the hand")
	}
}

func TestVictoryPointCardNeverPlayable(t *testing.T) {
	s := mainPhaseSession(t)
	s.player[0].DevCards = append(s.player[0].DevCards, DevCard{Kind: DevVictoryPoint, BoughtTurn: -1})

	if _, err := s.PlayDevelopmentCard(DevVictoryPoint); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("expected ErrOutOfSequence, got %v", err)
	}
	if _, err := s.PlayDevelopmentCard("time_machine"); err == nil {
		t.Fatalf("unknown card kind should be rejected")
	}
}

func TestVictoryPointCardScores(t *testing.T) {
	s := mainPhaseSession(t)
	base := s.Stats(0).VictoryPoints
	s.player[0].DevCards = append(s.player[0].DevCards, DevCard{Kind: DevVictoryPoint, BoughtTurn: 0})

	if got := s.Stats(0).VictoryPoints; got != base+1 {
		t.Fatalf("victory point card should add a point: %d -> %d", base, got)
	}
}

func TestTradeBank(t *testing.T) {
	s := mainPhaseSession(t)
	p := s.player[0]

	if _, err := s.TradeBank(board.Wood, board.Ore); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected ErrInsufficientResources with empty hand, got %v", err)
	}

	give(p, board.Wood, 4)
	result, err := s.TradeBank(board.Wood, board.Ore)
	if err != nil {
		t.Fatalf("trade: %v", err)
	}
	if result.Gave != board.Wood || result.Got != board.Ore {
		t.Fatalf("unexpected trade result %+v", result)
	}
	if p.Resources[board.Wood] != 0 || p.Resources[board.Ore] != 1 {
		t.Fatalf("trade left wood=%d ore=%d", p.Resources[board.Wood], p.Resources[board.Ore])
	}
}

func TestTradeBankRejectsBadResources(t *testing.T) {
	s := mainPhaseSession(t)
	give(s.player[0], board.Wood, 8)

	if _, err := s.TradeBank(board.Wood, board.Wood); err == nil {
		t.Fatalf("trading a resource for itself should fail")
	}
	if _, err := s.TradeBank(board.Wood, board.Desert); err == nil {
		t.Fatalf("desert should not be tradable")
	}
	if _, err := s.TradeBank(board.Desert, board.Wood); err == nil {
		t.Fatalf("desert should not be tradable")
	}
}

func TestMainPhaseActionsRejectedDuringSetup(t *testing.T) {
	s := newTestSession(t)
	give(s.player[0], board.Wood, 10)

	if _, err := s.UpgradeToCity(0); !errors.Is(err, ErrOutOfSequence) {
		t.Errorf("upgrade during setup: got %v", err)
	}
	if _, err := s.BuyDevelopmentCard(); !errors.Is(err, ErrOutOfSequence) {
		t.Errorf("buy during setup: got %v", err)
	}
	if _, err := s.TradeBank(board.Wood, board.Ore); !errors.Is(err, ErrOutOfSequence) {
		t.Errorf("trade during setup: got %v", err)
	}
}

func TestSetupRejectsWrongPlacementKind(t *testing.T) {
	s := newTestSession(t)

	// Step 0 expects a settlement.
	if _, err := s.PlaceRoad(0); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("road at settlement step: got %v", err)
	}
	if _, err := s.PlaceSettlement(0); err != nil {
		t.Fatalf("settlement: %v", err)
	}
	// Step 1 expects a road.
	if _, err := s.PlaceSettlement(10); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("settlement at road step: got %v", err)
	}
}
