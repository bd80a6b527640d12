package game

import "fmt"

// RollResult reports one dice roll and, on non-7 totals, the resources
// distributed for it.
type RollResult struct {
	Player  int
	Die1    int
	Die2    int
	Total   int
	Robber  bool
	Payouts []Payout
}

// RollDice rolls two dice for the current player. Sevens go to the
// robber hook; anything else pays out owners of nodes adjacent to the
// matching tiles. At most one roll per turn.
func (s *Session) RollDice() (RollResult, error) {
	if err := s.ensureMain("roll"); err != nil {
		return RollResult{}, err
	}
	if s.clock.Rolled {
		return RollResult{}, fmt.Errorf("%w: already rolled this turn", ErrOutOfSequence)
	}

	d1 := s.rng.IntN(6) + 1
	d2 := s.rng.IntN(6) + 1
	total := d1 + d2
	s.clock.Rolled = true
	s.clock.LastRoll = total

	result := RollResult{Player: s.clock.CurrentPlayer(), Die1: d1, Die2: d2, Total: total}
	if total == 7 {
		result.Robber = true
		s.handleRobber()
		return result, nil
	}
	result.Payouts = s.distribute(total)
	return result, nil
}

// distribute grants one resource per adjacent owned settlement, two per
// city, for every tile whose number token matches the roll. Desert
// tiles carry no token and never distribute.
func (s *Session) distribute(roll int) []Payout {
	var payouts []Payout
	for tileIdx, tile := range s.tiles {
		if tile.Number != roll {
			continue
		}
		for _, node := range s.graph.TileNodes[tileIdx] {
			claim, ok := s.owns.NodeAt(node)
			if !ok {
				continue
			}
			amount := 1
			if claim.Kind == StructureCity {
				amount = 2
			}
			s.player[claim.Player].Resources[tile.Resource] += amount
			payouts = append(payouts, Payout{Player: claim.Player, Resource: tile.Resource, Amount: amount})
		}
	}
	return payouts
}

// TurnResult reports a turn advance. Winner is -1 unless the advance
// ended the game.
type TurnResult struct {
	Turn   int
	Player int
	Winner int
}

// AdvanceTurn moves to the next player in round-robin order, re-arms
// the dice and runs the win check.
func (s *Session) AdvanceTurn() (TurnResult, error) {
	if err := s.ensureMain("next turn"); err != nil {
		return TurnResult{}, err
	}

	s.clock.Turn++
	s.clock.Rolled = false
	winner := s.checkWin()
	return TurnResult{Turn: s.clock.Turn, Player: s.clock.CurrentPlayer(), Winner: winner}, nil
}
