package game

import (
	"errors"
	"testing"
)

func TestRollDiceRejectedDuringSetup(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.RollDice(); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("roll during setup: got %v", err)
	}
	if _, err := s.AdvanceTurn(); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("advance during setup: got %v", err)
	}
}

func TestRollDiceOncePerTurn(t *testing.T) {
	s := mainPhaseSession(t)

	result, err := s.RollDice()
	if err != nil {
		t.Fatalf("first roll: %v", err)
	}
	if result.Die1 < 1 || result.Die1 > 6 || result.Die2 < 1 || result.Die2 > 6 {
		t.Fatalf("dice out of range: %d, %d", result.Die1, result.Die2)
	}
	if result.Total != result.Die1+result.Die2 {
		t.Fatalf("total %d != %d + %d", result.Total, result.Die1, result.Die2)
	}
	if result.Robber != (result.Total == 7) {
		t.Fatalf("robber flag %v for total %d", result.Robber, result.Total)
	}
	if s.Clock().LastRoll != result.Total {
		t.Fatalf("clock did not record the roll")
	}

	if _, err := s.RollDice(); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("second roll same turn: got %v", err)
	}

	turn, err := s.AdvanceTurn()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if turn.Player != 1 {
		t.Fatalf("expected player 1 after advance, got %d", turn.Player)
	}
	if _, err := s.RollDice(); err != nil {
		t.Fatalf("roll after advance should be re-armed: %v", err)
	}
}

func TestRollPayoutsMatchHandGrowth(t *testing.T) {
	s := mainPhaseSession(t)

	for turn := 0; turn < 30; turn++ {
		before := 0
		for id := 0; id < s.PlayerCount(); id++ {
			before += s.Stats(id).ResourceCards
		}
		result, err := s.RollDice()
		if err != nil {
			t.Fatalf("turn %d roll: %v", turn, err)
		}
		paid := 0
		for _, p := range result.Payouts {
			if p.Amount < 1 || p.Amount > 2 {
				t.Fatalf("turn %d: payout amount %d", turn, p.Amount)
			}
			paid += p.Amount
		}
		if result.Robber && paid != 0 {
			t.Fatalf("turn %d: a seven must not pay out", turn)
		}
		after := 0
		for id := 0; id < s.PlayerCount(); id++ {
			after += s.Stats(id).ResourceCards
		}
		if after-before != paid {
			t.Fatalf("turn %d: hands grew by %d but payouts total %d", turn, after-before, paid)
		}
		if _, err := s.AdvanceTurn(); err != nil {
			t.Fatalf("turn %d advance: %v", turn, err)
		}
	}
}

func TestRollsDeterministicAcrossSessions(t *testing.T) {
	run := func() []int {
		s := newTestSession(t)
		completeSetup(t, s)
		var totals []int
		for i := 0; i < 10; i++ {
			result, err := s.RollDice()
			if err != nil {
				t.Fatalf("roll %d: %v", i, err)
			}
			totals = append(totals, result.Total)
			if _, err := s.AdvanceTurn(); err != nil {
				t.Fatalf("advance %d: %v", i, err)
			}
		}
		return totals
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("roll %d diverged across identically seeded sessions: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestWinDetectedOnAdvance(t *testing.T) {
	s, err := NewSession(SessionConfig{PlayerCount: 3, Seed: 42, WinPoints: 2})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	completeSetup(t, s)

	// Every player holds 2 victory points after setup; the first
	// advance crowns the lowest id.
	turn, err := s.AdvanceTurn()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if turn.Winner != 0 {
		t.Fatalf("expected player 0 to win, got %d", turn.Winner)
	}
	if s.Winner() != 0 {
		t.Fatalf("session winner not recorded")
	}

	if _, err := s.RollDice(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("roll after game over: got %v", err)
	}
	if _, err := s.PlaceSettlement(0); !errors.Is(err, ErrGameOver) {
		t.Fatalf("placement after game over: got %v", err)
	}
}
