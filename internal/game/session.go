// Package game holds the authoritative session state for a hexfield
// game: the board graph, the ownership store, the players and the turn
// clock. Every state transition goes through a validated command method
// that either mutates completely or rejects without mutation.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"hexfield/internal/board"
)

// Session is the one logical game object. It is single-threaded by
// contract: commands complete atomically before the next event is
// processed, so there is no locking.
type Session struct {
	cfg    SessionConfig
	layout board.Layout
	rng    *rand.Rand

	tiles  []board.Tile
	graph  *board.Graph
	owns   *Ownership
	player []*Player
	clock  Clock
	winner int
}

// NewSession builds a session from explicit configuration: board
// generated, graph derived, players named, clock at setup step zero.
func NewSession(cfg SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.WinPoints == 0 {
		cfg.WinPoints = DefaultWinPoints
	}

	s := &Session{
		cfg:    cfg,
		layout: board.DefaultLayout(),
		rng:    board.SeededRNG(cfg.Seed),
		owns:   newOwnership(),
		clock:  newClock(cfg.PlayerCount),
		winner: -1,
	}
	s.generate()

	names := s.pickNames(cfg.PlayerNames, cfg.PlayerCount)
	s.player = make([]*Player, cfg.PlayerCount)
	for i := range s.player {
		s.player[i] = newPlayer(i, names[i])
	}
	return s, nil
}

func (s *Session) pickNames(configured []string, count int) []string {
	pool := append([]string(nil), presetNames...)
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	names := make([]string, count)
	poolIdx := 0
	for i := 0; i < count; i++ {
		if i < len(configured) && configured[i] != "" {
			names[i] = configured[i]
			continue
		}
		names[i] = pool[poolIdx]
		poolIdx++
	}
	return names
}

func (s *Session) generate() {
	s.tiles = board.Generate(s.layout, s.rng)
	s.graph = board.BuildGraph(s.tiles, s.layout)
}

// GenerateBoard reshuffles the tiles and rebuilds the graph. All node
// and edge indices from the previous graph are invalid afterwards, so
// the session restarts: placements cleared, players zeroed, clock back
// to setup.
func (s *Session) GenerateBoard() {
	s.generate()
	s.restart()
}

// Reset clears placements, player stats and the clock but keeps the
// current board.
func (s *Session) Reset() {
	s.restart()
}

func (s *Session) restart() {
	s.owns.Clear()
	for _, p := range s.player {
		p.reset()
	}
	s.clock = newClock(s.cfg.PlayerCount)
	s.winner = -1
}

// handleRobber is the hook for a dice roll of 7. Discards and robber
// movement are not part of this core; the hook exists so the roll path
// is complete.
func (s *Session) handleRobber() {}

func (s *Session) ensureActive() error {
	if s.winner >= 0 {
		return fmt.Errorf("%w: %s has already won", ErrGameOver, s.player[s.winner].Name)
	}
	return nil
}

func (s *Session) ensureMain(action string) error {
	if err := s.ensureActive(); err != nil {
		return err
	}
	if s.clock.Phase != PhaseMain {
		return fmt.Errorf("%w: %s is a main-phase action", ErrOutOfSequence, action)
	}
	return nil
}

func (s *Session) mustNode(node int) {
	if node < 0 || node >= len(s.graph.Nodes) {
		panic(fmt.Sprintf("game: node index %d out of range (graph has %d nodes)", node, len(s.graph.Nodes)))
	}
}

func (s *Session) mustEdge(edge int) {
	if edge < 0 || edge >= len(s.graph.Edges) {
		panic(fmt.Sprintf("game: edge index %d out of range (graph has %d edges)", edge, len(s.graph.Edges)))
	}
}

func (s *Session) mustPlayer(id int) *Player {
	if id < 0 || id >= len(s.player) {
		panic(fmt.Sprintf("game: player id %d out of range (%d players)", id, len(s.player)))
	}
	return s.player[id]
}

// Tiles returns a copy of the current tile layout.
func (s *Session) Tiles() []board.Tile {
	return append([]board.Tile(nil), s.tiles...)
}

// Graph exposes the canonical board graph. Read-only by contract.
func (s *Session) Graph() *board.Graph {
	return s.graph
}

// Layout returns the geometry shared with the rendering layer.
func (s *Session) Layout() board.Layout {
	return s.layout
}

// Clock returns the current phase/turn state.
func (s *Session) Clock() Clock {
	return s.clock
}

// Config returns the construction-time configuration (with defaults
// resolved).
func (s *Session) Config() SessionConfig {
	return s.cfg
}

// NodeOwner reports the claim on a node, if any.
func (s *Session) NodeOwner(node int) (NodeClaim, bool) {
	s.mustNode(node)
	return s.owns.NodeAt(node)
}

// EdgeOwner reports the claim on an edge, if any.
func (s *Session) EdgeOwner(edge int) (EdgeClaim, bool) {
	s.mustEdge(edge)
	return s.owns.EdgeAt(edge)
}

// PlayerCount returns the number of seated players.
func (s *Session) PlayerCount() int {
	return len(s.player)
}

// Winner returns the winning player id, or -1 while the game runs.
func (s *Session) Winner() int {
	return s.winner
}

// Stats derives a player's public view from the ownership store and
// held cards. Victory points and longest road are recomputed on every
// call so they can never drift from the placements.
func (s *Session) Stats(id int) PlayerStats {
	p := s.mustPlayer(id)
	settlements, cities, roads := s.owns.structureCounts(id)

	resources := make(map[board.Resource]int, len(p.Resources))
	for res, n := range p.Resources {
		resources[res] = n
	}
	devCards := make(map[DevCardKind]int, len(DevCardKinds()))
	for _, kind := range DevCardKinds() {
		devCards[kind] = p.devCardCount(kind)
	}

	return PlayerStats{
		ID:            id,
		Name:          p.Name,
		Resources:     resources,
		ResourceCards: p.ResourceCardCount(),
		Settlements:   settlements,
		Cities:        cities,
		Roads:         roads,
		VictoryPoints: settlements + 2*cities + devCards[DevVictoryPoint],
		LongestRoad:   roads,
		DevCards:      devCards,
	}
}

func (s *Session) checkWin() int {
	for id := range s.player {
		if s.Stats(id).VictoryPoints >= s.cfg.WinPoints {
			s.winner = id
			return id
		}
	}
	return -1
}
