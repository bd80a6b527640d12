package game

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"hexfield/internal/board"
)

const (
	saveFormatVersion = 1

	// maxSaveFileBytes bounds how much of a save file Load will read.
	maxSaveFileBytes = 1 << 20
)

type savedSession struct {
	FormatVersion int               `json:"format_version"`
	SavedAt       time.Time         `json:"saved_at"`
	Config        SessionConfig     `json:"config"`
	Tiles         []board.Tile      `json:"tiles"`
	NodeClaims    map[int]NodeClaim `json:"node_claims,omitempty"`
	EdgeClaims    map[int]EdgeClaim `json:"edge_claims,omitempty"`
	Players       []*Player         `json:"players"`
	Clock         Clock             `json:"clock"`
	Winner        int               `json:"winner"`
}

// Save writes the session as a versioned JSON snapshot. The graph is
// not stored; it is rebuilt from the tiles on load.
func (s *Session) Save(path string) error {
	nodes, edges := s.owns.snapshot()
	payload := savedSession{
		FormatVersion: saveFormatVersion,
		SavedAt:       time.Now().UTC(),
		Config:        s.cfg,
		Tiles:         s.Tiles(),
		NodeClaims:    nodes,
		EdgeClaims:    edges,
		Players:       s.player,
		Clock:         s.clock,
		Winner:        s.winner,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// validateClock rejects clock states Save can never produce. SetupStep
// stays below numPlayers*4 during setup and lands exactly on it when
// the phase flips to main.
func validateClock(c Clock, playerCount int) error {
	if c.NumPlayers != playerCount {
		return fmt.Errorf("clock counts %d players for player count %d", c.NumPlayers, playerCount)
	}
	if c.Turn < 0 {
		return fmt.Errorf("clock turn %d is negative", c.Turn)
	}
	switch c.Phase {
	case PhaseSetup:
		if c.SetupStep < 0 || c.SetupStep >= c.NumPlayers*4 {
			return fmt.Errorf("setup step %d out of range for %d players", c.SetupStep, c.NumPlayers)
		}
	case PhaseMain:
		if c.SetupStep != c.NumPlayers*4 {
			return fmt.Errorf("setup step %d with completed setup for %d players", c.SetupStep, c.NumPlayers)
		}
	default:
		return fmt.Errorf("unknown phase %q", c.Phase)
	}
	return nil
}

// Load restores a session from a snapshot written by Save. Corrupted or
// inconsistent files are load errors, not panics; a loaded session is
// fully validated before it replaces anything.
func Load(path string) (*Session, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSaveFileBytes {
		return nil, fmt.Errorf("save file %s exceeds %d bytes", path, maxSaveFileBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var payload savedSession
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("save file %s: %w", path, err)
	}
	if payload.FormatVersion != saveFormatVersion {
		return nil, fmt.Errorf("save file %s: unsupported format version %d", path, payload.FormatVersion)
	}
	if err := payload.Config.Validate(); err != nil {
		return nil, fmt.Errorf("save file %s: %w", path, err)
	}
	if len(payload.Players) != payload.Config.PlayerCount {
		return nil, fmt.Errorf("save file %s: %d players for player count %d", path, len(payload.Players), payload.Config.PlayerCount)
	}
	if len(payload.Tiles) != board.TileCount {
		return nil, fmt.Errorf("save file %s: expected %d tiles, got %d", path, board.TileCount, len(payload.Tiles))
	}
	if err := validateClock(payload.Clock, payload.Config.PlayerCount); err != nil {
		return nil, fmt.Errorf("save file %s: %w", path, err)
	}

	layout := board.DefaultLayout()
	graph := board.BuildGraph(payload.Tiles, layout)
	for node := range payload.NodeClaims {
		if node < 0 || node >= len(graph.Nodes) {
			return nil, fmt.Errorf("save file %s: node claim index %d out of range", path, node)
		}
	}
	for edge := range payload.EdgeClaims {
		if edge < 0 || edge >= len(graph.Edges) {
			return nil, fmt.Errorf("save file %s: edge claim index %d out of range", path, edge)
		}
	}

	s := &Session{
		cfg:    payload.Config,
		layout: layout,
		rng:    board.SeededRNG(payload.Config.Seed),
		tiles:  payload.Tiles,
		graph:  graph,
		owns:   newOwnership(),
		player: payload.Players,
		clock:  payload.Clock,
		winner: payload.Winner,
	}
	s.owns.restore(payload.NodeClaims, payload.EdgeClaims)
	for _, p := range s.player {
		if p.Resources == nil {
			p.Resources = map[board.Resource]int{}
		}
	}
	return s, nil
}
