package game

import "fmt"

const (
	MinPlayers = 2
	MaxPlayers = 5

	// DefaultWinPoints is the standard victory-point threshold.
	DefaultWinPoints = 10
)

// presetNames is the pool sampled for players without a configured name.
var presetNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey",
	"Riley", "Jamie", "Cameron", "Drew", "Reese",
	"Quinn", "Avery", "Peyton", "Hayden", "Rowan",
	"Skyler", "Dakota", "Payton", "Finley", "Emerson",
}

// SessionConfig carries everything a session needs at construction time.
// There is no ambient global state; one config, one session.
type SessionConfig struct {
	PlayerCount int      `json:"player_count"`
	PlayerNames []string `json:"player_names,omitempty"`
	Seed        int64    `json:"seed"`
	WinPoints   int      `json:"win_points"`
}

func (c SessionConfig) Validate() error {
	if c.PlayerCount < MinPlayers || c.PlayerCount > MaxPlayers {
		return fmt.Errorf("player count must be between %d and %d, got %d", MinPlayers, MaxPlayers, c.PlayerCount)
	}
	if len(c.PlayerNames) > c.PlayerCount {
		return fmt.Errorf("got %d player names for %d players", len(c.PlayerNames), c.PlayerCount)
	}
	if c.WinPoints < 0 {
		return fmt.Errorf("win points must not be negative, got %d", c.WinPoints)
	}
	return nil
}
