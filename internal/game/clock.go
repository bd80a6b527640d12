package game

// Phase is the coarse game state.
type Phase string

const (
	PhaseSetup Phase = "setup"
	PhaseMain  Phase = "main"
)

// Clock tracks turn order and setup progress. Setup runs
// numPlayers*2 forward placements (settlement then road per player in
// ascending id order) followed by the same count in descending order,
// then the phase flips to main.
type Clock struct {
	Phase      Phase `json:"phase"`
	Turn       int   `json:"turn"`
	SetupStep  int   `json:"setup_step"`
	NumPlayers int   `json:"num_players"`
	Rolled     bool  `json:"rolled"`
	LastRoll   int   `json:"last_roll,omitempty"`
}

func newClock(numPlayers int) Clock {
	return Clock{Phase: PhaseSetup, NumPlayers: numPlayers}
}

// SetupPlayerIndex maps a setup step to the player placing at that
// step: forward snake then reverse. Each player owns two consecutive
// steps per pass (settlement, then road).
func SetupPlayerIndex(step, numPlayers int) int {
	forwardSteps := numPlayers * 2
	if step < forwardSteps {
		return step / 2
	}
	return numPlayers - 1 - (step-forwardSteps)/2
}

// CurrentPlayer is the player expected to act now.
func (c Clock) CurrentPlayer() int {
	if c.Phase == PhaseSetup {
		return SetupPlayerIndex(c.SetupStep, c.NumPlayers)
	}
	return c.Turn % c.NumPlayers
}

// SetupAction names what the current setup step places.
func (c Clock) SetupAction() string {
	if c.SetupStep%2 == 0 {
		return "settlement"
	}
	return "road"
}

// inReverseSetupRound reports whether the current setup step belongs to
// the second (reverse-order) pass, where second settlements grant
// starting resources.
func (c Clock) inReverseSetupRound() bool {
	return c.SetupStep >= c.NumPlayers*2
}

// advancePlacement consumes one setup step and reports whether the
// setup phase just completed.
func (c *Clock) advancePlacement() bool {
	c.SetupStep++
	if c.SetupStep >= c.NumPlayers*4 {
		c.Phase = PhaseMain
		return true
	}
	return false
}
