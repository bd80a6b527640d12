package game

import "errors"

// All rejections a session command can return are expected and
// recoverable; none mutate state. Out-of-range node/edge indices are a
// caller bug (stale graph) and panic instead.
var (
	// ErrInvalidPlacement covers occupied targets and distance/connectivity
	// rule violations.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrInsufficientResources rejects builds and purchases the player
	// cannot pay for. No partial deduction ever happens.
	ErrInsufficientResources = errors.New("insufficient resources")

	// ErrOutOfSequence rejects actions outside their phase or turn window,
	// e.g. rolling twice in one turn or building during setup.
	ErrOutOfSequence = errors.New("out of sequence")

	// ErrGameOver rejects every command once a player has won.
	ErrGameOver = errors.New("game over")
)
