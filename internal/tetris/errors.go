package tetris

import "errors"

// Sentinel errors for the game core. Blocked and RotationBlocked are
// expected, frequent outcomes (the action simply has no effect);
// SpawnBlocked is the game-over trigger; OutOfBounds indicates a caller
// bug, never normal play.
var (
	ErrOutOfBounds     = errors.New("tetris: cell coordinates out of bounds")
	ErrBlocked         = errors.New("tetris: move blocked")
	ErrRotationBlocked = errors.New("tetris: rotation blocked")
	ErrSpawnBlocked    = errors.New("tetris: spawn position occupied")
)
