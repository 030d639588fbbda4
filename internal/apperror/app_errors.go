package apperror

import "errors"

var (
	// ErrInvalidMove - a move was rejected; the game state is unchanged.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInternalConsistency - the state machine invariants were bypassed by the caller.
	ErrInternalConsistency = errors.New("internal consistency error")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	ErrGameNotFound      = errors.New("game not found")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrInvalidToken      = errors.New("invalid session token")
)
