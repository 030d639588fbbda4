package tictactoe

import (
	"fmt"

	"github.com/zhuoyaazh/my-pixel-world/internal/apperror"
	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
)

// CreateInitialState - empty board, player to move.
func CreateInitialState() entity.GameState {
	return entity.GameState{
		Board:  entity.Board{},
		Turn:   entity.TurnPlayer,
		Result: entity.OutcomeOngoing,
	}
}

// Reset - a fresh initial state, whatever the current one is.
func Reset() entity.GameState {
	return CreateInitialState()
}

// ApplyPlayerMove - places the player's mark. A rejected move returns the
// input state untouched together with an error wrapping apperror.ErrInvalidMove.
func ApplyPlayerMove(state entity.GameState, cell int) (entity.GameState, error) {
	if err := validateMove(state, entity.TurnPlayer, cell); err != nil {
		return state, err
	}

	return placeMark(state, cell, entity.PlayerMark), nil
}

// ApplyOpponentMove - places the opponent's mark on the minimax choice.
func ApplyOpponentMove(state entity.GameState) (entity.GameState, error) {
	return ApplyOpponentMoveWith(state, Minimax{})
}

// ApplyOpponentMoveWith - places the opponent's mark on the cell chosen by opponent.
func ApplyOpponentMoveWith(state entity.GameState, opponent Opponent) (entity.GameState, error) {
	if err := validateTurn(state, entity.TurnOpponent); err != nil {
		return state, err
	}

	cell := opponent.ChooseMove(state.Board)
	if cell == NoMove {
		return state, fmt.Errorf("%w: opponent to move on a full board", apperror.ErrInternalConsistency)
	}

	if !isValidCell(cell) || state.Board[cell] != entity.EmptyCell {
		return state, fmt.Errorf("%w: opponent chose unavailable cell %d", apperror.ErrInternalConsistency, cell)
	}

	return placeMark(state, cell, entity.OpponentMark), nil
}

// validateMove - checks if the move is valid.
func validateMove(state entity.GameState, turn entity.Turn, cell int) error {
	if err := validateTurn(state, turn); err != nil {
		return err
	}

	if !isValidCell(cell) {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, cell)
	}

	if state.Board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, cell)
	}

	return nil
}

func validateTurn(state entity.GameState, turn entity.Turn) error {
	if state.IsTerminal() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	if state.Turn != turn {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrNotYourTurn)
	}

	return nil
}

func isValidCell(cell int) bool {
	return cell >= 0 && cell < len(entity.Board{})
}

// placeMark - state is a copy, the caller's board is never touched.
func placeMark(state entity.GameState, cell int, mark entity.Mark) entity.GameState {
	state.Board[cell] = mark

	state.Result = Evaluate(state.Board)
	if !state.Result.IsTerminal() {
		state.Turn = toggleTurn(state.Turn)
	}

	return state
}

func toggleTurn(turn entity.Turn) entity.Turn {
	if turn == entity.TurnPlayer {
		return entity.TurnOpponent
	}

	return entity.TurnPlayer
}
