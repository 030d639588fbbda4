package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
)

func TestBestMove(t *testing.T) {
	t.Run("Empty board picks the first cell", func(t *testing.T) {
		// Given: an empty board where every move draws with perfect play
		board := entity.Board{}

		// When: searching for the best move
		move := BestMove(board)

		// Then: ties are broken by the lowest index
		assert.Equal(t, 0, move)
	})

	t.Run("Answers a corner opening with the center", func(t *testing.T) {
		// Given: X took a corner; every reply except the center loses
		board := entity.Board{
			x, e, e,
			e, e, e,
			e, e, e,
		}

		// When: searching for the best move
		move := BestMove(board)

		// Then: the opponent takes the center
		assert.Equal(t, 4, move)
	})

	t.Run("Blocks the player's open line", func(t *testing.T) {
		// Given: X threatens the bottom row and O has no winning line
		board := entity.Board{
			e, e, e,
			e, o, e,
			x, x, e,
		}

		// When: searching for the best move
		move := BestMove(board)

		// Then: the opponent blocks at 8
		assert.Equal(t, 8, move)
	})

	t.Run("First forced win is preferred over an immediate one", func(t *testing.T) {
		// Given: X threatens cell 2 and O can complete the middle row at 5
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: searching for the best move
		move := BestMove(board)

		// Then: cell 2 scores the same as the immediate win at 5 and comes first
		assert.Equal(t, 2, move)

		// And: the block leaves the opponent with a forced win
		state := entity.GameState{Board: board, Turn: entity.TurnOpponent, Result: entity.OutcomeOngoing}
		state, err := ApplyOpponentMove(state)
		require.NoError(t, err)

		for _, cell := range state.Board.EmptyCells() {
			reply, err := ApplyPlayerMove(state, cell)
			require.NoError(t, err)
			require.False(t, reply.IsTerminal())

			final, err := ApplyOpponentMove(reply)
			require.NoError(t, err)
			assert.Equal(t, entity.OutcomeOpponentWin, final.Result, "player reply %d", cell)
		}
	})

	t.Run("Takes an immediate win", func(t *testing.T) {
		board := entity.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}

		assert.Equal(t, 2, BestMove(board))
	})

	t.Run("Full board has no move", func(t *testing.T) {
		// Given: a full board
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, o,
		}

		// When: searching for the best move
		move := BestMove(board)

		// Then: NoMove is returned
		assert.Equal(t, NoMove, move)
	})

	t.Run("Search leaves the board untouched", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := entity.Board{
			x, e, e,
			e, o, e,
			e, e, x,
		}
		before := board

		// When: searching for the best move
		move := BestMove(board)

		// Then: the board is identical and the move is an empty cell
		assert.Equal(t, before, board)
		assert.Equal(t, entity.EmptyCell, board[move])
	})
}

func TestMinimax_RestoresBoard(t *testing.T) {
	// Given: a board shared with the recursive search
	board := entity.Board{
		x, e, o,
		e, x, e,
		e, e, e,
	}
	before := board

	// When: the search runs on it directly
	score := minimax(&board, true)

	// Then: every trial mark has been removed again
	assert.Equal(t, before, board)
	assert.Contains(t, []int{scorePlayerWin, scoreDraw, scoreOpponentWin}, score)
}

func TestBestMove_ReturnsEmptyCellWhileAnyRemain(t *testing.T) {
	// Given: every position reachable from the initial state
	visited := 0
	walkPositions(entity.Board{}, entity.PlayerMark, func(board entity.Board) {
		if Evaluate(board).IsTerminal() {
			return
		}

		visited++
		move := BestMove(board)

		// Then: the move is a valid empty cell
		require.GreaterOrEqual(t, move, 0)
		require.Less(t, move, len(board))
		require.Equal(t, entity.EmptyCell, board[move])
	}, 4)

	assert.Positive(t, visited)
}

// walkPositions - visits every board reachable by alternating marks, down to
// depth plies from board. Shallow depths keep the search affordable.
func walkPositions(board entity.Board, mark entity.Mark, visit func(entity.Board), depth int) {
	visit(board)
	if depth == 0 || Evaluate(board).IsTerminal() {
		return
	}

	next := entity.OpponentMark
	if mark == entity.OpponentMark {
		next = entity.PlayerMark
	}

	for _, cell := range board.EmptyCells() {
		board[cell] = mark
		walkPositions(board, next, visit, depth-1)
		board[cell] = entity.EmptyCell
	}
}
