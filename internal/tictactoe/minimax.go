package tictactoe

import (
	"math"

	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
)

// NoMove - returned by the search when the board has no empty cell.
const NoMove = -1

// Terminal scores from the opponent's side. Depth is not taken into account,
// so a win in one move and a win in five moves score the same.
const (
	scoreOpponentWin = 10
	scorePlayerWin   = -10
	scoreDraw        = 0
)

// BestMove - the cell where the opponent should place its mark. Candidates are
// scanned in ascending order and only a strictly better score replaces the
// current choice, so ties go to the lowest index.
func BestMove(board entity.Board) int {
	bestScore := math.MinInt
	bestMove := NoMove

	for i := range board {
		if board[i] != entity.EmptyCell {
			continue
		}

		board[i] = entity.OpponentMark
		score := minimax(&board, false)
		board[i] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			bestMove = i
		}
	}

	return bestMove
}

// minimax - every placement is undone before the next candidate is tried,
// so the board is back in its original state when the call returns.
func minimax(board *entity.Board, maximizing bool) int {
	switch Evaluate(*board) {
	case entity.OutcomeOpponentWin:
		return scoreOpponentWin
	case entity.OutcomePlayerWin:
		return scorePlayerWin
	case entity.OutcomeDraw:
		return scoreDraw
	}

	if maximizing {
		best := math.MinInt
		for i := range board {
			if board[i] != entity.EmptyCell {
				continue
			}

			board[i] = entity.OpponentMark
			best = max(best, minimax(board, false))
			board[i] = entity.EmptyCell
		}

		return best
	}

	best := math.MaxInt
	for i := range board {
		if board[i] != entity.EmptyCell {
			continue
		}

		board[i] = entity.PlayerMark
		best = min(best, minimax(board, true))
		board[i] = entity.EmptyCell
	}

	return best
}
