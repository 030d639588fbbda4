package tictactoe

import "github.com/zhuoyaazh/my-pixel-world/internal/entity"

// WinLines - the 3 rows, 3 columns and 2 diagonals of the board.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate - returns the outcome of the board: the first complete line wins,
// a full board without a line is a draw.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return winnerOf(a)
		}
	}

	if board.IsFull() {
		return entity.OutcomeDraw
	}

	return entity.OutcomeOngoing
}

func winnerOf(mark entity.Mark) entity.Outcome {
	if mark == entity.PlayerMark {
		return entity.OutcomePlayerWin
	}

	return entity.OutcomeOpponentWin
}
