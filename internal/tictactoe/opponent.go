package tictactoe

import (
	"math/rand"

	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
)

// Opponent picks the cell for the opponent's next mark, or NoMove on a full board.
type Opponent interface {
	ChooseMove(board entity.Board) int
}

// Minimax - the hard opponent, never loses.
type Minimax struct{}

func (Minimax) ChooseMove(board entity.Board) int {
	return BestMove(board)
}

// Random - the easy opponent, plays any empty cell with equal probability.
type Random struct {
	// rng is optional; the package-level source is used when nil.
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) Random {
	return Random{rng: rng}
}

func (that Random) ChooseMove(board entity.Board) int {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return NoMove
	}

	if that.rng != nil {
		return cells[that.rng.Intn(len(cells))]
	}

	return cells[rand.Intn(len(cells))] //nolint: gosec // it's a game move
}

// OpponentFor - the opponent playing at the given difficulty.
func OpponentFor(difficulty entity.Difficulty, rng *rand.Rand) Opponent {
	if difficulty == entity.DifficultyEasy {
		return NewRandom(rng)
	}

	return Minimax{}
}
