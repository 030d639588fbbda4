package entity

type Mark string

const (
	EmptyCell    Mark = ""
	PlayerMark   Mark = "X"
	OpponentMark Mark = "O"
)

// Board - 3x3 grid in row-major order, cells 0..8.
type Board [9]Mark

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - indexes of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

type Turn string

const (
	TurnPlayer   Turn = "player"
	TurnOpponent Turn = "opponent"
)

type Outcome string

const (
	OutcomeOngoing     Outcome = "ongoing"
	OutcomePlayerWin   Outcome = "player_win"
	OutcomeOpponentWin Outcome = "opponent_win"
	OutcomeDraw        Outcome = "draw"
)

func (that Outcome) IsTerminal() bool {
	return that != OutcomeOngoing
}

// GameState - board, side to move and result of a single game.
type GameState struct {
	Board  Board   `json:"board"`
	Turn   Turn    `json:"turn"`
	Result Outcome `json:"result"`
}

func (that GameState) IsTerminal() bool {
	return that.Result.IsTerminal()
}

func (that GameState) IsPlayerTurn() bool {
	return !that.IsTerminal() && that.Turn == TurnPlayer
}

func (that GameState) IsOpponentTurn() bool {
	return !that.IsTerminal() && that.Turn == TurnOpponent
}
