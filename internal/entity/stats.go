package entity

import "time"

// GameResult - a finished game as recorded in the results store.
type GameResult struct {
	SessionID  string     `json:"session_id"`
	Difficulty Difficulty `json:"difficulty"`
	Outcome    Outcome    `json:"outcome"`
	Moves      int        `json:"moves"`
	FinishedAt time.Time  `json:"finished_at"`
}

func NewGameResult(session *Session, now time.Time) *GameResult {
	return &GameResult{
		SessionID:  session.ID,
		Difficulty: session.Difficulty,
		Outcome:    session.State.Result,
		Moves:      session.Moves,
		FinishedAt: now,
	}
}

type Stats struct {
	Difficulty   Difficulty `json:"difficulty"`
	PlayerWins   int        `json:"player_wins"`
	OpponentWins int        `json:"opponent_wins"`
	Draws        int        `json:"draws"`
	Total        int        `json:"total"`
	// FewestMovesToWin is zero until the player has won at least once.
	FewestMovesToWin int `json:"fewest_moves_to_win,omitempty"`
}
