package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/zhuoyaazh/my-pixel-world/internal/apperror"
)

type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty - an empty value selects the hard opponent.
func ParseDifficulty(value string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(value))) {
	case "", DifficultyHard:
		return DifficultyHard, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

// Session owns exactly one GameState between requests.
type Session struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	State      GameState  `json:"state"`
	Moves      int        `json:"moves"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewSession(id string, difficulty Difficulty, state GameState, now time.Time) *Session {
	return &Session{
		ID:         id,
		Difficulty: difficulty,
		State:      state,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (that *Session) IsFinished() bool {
	return that.State.IsTerminal()
}
