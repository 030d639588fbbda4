package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
	"github.com/zhuoyaazh/my-pixel-world/internal/pkg"
	"github.com/zhuoyaazh/my-pixel-world/internal/tictactoe"
)

type sessionRepoDep interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
}

type statsRepoDep interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Summary(ctx context.Context, difficulty entity.Difficulty) (*entity.Stats, error)
}

type tokenIssuerDep interface {
	GenerateToken(sessionID string) (string, error)
}

// GameManager - owns the game state of every session and drives the engine with it.
type GameManager struct {
	logger *slog.Logger

	sessionRepo sessionRepoDep
	statsRepo   statsRepoDep
	tokens      tokenIssuerDep

	locks       *sessionLocks
	now         func() time.Time
	newID       func() string
	newOpponent func(difficulty entity.Difficulty) tictactoe.Opponent
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepoDep, statsRepo statsRepoDep, tokens tokenIssuerDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		statsRepo:   statsRepo,
		tokens:      tokens,

		locks: newSessionLocks(),
		now:   time.Now,
		newID: pkg.GenerateSessionID,
		newOpponent: func(difficulty entity.Difficulty) tictactoe.Opponent {
			return tictactoe.OpponentFor(difficulty, nil)
		},
	}
}

// NewGame - starts a session with the initial state and signs a token for it.
func (that *GameManager) NewGame(ctx context.Context, difficulty entity.Difficulty) (*entity.Session, string, error) {
	session := entity.NewSession(that.newID(), difficulty, tictactoe.CreateInitialState(), that.now())

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := that.tokens.GenerateToken(session.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	that.logger.Info("game created", "sessionID", session.ID, "difficulty", difficulty)

	return session, token, nil
}

func (that *GameManager) GetGame(ctx context.Context, sessionID string) (*entity.Session, error) {
	return that.getSession(ctx, sessionID)
}

// MakeTurn - places the player's mark and, while the game is still going, answers with
// the opponent's mark. A rejected move returns the stored session together with the error.
func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", sessionID)

	unlock := that.locks.lock(sessionID)
	defer unlock()

	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state, err := tictactoe.ApplyPlayerMove(session.State, cell)
	if err != nil {
		return session, fmt.Errorf("failed to make turn: %w", err)
	}

	if !state.IsTerminal() {
		state, err = tictactoe.ApplyOpponentMoveWith(state, that.newOpponent(session.Difficulty))
		if err != nil {
			log.Error("opponent failed to move", "error", err)
			return nil, fmt.Errorf("opponent failed to make turn: %w", err)
		}
	}

	session.State = state
	session.Moves++
	session.UpdatedAt = that.now()

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	if session.IsFinished() {
		that.recordResult(ctx, session)
	}

	return session, nil
}

// ResetGame - starts the session over; the token stays valid.
func (that *GameManager) ResetGame(ctx context.Context, sessionID string) (*entity.Session, error) {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.State = tictactoe.Reset()
	session.Moves = 0
	session.UpdatedAt = that.now()

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Stats - an empty difficulty summarizes every recorded game.
func (that *GameManager) Stats(ctx context.Context, difficulty entity.Difficulty) (*entity.Stats, error) {
	stats, err := that.statsRepo.Summary(ctx, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (that *GameManager) getSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *GameManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

// recordResult - a lost result only costs the high score table, the game itself is stored.
func (that *GameManager) recordResult(ctx context.Context, session *entity.Session) {
	log := that.logger.With("method", "recordResult", "sessionID", session.ID)

	if err := that.statsRepo.Save(ctx, entity.NewGameResult(session, that.now())); err != nil {
		log.Error("failed to save game result", "error", err)
		return
	}

	log.Info("game finished", "outcome", session.State.Result, "moves", session.Moves)
}
