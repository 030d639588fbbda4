package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
)

type StatsRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Summary(ctx context.Context, difficulty entity.Difficulty) (*entity.Stats, error)
}

type statsRepository struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &statsRepository{
		conn: conn,
	}
}

func (that *statsRepository) Save(ctx context.Context, result *entity.GameResult) error {
	query := `INSERT INTO game_results (session_id, difficulty, outcome, moves, finished_at) VALUES (?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		result.SessionID,
		string(result.Difficulty),
		string(result.Outcome),
		result.Moves,
		result.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("can't save game result: %w", err)
	}

	return nil
}

// Summary - an empty difficulty aggregates every game.
func (that *statsRepository) Summary(ctx context.Context, difficulty entity.Difficulty) (*entity.Stats, error) {
	query := `SELECT
		COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		COUNT(*),
		COALESCE(MIN(CASE WHEN outcome = ? THEN moves END), 0)
	FROM game_results
	WHERE ? = '' OR difficulty = ?`

	stats := entity.Stats{Difficulty: difficulty}

	err := that.conn.QueryRowContext(ctx, query,
		string(entity.OutcomePlayerWin),
		string(entity.OutcomeOpponentWin),
		string(entity.OutcomeDraw),
		string(entity.OutcomePlayerWin),
		string(difficulty),
		string(difficulty),
	).Scan(&stats.PlayerWins, &stats.OpponentWins, &stats.Draws, &stats.Total, &stats.FewestMovesToWin)
	if err != nil {
		return nil, fmt.Errorf("can't summarize game results: %w", err)
	}

	return &stats, nil
}
