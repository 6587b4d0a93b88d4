package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/swipemath/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// a single connection keeps in-memory databases shared and serializes writes
	db.SetMaxOpenConns(1)

	statements, err := readMigrations(migrations)
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range statements {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) SaveGameResult(ctx context.Context, result *models.GameResult) error {
	q := `
	INSERT INTO game_results (id, session_id, user_id, score, level, final_number, rounds_played, correct_choices, finished_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q,
		result.ID,
		result.SessionID,
		result.UserID,
		result.Score,
		result.Level,
		result.FinalNumber,
		result.RoundsPlayed,
		result.CorrectChoices,
		result.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game result: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) ListTopResults(ctx context.Context, limit int) ([]*models.GameResult, error) {
	q := `
	SELECT id, session_id, user_id, score, level, final_number, rounds_played, correct_choices, finished_at
	FROM game_results
	ORDER BY score DESC, finished_at ASC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %v", err)
	}
	defer rows.Close()

	results := []*models.GameResult{}
	for rows.Next() {
		result, err := scanSQLiteResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game results: %v", err)
	}

	return results, nil
}

func (r *SQLiteRepository) GetBestResult(ctx context.Context, userID string) (*models.GameResult, error) {
	q := `
	SELECT id, session_id, user_id, score, level, final_number, rounds_played, correct_choices, finished_at
	FROM game_results
	WHERE user_id = ?
	ORDER BY score DESC, finished_at ASC
	LIMIT 1;
	`
	result, err := scanSQLiteResult(r.db.QueryRowContext(ctx, q, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, err
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLiteResult(row scanner) (*models.GameResult, error) {
	result := &models.GameResult{}
	var finishedAt int64
	err := row.Scan(
		&result.ID,
		&result.SessionID,
		&result.UserID,
		&result.Score,
		&result.Level,
		&result.FinalNumber,
		&result.RoundsPlayed,
		&result.CorrectChoices,
		&finishedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan game result: %v", err)
	}
	result.FinishedAt = time.UnixMilli(finishedAt).UTC()
	return result, nil
}
