package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cbodonnell/swipemath/pkg/log"
	"github.com/cbodonnell/swipemath/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	// pgx.Conn is not safe for concurrent use
	connLock sync.Mutex
	conn     *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	statements, err := readMigrations(migrations)
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range statements {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.connLock.Lock()
	defer r.connLock.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	r.connLock.Lock()
	defer r.connLock.Unlock()
	return r.conn.Ping(ctx)
}

func (r *PostgresRepository) SaveGameResult(ctx context.Context, result *models.GameResult) error {
	r.connLock.Lock()
	defer r.connLock.Unlock()

	q := `
	INSERT INTO game_results (id, session_id, user_id, score, level, final_number, rounds_played, correct_choices, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.conn.Exec(ctx, q,
		result.ID,
		result.SessionID,
		result.UserID,
		result.Score,
		result.Level,
		result.FinalNumber,
		result.RoundsPlayed,
		result.CorrectChoices,
		result.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game result: %v", err)
	}

	return nil
}

func (r *PostgresRepository) ListTopResults(ctx context.Context, limit int) ([]*models.GameResult, error) {
	r.connLock.Lock()
	defer r.connLock.Unlock()

	q := `
	SELECT id, session_id, user_id, score, level, final_number, rounds_played, correct_choices, finished_at
	FROM game_results
	ORDER BY score DESC, finished_at ASC
	LIMIT $1;
	`
	rows, err := r.conn.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %v", err)
	}
	defer rows.Close()

	results := []*models.GameResult{}
	for rows.Next() {
		result, err := scanPostgresResult(rows)
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

func (r *PostgresRepository) GetBestResult(ctx context.Context, userID string) (*models.GameResult, error) {
	r.connLock.Lock()
	defer r.connLock.Unlock()

	q := `
	SELECT id, session_id, user_id, score, level, final_number, rounds_played, correct_choices, finished_at
	FROM game_results
	WHERE user_id = $1
	ORDER BY score DESC, finished_at ASC
	LIMIT 1;
	`
	result, err := scanPostgresResult(r.conn.QueryRow(ctx, q, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, err
	}

	return result, nil
}

func scanPostgresResult(row pgx.Row) (*models.GameResult, error) {
	result := &models.GameResult{}
	err := row.Scan(
		&result.ID,
		&result.SessionID,
		&result.UserID,
		&result.Score,
		&result.Level,
		&result.FinalNumber,
		&result.RoundsPlayed,
		&result.CorrectChoices,
		&result.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan game result: %v", err)
	}
	return result, nil
}
