package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cbodonnell/swipemath/pkg/repositories/models"
)

// Repository persists finished games. Session state itself is never stored.
type Repository interface {
	Close(ctx context.Context) error
	// Ping checks that the database is reachable
	Ping(ctx context.Context) error
	SaveGameResult(ctx context.Context, result *models.GameResult) error
	// ListTopResults returns the best results ordered by score, highest first
	ListTopResults(ctx context.Context, limit int) ([]*models.GameResult, error)
	// GetBestResult returns the highest scoring result of a user
	GetBestResult(ctx context.Context, userID string) (*models.GameResult, error)
}

// NewRepository opens the repository for databaseURL. URLs starting with
// sqlite:// open a SQLite file; postgres:// and postgresql:// URLs connect to
// PostgreSQL. Migrations are read from the sub-directory of migrationsDir
// named after the driver.
func NewRepository(ctx context.Context, databaseURL string, migrationsDir string) (Repository, error) {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		return NewSQLiteRepository(ctx, path, filepath.Join(migrationsDir, "sqlite"))
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return NewPostgresRepository(ctx, databaseURL, filepath.Join(migrationsDir, "postgres"))
	default:
		return nil, fmt.Errorf("unsupported database url: %s", databaseURL)
	}
}
