package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbodonnell/simon/migrations"
	"github.com/cbodonnell/simon/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database file at path and applies the embedded migrations.
func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	pending, err := readMigrations(migrations.FS, migrations.SQLiteDir)
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range pending {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveHighScore(ctx context.Context, score int) error {
	q := `
	INSERT OR REPLACE INTO high_scores (id, score, updated_at)
	VALUES (1, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, score, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save high score: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadHighScore(ctx context.Context) (*models.HighScore, error) {
	q := `
	SELECT score, updated_at FROM high_scores WHERE id = 1;
	`
	highScore := &models.HighScore{}
	if err := r.db.QueryRowContext(ctx, q).Scan(&highScore.Score, &highScore.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan high score: %v", err)
	}

	return highScore, nil
}
