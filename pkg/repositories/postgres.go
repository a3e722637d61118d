package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/simon/migrations"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/cbodonnell/simon/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

// PostgresRepository keeps a single connection, which pgx does not allow
// to be used concurrently, so every call holds lock.
type PostgresRepository struct {
	lock sync.Mutex
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the embedded migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (*PostgresRepository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	pending, err := readMigrations(migrations.FS, migrations.PostgresDir)
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range pending {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
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
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveHighScore(ctx context.Context, score int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	INSERT INTO high_scores (id, score, updated_at) VALUES (1, $1, $2)
	ON CONFLICT (id) DO UPDATE SET score = $1, updated_at = $2;
	`
	_, err := r.conn.Exec(ctx, q, score, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save high score: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadHighScore(ctx context.Context) (*models.HighScore, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	SELECT score, updated_at FROM high_scores WHERE id = 1;
	`
	highScore := &models.HighScore{}
	if err := r.conn.QueryRow(ctx, q).Scan(&highScore.Score, &highScore.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan high score: %v", err)
	}

	return highScore, nil
}
