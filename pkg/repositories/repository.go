package repositories

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"sort"

	"github.com/cbodonnell/simon/pkg/repositories/models"
)

// Repository stores the high score. LoadHighScore returns *ErrNotFound
// when nothing was ever written.
type Repository interface {
	Close(ctx context.Context) error
	SaveHighScore(ctx context.Context, score int) error
	LoadHighScore(ctx context.Context) (*models.HighScore, error)
}

// NewRepositoryFromURL opens the repository named by a database URL.
// Supported schemes are sqlite, postgres, postgresql and memory.
func NewRepositoryFromURL(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		return NewSQLiteRepository(ctx, u.Host+u.Path)
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, u.String())
	case "memory":
		return NewInMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}

// readMigrations returns the contents of every .sql file in dir, sorted by name.
func readMigrations(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var migrations []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		migrationPath := dir + "/" + entry.Name()
		migration, err := fs.ReadFile(fsys, migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		migrations = append(migrations, string(migration))
	}
	return migrations, nil
}
