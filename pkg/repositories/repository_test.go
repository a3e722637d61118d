package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "simon.db")

	repository, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)

	_, err = repository.LoadHighScore(ctx)
	assert.True(t, IsNotFound(err), "empty store should report not found, got %v", err)

	require.NoError(t, repository.SaveHighScore(ctx, 7))
	require.NoError(t, repository.Close(ctx))

	reopened, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	defer reopened.Close(ctx)

	highScore, err := reopened.LoadHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, highScore.Score)
	assert.NotZero(t, highScore.UpdatedAt)

	require.NoError(t, reopened.SaveHighScore(ctx, 9))
	highScore, err = reopened.LoadHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, highScore.Score)
}

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repository := NewInMemoryRepository()

	_, err := repository.LoadHighScore(ctx)
	assert.True(t, IsNotFound(err))

	require.NoError(t, repository.SaveHighScore(ctx, 3))
	highScore, err := repository.LoadHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, highScore.Score)
	assert.NoError(t, repository.Close(ctx))
}

func TestPostgresRepository_RoundTrip(t *testing.T) {
	connStr := os.Getenv("SIMON_TEST_POSTGRES_URL")
	if connStr == "" {
		t.Skip("SIMON_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()

	repository, err := NewPostgresRepository(ctx, connStr)
	require.NoError(t, err)
	require.NoError(t, repository.SaveHighScore(ctx, 7))
	require.NoError(t, repository.Close(ctx))

	reopened, err := NewPostgresRepository(ctx, connStr)
	require.NoError(t, err)
	defer reopened.Close(ctx)

	highScore, err := reopened.LoadHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, highScore.Score)
}

func TestNewRepositoryFromURL(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		connStr string
		want    interface{}
		wantErr bool
	}{
		{
			name:    "memory",
			connStr: "memory://",
			want:    &InMemoryRepository{},
		},
		{
			name:    "sqlite absolute path",
			connStr: "sqlite://" + filepath.Join(t.TempDir(), "scores.db"),
			want:    &SQLiteRepository{},
		},
		{
			name:    "unknown scheme",
			connStr: "mysql://localhost/simon",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository, err := NewRepositoryFromURL(ctx, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer repository.Close(ctx)
			assert.IsType(t, tt.want, repository)
		})
	}
}
