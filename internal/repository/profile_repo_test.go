package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/saeid-a/CoachAIBack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProfileRepositoryOverwrites(t *testing.T) {
	repo := NewMemoryProfileRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.Profile{UserID: "U1", Age: models.NewText("30"), Gender: models.NewText("f")}))
	require.NoError(t, repo.Put(ctx, models.Profile{UserID: "U1", Age: models.NewText("31")}))

	got, err := repo.Get(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "31", got.Age.String())
	assert.Nil(t, got.Gender)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryProfileRepositoryNotFound(t *testing.T) {
	repo := NewMemoryProfileRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryProfileRepositoryCopiesRecords(t *testing.T) {
	repo := NewMemoryProfileRepository()
	ctx := context.Background()

	age := models.Text("30")
	profile := models.Profile{UserID: "U1", Age: &age}
	require.NoError(t, repo.Put(ctx, profile))

	age = "99"
	got, err := repo.Get(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "30", got.Age.String())

	*got.Age = "50"
	again, err := repo.Get(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "30", again.Age.String())
}

func TestMemoryProfileRepositoryConcurrentWriters(t *testing.T) {
	repo := NewMemoryProfileRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Put(ctx, models.Profile{UserID: fmt.Sprintf("U%d", i%5), Age: models.NewText(fmt.Sprint(i))})
			_, _ = repo.List(ctx)
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
