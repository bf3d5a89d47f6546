package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprouts/internal/content"
)

const testImage = "data:image/png;base64,iVBORw=="

func TestCatalogPutGet(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, content.WordItem{Word: "sun", Image: testImage}))
	require.NoError(t, repo.Put(ctx, content.CountingItem{Name: "apple", Image: testImage}))
	require.NoError(t, repo.Put(ctx, content.ColorItem{Name: "car", Color: "red", Image: testImage}))

	got, err := repo.Get(ctx, content.Words, "sun")
	require.NoError(t, err)
	assert.Equal(t, content.WordItem{Word: "sun", Image: testImage}, got)

	got, err = repo.Get(ctx, content.ColorItems, "car")
	require.NoError(t, err)
	assert.Equal(t, content.ColorItem{Name: "car", Color: "red", Image: testImage}, got)

	// Collections are independent.
	got, err = repo.Get(ctx, content.CountingItems, "sun")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogLookupNormalizesKey(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, content.WordItem{Word: "cat", Image: testImage}))

	for _, key := range []string{"cat", "Cat", "C@T!", " cat "} {
		got, err := repo.Get(ctx, content.Words, key)
		require.NoError(t, err)
		assert.Equal(t, content.WordItem{Word: "cat", Image: testImage}, got, key)
	}

	require.NoError(t, repo.Delete(ctx, content.Words, "CAT"))
	got, err := repo.Get(ctx, content.Words, "cat")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogGetAllOrdered(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	ctx := context.Background()

	for _, w := range []string{"sun", "cat", "moon"} {
		require.NoError(t, repo.Put(ctx, content.WordItem{Word: w, Image: testImage}))
	}

	items, err := repo.GetAll(ctx, content.Words)
	require.NoError(t, err)
	var keys []string
	for _, it := range items {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []string{"cat", "moon", "sun"}, keys)

	onlyKeys, err := repo.Keys(ctx, content.Words)
	require.NoError(t, err)
	assert.Equal(t, keys, onlyKeys)

	empty, err := repo.GetAll(ctx, content.ColorItems)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCatalogPutIdempotent(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	ctx := context.Background()
	item := content.ColorItem{Name: "car", Color: "red", Image: testImage}

	require.NoError(t, repo.Put(ctx, item))
	once, err := repo.GetAll(ctx, content.ColorItems)
	require.NoError(t, err)

	require.NoError(t, repo.Put(ctx, item))
	twice, err := repo.GetAll(ctx, content.ColorItems)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestCatalogPutReplaces(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, content.ColorItem{Name: "car", Color: "red", Image: testImage}))
	require.NoError(t, repo.Put(ctx, content.ColorItem{Name: "car", Color: "blue", Image: "data:image/png;base64,AA=="}))

	got, err := repo.Get(ctx, content.ColorItems, "car")
	require.NoError(t, err)
	assert.Equal(t, content.ColorItem{Name: "car", Color: "blue", Image: "data:image/png;base64,AA=="}, got)

	n, err := repo.Count(ctx, content.ColorItems)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCatalogPutRejectsInvalid(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	ctx := context.Background()

	err := repo.Put(ctx, content.WordItem{Word: "Sun!", Image: testImage})
	assert.True(t, content.Is(err, content.InvalidInput))

	err = repo.Put(ctx, content.ColorItem{Name: "car", Image: testImage})
	assert.True(t, content.Is(err, content.InvalidInput))

	err = repo.Put(ctx, nil)
	assert.True(t, content.Is(err, content.InvalidInput))
}

func TestCatalogDeleteIdempotent(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, content.Words, "ghost"))

	require.NoError(t, repo.Put(ctx, content.WordItem{Word: "sun", Image: testImage}))
	require.NoError(t, repo.Delete(ctx, content.Words, "sun"))
	require.NoError(t, repo.Delete(ctx, content.Words, "sun"))

	got, err := repo.Get(ctx, content.Words, "sun")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogClear(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, content.WordItem{Word: "sun", Image: testImage}))
	require.NoError(t, repo.Put(ctx, content.CountingItem{Name: "apple", Image: testImage}))
	require.NoError(t, repo.Clear(ctx, content.Words))

	n, err := repo.Count(ctx, content.Words)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = repo.Count(ctx, content.CountingItems)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCatalogUnknownKind(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	_, err := repo.GetAll(context.Background(), "shapes")
	assert.True(t, content.Is(err, content.InvalidInput))
}

func TestCatalogSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprouts.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.CatalogRepo().Put(ctx, content.CountingItem{Name: "apple", Image: testImage}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.CatalogRepo().Get(ctx, content.CountingItems, "apple")
	require.NoError(t, err)
	assert.Equal(t, content.CountingItem{Name: "apple", Image: testImage}, got)
}

func TestCatalogConcurrentWrites(t *testing.T) {
	repo := openTestStore(t).CatalogRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			word := fmt.Sprintf("w%c", 'a'+i)
			if err := repo.Put(ctx, content.WordItem{Word: word, Image: testImage}); err != nil {
				t.Errorf("put %s: %v", word, err)
			}
			if i%2 == 0 {
				if err := repo.Delete(ctx, content.Words, word); err != nil {
					t.Errorf("delete %s: %v", word, err)
				}
			}
		}()
	}
	wg.Wait()

	n, err := repo.Count(ctx, content.Words)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}
