package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/store"
)

const img = "data:image/png;base64,iVBORw=="

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "sprouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return New(st.CatalogRepo())
}

func TestCatalogNotifiesOnWrite(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	var got []Change
	unsubscribe := c.Subscribe(func(ch Change) { got = append(got, ch) })

	require.NoError(t, c.Put(ctx, content.WordItem{Word: "sun", Image: img}))
	require.NoError(t, c.Delete(ctx, content.Words, "sun"))
	require.NoError(t, c.Clear(ctx, content.ColorItems))

	assert.Equal(t, []Change{
		{Kind: content.Words, Key: "sun", Op: OpPut},
		{Kind: content.Words, Key: "sun", Op: OpDelete},
		{Kind: content.ColorItems, Op: OpClear},
	}, got)

	unsubscribe()
	require.NoError(t, c.Put(ctx, content.WordItem{Word: "moon", Image: img}))
	assert.Len(t, got, 3)
}

func TestCatalogNormalizedLookup(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	var got []Change
	c.Subscribe(func(ch Change) { got = append(got, ch) })
	require.NoError(t, c.Put(ctx, content.WordItem{Word: "cat", Image: img}))

	it, err := c.Get(ctx, content.Words, "C@T!")
	require.NoError(t, err)
	assert.Equal(t, content.WordItem{Word: "cat", Image: img}, it)

	ok, err := c.Has(ctx, content.Words, "Cat")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Delete(ctx, content.Words, " CAT "))
	ok, err = c.Has(ctx, content.Words, "cat")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Change{Kind: content.Words, Key: "cat", Op: OpDelete}, got[len(got)-1])
}

func TestCatalogNoNotifyOnFailure(t *testing.T) {
	c := newTestCatalog(t)
	calls := 0
	c.Subscribe(func(Change) { calls++ })

	err := c.Put(context.Background(), content.WordItem{Word: "", Image: img})
	assert.True(t, content.Is(err, content.InvalidInput))
	assert.Zero(t, calls)
}

func TestCatalogTypedAccessors(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, content.WordItem{Word: "sun", Image: img}))
	require.NoError(t, c.Put(ctx, content.CountingItem{Name: "apple", Image: img}))
	require.NoError(t, c.Put(ctx, content.ColorItem{Name: "car", Color: "red", Image: img}))

	words, err := c.Words(ctx)
	require.NoError(t, err)
	assert.Equal(t, []content.WordItem{{Word: "sun", Image: img}}, words)

	counting, err := c.CountingItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, "apple", counting[0].Name)

	colors, err := c.ColorItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, "red", colors[0].Color)

	ok, err := c.Has(ctx, content.Words, "sun")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.Has(ctx, content.Words, "cat")
	require.NoError(t, err)
	assert.False(t, ok)
}
