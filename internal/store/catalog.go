package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/sprouts/internal/content"
)

// collection maps a content kind onto its table.
type collection struct {
	table   string
	key     string
	columns []string // selected and inserted columns, key first
	update  []string // columns replaced on conflict
}

var collections = map[content.Kind]collection{
	content.Words: {
		table:   "words",
		key:     "word",
		columns: []string{"word", "image"},
		update:  []string{"image"},
	},
	content.CountingItems: {
		table:   "counting_items",
		key:     "name",
		columns: []string{"name", "image"},
		update:  []string{"image"},
	},
	content.ColorItems: {
		table:   "color_items",
		key:     "name",
		columns: []string{"name", "color", "image"},
		update:  []string{"color", "image"},
	},
}

func lookup(kind content.Kind) (collection, error) {
	c, ok := collections[kind]
	if !ok {
		return collection{}, content.Invalidf("unknown collection %q", kind)
	}
	return c, nil
}

// catalogRepo implements CatalogRepo on top of three SQLite tables.
type catalogRepo struct {
	db    *sql.DB
	locks map[content.Kind]*sync.Mutex
}

func (r *catalogRepo) Get(ctx context.Context, kind content.Kind, key string) (content.Item, error) {
	c, err := lookup(kind)
	if err != nil {
		return nil, err
	}

	query, args := builder().Select(c.columns...).
		From(entsql.Table(c.table)).
		Where(entsql.EQ(c.key, content.Normalize(key))).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("read %s", c.table))
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("read %s", c.table))
		}
		return nil, nil
	}
	item, err := scanItem(kind, rows)
	if err != nil {
		return nil, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("scan %s", c.table))
	}
	return item, nil
}

func (r *catalogRepo) GetAll(ctx context.Context, kind content.Kind) ([]content.Item, error) {
	c, err := lookup(kind)
	if err != nil {
		return nil, err
	}

	query, args := builder().Select(c.columns...).
		From(entsql.Table(c.table)).
		OrderBy(c.key).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("list %s", c.table))
	}
	defer rows.Close()

	var items []content.Item
	for rows.Next() {
		item, err := scanItem(kind, rows)
		if err != nil {
			return nil, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("scan %s", c.table))
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("list %s", c.table))
	}
	return items, nil
}

func (r *catalogRepo) Keys(ctx context.Context, kind content.Kind) ([]string, error) {
	c, err := lookup(kind)
	if err != nil {
		return nil, err
	}

	query, args := builder().Select(c.key).
		From(entsql.Table(c.table)).
		OrderBy(c.key).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("list %s", c.table))
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("scan %s", c.table))
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("list %s", c.table))
	}
	return keys, nil
}

func (r *catalogRepo) Put(ctx context.Context, item content.Item) error {
	if item == nil {
		return content.Invalidf("nothing to save")
	}
	if err := item.Validate(); err != nil {
		return err
	}
	c, err := lookup(item.Kind())
	if err != nil {
		return err
	}
	values := itemValues(item)
	if values == nil {
		return content.Invalidf("unsupported item type %T", item)
	}

	mu := r.locks[item.Kind()]
	mu.Lock()
	defer mu.Unlock()

	columns := append(append([]string{}, c.columns...), "created_at")
	values = append(values, time.Now().UTC())

	query, args := builder().Insert(c.table).
		Columns(columns...).
		Values(values...).
		OnConflict(
			entsql.ConflictColumns(c.key),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				for _, col := range c.update {
					u.SetExcluded(col)
				}
			}),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("save %s %q", c.table, item.Key()))
	}
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, kind content.Kind, key string) error {
	c, err := lookup(kind)
	if err != nil {
		return err
	}

	mu := r.locks[kind]
	mu.Lock()
	defer mu.Unlock()

	query, args := builder().Delete(c.table).
		Where(entsql.EQ(c.key, content.Normalize(key))).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("delete %s %q", c.table, key))
	}
	return nil
}

func (r *catalogRepo) Count(ctx context.Context, kind content.Kind) (int, error) {
	c, err := lookup(kind)
	if err != nil {
		return 0, err
	}

	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(c.table)).
		Query()

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("count %s", c.table))
	}
	return n, nil
}

func (r *catalogRepo) Clear(ctx context.Context, kind content.Kind) error {
	c, err := lookup(kind)
	if err != nil {
		return err
	}

	mu := r.locks[kind]
	mu.Lock()
	defer mu.Unlock()

	query, args := builder().Delete(c.table).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("clear %s", c.table))
	}
	return nil
}

func itemValues(item content.Item) []any {
	switch v := item.(type) {
	case content.WordItem:
		return []any{v.Word, v.Image}
	case content.CountingItem:
		return []any{v.Name, v.Image}
	case content.ColorItem:
		return []any{v.Name, v.Color, v.Image}
	}
	return nil
}

func scanItem(kind content.Kind, rows *sql.Rows) (content.Item, error) {
	switch kind {
	case content.Words:
		var w content.WordItem
		err := rows.Scan(&w.Word, &w.Image)
		return w, err
	case content.CountingItems:
		var c content.CountingItem
		err := rows.Scan(&c.Name, &c.Image)
		return c, err
	case content.ColorItems:
		var c content.ColorItem
		err := rows.Scan(&c.Name, &c.Color, &c.Image)
		return c, err
	}
	return nil, fmt.Errorf("unknown collection %q", kind)
}
