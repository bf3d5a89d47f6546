package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/sprouts/internal/content"
)

// Well-known settings keys.
const (
	KeyLastPlayer    = "player.last"
	KeyAPICredential = "llm.api_key"
	KeyLeaderboard   = "leaderboard."
)

// settingsRepo implements SettingsRepo.
type settingsRepo struct {
	db *sql.DB
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args := builder().Select("value").
		From(entsql.Table("settings")).
		Where(entsql.EQ("key", key)).
		Query()

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return "", false, nil
	case err != nil:
		return "", false, content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("read setting %q", key))
	}
	return value, true, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	query, args := builder().Insert("settings").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("save setting %q", key))
	}
	return nil
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().Delete("settings").
		Where(entsql.EQ("key", key)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("delete setting %q", key))
	}
	return nil
}

func (r *settingsRepo) DeletePrefix(ctx context.Context, prefix string) error {
	query, args := builder().Delete("settings").
		Where(entsql.HasPrefix("key", prefix)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return content.Wrap(content.StorageUnavailable, err, fmt.Sprintf("delete settings %q*", prefix))
	}
	return nil
}
