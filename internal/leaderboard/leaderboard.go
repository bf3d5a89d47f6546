// Package leaderboard keeps each game mode's best scores per player in the
// settings store.
package leaderboard

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/abhisek/sprouts/internal/store"
)

// MaxEntries is how many players a board keeps.
const MaxEntries = 20

// Entry is one player's best score.
type Entry struct {
	Name  string
	Score int
}

// Board reads and updates the per-mode leaderboards. A board is stored as
// a JSON object mapping player name to score.
type Board struct {
	repo store.SettingsRepo
	mu   sync.Mutex
}

// New creates a Board over the settings repository.
func New(repo store.SettingsRepo) *Board {
	return &Board{repo: repo}
}

func key(mode string) string {
	return store.KeyLeaderboard + mode
}

// Top returns the entries for mode, best first. Ties are ordered by name.
func (b *Board) Top(ctx context.Context, mode string) ([]Entry, error) {
	scores, err := b.load(ctx, mode)
	if err != nil {
		return nil, err
	}
	return ranked(scores), nil
}

// Best returns the stored best score of name in mode, or 0.
func (b *Board) Best(ctx context.Context, mode, name string) (int, error) {
	scores, err := b.load(ctx, mode)
	if err != nil {
		return 0, err
	}
	return scores[strings.TrimSpace(name)], nil
}

// Record stores score for name when it beats their best. Only the top
// MaxEntries survive. It reports whether the board changed.
func (b *Board) Record(ctx context.Context, mode, name string, score int) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" || score <= 0 {
		return false, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	scores, err := b.load(ctx, mode)
	if err != nil {
		return false, err
	}
	if best, ok := scores[name]; ok && best >= score {
		return false, nil
	}
	scores[name] = score

	entries := ranked(scores)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	kept := make(map[string]int, len(entries))
	for _, e := range entries {
		kept[e.Name] = e.Score
	}
	if _, ok := kept[name]; !ok {
		return false, nil
	}

	data, err := json.Marshal(kept)
	if err != nil {
		return false, fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := b.repo.Set(ctx, key(mode), string(data)); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes every leaderboard.
func (b *Board) Clear(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.repo.DeletePrefix(ctx, store.KeyLeaderboard)
}

func (b *Board) load(ctx context.Context, mode string) (map[string]int, error) {
	raw, ok, err := b.repo.Get(ctx, key(mode))
	if err != nil {
		return nil, err
	}
	scores := map[string]int{}
	if !ok || raw == "" {
		return scores, nil
	}
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring unreadable %s leaderboard: %v\n", mode, err)
		return map[string]int{}, nil
	}
	return scores, nil
}

func ranked(scores map[string]int) []Entry {
	entries := make([]Entry, 0, len(scores))
	for name, score := range scores {
		entries = append(entries, Entry{Name: name, Score: score})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return entries
}
