package session

import (
	"context"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/puzzle"
)

// Loaded is the catalog snapshot a game is played from.
type Loaded struct {
	Mode     Mode
	Words    []content.WordItem
	Counting []content.CountingItem
	Colors   []content.ColorItem

	// Best is the player's stored best for Mode.
	Best int
}

// LoadContent reads the catalog for mode and the player's best score. It
// touches no controller state, so the UI may run it in the background.
func (c *Controller) LoadContent(ctx context.Context, mode Mode, player string) (*Loaded, error) {
	l := &Loaded{Mode: mode}
	var err error
	switch mode {
	case ModeWords:
		l.Words, err = c.content.Words(ctx)
	case ModeMath:
		l.Counting, err = c.content.CountingItems(ctx)
	case ModeColors:
		l.Colors, err = c.content.ColorItems(ctx)
	default:
		_, err = ParseMode(string(mode))
	}
	if err != nil {
		return nil, err
	}

	if c.scores != nil {
		best, err := c.scores.Best(ctx, string(mode), player)
		if err != nil {
			return nil, err
		}
		l.Best = best
	}
	return l, nil
}

// ContentLoaded finishes the loading state. An empty catalog or a load
// failure returns to the dashboard with a notice and the error is
// returned; otherwise the first round starts. Results for a mode other
// than the one being loaded are ignored.
func (c *Controller) ContentLoaded(l *Loaded, err error) error {
	if c.state != StateLoadingContent {
		return nil
	}
	if err == nil && l.Mode != c.mode {
		return nil
	}

	if err == nil {
		c.snap = l
		c.best = l.Best
		c.takeDirty(c.mode.Info().Content)
		err = c.firstRound()
	}
	if err != nil {
		c.notice = content.Message(err)
		c.resetGame()
		c.state = StateDashboard
		return err
	}

	c.state = StatePlaying
	return nil
}

func (c *Controller) firstRound() error {
	switch c.mode {
	case ModeWords:
		words, err := puzzle.BuildWordSession(c.rng, c.snap.Words)
		if err != nil {
			return err
		}
		c.words, c.wordIndex = words, 0
		c.newWordRound()
		return nil
	case ModeMath:
		return c.newMathRound()
	case ModeColors:
		return c.newColorRound()
	}
	return content.Invalidf("unknown game mode %q", c.mode)
}

// refresh re-reads the mode's catalog when it changed since the snapshot.
// On failure the old snapshot is kept.
func (c *Controller) refresh(ctx context.Context) {
	if c.snap == nil || !c.takeDirty(c.mode.Info().Content) {
		return
	}
	var err error
	switch c.mode {
	case ModeMath:
		var items []content.CountingItem
		if items, err = c.content.CountingItems(ctx); err == nil && len(items) > 0 {
			c.snap.Counting = items
		}
	case ModeColors:
		var items []content.ColorItem
		if items, err = c.content.ColorItems(ctx); err == nil && len(items) > 0 {
			c.snap.Colors = items
		}
	}
	c.warn(err)
}
