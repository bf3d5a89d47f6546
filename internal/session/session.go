// Package session is the game's progression controller. It owns the
// state machine that moves the player between the dashboard, the
// mini-games, the game over screen, the leaderboards and settings, and
// it keeps score and lives while a game is played.
//
// The controller is not safe for concurrent use; the UI drives it from a
// single goroutine. LoadContent and ContentChanged are the exceptions.
package session

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/abhisek/sprouts/internal/catalog"
	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/leaderboard"
	"github.com/abhisek/sprouts/internal/puzzle"
	"github.com/abhisek/sprouts/internal/store"
)

// Content is the read side of the catalog. *catalog.Catalog satisfies it.
type Content interface {
	Words(ctx context.Context) ([]content.WordItem, error)
	CountingItems(ctx context.Context) ([]content.CountingItem, error)
	ColorItems(ctx context.Context) ([]content.ColorItem, error)
}

// Scores is the leaderboard. *leaderboard.Board satisfies it.
type Scores interface {
	Top(ctx context.Context, mode string) ([]leaderboard.Entry, error)
	Best(ctx context.Context, mode, name string) (int, error)
	Record(ctx context.Context, mode, name string, score int) (bool, error)
}

// Controller is the session and progression state machine.
type Controller struct {
	content  Content
	scores   Scores
	settings store.SettingsRepo
	rng      *rand.Rand

	state   State
	mode    Mode
	player  string
	notice  string
	warning string

	progress Progress
	best     int // best score stored before the current game
	snap     *Loaded

	words     []content.WordItem
	wordIndex int
	tiles     []Tile
	guess     []int
	wrongWord bool

	math     *puzzle.MathRound
	color    *puzzle.ColorRound
	feedback Feedback
	chosen   int
	token    int

	summary   *Summary
	boardMode Mode
	board     []leaderboard.Entry

	dirtyMu sync.Mutex
	dirty   map[content.Kind]bool
}

// New creates a Controller in the dashboard state. settings may be nil;
// rng nil uses a randomly seeded source.
func New(c Content, scores Scores, settings store.SettingsRepo, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = puzzle.NewRand()
	}
	return &Controller{
		content:  c,
		scores:   scores,
		settings: settings,
		rng:      rng,
		chosen:   -1,
		dirty:    make(map[content.Kind]bool),
	}
}

func (c *Controller) State() State              { return c.state }
func (c *Controller) Mode() Mode                { return c.mode }
func (c *Controller) Player() string            { return c.player }
func (c *Controller) Progress() Progress        { return c.progress }
func (c *Controller) Summary() *Summary         { return c.summary }
func (c *Controller) Feedback() Feedback        { return c.feedback }
func (c *Controller) Math() *puzzle.MathRound   { return c.math }
func (c *Controller) Color() *puzzle.ColorRound { return c.color }

// Chosen is the option index of the last wrong answer, or -1.
func (c *Controller) Chosen() int { return c.chosen }

// Best is the player's stored best for the current mode when the game
// started.
func (c *Controller) Best() int { return c.best }

// Notice is the message shown on the dashboard, e.g. after a mode had no
// content.
func (c *Controller) Notice() string { return c.notice }

// Warning is the last non-fatal storage problem, or "".
func (c *Controller) Warning() string { return c.warning }

// DismissNotice clears the notice and warning.
func (c *Controller) DismissNotice() {
	c.notice = ""
	c.warning = ""
}

// Leaderboard returns the mode and entries being viewed.
func (c *Controller) Leaderboard() (Mode, []leaderboard.Entry) {
	return c.boardMode, c.board
}

func (c *Controller) warn(err error) {
	if err != nil {
		c.warning = content.Message(err)
	}
}

func (c *Controller) expect(action string, states ...State) error {
	for _, s := range states {
		if c.state == s {
			return nil
		}
	}
	return &TransitionError{From: c.state, Action: action}
}

// LoadLastPlayer fills the player name from the settings store.
func (c *Controller) LoadLastPlayer(ctx context.Context) {
	if c.settings == nil {
		return
	}
	name, ok, err := c.settings.Get(ctx, store.KeyLastPlayer)
	if err != nil {
		c.warn(err)
		return
	}
	if ok {
		c.player = name
	}
}

// Start moves from the dashboard to mode selection. A name is required
// and is remembered as the last player.
func (c *Controller) Start(ctx context.Context, name string) error {
	if err := c.expect("start", StateDashboard); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return content.Errorf(content.InvalidInput, "Please enter your name first!")
	}

	c.player = name
	c.DismissNotice()
	if c.settings != nil {
		c.warn(c.settings.Set(ctx, store.KeyLastPlayer, name))
	}
	c.state = StateModeSelection
	return nil
}

// SelectMode begins loading mode. The caller then runs LoadContent and
// hands its result to ContentLoaded.
func (c *Controller) SelectMode(mode Mode) error {
	if err := c.expect("select a mode", StateModeSelection); err != nil {
		return err
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	c.mode = mode
	c.resetGame()
	c.state = StateLoadingContent
	return nil
}

// Enter selects mode and loads it synchronously.
func (c *Controller) Enter(ctx context.Context, mode Mode) error {
	if err := c.SelectMode(mode); err != nil {
		return err
	}
	loaded, err := c.LoadContent(ctx, mode, c.player)
	return c.ContentLoaded(loaded, err)
}

// OpenLeaderboards moves from the dashboard to the leaderboard menu.
func (c *Controller) OpenLeaderboards() error {
	if err := c.expect("open leaderboards", StateDashboard); err != nil {
		return err
	}
	c.DismissNotice()
	c.state = StateLeaderboardSelection
	return nil
}

// ViewLeaderboard shows the board for mode.
func (c *Controller) ViewLeaderboard(ctx context.Context, mode Mode) error {
	if err := c.expect("view a leaderboard", StateLeaderboardSelection); err != nil {
		return err
	}
	entries, err := c.scores.Top(ctx, string(mode))
	if err != nil {
		c.warn(err)
		entries = nil
	}
	c.boardMode = mode
	c.board = entries
	c.state = StateLeaderboardView
	return nil
}

// OpenSettings moves from the dashboard to the content settings.
func (c *Controller) OpenSettings() error {
	if err := c.expect("open settings", StateDashboard); err != nil {
		return err
	}
	c.DismissNotice()
	c.state = StateSettings
	return nil
}

// PlayAgain returns from game over to mode selection.
func (c *Controller) PlayAgain() error {
	if err := c.expect("play again", StateGameOver); err != nil {
		return err
	}
	c.summary = nil
	c.state = StateModeSelection
	return nil
}

// Home abandons whatever is on screen and returns to the dashboard.
func (c *Controller) Home() {
	c.resetGame()
	c.summary = nil
	c.board = nil
	c.state = StateDashboard
}

// Back goes one level up: the leaderboard returns to its menu and every
// other state returns to the dashboard.
func (c *Controller) Back() {
	if c.state == StateLeaderboardView {
		c.board = nil
		c.state = StateLeaderboardSelection
		return
	}
	c.Home()
}

// ContentChanged marks a catalog as changed so the next round re-reads
// it. It is safe to call from any goroutine and matches the
// catalog.Subscribe callback.
func (c *Controller) ContentChanged(ch catalog.Change) {
	c.dirtyMu.Lock()
	c.dirty[ch.Kind] = true
	c.dirtyMu.Unlock()
}

func (c *Controller) takeDirty(kind content.Kind) bool {
	c.dirtyMu.Lock()
	defer c.dirtyMu.Unlock()
	d := c.dirty[kind]
	delete(c.dirty, kind)
	return d
}

func (c *Controller) resetGame() {
	c.progress = NewProgress()
	c.best = 0
	c.snap = nil
	c.words, c.wordIndex = nil, 0
	c.tiles, c.guess, c.wrongWord = nil, nil, false
	c.math, c.color = nil, nil
	c.feedback, c.chosen = FeedbackNone, -1
	c.token++
}

// correct applies a correct answer and records the score.
func (c *Controller) correct(ctx context.Context) {
	c.progress.Correct()
	if c.scores == nil {
		return
	}
	if _, err := c.scores.Record(ctx, string(c.mode), c.player, c.progress.Score); err != nil {
		c.warn(err)
	}
}

// wrong applies a wrong answer and ends the game when no lives are left.
func (c *Controller) wrong(ctx context.Context) (over bool) {
	if c.progress.Wrong() {
		c.gameOver(ctx, ReasonNoLives)
		return true
	}
	return false
}

func (c *Controller) gameOver(ctx context.Context, reason Reason) {
	high := max(c.best, c.progress.Score)
	if c.scores != nil {
		best, err := c.scores.Best(ctx, string(c.mode), c.player)
		if err != nil {
			c.warn(err)
		} else {
			high = best
		}
	}

	c.summary = &Summary{
		Mode:         c.mode,
		Player:       c.player,
		Reason:       reason,
		Score:        c.progress.Score,
		HighScore:    high,
		Rounds:       c.progress.Rounds,
		PreviousBest: c.best,
	}
	c.feedback, c.chosen = FeedbackNone, -1
	c.token++
	c.state = StateGameOver
}
