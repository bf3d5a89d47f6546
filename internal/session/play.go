package session

import (
	"context"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/puzzle"
)

// Tile is one scrambled letter of the word round.
type Tile struct {
	Letter rune
	Used   bool // moved into the guess
}

// Word returns the word being played and its position in the session.
func (c *Controller) Word() (item content.WordItem, index, total int) {
	if c.wordIndex < len(c.words) {
		item = c.words[c.wordIndex]
	}
	return item, c.wordIndex, len(c.words)
}

// Tiles returns the scrambled letters.
func (c *Controller) Tiles() []Tile { return c.tiles }

// Guess returns the letters picked so far.
func (c *Controller) Guess() []rune {
	out := make([]rune, len(c.guess))
	for i, t := range c.guess {
		out[i] = c.tiles[t].Letter
	}
	return out
}

// WrongGuess reports whether the full guess was checked and was wrong.
func (c *Controller) WrongGuess() bool { return c.wrongWord }

func (c *Controller) newWordRound() {
	item, _, _ := c.Word()
	letters := puzzle.Scramble(c.rng, item.Word)
	c.tiles = make([]Tile, len(letters))
	for i, l := range letters {
		c.tiles[i] = Tile{Letter: l}
	}
	c.guess = c.guess[:0]
	c.wrongWord = false
	c.token++
}

func (c *Controller) expectWordPlay(action string) error {
	if err := c.expect(action, StatePlaying); err != nil {
		return err
	}
	if c.mode != ModeWords {
		return &TransitionError{From: c.state, Action: action + " in " + string(c.mode) + " mode"}
	}
	return nil
}

// PickTile moves tile i into the guess. A complete guess is checked at
// once: a correct one moves to StateCorrectGuess, a wrong one costs a life
// and is marked until the player changes it.
func (c *Controller) PickTile(ctx context.Context, i int) error {
	if err := c.expectWordPlay("pick a letter"); err != nil {
		return err
	}
	if i < 0 || i >= len(c.tiles) || c.tiles[i].Used {
		return nil
	}

	c.tiles[i].Used = true
	c.guess = append(c.guess, i)
	c.wrongWord = false

	if len(c.guess) < len(c.tiles) {
		return nil
	}
	item, _, _ := c.Word()
	if puzzle.CheckWord(item.Word, c.Guess()) {
		c.correct(ctx)
		c.state = StateCorrectGuess
		return nil
	}
	if !c.wrong(ctx) {
		c.wrongWord = true
	}
	return nil
}

// ReturnTile moves the letter at guess position pos back to the tiles.
func (c *Controller) ReturnTile(pos int) error {
	if err := c.expectWordPlay("return a letter"); err != nil {
		return err
	}
	if pos < 0 || pos >= len(c.guess) {
		return nil
	}
	c.tiles[c.guess[pos]].Used = false
	c.guess = append(c.guess[:pos], c.guess[pos+1:]...)
	c.wrongWord = false
	return nil
}

// ClearGuess empties the guess and scrambles the word again.
func (c *Controller) ClearGuess() error {
	if err := c.expectWordPlay("clear the guess"); err != nil {
		return err
	}
	c.newWordRound()
	return nil
}

// NextWord continues after a solved word. The game ends once every word
// of the session was solved.
func (c *Controller) NextWord(ctx context.Context) error {
	if err := c.expect("continue", StateCorrectGuess); err != nil {
		return err
	}
	c.wordIndex++
	if c.wordIndex >= len(c.words) {
		c.gameOver(ctx, ReasonCompleted)
		return nil
	}
	c.newWordRound()
	c.state = StatePlaying
	return nil
}

func (c *Controller) newMathRound() error {
	m, err := puzzle.BuildMathRound(c.rng, c.snap.Counting)
	if err != nil {
		return err
	}
	c.math = m
	c.feedback, c.chosen = FeedbackNone, -1
	c.token++
	return nil
}

func (c *Controller) newColorRound() error {
	r, err := puzzle.BuildColorRound(c.rng, c.snap.Colors)
	if err != nil {
		return err
	}
	c.color = r
	c.feedback, c.chosen = FeedbackNone, -1
	c.token++
	return nil
}

// Choose answers the math or color round with the option at index i.
// Answers are ignored while feedback is showing. The returned Delay says
// when to call Resume: after a correct answer the next round follows,
// after a wrong one the same round can be tried again.
func (c *Controller) Choose(ctx context.Context, i int) (Delay, error) {
	if err := c.expect("answer", StatePlaying); err != nil {
		return Delay{}, err
	}
	if c.feedback != FeedbackNone {
		return Delay{}, nil
	}

	var right bool
	wrongDelay := WrongMathDelay
	switch c.mode {
	case ModeMath:
		if i < 0 || i >= len(c.math.Options) {
			return Delay{}, nil
		}
		right = c.math.Correct(c.math.Options[i])
	case ModeColors:
		if i < 0 || i >= len(c.color.Options) {
			return Delay{}, nil
		}
		right = c.color.Correct(c.color.Options[i])
		wrongDelay = WrongColorDelay
	default:
		return Delay{}, &TransitionError{From: c.state, Action: "choose an option in " + string(c.mode) + " mode"}
	}

	c.token++
	if right {
		c.correct(ctx)
		c.feedback = FeedbackCorrect
		return Delay{Token: c.token, After: CorrectDelay}, nil
	}
	if c.wrong(ctx) {
		return Delay{}, nil
	}
	c.feedback, c.chosen = FeedbackWrong, i
	return Delay{Token: c.token, After: wrongDelay}, nil
}

// Resume ends the feedback started by Choose. Tokens from earlier rounds
// or games are ignored.
func (c *Controller) Resume(ctx context.Context, token int) error {
	if token != c.token || c.state != StatePlaying || c.feedback == FeedbackNone {
		return nil
	}
	if c.feedback == FeedbackWrong {
		c.feedback, c.chosen = FeedbackNone, -1
		return nil
	}

	c.refresh(ctx)
	var err error
	switch c.mode {
	case ModeMath:
		err = c.newMathRound()
	case ModeColors:
		err = c.newColorRound()
	}
	if err != nil {
		c.notice = content.Message(err)
		c.Home()
	}
	return err
}
