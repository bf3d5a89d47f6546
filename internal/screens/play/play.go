// Package play renders a running game and forwards the player's answers
// to the controller.
package play

import (
	"context"
	"strconv"
	"time"
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/ui/components"
	"github.com/abhisek/sprouts/internal/ui/layout"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

// resumeMsg ends the feedback pause that Choose asked for.
type resumeMsg struct {
	token int
}

// Screen shows the current round of any mode.
type Screen struct {
	ctx context.Context
	ctl *session.Controller

	choices components.MultiChoice
	round   any // the math or color round the choices were built for
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the play screen.
func New(ctx context.Context, ctl *session.Controller) *Screen {
	s := &Screen{ctx: ctx, ctl: ctl}
	s.syncChoices()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return s.ctl.Mode().Info().Name
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.ctl.State() == session.StateCorrectGuess {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next word"},
			{Key: "Esc", Description: "Stop"},
		}
	}
	if s.ctl.Mode() == session.ModeWords {
		return []layout.KeyHint{
			{Key: "a-z", Description: "Pick letter"},
			{Key: "Bksp", Description: "Undo"},
			{Key: "Tab", Description: "Shuffle"},
			{Key: "Esc", Description: "Stop"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Move"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumeMsg:
		_ = s.ctl.Resume(s.ctx, msg.token)
		s.syncChoices()
		return s, nil
	case tea.KeyPressMsg:
		if s.ctl.Mode() == session.ModeWords {
			return s, s.updateWord(msg)
		}
		return s, s.updateChoice(msg)
	}
	return s, nil
}

func (s *Screen) updateWord(msg tea.KeyPressMsg) tea.Cmd {
	if s.ctl.State() == session.StateCorrectGuess {
		if k := msg.String(); k == "enter" || k == "space" {
			_ = s.ctl.NextWord(s.ctx)
		}
		return nil
	}

	switch msg.String() {
	case "backspace":
		_ = s.ctl.ReturnTile(len(s.ctl.Guess()) - 1)
		return nil
	case "tab":
		_ = s.ctl.ClearGuess()
		return nil
	}

	runes := []rune(msg.Text)
	if len(runes) != 1 {
		return nil
	}
	r := runes[0]
	if n, err := strconv.Atoi(string(r)); err == nil && n >= 1 {
		_ = s.ctl.PickTile(s.ctx, n-1)
		return nil
	}
	for i, t := range s.ctl.Tiles() {
		if !t.Used && unicode.ToLower(t.Letter) == unicode.ToLower(r) {
			_ = s.ctl.PickTile(s.ctx, i)
			return nil
		}
	}
	return nil
}

func (s *Screen) updateChoice(msg tea.KeyPressMsg) tea.Cmd {
	s.syncChoices()
	var picked int
	s.choices, picked = s.choices.Update(msg)
	if picked < 0 {
		return nil
	}

	d, err := s.ctl.Choose(s.ctx, picked)
	s.syncChoices()
	if err != nil || !d.Pending() {
		return nil
	}
	return tea.Tick(d.After, func(time.Time) tea.Msg {
		return resumeMsg{token: d.Token}
	})
}

// syncChoices rebuilds the option row when the round changed and copies
// the controller's feedback onto it.
func (s *Screen) syncChoices() {
	var (
		round   any
		options []string
		right   = -1
	)
	switch s.ctl.Mode() {
	case session.ModeMath:
		m := s.ctl.Math()
		if m == nil {
			return
		}
		round = m
		for i, n := range m.Options {
			options = append(options, strconv.Itoa(n))
			if m.Correct(n) {
				right = i
			}
		}
	case session.ModeColors:
		c := s.ctl.Color()
		if c == nil {
			return
		}
		round = c
		options = c.Options
		for i, opt := range c.Options {
			if c.Correct(opt) {
				right = i
			}
		}
	default:
		return
	}

	if round != s.round {
		s.round = round
		s.choices = components.NewMultiChoice(options)
		if s.ctl.Mode() == session.ModeColors {
			s.choices.Swatch = func(name string) string { return theme.Swatches[name] }
		}
	}

	fb := s.ctl.Feedback()
	s.choices.Locked = fb != session.FeedbackNone
	s.choices.Right, s.choices.Wrong = -1, -1
	switch fb {
	case session.FeedbackCorrect:
		s.choices.Right = right
	case session.FeedbackWrong:
		s.choices.Wrong = s.ctl.Chosen()
	}
}
