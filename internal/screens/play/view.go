package play

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/ui/components"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string
	switch s.ctl.Mode() {
	case session.ModeWords:
		body = s.wordView(cw, height)
	case session.ModeMath:
		body = s.mathView(cw, height)
	case session.ModeColors:
		body = s.colorView(cw, height)
	}
	return components.GardenFrame(body, width, height)
}

func centered(cw int, s string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

// pictureRows is how many rows a large picture may take.
func pictureRows(height int) int {
	return max(min(height/3, 12), 3)
}

func (s *Screen) wordView(cw, height int) string {
	item, index, total := s.ctl.Word()
	bar := components.NewProgressBar("Word", index+1, total, cw).View()
	rows := pictureRows(height)
	pic := centered(cw, components.Picture(item.Image, "?", rows*2, rows))

	if s.ctl.State() == session.StateCorrectGuess {
		return components.Stack(
			bar,
			pic,
			centered(cw, theme.Correct.Render(fmt.Sprintf("🎉 Yes! It's %s! +%d", strings.ToUpper(item.Word), session.PointsPerCorrect))),
			centered(cw, theme.Hint.Render("press Enter for the next word")),
		)
	}

	guess := s.ctl.Guess()
	tiles := s.ctl.Tiles()

	slots := make([]string, len(tiles))
	slotStyle := theme.Slot
	if s.ctl.WrongGuess() {
		slotStyle = slotStyle.Background(theme.Error)
	}
	for i := range tiles {
		letter := "_"
		if i < len(guess) {
			letter = strings.ToUpper(string(guess[i]))
		}
		slots[i] = slotStyle.Render(letter)
	}

	letters := make([]string, len(tiles))
	for i, t := range tiles {
		style := theme.TileActive
		if t.Used {
			style = theme.TileUsed
		}
		letters[i] = style.Render(strings.ToUpper(string(t.Letter)))
	}

	msg := theme.Hint.Render("Type the letters to spell the word")
	if s.ctl.WrongGuess() {
		msg = theme.Incorrect.Render("Not quite! Press Backspace or Tab and try again.")
	}

	return components.Stack(
		bar,
		pic,
		centered(cw, strings.Join(slots, " ")),
		centered(cw, strings.Join(letters, " ")),
		centered(cw, msg),
	)
}

func (s *Screen) mathView(cw, height int) string {
	m := s.ctl.Math()
	if m == nil {
		return ""
	}

	cols := min(max((cw-6)/(m.A+m.B), 4), 12)
	rows := min(cols/2, pictureRows(height)/2+1)
	group := func(n int) string {
		pics := make([]string, n)
		for i := range pics {
			pics[i] = components.Picture(m.Item.Image, m.Item.Name, cols, rows)
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, pics...)
	}
	plus := lipgloss.NewStyle().Foreground(theme.Sunny).Bold(true).Padding(0, 1).Render("+")
	sum := lipgloss.JoinHorizontal(lipgloss.Center, group(m.A), plus, group(m.B))

	return components.Stack(
		centered(cw, sum),
		centered(cw, theme.Body.Bold(true).Render(m.Question)),
		centered(cw, s.choices.View()),
		centered(cw, s.feedback("Great counting!", "Oops! Count again.")),
	)
}

func (s *Screen) colorView(cw, height int) string {
	c := s.ctl.Color()
	if c == nil {
		return ""
	}
	rows := pictureRows(height)
	return components.Stack(
		centered(cw, components.Picture(c.Item.Image, c.Item.Name, rows*2, rows)),
		centered(cw, theme.Body.Bold(true).Render("What color is the "+c.Item.Name+"?")),
		centered(cw, s.choices.View()),
		centered(cw, s.feedback("That's right!", "Not that one. Try again!")),
	)
}

func (s *Screen) feedback(right, wrong string) string {
	switch s.ctl.Feedback() {
	case session.FeedbackCorrect:
		return theme.Correct.Render(right + " +" + strconv.Itoa(session.PointsPerCorrect))
	case session.FeedbackWrong:
		return theme.Incorrect.Render(wrong)
	}
	return ""
}
