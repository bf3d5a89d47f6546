package session

import (
	"fmt"

	"github.com/abhisek/sprouts/internal/content"
)

// Mode is a mini-game. Its value is also the leaderboard key.
type Mode string

const (
	ModeWords  Mode = "words"
	ModeMath   Mode = "math"
	ModeColors Mode = "colors"
)

// ModeInfo describes a mode for menus.
type ModeInfo struct {
	Mode    Mode
	Name    string
	Blurb   string
	Content content.Kind
}

// Modes lists the mini-games in menu order.
var Modes = []ModeInfo{
	{Mode: ModeWords, Name: "Play Sprouts", Blurb: "Unscramble the word for the picture", Content: content.Words},
	{Mode: ModeMath, Name: "Math Puzzles", Blurb: "Count the pictures and add them up", Content: content.CountingItems},
	{Mode: ModeColors, Name: "Color Quest", Blurb: "Find the color of the picture", Content: content.ColorItems},
}

// Info returns the menu entry for m.
func (m Mode) Info() ModeInfo {
	for _, info := range Modes {
		if info.Mode == m {
			return info
		}
	}
	return ModeInfo{Mode: m, Name: string(m)}
}

// ParseMode accepts a mode key or its menu name.
func ParseMode(s string) (Mode, error) {
	for _, info := range Modes {
		if s == string(info.Mode) || s == info.Name {
			return info.Mode, nil
		}
	}
	return "", fmt.Errorf("unknown game mode %q (want words, math or colors)", s)
}
