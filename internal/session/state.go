package session

import (
	"fmt"
	"time"
)

// State is the controller's current screen-level state.
type State int

const (
	StateDashboard State = iota
	StateModeSelection
	StateLoadingContent
	StatePlaying
	StateCorrectGuess // word solved, waiting for the player to continue
	StateGameOver
	StateLeaderboardSelection
	StateLeaderboardView
	StateSettings
)

var stateNames = map[State]string{
	StateDashboard:            "dashboard",
	StateModeSelection:        "mode-selection",
	StateLoadingContent:       "loading",
	StatePlaying:              "playing",
	StateCorrectGuess:         "correct-guess",
	StateGameOver:             "game-over",
	StateLeaderboardSelection: "leaderboard-selection",
	StateLeaderboardView:      "leaderboard",
	StateSettings:             "settings",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Feedback is the result shown for the last math or color answer.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

// Reason explains why a game ended.
type Reason string

const (
	ReasonNoLives   Reason = "no_lives"
	ReasonCompleted Reason = "completed"
)

const (
	// StartLives is the number of lives a game starts with.
	StartLives = 5

	// MaxLives caps lives gained from correct answers.
	MaxLives = 10

	// PointsPerCorrect is awarded for each correct answer.
	PointsPerCorrect = 10
)

// Feedback delays before a math or color round moves on.
const (
	CorrectDelay    = 1000 * time.Millisecond
	WrongMathDelay  = 1500 * time.Millisecond
	WrongColorDelay = 1000 * time.Millisecond
)

// Delay asks the caller to call Resume with Token once After has passed.
// A zero Delay needs no follow-up.
type Delay struct {
	Token int
	After time.Duration
}

// Pending reports whether the delay needs a Resume.
func (d Delay) Pending() bool { return d.After > 0 }

// TransitionError is returned when an action is not valid in the current
// state.
type TransitionError struct {
	From   State
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from %s", e.Action, e.From)
}
