package session

// Summary holds the data displayed on the game over screen.
type Summary struct {
	Mode      Mode
	Player    string
	Reason    Reason
	Score     int
	HighScore int // the player's all-time best for the mode
	Rounds    int // rounds answered correctly

	// PreviousBest is the best score stored before this game started.
	PreviousBest int
}

// NewRecord reports whether this game set the player's best.
func (s *Summary) NewRecord() bool {
	return s.Score > s.PreviousBest
}
