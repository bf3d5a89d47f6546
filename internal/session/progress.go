package session

// Progress is the score and lives of the game in play.
type Progress struct {
	Score  int
	Lives  int
	Rounds int
}

// NewProgress returns the starting progress.
func NewProgress() Progress {
	return Progress{Lives: StartLives}
}

// Correct awards points and a life, capped at MaxLives.
func (p *Progress) Correct() {
	p.Score += PointsPerCorrect
	p.Lives = min(p.Lives+1, MaxLives)
	p.Rounds++
}

// Wrong takes a life and reports whether the game is over.
func (p *Progress) Wrong() (out bool) {
	p.Lives = max(p.Lives-1, 0)
	return p.Lives == 0
}
