package engine

// GameSession is the mutable state of one attempt
// Score is written only by the score system
type GameSession struct {
	Score   int
	Started bool
	Over    bool
}

// Reset prepares the session for a new attempt
func (s *GameSession) Reset() {
	s.Score = 0
	s.Started = false
	s.Over = false
}
