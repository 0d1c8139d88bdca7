// Package stats tracks a player's lifetime results.
package stats

// Stats is the aggregate of every finished session.
// Distribution[i] counts wins on attempt i+1.
type Stats struct {
	Played       int   `json:"played"`
	Wins         int   `json:"wins"`
	Streak       int   `json:"streak"`
	MaxStreak    int   `json:"maxStreak"`
	Distribution []int `json:"distribution"`
}

// New returns zeroed stats for a board of rows attempts.
func New(rows int) Stats {
	return Stats{Distribution: make([]int, rows)}
}

// Record folds one finished session into s. attempt is the 1-based number
// of the winning attempt and is ignored for losses.
func (s *Stats) Record(won bool, attempt int) {
	s.Played++
	if !won {
		s.Streak = 0
		return
	}
	s.Wins++
	s.Streak++
	if s.Streak > s.MaxStreak {
		s.MaxStreak = s.Streak
	}
	if attempt >= 1 && attempt <= len(s.Distribution) {
		s.Distribution[attempt-1]++
	}
}

// WinRate is the percentage of played sessions that were won, rounded half up.
func (s Stats) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return (s.Wins*100 + s.Played/2) / s.Played
}

// Fit resizes Distribution to rows, keeping existing counts that still fit.
// Used when loading records written for a different board size.
func (s *Stats) Fit(rows int) {
	if len(s.Distribution) == rows {
		return
	}
	d := make([]int, rows)
	copy(d, s.Distribution)
	s.Distribution = d
}
