package game

import (
	"fmt"
	"strings"
)

var shareTiles = map[Feedback]string{
	FeedbackExact:   "🟩",
	FeedbackPresent: "🟨",
	FeedbackBase:    "🟪",
	FeedbackAbsent:  "⬛",
}

// KeyStates returns, for every letter guessed so far, the strongest feedback
// it has received. Used to color an on-screen keyboard.
func (s *Session) KeyStates() map[string]Feedback {
	keys := make(map[string]Feedback)
	for i, ev := range s.Evaluations {
		for j, f := range ev {
			letter := s.Board[i][j]
			if cur, ok := keys[letter]; !ok || f.Rank() > cur.Rank() {
				keys[letter] = f
			}
		}
	}
	return keys
}

// Share renders a spoiler-free summary of a finished session:
//
//	Wordle CZ 1234 3/6
//	⬛🟨⬛⬛🟪
//	...
//
// dayIndex is only used for daily sessions.
func (s *Session) Share(dayIndex int) (string, error) {
	if !s.Status.Terminal() {
		return "", ErrGameInProgress
	}
	score := "X"
	if s.Status == StatusWon {
		score = fmt.Sprint(s.RowIndex + 1)
	}

	var b strings.Builder
	if s.Mode == ModePractice {
		fmt.Fprintf(&b, "Wordle CZ Practice %s/%d", score, s.Rows())
	} else {
		fmt.Fprintf(&b, "Wordle CZ %d %s/%d", dayIndex, score, s.Rows())
	}
	for _, ev := range s.Evaluations {
		b.WriteByte('\n')
		for _, f := range ev {
			b.WriteString(shareTiles[f])
		}
	}
	return b.String(), nil
}
