package player

import "github.com/robalobadob/wordle-cz/internal/game"

// Snapshot is the client-facing view of the current session.
// The solution is only revealed once the game has ended.
type Snapshot struct {
	Board        [][]string               `json:"board"`
	Evaluations  [][]game.Feedback        `json:"evaluations"`
	RowIndex     int                      `json:"rowIndex"`
	Status       game.Status              `json:"gameStatus"`
	Mode         game.Mode                `json:"mode"`
	SolutionDate string                   `json:"solutionDate"`
	DayIndex     int                      `json:"dayIndex"`
	Keys         map[string]game.Feedback `json:"keys"`
	Solution     string                   `json:"solution,omitempty"`
}

// Snapshot describes the current session.
func (p *Player) Snapshot() Snapshot {
	s := p.Session
	snap := Snapshot{
		Board:        s.Board,
		Evaluations:  s.Evaluations,
		RowIndex:     s.RowIndex,
		Status:       s.Status,
		Mode:         s.Mode,
		SolutionDate: s.SolutionDate,
		DayIndex:     p.Puzzle.DayIndex,
		Keys:         s.KeyStates(),
	}
	if s.Status.Terminal() {
		snap.Solution = s.Solution
	}
	return snap
}
