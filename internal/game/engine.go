// internal/game/engine.go
//
// State machine for a single puzzle session.
// Responsibilities:
//   - Create sessions with fixed dimensions (rows × word length).
//   - Edit the active attempt (append / delete letter).
//   - Validate and score a submitted attempt.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Scoring is delegated to Evaluate.
//   - Membership is decided by a Dictionary supplied by the caller.
//   - A Session is not safe for concurrent use; one caller drives it.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// NewSession constructs an empty session for solution.
// It fails if solution is not a word of the alphabet or rows < 1.
func NewSession(solution string, mode Mode, date string, rows int) (*Session, error) {
	solution = NormalizeWord(solution)
	cols := utf8.RuneCountInString(solution)
	if cols == 0 || !IsWord(solution, cols) {
		return nil, fmt.Errorf("invalid solution %q", solution)
	}
	if rows < 1 {
		return nil, fmt.Errorf("invalid row count %d", rows)
	}
	if mode != ModeDaily && mode != ModePractice {
		return nil, fmt.Errorf("invalid mode %q", mode)
	}
	return &Session{
		Board: lo.Times(rows, func(_ int) []string {
			return make([]string, cols)
		}),
		Evaluations:  [][]Feedback{},
		RowIndex:     0,
		Status:       StatusPlaying,
		Solution:     solution,
		SolutionDate: date,
		Mode:         mode,
	}, nil
}

// Rows is the number of attempts available.
func (s *Session) Rows() int { return len(s.Board) }

// Cols is the word length.
func (s *Session) Cols() int { return utf8.RuneCountInString(s.Solution) }

// Attempt returns the joined letters of row i.
func (s *Session) Attempt(i int) string {
	return strings.Join(s.Board[i], "")
}

// AppendLetter fills the first empty slot of the active attempt.
// It reports whether the board changed.
func (s *Session) AppendLetter(r rune) bool {
	if s.Status != StatusPlaying {
		return false
	}
	r, ok := NormalizeLetter(r)
	if !ok {
		return false
	}
	row := s.Board[s.RowIndex]
	for i, c := range row {
		if c == "" {
			row[i] = string(r)
			return true
		}
	}
	return false
}

// DeleteLetter clears the last occupied slot of the active attempt.
// It reports whether the board changed.
func (s *Session) DeleteLetter() bool {
	if s.Status != StatusPlaying {
		return false
	}
	row := s.Board[s.RowIndex]
	for i := len(row) - 1; i >= 0; i-- {
		if row[i] != "" {
			row[i] = ""
			return true
		}
	}
	return false
}

// Submit validates and scores the active attempt, mutating the session.
//
// Validation rules (none of them mutate state):
//   - Session must not be finished.
//   - Every slot of the attempt must be filled.
//   - The word, or its diacritic-free form, must be accepted by dict.
//
// State transitions:
//   - All letters exact → won.
//   - Else last row → lost.
//   - Else RowIndex advances.
func (s *Session) Submit(dict Dictionary) (Result, error) {
	if s.Status != StatusPlaying {
		return Result{Status: s.Status}, ErrGameOver
	}
	row := s.Board[s.RowIndex]
	if lo.Contains(row, "") {
		return Result{Status: s.Status}, ErrIncompleteGuess
	}
	guess := strings.Join(row, "")
	if !dict.Accepts(guess) {
		return Result{Status: s.Status}, ErrWordNotAllowed
	}

	fb, err := Evaluate(guess, s.Solution)
	if err != nil {
		return Result{Status: s.Status}, err
	}
	s.Evaluations = append(s.Evaluations, fb)
	attempt := s.RowIndex + 1

	switch {
	case allExact(fb):
		s.Status = StatusWon
	case s.RowIndex == len(s.Board)-1:
		s.Status = StatusLost
	default:
		s.RowIndex++
	}
	return Result{Guess: guess, Feedback: fb, Status: s.Status, Attempt: attempt}, nil
}

// Validate checks the structural invariants of a session, typically one
// restored from storage. rows and cols are the expected dimensions.
func (s *Session) Validate(rows, cols int) error {
	if s.Mode != ModeDaily && s.Mode != ModePractice {
		return fmt.Errorf("invalid mode %q", s.Mode)
	}
	if !IsWord(s.Solution, cols) {
		return fmt.Errorf("invalid solution %q", s.Solution)
	}
	if len(s.Board) != rows {
		return fmt.Errorf("board has %d rows, want %d", len(s.Board), rows)
	}
	for i, row := range s.Board {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d slots, want %d", i, len(row), cols)
		}
		for _, c := range row {
			if c != "" && !IsWord(c, 1) {
				return fmt.Errorf("row %d holds invalid letter %q", i, c)
			}
		}
	}
	if s.RowIndex < 0 || s.RowIndex >= rows {
		return fmt.Errorf("row index %d out of range", s.RowIndex)
	}

	want := s.RowIndex
	switch s.Status {
	case StatusPlaying:
	case StatusWon, StatusLost:
		want = s.RowIndex + 1
	default:
		return fmt.Errorf("invalid status %q", s.Status)
	}
	if len(s.Evaluations) != want {
		return fmt.Errorf("%d evaluations for row index %d (%s)", len(s.Evaluations), s.RowIndex, s.Status)
	}
	for i, ev := range s.Evaluations {
		if len(ev) != cols || !lo.EveryBy(ev, Feedback.Valid) {
			return fmt.Errorf("evaluation %d is malformed", i)
		}
		if lo.Contains(s.Board[i], "") {
			return fmt.Errorf("scored row %d is incomplete", i)
		}
	}
	for i := s.RowIndex + 1; i < rows; i++ {
		if s.Attempt(i) != "" {
			return fmt.Errorf("row %d beyond the active row is not empty", i)
		}
	}
	if s.Status == StatusWon && !allExact(s.Evaluations[len(s.Evaluations)-1]) {
		return errors.New("won session without an exact final row")
	}
	return nil
}
