// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Feedback: per-letter result of a guess (exact/present/base/absent).
//   - Status:   lifecycle of a session (playing → won/lost).
//   - Mode:     scheduled daily puzzle or free practice.
//   - Session:  state of a single puzzle.

package game

import "errors"

const (
	DefaultRows = 6 // attempts per session
	DefaultCols = 5 // letters per word
)

// Feedback represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the solution at another position.
//   - "base":    letter matches a solution letter only when diacritics are ignored.
//   - "absent":  no match under any rule.
type Feedback string

const (
	FeedbackAbsent  Feedback = "absent"
	FeedbackBase    Feedback = "base"
	FeedbackPresent Feedback = "present"
	FeedbackExact   Feedback = "exact"
)

// Rank orders feedback from weakest (absent) to strongest (exact).
// Unknown values rank below absent.
func (f Feedback) Rank() int {
	switch f {
	case FeedbackAbsent:
		return 0
	case FeedbackBase:
		return 1
	case FeedbackPresent:
		return 2
	case FeedbackExact:
		return 3
	}
	return -1
}

// Valid reports whether f is one of the four feedback values.
func (f Feedback) Valid() bool { return f.Rank() >= 0 }

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// Mode distinguishes the shared daily puzzle from free practice.
type Mode string

const (
	ModeDaily    Mode = "daily"
	ModePractice Mode = "practice"
)

// Session holds the state of one puzzle.
//
// Board has Rows attempts of Cols slots each; an empty slot is "".
// Evaluations holds one feedback row per submitted attempt.
// RowIndex is the attempt being edited; it equals len(Evaluations) while
// playing and len(Evaluations)-1 once the session has ended.
type Session struct {
	Board        [][]string   `json:"board"`
	Evaluations  [][]Feedback `json:"evaluations"`
	RowIndex     int          `json:"rowIndex"`
	Status       Status       `json:"gameStatus"`
	Solution     string       `json:"solution"`
	SolutionDate string       `json:"solutionDate"`
	Mode         Mode         `json:"mode"`
}

// Result is returned by a successful submission.
type Result struct {
	Guess    string     `json:"guess"`
	Feedback []Feedback `json:"feedback"`
	Status   Status     `json:"status"`
	Attempt  int        `json:"attempt"` // 1-based number of the scored attempt
}

// Dictionary decides which words may be submitted.
type Dictionary interface {
	Accepts(word string) bool
}

var (
	ErrIncompleteGuess = errors.New("not enough letters")
	ErrWordNotAllowed  = errors.New("word not in list")
	ErrGameOver        = errors.New("game finished")
	ErrLengthMismatch  = errors.New("guess and solution lengths differ")
	ErrGameInProgress  = errors.New("game still in progress")
)
