package game

import (
	"errors"
	"testing"
)

// wordSet is a test Dictionary accepting exactly its members.
type wordSet map[string]bool

func (w wordSet) Accepts(word string) bool { return w[word] }

var testDict = wordSet{"HLAVA": true, "KNIHA": true, "LÁSKA": true, "SKÁLA": true}

func newTestSession(t *testing.T, solution string) *Session {
	t.Helper()
	s, err := NewSession(solution, ModeDaily, "2024-05-01", DefaultRows)
	if err != nil {
		t.Fatalf("NewSession(%q): %v", solution, err)
	}
	return s
}

func typeWord(s *Session, w string) {
	for _, r := range w {
		s.AppendLetter(r)
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, "hlava")
	if s.Solution != "HLAVA" {
		t.Errorf("Solution = %q, want HLAVA", s.Solution)
	}
	if s.Rows() != DefaultRows || s.Cols() != DefaultCols {
		t.Errorf("dimensions = %dx%d, want %dx%d", s.Rows(), s.Cols(), DefaultRows, DefaultCols)
	}
	if s.Status != StatusPlaying || s.RowIndex != 0 || len(s.Evaluations) != 0 {
		t.Errorf("fresh session not at start: %+v", s)
	}
	if err := s.Validate(DefaultRows, DefaultCols); err != nil {
		t.Errorf("fresh session fails validation: %v", err)
	}

	bad := []struct {
		solution string
		mode     Mode
		rows     int
	}{
		{"", ModeDaily, 6},
		{"HL4VA", ModeDaily, 6},
		{"HLAVA", ModeDaily, 0},
		{"HLAVA", Mode("weekly"), 6},
	}
	for _, b := range bad {
		if _, err := NewSession(b.solution, b.mode, "", b.rows); err == nil {
			t.Errorf("NewSession(%q, %q, %d) should fail", b.solution, b.mode, b.rows)
		}
	}
}

func TestAppendAndDeleteLetter(t *testing.T) {
	s := newTestSession(t, "HLAVA")

	if s.DeleteLetter() {
		t.Error("DeleteLetter on empty row should be a no-op")
	}
	typeWord(s, "hla")
	if got := s.Attempt(0); got != "HLA" {
		t.Errorf("after typing: %q, want HLA", got)
	}
	if s.AppendLetter('7') {
		t.Error("AppendLetter should ignore non-letters")
	}
	typeWord(s, "vaX")
	if got := s.Attempt(0); got != "HLAVA" {
		t.Errorf("full row: %q, want HLAVA", got)
	}
	if !s.DeleteLetter() || s.Attempt(0) != "HLAV" {
		t.Errorf("after delete: %q, want HLAV", s.Attempt(0))
	}
	if s.Attempt(1) != "" {
		t.Error("row beyond the active one must stay empty")
	}
}

func TestSubmitIncomplete(t *testing.T) {
	s := newTestSession(t, "HLAVA")
	typeWord(s, "HLA")
	_, err := s.Submit(testDict)
	if !errors.Is(err, ErrIncompleteGuess) {
		t.Fatalf("Submit: err = %v, want ErrIncompleteGuess", err)
	}
	if s.RowIndex != 0 || len(s.Evaluations) != 0 || s.Attempt(0) != "HLA" {
		t.Errorf("state changed after rejected submit: %+v", s)
	}
}

func TestSubmitNotAllowed(t *testing.T) {
	s := newTestSession(t, "HLAVA")
	typeWord(s, "ZZZZZ")
	_, err := s.Submit(testDict)
	if !errors.Is(err, ErrWordNotAllowed) {
		t.Fatalf("Submit: err = %v, want ErrWordNotAllowed", err)
	}
	if s.RowIndex != 0 || len(s.Evaluations) != 0 || s.Status != StatusPlaying {
		t.Errorf("state changed after rejected submit: %+v", s)
	}
	if !s.DeleteLetter() {
		t.Error("row should stay editable after rejection")
	}
}

func TestSubmitWin(t *testing.T) {
	s := newTestSession(t, "HLAVA")
	typeWord(s, "HLAVA")
	res, err := s.Submit(testDict)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Status != StatusWon || s.Status != StatusWon {
		t.Errorf("status = %s, want won", s.Status)
	}
	if res.Attempt != 1 || s.RowIndex != 0 || len(s.Evaluations) != 1 {
		t.Errorf("attempt=%d rowIndex=%d evaluations=%d, want 1/0/1", res.Attempt, s.RowIndex, len(s.Evaluations))
	}
	if !allExact(res.Feedback) {
		t.Errorf("feedback = %v, want all exact", res.Feedback)
	}

	if s.AppendLetter('A') || s.DeleteLetter() {
		t.Error("editing should be a no-op after a win")
	}
	if _, err := s.Submit(testDict); !errors.Is(err, ErrGameOver) {
		t.Errorf("Submit after win: err = %v, want ErrGameOver", err)
	}
	if len(s.Evaluations) != 1 || s.Attempt(0) != "HLAVA" {
		t.Error("board changed after the game ended")
	}
	if err := s.Validate(DefaultRows, DefaultCols); err != nil {
		t.Errorf("won session fails validation: %v", err)
	}
}

func TestSubmitLose(t *testing.T) {
	s := newTestSession(t, "HLAVA")
	for i := 0; i < DefaultRows; i++ {
		typeWord(s, "KNIHA")
		res, err := s.Submit(testDict)
		if err != nil {
			t.Fatalf("Submit #%d: %v", i+1, err)
		}
		if i < DefaultRows-1 {
			if res.Status != StatusPlaying || s.RowIndex != i+1 {
				t.Fatalf("after #%d: status=%s rowIndex=%d", i+1, res.Status, s.RowIndex)
			}
			if len(s.Evaluations) != s.RowIndex {
				t.Fatalf("after #%d: %d evaluations, want %d", i+1, len(s.Evaluations), s.RowIndex)
			}
		}
	}
	if s.Status != StatusLost {
		t.Errorf("status = %s, want lost", s.Status)
	}
	if s.RowIndex != DefaultRows-1 || len(s.Evaluations) != DefaultRows {
		t.Errorf("rowIndex=%d evaluations=%d", s.RowIndex, len(s.Evaluations))
	}
	if err := s.Validate(DefaultRows, DefaultCols); err != nil {
		t.Errorf("lost session fails validation: %v", err)
	}
}

func TestValidateRejectsBrokenSessions(t *testing.T) {
	mutations := map[string]func(s *Session){
		"row index too far": func(s *Session) { s.RowIndex = 9 },
		"missing rows":      func(s *Session) { s.Board = s.Board[:3] },
		"short row":         func(s *Session) { s.Board[2] = []string{"A"} },
		"bad status":        func(s *Session) { s.Status = "paused" },
		"bad mode":          func(s *Session) { s.Mode = "weekly" },
		"bad solution":      func(s *Session) { s.Solution = "HLAV" },
		"stray letters":     func(s *Session) { s.Board[4][0] = "A" },
		"bad letter":        func(s *Session) { s.Board[1][0] = "AB" },
		"evaluation gap":    func(s *Session) { s.Evaluations = nil },
		"false win":         func(s *Session) { s.Status = StatusWon; s.RowIndex = 0 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s := newTestSession(t, "HLAVA")
			typeWord(s, "KNIHA")
			if _, err := s.Submit(testDict); err != nil {
				t.Fatalf("Submit: %v", err)
			}
			mutate(s)
			if err := s.Validate(DefaultRows, DefaultCols); err == nil {
				t.Error("Validate should fail")
			}
		})
	}
}
