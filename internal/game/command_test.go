package game

import (
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	s := newTestSession(t, "HLAVA")

	steps := []struct {
		cmd  Command
		want EventKind
	}{
		{Command{Type: CommandDelete}, EventIgnored},
		{Command{Type: CommandLetter, Letter: "1"}, EventIgnored},
		{Command{Type: CommandLetter, Letter: "AB"}, EventIgnored},
		{Command{Type: "jump"}, EventIgnored},
		{Letter('k'), EventUpdated},
		{Letter('n'), EventUpdated},
		{Command{Type: CommandSubmit}, EventRejected},
		{Letter('i'), EventUpdated},
		{Letter('h'), EventUpdated},
		{Letter('a'), EventUpdated},
		{Letter('a'), EventIgnored},
		{Command{Type: CommandSubmit}, EventScored},
	}
	for i, st := range steps {
		ev := s.Apply(st.cmd, testDict)
		if ev.Kind != st.want {
			t.Fatalf("step %d (%+v): event %s, want %s (err %v)", i, st.cmd, ev.Kind, st.want, ev.Err)
		}
	}
	if s.RowIndex != 1 {
		t.Errorf("rowIndex = %d, want 1", s.RowIndex)
	}
}

func TestApplyRejectionReason(t *testing.T) {
	s := newTestSession(t, "HLAVA")
	ev := s.Apply(Command{Type: CommandSubmit}, testDict)
	if ev.Kind != EventRejected || !errors.Is(ev.Err, ErrIncompleteGuess) {
		t.Errorf("empty submit: %+v, want rejected/ErrIncompleteGuess", ev)
	}
}

func TestApplyWinAndLoss(t *testing.T) {
	s := newTestSession(t, "HLAVA")
	for _, r := range "HLAVA" {
		s.Apply(Letter(r), testDict)
	}
	ev := s.Apply(Command{Type: CommandSubmit}, testDict)
	if ev.Kind != EventWon || !ev.Terminal() || ev.Result == nil || ev.Result.Attempt != 1 {
		t.Fatalf("winning submit: %+v", ev)
	}
	if ev := s.Apply(Command{Type: CommandSubmit}, testDict); ev.Kind != EventIgnored {
		t.Errorf("submit after win: %s, want ignored", ev.Kind)
	}

	s = newTestSession(t, "HLAVA")
	var last Event
	for i := 0; i < DefaultRows; i++ {
		for _, r := range "LÁSKA" {
			s.Apply(Letter(r), testDict)
		}
		last = s.Apply(Command{Type: CommandSubmit}, testDict)
	}
	if last.Kind != EventLost || !last.Terminal() {
		t.Errorf("final submit: %s, want lost", last.Kind)
	}
}

func TestKeyStates(t *testing.T) {
	s := newTestSession(t, "HLAVA")
	for _, w := range []string{"KNIHA", "HLAVA"} {
		typeWord(s, w)
		if _, err := s.Submit(testDict); err != nil {
			t.Fatalf("Submit(%s): %v", w, err)
		}
	}
	keys := s.KeyStates()
	want := map[string]Feedback{
		"K": FeedbackAbsent,
		"N": FeedbackAbsent,
		"I": FeedbackAbsent,
		"H": FeedbackExact, // present first, then exact
		"A": FeedbackExact,
		"L": FeedbackExact,
		"V": FeedbackExact,
	}
	for k, f := range want {
		if keys[k] != f {
			t.Errorf("key %s = %s, want %s", k, keys[k], f)
		}
	}
	if len(keys) != len(want) {
		t.Errorf("got %d keys, want %d", len(keys), len(want))
	}
}

func TestKeyStatesKeepStrongest(t *testing.T) {
	s := newTestSession(t, "SKÁLA")
	dict := wordSet{"SKALA": true, "KNIHA": true}
	for _, w := range []string{"SKALA", "KNIHA"} {
		typeWord(s, w)
		if _, err := s.Submit(dict); err != nil {
			t.Fatalf("Submit(%s): %v", w, err)
		}
	}
	// SKALA scores A as base at 2 and exact at 4; KNIHA scores A exact again.
	if got := s.KeyStates()["A"]; got != FeedbackExact {
		t.Errorf("A = %s, want exact", got)
	}
	if got := s.KeyStates()["K"]; got != FeedbackExact {
		t.Errorf("K = %s, want exact (not downgraded by KNIHA)", got)
	}
}

func TestShare(t *testing.T) {
	s := newTestSession(t, "HLAVA")
	if _, err := s.Share(1); !errors.Is(err, ErrGameInProgress) {
		t.Errorf("Share while playing: err = %v, want ErrGameInProgress", err)
	}
	for _, w := range []string{"KNIHA", "HLAVA"} {
		typeWord(s, w)
		if _, err := s.Submit(testDict); err != nil {
			t.Fatalf("Submit(%s): %v", w, err)
		}
	}

	got, err := s.Share(1060)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	want := "Wordle CZ 1060 2/6\n⬛⬛⬛🟨🟩\n🟩🟩🟩🟩🟩"
	if got != want {
		t.Errorf("Share daily =\n%s\nwant\n%s", got, want)
	}

	s.Mode = ModePractice
	got, _ = s.Share(1060)
	if want := "Wordle CZ Practice 2/6\n⬛⬛⬛🟨🟩\n🟩🟩🟩🟩🟩"; got != want {
		t.Errorf("Share practice =\n%s\nwant\n%s", got, want)
	}
}

func TestShareLoss(t *testing.T) {
	s := newTestSession(t, "SKÁLA")
	dict := wordSet{"SKALA": true}
	for i := 0; i < DefaultRows; i++ {
		typeWord(s, "SKALA")
		if _, err := s.Submit(dict); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	got, err := s.Share(7)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	row := "🟩🟩🟪🟩🟩"
	want := "Wordle CZ 7 X/6"
	for i := 0; i < DefaultRows; i++ {
		want += "\n" + row
	}
	if got != want {
		t.Errorf("Share loss =\n%s\nwant\n%s", got, want)
	}
}
