package stats

import "testing"

func TestRecord(t *testing.T) {
	s := New(6)
	// W L W W W L W
	results := []struct {
		won     bool
		attempt int
	}{
		{true, 3}, {false, 6}, {true, 1}, {true, 3}, {true, 6}, {false, 6}, {true, 2},
	}
	for _, r := range results {
		s.Record(r.won, r.attempt)
	}

	if s.Played != 7 || s.Wins != 5 {
		t.Errorf("played/wins = %d/%d, want 7/5", s.Played, s.Wins)
	}
	if s.Streak != 1 || s.MaxStreak != 3 {
		t.Errorf("streak/max = %d/%d, want 1/3", s.Streak, s.MaxStreak)
	}
	want := []int{1, 1, 2, 0, 0, 1}
	sum := 0
	for i, n := range s.Distribution {
		sum += n
		if n != want[i] {
			t.Errorf("Distribution[%d] = %d, want %d", i, n, want[i])
		}
	}
	if sum != s.Wins {
		t.Errorf("distribution sums to %d, want %d", sum, s.Wins)
	}
	if s.WinRate() != 71 {
		t.Errorf("WinRate() = %d, want 71", s.WinRate())
	}
}

func TestFit(t *testing.T) {
	s := Stats{Distribution: []int{1, 2}}
	s.Fit(6)
	if len(s.Distribution) != 6 || s.Distribution[1] != 2 {
		t.Errorf("Fit(6) = %v", s.Distribution)
	}
	var empty Stats
	if empty.WinRate() != 0 {
		t.Error("WinRate of empty stats should be 0")
	}
}

func TestWinRateRounding(t *testing.T) {
	tests := []struct {
		wins, played, want int
	}{
		{2, 3, 67},
		{1, 3, 33},
		{1, 8, 13},
		{5, 7, 71},
		{3, 3, 100},
	}
	for _, tt := range tests {
		s := Stats{Wins: tt.wins, Played: tt.played}
		if got := s.WinRate(); got != tt.want {
			t.Errorf("WinRate(%d/%d) = %d, want %d", tt.wins, tt.played, got, tt.want)
		}
	}
}
