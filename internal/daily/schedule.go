// internal/daily/schedule.go
//
// Daily puzzle selection.
// Responsibilities:
//   - Map a wall-clock time to a date key and day index in the configured zone.
//   - Pick the scheduled word (day index, or HMAC of the date when salted).
//   - Apply per-date admin overrides stored under the global "overrides" key.

package daily

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-cz/internal/game"
	"github.com/robalobadob/wordle-cz/internal/store"
)

// ErrInvalidWord is returned by SetOverride for a word that cannot be a solution.
var ErrInvalidWord = errors.New("invalid override word")

// Words is the part of a dictionary the schedule needs.
type Words interface {
	Length() int
	Answers() []string
	Accepts(word string) bool
}

// Puzzle is the daily puzzle of one date.
type Puzzle struct {
	Word       string `json:"-"`
	DateKey    string `json:"dateKey"`
	DayIndex   int    `json:"dayIndex"`
	Overridden bool   `json:"overridden"`
}

// Schedule resolves the daily puzzle for any date.
type Schedule struct {
	words     Words
	overrides overrideStore
	salt      string
	loc       *time.Location
}

// NewSchedule builds a schedule over words. An empty salt selects the plain
// day-index rotation; a nil loc means UTC.
func NewSchedule(words Words, kv store.Store, salt string, loc *time.Location) *Schedule {
	if loc == nil {
		loc = time.UTC
	}
	return &Schedule{words: words, overrides: overrideStore{kv: kv}, salt: salt, loc: loc}
}

// Scheduled returns the date-derived word for now, ignoring overrides.
func (s *Schedule) Scheduled(now time.Time) string {
	answers := s.words.Answers()
	now = now.In(s.loc)
	if s.salt != "" {
		return answers[WordIndex(now, s.salt, len(answers))]
	}
	return answers[ScheduledIndex(now, len(answers))]
}

// Today returns the puzzle for the date of now. An unreadable override map
// is logged and treated as empty.
func (s *Schedule) Today(ctx context.Context, now time.Time) Puzzle {
	now = now.In(s.loc)
	p := Puzzle{
		Word:     s.Scheduled(now),
		DateKey:  DateKey(now),
		DayIndex: DayIndex(now),
	}
	m, err := s.overrides.load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring overrides")
		return p
	}
	if w, ok := m[p.DateKey]; ok && game.IsWord(w, s.words.Length()) {
		p.Word = w
		p.Overridden = true
	}
	return p
}

// SetOverride replaces the word of now's date with word.
func (s *Schedule) SetOverride(ctx context.Context, now time.Time, word string) (Puzzle, error) {
	word = game.NormalizeWord(word)
	if !game.IsWord(word, s.words.Length()) {
		return Puzzle{}, fmt.Errorf("%w: %q must have %d letters", ErrInvalidWord, word, s.words.Length())
	}
	if !s.words.Accepts(word) {
		return Puzzle{}, fmt.Errorf("%w: %q is not an accepted word", ErrInvalidWord, word)
	}

	key := DateKey(now.In(s.loc))
	m, err := s.overrides.load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("replacing unreadable overrides")
		m = Overrides{}
	}
	m.prune(key)
	m[key] = word
	if err := s.overrides.save(ctx, m); err != nil {
		return Puzzle{}, err
	}
	log.Info().Str("date", key).Msg("daily word overridden")
	return s.Today(ctx, now), nil
}

// ClearOverride restores the scheduled word for now's date.
func (s *Schedule) ClearOverride(ctx context.Context, now time.Time) (Puzzle, error) {
	key := DateKey(now.In(s.loc))
	m, err := s.overrides.load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("replacing unreadable overrides")
		m = Overrides{}
	}
	delete(m, key)
	m.prune(key)
	if err := s.overrides.save(ctx, m); err != nil {
		return Puzzle{}, err
	}
	log.Info().Str("date", key).Msg("daily override cleared")
	return s.Today(ctx, now), nil
}
