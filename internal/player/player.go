// internal/player/player.go
//
// Per-player game context.
// Responsibilities:
//   - Load a player's settings, statistics and saved session from the store.
//   - Decide whether the saved session is still this player's current game.
//   - Route commands into the session and record statistics on game end.
//   - Persist every mutation; persistence failures are logged, never surfaced.
//
// Keys:
//   <id>:state     saved session
//   <id>:settings  theme and practice flag
//   <id>:stats     lifetime statistics

package player

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle-cz/internal/daily"
	"github.com/robalobadob/wordle-cz/internal/game"
	"github.com/robalobadob/wordle-cz/internal/stats"
	"github.com/robalobadob/wordle-cz/internal/store"
	"github.com/robalobadob/wordle-cz/internal/words"
)

// Settings are the player's display and mode preferences.
type Settings struct {
	Dark     bool `json:"dark"`
	Contrast bool `json:"contrast"`
	Practice bool `json:"practice"`
}

// DefaultSettings is used for new players and merged under legacy records.
func DefaultSettings() Settings {
	return Settings{Dark: true}
}

// Deps are the shared services a Player works against.
type Deps struct {
	Store    store.Store
	Words    *words.Dictionary
	Schedule *daily.Schedule
}

// Player is one player's loaded state. It is not safe for concurrent use.
type Player struct {
	ID       string
	Settings Settings
	Stats    stats.Stats
	Session  *game.Session
	Puzzle   daily.Puzzle // today's daily puzzle as of the last Load or Reset

	deps Deps
}

func stateKey(id string) string    { return id + ":state" }
func settingsKey(id string) string { return id + ":settings" }
func statsKey(id string) string    { return id + ":stats" }

// Load restores player id as of now.
//
// A saved daily session is kept only when the player is not in practice
// mode and the session belongs to today's puzzle; a saved practice session
// is kept only in practice mode. Otherwise a fresh session is started and
// saved. Unreadable records count as missing.
func Load(ctx context.Context, id string, deps Deps, now time.Time) *Player {
	p := &Player{
		ID:       id,
		Settings: DefaultSettings(),
		Stats:    stats.New(game.DefaultRows),
		deps:     deps,
	}
	loadRecord(ctx, deps.Store, settingsKey(id), &p.Settings)
	if !loadRecord(ctx, deps.Store, statsKey(id), &p.Stats) {
		p.Stats = stats.New(game.DefaultRows)
	}
	p.Stats.Fit(game.DefaultRows)

	p.Puzzle = deps.Schedule.Today(ctx, now)
	if saved := p.loadSession(ctx); saved != nil && p.restorable(saved) {
		p.Session = saved
		return p
	}
	p.newSession(ctx)
	return p
}

// restorable applies the restore rule to a saved session.
func (p *Player) restorable(s *game.Session) bool {
	switch s.Mode {
	case game.ModeDaily:
		return !p.Settings.Practice &&
			s.SolutionDate == p.Puzzle.DateKey &&
			s.Solution == p.Puzzle.Word
	case game.ModePractice:
		return p.Settings.Practice
	}
	return false
}

// loadRecord decodes key into v. v is only assigned when the whole record
// decodes, so a malformed record leaves the defaults in place. It reports
// whether v was replaced.
func loadRecord[T any](ctx context.Context, kv store.Store, key string, v *T) bool {
	scratch := *v
	err := store.LoadRecord(ctx, kv, key, &scratch)
	switch {
	case err == nil:
		*v = scratch
		return true
	case errors.Is(err, store.ErrNotFound):
	default:
		log.Warn().Err(err).Str("key", key).Msg("discarding stored record")
	}
	return false
}

func (p *Player) loadSession(ctx context.Context) *game.Session {
	cols := p.deps.Words.Length()
	s := &game.Session{
		Board: lo.Times(game.DefaultRows, func(_ int) []string {
			return make([]string, cols)
		}),
		Evaluations: [][]game.Feedback{},
		Status:      game.StatusPlaying,
		Mode:        game.ModeDaily,
	}
	if !loadRecord(ctx, p.deps.Store, stateKey(p.ID), s) {
		return nil
	}
	if err := s.Validate(game.DefaultRows, cols); err != nil {
		log.Warn().Err(err).Str("player", p.ID).Msg("discarding invalid saved session")
		return nil
	}
	return s
}

// newSession starts a session for the current mode and saves it.
func (p *Player) newSession(ctx context.Context) {
	var (
		s   *game.Session
		err error
	)
	if p.Settings.Practice {
		s, err = game.NewSession(p.deps.Words.RandomAnswer(), game.ModePractice, p.Puzzle.DateKey, game.DefaultRows)
	} else {
		s, err = game.NewSession(p.Puzzle.Word, game.ModeDaily, p.Puzzle.DateKey, game.DefaultRows)
	}
	if err != nil {
		// Solutions come from a validated dictionary.
		panic(err)
	}
	p.Session = s
	p.saveSession(ctx)
}

// Apply runs cmd against the current session. Statistics are recorded when
// the command ends the game; a finished session never produces a second
// terminal event.
func (p *Player) Apply(ctx context.Context, cmd game.Command) game.Event {
	ev := p.Session.Apply(cmd, p.deps.Words)
	switch ev.Kind {
	case game.EventUpdated, game.EventScored:
		p.saveSession(ctx)
	case game.EventWon, game.EventLost:
		p.saveSession(ctx)
		p.Stats.Record(ev.Kind == game.EventWon, ev.Result.Attempt)
		p.save(ctx, statsKey(p.ID), p.Stats)
		log.Info().
			Str("player", p.ID).
			Str("mode", string(p.Session.Mode)).
			Str("result", string(ev.Kind)).
			Int("attempt", ev.Result.Attempt).
			Msg("game finished")
	}
	return ev
}

// SetPractice switches between daily and practice play. Switching starts a
// fresh session of the new mode; asking for the current mode keeps the
// session unless it no longer belongs to today's puzzle.
func (p *Player) SetPractice(ctx context.Context, on bool, now time.Time) {
	p.Puzzle = p.deps.Schedule.Today(ctx, now)
	if on == p.Settings.Practice && p.restorable(p.Session) {
		return
	}
	p.Settings.Practice = on
	p.save(ctx, settingsKey(p.ID), p.Settings)
	p.newSession(ctx)
}

// SetTheme stores the display preferences.
func (p *Player) SetTheme(ctx context.Context, dark, contrast bool) {
	p.Settings.Dark = dark
	p.Settings.Contrast = contrast
	p.save(ctx, settingsKey(p.ID), p.Settings)
}

// Reset refreshes today's puzzle and starts a new session when the current
// one no longer belongs to it: the day rolled over or the daily word was
// overridden or cleared. It reports whether the session was replaced.
func (p *Player) Reset(ctx context.Context, now time.Time) bool {
	p.Puzzle = p.deps.Schedule.Today(ctx, now)
	if p.restorable(p.Session) {
		return false
	}
	p.newSession(ctx)
	return true
}

// Share renders the share text of the finished session.
func (p *Player) Share() (string, error) {
	return p.Session.Share(p.Puzzle.DayIndex)
}

func (p *Player) saveSession(ctx context.Context) {
	p.save(ctx, stateKey(p.ID), p.Session)
}

func (p *Player) save(ctx context.Context, key string, v any) {
	if err := store.SaveRecord(ctx, p.deps.Store, key, v); err != nil {
		log.Error().Err(err).Str("key", key).Msg("persist failed")
	}
}
