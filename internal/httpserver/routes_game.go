// internal/httpserver/routes_game.go
//
// HTTP routes for playing.
//   - GET  /game          → current session snapshot
//   - POST /game/command  → apply one input (letter / delete / submit)
//   - POST /game/mode     → switch between daily and practice
//   - GET  /stats         → lifetime statistics
//   - GET  /settings, PUT /settings → theme preferences
//   - GET  /share         → share text of the finished session (409 while playing)
//
// Each handler loads the player, mutates it at most once, and responds
// with the resulting state. Persistence happens inside the player.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle-cz/internal/game"
	"github.com/robalobadob/wordle-cz/internal/player"
	"github.com/robalobadob/wordle-cz/internal/stats"
)

// mountGame registers all game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Get("/game", s.handleGame)
	r.Post("/game/command", s.handleCommand)
	r.Post("/game/mode", s.handleMode)
	r.Get("/stats", s.handleStats)
	r.Get("/settings", s.handleSettings)
	r.Put("/settings", s.handlePutSettings)
	r.Get("/share", s.handleShare)
}

// withLoadedPlayer runs fn on the request's player under the server lock.
func (s *Server) withLoadedPlayer(r *http.Request, fn func(p *player.Player)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := player.Load(r.Context(), playerID(r.Context()), s.deps, s.now())
	fn(p)
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	s.withLoadedPlayer(r, func(p *player.Player) {
		writeJSON(w, http.StatusOK, p.Snapshot())
	})
}

// commandRes is the response payload for /game/command.
type commandRes struct {
	Event    game.EventKind  `json:"event"`
	Reason   string          `json:"reason,omitempty"` // set for rejected submissions
	Result   *game.Result    `json:"result,omitempty"` // set for scored/won/lost
	Snapshot player.Snapshot `json:"snapshot"`
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var cmd game.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	switch cmd.Type {
	case game.CommandLetter, game.CommandDelete, game.CommandSubmit:
	default:
		writeError(w, http.StatusBadRequest, "unknown command type")
		return
	}

	s.withLoadedPlayer(r, func(p *player.Player) {
		ev := p.Apply(r.Context(), cmd)
		res := commandRes{Event: ev.Kind, Result: ev.Result, Snapshot: p.Snapshot()}
		if ev.Err != nil {
			res.Reason = ev.Err.Error()
		}
		writeJSON(w, http.StatusOK, res)
	})
}

type modeReq struct {
	Practice bool `json:"practice"`
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	var req modeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.withLoadedPlayer(r, func(p *player.Player) {
		p.SetPractice(r.Context(), req.Practice, s.now())
		writeJSON(w, http.StatusOK, p.Snapshot())
	})
}

// statsRes adds the derived win rate to the stored statistics.
type statsRes struct {
	stats.Stats
	WinRate int `json:"winRate"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.withLoadedPlayer(r, func(p *player.Player) {
		writeJSON(w, http.StatusOK, statsRes{Stats: p.Stats, WinRate: p.Stats.WinRate()})
	})
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	s.withLoadedPlayer(r, func(p *player.Player) {
		writeJSON(w, http.StatusOK, p.Settings)
	})
}

type themeReq struct {
	Dark     *bool `json:"dark"`
	Contrast *bool `json:"contrast"`
}

// handlePutSettings updates the fields present in the body.
func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req themeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.withLoadedPlayer(r, func(p *player.Player) {
		dark, contrast := p.Settings.Dark, p.Settings.Contrast
		if req.Dark != nil {
			dark = *req.Dark
		}
		if req.Contrast != nil {
			contrast = *req.Contrast
		}
		p.SetTheme(r.Context(), dark, contrast)
		writeJSON(w, http.StatusOK, p.Settings)
	})
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	s.withLoadedPlayer(r, func(p *player.Player) {
		text, err := p.Share()
		if errors.Is(err, game.ErrGameInProgress) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"text": text})
	})
}
