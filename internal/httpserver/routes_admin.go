// internal/httpserver/routes_admin.go
//
// Admin routes for replacing today's daily word.
//   - POST   /admin/override {password, word} → set today's word
//   - DELETE /admin/override {password}       → restore the scheduled word
//
// The password is checked against a bcrypt hash made at startup. Attempts
// are rate limited per client IP. Players on a daily session pick the new
// word up on their next request, since their save no longer matches today.

package httpserver

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/robalobadob/wordle-cz/internal/daily"
)

func (s *Server) mountAdmin(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Post("/override", s.handleSetOverride)
		r.Delete("/override", s.handleClearOverride)
	})
}

// limiterTTL is how long an idle client's limiter is kept.
const limiterTTL = 10 * time.Minute

type limiterEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

// getLimiter returns the rate limiter for key (client IP). Limiters idle for
// longer than limiterTTL are dropped, at most once per TTL.
func (s *Server) getLimiter(key string) *rate.Limiter {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()
	now := s.now()
	if now.Sub(s.limiterSwept) >= limiterTTL {
		for k, e := range s.limiterMap {
			if now.Sub(e.seen) >= limiterTTL {
				delete(s.limiterMap, k)
			}
		}
		s.limiterSwept = now
	}
	if e, ok := s.limiterMap[key]; ok {
		e.seen = now
		return e.lim
	}
	rps := s.cfg.AdminRPS
	if rps <= 0 {
		rps = 1
	}
	burst := s.cfg.AdminBurst
	if burst < 1 {
		burst = 1
	}
	lim := rate.NewLimiter(rate.Every(time.Duration(float64(time.Second)/rps)), burst)
	s.limiterMap[key] = &limiterEntry{lim: lim, seen: now}
	return lim
}

// rateLimit rejects clients that exceed their admin attempt budget.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			key = host
		}
		if !s.getLimiter(key).Allow() {
			log.Warn().Str("ip", key).Msg("admin rate limit exceeded")
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type overrideReq struct {
	Password string `json:"password"`
	Word     string `json:"word"`
}

// decodeAdmin parses the body and checks the password. It writes the error
// response and returns false on failure.
func (s *Server) decodeAdmin(w http.ResponseWriter, r *http.Request) (overrideReq, bool) {
	var req overrideReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return req, false
	}
	if bcrypt.CompareHashAndPassword(s.adminHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "wrong password")
		return req, false
	}
	return req, true
}

func (s *Server) handleSetOverride(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAdmin(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.deps.Schedule.SetOverride(r.Context(), s.now(), req.Word)
	switch {
	case errors.Is(err, daily.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		log.Error().Err(err).Msg("set override")
		writeError(w, http.StatusInternalServerError, "save_failed")
	default:
		writeJSON(w, http.StatusOK, p)
	}
}

func (s *Server) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.decodeAdmin(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.deps.Schedule.ClearOverride(r.Context(), s.now())
	if err != nil {
		log.Error().Err(err).Msg("clear override")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
