package gate

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/httpserver"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

// RequireAccess admits whitelisted and authenticated callers.
func (s *Service) RequireAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := s.Decide(r)
		if !decision.CanWake() {
			httpserver.WriteError(w, fmt.Errorf("RequireAccess: %w", errs.ErrUnauthorized))
			return
		}

		log.Debug().
			Str("client ip", decision.ClientIP).
			Str("access", decision.Level.String()).
			Str("path", r.URL.Path).
			Msg("RequireAccess: granted")

		next.ServeHTTP(w, r)
	})
}

// RequireToken admits authenticated callers only. Whitelisted callers without a
// credential are refused with 403.
func (s *Service) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := s.DecideManagement(r)
		if decision.CanManage() {
			next.ServeHTTP(w, r)
			return
		}

		if decision.CanWake() {
			log.Warn().
				Str("client ip", decision.ClientIP).
				Str("path", r.URL.Path).
				Msg("RequireToken: whitelisted caller refused management access")

			httpserver.WriteError(w, fmt.Errorf("RequireToken: %w", errs.ErrForbidden))
			return
		}

		httpserver.WriteError(w, fmt.Errorf("RequireToken: %w", errs.ErrUnauthorized))
	})
}
