package gate

import (
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
)

type (
	IAllowlistService interface {
		IsMember(ip string) bool
	}

	IAuthenticator interface {
		Authenticate(credential string) (username string, err error)
		CookieName() string
	}
)

type Service struct {
	allowlistService  IAllowlistService
	authenticator     IAuthenticator
	trustProxyHeaders bool
}

func NewService(allowlistService IAllowlistService, authenticator IAuthenticator, trustProxyHeaders bool) *Service {
	return &Service{
		allowlistService:  allowlistService,
		authenticator:     authenticator,
		trustProxyHeaders: trustProxyHeaders,
	}
}

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer
// address. Proxy headers are spoofable by direct clients and are only read when trusted.
func (s *Service) ClientIP(r *http.Request) string {
	if s.trustProxyHeaders {
		if forwarded := r.Header.Get(constants.HeaderForwardedFor); lo.IsNotEmpty(forwarded) {
			first, _, _ := strings.Cut(forwarded, ",")
			if first = strings.TrimSpace(first); lo.IsNotEmpty(first) {
				return first
			}
		}

		if realIP := strings.TrimSpace(r.Header.Get(constants.HeaderRealIP)); lo.IsNotEmpty(realIP) {
			return realIP
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// Decide classifies a request for wake and inventory routes. Allowlist membership
// is checked before any credential.
func (s *Service) Decide(r *http.Request) entities.AccessDecision {
	clientIP := s.ClientIP(r)
	if s.allowlistService.IsMember(clientIP) {
		return entities.AccessDecision{
			Level:    entities.AccessWhitelisted,
			ClientIP: clientIP,
		}
	}

	if username, ok := s.authenticate(r); ok {
		return entities.AccessDecision{
			Level:    entities.AccessTokenAuthenticated,
			Username: username,
			ClientIP: clientIP,
		}
	}

	return entities.AccessDecision{
		Level:    entities.AccessUnauthenticated,
		ClientIP: clientIP,
	}
}

// DecideManagement classifies a request for allowlist management. A valid
// credential is mandatory; allowlist membership alone never grants management.
func (s *Service) DecideManagement(r *http.Request) entities.AccessDecision {
	clientIP := s.ClientIP(r)
	if username, ok := s.authenticate(r); ok {
		return entities.AccessDecision{
			Level:    entities.AccessTokenAuthenticated,
			Username: username,
			ClientIP: clientIP,
		}
	}

	if s.allowlistService.IsMember(clientIP) {
		return entities.AccessDecision{
			Level:    entities.AccessWhitelisted,
			ClientIP: clientIP,
		}
	}

	return entities.AccessDecision{
		Level:    entities.AccessUnauthenticated,
		ClientIP: clientIP,
	}
}

func (s *Service) authenticate(r *http.Request) (username string, ok bool) {
	credential := ExtractCredential(r, s.authenticator.CookieName())
	if lo.IsEmpty(credential) {
		return "", false
	}

	username, err := s.authenticator.Authenticate(credential)
	if err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("authenticate: credential rejected")
		return "", false
	}

	return username, true
}

// ExtractCredential reads "Authorization: Bearer <value>" and falls back to the named cookie.
func ExtractCredential(r *http.Request, cookieName string) string {
	if header := r.Header.Get(constants.HeaderAuthorization); lo.IsNotEmpty(header) {
		scheme, value, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, constants.TokenTypeBearer) {
			if value = strings.TrimSpace(value); lo.IsNotEmpty(value) {
				return value
			}
		}
	}

	if cookie, err := r.Cookie(cookieName); err == nil {
		return strings.TrimSpace(cookie.Value)
	}

	return ""
}
