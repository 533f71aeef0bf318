package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

type Service struct {
	username string
	password string
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(username, password string, secret []byte, tokenTTL time.Duration, now func() time.Time) *Service {
	return &Service{
		username: username,
		password: password,
		secret:   secret,
		tokenTTL: capTTL(tokenTTL),
		now:      now,
	}
}

// VerifyCredentials compares both fields in constant time and never short-circuits.
func (s *Service) VerifyCredentials(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))

	return usernameMatch&passwordMatch == 1
}

// IssueToken signs {sub, iat, exp} with HS256. ttl is capped at 24h.
func (s *Service) IssueToken(username string, ttl time.Duration) (token string, err error) {
	if lo.IsEmpty(username) {
		return "", fmt.Errorf("IssueToken: %w: empty subject", errs.ErrInvalidParameters)
	}

	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(capTTL(ttl))),
	}

	if token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret); err != nil {
		return "", fmt.Errorf("IssueToken: %w", err)
	}

	return token, nil
}

// VerifyToken checks signature, algorithm and expiry. Any failure is ErrInvalidToken.
func (s *Service) VerifyToken(token string) (username string, err error) {
	if lo.IsEmpty(token) {
		return "", fmt.Errorf("VerifyToken: %w", errs.ErrInvalidToken)
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("VerifyToken: %w: %w", errs.ErrInvalidToken, err)
	}

	if lo.IsEmpty(claims.Subject) {
		return "", fmt.Errorf("VerifyToken: %w: empty subject", errs.ErrInvalidToken)
	}

	return claims.Subject, nil
}

// IssueCredential mints a bearer token for a freshly logged in operator.
func (s *Service) IssueCredential(username string) (credential entities.Credential, err error) {
	token, err := s.IssueToken(username, s.tokenTTL)
	if err != nil {
		return credential, fmt.Errorf("IssueCredential: %w", err)
	}

	return entities.Credential{
		Value:      token,
		Type:       constants.TokenTypeBearer,
		CookieName: constants.AccessTokenCookie,
		ExpiresAt:  s.now().Add(s.tokenTTL),
	}, nil
}

// RevokeCredential is a no-op: bearer tokens are stateless and live until they expire.
func (s *Service) RevokeCredential(string) (err error) {
	return nil
}

// Authenticate resolves a bearer token to the operator it was issued to.
func (s *Service) Authenticate(credential string) (username string, err error) {
	if username, err = s.VerifyToken(credential); err != nil {
		return "", fmt.Errorf("Authenticate: %w", err)
	}

	return username, nil
}

func (s *Service) CookieName() string {
	return constants.AccessTokenCookie
}

func capTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > constants.MaxTokenTTL {
		return constants.MaxTokenTTL
	}

	return ttl
}
