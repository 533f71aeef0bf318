package entities

import (
	"time"
)

// Credential is what a successful login hands back to the caller: a bearer
// token or a session id, plus the cookie that carries it.
type Credential struct {
	Value      string
	Type       string
	CookieName string
	ExpiresAt  time.Time
}
