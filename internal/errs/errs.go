package errs

import (
	"errors"
)

var (
	ErrInvalidMacAddress  = errors.New("invalid mac address")
	ErrInvalidParameters  = errors.New("invalid parameters")
	ErrInterfaceNotFound  = errors.New("network interface not found")
	ErrNoDefaultInterface = errors.New("no default network interface")
	ErrNetworkTransport   = errors.New("network transport error")
	ErrInvalidNetmask     = errors.New("invalid netmask")
)

var (
	ErrInvalidToken             = errors.New("invalid token")
	ErrCaptchaMismatchOrExpired = errors.New("captcha mismatch or expired")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrSessionNotFound          = errors.New("session not found")
)

var (
	ErrInvalidIPFormat = errors.New("invalid ip format")
	ErrEntryNotFound   = errors.New("entry not found")
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

var (
	ErrAPIError = errors.New("api error")
)
