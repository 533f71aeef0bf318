package constants

import (
	"time"
)

const (
	ServiceName    = "wol-agent"
	ServiceVersion = "2.1.0"
)

const (
	FilePerm          = 0755
	LogFilePerm       = 0644
	WhitelistFilePerm = 0600
)

const (
	DefaultWakePort = 9
	MinPort         = 1
	MaxPort         = 65535
)

const (
	DefaultHost     = "0.0.0.0"
	DefaultHTTPPort = 12345
)

const (
	DefaultUsername = "admin"
	DefaultPassword = "admin123"
)

const (
	AuthModeToken   = "token"
	AuthModeSession = "session"
)

const (
	MaxTokenTTL            = time.Hour * 24
	CaptchaTTL             = time.Minute * 5
	DefaultCleanupInterval = time.Minute
	DefaultCaptchaMax      = 10000
)

const (
	AccessTokenCookie = "access_token"
	SessionCookie     = "session_id"
	TokenTypeBearer   = "bearer"
	TokenTypeSession  = "session"
)

const (
	LimitedBroadcast = "255.255.255.255"
	// OutboundProbeAddr is only used to ask the kernel for a route; nothing is sent.
	OutboundProbeAddr = "8.8.8.8:80"
)

// Known placeholder secrets shipped with earlier releases.
var DefaultSecrets = []string{
	"your-secret-key-change-this",
	"your-secret-key-change-this-in-production",
}
