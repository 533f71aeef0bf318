package environment

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
)

type Environment struct {
	Agent
	Auth
	Whitelist
}

type Agent struct {
	Host            string
	Port            int
	LogfilePath     string
	LogLevel        string
	NatsURL         string
	CleanupInterval time.Duration
	CaptchaMax      int
}

type Auth struct {
	Username      string
	Password      string
	SessionSecret string
	Mode          string
	TokenTTL      time.Duration
}

type Whitelist struct {
	FilePath          string
	TrustProxyHeaders bool
}

func New() (e Environment, err error) {
	v := viper.New()
	v.SetEnvPrefix("WOL")
	v.AutomaticEnv()

	v.SetDefault("HOST", constants.DefaultHost)
	v.SetDefault("PORT", constants.DefaultHTTPPort)
	v.SetDefault("LOG_FILE", constants.DefaultLogfilePath)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CLEANUP_INTERVAL", constants.DefaultCleanupInterval)
	v.SetDefault("CAPTCHA_MAX", constants.DefaultCaptchaMax)
	v.SetDefault("USERNAME", constants.DefaultUsername)
	v.SetDefault("PASSWORD", constants.DefaultPassword)
	v.SetDefault("AUTH_MODE", constants.AuthModeToken)
	v.SetDefault("TOKEN_TTL", constants.MaxTokenTTL)
	v.SetDefault("WHITELIST_FILE", constants.DefaultWhitelistPath)
	v.SetDefault("TRUST_PROXY_HEADERS", true)

	// agent settings
	e.Agent.Host = v.GetString("HOST")
	e.Agent.Port = v.GetInt("PORT")
	if e.Agent.Port < constants.MinPort || e.Agent.Port > constants.MaxPort {
		return e, fmt.Errorf("New: invalid listen port %d", e.Agent.Port)
	}
	e.Agent.LogfilePath = v.GetString("LOG_FILE")
	e.Agent.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))
	e.Agent.NatsURL = v.GetString("NATS_URL")
	e.Agent.CleanupInterval = v.GetDuration("CLEANUP_INTERVAL")
	if e.Agent.CleanupInterval <= 0 {
		e.Agent.CleanupInterval = constants.DefaultCleanupInterval
	}
	e.Agent.CaptchaMax = v.GetInt("CAPTCHA_MAX")
	if e.Agent.CaptchaMax <= 0 {
		e.Agent.CaptchaMax = constants.DefaultCaptchaMax
	}

	// auth settings
	e.Auth.Username = v.GetString("USERNAME")
	e.Auth.Password = v.GetString("PASSWORD")
	if lo.IsEmpty(e.Auth.Username) || lo.IsEmpty(e.Auth.Password) {
		return e, fmt.Errorf("New: operator credentials are empty")
	}
	e.Auth.SessionSecret = v.GetString("SESSION_SECRET")
	e.Auth.Mode = strings.ToLower(v.GetString("AUTH_MODE"))
	if e.Auth.Mode != constants.AuthModeToken && e.Auth.Mode != constants.AuthModeSession {
		return e, fmt.Errorf("New: unknown auth mode %q", e.Auth.Mode)
	}
	e.Auth.TokenTTL = v.GetDuration("TOKEN_TTL")
	if e.Auth.TokenTTL <= 0 || e.Auth.TokenTTL > constants.MaxTokenTTL {
		e.Auth.TokenTTL = constants.MaxTokenTTL
	}

	// whitelist settings
	e.Whitelist.FilePath = v.GetString("WHITELIST_FILE")
	e.Whitelist.TrustProxyHeaders = v.GetBool("TRUST_PROXY_HEADERS")

	return e, nil
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == "debug"
}

func (e Agent) ListenAddr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// IsDefaultSecret reports whether tokens would be signed with a missing or placeholder secret.
func (e Auth) IsDefaultSecret() bool {
	return lo.IsEmpty(e.SessionSecret) || slices.Contains(constants.DefaultSecrets, e.SessionSecret)
}

func (e Auth) IsDefaultPassword() bool {
	return e.Password == constants.DefaultPassword
}

func (e Auth) IsSessionMode() bool {
	return e.Mode == constants.AuthModeSession
}
