package infrastructure

import (
	"sync"
	"time"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/allowlist"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/auth"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/captcha"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/gate"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/httpserver"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/netiface"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/session"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/wakeevent"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/wol"
)

// credentialAuthority issues login credentials and authenticates them on later requests.
type credentialAuthority interface {
	gate.IAuthenticator
	auth.ICredentialIssuer
}

var (
	httpServerService     *httpserver.Service
	httpServerServiceOnce sync.Once
)

func (k *Kernel) InjectHTTPServerService() *httpserver.Service {
	httpServerServiceOnce.Do(func() {
		httpServerService = httpserver.NewService(
			k.env.Agent.ListenAddr(),
		)
	})

	return httpServerService
}

var (
	interfaceService     *netiface.Service
	interfaceServiceOnce sync.Once
)

func (k *Kernel) InjectInterfaceService() *netiface.Service {
	interfaceServiceOnce.Do(func() {
		interfaceService = netiface.NewService(
			netiface.NewSystem(constants.OutboundProbeAddr),
		)
	})

	return interfaceService
}

var (
	wakeService     *wol.Service
	wakeServiceOnce sync.Once
)

func (k *Kernel) InjectWakeService() *wol.Service {
	wakeServiceOnce.Do(func() {
		wakeService = wol.NewService(
			k.InjectInterfaceService(),
			wol.NewUDPSender(),
			k.InjectEventPublisher(),
			time.Now,
		)
	})

	return wakeService
}

var (
	eventPublisher     wol.IEventPublisher
	eventPublisherOnce sync.Once
)

func (k *Kernel) InjectEventPublisher() wol.IEventPublisher {
	eventPublisherOnce.Do(func() {
		if k.NatsConn == nil {
			eventPublisher = wakeevent.NewNoopPublisher()
			return
		}

		eventPublisher = wakeevent.NewPublisher(
			k.NatsConn,
			constants.MQWakeEvent,
		)
	})

	return eventPublisher
}

var (
	tokenService     *auth.Service
	tokenServiceOnce sync.Once
)

func (k *Kernel) InjectTokenService() *auth.Service {
	tokenServiceOnce.Do(func() {
		tokenService = auth.NewService(
			k.env.Auth.Username,
			k.env.Auth.Password,
			k.secret,
			k.env.Auth.TokenTTL,
			time.Now,
		)
	})

	return tokenService
}

var (
	sessionService     *session.Service
	sessionServiceOnce sync.Once
)

func (k *Kernel) InjectSessionService() *session.Service {
	sessionServiceOnce.Do(func() {
		sessionService = session.NewService(
			k.DB,
			k.env.Auth.TokenTTL,
			k.env.Agent.CleanupInterval,
			time.Now,
		)
	})

	return sessionService
}

// InjectCredentialAuthority picks bearer tokens or server-side sessions by auth mode.
func (k *Kernel) InjectCredentialAuthority() credentialAuthority {
	if k.env.Auth.IsSessionMode() {
		return k.InjectSessionService()
	}

	return k.InjectTokenService()
}

var (
	captchaService     *captcha.Service
	captchaServiceOnce sync.Once
)

func (k *Kernel) InjectCaptchaService() *captcha.Service {
	captchaServiceOnce.Do(func() {
		captchaService = captcha.NewService(
			captcha.NewPNGRenderer(),
			constants.CaptchaTTL,
			k.env.Agent.CaptchaMax,
			k.env.Agent.CleanupInterval,
			time.Now,
		)
	})

	return captchaService
}

var (
	allowlistService     *allowlist.Service
	allowlistServiceOnce sync.Once
)

func (k *Kernel) InjectAllowlistService() *allowlist.Service {
	allowlistServiceOnce.Do(func() {
		allowlistService = allowlist.NewService(
			k.env.Whitelist.FilePath,
			time.Now,
		)
	})

	return allowlistService
}

var (
	gateService     *gate.Service
	gateServiceOnce sync.Once
)

func (k *Kernel) InjectGateService() *gate.Service {
	gateServiceOnce.Do(func() {
		gateService = gate.NewService(
			k.InjectAllowlistService(),
			k.InjectCredentialAuthority(),
			k.env.Whitelist.TrustProxyHeaders,
		)
	})

	return gateService
}
