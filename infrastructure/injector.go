package infrastructure

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/allowlist"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/auth"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/captcha"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/gate"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/health"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/wakeevent"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/wol"
	"github.com/Fivegen-LLC/wol-agent/internal/environment"
)

const generatedSecretBytes = 32

type IInjector interface {
	InjectWakeHandler() *wol.Handler
	InjectAuthHandler() *auth.Handler
	InjectCaptchaHandler() *captcha.Handler
	InjectAllowlistHandler() *allowlist.Handler
	InjectHealthHandler() *health.Handler

	// middlewares.

	InjectGateService() *gate.Service
}

type Kernel struct {
	env       environment.Environment
	secret    []byte
	startedAt time.Time

	DB       *badger.DB
	NatsConn *nats.Conn
}

func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env:       env,
		secret:    []byte(env.Auth.SessionSecret),
		startedAt: time.Now(),
	}

	if lo.IsEmpty(env.Auth.SessionSecret) {
		if k.secret, err = generateSecret(); err != nil {
			return k, fmt.Errorf("Inject: %w", err)
		}
	}

	// sessions never outlive the process, badger only runs in memory
	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(newBadgerLogger()).
		WithMemTableSize(64 << 17) // ~8MB

	if k.DB, err = badger.Open(options); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	if lo.IsNotEmpty(env.Agent.NatsURL) {
		if k.NatsConn, err = wakeevent.Connect(env.Agent.NatsURL); err != nil {
			log.Error().Err(err).Msg("Inject: broker unavailable, wake events disabled")
			k.NatsConn, err = nil, nil
		}
	}

	return k, nil
}

func (k *Kernel) Close() {
	if k.NatsConn != nil {
		if err := k.NatsConn.Drain(); err != nil {
			log.Error().Err(err).Msg("Close: drain broker connection error")
		}
	}

	if k.DB != nil {
		if err := k.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Close: close badger error")
		}
	}
}

func (k *Kernel) InjectWakeHandler() *wol.Handler {
	return wol.NewHandler(
		k.InjectWakeService(),
		k.InjectInterfaceService(),
		k.InjectGateService(),
	)
}

func (k *Kernel) InjectAuthHandler() *auth.Handler {
	return auth.NewHandler(
		k.InjectCaptchaService(),
		k.InjectTokenService(),
		k.InjectCredentialAuthority(),
		k.InjectGateService(),
	)
}

func (k *Kernel) InjectCaptchaHandler() *captcha.Handler {
	return captcha.NewHandler(
		k.InjectCaptchaService(),
	)
}

func (k *Kernel) InjectAllowlistHandler() *allowlist.Handler {
	return allowlist.NewHandler(
		k.InjectAllowlistService(),
		k.InjectGateService(),
	)
}

func (k *Kernel) InjectHealthHandler() *health.Handler {
	var counter health.ISessionCounter = k.InjectCaptchaService()
	if k.env.Auth.IsSessionMode() {
		counter = k.InjectSessionService()
	}

	return health.NewHandler(
		counter,
		k.startedAt,
		time.Now,
	)
}

func generateSecret() (secret []byte, err error) {
	secret = make([]byte, generatedSecretBytes)
	if _, err = rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generateSecret: %w", err)
	}

	return secret, nil
}
