package wakeevent

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/wol-agent/internal/entities"
)

type (
	IMessageConn interface {
		Publish(subject string, data []byte) error
	}
)

// Publisher mirrors every wake attempt to the broker. Publishing is best effort
// and never affects the outcome of the wake itself.
type Publisher struct {
	conn    IMessageConn
	subject string
}

func NewPublisher(conn IMessageConn, subject string) *Publisher {
	return &Publisher{
		conn:    conn,
		subject: subject,
	}
}

func (p *Publisher) PublishWake(ctx context.Context, event entities.WakeEvent) {
	if err := ctx.Err(); err != nil {
		log.Debug().Err(err).Str("mac", event.MacAddress).Msg("PublishWake: context done, event dropped")
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("PublishWake: marshal event error")
		return
	}

	if err = p.conn.Publish(p.subject, data); err != nil {
		log.Error().Err(err).Str("subject", p.subject).Msg("PublishWake: publish event error")
		return
	}
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishWake(_ context.Context, event entities.WakeEvent) {
	log.Debug().
		Str("mac", event.MacAddress).
		Bool("success", event.Success).
		Msg("PublishWake: broker disabled")
}
