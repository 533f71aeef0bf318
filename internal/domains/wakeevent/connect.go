package wakeevent

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
)

const reconnectWait = 2 * time.Second

// Connect dials the broker and keeps reconnecting in the background for the life of the process.
func Connect(url string) (conn *nats.Conn, err error) {
	conn, err = nats.Connect(url,
		nats.Name(constants.ServiceName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("Connect: broker disconnected")
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			log.Info().Str("url", conn.ConnectedUrlRedacted()).Msg("Connect: broker reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("Connect: %w", err)
	}

	return conn, nil
}
