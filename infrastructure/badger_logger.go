package infrastructure

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// badgerLogger routes badger's printf-style logs into zerolog.
type badgerLogger struct{}

func newBadgerLogger() *badgerLogger {
	return &badgerLogger{}
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	log.Error().Str("component", "badger").Msg(trimmed(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	log.Warn().Str("component", "badger").Msg(trimmed(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	log.Debug().Str("component", "badger").Msg(trimmed(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	log.Trace().Str("component", "badger").Msg(trimmed(format, args...))
}

func trimmed(format string, args ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
