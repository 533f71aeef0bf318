package wakeevent_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/wakeevent"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/wakeevent/wakeevent_mocks"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
)

var testEvent = entities.WakeEvent{
	MacAddress:       "AA:BB:CC:DD:EE:FF",
	InterfaceUsed:    "eth0",
	BroadcastAddress: "192.168.1.255",
	Port:             9,
	Success:          true,
	Message:          "Magic packet sent to AA:BB:CC:DD:EE:FF",
	ClientIP:         "192.168.1.20",
	At:               time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func TestPublisher_PublishWake(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name    string
		ctx     func() context.Context
		prepare func(m *wakeevent_mocks.MockIMessageConn)
	}{
		{
			name: "published",
			ctx:  context.Background,
			prepare: func(m *wakeevent_mocks.MockIMessageConn) {
				m.EXPECT().
					Publish(constants.MQWakeEvent, mock.Anything).
					RunAndReturn(func(_ string, data []byte) error {
						var event entities.WakeEvent
						require.NoError(t, json.Unmarshal(data, &event))
						assert.Equal(t, testEvent, event)
						return nil
					}).
					Times(1)
			},
		},
		{
			name: "publish failure is swallowed",
			ctx:  context.Background,
			prepare: func(m *wakeevent_mocks.MockIMessageConn) {
				m.EXPECT().
					Publish(constants.MQWakeEvent, mock.Anything).
					Return(errors.New("broker down")).
					Times(1)
			},
		},
		{
			name: "cancelled context skips publish",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			prepare: func(_ *wakeevent_mocks.MockIMessageConn) {},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			conn := wakeevent_mocks.NewMockIMessageConn(t)
			testCase.prepare(conn)

			wakeevent.NewPublisher(conn, constants.MQWakeEvent).PublishWake(testCase.ctx(), testEvent)
		})
	}
}

func TestNoopPublisher_PublishWake(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		wakeevent.NewNoopPublisher().PublishWake(context.Background(), testEvent)
	})
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := wakeevent.Connect("nats://127.0.0.1:1")
	require.Error(t, err)
}
