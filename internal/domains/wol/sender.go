package wol

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// UDPSender transmits payloads as UDP broadcast datagrams.
type UDPSender struct{}

func NewUDPSender() *UDPSender {
	return &UDPSender{}
}

// Send binds an ephemeral port on localIP and writes payload to broadcast:port.
// The socket is closed on every path.
func (s *UDPSender) Send(localIP, broadcast string, port int, payload []byte) (err error) {
	listenConfig := net.ListenConfig{
		Control: enableBroadcast,
	}

	conn, err := listenConfig.ListenPacket(context.Background(), "udp4", net.JoinHostPort(localIP, "0"))
	if err != nil {
		return fmt.Errorf("Send: %w", err)
	}
	defer conn.Close()

	dstAddr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(broadcast, strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("Send: %w", err)
	}

	written, err := conn.WriteTo(payload, dstAddr)
	if err != nil {
		return fmt.Errorf("Send: %w", err)
	}

	if written != len(payload) {
		return fmt.Errorf("Send: short write %d of %d bytes", written, len(payload))
	}

	return nil
}
