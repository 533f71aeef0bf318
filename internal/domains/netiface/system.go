package netiface

import (
	"fmt"
	"net"
)

// System reads interface state from the host network stack.
type System struct {
	probeAddr string
}

func NewSystem(probeAddr string) *System {
	return &System{
		probeAddr: probeAddr,
	}
}

func (s *System) Interfaces() (interfaces []net.Interface, err error) {
	if interfaces, err = net.Interfaces(); err != nil {
		return nil, fmt.Errorf("Interfaces: %w", err)
	}

	return interfaces, nil
}

func (s *System) InterfaceAddrs(iface net.Interface) (addrs []net.Addr, err error) {
	if addrs, err = iface.Addrs(); err != nil {
		return nil, fmt.Errorf("InterfaceAddrs: %w", err)
	}

	return addrs, nil
}

// OutboundIP asks the kernel which local address it would route through to reach probeAddr.
// Connecting a UDP socket sends nothing on the wire.
func (s *System) OutboundIP() (ip net.IP, err error) {
	conn, err := net.Dial("udp4", s.probeAddr)
	if err != nil {
		return nil, fmt.Errorf("OutboundIP: %w", err)
	}
	defer conn.Close()

	localAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return nil, fmt.Errorf("OutboundIP: unexpected local address type %T", conn.LocalAddr())
	}

	return localAddr.IP, nil
}
