package netiface

import (
	"fmt"
	"net"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

type (
	ISystemService interface {
		Interfaces() (interfaces []net.Interface, err error)
		InterfaceAddrs(iface net.Interface) (addrs []net.Addr, err error)
		OutboundIP() (ip net.IP, err error)
	}
)

type Service struct {
	systemService ISystemService
}

func NewService(systemService ISystemService) *Service {
	return &Service{
		systemService: systemService,
	}
}

type inventoryResult struct {
	index int
	iface entities.NetworkInterface
	found bool
}

// ListInterfaces returns up and non-loopback interfaces that carry an IPv4 address,
// in the order reported by the OS.
func (s *Service) ListInterfaces() (interfaces entities.NetworkInterfaces, err error) {
	systemIfaces, err := s.systemService.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("ListInterfaces: %w", err)
	}

	candidates := lo.Filter(systemIfaces, func(iface net.Interface, _ int) bool {
		return iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagLoopback == 0
	})
	if len(candidates) == 0 {
		return entities.NetworkInterfaces{}, nil
	}

	p := pool.NewWithResults[inventoryResult]().WithMaxGoroutines(len(candidates))
	for i, iface := range candidates {
		p.Go(func() inventoryResult {
			addrs, err := s.systemService.InterfaceAddrs(iface)
			if err != nil {
				log.Warn().
					Err(err).
					Str("interface", iface.Name).
					Msg("ListInterfaces: read addresses error")

				return inventoryResult{index: i}
			}

			networkIface, found := buildInterface(iface, addrs)
			return inventoryResult{
				index: i,
				iface: networkIface,
				found: found,
			}
		})
	}

	results := p.Wait()
	slices.SortFunc(results, func(a, b inventoryResult) int {
		return a.index - b.index
	})

	interfaces = make(entities.NetworkInterfaces, 0, len(results))
	for _, result := range results {
		if result.found {
			interfaces = append(interfaces, result.iface)
		}
	}

	return interfaces, nil
}

// GetInterfaceByName returns the named interface from a fresh inventory.
func (s *Service) GetInterfaceByName(name string) (iface entities.NetworkInterface, err error) {
	interfaces, err := s.ListInterfaces()
	if err != nil {
		return iface, fmt.Errorf("GetInterfaceByName: %w", err)
	}

	iface, found := lo.Find(interfaces, func(item entities.NetworkInterface) bool {
		return item.Name == name
	})
	if !found {
		return iface, fmt.Errorf("GetInterfaceByName: %w: %s", errs.ErrInterfaceNotFound, name)
	}

	return iface, nil
}

// GetDefaultInterface returns the interface the kernel would route outbound
// traffic through. If that cannot be determined the first inventory entry is used.
func (s *Service) GetDefaultInterface() (iface entities.NetworkInterface, err error) {
	interfaces, err := s.ListInterfaces()
	if err != nil {
		return iface, fmt.Errorf("GetDefaultInterface: %w", err)
	}

	if len(interfaces) == 0 {
		return iface, fmt.Errorf("GetDefaultInterface: %w", errs.ErrNoDefaultInterface)
	}

	outboundIP, err := s.systemService.OutboundIP()
	if err != nil {
		log.Warn().
			Err(err).
			Str("fallback", interfaces[0].Name).
			Msg("GetDefaultInterface: outbound probe failed, using first interface")

		return interfaces[0], nil
	}

	iface, found := lo.Find(interfaces, func(item entities.NetworkInterface) bool {
		return item.IPAddress == outboundIP.String()
	})
	if !found {
		log.Warn().
			Str("outbound ip", outboundIP.String()).
			Str("fallback", interfaces[0].Name).
			Msg("GetDefaultInterface: outbound ip matches no interface, using first interface")

		return interfaces[0], nil
	}

	return iface, nil
}

func buildInterface(iface net.Interface, addrs []net.Addr) (networkIface entities.NetworkInterface, found bool) {
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}

		ip4 := ipNet.IP.To4()
		if ip4 == nil || ip4.IsLoopback() {
			continue
		}

		mask := ipNet.Mask
		if len(mask) == net.IPv6len {
			mask = mask[net.IPv6len-net.IPv4len:]
		}

		networkIface = entities.NetworkInterface{
			Name:      iface.Name,
			IPAddress: ip4.String(),
			Netmask:   net.IP(mask).String(),
		}
		if len(iface.HardwareAddr) > 0 {
			networkIface.MacAddress = iface.HardwareAddr.String()
		}
		if iface.Flags&net.FlagBroadcast != 0 {
			if broadcast, err := CalculateBroadcast(networkIface.IPAddress, networkIface.Netmask); err == nil {
				networkIface.Broadcast = broadcast
			}
		}

		return networkIface, true
	}

	return networkIface, false
}
