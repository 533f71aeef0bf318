package wol

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/magicpacket"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/netiface"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

type (
	IInterfaceService interface {
		ListInterfaces() (interfaces entities.NetworkInterfaces, err error)
		GetInterfaceByName(name string) (iface entities.NetworkInterface, err error)
		GetDefaultInterface() (iface entities.NetworkInterface, err error)
	}

	IPacketSender interface {
		Send(localIP, broadcast string, port int, payload []byte) (err error)
	}

	IEventPublisher interface {
		PublishWake(ctx context.Context, event entities.WakeEvent)
	}
)

type Service struct {
	interfaceService IInterfaceService
	packetSender     IPacketSender
	eventPublisher   IEventPublisher
	now              func() time.Time
}

func NewService(interfaceService IInterfaceService, packetSender IPacketSender, eventPublisher IEventPublisher, now func() time.Time) *Service {
	return &Service{
		interfaceService: interfaceService,
		packetSender:     packetSender,
		eventPublisher:   eventPublisher,
		now:              now,
	}
}

// Wake sends one magic packet. It never returns a raw error: failures are
// reported through the result with Err holding the classified cause.
func (s *Service) Wake(ctx context.Context, params entities.WakeParams) (result entities.WakeResult) {
	defer func() {
		s.eventPublisher.PublishWake(ctx, entities.NewWakeEvent(params, result, s.now()))
	}()

	addr, err := magicpacket.Parse(params.MacAddress)
	if err != nil {
		return failedResult(params.MacAddress, fmt.Errorf("Wake: %w: %w", errs.ErrInvalidParameters, err),
			fmt.Sprintf("Invalid parameters: invalid mac address %q", params.MacAddress))
	}
	result.MacAddress = addr.String()

	port := lo.Ternary(params.Port == 0, constants.DefaultWakePort, params.Port)
	if port < constants.MinPort || port > constants.MaxPort {
		return failedResult(result.MacAddress, fmt.Errorf("Wake: %w: port %d", errs.ErrInvalidParameters, port),
			fmt.Sprintf("Invalid parameters: port %d is out of range", port))
	}

	explicitBroadcast := strings.TrimSpace(params.BroadcastAddress)
	if explicitBroadcast != "" {
		broadcastAddr, err := netip.ParseAddr(explicitBroadcast)
		if err != nil || !broadcastAddr.Is4() {
			return failedResult(result.MacAddress, fmt.Errorf("Wake: %w: broadcast %q", errs.ErrInvalidParameters, explicitBroadcast),
				fmt.Sprintf("Invalid parameters: broadcast address %q is not ipv4", explicitBroadcast))
		}
	}

	iface, err := s.resolveInterface(params.InterfaceName)
	if err != nil {
		return failedResult(result.MacAddress, fmt.Errorf("Wake: %w", err), interfaceFailureMessage(params.InterfaceName, err))
	}

	broadcast, fallback := netiface.ResolveBroadcast(iface, explicitBroadcast)
	if err = s.packetSender.Send(iface.IPAddress, broadcast, port, magicpacket.Build(addr)); err != nil {
		log.Error().
			Err(err).
			Str("mac", result.MacAddress).
			Str("interface", iface.Name).
			Str("broadcast", broadcast).
			Int("port", port).
			Msg("Wake: send magic packet error")

		failed := failedResult(result.MacAddress, fmt.Errorf("Wake: %w: %w", errs.ErrNetworkTransport, err),
			fmt.Sprintf("Network error: %s", err.Error()))
		failed.InterfaceUsed = iface.Name
		failed.BroadcastUsed = broadcast
		failed.BroadcastFallback = fallback
		failed.Port = port
		return failed
	}

	log.Info().
		Str("mac", result.MacAddress).
		Str("interface", iface.Name).
		Str("broadcast", broadcast).
		Bool("broadcast fallback", fallback).
		Int("port", port).
		Str("client ip", params.ClientIP).
		Msg("Wake: magic packet sent")

	return entities.WakeResult{
		Success:           true,
		Message:           fmt.Sprintf("Magic packet sent to %s", result.MacAddress),
		MacAddress:        result.MacAddress,
		InterfaceUsed:     iface.Name,
		BroadcastUsed:     broadcast,
		BroadcastFallback: fallback,
		Port:              port,
	}
}

func (s *Service) resolveInterface(name string) (iface entities.NetworkInterface, err error) {
	if name = strings.TrimSpace(name); name != "" {
		if iface, err = s.interfaceService.GetInterfaceByName(name); err != nil {
			return iface, fmt.Errorf("resolveInterface: %w", err)
		}

		return iface, nil
	}

	if iface, err = s.interfaceService.GetDefaultInterface(); err != nil {
		return iface, fmt.Errorf("resolveInterface: %w", err)
	}

	return iface, nil
}

func interfaceFailureMessage(name string, err error) string {
	switch {
	case name != "" && errors.Is(err, errs.ErrInterfaceNotFound):
		return fmt.Sprintf("Network interface %q does not exist", name)
	case errors.Is(err, errs.ErrNoDefaultInterface):
		return "Unable to determine the default network interface"
	default:
		return "Unable to read network interfaces"
	}
}

func failedResult(mac string, err error, message string) entities.WakeResult {
	return entities.WakeResult{
		Success:    false,
		Message:    message,
		MacAddress: mac,
		Err:        err,
	}
}
