package netiface

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

// CalculateBroadcast returns ip | ^mask. The mask is either dotted-quad or a
// prefix length with an optional leading slash.
func CalculateBroadcast(ip, mask string) (broadcast string, err error) {
	addr, err := parseIPv4(ip)
	if err != nil {
		return "", fmt.Errorf("CalculateBroadcast: %w", err)
	}

	maskBits, err := parseMask(mask)
	if err != nil {
		return "", fmt.Errorf("CalculateBroadcast: %w", err)
	}

	network := addrToUint32(addr) & maskBits
	return uint32ToAddr(network | ^maskBits).String(), nil
}

// ResolveBroadcast picks the destination for iface: explicit wins, then the
// OS-reported broadcast, then one computed from the netmask. When none of those
// works the limited broadcast is returned with fallback set.
func ResolveBroadcast(iface entities.NetworkInterface, explicit string) (broadcast string, fallback bool) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, false
	}

	if iface.HasBroadcast() {
		return iface.Broadcast, false
	}

	broadcast, err := CalculateBroadcast(iface.IPAddress, iface.Netmask)
	if err != nil {
		log.Warn().
			Err(err).
			Str("interface", iface.Name).
			Str("ip", iface.IPAddress).
			Str("netmask", iface.Netmask).
			Msg("ResolveBroadcast: falling back to limited broadcast")

		return constants.LimitedBroadcast, true
	}

	return broadcast, false
}

func parseIPv4(raw string) (addr netip.Addr, err error) {
	addr, err = netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return addr, fmt.Errorf("parseIPv4: %w: %w", errs.ErrInvalidParameters, err)
	}

	addr = addr.Unmap()
	if !addr.Is4() {
		return addr, fmt.Errorf("parseIPv4: %w: %q is not ipv4", errs.ErrInvalidParameters, raw)
	}

	return addr, nil
}

func parseMask(raw string) (mask uint32, err error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "/")
	if raw == "" {
		return 0, fmt.Errorf("parseMask: %w: empty", errs.ErrInvalidNetmask)
	}

	if !strings.Contains(raw, ".") {
		prefix, err := strconv.Atoi(raw)
		if err != nil || prefix < 0 || prefix > 32 {
			return 0, fmt.Errorf("parseMask: %w: %q", errs.ErrInvalidNetmask, raw)
		}

		return prefixToMask(prefix), nil
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil || !addr.Is4() {
		return 0, fmt.Errorf("parseMask: %w: %q", errs.ErrInvalidNetmask, raw)
	}

	mask = addrToUint32(addr)
	if mask != prefixToMask(bits.OnesCount32(mask)) {
		return 0, fmt.Errorf("parseMask: %w: %q is not contiguous", errs.ErrInvalidNetmask, raw)
	}

	return mask, nil
}

func prefixToMask(prefix int) uint32 {
	if prefix == 0 {
		return 0
	}

	return ^uint32(0) << (32 - prefix)
}

func addrToUint32(addr netip.Addr) uint32 {
	octets := addr.As4()
	return binary.BigEndian.Uint32(octets[:])
}

func uint32ToAddr(value uint32) netip.Addr {
	var octets [4]byte
	binary.BigEndian.PutUint32(octets[:], value)
	return netip.AddrFrom4(octets)
}
