package magicpacket

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

const (
	HardwareAddrLen = 6
	Repetitions     = 16
	// Size is the payload length: sync stream followed by repeated hardware address.
	Size = HardwareAddrLen + Repetitions*HardwareAddrLen
)

type HardwareAddr [HardwareAddrLen]byte

// String returns the canonical upper-case colon form, e.g. AA:BB:CC:DD:EE:FF.
func (a HardwareAddr) String() string {
	parts := make([]string, 0, HardwareAddrLen)
	for _, b := range a {
		parts = append(parts, fmt.Sprintf("%02X", b))
	}

	return strings.Join(parts, ":")
}

// Parse accepts 12 hex digits with optional ':' or '-' separators in any case.
func Parse(raw string) (addr HardwareAddr, err error) {
	cleaned := strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(raw))
	if lo.IsEmpty(cleaned) || len(cleaned) != HardwareAddrLen*2 {
		return addr, fmt.Errorf("Parse: %w: %q", errs.ErrInvalidMacAddress, raw)
	}

	decoded, err := hex.DecodeString(cleaned)
	if err != nil {
		return addr, fmt.Errorf("Parse: %w: %q", errs.ErrInvalidMacAddress, raw)
	}

	copy(addr[:], decoded)
	return addr, nil
}

// Normalize parses raw and returns its canonical form.
func Normalize(raw string) (normalized string, err error) {
	addr, err := Parse(raw)
	if err != nil {
		return "", fmt.Errorf("Normalize: %w", err)
	}

	return addr.String(), nil
}

// New builds the magic packet payload for raw.
func New(raw string) (payload []byte, err error) {
	addr, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return Build(addr), nil
}

func Build(addr HardwareAddr) []byte {
	var buf bytes.Buffer
	buf.Grow(Size)
	buf.Write(bytes.Repeat([]byte{0xFF}, HardwareAddrLen))
	for range Repetitions {
		buf.Write(addr[:])
	}

	return buf.Bytes()
}
