package allowlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

var defaultEntries = []string{"127.0.0.1", "::1"}

type member struct {
	addr    netip.Addr
	network netip.Prefix
}

func (m member) isNetwork() bool {
	return m.network.IsValid()
}

func (m member) contains(addr netip.Addr) bool {
	if m.isNetwork() {
		return m.network.Contains(addr)
	}

	return m.addr == addr
}

// Service is the set of trusted addresses and networks, mirrored to a JSON file on every change.
type Service struct {
	filePath string
	now      func() time.Time

	mx      sync.RWMutex
	members map[string]member
}

func NewService(filePath string, now func() time.Time) *Service {
	return &Service{
		filePath: filePath,
		now:      now,
		members:  make(map[string]member),
	}
}

// Load replaces the in-memory set with the file contents. A missing file yields the loopback defaults.
func (s *Service) Load() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	values := defaultEntries
	content, err := os.ReadFile(s.filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info().Str("path", s.filePath).Msg("Load: whitelist file not found, using defaults")

	case err != nil:
		return fmt.Errorf("Load: %w", err)

	default:
		var snapshot entities.AllowlistSnapshot
		if err = json.Unmarshal(content, &snapshot); err != nil {
			return fmt.Errorf("Load: %w", err)
		}
		values = snapshot.Whitelist
	}

	members := make(map[string]member, len(values))
	for _, value := range values {
		canonical, parsed, err := parse(value)
		if err != nil {
			log.Warn().Str("entry", value).Msg("Load: skip invalid whitelist entry")
			continue
		}
		members[canonical] = parsed
	}

	s.members = members
	return nil
}

// IsMember never fails: an unparseable ip is simply not a member.
func (s *Service) IsMember(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	addr = addr.WithZone("").Unmap()

	s.mx.RLock()
	defer s.mx.RUnlock()

	for _, m := range s.members {
		if m.contains(addr) {
			return true
		}
	}

	return false
}

// Add stores value in canonical form. Adding a present entry is not an error and reports added=false.
func (s *Service) Add(value string) (canonical string, added bool, err error) {
	canonical, parsed, err := parse(value)
	if err != nil {
		return "", false, fmt.Errorf("Add: %w", err)
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	if _, ok := s.members[canonical]; ok {
		return canonical, false, nil
	}

	s.members[canonical] = parsed
	if err = s.persist(); err != nil {
		delete(s.members, canonical)
		return canonical, false, fmt.Errorf("Add: %w", err)
	}

	log.Info().Str("entry", canonical).Msg("Add: whitelist entry added")
	return canonical, true, nil
}

func (s *Service) Remove(value string) (canonical string, err error) {
	canonical, parsed, err := parse(value)
	if err != nil {
		return "", fmt.Errorf("Remove: %w", err)
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	if _, ok := s.members[canonical]; !ok {
		return canonical, fmt.Errorf("Remove: %w", errs.ErrEntryNotFound)
	}

	delete(s.members, canonical)
	if err = s.persist(); err != nil {
		s.members[canonical] = parsed
		return canonical, fmt.Errorf("Remove: %w", err)
	}

	log.Info().Str("entry", canonical).Msg("Remove: whitelist entry removed")
	return canonical, nil
}

// List returns the entries sorted by value with read-time descriptions.
func (s *Service) List() entities.AllowlistEntries {
	s.mx.RLock()
	defer s.mx.RUnlock()

	keys := lo.Keys(s.members)
	slices.Sort(keys)

	return lo.Map(keys, func(key string, _ int) entities.AllowlistEntry {
		m := s.members[key]
		entry := entities.AllowlistEntry{
			Value:       key,
			Type:        entities.AllowlistEntryAddress,
			Description: describe(m),
		}
		if m.isNetwork() {
			entry.Type = entities.AllowlistEntryNetwork
		}

		return entry
	})
}

// persist must be called with the write lock held.
func (s *Service) persist() (err error) {
	values := lo.Keys(s.members)
	slices.Sort(values)

	content, err := json.MarshalIndent(entities.AllowlistSnapshot{
		Whitelist: values,
		UpdatedAt: s.now().UTC(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("persist: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err = os.MkdirAll(dir, constants.FilePerm); err != nil {
		return fmt.Errorf("persist: %w", err)
	}

	file, err := os.CreateTemp(dir, "."+filepath.Base(s.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = file.Chmod(constants.WhitelistFilePerm); err != nil {
		_ = file.Close()
		return fmt.Errorf("persist: %w", err)
	}

	if _, err = file.Write(content); err != nil {
		_ = file.Close()
		return fmt.Errorf("persist: %w", err)
	}

	if err = file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("persist: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("persist: %w", err)
	}

	if err = os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("persist: %w", err)
	}

	return nil
}

// parse accepts a bare address or a CIDR network and returns its canonical string.
func parse(value string) (canonical string, m member, err error) {
	value = strings.TrimSpace(value)
	if lo.IsEmpty(value) {
		return "", m, errs.ErrInvalidIPFormat
	}

	if strings.Contains(value, "/") {
		network, err := netip.ParsePrefix(value)
		if err != nil {
			return "", m, fmt.Errorf("%w: %s", errs.ErrInvalidIPFormat, value)
		}
		if network.Addr().Is4In6() {
			network = netip.PrefixFrom(network.Addr().Unmap(), network.Bits()-96)
			if !network.IsValid() {
				return "", m, fmt.Errorf("%w: %s", errs.ErrInvalidIPFormat, value)
			}
		}
		m.network = network.Masked()

		return m.network.String(), m, nil
	}

	addr, err := netip.ParseAddr(value)
	if err != nil || lo.IsNotEmpty(addr.Zone()) {
		return "", m, fmt.Errorf("%w: %s", errs.ErrInvalidIPFormat, value)
	}
	m.addr = addr.Unmap()

	return m.addr.String(), m, nil
}

func describe(m member) string {
	if m.isNetwork() {
		switch {
		case m.network.Addr().IsPrivate():
			return fmt.Sprintf("Private network /%d", m.network.Bits())
		case m.network.Addr().IsLoopback():
			return "Loopback network"
		default:
			return fmt.Sprintf("Network /%d", m.network.Bits())
		}
	}

	switch {
	case m.addr.IsLoopback() && m.addr.Is4():
		return "Localhost (IPv4)"
	case m.addr.IsLoopback():
		return "Localhost (IPv6)"
	case m.addr.IsPrivate():
		return "Private address"
	default:
		return "Single address"
	}
}
